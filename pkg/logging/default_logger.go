// Copyright 2025 The Sigstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var _ Logger = (*DefaultLogger)(nil)

// LoggerOptions configures a DefaultLogger instance.
type LoggerOptions struct {
	// Level sets the minimum log level to output.
	Level LogLevel
	// Format selects the built-in formatter. Ignored if Formatter is set.
	Format LogFormat
	// Formatter overrides Format with a custom implementation.
	Formatter Formatter
	// Output defaults to os.Stderr.
	Output io.Writer
	// TimeFormat enables timestamps in text output.
	TimeFormat string
	// ShowLevel prefixes text output with the level.
	ShowLevel bool
}

// DefaultLogger writes formatted entries to an io.Writer. Loggers derived
// with WithFields share the writer and its lock.
type DefaultLogger struct {
	out       *syncWriter
	level     LogLevel
	formatter Formatter
	fields    map[string]interface{}
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) write(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.w.Write(p)
}

// NewLogger creates a text DefaultLogger on stderr. verbose selects LevelDebug
// instead of LevelInfo.
func NewLogger(verbose bool) *DefaultLogger {
	level := LevelInfo
	if verbose {
		level = LevelDebug
	}
	return NewLoggerWithOptions(LoggerOptions{Level: level})
}

// NewLoggerWithOptions creates a DefaultLogger from opts.
func NewLoggerWithOptions(opts LoggerOptions) *DefaultLogger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	formatter := opts.Formatter
	if formatter == nil {
		if opts.Format == FormatJSON {
			formatter = &JSONFormatter{TimeFormat: opts.TimeFormat}
		} else {
			formatter = &TextFormatter{TimeFormat: opts.TimeFormat, ShowLevel: opts.ShowLevel}
		}
	}

	return &DefaultLogger{
		out:       &syncWriter{w: out},
		level:     opts.Level,
		formatter: formatter,
	}
}

// WithFields returns a Logger that adds fields to every entry.
func (l *DefaultLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &DefaultLogger{
		out:       l.out,
		level:     l.level,
		formatter: l.formatter,
		fields:    merged,
	}
}

// WithField returns a Logger that adds key=value to every entry.
func (l *DefaultLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// GetLevel returns the current log level.
func (l *DefaultLogger) GetLevel() LogLevel {
	return l.level
}

// Silent returns true if debug output is suppressed.
func (l *DefaultLogger) Silent() bool {
	return l.level > LevelDebug
}

// IsLevelEnabled returns true if the given level would produce output.
func (l *DefaultLogger) IsLevelEnabled(level LogLevel) bool {
	return level >= l.level && level < LevelSilent
}

func (l *DefaultLogger) log(level LogLevel, msg string) {
	if !l.IsLevelEnabled(level) {
		return
	}
	data, err := l.formatter.Format(LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   msg,
		Fields:    l.fields,
	})
	if err != nil {
		data = []byte(fmt.Sprintf("logging error: %v\n", err))
	}
	l.out.write(data)
}

func (l *DefaultLogger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Debugln(msg string) { l.log(LevelDebug, msg) }

func (l *DefaultLogger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Infoln(msg string) { l.log(LevelInfo, msg) }

func (l *DefaultLogger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Warnln(msg string) { l.log(LevelWarn, msg) }

func (l *DefaultLogger) Error(format string, args ...interface{}) {
	l.log(LevelError, fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Errorln(msg string) { l.log(LevelError, msg) }
