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

// Package logging is the leveled, structured logging layer shared by the
// key generation, signing and verification commands. Library code accepts a
// Logger and falls back to EnsureLogger; the CLI builds one with New from
// the --log-* flags.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is used for progress messages.
	LevelInfo
	// LevelWarn is used for suspicious but recoverable conditions.
	LevelWarn
	// LevelError is used for failures.
	LevelError
	// LevelSilent disables all logging output.
	LevelSilent
)

var levelNames = map[LogLevel]string{
	LevelDebug:  "debug",
	LevelInfo:   "info",
	LevelWarn:   "warn",
	LevelError:  "error",
	LevelSilent: "silent",
}

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLogLevel parses a level name. Unrecognized names yield LevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "silent", "none", "off":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// LogFormat represents the output format for log messages.
type LogFormat int

const (
	// FormatText outputs human-readable text logs.
	FormatText LogFormat = iota
	// FormatJSON outputs one JSON object per line.
	FormatJSON
)

// String returns the string representation of a log format.
func (f LogFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseLogFormat parses a format name. Unrecognized names yield FormatText.
func ParseLogFormat(s string) LogFormat {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// Backend selects the implementation behind a Logger.
type Backend string

const (
	// BackendBuiltin is the DefaultLogger with its Text and JSON formatters.
	BackendBuiltin Backend = "builtin"
	// BackendZap routes records through go.uber.org/zap.
	BackendZap Backend = "zap"
)

// ParseBackend parses a backend name. An empty name selects BackendBuiltin.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "", BackendBuiltin:
		return BackendBuiltin, nil
	case BackendZap:
		return BackendZap, nil
	default:
		return "", fmt.Errorf("unknown log backend %q (supported: %s, %s)", s, BackendBuiltin, BackendZap)
	}
}

// Logger defines the interface for structured logging.
//
// Each level has a printf-style method and an ln variant taking a single
// message. WithField and WithFields return derived loggers; the receiver is
// never modified.
type Logger interface {
	Debug(format string, args ...interface{})
	Debugln(msg string)
	Info(format string, args ...interface{})
	Infoln(msg string)
	Warn(format string, args ...interface{})
	Warnln(msg string)
	Error(format string, args ...interface{})
	Errorln(msg string)

	// GetLevel returns the current minimum log level.
	GetLevel() LogLevel
	// Silent returns true if the logger suppresses debug output.
	Silent() bool

	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

// Config selects and configures a Logger for New.
type Config struct {
	Level   LogLevel
	Format  LogFormat
	Backend Backend
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New builds a Logger for cfg.
func New(cfg Config) (Logger, error) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	switch cfg.Backend {
	case "", BackendBuiltin:
		return NewLoggerWithOptions(LoggerOptions{
			Level:     cfg.Level,
			Format:    cfg.Format,
			Output:    cfg.Output,
			ShowLevel: cfg.Level == LevelDebug,
		}), nil
	case BackendZap:
		return NewZapLogger(cfg), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Backend)
	}
}

// Default returns an info-level text Logger writing to stderr.
func Default() Logger {
	return NewLogger(false)
}

// EnsureLogger returns l if non-nil, otherwise a default logger.
func EnsureLogger(l Logger) Logger {
	if l == nil {
		return Default()
	}
	return l
}
