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
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*ZapLogger)(nil)

// ZapLogger is a Logger backed by Uber's zap.
type ZapLogger struct {
	sugar *zap.SugaredLogger
	level LogLevel
}

// NewZapLogger creates a ZapLogger writing to cfg.Output with a JSON or
// console encoder depending on cfg.Format.
func NewZapLogger(cfg Config) *ZapLogger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.MessageKey = "message"
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	var enc zapcore.Encoder
	if cfg.Format == FormatJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(out), zap.NewAtomicLevelAt(zapLevel(cfg.Level)))
	return &ZapLogger{sugar: zap.New(core).Sugar(), level: cfg.Level}
}

// zapLevel maps a LogLevel onto zap. LevelSilent maps to FatalLevel, which
// this package never emits.
func zapLevel(l LogLevel) zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}

func (z *ZapLogger) Debug(format string, args ...interface{}) { z.sugar.Debugf(format, args...) }
func (z *ZapLogger) Debugln(msg string) { z.sugar.Debug(msg) }
func (z *ZapLogger) Info(format string, args ...interface{}) { z.sugar.Infof(format, args...) }
func (z *ZapLogger) Infoln(msg string) { z.sugar.Info(msg) }
func (z *ZapLogger) Warn(format string, args ...interface{}) { z.sugar.Warnf(format, args...) }
func (z *ZapLogger) Warnln(msg string) { z.sugar.Warn(msg) }
func (z *ZapLogger) Error(format string, args ...interface{}) { z.sugar.Errorf(format, args...) }
func (z *ZapLogger) Errorln(msg string) { z.sugar.Error(msg) }

// GetLevel returns the configured level.
func (z *ZapLogger) GetLevel() LogLevel { return z.level }

// Silent returns true if debug output is suppressed.
func (z *ZapLogger) Silent() bool { return z.level > LevelDebug }

// WithField returns a ZapLogger that adds key to every entry.
func (z *ZapLogger) WithField(key string, value interface{}) Logger {
	return &ZapLogger{sugar: z.sugar.With(key, value), level: z.level}
}

// WithFields returns a ZapLogger that adds fields to every entry, in key order.
func (z *ZapLogger) WithFields(fields map[string]interface{}) Logger {
	kv := make([]interface{}, 0, 2*len(fields))
	for _, k := range sortedKeys(fields) {
		kv = append(kv, k, fields[k])
	}
	return &ZapLogger{sugar: z.sugar.With(kv...), level: z.level}
}

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() error {
	if err := z.sugar.Sync(); err != nil {
		return fmt.Errorf("flushing zap logger: %w", err)
	}
	return nil
}
