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
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name       string
		verbose    bool
		wantSilent bool
		wantLevel  LogLevel
	}{
		{name: "verbose", verbose: true, wantSilent: false, wantLevel: LevelDebug},
		{name: "quiet", verbose: false, wantSilent: true, wantLevel: LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.verbose)
			if logger.Silent() != tt.wantSilent {
				t.Errorf("Silent() = %v, want %v", logger.Silent(), tt.wantSilent)
			}
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
			if logger.out.w != os.Stderr {
				t.Error("NewLogger() should write to os.Stderr")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  []string
	}{
		{level: LevelDebug, want: []string{"d", "i", "w", "e"}},
		{level: LevelInfo, want: []string{"i", "w", "e"}},
		{level: LevelWarn, want: []string{"w", "e"}},
		{level: LevelError, want: []string{"e"}},
		{level: LevelSilent, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerWithOptions(LoggerOptions{Level: tt.level, Output: &buf})
			logger.Debug("%s", "d")
			logger.Infoln("i")
			logger.Warn("w")
			logger.Errorln("e")

			var got []string
			for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
				if line != "" {
					got = append(got, line)
				}
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("output = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
		"off":     LevelSilent,
		"bogus":   LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseLogFormat(t *testing.T) {
	if ParseLogFormat("JSON") != FormatJSON {
		t.Error("ParseLogFormat(JSON) should be FormatJSON")
	}
	if ParseLogFormat("anything") != FormatText {
		t.Error("unknown formats should fall back to FormatText")
	}
}

func TestParseBackend(t *testing.T) {
	for in, want := range map[string]Backend{"": BackendBuiltin, "builtin": BackendBuiltin, "ZAP": BackendZap} {
		got, err := ParseBackend(in)
		if err != nil || got != want {
			t.Errorf("ParseBackend(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseBackend("logrus"); err == nil {
		t.Error("ParseBackend(logrus) should fail")
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOptions(LoggerOptions{Level: LevelInfo, Output: &buf, ShowLevel: true})
	logger.WithFields(map[string]interface{}{"zeta": 1, "alpha": "a"}).Info("signed %s", "file")

	if got, want := buf.String(), "[INFO] signed file alpha=a zeta=1\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOptions(LoggerOptions{Level: LevelDebug, Format: FormatJSON, Output: &buf})
	logger.WithField("algorithm", "ed25519").WithField("size", 64).Info("test message")

	var entry jsonEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if entry.Level != "info" || entry.Message != "test message" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Timestamp == "" {
		t.Error("JSON timestamp should not be empty")
	}
	if entry.Fields["algorithm"] != "ed25519" || entry.Fields["size"] != float64(64) {
		t.Errorf("fields = %v", entry.Fields)
	}
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLoggerWithOptions(LoggerOptions{Level: LevelInfo, Output: &buf})
	_ = parent.WithField("child", true)
	parent.Info("plain")

	if got := buf.String(); got != "plain\n" {
		t.Errorf("parent output = %q, want %q", got, "plain\n")
	}
}

func TestEnsureLogger(t *testing.T) {
	if EnsureLogger(nil) == nil {
		t.Fatal("EnsureLogger(nil) returned nil")
	}
	custom := NewLogger(true)
	if EnsureLogger(custom) != Logger(custom) {
		t.Error("EnsureLogger() should return the provided logger")
	}
}

func TestNewSelectsBackend(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: LevelInfo, Backend: BackendBuiltin, Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := l.(*DefaultLogger); !ok {
		t.Errorf("New(builtin) = %T, want *DefaultLogger", l)
	}

	l, err = New(Config{Level: LevelInfo, Backend: BackendZap, Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := l.(*ZapLogger); !ok {
		t.Errorf("New(zap) = %T, want *ZapLogger", l)
	}

	if _, err := New(Config{Backend: "nope"}); err == nil {
		t.Error("New() with an unknown backend should fail")
	}
}
