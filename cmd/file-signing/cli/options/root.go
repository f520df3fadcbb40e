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

package options

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/sigstore/file-signing/pkg/logging"
)

// RootOptions defines the global flags shared by every subcommand.
type RootOptions struct {
	// OutputFile redirects command output and logs to a file.
	OutputFile string
	// LogLevel sets the minimum log level (debug, info, warn, error, silent).
	LogLevel string
	// LogFormat sets the log output format (text, json).
	LogFormat string
	// LogBackend selects the logger implementation (builtin, zap).
	LogBackend string
	// ConfigFile is a YAML file providing defaults for unset flags.
	ConfigFile string
}

// ValidLogLevels lists the valid log level strings.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "silent"}

// ValidLogFormats lists the valid log format strings.
var ValidLogFormats = []string{"text", "json"}

// ValidLogBackends lists the valid log backend strings.
var ValidLogBackends = []string{string(logging.BackendBuiltin), string(logging.BackendZap)}

var _ Interface = (*RootOptions)(nil)

// AddFlags registers the persistent root flags.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.OutputFile, "output-file", "",
		"write command output and logs to a file")
	_ = cmd.MarkPersistentFlagFilename("output-file", logExts...)

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "info",
		"set the minimum log level (debug, info, warn, error, silent)")
	_ = cmd.RegisterFlagCompletionFunc("log-level", cobra.FixedCompletions(ValidLogLevels, cobra.ShellCompDirectiveNoFileComp))

	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"set the log output format (text, json)")
	_ = cmd.RegisterFlagCompletionFunc("log-format", cobra.FixedCompletions(ValidLogFormats, cobra.ShellCompDirectiveNoFileComp))

	cmd.PersistentFlags().StringVar(&o.LogBackend, "log-backend", string(logging.BackendBuiltin),
		"set the logging backend (builtin, zap)")
	_ = cmd.RegisterFlagCompletionFunc("log-backend", cobra.FixedCompletions(ValidLogBackends, cobra.ShellCompDirectiveNoFileComp))

	cmd.PersistentFlags().StringVar(&o.ConfigFile, "config", "",
		"YAML file with default values for flags that are not set on the command line")
	_ = cmd.MarkPersistentFlagFilename("config", cfgExts...)
}

// GetLogLevel returns the effective log level.
func (o *RootOptions) GetLogLevel() logging.LogLevel {
	return logging.ParseLogLevel(o.LogLevel)
}

// GetLogFormat returns the log format.
func (o *RootOptions) GetLogFormat() logging.LogFormat {
	return logging.ParseLogFormat(o.LogFormat)
}

// NewLogger creates a logger writing to out from the root options.
func (o *RootOptions) NewLogger(out io.Writer) (logging.Logger, error) {
	backend, err := logging.ParseBackend(o.LogBackend)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Config{
		Level:   o.GetLogLevel(),
		Format:  o.GetLogFormat(),
		Backend: backend,
		Output:  out,
	})
}
