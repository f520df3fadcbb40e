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

// Package cli wires the file-signing subcommands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	cobracompletefig "github.com/withfig/autocomplete-tools/integrations/cobra"
	"sigs.k8s.io/release-utils/version"

	"github.com/sigstore/file-signing/cmd/file-signing/cli/options"
	"github.com/sigstore/file-signing/pkg/logging"
)

// New returns the root command.
func New() *cobra.Command {
	ro := &options.RootOptions{}
	var out *os.File

	cmd := &cobra.Command{
		Use:   "file-signing",
		Short: "Sign files and verify file signatures.",
		Long: `Sign files and verify file signatures.

A sender generates a key pair with "keygen", signs a file with the private
key using "sign", and hands the file, the signature and the public key to a
receiver, who checks them with "verify".`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := options.ApplyConfigFile(cmd, ro.ConfigFile); err != nil {
				return err
			}
			if ro.OutputFile != "" {
				var err error
				out, err = os.Create(ro.OutputFile)
				if err != nil {
					return fmt.Errorf("error creating output file %s: %w", ro.OutputFile, err)
				}
				cmd.SetOut(out)
				cmd.SetErr(out)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if out != nil {
				_ = out.Close()
			}
		},
	}
	ro.AddFlags(cmd)

	cmd.AddCommand(Keygen(ro))
	cmd.AddCommand(Sign(ro))
	cmd.AddCommand(Verify(ro))
	cmd.AddCommand(Algorithms())
	cmd.AddCommand(version.WithFont("starwars"))
	cmd.AddCommand(cobracompletefig.CreateCompletionSpecCommand())
	return cmd
}

// newLogger builds the command's logger. Logs share the error stream, which
// --output-file redirects.
func newLogger(cmd *cobra.Command, ro *options.RootOptions) (logging.Logger, error) {
	obs, err := ro.NewObservability(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return obs.Logger, nil
}

// printResult writes a status line unless logging is silenced.
func printResult(w io.Writer, ro *options.RootOptions, msg string) {
	if ro.GetLogLevel() < logging.LevelSilent {
		fmt.Fprintln(w, msg)
	}
}
