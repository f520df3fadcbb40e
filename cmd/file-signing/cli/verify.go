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

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sigstore/file-signing/cmd/file-signing/cli/options"
	"github.com/sigstore/file-signing/pkg/tracing"
	"github.com/sigstore/file-signing/pkg/verify"
)

// Verify creates the verify subcommand.
func Verify(ro *options.RootOptions) *cobra.Command {
	o := &options.VerifyOptions{}

	long := `Verify a file against its signature.

Checks that SIGNATURE_PATH (--signature) was produced over the exact contents
of FILE by the private key paired with the public key given via --public-key.

Exits with status 2 when the file or signature was modified or the keys do
not match, and with status 1 when the check could not be carried out.`

	cmd := &cobra.Command{
		Use:   "verify [OPTIONS] FILE",
		Short: "Verify a file signature.",
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd, ro)
			if err != nil {
				return err
			}
			opts := o.ToStandardOptions(args[0])
			opts.Logger = logger

			attrs := map[string]interface{}{
				"file_signing.target":     opts.TargetPath,
				"file_signing.signature":  opts.SignaturePath,
				"file_signing.public_key": opts.PublicKeyPath,
				"file_signing.algorithm":  opts.Algorithm,
			}
			return tracing.Run(cmd.Context(), "Verify", attrs, func(ctx context.Context) error {
				verifier, err := verify.NewFileVerifier(opts)
				if err != nil {
					return err
				}
				status, err := verifier.Verify(ctx)
				if err != nil {
					return err
				}
				printResult(cmd.OutOrStdout(), ro, status.Message)
				if !status.Verified {
					return &exitError{code: ExitCodeVerificationFailed, msg: status.Message}
				}
				return nil
			})
		},
	}

	o.AddFlags(cmd)
	return cmd
}
