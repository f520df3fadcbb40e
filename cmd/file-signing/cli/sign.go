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
	"github.com/sigstore/file-signing/pkg/signing"
	"github.com/sigstore/file-signing/pkg/tracing"
)

// Sign creates the sign subcommand.
func Sign(ro *options.RootOptions) *cobra.Command {
	o := &options.SignOptions{}

	long := `Sign a file with a private key.

Signs the contents of FILE with the private key given via --private-key and
writes the raw signature to SIGNATURE_PATH (--signature, FILE.sig by default),
replacing any existing signature.

The algorithm follows from the key. Pass --algorithm to refuse keys of any
other type.`

	cmd := &cobra.Command{
		Use:   "sign [OPTIONS] FILE",
		Short: "Sign a file.",
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
				"file_signing.target":      opts.TargetPath,
				"file_signing.signature":   opts.SignaturePath,
				"file_signing.private_key": opts.PrivateKeyPath,
				"file_signing.algorithm":   opts.Algorithm,
			}
			return tracing.Run(cmd.Context(), "Sign", attrs, func(ctx context.Context) error {
				signer, err := signing.NewFileSigner(opts)
				if err != nil {
					return err
				}
				status, err := signer.Sign(ctx)
				if err != nil {
					return err
				}
				printResult(cmd.OutOrStdout(), ro, status.Message)
				return nil
			})
		},
	}

	o.AddFlags(cmd)
	return cmd
}
