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
	"github.com/sigstore/file-signing/pkg/keys"
	"github.com/sigstore/file-signing/pkg/tracing"
)

// Keygen creates the keygen subcommand.
func Keygen(ro *options.RootOptions) *cobra.Command {
	o := &options.KeygenOptions{}

	long := `Generate a key pair.

Writes a fresh private key to PRIVATE_KEY (--private-key) and the matching
public key to PUBLIC_KEY (--public-key), replacing existing files. The private
key file is readable by the owner only. Pass --password to encrypt it.

The public key is what receivers need to verify signatures. Keep the private
key to yourself.`

	cmd := &cobra.Command{
		Use:   "keygen [OPTIONS]",
		Short: "Generate a signing key pair.",
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd, ro)
			if err != nil {
				return err
			}
			opts := o.ToStandardOptions()
			opts.Logger = logger

			attrs := map[string]interface{}{
				"file_signing.algorithm":   o.Algorithm,
				"file_signing.private_key": o.PrivateKeyPath,
				"file_signing.public_key":  o.PublicKeyPath,
				"file_signing.encrypted":   o.Password != "",
			}
			return tracing.Run(cmd.Context(), "Keygen", attrs, func(ctx context.Context) error {
				provider, err := keys.NewKeyPairProvider(opts)
				if err != nil {
					return err
				}
				kp, err := provider.GenerateAndPersist(ctx, o.PrivateKeyPath, o.PublicKeyPath)
				if err != nil {
					return err
				}
				fp, err := kp.Fingerprint()
				if err != nil {
					return err
				}
				printResult(cmd.OutOrStdout(), ro, "Generated "+kp.Algorithm.Name+" key pair, fingerprint "+fp)
				return nil
			})
		},
	}

	o.AddFlags(cmd)
	return cmd
}
