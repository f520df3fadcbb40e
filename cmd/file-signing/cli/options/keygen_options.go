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
	"github.com/spf13/cobra"

	"github.com/sigstore/file-signing/pkg/keys"
)

// KeygenOptions holds the flags of the keygen command.
type KeygenOptions struct {
	AlgorithmFlags
	PrivateKeyPath string // --private-key
	PublicKeyPath  string // --public-key
	Password       string // --password
}

var _ Interface = (*KeygenOptions)(nil)

// AddFlags registers the keygen flags.
func (o *KeygenOptions) AddFlags(cmd *cobra.Command) {
	o.AlgorithmFlags.AddFlags(cmd)

	cmd.Flags().StringVar(&o.PrivateKeyPath, "private-key", "private.pem", "Where to write the PEM-encoded private key.")
	_ = cmd.MarkFlagFilename("private-key", keyExts...)
	cmd.Flags().StringVar(&o.PublicKeyPath, "public-key", "public.pem", "Where to write the PEM-encoded public key.")
	_ = cmd.MarkFlagFilename("public-key", keyExts...)
	cmd.Flags().StringVar(&o.Password, "password", "", "Encrypt the private key with this password.")
}

// ToStandardOptions converts CLI options to key pair provider options.
func (o *KeygenOptions) ToStandardOptions() keys.KeyPairProviderOptions {
	return keys.KeyPairProviderOptions{
		Algorithm: o.Algorithm,
		Password:  o.Password,
	}
}
