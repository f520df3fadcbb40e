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

	"github.com/sigstore/file-signing/pkg/signing"
)

// SignOptions holds the flags of the sign command.
type SignOptions struct {
	AlgorithmFlags
	SignatureOutputFlags
	PrivateKeyPath string // --private-key
	Password       string // --password
}

var _ Interface = (*SignOptions)(nil)

// AddFlags registers the sign flags.
func (o *SignOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.AlgorithmFlags, &o.SignatureOutputFlags)

	cmd.Flags().StringVar(&o.PrivateKeyPath, "private-key", "", "Path to the private key, as a PEM-encoded file. [required]")
	_ = cmd.MarkFlagFilename("private-key", keyExts...)
	cmd.Flags().StringVar(&o.Password, "password", "", "Password for the key encryption, if any.")
}

// ToStandardOptions converts CLI options to library options for signing target.
func (o *SignOptions) ToStandardOptions(target string) signing.SignerOptions {
	return signing.SignerOptions{
		PrivateKeyPath: o.PrivateKeyPath,
		SignaturePath:  o.Resolve(target),
		TargetPath:     target,
		Password:       o.Password,
		Algorithm:      o.Algorithm,
	}
}
