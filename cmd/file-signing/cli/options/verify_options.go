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

	"github.com/sigstore/file-signing/pkg/verify"
)

// VerifyOptions holds the flags of the verify command.
type VerifyOptions struct {
	AlgorithmFlags
	SignatureInputFlags
	PublicKeyPath string // --public-key
}

var _ Interface = (*VerifyOptions)(nil)

// AddFlags registers the verify flags.
func (o *VerifyOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.AlgorithmFlags, &o.SignatureInputFlags)

	cmd.Flags().StringVar(&o.PublicKeyPath, "public-key", "", "Location of the public key file to verify with. [required]")
	_ = cmd.MarkFlagFilename("public-key", keyExts...)
}

// ToStandardOptions converts CLI options to library options for verifying target.
func (o *VerifyOptions) ToStandardOptions(target string) verify.VerifierOptions {
	return verify.VerifierOptions{
		PublicKeyPath: o.PublicKeyPath,
		SignaturePath: o.SignaturePath,
		TargetPath:    target,
		Algorithm:     o.Algorithm,
	}
}
