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

// AlgorithmFlags selects or pins the signature algorithm.
type AlgorithmFlags struct {
	Algorithm string
}

// AddFlags registers --algorithm with completion from the registry.
func (o *AlgorithmFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Algorithm, "algorithm", "",
		"Signature algorithm. keygen defaults to "+keys.DefaultAlgorithm+"; sign and verify use it to pin the key type.")
	_ = cmd.RegisterFlagCompletionFunc("algorithm", cobra.FixedCompletions(keys.Algorithms(), cobra.ShellCompDirectiveNoFileComp))
}

// SignatureOutputFlags holds the signature path for signing.
// An empty value means "<FILE>.sig".
type SignatureOutputFlags struct {
	SignaturePath string
}

// AddFlags registers --signature for signing.
func (o *SignatureOutputFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.SignaturePath, "signature", "", "Location of the signature file to generate. Defaults to FILE.sig")
}

// Resolve returns the signature path for target.
func (o *SignatureOutputFlags) Resolve(target string) string {
	if o.SignaturePath != "" || target == "" {
		return o.SignaturePath
	}
	return target + ".sig"
}

// SignatureInputFlags holds the signature path for verification.
type SignatureInputFlags struct {
	SignaturePath string
}

// AddFlags registers --signature for verification.
func (o *SignatureInputFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.SignaturePath, "signature", "", "Location of the signature file to verify. [required]")
}
