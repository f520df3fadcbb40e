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
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sigstore/file-signing/pkg/keys"
)

// Algorithms creates the algorithms subcommand.
func Algorithms() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported signature algorithms.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKEY\tDIGEST\tDEFAULT")
			for _, name := range keys.Algorithms() {
				alg, err := keys.ParseAlgorithm(name)
				if err != nil {
					return err
				}
				digest := "none"
				if h := alg.HashFunc(); h.Available() {
					digest = h.String()
				}
				def := ""
				if name == keys.DefaultAlgorithm {
					def = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", alg.Name, alg.KeyTypeString(), digest, def)
			}
			return w.Flush()
		},
	}
}
