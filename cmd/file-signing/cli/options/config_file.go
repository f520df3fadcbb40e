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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/sigstore/file-signing/pkg/signerr"
	"github.com/sigstore/file-signing/pkg/utils"
)

// ApplyConfigFile reads the YAML file at path and uses it to fill in every
// flag of cmd that was not set on the command line. Keys are flag names; a
// section named after the command (e.g. "sign:") overrides top-level keys
// for that command only:
//
//	log-level: debug
//	algorithm: ed25519
//	sign:
//	  private-key: keys/private.pem
//
// Flags given on the command line always win. An empty path is a no-op.
func ApplyConfigFile(cmd *cobra.Command, path string) error {
	if path == "" {
		return nil
	}
	if err := utils.ValidateFileExists("config file", path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return signerr.NewWithPath(signerr.KindIOFailure, path, "error reading YAML configuration", err)
	}

	var errs error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "config" {
			return
		}
		key := f.Name
		if scoped := cmd.Name() + "." + f.Name; v.IsSet(scoped) {
			key = scoped
		} else if !v.IsSet(key) {
			return
		}
		if err := cmd.Flags().Set(f.Name, v.GetString(key)); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("config key %q: %w", key, err))
		}
	})
	if errs != nil {
		return fmt.Errorf("applying %s: %w", path, errs)
	}
	return nil
}
