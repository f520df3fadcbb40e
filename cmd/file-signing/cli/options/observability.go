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
	"io"

	"github.com/sigstore/file-signing/pkg/logging"
)

// Observability holds the logger a command runs with. Tracing is global, see
// tracing.InitFromEnv and tracing.Run.
type Observability struct {
	Logger logging.Logger
}

// NewObservability builds the command's Observability from the root options.
// Logs go to out.
func (o *RootOptions) NewObservability(out io.Writer) (Observability, error) {
	logger, err := o.NewLogger(out)
	if err != nil {
		return Observability{}, err
	}
	return Observability{Logger: logger}, nil
}
