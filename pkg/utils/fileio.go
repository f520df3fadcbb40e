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

package utils

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/sigstore/file-signing/pkg/signerr"
)

// ReadFile reads the whole file at path. Failures are reported as IOFailure.
func ReadFile(fieldName, path string) ([]byte, error) {
	if err := ValidateFileExists(fieldName, path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, signerr.NewWithPath(signerr.KindIOFailure, path, "failed to read "+fieldName, err)
	}
	return data, nil
}

// OpenFile opens the file at path for reading. Failures are reported as IOFailure.
func OpenFile(fieldName, path string) (*os.File, error) {
	if err := ValidateFileExists(fieldName, path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, signerr.NewWithPath(signerr.KindIOFailure, path, "failed to open "+fieldName, err)
	}
	return f, nil
}

// WriteFileAtomic writes data to path through a temporary file in the same
// directory and renames it into place, so readers never observe a partial
// artifact. Existing content at path is replaced.
func WriteFileAtomic(fieldName, path string, data []byte, perm os.FileMode) (err error) {
	if path == "" {
		return signerr.MissingInput(fieldName)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return signerr.NewWithPath(signerr.KindIOFailure, path, "failed to create "+fieldName, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			err = multierr.Append(err, ignoreNotExist(os.Remove(tmpName)))
		}
	}()

	if _, werr := tmp.Write(data); werr != nil {
		err = multierr.Append(werr, tmp.Close())
		return signerr.NewWithPath(signerr.KindIOFailure, path, "failed to write "+fieldName, err)
	}
	if cerr := multierr.Append(tmp.Sync(), tmp.Close()); cerr != nil {
		return signerr.NewWithPath(signerr.KindIOFailure, path, "failed to flush "+fieldName, cerr)
	}
	if cerr := os.Chmod(tmpName, perm); cerr != nil {
		return signerr.NewWithPath(signerr.KindIOFailure, path, "failed to set permissions on "+fieldName, cerr)
	}
	if rerr := os.Rename(tmpName, path); rerr != nil {
		return signerr.NewWithPath(signerr.KindIOFailure, path, "failed to write "+fieldName, rerr)
	}
	return nil
}

// SameFile reports whether a and b name the same file. Paths that do not
// exist yet are compared lexically after cleaning.
func SameFile(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, signerr.NewWithPath(signerr.KindIOFailure, a, "resolving path", err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, signerr.NewWithPath(signerr.KindIOFailure, b, "resolving path", err)
	}
	if absA == absB {
		return true, nil
	}
	infoA, errA := os.Stat(absA)
	infoB, errB := os.Stat(absB)
	if errA != nil || errB != nil {
		return false, nil
	}
	return os.SameFile(infoA, infoB), nil
}

// ReadErrorCapture wraps a reader and remembers the first read error other
// than io.EOF. It lets callers tell a failing file apart from a failing
// consumer when the reader is handed to a library.
type ReadErrorCapture struct {
	R   io.Reader
	Err error
}

// Read implements io.Reader.
func (c *ReadErrorCapture) Read(p []byte) (int, error) {
	n, err := c.R.Read(p)
	if err != nil && err != io.EOF && c.Err == nil {
		c.Err = err
	}
	return n, err
}

func ignoreNotExist(err error) error {
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
