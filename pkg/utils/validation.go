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
	"os"

	"github.com/sigstore/file-signing/pkg/signerr"
)

// PathType represents the type of path to validate.
type PathType int

const (
	// PathTypeFile expects a regular file.
	PathTypeFile PathType = iota
	// PathTypeFolder expects a directory.
	PathTypeFolder
	// PathTypeAny accepts either file or directory.
	PathTypeAny
)

// NamedPath pairs a path with the name used for it in error messages.
type NamedPath struct {
	Name string
	Path string
}

// RequirePaths checks that every path is set. It does not touch the
// filesystem, so it can run before any I/O. The first missing path is
// reported as a MissingInput error.
func RequirePaths(paths ...NamedPath) error {
	for _, p := range paths {
		if p.Path == "" {
			return signerr.MissingInput(p.Name)
		}
	}
	return nil
}

// PathValidator provides path validation utilities.
type PathValidator struct {
	fieldName string
	path      string
	pathType  PathType
}

// NewPathValidator creates a new path validator with the specified field name, path, and expected type.
func NewPathValidator(fieldName, path string, pathType PathType) *PathValidator {
	return &PathValidator{
		fieldName: fieldName,
		path:      path,
		pathType:  pathType,
	}
}

// Validate checks that the path is not empty, exists, and matches the
// expected type. An empty path is a MissingInput error; everything else is
// an IOFailure.
func (v *PathValidator) Validate() error {
	if v.path == "" {
		return signerr.MissingInput(v.fieldName)
	}

	info, err := os.Stat(v.path)
	if err != nil {
		if os.IsNotExist(err) {
			return signerr.NewWithPath(signerr.KindIOFailure, v.path, v.fieldName+" does not exist", err)
		}
		return signerr.NewWithPath(signerr.KindIOFailure, v.path, "checking "+v.fieldName, err)
	}

	switch v.pathType {
	case PathTypeFile:
		if info.IsDir() {
			return signerr.NewWithPath(signerr.KindIOFailure, v.path, v.fieldName+" is a directory, expected file", nil)
		}
	case PathTypeFolder:
		if !info.IsDir() {
			return signerr.NewWithPath(signerr.KindIOFailure, v.path, v.fieldName+" is a file, expected directory", nil)
		}
	case PathTypeAny:
		// Accept both files and directories
	}

	return nil
}

// ValidateFileExists validates that a path exists and is a file.
func ValidateFileExists(fieldName, path string) error {
	return NewPathValidator(fieldName, path, PathTypeFile).Validate()
}

// ValidateFolderExists validates that a path exists and is a directory.
func ValidateFolderExists(fieldName, path string) error {
	return NewPathValidator(fieldName, path, PathTypeFolder).Validate()
}

// ValidateDistinctPaths reports a MissingInput error when two destination
// paths resolve to the same file, so one artifact would overwrite the other.
func ValidateDistinctPaths(a, b NamedPath) error {
	same, err := SameFile(a.Path, b.Path)
	if err != nil {
		return err
	}
	if same {
		return signerr.New(signerr.KindMissingInput,
			a.Name+" and "+b.Name+" must be distinct paths", nil)
	}
	return nil
}

// ValidateOptionalFile validates a file path only when it is set.
func ValidateOptionalFile(fieldName, path string) error {
	if path == "" {
		return nil
	}
	return ValidateFileExists(fieldName, path)
}
