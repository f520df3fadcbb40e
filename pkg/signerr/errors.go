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

// Package signerr defines the typed failures reported by key generation,
// signing and verification.
package signerr

import (
	"errors"
	"fmt"
)

// Kind represents the category of a failure.
type Kind int

const (
	// KindUnknown indicates an unclassified error.
	KindUnknown Kind = iota

	// KindMissingInput indicates a required path argument was not supplied.
	// It is always reported before any filesystem access.
	KindMissingInput

	// KindIOFailure indicates a file could not be found, read or written.
	KindIOFailure

	// KindInvalidKeyMaterial indicates a key artifact could not be decoded,
	// or decoded to a key that does not fit the requested algorithm or mode.
	KindInvalidKeyMaterial

	// KindUnsupportedAlgorithm indicates the requested algorithm is not available.
	KindUnsupportedAlgorithm

	// KindSignatureComputationFailure indicates the sign or verify primitive
	// could not produce or evaluate a result. A signature that simply does
	// not match is not reported with this kind.
	KindSignatureComputationFailure
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMissingInput:
		return "MissingInput"
	case KindIOFailure:
		return "IOFailure"
	case KindInvalidKeyMaterial:
		return "InvalidKeyMaterial"
	case KindUnsupportedAlgorithm:
		return "UnsupportedAlgorithm"
	case KindSignatureComputationFailure:
		return "SignatureComputationFailure"
	default:
		return "UnknownError"
	}
}

// Sentinels for use with errors.Is. Any *Error of the same Kind matches.
var (
	ErrMissingInput                = &Error{Kind: KindMissingInput, Message: "missing input"}
	ErrIOFailure                   = &Error{Kind: KindIOFailure, Message: "I/O failure"}
	ErrInvalidKeyMaterial          = &Error{Kind: KindInvalidKeyMaterial, Message: "invalid key material"}
	ErrUnsupportedAlgorithm        = &Error{Kind: KindUnsupportedAlgorithm, Message: "unsupported algorithm"}
	ErrSignatureComputationFailure = &Error{Kind: KindSignatureComputationFailure, Message: "signature computation failure"}
)

// Error is the structured error returned by this module's operations.
//
// Example usage:
//
//	ok, err := verify.Verify(ctx, pub, sig, file)
//	if errors.Is(err, signerr.ErrMissingInput) {
//	    // a path was not supplied
//	}
type Error struct {
	// Kind categorizes the error for programmatic handling.
	Kind Kind

	// Path is the file involved in the failure (optional).
	Path string

	// Message is a human-readable description of what went wrong.
	Message string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("%s: %s (path: %s): %v", e.Kind, e.Message, e.Path, e.Cause)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (path: %s)", e.Kind, e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for error chain unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New creates a new error of the given kind.
func New(kind Kind, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// NewWithPath creates a new error of the given kind that refers to path.
func NewWithPath(kind Kind, path, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// MissingInput reports that the named argument was not supplied.
func MissingInput(field string) *Error {
	return New(KindMissingInput, fmt.Sprintf("%s is required", field), nil)
}

// KindOf returns the Kind of the first *Error in err's chain,
// or KindUnknown when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind checks if err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
