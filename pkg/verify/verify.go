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

// Package verify checks detached file signatures against a public key
// artifact.
package verify

import (
	"bytes"
	"context"
	"fmt"
	"os"

	sigstoresig "github.com/sigstore/sigstore/pkg/signature"

	"github.com/sigstore/file-signing/pkg/keys"
	"github.com/sigstore/file-signing/pkg/logging"
	"github.com/sigstore/file-signing/pkg/signerr"
	"github.com/sigstore/file-signing/pkg/utils"
)

// Messages reported in Result.Message.
const (
	MessageVerified = "file is authentic and unmodified"
	MessageTampered = "verification FAILED: file or signature was modified, or the keys do not match"
)

// Result represents the outcome of a verification operation.
type Result struct {
	Verified bool   // Verified indicates whether the verification succeeded.
	Message  string // Message contains a human-readable description of the result.
}

// Verifier performs a complete file verification.
//
// A signature that does not match is reported as Result{Verified: false}
// with a nil error. Errors are reserved for checks that could not be
// carried out.
type Verifier interface {
	Verify(ctx context.Context) (Result, error)
}

// Ensure FileVerifier implements Verifier at compile time.
var _ Verifier = (*FileVerifier)(nil)

// VerifierOptions configures a FileVerifier.
type VerifierOptions struct {
	// PublicKeyPath is the PEM public key artifact. Required.
	PublicKeyPath string
	// SignaturePath is the raw signature produced by the signer. Required.
	SignaturePath string
	// TargetPath is the file the signature is checked against. Required.
	TargetPath string
	// Algorithm, when set, must match the algorithm of the public key.
	Algorithm string
	// Logger receives progress messages. Defaults to logging.Default().
	Logger logging.Logger
}

// FileVerifier verifies a single file against its signature.
type FileVerifier struct {
	opts   VerifierOptions
	logger logging.Logger
}

// NewFileVerifier checks that every path is set and returns a verifier. No
// files are touched until Verify is called.
func NewFileVerifier(opts VerifierOptions) (*FileVerifier, error) {
	if err := utils.RequirePaths(
		utils.NamedPath{Name: "public key path", Path: opts.PublicKeyPath},
		utils.NamedPath{Name: "signature path", Path: opts.SignaturePath},
		utils.NamedPath{Name: "target path", Path: opts.TargetPath},
	); err != nil {
		return nil, err
	}
	return &FileVerifier{
		opts:   opts,
		logger: logging.EnsureLogger(opts.Logger),
	}, nil
}

// Verify checks the signature over the entire target file. Calling it
// repeatedly on unchanged inputs gives the same answer.
func (v *FileVerifier) Verify(_ context.Context) (Result, error) {
	v.logger.Debugln("File verification")
	v.logger.Debug("  TARGET:       %s", v.opts.TargetPath)
	v.logger.Debug("  --public-key: %s", v.opts.PublicKeyPath)
	v.logger.Debug("  --signature:  %s", v.opts.SignaturePath)

	pub, err := keys.LoadPublicKey(v.opts.PublicKeyPath)
	if err != nil {
		return Result{}, err
	}

	alg, err := keys.ResolveAlgorithm(pub, v.opts.Algorithm)
	if err != nil {
		return Result{}, err
	}

	sig, err := utils.ReadFile("signature", v.opts.SignaturePath)
	if err != nil {
		return Result{}, err
	}
	if err := checkSignatureEncoding(pub, sig); err != nil {
		return Result{}, signerr.NewWithPath(signerr.KindSignatureComputationFailure, v.opts.SignaturePath,
			fmt.Sprintf("signature is not a valid %s signature", alg.Name), err)
	}

	verifier, err := sigstoresig.LoadVerifier(pub, alg.HashFunc())
	if err != nil {
		return Result{}, signerr.NewWithPath(signerr.KindInvalidKeyMaterial, v.opts.PublicKeyPath,
			fmt.Sprintf("key cannot be used with %s", alg.Name), err)
	}

	ok, err := verifyFile(verifier, sig, v.opts.TargetPath)
	if err != nil {
		return Result{}, err
	}

	fields := map[string]interface{}{"algorithm": alg.Name, "verified": ok}
	if fp, err := keys.Fingerprint(pub); err == nil {
		fields["fingerprint"] = fp
	}
	v.logger.WithFields(fields).Debug("Checked signature %s", v.opts.SignaturePath)

	if !ok {
		return Result{Verified: false, Message: MessageTampered}, nil
	}
	return Result{Verified: true, Message: MessageVerified}, nil
}

// verifyFile streams the target file through verifier. A read failure is an
// error; a signature that does not match is a false result.
func verifyFile(verifier sigstoresig.Verifier, sig []byte, path string) (bool, error) {
	f, err := utils.OpenFile("target file", path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	reader := &utils.ReadErrorCapture{R: f}
	verr := verifier.VerifySignature(bytes.NewReader(sig), reader)
	if reader.Err != nil {
		return false, signerr.NewWithPath(signerr.KindIOFailure, path, "failed to read target file", reader.Err)
	}
	return verr == nil, nil
}

// Verify reports whether signaturePath holds a valid signature over
// targetPath for the public key at publicKeyPath, using default options.
func Verify(ctx context.Context, publicKeyPath, signaturePath, targetPath string) (bool, error) {
	v, err := NewFileVerifier(VerifierOptions{
		PublicKeyPath: publicKeyPath,
		SignaturePath: signaturePath,
		TargetPath:    targetPath,
		Logger:        logging.NewLoggerWithOptions(logging.LoggerOptions{Level: logging.LevelWarn, Output: os.Stderr}),
	})
	if err != nil {
		return false, err
	}
	res, err := v.Verify(ctx)
	if err != nil {
		return false, err
	}
	return res.Verified, nil
}
