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

// Package signing produces detached signatures over files with a private key
// artifact.
package signing

import (
	"context"
	"fmt"
	"os"

	sigstoresig "github.com/sigstore/sigstore/pkg/signature"

	"github.com/sigstore/file-signing/pkg/keys"
	"github.com/sigstore/file-signing/pkg/logging"
	"github.com/sigstore/file-signing/pkg/signerr"
	"github.com/sigstore/file-signing/pkg/utils"
)

const signaturePerm = 0o644

// Result represents the outcome of a signing operation.
type Result struct {
	Verified bool
	Message  string
}

// Signer performs a complete file signing.
type Signer interface {
	Sign(ctx context.Context) (Result, error)
}

// Ensure FileSigner implements Signer at compile time.
var _ Signer = (*FileSigner)(nil)

// SignerOptions configures a FileSigner.
type SignerOptions struct {
	// PrivateKeyPath is the PEM private key artifact. Required.
	PrivateKeyPath string
	// SignaturePath receives the raw signature bytes. Required.
	SignaturePath string
	// TargetPath is the file to sign. Required.
	TargetPath string
	// Password decrypts an encrypted private key.
	Password string
	// Algorithm, when set, must match the algorithm of the private key.
	Algorithm string
	// Logger receives progress messages. Defaults to logging.Default().
	Logger logging.Logger
}

// FileSigner signs a single file with a private key artifact.
type FileSigner struct {
	opts   SignerOptions
	logger logging.Logger
}

// NewFileSigner checks that every path is set and returns a signer. No files
// are touched until Sign is called.
func NewFileSigner(opts SignerOptions) (*FileSigner, error) {
	if err := utils.RequirePaths(
		utils.NamedPath{Name: "private key path", Path: opts.PrivateKeyPath},
		utils.NamedPath{Name: "signature path", Path: opts.SignaturePath},
		utils.NamedPath{Name: "target path", Path: opts.TargetPath},
	); err != nil {
		return nil, err
	}
	return &FileSigner{
		opts:   opts,
		logger: logging.EnsureLogger(opts.Logger),
	}, nil
}

// Sign computes the signature over the entire target file and writes it to
// the signature path, replacing any existing content.
//
// The private key is loaded and checked against the requested algorithm
// first. The signature file is only written once the signature is complete.
func (s *FileSigner) Sign(_ context.Context) (Result, error) {
	s.logger.Debugln("File signing")
	s.logger.Debug("  TARGET:        %s", s.opts.TargetPath)
	s.logger.Debug("  --private-key: %s", s.opts.PrivateKeyPath)
	s.logger.Debug("  --signature:   %s", s.opts.SignaturePath)

	priv, err := keys.LoadPrivateKey(s.opts.PrivateKeyPath, s.opts.Password)
	if err != nil {
		return Result{}, err
	}

	alg, err := keys.ResolveAlgorithm(priv.Public(), s.opts.Algorithm)
	if err != nil {
		return Result{}, err
	}

	signer, err := sigstoresig.LoadSigner(priv, alg.HashFunc())
	if err != nil {
		return Result{}, signerr.NewWithPath(signerr.KindInvalidKeyMaterial, s.opts.PrivateKeyPath,
			fmt.Sprintf("key cannot be used with %s", alg.Name), err)
	}

	sig, err := signFile(signer, s.opts.TargetPath)
	if err != nil {
		return Result{}, err
	}

	if err := utils.WriteFileAtomic("signature", s.opts.SignaturePath, sig, signaturePerm); err != nil {
		return Result{}, err
	}

	fields := map[string]interface{}{"algorithm": alg.Name}
	if fp, err := keys.Fingerprint(priv.Public()); err == nil {
		fields["fingerprint"] = fp
	}
	s.logger.WithFields(fields).Debug("Wrote %d byte signature to %s", len(sig), s.opts.SignaturePath)

	return Result{
		Verified: true,
		Message:  fmt.Sprintf("Signed %s, signature written to %s", s.opts.TargetPath, s.opts.SignaturePath),
	}, nil
}

// signFile streams the target file through signer. Read failures are kept
// apart from failures of the primitive itself.
func signFile(signer sigstoresig.Signer, path string) ([]byte, error) {
	f, err := utils.OpenFile("target file", path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := &utils.ReadErrorCapture{R: f}
	sig, err := signer.SignMessage(reader)
	if reader.Err != nil {
		return nil, signerr.NewWithPath(signerr.KindIOFailure, path, "failed to read target file", reader.Err)
	}
	if err != nil {
		return nil, signerr.NewWithPath(signerr.KindSignatureComputationFailure, path, "failed to compute signature", err)
	}
	return sig, nil
}

// Sign signs targetPath with the private key at privateKeyPath and writes the
// signature to signaturePath, using default options.
func Sign(ctx context.Context, privateKeyPath, signaturePath, targetPath string) error {
	s, err := NewFileSigner(SignerOptions{
		PrivateKeyPath: privateKeyPath,
		SignaturePath:  signaturePath,
		TargetPath:     targetPath,
		Logger:         logging.NewLoggerWithOptions(logging.LoggerOptions{Level: logging.LevelWarn, Output: os.Stderr}),
	})
	if err != nil {
		return err
	}
	_, err = s.Sign(ctx)
	return err
}
