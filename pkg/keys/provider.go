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

package keys

import (
	"context"
	"crypto/rand"
	"io"

	"github.com/sigstore/file-signing/pkg/logging"
	"github.com/sigstore/file-signing/pkg/utils"
)

const (
	privateKeyPerm = 0o600
	publicKeyPerm  = 0o644
)

// KeyPairProviderOptions configures a KeyPairProvider.
type KeyPairProviderOptions struct {
	// Algorithm names the registry entry to generate. Defaults to DefaultAlgorithm.
	Algorithm string
	// Password encrypts the private key artifact when set.
	Password string
	// Logger receives progress messages. Defaults to logging.Default().
	Logger logging.Logger
	// Rand is the entropy source. Defaults to crypto/rand.Reader.
	Rand io.Reader
}

// KeyPairProvider generates key pairs and persists them as PEM artifacts.
type KeyPairProvider struct {
	alg      Algorithm
	password string
	logger   logging.Logger
	rand     io.Reader
}

// NewKeyPairProvider resolves the configured algorithm and returns a provider.
// An unknown algorithm is reported as UnsupportedAlgorithm.
func NewKeyPairProvider(opts KeyPairProviderOptions) (*KeyPairProvider, error) {
	alg, err := ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	random := opts.Rand
	if random == nil {
		random = rand.Reader
	}

	return &KeyPairProvider{
		alg:      alg,
		password: opts.Password,
		logger:   logging.EnsureLogger(opts.Logger),
		rand:     random,
	}, nil
}

// Algorithm returns the algorithm the provider generates.
func (p *KeyPairProvider) Algorithm() Algorithm {
	return p.alg
}

// GenerateAndPersist creates a fresh key pair and writes the private key to
// privateKeyPath and the public key to publicKeyPath, replacing any existing
// files. Both paths are required and must differ.
//
// The private key is written with mode 0600 and the public key with 0644.
// Each artifact is written atomically, so a failure never leaves a truncated
// key behind.
func (p *KeyPairProvider) GenerateAndPersist(_ context.Context, privateKeyPath, publicKeyPath string) (*KeyPair, error) {
	privName := utils.NamedPath{Name: "private key path", Path: privateKeyPath}
	pubName := utils.NamedPath{Name: "public key path", Path: publicKeyPath}
	if err := utils.RequirePaths(privName, pubName); err != nil {
		return nil, err
	}
	if err := utils.ValidateDistinctPaths(privName, pubName); err != nil {
		return nil, err
	}

	p.logger.Debug("Generating %s key pair", p.alg.Name)
	kp, err := Generate(p.alg, p.rand)
	if err != nil {
		return nil, err
	}

	privPEM, err := MarshalPrivateKey(kp.PrivateKey, p.password)
	if err != nil {
		return nil, err
	}
	pubPEM, err := MarshalPublicKey(kp.PublicKey)
	if err != nil {
		return nil, err
	}

	if err := utils.WriteFileAtomic("private key", privateKeyPath, privPEM, privateKeyPerm); err != nil {
		return nil, err
	}
	if err := utils.WriteFileAtomic("public key", publicKeyPath, pubPEM, publicKeyPerm); err != nil {
		return nil, err
	}

	if fp, err := kp.Fingerprint(); err == nil {
		p.logger.WithFields(map[string]interface{}{
			"algorithm":   p.alg.Name,
			"fingerprint": fp,
			"encrypted":   p.password != "",
		}).Info("Key pair written to %s and %s", privateKeyPath, publicKeyPath)
	}

	return kp, nil
}

// GenerateAndPersist creates a key pair with default options.
func GenerateAndPersist(ctx context.Context, privateKeyPath, publicKeyPath string) (*KeyPair, error) {
	p, err := NewKeyPairProvider(KeyPairProviderOptions{})
	if err != nil {
		return nil, err
	}
	return p.GenerateAndPersist(ctx, privateKeyPath, publicKeyPath)
}
