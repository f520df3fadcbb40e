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
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"

	sigstoresig "github.com/sigstore/sigstore/pkg/signature"

	"github.com/sigstore/file-signing/pkg/signerr"
)

// KeyPair is a freshly generated or loaded signing key together with its
// public half.
type KeyPair struct {
	Algorithm  Algorithm
	PrivateKey crypto.Signer
	PublicKey  crypto.PublicKey
}

// Generate creates a new key pair for alg. A nil rand uses crypto/rand.
func Generate(alg Algorithm, random io.Reader) (*KeyPair, error) {
	if random == nil {
		random = rand.Reader
	}

	var (
		priv crypto.Signer
		err  error
	)
	switch alg.KeyType() {
	case sigstoresig.ECDSA:
		if alg.Curve == nil {
			return nil, signerr.New(signerr.KindUnsupportedAlgorithm,
				fmt.Sprintf("algorithm %q has no curve", alg.Name), nil)
		}
		priv, err = ecdsa.GenerateKey(alg.Curve, random)
	case sigstoresig.RSA:
		if alg.RSABits < minRSABits {
			return nil, signerr.New(signerr.KindUnsupportedAlgorithm,
				fmt.Sprintf("algorithm %q has an invalid modulus size %d", alg.Name, alg.RSABits), nil)
		}
		priv, err = rsa.GenerateKey(random, alg.RSABits)
	case sigstoresig.ED25519:
		var edKey ed25519.PrivateKey
		_, edKey, err = ed25519.GenerateKey(random)
		priv = edKey
	default:
		return nil, signerr.New(signerr.KindUnsupportedAlgorithm,
			fmt.Sprintf("algorithm %q cannot generate keys", alg.Name), nil)
	}
	if err != nil {
		return nil, signerr.New(signerr.KindSignatureComputationFailure,
			fmt.Sprintf("failed to generate %s key", alg.Name), err)
	}

	return &KeyPair{
		Algorithm:  alg,
		PrivateKey: priv,
		PublicKey:  priv.Public(),
	}, nil
}

// Fingerprint returns the hint of the pair's public key.
func (kp *KeyPair) Fingerprint() (string, error) {
	return Fingerprint(kp.PublicKey)
}
