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
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/sigstore/sigstore/pkg/cryptoutils"

	"github.com/sigstore/file-signing/pkg/signerr"
	"github.com/sigstore/file-signing/pkg/utils"
)

// passFunc returns a cryptoutils.PassFunc for password, or nil when no
// password is set.
func passFunc(password string) cryptoutils.PassFunc {
	if password == "" {
		return nil
	}
	return func(_ bool) ([]byte, error) {
		return []byte(password), nil
	}
}

// MarshalPrivateKey encodes priv as PEM. Without a password the result is an
// unencrypted PKCS#8 "PRIVATE KEY" block and is deterministic for a given
// key. With a password it is an "ENCRYPTED SIGSTORE PRIVATE KEY" block.
func MarshalPrivateKey(priv crypto.PrivateKey, password string) ([]byte, error) {
	if password == "" {
		pemBytes, err := cryptoutils.MarshalPrivateKeyToPEM(priv)
		if err != nil {
			return nil, signerr.New(signerr.KindInvalidKeyMaterial, "failed to encode private key", err)
		}
		return pemBytes, nil
	}

	der, err := cryptoutils.MarshalPrivateKeyToEncryptedDER(priv, passFunc(password))
	if err != nil {
		return nil, signerr.New(signerr.KindInvalidKeyMaterial, "failed to encrypt private key", err)
	}
	return cryptoutils.PEMEncode(cryptoutils.EncryptedSigstorePrivateKeyPEMType, der), nil
}

// MarshalPublicKey encodes pub as a PKIX "PUBLIC KEY" PEM block.
func MarshalPublicKey(pub crypto.PublicKey) ([]byte, error) {
	pemBytes, err := cryptoutils.MarshalPublicKeyToPEM(pub)
	if err != nil {
		return nil, signerr.New(signerr.KindInvalidKeyMaterial, "failed to encode public key", err)
	}
	return pemBytes, nil
}

// ParsePrivateKey decodes a PEM private key artifact. PKCS#8, PKCS#1, SEC 1
// and encrypted Sigstore keys are accepted; password is required for the
// latter. The key must be usable for signing.
func ParsePrivateKey(pemBytes []byte, password string) (crypto.Signer, error) {
	if password == "" && isEncrypted(pemBytes) {
		return nil, signerr.New(signerr.KindInvalidKeyMaterial, "private key is encrypted and no password was given", nil)
	}
	privKey, err := cryptoutils.UnmarshalPEMToPrivateKey(pemBytes, passFunc(password))
	if err != nil {
		return nil, signerr.New(signerr.KindInvalidKeyMaterial, "failed to parse private key", err)
	}

	signer, ok := privKey.(crypto.Signer)
	if !ok {
		return nil, signerr.New(signerr.KindInvalidKeyMaterial,
			fmt.Sprintf("private key of type %T does not implement crypto.Signer", privKey), nil)
	}
	return signer, nil
}

// ParsePublicKey decodes a PEM public key artifact.
func ParsePublicKey(pemBytes []byte) (crypto.PublicKey, error) {
	pub, err := cryptoutils.UnmarshalPEMToPublicKey(pemBytes)
	if err != nil {
		return nil, signerr.New(signerr.KindInvalidKeyMaterial, "failed to parse public key", err)
	}
	return pub, nil
}

// LoadPrivateKey reads and decodes the private key artifact at path.
func LoadPrivateKey(path, password string) (crypto.Signer, error) {
	pemBytes, err := utils.ReadFile("private key", path)
	if err != nil {
		return nil, err
	}
	signer, err := ParsePrivateKey(pemBytes, password)
	if err != nil {
		return nil, withPath(err, path)
	}
	return signer, nil
}

// LoadPublicKey reads and decodes the public key artifact at path.
func LoadPublicKey(path string) (crypto.PublicKey, error) {
	pemBytes, err := utils.ReadFile("public key", path)
	if err != nil {
		return nil, err
	}
	pub, err := ParsePublicKey(pemBytes)
	if err != nil {
		return nil, withPath(err, path)
	}
	return pub, nil
}

func isEncrypted(pemBytes []byte) bool {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return false
	}
	return strings.HasPrefix(block.Type, "ENCRYPTED ")
}

func withPath(err error, path string) error {
	var e *signerr.Error
	if errors.As(err, &e) && e.Path == "" {
		e.Path = path
	}
	return err
}
