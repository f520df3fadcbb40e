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
	"crypto/sha256"
	"encoding/hex"

	"github.com/sigstore/sigstore/pkg/cryptoutils"

	"github.com/sigstore/file-signing/pkg/signerr"
)

// Fingerprint computes a key hint from a public key: the SHA256 hash of the
// PEM-encoded public key, hex-encoded. Signers and verifiers log it so an
// operator can match a signature to the key that produced it.
func Fingerprint(pub crypto.PublicKey) (string, error) {
	pubKeyPEM, err := cryptoutils.MarshalPublicKeyToPEM(pub)
	if err != nil {
		return "", signerr.New(signerr.KindInvalidKeyMaterial, "failed to marshal public key to PEM", err)
	}

	hashed := sha256.Sum256(pubKeyPEM)
	return hex.EncodeToString(hashed[:]), nil
}
