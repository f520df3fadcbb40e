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

package verify

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// checkSignatureEncoding rejects signatures whose structure can never be
// valid for pub, so they are reported as malformed instead of as a mismatch.
func checkSignatureEncoding(pub crypto.PublicKey, sig []byte) error {
	switch k := pub.(type) {
	case *ecdsa.PublicKey:
		return checkECDSASignature(sig)
	case *rsa.PublicKey:
		if want := (k.N.BitLen() + 7) / 8; len(sig) != want {
			return fmt.Errorf("RSA signature is %d bytes, want %d", len(sig), want)
		}
		return nil
	case ed25519.PublicKey:
		if len(sig) != ed25519.SignatureSize {
			return fmt.Errorf("Ed25519 signature is %d bytes, want %d", len(sig), ed25519.SignatureSize)
		}
		return nil
	default:
		return fmt.Errorf("unsupported public key type: %T", pub)
	}
}

// checkECDSASignature parses an ASN.1 SEQUENCE { r INTEGER, s INTEGER } with
// both integers positive and no trailing data.
func checkECDSASignature(sig []byte) error {
	var (
		r, s  = new(big.Int), new(big.Int)
		inner cryptobyte.String
	)
	input := cryptobyte.String(sig)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(r) ||
		!inner.ReadASN1Integer(s) ||
		!inner.Empty() {
		return errors.New("ECDSA signature is not a DER SEQUENCE of two integers")
	}
	if r.Sign() <= 0 || s.Sign() <= 0 {
		return errors.New("ECDSA signature has a non-positive component")
	}
	return nil
}
