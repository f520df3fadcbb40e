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

// Package keys generates, serializes and loads the asymmetric key pairs used
// to sign and verify files.
package keys

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"fmt"
	"sort"
	"strings"

	protocommon "github.com/sigstore/protobuf-specs/gen/pb-go/common/v1"
	sigstoresig "github.com/sigstore/sigstore/pkg/signature"

	"github.com/sigstore/file-signing/pkg/signerr"
)

// DefaultAlgorithm is used when no algorithm is requested.
const DefaultAlgorithm = "ecdsa-p256-sha256"

// minRSABits is the smallest RSA modulus accepted for signing or verification.
const minRSABits = 2048

// Algorithm binds a key family, its generation parameter and a digest.
type Algorithm struct {
	// Name is the registry identifier, e.g. "ecdsa-p256-sha256".
	Name string

	// Details identifies the algorithm in the Sigstore registry.
	Details protocommon.PublicKeyDetails

	// Curve is set for ECDSA algorithms.
	Curve elliptic.Curve

	// RSABits is set for RSA algorithms.
	RSABits int

	details sigstoresig.AlgorithmDetails
}

// HashFunc returns the digest applied to the message before signing.
// It is crypto.Hash(0) for pure Ed25519.
func (a Algorithm) HashFunc() crypto.Hash {
	return a.details.GetHashType()
}

// KeyType returns the key family.
func (a Algorithm) KeyType() sigstoresig.PublicKeyType {
	return a.details.GetKeyType()
}

// KeyTypeString returns the key family as an upper-case name.
func (a Algorithm) KeyTypeString() string {
	switch a.KeyType() {
	case sigstoresig.ECDSA:
		return "ECDSA"
	case sigstoresig.RSA:
		return "RSA"
	case sigstoresig.ED25519:
		return "ED25519"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	return a.Name
}

type registryEntry struct {
	details protocommon.PublicKeyDetails
	curve   elliptic.Curve
	rsaBits int
}

var registry = map[string]registryEntry{
	"ecdsa-p256-sha256":        {details: protocommon.PublicKeyDetails_PKIX_ECDSA_P256_SHA_256, curve: elliptic.P256()},
	"ecdsa-p384-sha384":        {details: protocommon.PublicKeyDetails_PKIX_ECDSA_P384_SHA_384, curve: elliptic.P384()},
	"ecdsa-p521-sha512":        {details: protocommon.PublicKeyDetails_PKIX_ECDSA_P521_SHA_512, curve: elliptic.P521()},
	"rsa-pkcs1v15-2048-sha256": {details: protocommon.PublicKeyDetails_PKIX_RSA_PKCS1V15_2048_SHA256, rsaBits: 2048},
	"rsa-pkcs1v15-3072-sha256": {details: protocommon.PublicKeyDetails_PKIX_RSA_PKCS1V15_3072_SHA256, rsaBits: 3072},
	"rsa-pkcs1v15-4096-sha256": {details: protocommon.PublicKeyDetails_PKIX_RSA_PKCS1V15_4096_SHA256, rsaBits: 4096},
	"ed25519":                  {details: protocommon.PublicKeyDetails_PKIX_ED25519},
}

// Algorithms returns the registered algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseAlgorithm looks up an algorithm by name. An empty name selects
// DefaultAlgorithm. Names are matched case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	if name == "" {
		name = DefaultAlgorithm
	}
	name = strings.ToLower(strings.TrimSpace(name))

	entry, ok := registry[name]
	if !ok {
		return Algorithm{}, signerr.New(signerr.KindUnsupportedAlgorithm,
			fmt.Sprintf("unknown algorithm %q (supported: %s)", name, strings.Join(Algorithms(), ", ")), nil)
	}

	details, err := sigstoresig.GetAlgorithmDetails(entry.details)
	if err != nil {
		return Algorithm{}, signerr.New(signerr.KindUnsupportedAlgorithm,
			fmt.Sprintf("algorithm %q is not available", name), err)
	}

	return Algorithm{
		Name:    name,
		Details: entry.details,
		Curve:   entry.curve,
		RSABits: entry.rsaBits,
		details: details,
	}, nil
}

// AlgorithmForPublicKey recovers the algorithm a key was generated for from
// its type, curve and modulus size.
func AlgorithmForPublicKey(pub crypto.PublicKey) (Algorithm, error) {
	switch k := pub.(type) {
	case *ecdsa.PublicKey:
		switch k.Curve {
		case elliptic.P256():
			return ParseAlgorithm("ecdsa-p256-sha256")
		case elliptic.P384():
			return ParseAlgorithm("ecdsa-p384-sha384")
		case elliptic.P521():
			return ParseAlgorithm("ecdsa-p521-sha512")
		default:
			return Algorithm{}, signerr.New(signerr.KindInvalidKeyMaterial,
				fmt.Sprintf("unsupported ECDSA curve: %s", k.Curve.Params().Name), nil)
		}
	case *rsa.PublicKey:
		bitSize := k.N.BitLen()
		switch {
		case bitSize < minRSABits:
			return Algorithm{}, signerr.New(signerr.KindInvalidKeyMaterial,
				fmt.Sprintf("RSA key size %d is below the %d bit minimum", bitSize, minRSABits), nil)
		case bitSize <= 2048:
			return ParseAlgorithm("rsa-pkcs1v15-2048-sha256")
		case bitSize <= 3072:
			return ParseAlgorithm("rsa-pkcs1v15-3072-sha256")
		default:
			return ParseAlgorithm("rsa-pkcs1v15-4096-sha256")
		}
	case ed25519.PublicKey:
		return ParseAlgorithm("ed25519")
	default:
		return Algorithm{}, signerr.New(signerr.KindInvalidKeyMaterial,
			fmt.Sprintf("unsupported key type: %T", pub), nil)
	}
}

// ResolveAlgorithm derives the algorithm for pub and, when pinned is not
// empty, checks that it matches. A mismatch means the key does not fit the
// requested algorithm and is reported as InvalidKeyMaterial.
func ResolveAlgorithm(pub crypto.PublicKey, pinned string) (Algorithm, error) {
	alg, err := AlgorithmForPublicKey(pub)
	if err != nil {
		return Algorithm{}, err
	}
	if pinned == "" {
		return alg, nil
	}

	want, err := ParseAlgorithm(pinned)
	if err != nil {
		return Algorithm{}, err
	}
	if want.Name != alg.Name {
		return Algorithm{}, signerr.New(signerr.KindInvalidKeyMaterial,
			fmt.Sprintf("key is %s, but %s was requested", alg.Name, want.Name), nil)
	}
	return alg, nil
}
