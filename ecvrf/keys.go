// Copyright (c) 2021 Oasis Labs Inc. All rights reserved.
// Copyright (c) 2021 Yawning Angel. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
// 1. Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//
// 2. Redistributions in binary form must reproduce the above copyright
// notice, this list of conditions and the following disclaimer in the
// documentation and/or other materials provided with the distribution.
//
// 3. Neither the name of the copyright holder nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS
// IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED
// TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A
// PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED
// TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR
// PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF
// LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
// NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS
// SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package ecvrf

import (
	"crypto/ed25519"
	"crypto/sha512"

	"filippo.io/edwards25519"
	"github.com/gtank/ristretto255"
)

// SecretKeySize is the size, in bytes, of a VRF secret key.
const SecretKeySize = 32

// PublicKeySize is the size, in bytes, of a VRF public key: a compressed
// Edwards25519 point.
const PublicKeySize = 32

// expandedSecret is the transient (Y, x, seed) tuple derived from a secret
// key. It exists only for the duration of a single Prove call, which
// zeroizes seed on every exit path; x is not overwritten.
type expandedSecret struct {
	y    ed25519.PublicKey
	x    *ristretto255.Scalar
	seed [32]byte
}

// DerivePublicKey computes the compressed Edwards25519 public key for a
// 32-byte secret key, using the standard Ed25519 key-derivation procedure:
// SHA-512 the secret, clamp the lower half, scalar-multiply the Edwards
// basepoint, and compress.
//
// DerivePublicKey panics if sk is not SecretKeySize bytes long.
func DerivePublicKey(sk []byte) []byte {
	if len(sk) != SecretKeySize {
		panic("ecvrf: bad secret key length")
	}

	priv := ed25519.NewKeyFromSeed(sk)
	pub := priv.Public().(ed25519.PublicKey)

	out := make([]byte, PublicKeySize)
	copy(out, pub)
	return out
}

// expand performs key expansion: Y = public point, x = clamped
// signing scalar, seed = nonce seed, derived from sha512(sk).
//
// x is derived with the same RFC 8032 clamping the standard library's
// ed25519 package applies internally; filippo.io/edwards25519 stores
// scalars reduced modulo the group order, so the clamped integer and its
// reduction are used interchangeably here, which is safe because every
// point this scalar ever multiplies lies in the prime-order subgroup.
func expand(sk []byte) (expandedSecret, error) {
	if len(sk) != SecretKeySize {
		return expandedSecret{}, errInvalidData("bad secret key length")
	}

	var digest [64]byte
	h := sha512.New()
	_, _ = h.Write(sk)
	h.Sum(digest[:0])
	defer zeroize(digest[:])

	lo := make([]byte, 32)
	copy(lo, digest[:32])
	defer zeroize(lo)

	xEd, err := edwards25519.NewScalar().SetBytesWithClamping(lo)
	if err != nil {
		return expandedSecret{}, errInvalidData("failed to clamp signing scalar: " + err.Error())
	}
	x, err := ristretto255.NewScalar().SetCanonicalBytes(xEd.Bytes())
	if err != nil {
		return expandedSecret{}, errInvalidData("failed to derive signing scalar: " + err.Error())
	}

	var seed [32]byte
	copy(seed[:], digest[32:64])

	priv := ed25519.NewKeyFromSeed(sk)
	y := make(ed25519.PublicKey, PublicKeySize)
	copy(y, priv.Public().(ed25519.PublicKey))

	return expandedSecret{y: y, x: x, seed: seed}, nil
}

// zeroize unconditionally overwrites b with zeroes. It is best-effort: Go
// offers no guaranteed secure-erase primitive for heap memory once a value
// has passed through an opaque library type such as *ristretto255.Scalar
// (see DESIGN.md). Every buffer this package controls directly is cleared
// on all exit paths regardless.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
