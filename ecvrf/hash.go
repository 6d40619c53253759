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
	"crypto/sha512"

	"github.com/gtank/ristretto255"
)

// hashToCurve computes H = hash_to_curve(Y, alpha). The 64-byte
// SHA-512 digest is fed directly to Ristretto's uniform-bytes constructor,
// which performs the Elligator-based map internally; this package never
// reimplements that map.
func hashToCurve(y, alpha []byte) *ristretto255.Element {
	h := sha512.New()
	_, _ = h.Write([]byte{Suite, tagHashToCurve})
	_, _ = h.Write(y)
	_, _ = h.Write(alpha)

	var digest [64]byte
	h.Sum(digest[:0])
	defer zeroize(digest[:])

	// SetUniformBytes never fails for a 64-byte input.
	p, _ := ristretto255.NewIdentityElement().SetUniformBytes(digest[:])
	return p
}

// nonce computes k = nonce(seed, H). Only the lower 32 bytes of
// SHA-512(seed || compress(H)) are used; the upper 32 bytes are discarded
// per the suite definition, then the lower half is reduced modulo the
// group order. Zero-extending the 32-byte value to 64 bytes before calling
// SetUniformBytes performs exactly that reduction, since the high half of
// the wide input is zero.
func nonce(seed [32]byte, h *ristretto255.Element) *ristretto255.Scalar {
	hash := sha512.New()
	_, _ = hash.Write(seed[:])
	_, _ = hash.Write(h.Bytes())

	var digest [64]byte
	hash.Sum(digest[:0])
	defer zeroize(digest[:])

	var wide [64]byte
	copy(wide[:32], digest[:32])
	defer zeroize(wide[:])

	// SetUniformBytes never fails for a 64-byte input.
	k, _ := ristretto255.NewScalar().SetUniformBytes(wide[:])
	return k
}

// challenge computes c = challenge(P1, P2, P3, P4), a scalar whose
// upper 16 bytes are zero by construction.
func challenge(p1, p2, p3, p4 *ristretto255.Element) *ristretto255.Scalar {
	h := sha512.New()
	_, _ = h.Write([]byte{Suite, tagChallenge})
	_, _ = h.Write(p1.Bytes())
	_, _ = h.Write(p2.Bytes())
	_, _ = h.Write(p3.Bytes())
	_, _ = h.Write(p4.Bytes())

	var digest [64]byte
	h.Sum(digest[:0])

	var cBytes [32]byte
	copy(cBytes[:16], digest[:16])

	// A value whose top 16 bytes are zero is always < the group order, so
	// this can never fail.
	c, _ := ristretto255.NewScalar().SetCanonicalBytes(cBytes[:])
	return c
}
