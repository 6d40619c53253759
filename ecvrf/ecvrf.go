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
	"crypto/subtle"

	"github.com/gtank/ristretto255"
)

// Prove derives a Proof for alpha under the secret key sk.
//
// Prove only fails on a malformed secret key; for any well-formed
// 32-byte sk it always succeeds. All scalar arithmetic touching x, k, and
// c runs through ristretto255's constant-time scalar and point
// operations. The nonce seed and the byte buffers holding the
// key-expansion and nonce digests are zeroized on every exit path; the
// scalars x and k are opaque ristretto255 values and are not overwritten.
func Prove(sk []byte, alpha []byte) (*Proof, error) {
	es, err := expand(sk)
	if err != nil {
		return nil, err
	}
	defer zeroize(es.seed[:])

	h := hashToCurve(es.y, alpha)

	gamma := ristretto255.NewIdentityElement().ScalarMult(es.x, h)

	k := nonce(es.seed, h)

	kB := ristretto255.NewIdentityElement().ScalarBaseMult(k)
	kH := ristretto255.NewIdentityElement().ScalarMult(k, h)

	c := challenge(h, gamma, kB, kH)

	s := ristretto255.NewScalar().Multiply(c, es.x)
	s.Add(s, k)

	return &Proof{Gamma: gamma, C: c, S: s}, nil
}

// Verify checks proof pi against public key pk and message
// alpha. Verify reports an InvalidDataError only if pk cannot be decoded;
// a structurally valid proof that simply fails to match the recomputed
// challenge returns (false, nil), never an error.
func Verify(pk []byte, pi *Proof, alpha []byte) (bool, error) {
	y, err := ristrettoFromEdwardsBytes(pk)
	if err != nil {
		return false, err
	}

	h := hashToCurve(pk, alpha)

	// U = s*B - c*Y
	negC := ristretto255.NewScalar().Negate(pi.C)
	u := ristretto255.NewIdentityElement().VarTimeDoubleScalarBaseMult(negC, y, pi.S)

	// V = s*H - c*Gamma
	v := ristretto255.NewIdentityElement().VarTimeMultiScalarMult(
		[]*ristretto255.Scalar{pi.S, negC},
		[]*ristretto255.Element{h, pi.Gamma},
	)

	cPrime := challenge(h, pi.Gamma, u, v)

	if subtle.ConstantTimeCompare(cPrime.Bytes(), pi.C.Bytes()) != 1 {
		return false, nil
	}
	return true, nil
}

// ProofToHash recovers the VRF output beta from an already-validated
// proof. Callers should only invoke this on proofs that Verify has
// accepted; ProofToHash itself performs no challenge check.
func ProofToHash(pi *Proof) [OutputSize]byte {
	h := sha512.New()
	_, _ = h.Write([]byte{Suite, tagProofToHash})
	_, _ = h.Write(pi.Gamma.Bytes())
	_, _ = h.Write([]byte{0x00})

	var out [OutputSize]byte
	h.Sum(out[:0])
	return out
}
