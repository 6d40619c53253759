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
	"bytes"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
	"github.com/gtank/ristretto255"
)

var (
	constOne = new(field.Element).One()

	constSQRT_M1 = mustFeFromBytes([]byte{
		0xb0, 0xa0, 0x0e, 0x4a, 0x27, 0x1b, 0xee, 0xc4, 0x78, 0xe4, 0x2f, 0xad, 0x06, 0x18, 0x43, 0x2f,
		0xa7, 0xd7, 0xfb, 0x3d, 0x99, 0x00, 0x4d, 0x2b, 0x0b, 0xdf, 0xc1, 0x4f, 0x80, 0x24, 0x83, 0x2b,
	})

	constINVSQRT_A_MINUS_D = mustFeFromBytes([]byte{
		0xea, 0x40, 0x5d, 0x80, 0xaa, 0xfd, 0xc8, 0x99, 0xbe, 0x72, 0x41, 0x5a, 0x17, 0x16, 0x2f, 0x9d,
		0x40, 0xd8, 0x01, 0xfe, 0x91, 0x7b, 0xc2, 0x16, 0xa2, 0xfc, 0xaf, 0xcf, 0x05, 0x89, 0x6c, 0x78,
	})
)

func mustFeFromBytes(b []byte) *field.Element {
	fe, err := new(field.Element).SetBytes(b)
	if err != nil {
		panic("ecvrf: failed to deserialize constant: " + err.Error())
	}
	return fe
}

// ristrettoFromEdwardsBytes decompresses a standard Ed25519 public key and
// reinterprets it as a Ristretto255 element. The Edwards compressed
// encoding is not the Ristretto canonical encoding, even for points that
// lie in the prime-order subgroup, so the input is decompressed with the
// Edwards library, re-encoded from its extended coordinates as Ristretto
// canonical bytes, and decoded by ristretto255 itself.
func ristrettoFromEdwardsBytes(pk []byte) (*ristretto255.Element, error) {
	if len(pk) != PublicKeySize {
		return nil, errInvalidData("bad public key length")
	}

	ep, err := edwards25519.NewIdentityPoint().SetBytes(pk)
	if err != nil {
		return nil, errInvalidData("failed to decompress public key: " + err.Error())
	}
	// RFC 8032 decode semantics: reject non-canonical encodings.
	if !bytes.Equal(ep.Bytes(), pk) {
		return nil, errInvalidData("non-canonical public key encoding")
	}

	rp, err := ristretto255.NewIdentityElement().SetCanonicalBytes(ristrettoEncode(ep))
	if err != nil {
		// Reached for Edwards points outside the even-order subgroup
		// (an order-8 torsion point, for one): ristrettoEncode then
		// yields bytes that ristretto255 rejects.
		return nil, errInvalidData("failed to reinterpret public key as Ristretto element: " + err.Error())
	}
	return rp, nil
}

// ristrettoEncode computes the canonical Ristretto255 encoding of the coset
// represented by an Edwards point, per the ENCODE routine of RFC 9496
// Section 4.3.2, operating on the point's extended (X:Y:Z:T) coordinates.
// ristretto255 exposes no constructor from an Edwards point, so the
// encoding is computed here and handed back to the library's own decoder.
func ristrettoEncode(ep *edwards25519.Point) []byte {
	X, Y, Z, T := ep.ExtendedCoordinates()

	u1 := new(field.Element).Add(Z, Y)
	zMinusY := new(field.Element).Subtract(Z, Y)
	u1.Multiply(u1, zMinusY)

	u2 := new(field.Element).Multiply(X, Y)

	// invSqrt = 1/sqrt(u1 * u2^2)
	u1u2u2 := new(field.Element).Square(u2)
	u1u2u2.Multiply(u1, u1u2u2)
	invSqrt, _ := new(field.Element).SqrtRatio(constOne, u1u2u2)

	den1 := new(field.Element).Multiply(invSqrt, u1)
	den2 := new(field.Element).Multiply(invSqrt, u2)
	zInv := new(field.Element).Multiply(den1, den2)
	zInv.Multiply(zInv, T)

	ix := new(field.Element).Multiply(X, constSQRT_M1)
	iy := new(field.Element).Multiply(Y, constSQRT_M1)
	enchantedDenominator := new(field.Element).Multiply(den1, constINVSQRT_A_MINUS_D)

	tZInv := new(field.Element).Multiply(T, zInv)
	rotate := tZInv.IsNegative()

	x := new(field.Element).Select(iy, X, rotate)
	y := new(field.Element).Select(ix, Y, rotate)
	denInv := new(field.Element).Select(enchantedDenominator, den2, rotate)

	xZInv := new(field.Element).Multiply(x, zInv)
	negY := new(field.Element).Negate(y)
	y.Select(negY, y, xZInv.IsNegative())

	s := new(field.Element).Subtract(Z, y)
	s.Multiply(denInv, s)
	s.Absolute(s)

	return s.Bytes()
}
