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
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/oasisprotocol/ecvrf-ristretto255/internal/testdata"
)

// FuzzProveVerifyRoundTrip checks that every proof Prove produces for a
// fuzzed (sk, alpha) pair is accepted by Verify under the matching public
// key, and that flipping the low bit of alpha's first byte never flips the
// verdict to true.
func FuzzProveVerifyRoundTrip(f *testing.F) {
	drbg := testdata.New("ecvrf fuzz round-trip")
	for range 10 {
		f.Add(drbg.Data(1024))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		skRaw, err := tp.GetBytes()
		if err != nil || len(skRaw) < SecretKeySize {
			t.Skip(err)
		}
		sk := skRaw[:SecretKeySize]

		alpha, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		pk := DerivePublicKey(sk)
		pi, err := Prove(sk, alpha)
		if err != nil {
			t.Fatalf("Prove: %v", err)
		}

		ok, err := Verify(pk, pi, alpha)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if !ok {
			t.Fatalf("Verify() rejected a freshly produced proof")
		}

		if len(alpha) > 0 {
			tampered := append([]byte(nil), alpha...)
			tampered[0] ^= 0x01
			ok, err := Verify(pk, pi, tampered)
			if err != nil {
				return
			}
			if ok {
				t.Fatalf("Verify() accepted a proof against tampered alpha")
			}
		}
	})
}

// FuzzDecode checks that Decode never panics on arbitrary input, and that
// anything it does accept survives an Encode/Decode round trip.
func FuzzDecode(f *testing.F) {
	drbg := testdata.New("ecvrf fuzz decode")
	for range 10 {
		f.Add(drbg.Data(ProofSize))
	}
	f.Add(make([]byte, 0))
	f.Add(make([]byte, ProofSize-1))
	f.Add(make([]byte, ProofSize+1))

	f.Fuzz(func(t *testing.T, data []byte) {
		pi, err := Decode(data)
		if err != nil {
			return
		}
		encoded, err := pi.Encode()
		if err != nil {
			return
		}
		again, err := Decode(encoded[:])
		if err != nil {
			t.Fatalf("Decode(Encode(Decode(data))) failed: %v", err)
		}
		reEncoded, err := again.Encode()
		if err != nil {
			t.Fatalf("re-Encode failed: %v", err)
		}
		if encoded != reEncoded {
			t.Fatalf("decode/encode is not idempotent for accepted input")
		}
	})
}
