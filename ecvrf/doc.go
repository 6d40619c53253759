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

// Package ecvrf implements a Verifiable Random Function over the
// Ristretto255 prime-order group built on edwards25519, using SHA-512 as
// the underlying hash: ECVRF-ED25519-SHA512-RistrettoElligator.
//
// A prover holding a 32-byte secret key can derive, for any message
// alpha, a pseudorandom output together with a proof that the output was
// computed correctly. Anyone holding the corresponding public key can
// verify the proof and recover the same output; unlike a signature, the
// output is a deterministic function of the key and the message.
//
// Suite identifier 0x05 is provisional and is not interoperable with any
// other VRF suite.
package ecvrf

import "crypto/sha512"

// Suite is the one-byte ciphersuite identifier for
// ECVRF-ED25519-SHA512-RistrettoElligator. It is provisional and fixed;
// implementations must not make it configurable.
const Suite = 0x05

const (
	tagHashToCurve = 0x01
	tagChallenge   = 0x02
	tagProofToHash = 0x03
)

// ProofSize is the size, in bytes, of an encoded Proof: a compressed
// Ristretto element, a 16-byte truncated challenge, and a 32-byte scalar.
const ProofSize = 32 + 16 + 32

// OutputSize is the size, in bytes, of the pseudorandom output returned
// by ProofToHash.
const OutputSize = sha512.Size
