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

// Command ecvrf is a thin command-line front-end around the ecvrf library.
// It is not part of the VRF core: the only logic here is argument parsing,
// hex encoding/decoding, and OS randomness for key generation.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/oasisprotocol/ecvrf-ristretto255/ecvrf"
)

func usage(prog string) {
	fmt.Fprintf(os.Stderr, "Usage: %s secret|pubkey|prove|verify ...\n", prog)
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Args[0])
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "secret":
		err = cmdSecret()
	case "pubkey":
		err = cmdPubkey(os.Args[2:])
	case "prove":
		err = cmdProve(os.Args[2:])
	case "verify":
		err = cmdVerify(os.Args[2:])
	default:
		usage(os.Args[0])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cmdSecret() error {
	sk := make([]byte, ecvrf.SecretKeySize)
	if _, err := rand.Read(sk); err != nil {
		return fmt.Errorf("failed to read random bytes: %w", err)
	}
	fmt.Println(hex.EncodeToString(sk))
	return nil
}

func cmdPubkey(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pubkey SECRET")
	}
	sk, err := hex.DecodeString(args[0])
	if err != nil || len(sk) != ecvrf.SecretKeySize {
		return fmt.Errorf("invalid secret -- expected %d-byte hex string", ecvrf.SecretKeySize)
	}
	pk := ecvrf.DerivePublicKey(sk)
	fmt.Println(hex.EncodeToString(pk))
	return nil
}

func cmdProve(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: prove SECRET MESSAGE")
	}
	sk, err := hex.DecodeString(args[0])
	if err != nil || len(sk) != ecvrf.SecretKeySize {
		return fmt.Errorf("invalid secret -- expected %d-byte hex string", ecvrf.SecretKeySize)
	}
	alpha := []byte(args[1])

	pi, err := ecvrf.Prove(sk, alpha)
	if err != nil {
		return fmt.Errorf("prove: %w", err)
	}
	encoded, err := pi.Encode()
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	fmt.Println(hex.EncodeToString(encoded[:]))
	return nil
}

func cmdVerify(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: verify PUBKEY PROOF MESSAGE")
	}
	pk, err := hex.DecodeString(args[0])
	if err != nil || len(pk) != ecvrf.PublicKeySize {
		return fmt.Errorf("invalid pubkey -- expected %d-byte hex string", ecvrf.PublicKeySize)
	}
	proofBytes, err := hex.DecodeString(args[1])
	if err != nil {
		return fmt.Errorf("invalid proof -- expected %d-byte hex string", ecvrf.ProofSize)
	}
	pi, err := ecvrf.Decode(proofBytes)
	if err != nil {
		return fmt.Errorf("invalid proof: %w", err)
	}
	alpha := []byte(args[2])

	ok, err := ecvrf.Verify(pk, pi, alpha)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	fmt.Println(ok)
	return nil
}
