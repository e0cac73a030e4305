// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derivation - the address derivation
//
// a handle is derived purely from the payload bytes plus two
// engine-wide constants by chaining two SHA3-256 hashes:
//
//	h1 = SHA3-256(bootstrap prefix || runtime bytecode)
//	h2 = SHA3-256(0xff || placer identity || salt || h1)
//	handle = low-order 20 bytes of h2
//
// the derivation is pinned to SHA3-256, changing the hash algorithm
// changes every resulting handle
package derivation

import (
	"golang.org/x/crypto/sha3"

	"github.com/codecarve/carved/handle"
)

// limits
const (
	BootstrapPrefixLength = 11
	SaltLength            = 32
)

// the separator byte ahead of the placer identity in the second hash
const leadInByte = byte(0xff)

// BootstrapPrefix - the fixed initialisation stub prepended to every
// payload
//
// when the host runs it as initialisation logic it copies everything
// after its own 11 bytes into a fresh buffer and returns that buffer
// verbatim as the artifact to store, with no other observable effect
var BootstrapPrefix = [BootstrapPrefixLength]byte{
	0x60, 0x0b, 0x59, 0x81,
	0x38, 0x03, 0x80, 0x92,
	0x59, 0x39, 0xf3,
}

// Salt - fixed all-zero salt
//
// deliberately not caller-suppliable: a variable salt would break the
// identity = content guarantee
var Salt [SaltLength]byte

// ComposePayload - prepend the bootstrap prefix onto runtime bytecode
func ComposePayload(code []byte) []byte {
	payload := make([]byte, 0, BootstrapPrefixLength+len(code))
	payload = append(payload, BootstrapPrefix[:]...)
	return append(payload, code...)
}

// FromPayload - derive the placement handle for a full payload
//
// this is the placement collaborator's own rule: the payload is hashed
// as submitted, including its initialisation stub
func FromPayload(placer handle.Handle, payload []byte) handle.Handle {

	h1 := sha3.Sum256(payload)

	buffer := make([]byte, 0, 1+handle.Length+SaltLength+len(h1))
	buffer = append(buffer, leadInByte)
	buffer = append(buffer, placer[:]...)
	buffer = append(buffer, Salt[:]...)
	buffer = append(buffer, h1[:]...)

	h2 := sha3.Sum256(buffer)

	var h handle.Handle
	copy(h[:], h2[len(h2)-handle.Length:])
	return h
}

// Derive - derive the handle for runtime bytecode
//
// total function: no validation of the code length, even zero-length
// input yields a defined result so a handle can be predicted before,
// during or after any deployment attempt
func Derive(placer handle.Handle, code []byte) handle.Handle {
	return FromPayload(placer, ComposePayload(code))
}
