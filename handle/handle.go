// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handle - the fixed-size artifact identity
//
// a handle is the 20 byte value produced by the address derivation,
// identical byte sequences always resolve to the same handle
package handle

import (
	"encoding/hex"
	"fmt"

	"github.com/codecarve/carved/fault"
)

// Length - number of bytes in a handle
const Length = 20

// Handle - the type for an artifact handle
// stored as a fixed byte array
// represented as hex text for JSON encoding and display
// to get the bytes value just use h[:]
type Handle [Length]byte

// IsZero - true if the handle is all zero, an all zero handle is
// never a valid placement target
func (h Handle) IsZero() bool {
	return h == Handle{}
}

// String - convert a binary handle to hex string for use by the fmt package (for %s)
func (h Handle) String() string {
	return hex.EncodeToString(h[:])
}

// GoString - convert a binary handle to hex string for use by the fmt package (for %#v)
func (h Handle) GoString() string {
	return "<handle:" + hex.EncodeToString(h[:]) + ">"
}

// Scan - convert a hex text representation to a handle for use by the format package scan routines
func (h *Handle) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(Length) {
		return fault.ErrInvalidHandleLength
	}

	byteCount, err := hex.Decode(h[:], token)
	if nil != err {
		return err
	}

	if Length != byteCount {
		return fault.ErrInvalidHandleLength
	}
	return nil
}

// MarshalText - convert handle to hex text
func (h Handle) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(Length)
	buffer := make([]byte, size)
	hex.Encode(buffer, h[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a handle
func (h *Handle) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidHandleLength
	}
	byteCount, err := hex.Decode(h[:], s)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.ErrInvalidHandleLength
	}
	return nil
}

// FromBytes - convert and validate a binary byte slice to a handle
func FromBytes(h *Handle, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidHandleLength
	}
	copy(h[:], buffer)
	return nil
}

// FromHexString - convert and validate a hex string to a handle
func FromHexString(s string) (Handle, error) {
	var h Handle
	err := h.UnmarshalText([]byte(s))
	return h, err
}
