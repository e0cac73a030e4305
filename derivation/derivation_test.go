// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation_test

import (
	"bytes"
	"testing"

	"github.com/codecarve/carved/derivation"
	"github.com/codecarve/carved/handle"
)

// the placer identity used by all derivation tests
var testPlacer = handle.Handle{
	0x0e, 0x1d, 0x2c, 0x3b, 0x4a,
	0x59, 0x68, 0x77, 0x86, 0x95,
	0xa4, 0xb3, 0xc2, 0xd1, 0xe0,
	0xff, 0x01, 0x23, 0x45, 0x67,
}

func TestComposePayload(t *testing.T) {

	code := []byte{0x60, 0x2a, 0x60, 0x00, 0x52, 0x60, 0x20, 0x60, 0x00, 0xf3}

	payload := derivation.ComposePayload(code)

	if len(payload) != derivation.BootstrapPrefixLength+len(code) {
		t.Fatalf("payload length: %d expected: %d", len(payload), derivation.BootstrapPrefixLength+len(code))
	}
	if !bytes.Equal(payload[:derivation.BootstrapPrefixLength], derivation.BootstrapPrefix[:]) {
		t.Errorf("payload prefix: %x expected: %x", payload[:derivation.BootstrapPrefixLength], derivation.BootstrapPrefix)
	}
	if !bytes.Equal(payload[derivation.BootstrapPrefixLength:], code) {
		t.Errorf("payload code: %x expected: %x", payload[derivation.BootstrapPrefixLength:], code)
	}
}

func TestDeriveDeterministic(t *testing.T) {

	code := []byte{0x60, 0x2a, 0x60, 0x00, 0x52, 0x60, 0x20, 0x60, 0x00, 0xf3}

	first := derivation.Derive(testPlacer, code)
	second := derivation.Derive(testPlacer, code)

	if first != second {
		t.Errorf("handle: %s expected: %s", second, first)
	}
	if first.IsZero() {
		t.Errorf("derived handle is zero")
	}

	// a copy of the input bytes must derive identically
	duplicate := make([]byte, len(code))
	copy(duplicate, code)
	third := derivation.Derive(testPlacer, duplicate)
	if first != third {
		t.Errorf("handle: %s expected: %s", third, first)
	}
}

func TestDeriveDependsOnContent(t *testing.T) {

	code := []byte{0x01, 0x02, 0x03, 0x04}

	base := derivation.Derive(testPlacer, code)

	// flip one bit
	altered := make([]byte, len(code))
	copy(altered, code)
	altered[0] ^= 0x80
	if base == derivation.Derive(testPlacer, altered) {
		t.Errorf("altered content derived the same handle: %s", base)
	}

	// extend by one byte
	extended := append(append([]byte{}, code...), 0x00)
	if base == derivation.Derive(testPlacer, extended) {
		t.Errorf("extended content derived the same handle: %s", base)
	}
}

func TestDeriveDependsOnPlacer(t *testing.T) {

	code := []byte{0x01, 0x02, 0x03, 0x04}

	other := testPlacer
	other[0] ^= 0xff

	if derivation.Derive(testPlacer, code) == derivation.Derive(other, code) {
		t.Errorf("different placers derived the same handle")
	}
}

// zero-length input is legal for derivation even though deployment
// rejects it
func TestDeriveEmpty(t *testing.T) {

	first := derivation.Derive(testPlacer, []byte{})
	second := derivation.Derive(testPlacer, nil)

	if first != second {
		t.Errorf("handle: %s expected: %s", second, first)
	}
	if first.IsZero() {
		t.Errorf("empty derivation is zero")
	}

	// the empty derivation must equal deriving the bare prefix payload
	third := derivation.FromPayload(testPlacer, derivation.BootstrapPrefix[:])
	if first != third {
		t.Errorf("handle: %s expected: %s", third, first)
	}
}

func TestFromPayloadAgreesWithDerive(t *testing.T) {

	sizes := []int{1, 10, 32, 64, 1024, 24576}

	for _, n := range sizes {
		code := make([]byte, n)
		for i := range code {
			code[i] = byte(i + 1)
		}

		direct := derivation.Derive(testPlacer, code)
		composed := derivation.FromPayload(testPlacer, derivation.ComposePayload(code))
		if direct != composed {
			t.Errorf("size %d: handle: %s expected: %s", n, composed, direct)
		}
	}
}
