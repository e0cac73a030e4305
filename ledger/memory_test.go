// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/codecarve/carved/derivation"
	"github.com/codecarve/carved/fault"
	"github.com/codecarve/carved/handle"
	"github.com/codecarve/carved/ledger"
)

var testPlacer = handle.Handle{
	0xc0, 0xde, 0xca, 0x12, 0x00,
	0x11, 0x22, 0x33, 0x44, 0x55,
	0x66, 0x77, 0x88, 0x99, 0xaa,
	0xbb, 0xcc, 0xdd, 0xee, 0xff,
}

func TestPlace(t *testing.T) {

	m := ledger.NewMemory(testPlacer)

	code := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	payload := derivation.ComposePayload(code)

	h, err := m.Place(payload)
	if nil != err {
		t.Fatalf("place error: %v", err)
	}
	if h != derivation.FromPayload(testPlacer, payload) {
		t.Errorf("handle: %s expected: %s", h, derivation.FromPayload(testPlacer, payload))
	}

	if 0 == m.Count() {
		t.Errorf("artifact count is zero")
	}
	if m.SizeOf(h) != len(code) {
		t.Errorf("size: %d expected: %d", m.SizeOf(h), len(code))
	}
	if !bytes.Equal(m.ReadCode(h), code) {
		t.Errorf("code: %x expected: %x", m.ReadCode(h), code)
	}
}

func TestPlaceOccupied(t *testing.T) {

	m := ledger.NewMemory(testPlacer)

	payload := derivation.ComposePayload([]byte{0xaa, 0xbb})

	h, err := m.Place(payload)
	if nil != err {
		t.Fatalf("place error: %v", err)
	}

	_, err = m.Place(payload)
	if fault.ErrArtifactAlreadyExists != err {
		t.Fatalf("unexpected error: %v", err)
	}

	// existing artifact must be untouched
	if !bytes.Equal(m.ReadCode(h), []byte{0xaa, 0xbb}) {
		t.Errorf("code: %x expected: aabb", m.ReadCode(h))
	}
}

func TestPlaceBadPrefix(t *testing.T) {

	m := ledger.NewMemory(testPlacer)

	_, err := m.Place([]byte{0x01, 0x02, 0x03})
	if fault.ErrInvalidBootstrapPrefix != err {
		t.Fatalf("unexpected error: %v", err)
	}

	mangled := derivation.ComposePayload([]byte{0x01})
	mangled[0] ^= 0xff
	_, err = m.Place(mangled)
	if fault.ErrInvalidBootstrapPrefix != err {
		t.Fatalf("unexpected error: %v", err)
	}

	if 0 != m.Count() {
		t.Errorf("artifact count: %d expected: 0", m.Count())
	}
}

func TestUnoccupied(t *testing.T) {

	m := ledger.NewMemory(testPlacer)

	var h handle.Handle
	h[0] = 0x99

	if 0 != m.SizeOf(h) {
		t.Errorf("size: %d expected: 0", m.SizeOf(h))
	}
	if nil != m.ReadCode(h) {
		t.Errorf("code: %x expected: nil", m.ReadCode(h))
	}
}

func TestPlaceAt(t *testing.T) {

	m := ledger.NewMemory(testPlacer)

	var h handle.Handle
	h[19] = 0x01

	err := m.PlaceAt(h, []byte{0xde, 0xad})
	if nil != err {
		t.Fatalf("place at error: %v", err)
	}

	err = m.PlaceAt(h, []byte{0xbe, 0xef})
	if fault.ErrArtifactAlreadyExists != err {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(m.ReadCode(h), []byte{0xde, 0xad}) {
		t.Errorf("code: %x expected: dead", m.ReadCode(h))
	}
}

// concurrent identical placements: exactly one wins, all losers see
// the same collision error
func TestPlaceRace(t *testing.T) {

	m := ledger.NewMemory(testPlacer)

	payload := derivation.ComposePayload([]byte{0x11, 0x22, 0x33})

	const attempts = 16

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i += 1 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = m.Place(payload)
		}(i)
	}
	wg.Wait()

	winners := 0
	for i, err := range errs {
		switch err {
		case nil:
			winners += 1
		case fault.ErrArtifactAlreadyExists:
		default:
			t.Errorf("%d: unexpected error: %v", i, err)
		}
	}
	if 1 != winners {
		t.Errorf("winners: %d expected: 1", winners)
	}
	if 1 != m.Count() {
		t.Errorf("artifact count: %d expected: 1", m.Count())
	}
}
