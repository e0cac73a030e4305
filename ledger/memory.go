// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"sync"

	cache "github.com/patrickmn/go-cache"

	"github.com/codecarve/carved/derivation"
	"github.com/codecarve/carved/fault"
	"github.com/codecarve/carved/handle"
)

// Memory - a non-persistent ledger
//
// used by tests and by configuration auditing; artifacts never expire
// and are never evicted
type Memory struct {
	sync.Mutex
	placer handle.Handle
	store  *cache.Cache
}

// NewMemory - create an empty in-memory ledger placing under the
// given identity
func NewMemory(placer handle.Handle) *Memory {
	return &Memory{
		placer: placer,
		store:  cache.New(cache.NoExpiration, 0),
	}
}

// Place - commit an artifact, first committer wins
//
// the lock is the serialisation point for concurrent placements of
// the same payload: exactly one caller commits, all later callers
// receive the same collision error
func (m *Memory) Place(payload []byte) (handle.Handle, error) {

	if len(payload) < derivation.BootstrapPrefixLength ||
		!bytes.Equal(payload[:derivation.BootstrapPrefixLength], derivation.BootstrapPrefix[:]) {
		return handle.Handle{}, fault.ErrInvalidBootstrapPrefix
	}

	h := derivation.FromPayload(m.placer, payload)

	code := make([]byte, len(payload)-derivation.BootstrapPrefixLength)
	copy(code, payload[derivation.BootstrapPrefixLength:])

	m.Lock()
	defer m.Unlock()

	if _, occupied := m.store.Get(h.String()); occupied {
		return handle.Handle{}, fault.ErrArtifactAlreadyExists
	}

	m.store.Set(h.String(), code, cache.NoExpiration)
	return h, nil
}

// SizeOf - byte length of the stored artifact, 0 if unoccupied
func (m *Memory) SizeOf(h handle.Handle) int {
	m.Lock()
	defer m.Unlock()

	item, occupied := m.store.Get(h.String())
	if !occupied {
		return 0
	}
	return len(item.([]byte))
}

// ReadCode - stored artifact bytes, nil if unoccupied
func (m *Memory) ReadCode(h handle.Handle) []byte {
	m.Lock()
	defer m.Unlock()

	item, occupied := m.store.Get(h.String())
	if !occupied {
		return nil
	}
	return item.([]byte)
}

// Count - number of stored artifacts
func (m *Memory) Count() uint64 {
	m.Lock()
	defer m.Unlock()
	return uint64(m.store.ItemCount())
}

// PlaceAt - store bytes at an arbitrary handle
//
// models artifacts created by mechanisms outside this derivation
// process, occupied handles are still refused
func (m *Memory) PlaceAt(h handle.Handle, code []byte) error {
	m.Lock()
	defer m.Unlock()

	if _, occupied := m.store.Get(h.String()); occupied {
		return fault.ErrArtifactAlreadyExists
	}

	stored := make([]byte, len(code))
	copy(stored, code)
	m.store.Set(h.String(), stored, cache.NoExpiration)
	return nil
}
