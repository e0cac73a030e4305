// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/codecarve/carved/derivation"
	"github.com/codecarve/carved/fault"
	"github.com/codecarve/carved/handle"
)

// counter record holding the number of carved artifacts
var artifactCountKey = []byte("artifacts")

// serialisation point for placements, so check and commit are one
// atomic step and the first committer for a handle wins
var placeData struct {
	sync.Mutex
}

// Store - a persistent placement ledger bound to one placer identity
type Store struct {
	placer handle.Handle
}

// NewLedger - create a ledger view onto the open database
func NewLedger(placer handle.Handle) (*Store, error) {
	if !IsInitialised() {
		return nil, fault.ErrNotInitialised
	}
	if placer.IsZero() {
		return nil, fault.ErrInvalidEngineIdentity
	}
	return &Store{placer: placer}, nil
}

// Place - commit an artifact, refusing occupied handles
//
// artifact bytes and the count record are written in one batch:
// either both persist or, on any failure, the database is unchanged
func (s *Store) Place(payload []byte) (handle.Handle, error) {

	if len(payload) < derivation.BootstrapPrefixLength ||
		!bytes.Equal(payload[:derivation.BootstrapPrefixLength], derivation.BootstrapPrefix[:]) {
		return handle.Handle{}, fault.ErrInvalidBootstrapPrefix
	}

	h := derivation.FromPayload(s.placer, payload)

	code := payload[derivation.BootstrapPrefixLength:]

	placeData.Lock()
	defer placeData.Unlock()

	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return handle.Handle{}, fault.ErrNotInitialised
	}

	occupied, err := poolData.db.Has(Pool.Artifacts.prefixKey(h[:]), nil)
	if nil != err {
		return handle.Handle{}, err
	}
	if occupied {
		return handle.Handle{}, fault.ErrArtifactAlreadyExists
	}

	count := uint64(0)
	if buffer, err := poolData.db.Get(Pool.Counters.prefixKey(artifactCountKey), nil); nil == err && len(buffer) >= 8 {
		count = binary.BigEndian.Uint64(buffer[:8])
	}
	countBuffer := make([]byte, 8)
	binary.BigEndian.PutUint64(countBuffer, count+1)

	batch := new(leveldb.Batch)
	Pool.Artifacts.putBatch(batch, h[:], code)
	Pool.Counters.putBatch(batch, artifactCountKey, countBuffer)
	if err := poolData.db.Write(batch, nil); nil != err {
		return handle.Handle{}, err
	}

	return h, nil
}

// SizeOf - byte length of the stored artifact, 0 if unoccupied
func (s *Store) SizeOf(h handle.Handle) int {
	return len(Pool.Artifacts.Get(h[:]))
}

// ReadCode - stored artifact bytes, nil if unoccupied
func (s *Store) ReadCode(h handle.Handle) []byte {
	return Pool.Artifacts.Get(h[:])
}

// Count - number of carved artifacts
func (s *Store) Count() uint64 {
	n, _ := Pool.Counters.GetN(artifactCountKey)
	return n
}
