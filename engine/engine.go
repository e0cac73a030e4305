// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/bitmark-inc/logger"

	"github.com/codecarve/carved/derivation"
	"github.com/codecarve/carved/fault"
	"github.com/codecarve/carved/handle"
	"github.com/codecarve/carved/ledger"
)

// host imposed defaults
const (
	DefaultMaximumCodeSize    = 24576
	DefaultForbiddenFirstByte = byte(0xef)
)

// Limits - host platform rules injected at construction
//
// these originate from the host, not from the engine's own logic
type Limits struct {
	MaximumCodeSize    int
	ForbiddenFirstByte byte
}

// Engine - a deployment engine bound to one identity and one ledger
//
// the engine holds no mutable state of its own, all persistent state
// belongs to the ledger
type Engine struct {
	log      *logger.L
	identity handle.Handle
	ledger   ledger.Ledger
	limits   Limits
}

// New - create an engine
//
// the identity is fixed for the engine's lifetime and is an input to
// every derivation it performs; zero limits select the defaults
func New(identity handle.Handle, lgr ledger.Ledger, limits Limits) *Engine {
	if limits.MaximumCodeSize <= 0 {
		limits.MaximumCodeSize = DefaultMaximumCodeSize
	}
	if 0 == limits.ForbiddenFirstByte {
		limits.ForbiddenFirstByte = DefaultForbiddenFirstByte
	}
	return &Engine{
		log:      logger.New("engine"),
		identity: identity,
		ledger:   lgr,
		limits:   limits,
	}
}

// Identity - the engine's own placement identity
func (e *Engine) Identity() handle.Handle {
	return e.identity
}

// AddressOf - predict the handle for runtime bytecode
//
// total function, identical result before, during or after any
// deployment attempt; defined even for zero-length input although
// Carve rejects it
func (e *Engine) AddressOf(code []byte) handle.Handle {
	return derivation.Derive(e.identity, code)
}

// Carve - deploy runtime bytecode as a permanent artifact
//
// returns exactly the handle AddressOf would have predicted; every
// violation maps to the single deployment error and leaves the ledger
// unchanged; a repeat carve of identical bytes targets an occupied
// handle and deterministically fails, this is the duplicate
// prevention mechanism
func (e *Engine) Carve(code []byte) (handle.Handle, error) {

	if 0 == len(code) {
		e.log.Warn("carve: empty bytecode")
		return handle.Handle{}, fault.ErrDeploymentFailed
	}
	if e.limits.ForbiddenFirstByte == code[0] {
		e.log.Warnf("carve: forbidden first byte: %02x", code[0])
		return handle.Handle{}, fault.ErrDeploymentFailed
	}
	if len(code) > e.limits.MaximumCodeSize {
		e.log.Warnf("carve: bytecode too large: %d > %d", len(code), e.limits.MaximumCodeSize)
		return handle.Handle{}, fault.ErrDeploymentFailed
	}

	payload := derivation.ComposePayload(code)

	h, err := e.ledger.Place(payload)
	if nil != err {
		e.log.Warnf("carve: place error: %s", err)
		return handle.Handle{}, fault.ErrDeploymentFailed
	}

	if h.IsZero() {
		e.log.Error("carve: zero handle from ledger")
		return handle.Handle{}, fault.ErrDeploymentFailed
	}

	storedLength := e.ledger.SizeOf(h)
	if 0 == storedLength || storedLength != len(code) {
		e.log.Errorf("carve: stored length: %d expected: %d", storedLength, len(code))
		return handle.Handle{}, fault.ErrDeploymentFailed
	}

	e.log.Infof("carved: %s  length: %d", h, storedLength)
	return h, nil
}

// IsCarved - certify that the bytes stored at a handle re-derive to
// that handle
//
// pure predicate: never errors, never blocks; zero-length observed
// code is a defined case, an unoccupied handle verifies true only if
// it equals the empty-payload derivation; certifies origin through
// this derivation process, not semantic correctness of the bytes
func (e *Engine) IsCarved(h handle.Handle) bool {
	return derivation.Derive(e.identity, e.ledger.ReadCode(h)) == h
}
