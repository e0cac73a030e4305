// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the external placement collaborator
//
// the ledger owns all persistent artifact state, the engine only
// computes and validates; for any given handle the first successful
// placement wins and no later operation can mutate the stored bytes
package ledger

import (
	"github.com/codecarve/carved/handle"
)

// Ledger - required shape of a placement collaborator
type Ledger interface {

	// Place - commit the payload's result as a permanent artifact
	//
	// the stored bytes are everything after the bootstrap prefix and
	// the handle follows the ledger's own derivation rule; an
	// occupied handle is refused without altering existing state;
	// the whole operation is atomic, nothing persists on failure
	Place(payload []byte) (handle.Handle, error)

	// SizeOf - byte length of the stored artifact, 0 if unoccupied
	SizeOf(h handle.Handle) int

	// ReadCode - stored artifact bytes, nil if unoccupied
	ReadCode(h handle.Handle) []byte
}
