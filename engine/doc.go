// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - deployment orchestrator and integrity verifier
//
// composes the bootstrap prefix with caller bytecode, asks the
// placement ledger to commit it and validates the result against the
// address derivation; per distinct bytecode the artifact state moves
// Unoccupied → Carved exactly once and never leaves Carved, a repeat
// carve is a failing self-loop that never mutates stored bytes
//
// all carve failures are reported as the single deployment error; a
// caller that needs to distinguish "already exists" from "invalid
// input" must query the ledger before carving
package engine
