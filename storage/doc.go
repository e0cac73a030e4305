// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the persistent artifact ledger
//
// maintains a LevelDB database of carved artifacts; each logical pool
// prefixes its keys with a single byte so several pools share one
// database
//
// a placement is committed as a single batch write so the operation
// is atomic, either the artifact and its accounting both persist or
// nothing does
package storage
