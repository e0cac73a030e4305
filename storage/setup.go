// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/codecarve/carved/fault"
)

// exported storage pools
type pools struct {
	Artifacts *PoolHandle // prefix 'A': handle -> artifact bytes
	Counters  *PoolHandle // prefix 'N': name -> big endian uint64
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// holds the database handle
var poolData struct {
	sync.RWMutex
	db *leveldb.DB
}

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.ErrAlreadyInitialised
	}

	db, version, err := getDB(database + ".leveldb")
	if nil != err {
		return err
	}

	if version > currentDBVersion {
		db.Close()
		return fault.ErrWrongDatabaseVersion
	}

	if 0 == version {
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			db.Close()
			return err
		}
	}

	poolData.db = db

	Pool.Artifacts = &PoolHandle{prefix: 'A'}
	Pool.Counters = &PoolHandle{prefix: 'N'}

	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.db {
		return
	}

	poolData.db.Close()
	poolData.db = nil
	Pool = pools{}
}

// IsInitialised - check the database is open
func IsInitialised() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return nil != poolData.db
}

// open the database and read its version tag
func getDB(name string) (*leveldb.DB, int, error) {
	db, err := leveldb.OpenFile(name, &ldb_opt.Options{})
	if nil != err {
		return nil, 0, err
	}

	buffer, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(buffer) {
		db.Close()
		return nil, 0, fault.ErrWrongDatabaseVersion
	}
	return db, int(binary.BigEndian.Uint32(buffer)), nil
}

// write the version tag
func putVersion(db *leveldb.DB, version int) error {
	buffer := make([]byte, 4)
	binary.BigEndian.PutUint32(buffer, uint32(version))
	return db.Put(versionKey, buffer, nil)
}
