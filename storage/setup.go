// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/avlmap/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentVersion = 0x100
	entryPrefix    = 'E'
)

// Store - an open database
type Store struct {
	db       *leveldb.DB
	readOnly bool
}

// Open - open or create a database
//
// a new database is stamped with the current version, an existing one
// must carry the same version
func Open(name string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	switch version {
	case 0:
		if readOnly {
			break
		}
		if err := putVersion(db, currentVersion); nil != err {
			db.Close()
			return nil, err
		}
	case currentVersion:
	default:
		db.Close()
		return nil, fmt.Errorf("%w: expected: 0x%x  actual: 0x%x", fault.ErrIncompatibleDatabase, currentVersion, version)
	}

	return &Store{
		db:       db,
		readOnly: readOnly,
	}, nil
}

// Close - release the database
func (s *Store) Close() error {
	return s.db.Close()
}

// zero means no version record
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("%w: version length: expected: %d  actual: %d", fault.ErrIncompatibleDatabase, 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
