// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

func entryKey(key string) []byte {
	k := make([]byte, 1, 1+len(key))
	k[0] = entryPrefix
	return append(k, key...)
}

// Save - replace the stored entries with those of the tree
//
// the update is a single batch so a reader sees either the old or the
// new set of entries
func (s *Store) Save(tree *avl.Tree[string, string]) (int, error) {
	if s.readOnly {
		return 0, fault.ErrReadOnlyDatabase
	}

	batch := new(leveldb.Batch)

	iter := s.db.NewIterator(ldb_util.BytesPrefix([]byte{entryPrefix}), nil)
	for iter.Next() {
		key := string(iter.Key()[1:])
		if !tree.Contains(key) {
			batch.Delete(append([]byte{}, iter.Key()...))
		}
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return 0, err
	}

	tree.Ascend(func(key string, value string) bool {
		batch.Put(entryKey(key), []byte(value))
		return true
	})

	if err := s.db.Write(batch, nil); nil != err {
		return 0, err
	}
	return tree.Size(), nil
}

// Load - insert the stored entries into a tree, returns the number of
// entries read
//
// keys already present in the tree keep their values
func (s *Store) Load(tree *avl.Tree[string, string]) (int, error) {
	return s.LoadRange(tree, "", "")
}

// LoadRange - like Load but only keys in [from, to), an empty to means
// no upper limit
func (s *Store) LoadRange(tree *avl.Tree[string, string], from string, to string) (int, error) {

	searchRange := &ldb_util.Range{
		Start: entryKey(from),
		Limit: []byte{entryPrefix + 1},
	}
	if "" != to {
		searchRange.Limit = entryKey(to)
	}

	n := 0
	iter := s.db.NewIterator(searchRange, nil)
	for iter.Next() {
		tree.Insert(string(iter.Key()[1:]), string(iter.Value()))
		n += 1
	}
	iter.Release()
	return n, iter.Error()
}

// Get - fetch a single stored value
func (s *Store) Get(key string) (string, bool, error) {
	value, err := s.db.Get(entryKey(key), nil)
	if leveldb.ErrNotFound == err {
		return "", false, nil
	} else if nil != err {
		return "", false, err
	}
	return string(value), true, nil
}
