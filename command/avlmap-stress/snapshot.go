// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/storage"
)

// fixed width decimal keeps the byte order of the database the same
// as the numeric order of the tree
func snapshotKey(key uint64) string {
	return fmt.Sprintf("%020d", key)
}

// write a worker's tree to a LevelDB database
func saveSnapshot(name string, tree *avl.Tree[uint64, uint64]) (int, error) {

	s, err := storage.Open(name, false)
	if nil != err {
		return 0, err
	}
	defer s.Close()

	converted := avl.NewOrdered[string, string]()
	tree.Ascend(func(key uint64, value uint64) bool {
		converted.Insert(snapshotKey(key), fmt.Sprintf("%d", value))
		return true
	})

	return s.Save(converted)
}
