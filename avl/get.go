// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Get - value stored for key
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	pos := tree.Find(key)
	if pos.IsEnd() {
		var zero V
		return zero, false
	}
	return pos.n.entry.Value, true
}

// At - value stored for key or fault.ErrKeyNotFound
func (tree *Tree[K, V]) At(key K) (V, error) {
	value, ok := tree.Get(key)
	if !ok {
		return value, fault.ErrKeyNotFound
	}
	return value, nil
}

// Contains - true if key is in the tree
func (tree *Tree[K, V]) Contains(key K) bool {
	return !tree.Find(key).IsEnd()
}
