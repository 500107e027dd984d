// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Compare - lexicographic comparison of two trees as sequences of
// entries, keys ordered by the tree and values by valueLess
//
// returns -1, 0, +1 for tree < other, tree == other, tree > other
func (tree *Tree[K, V]) Compare(other *Tree[K, V], valueLess func(a, b V) bool) int {
	i := tree.Begin()
	j := other.Begin()
	for !i.IsEnd() && !j.IsEnd() {
		a := i.n.entry
		b := j.n.entry
		switch {
		case tree.less(a.Key, b.Key):
			return -1
		case tree.less(b.Key, a.Key):
			return +1
		case valueLess(a.Value, b.Value):
			return -1
		case valueLess(b.Value, a.Value):
			return +1
		}
		i = i.Next()
		j = j.Next()
	}
	if !i.IsEnd() {
		return +1
	}
	if !j.IsEnd() {
		return -1
	}
	return 0
}

// Less - true if tree sorts before other
func (tree *Tree[K, V]) Less(other *Tree[K, V], valueLess func(a, b V) bool) bool {
	return tree.Compare(other, valueLess) < 0
}

// Equal - true if both trees hold equivalent keys with equal values
func (tree *Tree[K, V]) Equal(other *Tree[K, V], valueEqual func(a, b V) bool) bool {
	if tree.count != other.count {
		return false
	}
	i := tree.Begin()
	j := other.Begin()
	for !i.IsEnd() && !j.IsEnd() {
		a := i.n.entry
		b := j.n.entry
		if tree.less(a.Key, b.Key) || tree.less(b.Key, a.Key) || !valueEqual(a.Value, b.Value) {
			return false
		}
		i = i.Next()
		j = j.Next()
	}
	return true
}
