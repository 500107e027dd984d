// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Erase - remove the entry at a position
//
// the position and any position referring to the in-order
// neighbour that took over the node are invalidated
func (tree *Tree[K, V]) Erase(pos Position[K, V]) {
	a := pos.n
	if nil == a || nil == a.entry || 0 == tree.count {
		return
	}

	if 1 == tree.count {
		// the last entry is always in the root
		tree.makeEmpty(a)
		return
	}

	tree.removeBarriers()

	var parent *node[K, V]
	if nil != a.left {
		// in-order predecessor: rightmost of left sub-tree
		b := a.left
		for nil != b.right {
			b = b.right
		}
		a.entry, b.entry = b.entry, a.entry
		parent = tree.unlink(b, b.left)
	} else if nil != a.right {
		// in-order successor: leftmost of right sub-tree
		b := a.right
		for nil != b.left {
			b = b.left
		}
		a.entry, b.entry = b.entry, a.entry
		parent = tree.unlink(b, b.right)
	} else {
		parent = tree.unlink(a, nil)
	}

	tree.count -= 1
	tree.rebalance(parent)
	tree.resetLimits()
	tree.addBarriers()
}

// detach p from its parent putting child (possibly nil) in its place
// and free it, returns the former parent
func (tree *Tree[K, V]) unlink(p *node[K, V], child *node[K, V]) *node[K, V] {
	parent := p.up
	if parent.left == p {
		parent.left = child
	} else {
		parent.right = child
	}
	if nil != child {
		child.up = parent
	}
	tree.freeNode(p)
	return parent
}

// Delete - removes a specific key from the tree
//
// returns the number of entries removed, 0 or 1
func (tree *Tree[K, V]) Delete(key K) int {
	pos := tree.Find(key)
	if pos.IsEnd() {
		return 0
	}
	tree.Erase(pos)
	return 1
}

// EraseRange - remove all entries in [first, last)
//
// the keys are collected first because each erase may move entries
// between nodes
func (tree *Tree[K, V]) EraseRange(first Position[K, V], last Position[K, V]) {
	keys := make([]K, 0)
	for p := first; !p.Equal(last) && !p.IsEnd(); p = p.Next() {
		keys = append(keys, p.n.entry.Key)
	}
	for _, key := range keys {
		tree.Delete(key)
	}
}
