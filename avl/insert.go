// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new entry into the tree
//
// returns the position of the entry holding key and true if it was
// added; an existing entry is left unchanged and false is returned
func (tree *Tree[K, V]) Insert(key K, value V) (Position[K, V], bool) {
	tree.removeBarriers()
	defer tree.addBarriers()

	if 0 == tree.count {
		// the first entry populates the root in place
		root := tree.root
		root.left = nil
		root.right = nil
		root.entry = &Entry[K, V]{Key: key, Value: value}
		root.update()
		tree.min = root
		tree.max = root
		tree.count = 1
		return tree.position(root), true
	}

	parent, left, match := tree.insertPosition(key)
	if nil != match {
		return tree.position(match), false
	}

	p := tree.newNode(&Entry[K, V]{Key: key, Value: value})
	p.up = parent
	if left {
		parent.left = p
	} else {
		parent.right = p
	}
	tree.rebalance(parent)
	tree.count += 1

	if tree.less(key, tree.min.entry.Key) {
		tree.min = p
	}
	if tree.less(tree.max.entry.Key, key) {
		tree.max = p
	}
	return tree.position(p), true
}

// InsertHint - insert ignoring the position hint
//
// returns the new position or End if key was already present
func (tree *Tree[K, V]) InsertHint(_ Position[K, V], key K, value V) Position[K, V] {
	pos, added := tree.Insert(key, value)
	if !added {
		return tree.End()
	}
	return pos
}

// InsertEntries - insert a sequence of entries, in any order
func (tree *Tree[K, V]) InsertEntries(entries ...Entry[K, V]) {
	for _, e := range entries {
		tree.Insert(e.Key, e.Value)
	}
}

// InsertFrom - insert all entries of another tree
func (tree *Tree[K, V]) InsertFrom(other *Tree[K, V]) {
	if tree == other {
		return
	}
	for p := other.Begin(); !p.IsEnd(); p = p.Next() {
		tree.Insert(p.n.entry.Key, p.n.entry.Value)
	}
}

// Index - pointer to the value for key, a zero value is inserted if
// key is absent
//
// the pointer stays with the entry, even when a deletion moves the
// entry to a different node
func (tree *Tree[K, V]) Index(key K) *V {
	pos := tree.LowerBound(key)
	if pos.IsEnd() || tree.less(key, pos.n.entry.Key) {
		var zero V
		pos, _ = tree.Insert(key, zero)
	}
	return &pos.n.entry.Value
}
