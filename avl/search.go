// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - position of key, End if it is not in the tree
func (tree *Tree[K, V]) Find(key K) Position[K, V] {
	pos := tree.LowerBound(key)
	if pos.IsEnd() || tree.less(key, pos.n.entry.Key) {
		return tree.End()
	}
	return pos
}

// Count - number of entries with key, either 0 or 1
func (tree *Tree[K, V]) Count(key K) int {
	if tree.Find(key).IsEnd() {
		return 0
	}
	return 1
}

// LowerBound - position of the first key not less than key
func (tree *Tree[K, V]) LowerBound(key K) Position[K, V] {
	if 0 == tree.count {
		return tree.End()
	}
	return tree.position(tree.lowerBound(tree.root, tree.high, key))
}

// UpperBound - position of the first key greater than key
func (tree *Tree[K, V]) UpperBound(key K) Position[K, V] {
	if 0 == tree.count {
		return tree.End()
	}
	return tree.position(tree.upperBound(tree.root, tree.high, key))
}

// EqualRange - the pair LowerBound(key), UpperBound(key)
//
// both bounds come from a single descent: once a node equivalent to
// key is met the lower bound can only be in its left sub-tree and the
// upper bound only in its right sub-tree
func (tree *Tree[K, V]) EqualRange(key K) (Position[K, V], Position[K, V]) {
	if 0 == tree.count {
		return tree.End(), tree.End()
	}
	x := tree.root
	y := tree.high
	for nil != x && !x.isBarrier() {
		if tree.less(x.entry.Key, key) {
			x = x.right
		} else if tree.less(key, x.entry.Key) {
			y = x
			x = x.left
		} else {
			lower := tree.lowerBound(x.left, x, key)
			upper := tree.upperBound(x.right, y, key)
			return tree.position(lower), tree.position(upper)
		}
	}
	return tree.position(y), tree.position(y)
}

// search the sub-tree at x, y is the answer if nothing in x qualifies
func (tree *Tree[K, V]) lowerBound(x *node[K, V], y *node[K, V], key K) *node[K, V] {
	for nil != x && !x.isBarrier() {
		if tree.less(x.entry.Key, key) {
			x = x.right
		} else {
			y = x
			x = x.left
		}
	}
	return y
}

// search the sub-tree at x, y is the answer if nothing in x qualifies
func (tree *Tree[K, V]) upperBound(x *node[K, V], y *node[K, V], key K) *node[K, V] {
	for nil != x && !x.isBarrier() {
		if tree.less(key, x.entry.Key) {
			y = x
			x = x.left
		} else {
			x = x.right
		}
	}
	return y
}

// locate where key belongs, barriers must be detached and the tree
// must not be empty
//
// returns the existing node when key is already present, otherwise
// the node to become the parent and whether to attach on the left
func (tree *Tree[K, V]) insertPosition(key K) (parent *node[K, V], left bool, match *node[K, V]) {
	p := tree.root
	for {
		if tree.less(key, p.entry.Key) {
			if nil == p.left {
				return p, true, nil
			}
			p = p.left
		} else if tree.less(p.entry.Key, key) {
			if nil == p.right {
				return p, false, nil
			}
			p = p.right
		} else {
			return nil, false, p
		}
	}
}
