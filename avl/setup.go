// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree[K any, V any] struct {
	root  *node[K, V] // never nil, has no entry while the tree is empty
	min   *node[K, V] // lowest real node, nil while empty
	max   *node[K, V] // highest real node, nil while empty
	low   *node[K, V] // barrier before the first node
	high  *node[K, V] // barrier after the last node
	less  LessFunc[K]
	count int

	pool      *node[K, V] // linked list of reclaimed nodes
	freeNodes int         // number of nodes in the pool
}

// New - create an initially empty tree ordered by less
func New[K any, V any](less LessFunc[K]) *Tree[K, V] {
	tree := &Tree[K, V]{
		less: less,
	}
	tree.initialise()
	return tree
}

// NewOrdered - create an empty tree using the '<' operator on keys
func NewOrdered[K Ordered, V any]() *Tree[K, V] {
	return New[K, V](Less[K]())
}

// NewItem - create an empty tree for keys that implement Item
func NewItem[K Item, V any]() *Tree[K, V] {
	return New[K, V](ItemLess[K]())
}

// NewFrom - create a tree from a sequence of entries, in any order
//
// when a key occurs more than once the first value is kept
func NewFrom[K any, V any](less LessFunc[K], entries ...Entry[K, V]) *Tree[K, V] {
	tree := New[K, V](less)
	tree.InsertEntries(entries...)
	return tree
}

// set up the empty state: a valueless root holding both barriers
//
// the barriers are created once and kept for the life of the tree so
// that End and REnd do not change
func (tree *Tree[K, V]) initialise() {
	if nil == tree.low {
		tree.low = &node[K, V]{
			kind: lowBarrier,
		}
		tree.high = &node[K, V]{
			kind: highBarrier,
		}
	}
	tree.makeEmpty(&node[K, V]{})
}

// turn root back into the valueless placeholder of an empty tree
func (tree *Tree[K, V]) makeEmpty(root *node[K, V]) {
	root.entry = nil
	root.up = nil
	root.height = 0
	root.balance = 0
	root.left = tree.low
	root.right = tree.high
	tree.low.up = root
	tree.high.up = root

	tree.root = root
	tree.min = nil
	tree.max = nil
	tree.count = 0
}

// Size - number of entries currently in the tree
func (tree *Tree[K, V]) Size() int {
	return tree.count
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return 0 == tree.count
}

// KeyLess - the ordering used by the tree
func (tree *Tree[K, V]) KeyLess() LessFunc[K] {
	return tree.less
}

// Height - height of the tree, zero when empty
func (tree *Tree[K, V]) Height() int {
	if 0 == tree.count {
		return 0
	}
	return tree.root.height
}

// Clear - remove all entries
func (tree *Tree[K, V]) Clear() {
	if 0 == tree.count {
		return
	}
	tree.removeBarriers()
	tree.freeTree(tree.root)
	tree.initialise()
}

// Swap - exchange the contents of two trees in constant time
//
// positions stay with their nodes, so a position obtained from
// tree refers to other afterwards
func (tree *Tree[K, V]) Swap(other *Tree[K, V]) {
	*tree, *other = *other, *tree
}

// Copy - deep copy of the tree, values are copied by assignment
func (tree *Tree[K, V]) Copy() *Tree[K, V] {
	c := New[K, V](tree.less)
	c.InsertFrom(tree)
	return c
}

// Assign - replace the contents of tree with a copy of other
func (tree *Tree[K, V]) Assign(other *Tree[K, V]) {
	if tree == other {
		return
	}
	tree.Clear()
	tree.InsertFrom(other)
}

// AtDepth - returns all entries at a specific depth of the tree,
// the root being at depth zero
func (tree *Tree[K, V]) AtDepth(depth uint) []Position[K, V] {
	if 0 == tree.count {
		return nil
	}
	return tree.atDepth(tree.root, depth, nil)
}

func (tree *Tree[K, V]) atDepth(p *node[K, V], depth uint, nodes []Position[K, V]) []Position[K, V] {
	if nil == p || p.isBarrier() {
		return nodes
	}
	if 0 == depth {
		return append(nodes, tree.position(p))
	}
	nodes = tree.atDepth(p.left, depth-1, nodes)
	return tree.atDepth(p.right, depth-1, nodes)
}
