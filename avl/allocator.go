// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// maximum number of reclaimed nodes kept by each tree
const maxFreeNodes = 32

// Entry - a key/value pair as stored in the tree
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// a node in the tree
type node[K any, V any] struct {
	left    *node[K, V]  // left sub-tree
	right   *node[K, V]  // right sub-tree
	up      *node[K, V]  // points to parent node
	entry   *Entry[K, V] // nil for barriers and the empty root
	height  int          // 0 for barriers
	balance int          // left height - right height
	kind    nodeKind
}

type nodeKind int8

const (
	realNode    nodeKind = iota
	lowBarrier  nodeKind = iota
	highBarrier nodeKind = iota
)

func (p *node[K, V]) isBarrier() bool {
	return realNode != p.kind
}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(entry *Entry[K, V]) *node[K, V] {
	p := tree.pool
	if nil == p {
		if 0 != tree.freeNodes {
			fault.Panicf("avl: node pool corrupt: %d free nodes with empty list", tree.freeNodes)
		}
		return &node[K, V]{
			entry:  entry,
			height: 1,
		}
	}
	tree.pool = p.up
	p.entry = entry
	p.height = 1
	p.balance = 0
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool if there is room
func (tree *Tree[K, V]) freeNode(p *node[K, V]) {
	p.left = nil
	p.right = nil
	p.entry = nil
	p.height = 0
	p.balance = 0
	if tree.freeNodes >= maxFreeNodes {
		p.up = nil
		return
	}
	p.up = tree.pool // use as free list pointer
	tree.pool = p
	tree.freeNodes += 1
}

// reclaim a whole sub-tree, barriers must already be detached
func (tree *Tree[K, V]) freeTree(p *node[K, V]) {
	if nil == p {
		return
	}
	tree.freeTree(p.left)
	tree.freeTree(p.right)
	tree.freeNode(p)
}

func (p *node[K, V]) leftHeight() int {
	if nil == p.left {
		return 0
	}
	return p.left.height
}

func (p *node[K, V]) rightHeight() int {
	if nil == p.right {
		return 0
	}
	return p.right.height
}

// recompute cached height and balance from the children
func (p *node[K, V]) update() {
	lh := p.leftHeight()
	rh := p.rightHeight()
	if lh > rh {
		p.height = lh + 1
	} else {
		p.height = rh + 1
	}
	p.balance = lh - rh
}
