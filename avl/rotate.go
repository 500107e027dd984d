// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// walk from p to the root, repairing heights and rotating any node
// whose balance has gone outside -1..+1
//
// barriers must be detached.  A rotation can change the height of
// the nodes above it, so the walk always continues to the root from
// the parent of the new sub-tree root.
func (tree *Tree[K, V]) rebalance(p *node[K, V]) {
	for nil != p {
		p.update()
		if p.balance < -1 {
			p = tree.rightRotation(p)
		} else if p.balance > 1 {
			p = tree.leftRotation(p)
		}
		p = p.up
	}
}

// replace a by b in a's parent (or as the root)
func (tree *Tree[K, V]) replaceChild(a *node[K, V], b *node[K, V]) {
	parent := a.up
	b.up = parent
	if nil == parent {
		tree.root = b
	} else if parent.left == a {
		parent.left = b
	} else {
		parent.right = b
	}
}

// right sub-tree of a is too tall, returns the new sub-tree root
func (tree *Tree[K, V]) rightRotation(a *node[K, V]) *node[K, V] {
	b := a.right
	if b.leftHeight() <= b.rightHeight() {
		// single RR rotation
		t1 := b.left
		tree.replaceChild(a, b)
		b.left = a
		a.up = b
		a.right = t1
		if nil != t1 {
			t1.up = a
		}
		a.update()
		b.update()
		return b
	}

	// double RL rotation
	c := b.left
	t1 := c.left
	t2 := c.right
	tree.replaceChild(a, c)
	c.left = a
	a.up = c
	c.right = b
	b.up = c
	a.right = t1
	if nil != t1 {
		t1.up = a
	}
	b.left = t2
	if nil != t2 {
		t2.up = b
	}
	a.update()
	b.update()
	c.update()
	return c
}

// left sub-tree of a is too tall, returns the new sub-tree root
func (tree *Tree[K, V]) leftRotation(a *node[K, V]) *node[K, V] {
	b := a.left
	if b.rightHeight() <= b.leftHeight() {
		// single LL rotation
		t1 := b.right
		tree.replaceChild(a, b)
		b.right = a
		a.up = b
		a.left = t1
		if nil != t1 {
			t1.up = a
		}
		a.update()
		b.update()
		return b
	}

	// double LR rotation
	c := b.right
	t1 := c.right
	t2 := c.left
	tree.replaceChild(a, c)
	c.left = b
	b.up = c
	c.right = a
	a.up = c
	b.right = t2
	if nil != t2 {
		t2.up = b
	}
	a.left = t1
	if nil != t1 {
		t1.up = a
	}
	a.update()
	b.update()
	c.update()
	return c
}
