// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// take the barriers off the lowest and highest nodes so that the
// structure can be changed without considering them
func (tree *Tree[K, V]) removeBarriers() {
	if 0 == tree.count {
		return
	}
	tree.min.left = nil
	tree.low.up = nil
	tree.max.right = nil
	tree.high.up = nil
}

// hang the barriers back on the lowest and highest nodes
func (tree *Tree[K, V]) addBarriers() {
	if 0 == tree.count {
		return
	}
	tree.min.left = tree.low
	tree.low.up = tree.min
	tree.max.right = tree.high
	tree.high.up = tree.max
}

// locate the extremes after a deletion, barriers must be detached
func (tree *Tree[K, V]) resetLimits() {
	p := tree.root
	for nil != p.left {
		p = p.left
	}
	tree.min = p

	p = tree.root
	for nil != p.right {
		p = p.right
	}
	tree.max = p
}
