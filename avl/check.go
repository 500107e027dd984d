// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlmap/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	if nil != tree.root.up {
		fmt.Printf("fail at root: has up pointer\n")
		return false
	}
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[K any, V any](p *node[K, V], up *node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %p  expected: %p\n", p.entry, p.up, up)
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Check - verify every structural invariant of the tree
func (tree *Tree[K, V]) Check() error {
	if 0 == tree.count {
		if nil != tree.root.entry || 0 != tree.root.height {
			return fmt.Errorf("%w: empty tree root is populated", fault.ErrCountMismatch)
		}
		if tree.root.left != tree.low || tree.root.right != tree.high ||
			tree.low.up != tree.root || tree.high.up != tree.root {
			return fault.ErrBarrierDetached
		}
		return nil
	}

	if !tree.CheckUp() {
		return fault.ErrParentLink
	}

	if tree.min.left != tree.low || tree.low.up != tree.min ||
		nil != tree.low.left || nil != tree.low.right {
		return fmt.Errorf("%w: low barrier", fault.ErrBarrierDetached)
	}
	if tree.max.right != tree.high || tree.high.up != tree.max ||
		nil != tree.high.left || nil != tree.high.right {
		return fmt.Errorf("%w: high barrier", fault.ErrBarrierDetached)
	}

	n, _, err := tree.checkNode(tree.root)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: counted: %d  expected: %d", fault.ErrCountMismatch, n, tree.count)
	}

	// in-order walk must be strictly increasing and start and end at
	// the recorded extremes
	var previous *Entry[K, V]
	for p := tree.Begin(); !p.IsEnd(); p = p.Next() {
		if nil != previous && !tree.less(previous.Key, p.n.entry.Key) {
			return fmt.Errorf("%w: %v is not before %v", fault.ErrKeyOrder, previous.Key, p.n.entry.Key)
		}
		previous = p.n.entry
	}
	if previous != tree.max.entry {
		return fmt.Errorf("%w: walk did not finish at the highest key", fault.ErrKeyOrder)
	}
	return nil
}

// returns number of real nodes and height of the sub-tree at p
func (tree *Tree[K, V]) checkNode(p *node[K, V]) (int, int, error) {
	if nil == p || p.isBarrier() {
		if nil != p && 0 != p.height {
			return 0, 0, fmt.Errorf("%w: barrier height: %d", fault.ErrHeightMismatch, p.height)
		}
		return 0, 0, nil
	}
	if nil == p.entry {
		return 0, 0, fmt.Errorf("%w: node without entry", fault.ErrCountMismatch)
	}
	nl, lh, err := tree.checkNode(p.left)
	if nil != err {
		return 0, 0, err
	}
	nr, rh, err := tree.checkNode(p.right)
	if nil != err {
		return 0, 0, err
	}
	if nil != p.left && !p.left.isBarrier() && !tree.less(p.left.entry.Key, p.entry.Key) {
		return 0, 0, fmt.Errorf("%w: left child %v of %v", fault.ErrKeyOrder, p.left.entry.Key, p.entry.Key)
	}
	if nil != p.right && !p.right.isBarrier() && !tree.less(p.entry.Key, p.right.entry.Key) {
		return 0, 0, fmt.Errorf("%w: right child %v of %v", fault.ErrKeyOrder, p.right.entry.Key, p.entry.Key)
	}

	h := lh
	if rh > h {
		h = rh
	}
	h += 1
	if h != p.height {
		return 0, 0, fmt.Errorf("%w: key: %v  cached: %d  actual: %d", fault.ErrHeightMismatch, p.entry.Key, p.height, h)
	}
	if lh-rh != p.balance {
		return 0, 0, fmt.Errorf("%w: key: %v  cached balance: %d  actual: %d", fault.ErrBalanceOutOfRange, p.entry.Key, p.balance, lh-rh)
	}
	if p.balance < -1 || p.balance > 1 {
		return 0, 0, fmt.Errorf("%w: key: %v  balance: %d", fault.ErrBalanceOutOfRange, p.entry.Key, p.balance)
	}
	return nl + nr + 1, h, nil
}
