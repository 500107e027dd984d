// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Position - refers to one entry of a tree or to one of its barriers
//
// the zero Position refers to nothing and must not be used
type Position[K any, V any] struct {
	n *node[K, V]
}

// ItemIterator - callback for Ascend and friends, return false to stop
type ItemIterator[K any, V any] func(key K, value V) bool

func (tree *Tree[K, V]) position(p *node[K, V]) Position[K, V] {
	return Position[K, V]{n: p}
}

// Begin - position of the lowest key, End if tree is empty
func (tree *Tree[K, V]) Begin() Position[K, V] {
	if 0 == tree.count {
		return tree.End()
	}
	return tree.position(tree.min)
}

// End - the position one past the highest key
func (tree *Tree[K, V]) End() Position[K, V] {
	return tree.position(tree.high)
}

// RBegin - reverse position of the highest key, REnd if tree is empty
func (tree *Tree[K, V]) RBegin() Reverse[K, V] {
	if 0 == tree.count {
		return tree.REnd()
	}
	return Reverse[K, V]{p: tree.position(tree.max)}
}

// REnd - the reverse position one before the lowest key
func (tree *Tree[K, V]) REnd() Reverse[K, V] {
	return Reverse[K, V]{p: tree.position(tree.low)}
}

// First - return the lowest entry
func (tree *Tree[K, V]) First() (Entry[K, V], bool) {
	if 0 == tree.count {
		return Entry[K, V]{}, false
	}
	return *tree.min.entry, true
}

// Last - return the highest entry
func (tree *Tree[K, V]) Last() (Entry[K, V], bool) {
	if 0 == tree.count {
		return Entry[K, V]{}, false
	}
	return *tree.max.entry, true
}

// Next - given a position, return the position with the next highest
// key or End if no more entries.  End is its own successor.
func (pos Position[K, V]) Next() Position[K, V] {
	p := pos.n
	if nil != p.right {
		p = p.right
		for nil != p.left {
			p = p.left
		}
		return Position[K, V]{n: p}
	}
	for {
		up := p.up
		if nil == up {
			return pos // only reached from the high barrier
		}
		if up.left == p {
			if nil == up.entry && !up.isBarrier() {
				return Position[K, V]{n: up.right} // empty tree
			}
			return Position[K, V]{n: up}
		}
		p = up
	}
}

// Prev - given a position, return the position with the next lowest
// key or the low barrier (REnd) if no more entries.
func (pos Position[K, V]) Prev() Position[K, V] {
	p := pos.n
	if nil != p.left {
		p = p.left
		for nil != p.right {
			p = p.right
		}
		return Position[K, V]{n: p}
	}
	for {
		up := p.up
		if nil == up {
			return pos // only reached from the low barrier
		}
		if up.right == p {
			if nil == up.entry && !up.isBarrier() {
				return Position[K, V]{n: up.left} // empty tree
			}
			return Position[K, V]{n: up}
		}
		p = up
	}
}

// IsEnd - true for the position one past the highest key
func (pos Position[K, V]) IsEnd() bool {
	return highBarrier == pos.n.kind
}

// IsREnd - true for the position one before the lowest key
func (pos Position[K, V]) IsREnd() bool {
	return lowBarrier == pos.n.kind
}

// Valid - true if the position refers to an entry
func (pos Position[K, V]) Valid() bool {
	return nil != pos.n && nil != pos.n.entry
}

// Equal - true if both positions refer to the same place
func (pos Position[K, V]) Equal(other Position[K, V]) bool {
	return pos.n == other.n
}

func (pos Position[K, V]) mustEntry() *Entry[K, V] {
	if nil == pos.n || nil == pos.n.entry {
		panic(fault.ErrEndPosition)
	}
	return pos.n.entry
}

// Key - read the key at a position
func (pos Position[K, V]) Key() K {
	return pos.mustEntry().Key
}

// Value - read the value at a position
func (pos Position[K, V]) Value() V {
	return pos.mustEntry().Value
}

// Entry - read the key/value pair at a position
func (pos Position[K, V]) Entry() Entry[K, V] {
	return *pos.mustEntry()
}

// SetValue - overwrite the value at a position
func (pos Position[K, V]) SetValue(value V) {
	pos.mustEntry().Value = value
}

// Depth - distance of a position from the root of the tree
func (pos Position[K, V]) Depth() uint {
	count := uint(0)
	for up := pos.n.up; nil != up; up = up.up {
		count += 1
	}
	return count
}

// Reverse - a position that moves from the highest key to the lowest
type Reverse[K any, V any] struct {
	p Position[K, V]
}

// Next - move towards lower keys
func (r Reverse[K, V]) Next() Reverse[K, V] {
	return Reverse[K, V]{p: r.p.Prev()}
}

// Prev - move towards higher keys
func (r Reverse[K, V]) Prev() Reverse[K, V] {
	return Reverse[K, V]{p: r.p.Next()}
}

// IsEnd - true once the reverse position has passed the lowest key
func (r Reverse[K, V]) IsEnd() bool {
	return r.p.IsREnd()
}

// Equal - true if both reverse positions refer to the same place
func (r Reverse[K, V]) Equal(other Reverse[K, V]) bool {
	return r.p.Equal(other.p)
}

// Position - the forward position referring to the same place
func (r Reverse[K, V]) Position() Position[K, V] {
	return r.p
}

// Key - read the key at a reverse position
func (r Reverse[K, V]) Key() K {
	return r.p.Key()
}

// Value - read the value at a reverse position
func (r Reverse[K, V]) Value() V {
	return r.p.Value()
}

// Entry - read the key/value pair at a reverse position
func (r Reverse[K, V]) Entry() Entry[K, V] {
	return r.p.Entry()
}

// Ascend - call iter for every entry in ascending key order
func (tree *Tree[K, V]) Ascend(iter ItemIterator[K, V]) {
	for p := tree.Begin(); !p.IsEnd(); p = p.Next() {
		if !iter(p.n.entry.Key, p.n.entry.Value) {
			return
		}
	}
}

// Descend - call iter for every entry in descending key order
func (tree *Tree[K, V]) Descend(iter ItemIterator[K, V]) {
	for r := tree.RBegin(); !r.IsEnd(); r = r.Next() {
		if !iter(r.p.n.entry.Key, r.p.n.entry.Value) {
			return
		}
	}
}

// AscendRange - call iter for every entry in [greaterOrEqual, lessThan)
func (tree *Tree[K, V]) AscendRange(greaterOrEqual K, lessThan K, iter ItemIterator[K, V]) {
	for p := tree.LowerBound(greaterOrEqual); !p.IsEnd(); p = p.Next() {
		if !tree.less(p.n.entry.Key, lessThan) {
			return
		}
		if !iter(p.n.entry.Key, p.n.entry.Value) {
			return
		}
	}
}

// Keys - all keys in ascending order
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.count)
	tree.Ascend(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Entries - all entries in ascending key order
func (tree *Tree[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, tree.count)
	tree.Ascend(func(key K, value V) bool {
		entries = append(entries, Entry[K, V]{Key: key, Value: value})
		return true
	})
	return entries
}
