// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered key/value map held in an AVL balanced tree
// with the addition of parent pointers to allow iteration through the
// nodes in both directions
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are unique under the ordering supplied when the tree is
// created.  Inserting a key that is already present does not touch
// the stored value; use Index to overwrite.
//
// Two permanent barrier nodes hang off the lowest and highest nodes
// so that End and REnd are ordinary positions.  They are taken off
// the tree during any structural change and put back afterwards, so
// the rotation code never sees them.
//
// Delete swaps entry payloads between nodes instead of relinking
// whole sub-trees.  A Position held across an Erase may therefore
// refer to a different key afterwards; only pointers to values
// (from Index) follow their entry.
package avl
