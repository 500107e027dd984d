// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlmap-cli - order "key value" text lines or a LevelDB database with
// an AVL tree and print entries, ranges, bounds or the tree diagram
//
// usage: avlmap-cli [--verbose] [--database DIR] [--base58] [--json] COMMAND [options] [FILE]
//
// input lines hold a key, white space and an optional value.  Blank
// lines and lines starting with '#' are ignored.  When a key repeats
// the first value is kept unless "sort --last" is used.
package main
