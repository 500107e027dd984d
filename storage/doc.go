// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - persist the entries of a string keyed tree in a
// LevelDB database
//
// all entries are stored under a single prefix byte so that the
// database can also hold a version record.  LevelDB iterates keys in
// byte order, so loading visits the entries in the same order that
// the default string ordering of the tree uses.
package storage
