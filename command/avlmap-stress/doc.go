// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlmap-stress - run random insert, delete, lookup and range erase
// rounds against independent trees, checking every structural
// invariant after each round
//
// usage: avlmap-stress [--verbose] [--quiet] --config-file=FILE
//
// see avlmap-stress.conf.sample for the settings.  The rate setting is
// applied again whenever the configuration file is written.
package main
