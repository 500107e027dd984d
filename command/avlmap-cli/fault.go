// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidBase58Key = fault.InvalidError("key is not valid Base58")
	ErrRequiredKey      = fault.InvalidError("key is required")
	ErrRequiredOutput   = fault.InvalidError("output database is required")
	ErrTooManyFiles     = fault.InvalidError("only one input file is allowed")
)
