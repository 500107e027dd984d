// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceOutOfRange    = ProcessError("node balance out of range")
	ErrBarrierDetached      = ProcessError("barrier node detached")
	ErrCountMismatch        = ProcessError("node count mismatch")
	ErrEndPosition          = InvalidError("position does not refer to an entry")
	ErrHeightMismatch       = ProcessError("node height mismatch")
	ErrIncompatibleDatabase = InvalidError("incompatible database version")
	ErrInvalidCount         = InvalidError("count is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrKeyOrder             = ProcessError("keys out of order")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrParentLink           = ProcessError("parent link inconsistent")
	ErrRateLimiting         = ProcessError("rate limiting")
	ErrReadOnlyDatabase     = InvalidError("database is read only")
	ErrValueMismatch        = ProcessError("value mismatch")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var t ExistsError; return as(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return as(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return as(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return as(e, &t) }

func as(e error, target interface{}) bool {
	if nil == e {
		return false
	}
	return errors.As(e, target)
}
