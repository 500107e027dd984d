// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// LessFunc - strict weak ordering of keys, true if a sorts before b
type LessFunc[K any] func(a, b K) bool

// Ordered - the set of key types that support the '<' operator
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr | ~float32 | ~float64 | ~string
}

// Less - the default ordering for Ordered key types
func Less[K Ordered]() LessFunc[K] {
	return func(a, b K) bool { return a < b }
}

//go:generate mockgen -destination=mocks/item.go -package=mocks github.com/bitmark-inc/avlmap/avl Item

// Item - a key that provides its own three-way comparison
//
// Compare returns -1, 0, +1 for item < x, item == x, item > x
type Item interface {
	Compare(interface{}) int
}

// ItemLess - ordering for keys implementing Item
func ItemLess[K Item]() LessFunc[K] {
	return func(a, b K) bool { return a.Compare(b) < 0 }
}
