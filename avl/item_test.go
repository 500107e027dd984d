// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/avl/mocks"
)

// build mock keys that order by their index and count every
// comparison made through them
func mockKeys(ctl *gomock.Controller, n int, calls *int) []*mocks.MockItem {
	keys := make([]*mocks.MockItem, n)
	rank := make(map[*mocks.MockItem]int, n)
	for i := range keys {
		keys[i] = mocks.NewMockItem(ctl)
		rank[keys[i]] = i
	}
	for i, k := range keys {
		i := i
		k.EXPECT().Compare(gomock.Any()).DoAndReturn(func(x interface{}) int {
			*calls += 1
			j := rank[x.(*mocks.MockItem)]
			switch {
			case i < j:
				return -1
			case i > j:
				return +1
			}
			return 0
		}).AnyTimes()
	}
	return keys
}

func TestItemKeysOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	calls := 0
	keys := mockKeys(ctl, 15, &calls)

	tree := avl.NewItem[*mocks.MockItem, int]()
	for _, i := range []int{7, 3, 11, 1, 5, 9, 13, 0, 2, 4, 6, 8, 10, 12, 14} {
		tree.Insert(keys[i], i)
	}
	require.NoError(t, tree.Check())
	assert.Equal(t, 4, tree.Height())

	n := 0
	tree.Ascend(func(key *mocks.MockItem, value int) bool {
		assert.Same(t, keys[n], key)
		assert.Equal(t, n, value)
		n += 1
		return true
	})
	assert.Equal(t, 15, n)
}

// a lookup costs at most two comparisons per level plus the final
// equality check
func TestItemComparisonCount(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	calls := 0
	keys := mockKeys(ctl, 31, &calls)

	tree := avl.NewItem[*mocks.MockItem, int]()
	for i, k := range keys {
		tree.Insert(k, i)
	}
	require.NoError(t, tree.Check())
	height := tree.Height()
	require.Equal(t, 5, height)

	for i, k := range keys {
		calls = 0
		pos := tree.Find(k)
		require.False(t, pos.IsEnd())
		assert.Equal(t, i, pos.Value())
		assert.LessOrEqual(t, calls, height+1, "find: %d", i)

		calls = 0
		lower, upper := tree.EqualRange(k)
		assert.Equal(t, i, lower.Value())
		assert.True(t, upper.Equal(pos.Next()))
		assert.LessOrEqual(t, calls, 2*height, "equal range: %d", i)
	}

	// a duplicate insert stops at the matching node
	calls = 0
	_, added := tree.Insert(keys[0], 99)
	assert.False(t, added)
	assert.LessOrEqual(t, calls, 2*height)
	assert.Equal(t, 0, tree.Find(keys[0]).Value())
}
