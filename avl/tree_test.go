// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

func stringLess(a, b string) bool { return a < b }
func stringEqual(a, b string) bool { return a == b }
func intLess(a, b int) bool { return a < b }

func TestEmptyTree(t *testing.T) {
	tree := avl.NewOrdered[int, string]()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, 0, tree.Height())
	assert.True(t, tree.Begin().Equal(tree.End()))
	assert.True(t, tree.RBegin().Equal(tree.REnd()))
	assert.True(t, tree.Find(1).IsEnd())
	assert.True(t, tree.LowerBound(1).IsEnd())
	assert.True(t, tree.UpperBound(1).IsEnd())
	assert.Equal(t, 0, tree.Count(1))
	assert.Equal(t, 0, tree.Delete(1))
	assert.True(t, tree.End().Next().IsEnd())
	assert.True(t, tree.End().Prev().IsREnd())
	assert.True(t, tree.REnd().Position().Next().IsEnd())

	lower, upper := tree.EqualRange(1)
	assert.True(t, lower.IsEnd())
	assert.True(t, upper.IsEnd())

	_, ok := tree.First()
	assert.False(t, ok)
	_, ok = tree.Last()
	assert.False(t, ok)

	_, err := tree.At(1)
	assert.Equal(t, fault.ErrKeyNotFound, err)
	assert.True(t, fault.IsErrNotFound(err))

	require.NoError(t, tree.Check())
	assert.Equal(t, 0, tree.Fprint(&bytes.Buffer{}, true))
}

func TestScenarioMixedInsert(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		_, added := tree.Insert(k, k*10)
		require.True(t, added)
		require.NoError(t, tree.Check())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, tree.Keys())
	assert.LessOrEqual(t, tree.Height(), 4)
	assert.Equal(t, 9, tree.Size())
}

func TestScenarioAscendingInsert(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	for k := 1; k <= 7; k += 1 {
		tree.Insert(k, k)
	}
	require.NoError(t, tree.Check())
	assert.Equal(t, 3, tree.Height())
	assert.Equal(t, 4, tree.AtDepth(0)[0].Key())
}

func TestScenarioEraseKeepsNeighbour(t *testing.T) {
	tree := avl.NewFrom[int, string](intLess, avl.Entry[int, string]{Key: 10, Value: "a"}, avl.Entry[int, string]{Key: 20, Value: "b"})
	require.Equal(t, 2, tree.Size())

	assert.Equal(t, 1, tree.Delete(10))
	assert.True(t, tree.Find(10).IsEnd())

	pos := tree.Find(20)
	require.False(t, pos.IsEnd())
	assert.Equal(t, "b", pos.Value())
	require.NoError(t, tree.Check())
}

func TestScenarioReverse(t *testing.T) {
	tree := avl.NewOrdered[int, struct{}]()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k, struct{}{})
	}

	keys := []int{}
	for r := tree.RBegin(); !r.IsEnd(); r = r.Next() {
		keys = append(keys, r.Key())
	}
	assert.Equal(t, []int{3, 2, 1}, keys)

	keys = keys[:0]
	tree.Descend(func(key int, _ struct{}) bool {
		keys = append(keys, key)
		return true
	})
	assert.Equal(t, []int{3, 2, 1}, keys)

	// step off either end and back
	assert.Equal(t, 3, tree.End().Prev().Key())
	assert.Equal(t, 1, tree.REnd().Prev().Key())
	assert.True(t, tree.RBegin().Prev().Position().IsEnd())
}

func TestInsertRoundTrip(t *testing.T) {
	tree := avl.NewOrdered[string, string]()

	pos, added := tree.Insert("key", "value")
	require.True(t, added)
	assert.Equal(t, "key", pos.Key())
	assert.Equal(t, "value", tree.Find("key").Value())
	assert.Equal(t, avl.Entry[string, string]{Key: "key", Value: "value"}, tree.Find("key").Entry())

	pos2, added := tree.Insert("key", "other")
	assert.False(t, added)
	assert.True(t, pos.Equal(pos2))
	assert.Equal(t, "value", pos2.Value())
	assert.Equal(t, 1, tree.Size())
	assert.Equal(t, 1, tree.Count("key"))

	assert.True(t, tree.InsertHint(tree.End(), "key", "again").IsEnd())
	assert.Equal(t, "zz", tree.InsertHint(tree.Begin(), "zz", "top").Key())

	tree.Erase(tree.Find("key"))
	assert.True(t, tree.Find("key").IsEnd())
	assert.Equal(t, 1, tree.Size())
	require.NoError(t, tree.Check())

	tree.Erase(tree.Find("zz"))
	assert.True(t, tree.IsEmpty())
	require.NoError(t, tree.Check())

	// the placeholder root is reused
	tree.Insert("again", "v")
	require.NoError(t, tree.Check())
	assert.Equal(t, 1, tree.Height())
}

func TestIndex(t *testing.T) {
	tree := avl.NewOrdered[string, int]()

	*tree.Index("a") += 1
	*tree.Index("a") += 1
	*tree.Index("b") += 5

	assert.Equal(t, 2, tree.Size())
	v, err := tree.At("a")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	v, ok := tree.Get("b")
	require.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, 0, *tree.Index("c"))
	assert.Equal(t, 3, tree.Size())
	assert.True(t, tree.Contains("c"))
}

func TestBoundsSingleton(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	tree.Insert(10, 100)

	assert.True(t, tree.LowerBound(5).Equal(tree.UpperBound(5)))
	assert.True(t, tree.LowerBound(15).Equal(tree.UpperBound(15)))
	assert.True(t, tree.LowerBound(15).IsEnd())

	assert.False(t, tree.LowerBound(10).Equal(tree.UpperBound(10)))
	assert.Equal(t, 10, tree.LowerBound(10).Key())
	assert.True(t, tree.UpperBound(10).IsEnd())
}

func TestBounds(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	for k := 0; k < 100; k += 10 {
		tree.Insert(k, k)
	}

	assert.Equal(t, 30, tree.LowerBound(30).Key())
	assert.Equal(t, 40, tree.UpperBound(30).Key())
	assert.Equal(t, 40, tree.LowerBound(31).Key())
	assert.Equal(t, 40, tree.UpperBound(31).Key())
	assert.Equal(t, 0, tree.LowerBound(-5).Key())
	assert.True(t, tree.UpperBound(90).IsEnd())

	lower, upper := tree.EqualRange(50)
	assert.Equal(t, 50, lower.Key())
	assert.Equal(t, 60, upper.Key())

	lower, upper = tree.EqualRange(55)
	assert.True(t, lower.Equal(upper))
	assert.Equal(t, 60, lower.Key())

	collected := []int{}
	tree.AscendRange(20, 50, func(key int, _ int) bool {
		collected = append(collected, key)
		return true
	})
	assert.Equal(t, []int{20, 30, 40}, collected)

	collected = collected[:0]
	tree.Ascend(func(key int, _ int) bool {
		collected = append(collected, key)
		return len(collected) < 3
	})
	assert.Equal(t, []int{0, 10, 20}, collected)
}

// the single descent must agree with two independent searches
func TestEqualRangeMatchesBounds(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	tree := avl.NewOrdered[int, int]()
	for i := 0; i < 500; i += 1 {
		tree.Insert(r.Intn(2000), i)
	}
	for k := -10; k < 2010; k += 1 {
		lower, upper := tree.EqualRange(k)
		require.True(t, lower.Equal(tree.LowerBound(k)), "lower bound of: %d", k)
		require.True(t, upper.Equal(tree.UpperBound(k)), "upper bound of: %d", k)
	}
}

func TestSizeAfterDeletes(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	keys := r.Perm(1000)

	tree := avl.NewOrdered[int, int]()
	for _, k := range keys {
		tree.Insert(k, -k)
	}
	require.Equal(t, 1000, tree.Size())

	deleted := 0
	for _, k := range keys[:637] {
		deleted += tree.Delete(k)
		if 0 == deleted%50 {
			require.NoError(t, tree.Check())
		}
	}
	assert.Equal(t, 637, deleted)
	assert.Equal(t, 1000-637, tree.Size())
	require.NoError(t, tree.Check())

	for _, k := range keys[637:] {
		v, err := tree.At(k)
		require.NoError(t, err)
		assert.Equal(t, -k, v)
	}
}

func TestEraseRange(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	for k := 1; k <= 20; k += 1 {
		tree.Insert(k, k)
	}

	tree.EraseRange(tree.Find(5), tree.Find(15))
	require.NoError(t, tree.Check())
	assert.Equal(t, []int{1, 2, 3, 4, 15, 16, 17, 18, 19, 20}, tree.Keys())

	tree.EraseRange(tree.LowerBound(17), tree.End())
	assert.Equal(t, []int{1, 2, 3, 4, 15, 16}, tree.Keys())

	tree.EraseRange(tree.Begin(), tree.End())
	assert.True(t, tree.IsEmpty())
	require.NoError(t, tree.Check())
}

func TestClearAndReuse(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	end := tree.End()
	for k := 0; k < 100; k += 1 {
		tree.Insert(k, k)
	}
	tree.Clear()
	assert.True(t, tree.IsEmpty())
	assert.True(t, end.Equal(tree.End()))
	require.NoError(t, tree.Check())

	for k := 100; k > 0; k -= 1 {
		tree.Insert(k, k)
	}
	require.NoError(t, tree.Check())
	assert.Equal(t, 100, tree.Size())
	first, _ := tree.First()
	last, _ := tree.Last()
	assert.Equal(t, 1, first.Key)
	assert.Equal(t, 100, last.Key)
}

func TestCopyAssignSwap(t *testing.T) {
	a := avl.NewOrdered[string, string]()
	for _, k := range []string{"m", "c", "x", "a"} {
		a.Insert(k, "v:"+k)
	}

	b := a.Copy()
	require.NoError(t, b.Check())
	assert.True(t, a.Equal(b, stringEqual))
	assert.Equal(t, 0, a.Compare(b, stringLess))

	// deep copy: changing one does not touch the other
	*b.Index("m") = "changed"
	b.Insert("z", "v:z")
	assert.Equal(t, "v:m", a.Find("m").Value())
	assert.Equal(t, 4, a.Size())

	c := avl.NewOrdered[string, string]()
	c.Insert("q", "v:q")
	c.Assign(a)
	assert.True(t, c.Equal(a, stringEqual))
	c.Assign(c)
	assert.Equal(t, 4, c.Size())

	aEnd := a.End()
	a.Swap(b)
	assert.Equal(t, 5, a.Size())
	assert.Equal(t, 4, b.Size())
	assert.True(t, aEnd.Equal(b.End()))
	require.NoError(t, a.Check())
	require.NoError(t, b.Check())
}

func TestLexicographicCompare(t *testing.T) {
	build := func(entries ...string) *avl.Tree[string, string] {
		tree := avl.NewOrdered[string, string]()
		for i := 0; i+1 < len(entries); i += 2 {
			tree.Insert(entries[i], entries[i+1])
		}
		return tree
	}

	empty := build()
	ab := build("a", "1", "b", "2")
	abc := build("a", "1", "b", "2", "c", "3")
	ab3 := build("a", "1", "b", "3")
	ac := build("a", "1", "c", "0")

	assert.Equal(t, 0, empty.Compare(build(), stringLess))
	assert.Equal(t, -1, empty.Compare(ab, stringLess))
	assert.Equal(t, +1, ab.Compare(empty, stringLess))
	assert.Equal(t, -1, ab.Compare(abc, stringLess))
	assert.Equal(t, -1, ab.Compare(ab3, stringLess))
	assert.Equal(t, -1, abc.Compare(ac, stringLess))
	assert.True(t, ab.Less(abc, stringLess))
	assert.False(t, abc.Less(ab, stringLess))
	assert.False(t, ab.Equal(ab3, stringEqual))
	assert.False(t, ab.Equal(abc, stringEqual))
	assert.True(t, empty.Equal(build(), stringEqual))
}

func TestEndPositionPanics(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	tree.Insert(1, 1)
	assert.PanicsWithValue(t, fault.ErrEndPosition, func() {
		tree.End().Key()
	})
	assert.PanicsWithValue(t, fault.ErrEndPosition, func() {
		tree.REnd().Value()
	})
}

func TestPrint(t *testing.T) {
	tree := avl.NewOrdered[int, string]()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k, "x")
	}
	buffer := &bytes.Buffer{}
	depth := tree.Fprint(buffer, true)
	assert.Equal(t, 2, depth)
	assert.Contains(t, buffer.String(), "2 → x")
	assert.Contains(t, buffer.String(), "/------+ 3 → x ^2")
}

func TestSetValue(t *testing.T) {
	tree := avl.NewOrdered[int, string]()
	tree.InsertEntries(
		avl.Entry[int, string]{Key: 3, Value: "three"},
		avl.Entry[int, string]{Key: 1, Value: "one"},
		avl.Entry[int, string]{Key: 3, Value: "ignored"},
	)
	assert.Equal(t, 2, tree.Size())
	tree.Find(3).SetValue("THREE")
	assert.Equal(t, []avl.Entry[int, string]{{Key: 1, Value: "one"}, {Key: 3, Value: "THREE"}}, tree.Entries())
}
