// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/nonlinear/fault"
	"github.com/bitmark-inc/nonlinear/tree"
)

func newHeap(values ...int) *tree.MaxHeap[int] {
	h := tree.NewMaxHeap[int]()
	for _, v := range values {
		h.Push(v)
	}
	return h
}

func TestHeapPush(t *testing.T) {
	h := newHeap(3, 9, 2, 7, 5, 8)

	assert.Equal(t, 6, h.Count(), "wrong count")
	assert.Equal(t, []int{9, 7, 8, 3, 5, 2}, h.LevelOrder().Values(), "wrong level order")
	assert.True(t, h.CheckHeap(), "heap check")

	max, err := h.Max()
	require.NoError(t, err, "max")
	assert.Equal(t, 9, max, "wrong max")
	assert.Equal(t, 9, h.Root().Value(), "wrong root")

	// duplicates are allowed
	assert.True(t, h.Push(9), "duplicate rejected")
	assert.True(t, h.CheckHeap(), "heap check")
}

func TestHeapExtract(t *testing.T) {
	h := newHeap(3, 9, 2, 7, 5, 8)

	for _, expected := range []int{9, 8, 7, 5, 3, 2} {
		v, err := h.Extract()
		require.NoError(t, err, "extract")
		if expected != v {
			t.Fatalf("extract: actual: %d  expected: %d", v, expected)
		}
		if !h.CheckHeap() {
			t.Fatalf("inconsistent heap after extract: %d", v)
		}
	}
	assert.True(t, h.IsEmpty(), "not empty")

	_, err := h.Extract()
	assert.Equal(t, fault.ErrEmptyCollection, err, "extract from empty heap")
	_, err = h.Max()
	assert.Equal(t, fault.ErrEmptyCollection, err, "max of empty heap")
}

func TestHeapPop(t *testing.T) {
	h := newHeap(3, 9, 2, 7, 5, 8)

	assert.False(t, h.Pop(42), "absent value popped")
	assert.Equal(t, 6, h.Count(), "count changed")

	for _, v := range []int{7, 9, 2, 3, 8, 5} {
		if !h.Pop(v) {
			t.Fatalf("pop: %d failed", v)
		}
		if nil != h.Find(v) {
			t.Fatalf("pop: %d still present", v)
		}
		if !h.CheckHeap() {
			t.Fatalf("inconsistent heap after pop: %d", v)
		}
	}
	assert.True(t, h.IsEmpty(), "not empty")
}

// the relocated last value can be larger than the parent of the
// removed node and has to move up
func TestHeapPopSiftsUp(t *testing.T) {
	h := newHeap(100, 50, 90, 10, 20, 80, 85)
	require.Equal(t, []int{100, 50, 90, 10, 20, 80, 85}, h.LevelOrder().Values(), "wrong initial shape")

	require.True(t, h.Pop(10), "pop 10")
	assert.Equal(t, []int{100, 85, 90, 50, 20, 80}, h.LevelOrder().Values(), "relocated value not sifted up")
	assert.True(t, h.CheckHeap(), "heap check")
}

func TestHeapKeys(t *testing.T) {
	h := newHeap(3, 9, 2, 7, 5, 8)

	require.NoError(t, h.IncreaseKey(2, 10), "increase key")
	max, _ := h.Max()
	assert.Equal(t, 10, max, "increased key not at root")
	assert.True(t, h.CheckHeap(), "heap check")

	err := h.IncreaseKey(5, 1)
	assert.Equal(t, fault.ErrKeyNotIncreased, err, "wrong direction accepted")
	assert.True(t, fault.IsErrInvalid(err), "wrong error class")
	assert.NotNil(t, h.Find(5), "value changed by rejected update")

	err = h.IncreaseKey(42, 50)
	assert.True(t, fault.IsErrNotFound(err), "missing key updated")

	require.NoError(t, h.DecreaseKey(10, 1), "decrease key")
	max, _ = h.Max()
	assert.Equal(t, 9, max, "decreased key still at root")
	assert.True(t, h.CheckHeap(), "heap check")

	before := h.LevelOrder().Values()
	err = h.DecreaseKey(1, 4)
	assert.Equal(t, fault.ErrKeyNotDecreased, err, "wrong direction accepted")
	assert.True(t, fault.IsErrInvalid(err), "wrong error class")
	assert.Equal(t, before, h.LevelOrder().Values(), "heap changed by rejected update")

	err = h.IncreaseKey(7, 3)
	assert.Equal(t, fault.ErrKeyNotIncreased, err, "wrong direction accepted")
	assert.Equal(t, before, h.LevelOrder().Values(), "heap changed by rejected update")

	// equal keys are allowed both ways
	assert.NoError(t, h.IncreaseKey(9, 9), "same key")
	assert.NoError(t, h.DecreaseKey(9, 9), "same key")
}

func TestHeapSift(t *testing.T) {
	h := newHeap(9, 7, 8)
	assert.Equal(t, 9, h.SiftUp(h.Root()).Value(), "root moved")
	assert.Same(t, h.Root(), h.SiftDown(h.Root()), "root moved")

	other := newHeap(1)
	assert.Nil(t, h.SiftUp(other.Root()), "sifted a foreign node")
	assert.Nil(t, h.SiftDown(other.Root()), "sifted a foreign node")
}

func TestRandomHeap(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	h := tree.NewMaxHeap[int]()
	values := []int{}

	for i := 0; i < 1500; i += 1 {
		v := r.Intn(500)
		h.Push(v)
		values = append(values, v)

		if 0 == r.Intn(4) {
			j := r.Intn(len(values))
			if !h.Pop(values[j]) {
				t.Fatalf("pop: %d failed", values[j])
			}
			values = append(values[:j], values[j+1:]...)
		}
		if !h.CheckHeap() {
			t.Fatalf("inconsistent heap after operation: %d", i)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	for i, expected := range values {
		v, err := h.Extract()
		require.NoError(t, err, "extract")
		if expected != v {
			t.Fatalf("extract: %d  actual: %d  expected: %d", i, v, expected)
		}
	}
	assert.True(t, h.IsEmpty(), "not empty")
}
