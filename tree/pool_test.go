// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodePool(t *testing.T) {
	tr := New[int]()
	for i := 1; i <= 10; i += 1 {
		tr.Push(i)
	}
	assert.Equal(t, 10, tr.totalNodes, "wrong total")
	assert.Equal(t, 0, tr.freeNodes, "wrong free")

	tr.Pop(3)
	assert.Equal(t, 1, tr.freeNodes, "popped node not reclaimed")
	assert.Zero(t, tr.pool.value, "reclaimed node keeps value")
	assert.Nil(t, tr.pool.right, "reclaimed node keeps child")

	tr.Push(42)
	assert.Equal(t, 0, tr.freeNodes, "reclaimed node not reused")
	assert.Equal(t, 10, tr.totalNodes, "new node allocated")
	assert.Equal(t, 1, tr.Find(42).Height(), "reused node height")

	tr.Clear()
	assert.Equal(t, 10, tr.freeNodes, "cleared nodes not reclaimed")

	for i := 0; i < maxFreeNodes+76; i += 1 {
		tr.Push(i)
	}
	assert.Equal(t, maxFreeNodes+76, tr.totalNodes, "wrong total")
	assert.Equal(t, 0, tr.freeNodes, "pool not drained")

	tr.Clear()
	assert.Equal(t, maxFreeNodes, tr.freeNodes, "pool exceeds limit")
	assert.Equal(t, maxFreeNodes, tr.totalNodes, "discarded nodes still counted")
}

// a handle kept across a Pop sees the node's next value
func TestNodeHandleReused(t *testing.T) {
	tr := NewOrdered[int]()
	for _, v := range []int{2, 1, 3} {
		tr.Push(v)
	}
	p := tr.Find(3)
	assert.True(t, tr.Pop(3), "pop failed")
	assert.True(t, tr.Push(9), "push failed")
	assert.Same(t, p, tr.Find(9), "freed node not reused")
	assert.Equal(t, 9, p.Value(), "stale handle value")
	assert.Equal(t, 1, tr.DepthOf(p), "stale handle depth")
}

func TestLastLevelOrderSkewed(t *testing.T) {
	tr := NewOrdered[int]()
	for _, v := range []int{5, 3, 1} {
		tr.Push(v)
	}
	assert.Equal(t, 1, lastLevelOrder(tr.root).value, "deepest node not found")
	assert.Nil(t, lastLevelOrder[int](nil), "last of nil")
}
