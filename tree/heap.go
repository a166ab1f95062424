// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/nonlinear/fault"
)

// max-heap order: every node's value is >= its children's values
type heapOrder[T constraints.Ordered] struct{}

func (heapOrder[T]) AfterPush(tree *Tree[T], path []*Node[T], node *Node[T]) {
	siftUp(path, node)
}

func (heapOrder[T]) AfterPop(tree *Tree[T], path []*Node[T], node *Node[T]) {
	if nil == node {
		return
	}
	up := tree.placement.pathTo(tree, node)
	if 0 != len(up) && up[len(up)-1].value < node.value {
		siftUp(up, node)
	} else {
		siftDown(node)
	}
}

// swap values toward the root while the parent is smaller
func siftUp[T constraints.Ordered](path []*Node[T], p *Node[T]) *Node[T] {
	for i := len(path) - 1; i >= 0; i -= 1 {
		parent := path[i]
		if parent.value >= p.value {
			break
		}
		parent.value, p.value = p.value, parent.value
		p = parent
	}
	return p
}

// swap values toward the larger child while that child is larger
func siftDown[T constraints.Ordered](p *Node[T]) *Node[T] {
	for {
		larger := p.left
		if nil == larger || (nil != p.right && p.right.value > larger.value) {
			larger = p.right
		}
		if nil == larger || larger.value <= p.value {
			return p
		}
		larger.value, p.value = p.value, larger.value
		p = larger
	}
}

// MaxHeap - a complete binary tree in max-heap order
//
// duplicates are allowed, lookups are breadth first
type MaxHeap[T constraints.Ordered] struct {
	tree *Tree[T]
}

// NewMaxHeap - create an empty heap
func NewMaxHeap[T constraints.Ordered]() *MaxHeap[T] {
	return &MaxHeap[T]{
		tree: NewWithPolicy(ShapePlacement[T](), HeapOrder[T]()),
	}
}

// Count - number of values in the heap
func (h *MaxHeap[T]) Count() int {
	return h.tree.count
}

// IsEmpty - true if the heap holds no values
func (h *MaxHeap[T]) IsEmpty() bool {
	return h.tree.IsEmpty()
}

// Root - the node holding the maximum
func (h *MaxHeap[T]) Root() *Node[T] {
	return h.tree.root
}

// Push - add a value and sift it up into place
func (h *MaxHeap[T]) Push(value T) bool {
	return h.tree.Push(value)
}

// Pop - remove one occurrence of value
func (h *MaxHeap[T]) Pop(value T) bool {
	return h.tree.Pop(value)
}

// Find - first node in level order holding value
func (h *MaxHeap[T]) Find(value T) *Node[T] {
	return h.tree.Find(value)
}

// Max - the largest value without removing it
func (h *MaxHeap[T]) Max() (T, error) {
	if nil == h.tree.root {
		var zero T
		return zero, fault.ErrEmptyCollection
	}
	return h.tree.root.value, nil
}

// Extract - remove and return the largest value
func (h *MaxHeap[T]) Extract() (T, error) {
	if nil == h.tree.root {
		var zero T
		return zero, fault.ErrEmptyCollection
	}
	value := h.tree.root.value
	s := shapePlacement[T]{}
	path, relocated := s.removeNode(h.tree, h.tree.root)
	h.tree.count -= 1
	refreshPath(path)
	h.tree.rebalancer.AfterPop(h.tree, path, relocated)
	return value, nil
}

// SiftUp - move a node's value toward the root until its parent is
// not smaller, returns the node finally holding the value
func (h *MaxHeap[T]) SiftUp(p *Node[T]) *Node[T] {
	path := h.tree.PathTo(p)
	if nil == path {
		return nil
	}
	return siftUp(path, p)
}

// SiftDown - move a node's value toward the leaves until no child is
// larger, returns the node finally holding the value
func (h *MaxHeap[T]) SiftDown(p *Node[T]) *Node[T] {
	if nil == h.tree.PathTo(p) {
		return nil
	}
	return siftDown(p)
}

// IncreaseKey - replace oldValue by a value that is not smaller and
// sift it up
//
// the heap is unchanged when an error is returned
func (h *MaxHeap[T]) IncreaseKey(oldValue T, newValue T) error {
	if newValue < oldValue {
		return fault.ErrKeyNotIncreased
	}
	p := h.tree.Find(oldValue)
	if nil == p {
		return fault.ErrNotFound
	}
	p.value = newValue
	h.SiftUp(p)
	return nil
}

// DecreaseKey - replace oldValue by a value that is not larger and
// sift it down
//
// the heap is unchanged when an error is returned
func (h *MaxHeap[T]) DecreaseKey(oldValue T, newValue T) error {
	if newValue > oldValue {
		return fault.ErrKeyNotDecreased
	}
	p := h.tree.Find(oldValue)
	if nil == p {
		return fault.ErrNotFound
	}
	p.value = newValue
	siftDown(p)
	return nil
}

// LevelOrder - snapshot of the heap in level order
func (h *MaxHeap[T]) LevelOrder() *Traversal[T] {
	return h.tree.LevelOrder()
}

// CheckHeap - verify heap order, shape and count
func (h *MaxHeap[T]) CheckHeap() bool {
	return h.tree.CheckHeap() && h.tree.IsComplete() && h.tree.CheckCount()
}
