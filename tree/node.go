// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"golang.org/x/exp/constraints"
)

// upper limit on reclaimed nodes kept by a single tree
const maxFreeNodes = 1024

// Node - a value cell with two child slots
type Node[T constraints.Ordered] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	value  T        // the stored value
	height int      // 1 + max(left, right), 0 for nil
}

// Value - read the value from a node
func (p *Node[T]) Value() T {
	return p.value
}

// Left - left child or nil
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - right child or nil
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Height - height of the sub-tree rooted at this node, nil gives zero
func (p *Node[T]) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}

// IsLeaf - true if the node has no children
func (p *Node[T]) IsLeaf() bool {
	return nil == p.left && nil == p.right
}

// recompute cached height from the children
func (p *Node[T]) refresh() {
	lh := p.left.Height()
	rh := p.right.Height()
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[T]) newNode(value T) *Node[T] {
	p := tree.pool
	if nil == p {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		tree.totalNodes += 1
		return &Node[T]{
			value:  value,
			height: 1,
		}
	}
	tree.pool = p.left
	tree.freeNodes -= 1

	p.left = nil // clear the free list pointer
	p.right = nil
	p.value = value
	p.height = 1
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree[T]) freeNode(p *Node[T]) {
	var zero T
	p.right = nil
	p.value = zero
	p.height = 0

	if tree.freeNodes >= maxFreeNodes {
		p.left = nil
		tree.totalNodes -= 1
		return
	}
	p.left = tree.pool // use as free list pointer
	tree.pool = p
	tree.freeNodes += 1
}
