// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/nonlinear/fault"
)

// Tree - type to hold the root node of a tree and its policies
type Tree[T constraints.Ordered] struct {
	root       *Node[T]
	count      int
	placement  Placement[T]
	rebalancer Rebalancer[T]

	pool       *Node[T] // linked list of reclaimed nodes
	totalNodes int      // nodes created and not discarded
	freeNodes  int      // number of nodes in the pool
}

// New - create an empty shape-preserving tree
func New[T constraints.Ordered]() *Tree[T] {
	return NewWithPolicy(ShapePlacement[T](), NoRebalance[T]())
}

// NewOrdered - create an empty binary search tree
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return NewWithPolicy(OrderedPlacement[T](), NoRebalance[T]())
}

// NewBalanced - create an empty AVL tree
func NewBalanced[T constraints.Ordered]() *Tree[T] {
	return NewWithPolicy(OrderedPlacement[T](), AVLRebalance[T]())
}

// NewWithPolicy - create an empty tree from an explicit policy pair
//
// panics on a nil policy, on AVL repair without ordered placement and
// on heap order without shape placement
func NewWithPolicy[T constraints.Ordered](placement Placement[T], rebalancer Rebalancer[T]) *Tree[T] {
	if nil == placement || nil == rebalancer {
		fault.Panicf("tree: nil policy placement: %v  rebalancer: %v", placement, rebalancer)
	}
	if !compatible(placement, rebalancer) {
		fault.Panicf("tree: %s placement: %s", placement.Name(), fault.ErrIncompatiblePolicy)
	}
	return &Tree[T]{
		placement:  placement,
		rebalancer: rebalancer,
	}
}

// the built-in rebalancers each depend on one placement invariant
func compatible[T constraints.Ordered](placement Placement[T], rebalancer Rebalancer[T]) bool {
	switch rebalancer.(type) {
	case avlRebalance[T]:
		_, ok := placement.(orderedPlacement[T])
		return ok
	case heapOrder[T]:
		_, ok := placement.(shapePlacement[T])
		return ok
	}
	return true
}

// NewKind - create an empty tree of one of the standard kinds
func NewKind[T constraints.Ordered](kind Kind) (*Tree[T], error) {
	switch kind {
	case KindBase:
		return New[T](), nil
	case KindOrdered:
		return NewOrdered[T](), nil
	case KindBalanced:
		return NewBalanced[T](), nil
	default:
		return nil, fault.ErrUnknownTreeKind
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[T]) Height() int {
	return tree.root.Height()
}

// Placement - the placement policy of this tree
func (tree *Tree[T]) Placement() Placement[T] {
	return tree.placement
}

// Clear - destroy every node, leaving the tree empty
//
// each node is visited exactly once and returned to the pool
func (tree *Tree[T]) Clear() {
	if nil == tree.root {
		return
	}
	n := 0
	queue := []*Node[T]{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
		tree.freeNode(p)
		n += 1
	}
	debugf("clear: released %d nodes", n)
	tree.root = nil
	tree.count = 0
}

// Clone - deep copy, the copy shares no nodes with the original and
// uses the same policies
func (tree *Tree[T]) Clone() *Tree[T] {
	c := NewWithPolicy(tree.placement, tree.rebalancer)
	if nil == tree.root {
		return c
	}

	type pair struct {
		from *Node[T]
		to   *Node[T]
	}

	c.root = c.copyNode(tree.root)
	stack := []pair{{tree.root, c.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if nil != top.from.left {
			top.to.left = c.copyNode(top.from.left)
			stack = append(stack, pair{top.from.left, top.to.left})
		}
		if nil != top.from.right {
			top.to.right = c.copyNode(top.from.right)
			stack = append(stack, pair{top.from.right, top.to.right})
		}
	}
	c.count = tree.count
	return c
}

func (tree *Tree[T]) copyNode(p *Node[T]) *Node[T] {
	n := tree.newNode(p.value)
	n.height = p.height
	return n
}

// Move - transfer ownership of all nodes to a new tree, the source is
// left empty but keeps its policies
func (tree *Tree[T]) Move() *Tree[T] {
	m := NewWithPolicy(tree.placement, tree.rebalancer)
	m.root = tree.root
	m.count = tree.count
	tree.root = nil
	tree.count = 0
	return m
}
