// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"golang.org/x/exp/constraints"
)

// Placement - decides where values are stored and how they are found
//
// the methods are internal, only the shape and ordered placements
// of this package exist
type Placement[T constraints.Ordered] interface {
	Name() string

	// insert a value and return the ancestors of the new node
	// (root first) together with the node
	push(tree *Tree[T], value T) ([]*Node[T], *Node[T], bool)

	// remove a value and return the ancestors of the node that was
	// physically unlinked (root first) and the node, if any, that
	// received a relocated value
	pop(tree *Tree[T], value T) ([]*Node[T], *Node[T], bool)

	find(tree *Tree[T], value T) *Node[T]
	parentOf(tree *Tree[T], value T) *Node[T]
	pathTo(tree *Tree[T], p *Node[T]) []*Node[T]
	maxKey(p *Node[T]) *Node[T]
	minKey(p *Node[T]) *Node[T]
}

// Rebalancer - repairs an invariant after a successful structural edit
//
// path holds the ancestors of the edit point, root first; heights
// along it are already current when the rebalancer is called
type Rebalancer[T constraints.Ordered] interface {
	// node is the newly inserted node
	AfterPush(tree *Tree[T], path []*Node[T], node *Node[T])

	// node received a relocated value, or is nil if the removed
	// node was spliced out directly
	AfterPop(tree *Tree[T], path []*Node[T], node *Node[T])
}

// Kind - the standard placement/rebalancer combinations
type Kind string

// tree kinds accepted by NewKind
const (
	KindBase     Kind = "base"
	KindOrdered  Kind = "ordered"
	KindBalanced Kind = "balanced"
)

// ShapePlacement - complete tree placement, no ordering assumption
func ShapePlacement[T constraints.Ordered]() Placement[T] {
	return shapePlacement[T]{}
}

// OrderedPlacement - binary search tree placement
func OrderedPlacement[T constraints.Ordered]() Placement[T] {
	return orderedPlacement[T]{}
}

// NoRebalance - leave the tree as the placement edited it
func NoRebalance[T constraints.Ordered]() Rebalancer[T] {
	return noRebalance[T]{}
}

// AVLRebalance - restore the AVL height invariant with rotations
func AVLRebalance[T constraints.Ordered]() Rebalancer[T] {
	return avlRebalance[T]{}
}

// HeapOrder - restore max-heap order by sifting values
func HeapOrder[T constraints.Ordered]() Rebalancer[T] {
	return heapOrder[T]{}
}

type noRebalance[T constraints.Ordered] struct{}

func (noRebalance[T]) AfterPush(tree *Tree[T], path []*Node[T], node *Node[T]) {}
func (noRebalance[T]) AfterPop(tree *Tree[T], path []*Node[T], node *Node[T])  {}
