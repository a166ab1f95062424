// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/nonlinear/fault"
)

// Find - the node holding value, nil if absent
//
// the node is only valid until the tree is next changed, after a Pop
// it may be reused to hold a different value
func (tree *Tree[T]) Find(value T) *Node[T] {
	return tree.placement.find(tree, value)
}

// Contains - true if the value is in the tree
func (tree *Tree[T]) Contains(value T) bool {
	return nil != tree.placement.find(tree, value)
}

// ParentOf - the node whose child holds value, nil if value is absent
// or held by the root
func (tree *Tree[T]) ParentOf(value T) *Node[T] {
	return tree.placement.parentOf(tree, value)
}

// ParentOfNode - the parent of a node of this tree, nil for the root
// or a node not in this tree
func (tree *Tree[T]) ParentOfNode(p *Node[T]) *Node[T] {
	path := tree.placement.pathTo(tree, p)
	if 0 == len(path) {
		return nil
	}
	return path[len(path)-1]
}

// PathTo - ancestors of a node from the root down to, but excluding,
// the node
//
// nil if the node is not part of this tree; the root has an empty,
// non-nil path
func (tree *Tree[T]) PathTo(p *Node[T]) []*Node[T] {
	return tree.placement.pathTo(tree, p)
}

// PathToValue - ancestors of the node holding value, nil if absent
func (tree *Tree[T]) PathToValue(value T) []*Node[T] {
	p := tree.placement.find(tree, value)
	if nil == p {
		return nil
	}
	return tree.placement.pathTo(tree, p)
}

// DepthOf - number of ancestors of a node, -1 if not in this tree
func (tree *Tree[T]) DepthOf(p *Node[T]) int {
	path := tree.placement.pathTo(tree, p)
	if nil == path {
		return -1
	}
	return len(path)
}

// NodesAtDepth - all nodes at a specific depth, left to right
func (tree *Tree[T]) NodesAtDepth(depth int) []*Node[T] {
	nodes := []*Node[T]{}
	if nil == tree.root || depth < 0 {
		return nodes
	}
	level := []*Node[T]{tree.root}
	for d := 0; d < depth && len(level) > 0; d += 1 {
		next := make([]*Node[T], 0, 2*len(level))
		for _, p := range level {
			if nil != p.left {
				next = append(next, p.left)
			}
			if nil != p.right {
				next = append(next, p.right)
			}
		}
		level = next
	}
	return append(nodes, level...)
}

// MaxKey - node with the highest value in the sub-tree rooted at p
func (tree *Tree[T]) MaxKey(p *Node[T]) *Node[T] {
	return tree.placement.maxKey(p)
}

// MinKey - node with the lowest value in the sub-tree rooted at p
func (tree *Tree[T]) MinKey(p *Node[T]) *Node[T] {
	return tree.placement.minKey(p)
}

// Max - highest value in the tree
func (tree *Tree[T]) Max() (T, error) {
	if nil == tree.root {
		var zero T
		return zero, fault.ErrEmptyCollection
	}
	return tree.placement.maxKey(tree.root).value, nil
}

// Min - lowest value in the tree
func (tree *Tree[T]) Min() (T, error) {
	if nil == tree.root {
		var zero T
		return zero, fault.ErrEmptyCollection
	}
	return tree.placement.minKey(tree.root).value, nil
}

// LastLevelOrder - the deepest, rightmost node
func (tree *Tree[T]) LastLevelOrder() (*Node[T], error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyCollection
	}
	return lastLevelOrder(tree.root), nil
}
