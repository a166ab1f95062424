// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"golang.org/x/exp/constraints"
)

// Traversal - a point in time sequence of nodes
//
// the nodes are collected when the traversal is created; it can be
// consumed any number of times by calling Reset
type Traversal[T constraints.Ordered] struct {
	nodes []*Node[T]
	index int
}

// Next - the next node in sequence, false when exhausted
func (t *Traversal[T]) Next() (*Node[T], bool) {
	if t.index >= len(t.nodes) {
		return nil, false
	}
	p := t.nodes[t.index]
	t.index += 1
	return p, true
}

// Reset - restart from the first node
func (t *Traversal[T]) Reset() {
	t.index = 0
}

// Len - total number of nodes in the sequence
func (t *Traversal[T]) Len() int {
	return len(t.nodes)
}

// Values - all values in sequence, independent of the read position
func (t *Traversal[T]) Values() []T {
	values := make([]T, len(t.nodes))
	for i, p := range t.nodes {
		values[i] = p.value
	}
	return values
}

// InOrder - left sub-tree, node, right sub-tree
func (tree *Tree[T]) InOrder() *Traversal[T] {
	nodes := make([]*Node[T], 0, tree.count)
	stack := []*Node[T]{}
	p := tree.root
	for nil != p || len(stack) > 0 {
		for nil != p {
			stack = append(stack, p)
			p = p.left
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, p)
		p = p.right
	}
	return &Traversal[T]{nodes: nodes}
}

// PreOrder - node, left sub-tree, right sub-tree
func (tree *Tree[T]) PreOrder() *Traversal[T] {
	nodes := make([]*Node[T], 0, tree.count)
	if nil == tree.root {
		return &Traversal[T]{nodes: nodes}
	}
	stack := []*Node[T]{tree.root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, p)
		if nil != p.right {
			stack = append(stack, p.right)
		}
		if nil != p.left {
			stack = append(stack, p.left)
		}
	}
	return &Traversal[T]{nodes: nodes}
}

// PostOrder - left sub-tree, right sub-tree, node
func (tree *Tree[T]) PostOrder() *Traversal[T] {
	nodes := make([]*Node[T], 0, tree.count)
	if nil == tree.root {
		return &Traversal[T]{nodes: nodes}
	}

	// node, right, left reversed
	stack := []*Node[T]{tree.root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, p)
		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return &Traversal[T]{nodes: nodes}
}

// LevelOrder - breadth first, left to right within each depth
func (tree *Tree[T]) LevelOrder() *Traversal[T] {
	return &Traversal[T]{nodes: levelOrder(tree.root, tree.count)}
}

func levelOrder[T constraints.Ordered](root *Node[T], size int) []*Node[T] {
	nodes := make([]*Node[T], 0, size)
	if nil == root {
		return nodes
	}
	nodes = append(nodes, root)
	for i := 0; i < len(nodes); i += 1 {
		p := nodes[i]
		if nil != p.left {
			nodes = append(nodes, p.left)
		}
		if nil != p.right {
			nodes = append(nodes, p.right)
		}
	}
	return nodes
}
