// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"golang.org/x/exp/constraints"
)

// IsComplete - true if, numbering nodes in level order as an array
// with children at 2i+1 and 2i+2, no index reaches Count
func (tree *Tree[T]) IsComplete() bool {
	if nil == tree.root {
		return true
	}
	type slot struct {
		node  *Node[T]
		index int
	}
	queue := []slot{{node: tree.root, index: 0}}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if s.index >= tree.count {
			return false
		}
		if nil != s.node.left {
			queue = append(queue, slot{node: s.node.left, index: 2*s.index + 1})
		}
		if nil != s.node.right {
			queue = append(queue, slot{node: s.node.right, index: 2*s.index + 2})
		}
	}
	return true
}

// IsPerfect - true if every interior node has two children and all
// leaves are at the same depth
func (tree *Tree[T]) IsPerfect() bool {
	if nil == tree.root {
		return true
	}
	level := []*Node[T]{tree.root}
	for width := 1; len(level) > 0; width *= 2 {
		if len(level) != width {
			return false
		}
		next := make([]*Node[T], 0, 2*width)
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
	return true
}

// IsBalanced - true if at every node the heights of the two
// sub-trees differ by at most one
func (tree *Tree[T]) IsBalanced() bool {
	for _, p := range levelOrder(tree.root, tree.count) {
		if unbalanced(p) {
			return false
		}
	}
	return true
}

// IsFull - true if every node has either no children or two
func (tree *Tree[T]) IsFull() bool {
	for _, p := range levelOrder(tree.root, tree.count) {
		if (nil == p.left) != (nil == p.right) {
			return false
		}
	}
	return true
}

// IsSymmetric - true if the tree is its own mirror image
func (tree *Tree[T]) IsSymmetric() bool {
	if nil == tree.root {
		return true
	}
	return IsMirror(tree.root.left, tree.root.right)
}

// IsMirror - true if the sub-trees a and b are value for value mirror
// images of each other
func IsMirror[T constraints.Ordered](a *Node[T], b *Node[T]) bool {
	type pair struct {
		a *Node[T]
		b *Node[T]
	}
	stack := []pair{{a: a, b: b}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if nil == top.a && nil == top.b {
			continue
		}
		if nil == top.a || nil == top.b || top.a.value != top.b.value {
			return false
		}
		stack = append(stack,
			pair{a: top.a.left, b: top.b.right},
			pair{a: top.a.right, b: top.b.left},
		)
	}
	return true
}

// Equal - structural equality: same size and, node by node in level
// order, the same value and the same children present
//
// two trees holding the same values in different shapes are not equal
func (tree *Tree[T]) Equal(other *Tree[T]) bool {
	if nil == other || tree.count != other.count {
		return false
	}
	a := levelOrder(tree.root, tree.count)
	b := levelOrder(other.root, other.count)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		p, q := a[i], b[i]
		if p.value != q.value {
			return false
		}
		if (nil == p.left) != (nil == q.left) || (nil == p.right) != (nil == q.right) {
			return false
		}
	}
	return true
}
