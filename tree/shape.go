// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"golang.org/x/exp/constraints"
)

// complete tree placement: values fill the first free slot in level
// order and no ordering between values is assumed
type shapePlacement[T constraints.Ordered] struct{}

func (shapePlacement[T]) Name() string {
	return "shape"
}

func (s shapePlacement[T]) push(tree *Tree[T], value T) ([]*Node[T], *Node[T], bool) {
	if nil == tree.root {
		tree.root = tree.newNode(value)
		return []*Node[T]{}, tree.root, true
	}

	queue := []*Node[T]{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if nil == p.left {
			p.left = tree.newNode(value)
			return append(s.pathTo(tree, p), p), p.left, true
		}
		queue = append(queue, p.left)

		if nil == p.right {
			p.right = tree.newNode(value)
			return append(s.pathTo(tree, p), p), p.right, true
		}
		queue = append(queue, p.right)
	}
	panic("unreachable: no free slot in a finite tree")
}

func (s shapePlacement[T]) pop(tree *Tree[T], value T) ([]*Node[T], *Node[T], bool) {
	target := s.find(tree, value)
	if nil == target {
		return nil, nil, false
	}
	path, relocated := s.removeNode(tree, target)
	return path, relocated, true
}

// copy the deepest, rightmost value onto target then unlink that
// last node
func (s shapePlacement[T]) removeNode(tree *Tree[T], target *Node[T]) ([]*Node[T], *Node[T]) {
	last := lastLevelOrder(tree.root)
	path := s.pathTo(tree, last)

	relocated := target
	if last == target {
		relocated = nil
	} else {
		target.value = last.value
	}

	if 0 == len(path) {
		tree.root = nil
	} else {
		parent := path[len(path)-1]
		if parent.left == last {
			parent.left = nil
		} else {
			parent.right = nil
		}
	}
	tree.freeNode(last)
	return path, relocated
}

// breadth first search for the first node holding value
func (shapePlacement[T]) find(tree *Tree[T], value T) *Node[T] {
	if nil == tree.root {
		return nil
	}
	queue := []*Node[T]{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p.value == value {
			return p
		}
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return nil
}

// breadth first search for the parent of the first node holding value
func (shapePlacement[T]) parentOf(tree *Tree[T], value T) *Node[T] {
	if nil == tree.root || tree.root.value == value {
		return nil
	}
	queue := []*Node[T]{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if nil != p.left {
			if p.left.value == value {
				return p
			}
			queue = append(queue, p.left)
		}
		if nil != p.right {
			if p.right.value == value {
				return p
			}
			queue = append(queue, p.right)
		}
	}
	return nil
}

// depth first search pushing ancestors and popping them on backtrack
func (shapePlacement[T]) pathTo(tree *Tree[T], target *Node[T]) []*Node[T] {
	if nil == target || nil == tree.root {
		return nil
	}

	type frame struct {
		node    *Node[T]
		visited int // children already descended into
	}

	stack := []frame{{node: tree.root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.node == target {
			path := make([]*Node[T], 0, len(stack)-1)
			for _, f := range stack[:len(stack)-1] {
				path = append(path, f.node)
			}
			return path
		}

		var next *Node[T]
		switch top.visited {
		case 0:
			next = top.node.left
		case 1:
			next = top.node.right
		default:
			stack = stack[:len(stack)-1] // backtrack
			continue
		}
		top.visited += 1
		if nil != next {
			stack = append(stack, frame{node: next})
		}
	}
	return nil
}

// full scan, no ordering assumption
func (shapePlacement[T]) maxKey(p *Node[T]) *Node[T] {
	return scan(p, func(a, b T) bool { return a > b })
}

func (shapePlacement[T]) minKey(p *Node[T]) *Node[T] {
	return scan(p, func(a, b T) bool { return a < b })
}

// level order scan returning the first node that no other node beats
func scan[T constraints.Ordered](p *Node[T], better func(a, b T) bool) *Node[T] {
	if nil == p {
		return nil
	}
	best := p
	queue := []*Node[T]{p}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		if better(q.value, best.value) {
			best = q
		}
		if nil != q.left {
			queue = append(queue, q.left)
		}
		if nil != q.right {
			queue = append(queue, q.right)
		}
	}
	return best
}

// the deepest, rightmost node: descend preferring the right child
// whenever its sub-tree is at least as high as the left one
func lastLevelOrder[T constraints.Ordered](p *Node[T]) *Node[T] {
	var prev *Node[T]
	for nil != p {
		prev = p
		if p.right.Height() >= p.left.Height() {
			p = p.right
		} else {
			p = p.left
		}
	}
	return prev
}
