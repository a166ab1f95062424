// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"golang.org/x/exp/constraints"
)

// binary search tree placement: everything in a left sub-tree is
// less than the node, everything in a right sub-tree is greater
type orderedPlacement[T constraints.Ordered] struct{}

func (orderedPlacement[T]) Name() string {
	return "ordered"
}

func (orderedPlacement[T]) push(tree *Tree[T], value T) ([]*Node[T], *Node[T], bool) {
	path := []*Node[T]{}
	var prev *Node[T]
	p := tree.root
	for nil != p {
		switch {
		case value < p.value:
			prev, p = p, p.left
		case value > p.value:
			prev, p = p, p.right
		default: // duplicate, nothing changed yet
			return nil, nil, false
		}
		path = append(path, prev)
	}

	n := tree.newNode(value)
	switch {
	case nil == prev:
		tree.root = n
	case value < prev.value:
		prev.left = n
	default:
		prev.right = n
	}
	return path, n, true
}

// splice out a node with at most one child; a node with two children
// takes the value of its in-order predecessor and the predecessor's
// node is spliced out instead
func (orderedPlacement[T]) pop(tree *Tree[T], value T) ([]*Node[T], *Node[T], bool) {
	path := []*Node[T]{}
	p := tree.root
	for nil != p && value != p.value {
		path = append(path, p)
		if value < p.value {
			p = p.left
		} else {
			p = p.right
		}
	}
	if nil == p { // not found, nothing changed
		return nil, nil, false
	}

	var relocated *Node[T]
	if nil != p.left && nil != p.right {
		target := p
		path = append(path, target)
		p = target.left
		for nil != p.right {
			path = append(path, p)
			p = p.right
		}
		target.value = p.value
		relocated = target
	}

	// p now has at most one child
	child := p.left
	if nil == child {
		child = p.right
	}
	if 0 == len(path) {
		tree.root = child
	} else {
		parent := path[len(path)-1]
		if parent.left == p {
			parent.left = child
		} else {
			parent.right = child
		}
	}
	tree.freeNode(p)
	return path, relocated, true
}

func (orderedPlacement[T]) find(tree *Tree[T], value T) *Node[T] {
	p := tree.root
	for nil != p {
		switch {
		case value < p.value:
			p = p.left
		case value > p.value:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

func (orderedPlacement[T]) parentOf(tree *Tree[T], value T) *Node[T] {
	var prev *Node[T]
	p := tree.root
	for nil != p {
		switch {
		case value < p.value:
			prev, p = p, p.left
		case value > p.value:
			prev, p = p, p.right
		default:
			return prev
		}
	}
	return nil
}

// directed descent using the target's value, the node found must be
// the target itself
func (orderedPlacement[T]) pathTo(tree *Tree[T], target *Node[T]) []*Node[T] {
	if nil == target {
		return nil
	}
	path := []*Node[T]{}
	p := tree.root
	for nil != p && p != target {
		path = append(path, p)
		if target.value < p.value {
			p = p.left
		} else {
			p = p.right
		}
	}
	if nil == p {
		return nil
	}
	return path
}

func (orderedPlacement[T]) maxKey(p *Node[T]) *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

func (orderedPlacement[T]) minKey(p *Node[T]) *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}
