// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/nonlinear/fault"
)

// Rotations re-link a small sub-tree without changing its in-order
// sequence.  Each takes the parent of the node being rotated, nil to
// rotate at the root, and which side of the parent the node hangs
// from.  They return the new root of the rotated sub-tree.
//
// Only the rotated nodes have their heights refreshed, ancestors are
// the caller's responsibility.

// RotateLeft - promote the right child of the unbalanced node
func (tree *Tree[T]) RotateLeft(parent *Node[T], isLeftChild bool) *Node[T] {
	p := tree.child(parent, isLeftChild)
	p1 := p.right
	if nil == p1 {
		fault.Panicf("rotate left at %v: %s", p.value, fault.ErrMissingChild)
	}
	p.right = p1.left
	p1.left = p
	p.refresh()
	p1.refresh()
	tree.replace(parent, isLeftChild, p1)
	debugf("rotate left: %v → %v", p.value, p1.value)
	return p1
}

// RotateRight - promote the left child of the unbalanced node
func (tree *Tree[T]) RotateRight(parent *Node[T], isLeftChild bool) *Node[T] {
	p := tree.child(parent, isLeftChild)
	p1 := p.left
	if nil == p1 {
		fault.Panicf("rotate right at %v: %s", p.value, fault.ErrMissingChild)
	}
	p.left = p1.right
	p1.right = p
	p.refresh()
	p1.refresh()
	tree.replace(parent, isLeftChild, p1)
	debugf("rotate right: %v → %v", p.value, p1.value)
	return p1
}

// RotateLeftRight - double rotation for a left-right zigzag: rotate
// the left child left, then the node right
func (tree *Tree[T]) RotateLeftRight(parent *Node[T], isLeftChild bool) *Node[T] {
	p := tree.child(parent, isLeftChild)
	tree.RotateLeft(p, true)
	return tree.RotateRight(parent, isLeftChild)
}

// RotateRightLeft - double rotation for a right-left zigzag: rotate
// the right child right, then the node left
func (tree *Tree[T]) RotateRightLeft(parent *Node[T], isLeftChild bool) *Node[T] {
	p := tree.child(parent, isLeftChild)
	tree.RotateRight(p, false)
	return tree.RotateLeft(parent, isLeftChild)
}

// the node being rotated
func (tree *Tree[T]) child(parent *Node[T], isLeftChild bool) *Node[T] {
	var p *Node[T]
	switch {
	case nil == parent:
		p = tree.root
	case isLeftChild:
		p = parent.left
	default:
		p = parent.right
	}
	if nil == p {
		fault.Panicf("rotate: %s", fault.ErrMissingChild)
	}
	return p
}

// repoint the parent's child slot, or the root, at a new sub-tree
func (tree *Tree[T]) replace(parent *Node[T], isLeftChild bool, p *Node[T]) {
	switch {
	case nil == parent:
		tree.root = p
	case isLeftChild:
		parent.left = p
	default:
		parent.right = p
	}
}
