// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"golang.org/x/exp/constraints"
)

// BalanceOf - height(left) - height(right), zero for nil
func BalanceOf[T constraints.Ordered](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}

// AVL repair along the edit path
type avlRebalance[T constraints.Ordered] struct{}

// after an insert only the lowest unbalanced ancestor needs a
// rotation; it restores that sub-tree's previous height so the
// ancestors above only need their heights refreshed
func (avlRebalance[T]) AfterPush(tree *Tree[T], path []*Node[T], node *Node[T]) {
	for i := len(path) - 1; i >= 0; i -= 1 {
		p := path[i]
		p.refresh()
		if !unbalanced(p) {
			continue
		}
		parent, isLeft := parentAt(path, i)
		fix(tree, parent, isLeft, p)
		refreshPath(path[:i])
		return
	}
}

// a delete can unbalance several ancestors so the whole path up to
// the root is checked
func (avlRebalance[T]) AfterPop(tree *Tree[T], path []*Node[T], node *Node[T]) {
	for i := len(path) - 1; i >= 0; i -= 1 {
		p := path[i]
		p.refresh()
		if !unbalanced(p) {
			continue
		}
		parent, isLeft := parentAt(path, i)
		fix(tree, parent, isLeft, p)
	}
}

func unbalanced[T constraints.Ordered](p *Node[T]) bool {
	b := BalanceOf(p)
	return b > 1 || b < -1
}

// parent of path[i] and the side path[i] hangs from
func parentAt[T constraints.Ordered](path []*Node[T], i int) (*Node[T], bool) {
	if 0 == i {
		return nil, false
	}
	parent := path[i-1]
	return parent, parent.left == path[i]
}

// standard four case rotation at an unbalanced node
func fix[T constraints.Ordered](tree *Tree[T], parent *Node[T], isLeft bool, p *Node[T]) *Node[T] {
	b := BalanceOf(p)
	debugf("rebalance at: %v  balance: %+d", p.value, b)
	if b > 1 {
		if BalanceOf(p.left) >= 0 {
			return tree.RotateRight(parent, isLeft) // LL
		}
		return tree.RotateLeftRight(parent, isLeft) // LR
	}
	if BalanceOf(p.right) <= 0 {
		return tree.RotateLeft(parent, isLeft) // RR
	}
	return tree.RotateRightLeft(parent, isLeft) // RL
}
