// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
)

// consistency checkers, used by tests; each reports the first failure

// CheckCount - the stored count matches the reachable nodes
func (tree *Tree[T]) CheckCount() bool {
	n := len(levelOrder(tree.root, tree.count))
	if n != tree.count {
		fmt.Printf("count mismatch: actual: %d  expected: %d\n", tree.count, n)
		return false
	}
	return true
}

// CheckHeights - every cached height matches its children
func (tree *Tree[T]) CheckHeights() bool {
	nodes := levelOrder(tree.root, tree.count)
	for i := len(nodes) - 1; i >= 0; i -= 1 {
		p := nodes[i]
		h := 1 + p.left.Height()
		if rh := 1 + p.right.Height(); rh > h {
			h = rh
		}
		if h != p.height {
			fmt.Printf("height mismatch at: %v  actual: %d  expected: %d\n", p.value, p.height, h)
			return false
		}
	}
	return true
}

// CheckOrder - in-order values are strictly increasing
func (tree *Tree[T]) CheckOrder() bool {
	nodes := tree.InOrder().nodes
	for i := 1; i < len(nodes); i += 1 {
		if nodes[i-1].value >= nodes[i].value {
			fmt.Printf("order fail: %v before %v\n", nodes[i-1].value, nodes[i].value)
			return false
		}
	}
	return true
}

// CheckBalance - AVL condition at every node
func (tree *Tree[T]) CheckBalance() bool {
	for _, p := range levelOrder(tree.root, tree.count) {
		if unbalanced(p) {
			fmt.Printf("balance fail at: %v  balance: %+d\n", p.value, BalanceOf(p))
			return false
		}
	}
	return true
}

// CheckHeap - no child is greater than its parent
func (tree *Tree[T]) CheckHeap() bool {
	for _, p := range levelOrder(tree.root, tree.count) {
		if nil != p.left && p.left.value > p.value {
			fmt.Printf("heap fail at: %v  left: %v\n", p.value, p.left.value)
			return false
		}
		if nil != p.right && p.right.value > p.value {
			fmt.Printf("heap fail at: %v  right: %v\n", p.value, p.right.value)
			return false
		}
	}
	return true
}
