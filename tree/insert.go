// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"golang.org/x/exp/constraints"
)

// Push - insert a value into the tree
//
// returns false, leaving the tree untouched, if the placement rejects
// the value (a duplicate in an ordered tree)
func (tree *Tree[T]) Push(value T) bool {
	path, node, added := tree.placement.push(tree, value)
	if !added {
		debugf("push: %v rejected by %s placement", value, tree.placement.Name())
		return false
	}
	tree.count += 1
	refreshPath(path)
	tree.rebalancer.AfterPush(tree, path, node)
	return true
}

// recompute heights bottom-up along a root first path
func refreshPath[T constraints.Ordered](path []*Node[T]) {
	for i := len(path) - 1; i >= 0; i -= 1 {
		path[i].refresh()
	}
}
