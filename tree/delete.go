// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Pop - remove a value from the tree
//
// returns false, leaving the tree untouched, if the value is absent
func (tree *Tree[T]) Pop(value T) bool {
	path, relocated, removed := tree.placement.pop(tree, value)
	if !removed {
		return false
	}
	tree.count -= 1
	refreshPath(path)
	tree.rebalancer.AfterPop(tree, path, relocated)
	return true
}
