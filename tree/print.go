// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// Print - display an ASCII graphic representation of the tree
//
// returns the height of the tree
func (tree *Tree[T]) Print(printData bool) int {
	fmt.Print(tree.Render(printData))
	return tree.root.Height()
}

// String - compact rendering of the tree
func (tree *Tree[T]) String() string {
	return tree.Render(false)
}

// Render - the tree as indented branches, left child first, each
// child tagged with its side
//
// with printData the height and balance of every node are included
func (tree *Tree[T]) Render(printData bool) string {
	if nil == tree.root {
		return ""
	}

	type item struct {
		node   *Node[T]
		branch treeprint.Tree
	}

	out := treeprint.NewWithRoot(label(tree.root, printData))
	stack := []item{{node: tree.root, branch: out}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p := top.node
		var children []item
		if nil != p.left {
			b := top.branch.AddMetaBranch("L", label(p.left, printData))
			children = append(children, item{node: p.left, branch: b})
		}
		if nil != p.right {
			b := top.branch.AddMetaBranch("R", label(p.right, printData))
			children = append(children, item{node: p.right, branch: b})
		}
		stack = append(stack, children...)
	}
	return out.String()
}

func label[T constraints.Ordered](p *Node[T], printData bool) string {
	if printData {
		return fmt.Sprintf("%v h:%d %+d", p.value, p.height, BalanceOf(p))
	}
	return fmt.Sprintf("%v", p.value)
}
