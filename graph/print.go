// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// String - adjacency listing, one branch per vertex in slot order
func (g *Digraph[T]) String() string {
	out := treeprint.NewWithRoot(fmt.Sprintf("digraph %d/%d", g.count, len(g.slots)))
	for i := range g.slots {
		v := &g.slots[i]
		if !v.used {
			continue
		}
		b := out.AddMetaBranch(v.cost, v.value)
		for e := v.edges; nil != e; e = e.next {
			b.AddMetaNode(e.weight, g.slots[e.to].value)
		}
	}
	return out.String()
}
