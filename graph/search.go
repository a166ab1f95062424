// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package graph

// FindBFS - breadth first search from the first vertex, true if a
// vertex holding value can be reached
func (g *Digraph[T]) FindBFS(value T) bool {
	start := g.first()
	if -1 == start {
		return false
	}
	visited := make([]bool, len(g.slots))
	visited[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		if value == g.slots[i].value {
			return true
		}
		for e := g.slots[i].edges; nil != e; e = e.next {
			if !visited[e.to] {
				visited[e.to] = true
				queue = append(queue, e.to)
			}
		}
	}
	return false
}

// FindDFS - depth first search from the first vertex, true if a
// vertex holding value can be reached
func (g *Digraph[T]) FindDFS(value T) bool {
	start := g.first()
	if -1 == start {
		return false
	}
	visited := make([]bool, len(g.slots))
	stack := []int{start}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[i] {
			continue
		}
		visited[i] = true
		if value == g.slots[i].value {
			return true
		}
		for e := g.slots[i].edges; nil != e; e = e.next {
			if !visited[e.to] {
				stack = append(stack, e.to)
			}
		}
	}
	return false
}

// Reachable - values reachable from a vertex, including itself, in
// breadth first order; nil if the vertex is absent
func (g *Digraph[T]) Reachable(from T) []T {
	start := g.indexOf(from)
	if -1 == start {
		return nil
	}
	values := []T{}
	for _, i := range g.breadthFirst(start) {
		values = append(values, g.slots[i].value)
	}
	return values
}

// CountDisconnected - number of vertices that cannot be reached from
// the first vertex
func (g *Digraph[T]) CountDisconnected() int {
	start := g.first()
	if -1 == start {
		return 0
	}
	return g.count - len(g.breadthFirst(start))
}

// slots reachable from start in visiting order
func (g *Digraph[T]) breadthFirst(start int) []int {
	visited := make([]bool, len(g.slots))
	visited[start] = true
	order := []int{start}
	for n := 0; n < len(order); n += 1 {
		for e := g.slots[order[n]].edges; nil != e; e = e.next {
			if !visited[e.to] {
				visited[e.to] = true
				order = append(order, e.to)
			}
		}
	}
	return order
}
