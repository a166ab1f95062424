// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package graph

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/nonlinear/fault"
)

// an outgoing edge, linked from its source vertex
type edge struct {
	to     int // slot of the destination vertex
	weight int
	next   *edge
}

type vertex[T constraints.Ordered] struct {
	value T
	cost  int   // cost of arriving at this vertex
	edges *edge // outgoing edges, oldest first
	used  bool
}

// Digraph - weighted directed graph with a fixed number of slots
type Digraph[T constraints.Ordered] struct {
	slots       []vertex[T]
	count       int
	defaultCost int
}

// New - create an empty graph able to hold capacity vertices
func New[T constraints.Ordered](capacity int) (*Digraph[T], error) {
	if capacity <= 0 {
		return nil, fault.ErrInvalidCapacity
	}
	return &Digraph[T]{
		slots: make([]vertex[T], capacity),
	}, nil
}

// SetDefaultCost - cost given to vertices created by PushEdge,
// negative costs are rejected
func (g *Digraph[T]) SetDefaultCost(cost int) bool {
	if cost < 0 {
		return false
	}
	g.defaultCost = cost
	return true
}

// Capacity - maximum number of vertices
func (g *Digraph[T]) Capacity() int {
	return len(g.slots)
}

// Count - number of vertices
func (g *Digraph[T]) Count() int {
	return g.count
}

// IsEmpty - true if there are no vertices
func (g *Digraph[T]) IsEmpty() bool {
	return 0 == g.count
}

// IsFull - true if every slot holds a vertex
func (g *Digraph[T]) IsFull() bool {
	return g.count == len(g.slots)
}

// Contains - true if a vertex holds value
func (g *Digraph[T]) Contains(value T) bool {
	return -1 != g.indexOf(value)
}

// Cost - the arrival cost of a vertex
func (g *Digraph[T]) Cost(value T) (int, error) {
	i := g.indexOf(value)
	if -1 == i {
		return 0, fault.ErrNotFound
	}
	return g.slots[i].cost, nil
}

// Values - vertex values in slot order
func (g *Digraph[T]) Values() []T {
	values := make([]T, 0, g.count)
	for i := range g.slots {
		if g.slots[i].used {
			values = append(values, g.slots[i].value)
		}
	}
	return values
}

// PushVertex - add an unconnected vertex
//
// fails if the value is already present, the graph is full or the
// cost is negative
func (g *Digraph[T]) PushVertex(value T, cost int) bool {
	if cost < 0 || g.IsFull() || g.Contains(value) {
		return false
	}
	g.place(value, cost)
	return true
}

// put a vertex in the first free slot, the caller checks capacity
func (g *Digraph[T]) place(value T, cost int) int {
	for i := range g.slots {
		if !g.slots[i].used {
			g.slots[i] = vertex[T]{
				value: value,
				cost:  cost,
				used:  true,
			}
			g.count += 1
			debugf("vertex: %v  slot: %d  cost: %d", value, i, cost)
			return i
		}
	}
	panic("graph: no free slot")
}

// PopVertex - remove a vertex with its outgoing edges and every edge
// pointing to it
func (g *Digraph[T]) PopVertex(value T) bool {
	n := g.indexOf(value)
	if -1 == n {
		return false
	}
	for i := range g.slots {
		if i != n && g.slots[i].used {
			g.unlink(i, n)
		}
	}
	g.slots[n] = vertex[T]{}
	g.count -= 1
	debugf("remove vertex: %v  slot: %d", value, n)
	return true
}

// PushEdge - add an edge, creating either vertex with the default
// cost if it is missing
//
// fails without change if the edge already exists, the weight is
// negative or there is no room for the missing vertices
func (g *Digraph[T]) PushEdge(from T, to T, weight int) bool {
	if weight < 0 {
		return false
	}
	i := g.indexOf(from)
	j := g.indexOf(to)

	missing := 0
	if -1 == i {
		missing += 1
	}
	if -1 == j && from != to {
		missing += 1
	}
	if missing > len(g.slots)-g.count {
		return false
	}
	if -1 != i && -1 != j && g.HasLink(from, to) {
		return false
	}

	if -1 == i {
		i = g.place(from, g.defaultCost)
	}
	if -1 == j {
		if from == to {
			j = i
		} else {
			j = g.place(to, g.defaultCost)
		}
	}

	e := &edge{to: j, weight: weight}
	p := &g.slots[i].edges
	for nil != *p {
		p = &(*p).next
	}
	*p = e
	debugf("edge: %v → %v  weight: %d", from, to, weight)
	return true
}

// PopEdge - remove the edge between two vertices
func (g *Digraph[T]) PopEdge(from T, to T) bool {
	i := g.indexOf(from)
	j := g.indexOf(to)
	if -1 == i || -1 == j {
		return false
	}
	return g.unlink(i, j)
}

// remove the edge from slot i to slot j
func (g *Digraph[T]) unlink(i int, j int) bool {
	for p := &g.slots[i].edges; nil != *p; p = &(*p).next {
		if j == (*p).to {
			*p = (*p).next
			return true
		}
	}
	return false
}

// HasLink - true if there is an edge from one vertex to another
func (g *Digraph[T]) HasLink(from T, to T) bool {
	i := g.indexOf(from)
	j := g.indexOf(to)
	if -1 == i || -1 == j {
		return false
	}
	for e := g.slots[i].edges; nil != e; e = e.next {
		if j == e.to {
			return true
		}
	}
	return false
}

// Weight - weight of the edge between two vertices
func (g *Digraph[T]) Weight(from T, to T) (int, error) {
	i := g.indexOf(from)
	j := g.indexOf(to)
	if -1 != i && -1 != j {
		for e := g.slots[i].edges; nil != e; e = e.next {
			if j == e.to {
				return e.weight, nil
			}
		}
	}
	return 0, fault.ErrNotFound
}

// Neighbours - destinations of the outgoing edges of a vertex in the
// order the edges were added, nil if the vertex is absent
func (g *Digraph[T]) Neighbours(value T) []T {
	i := g.indexOf(value)
	if -1 == i {
		return nil
	}
	values := []T{}
	for e := g.slots[i].edges; nil != e; e = e.next {
		values = append(values, g.slots[e.to].value)
	}
	return values
}

// OutDegree - number of outgoing edges, -1 if the vertex is absent
func (g *Digraph[T]) OutDegree(value T) int {
	i := g.indexOf(value)
	if -1 == i {
		return -1
	}
	n := 0
	for e := g.slots[i].edges; nil != e; e = e.next {
		n += 1
	}
	return n
}

// InDegree - number of edges arriving at a vertex, -1 if the vertex
// is absent
func (g *Digraph[T]) InDegree(value T) int {
	j := g.indexOf(value)
	if -1 == j {
		return -1
	}
	n := 0
	for i := range g.slots {
		for e := g.slots[i].edges; nil != e; e = e.next {
			if j == e.to {
				n += 1
			}
		}
	}
	return n
}

// Clone - deep copy of vertices and edges, slots are preserved
func (g *Digraph[T]) Clone() *Digraph[T] {
	c := &Digraph[T]{
		slots:       make([]vertex[T], len(g.slots)),
		count:       g.count,
		defaultCost: g.defaultCost,
	}
	for i := range g.slots {
		v := g.slots[i]
		c.slots[i] = vertex[T]{
			value: v.value,
			cost:  v.cost,
			used:  v.used,
		}
		p := &c.slots[i].edges
		for e := v.edges; nil != e; e = e.next {
			*p = &edge{to: e.to, weight: e.weight}
			p = &(*p).next
		}
	}
	return c
}

// Move - transfer all vertices to a new graph, the source is left
// empty with the same capacity
func (g *Digraph[T]) Move() *Digraph[T] {
	m := &Digraph[T]{
		slots:       g.slots,
		count:       g.count,
		defaultCost: g.defaultCost,
	}
	g.slots = make([]vertex[T], len(m.slots))
	g.count = 0
	return m
}

// slot holding value, -1 if absent
func (g *Digraph[T]) indexOf(value T) int {
	for i := range g.slots {
		if g.slots[i].used && value == g.slots[i].value {
			return i
		}
	}
	return -1
}

// lowest occupied slot, -1 if empty
func (g *Digraph[T]) first() int {
	for i := range g.slots {
		if g.slots[i].used {
			return i
		}
	}
	return -1
}
