// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/google/btree"

	"github.com/bitmark-inc/nonlinear/fault"
)

// degree of the b-tree holding the search frontier
const frontierDegree = 8

// a tentative distance in the frontier
type candidate struct {
	distance int
	slot     int
}

func candidateLess(a candidate, b candidate) bool {
	if a.distance != b.distance {
		return a.distance < b.distance
	}
	return a.slot < b.slot
}

// ShortestPath - least cost route between two vertices and its cost
//
// taking an edge costs its weight plus the cost of the vertex it
// arrives at, the cost of the starting vertex is not included
func (g *Digraph[T]) ShortestPath(from T, to T) ([]T, int, error) {
	start := g.indexOf(from)
	finish := g.indexOf(to)
	if -1 == start || -1 == finish {
		return nil, 0, fault.ErrNotFound
	}

	distance, previous := g.dijkstra(start)
	if distance[finish] < 0 {
		return nil, 0, fault.ErrUnreachable
	}

	route := []T{}
	for i := finish; -1 != i; i = previous[i] {
		route = append(route, g.slots[i].value)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	debugf("shortest path: %v → %v  cost: %d  steps: %d", from, to, distance[finish], len(route)-1)
	return route, distance[finish], nil
}

// Distances - least cost from a vertex to every vertex it can reach
func (g *Digraph[T]) Distances(from T) (map[T]int, error) {
	start := g.indexOf(from)
	if -1 == start {
		return nil, fault.ErrNotFound
	}
	distance, _ := g.dijkstra(start)
	result := make(map[T]int)
	for i, d := range distance {
		if d >= 0 {
			result[g.slots[i].value] = d
		}
	}
	return result, nil
}

// per slot distance, -1 if unreachable, and previous slot on the
// best route, -1 at the start
func (g *Digraph[T]) dijkstra(start int) ([]int, []int) {
	distance := make([]int, len(g.slots))
	previous := make([]int, len(g.slots))
	done := make([]bool, len(g.slots))
	for i := range distance {
		distance[i] = -1
		previous[i] = -1
	}

	frontier := btree.NewG[candidate](frontierDegree, candidateLess)
	distance[start] = 0
	frontier.ReplaceOrInsert(candidate{distance: 0, slot: start})

	for frontier.Len() > 0 {
		c, _ := frontier.DeleteMin()
		i := c.slot
		done[i] = true
		for e := g.slots[i].edges; nil != e; e = e.next {
			j := e.to
			if done[j] {
				continue
			}
			d := c.distance + e.weight + g.slots[j].cost
			if -1 != distance[j] && d >= distance[j] {
				continue
			}
			if -1 != distance[j] {
				frontier.Delete(candidate{distance: distance[j], slot: j})
			}
			distance[j] = d
			previous[j] = i
			frontier.ReplaceOrInsert(candidate{distance: d, slot: j})
		}
	}
	return distance, previous
}
