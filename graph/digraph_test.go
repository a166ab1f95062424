// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/nonlinear/fault"
	"github.com/bitmark-inc/nonlinear/graph"
)

func newGraph(t *testing.T, capacity int) *graph.Digraph[string] {
	g, err := graph.New[string](capacity)
	require.NoError(t, err, "new graph")
	return g
}

func TestNewInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		g, err := graph.New[int](capacity)
		assert.Nil(t, g, "capacity: %d", capacity)
		assert.Equal(t, fault.ErrInvalidCapacity, err, "capacity: %d", capacity)
		assert.True(t, fault.IsErrInvalid(err), "capacity: %d", capacity)
	}
}

func TestPushVertex(t *testing.T) {
	g := newGraph(t, 3)
	assert.True(t, g.IsEmpty(), "not empty")
	assert.Equal(t, 3, g.Capacity(), "wrong capacity")

	assert.True(t, g.PushVertex("a", 1), "push a")
	assert.True(t, g.PushVertex("b", 2), "push b")
	assert.False(t, g.PushVertex("a", 5), "duplicate accepted")
	assert.False(t, g.PushVertex("x", -1), "negative cost accepted")
	assert.True(t, g.PushVertex("c", 0), "push c")
	assert.True(t, g.IsFull(), "not full")
	assert.False(t, g.PushVertex("d", 0), "push into full graph")

	assert.Equal(t, 3, g.Count(), "wrong count")
	assert.Equal(t, []string{"a", "b", "c"}, g.Values(), "wrong values")

	cost, err := g.Cost("b")
	assert.NoError(t, err, "cost")
	assert.Equal(t, 2, cost, "wrong cost")
	_, err = g.Cost("d")
	assert.True(t, fault.IsErrNotFound(err), "cost of absent vertex")

	// freed slot is reused
	assert.True(t, g.PopVertex("a"), "pop a")
	assert.False(t, g.PopVertex("a"), "pop a twice")
	assert.True(t, g.PushVertex("d", 0), "push d")
	assert.Equal(t, []string{"d", "b", "c"}, g.Values(), "slot not reused")
}

func TestPushEdge(t *testing.T) {
	g := newGraph(t, 4)
	require.True(t, g.SetDefaultCost(3), "default cost")
	assert.False(t, g.SetDefaultCost(-1), "negative default cost")

	assert.True(t, g.PushEdge("a", "b", 1), "edge a → b")
	assert.Equal(t, 2, g.Count(), "vertices not created")
	cost, _ := g.Cost("b")
	assert.Equal(t, 3, cost, "default cost not applied")

	assert.True(t, g.HasLink("a", "b"), "no link a → b")
	assert.False(t, g.HasLink("b", "a"), "edge is not directed")
	assert.False(t, g.PushEdge("a", "b", 7), "duplicate edge accepted")
	w, err := g.Weight("a", "b")
	assert.NoError(t, err, "weight")
	assert.Equal(t, 1, w, "weight changed by duplicate")
	_, err = g.Weight("b", "a")
	assert.Equal(t, fault.ErrNotFound, err, "weight of absent edge")

	assert.True(t, g.PushEdge("b", "a", 2), "edge b → a")
	assert.False(t, g.PushEdge("a", "c", -1), "negative weight accepted")
	assert.False(t, g.Contains("c"), "vertex created by rejected edge")

	assert.True(t, g.PushEdge("c", "c", 0), "self loop")
	assert.True(t, g.HasLink("c", "c"), "no self loop")
	assert.Equal(t, 3, g.Count(), "wrong count")

	// one free slot cannot hold two new vertices
	assert.False(t, g.PushEdge("x", "y", 1), "overflow accepted")
	assert.Equal(t, 3, g.Count(), "partial edge insert")
	assert.True(t, g.PushEdge("x", "a", 1), "edge x → a")
	assert.True(t, g.IsFull(), "not full")
	assert.False(t, g.PushEdge("a", "z", 1), "push into full graph")
}

func TestDegrees(t *testing.T) {
	g := newGraph(t, 5)
	g.PushEdge("a", "b", 1)
	g.PushEdge("a", "c", 1)
	g.PushEdge("c", "b", 1)
	g.PushVertex("d", 0)

	assert.Equal(t, 2, g.OutDegree("a"), "out a")
	assert.Equal(t, 0, g.InDegree("a"), "in a")
	assert.Equal(t, 2, g.InDegree("b"), "in b")
	assert.Equal(t, 0, g.OutDegree("d"), "out d")
	assert.Equal(t, -1, g.OutDegree("z"), "out of absent vertex")
	assert.Equal(t, -1, g.InDegree("z"), "in of absent vertex")
	assert.Equal(t, []string{"b", "c"}, g.Neighbours("a"), "neighbours of a")
	assert.Empty(t, g.Neighbours("d"), "neighbours of d")
	assert.Nil(t, g.Neighbours("z"), "neighbours of absent vertex")

	assert.True(t, g.PopEdge("a", "b"), "pop a → b")
	assert.False(t, g.PopEdge("a", "b"), "pop a → b twice")
	assert.False(t, g.PopEdge("a", "z"), "pop edge to absent vertex")
	assert.Equal(t, 1, g.InDegree("b"), "in b after pop edge")

	// removing a vertex removes the edges into it
	assert.True(t, g.PopVertex("b"), "pop b")
	assert.Equal(t, 0, g.OutDegree("c"), "edge into removed vertex kept")
	assert.False(t, g.HasLink("c", "b"), "link into removed vertex")
	assert.Equal(t, 3, g.Count(), "wrong count")
}

func TestSearch(t *testing.T) {
	g := newGraph(t, 6)
	g.PushEdge("a", "b", 1)
	g.PushEdge("b", "c", 1)
	g.PushEdge("c", "a", 1)
	g.PushEdge("d", "e", 1)

	for _, v := range []string{"a", "b", "c"} {
		assert.True(t, g.FindBFS(v), "bfs: %s", v)
		assert.True(t, g.FindDFS(v), "dfs: %s", v)
	}
	for _, v := range []string{"d", "e", "z"} {
		assert.False(t, g.FindBFS(v), "bfs: %s", v)
		assert.False(t, g.FindDFS(v), "dfs: %s", v)
	}

	assert.Equal(t, 2, g.CountDisconnected(), "disconnected")
	assert.Equal(t, []string{"b", "c", "a"}, g.Reachable("b"), "reachable from b")
	assert.Equal(t, []string{"e"}, g.Reachable("e"), "reachable from e")
	assert.Nil(t, g.Reachable("z"), "reachable from absent vertex")

	empty := newGraph(t, 2)
	assert.False(t, empty.FindBFS("a"), "bfs in empty graph")
	assert.False(t, empty.FindDFS("a"), "dfs in empty graph")
	assert.Equal(t, 0, empty.CountDisconnected(), "disconnected in empty graph")
}

func TestCloneMove(t *testing.T) {
	g := newGraph(t, 4)
	g.PushEdge("a", "b", 1)
	g.PushEdge("b", "c", 2)

	c := g.Clone()
	assert.Equal(t, g.Values(), c.Values(), "clone values")
	assert.True(t, c.HasLink("b", "c"), "clone lost edge")

	c.PopEdge("b", "c")
	c.PushVertex("d", 0)
	assert.True(t, g.HasLink("b", "c"), "clone shares edges")
	assert.False(t, g.Contains("d"), "clone shares slots")

	m := g.Move()
	assert.True(t, g.IsEmpty(), "source not empty")
	assert.Equal(t, 4, g.Capacity(), "source capacity")
	assert.Equal(t, 3, m.Count(), "moved count")
	assert.True(t, m.HasLink("a", "b"), "moved edge")
	assert.False(t, g.Contains("a"), "source kept vertex")
}

func TestString(t *testing.T) {
	g := newGraph(t, 3)
	g.PushVertex("a", 4)
	g.PushEdge("a", "b", 9)

	s := g.String()
	assert.Contains(t, s, "digraph 2/3", "missing header")
	assert.Contains(t, s, "[4]  a", "missing vertex")
	assert.Contains(t, s, "[9]  b", "missing edge")
}
