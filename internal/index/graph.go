// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package index

// Graph is an undirected adjacency structure over comparable vertex
// handles. An edge is recorded per order placed, and duplicate orders
// add duplicate edges, so it is a multigraph in effect. There is no
// removal operation; entities are never deleted.
type Graph[V comparable] struct {
	adjacency map[V][]V
}

// NewGraph creates an empty graph.
func NewGraph[V comparable]() *Graph[V] {
	return &Graph[V]{adjacency: make(map[V][]V)}
}

// AddVertex registers a vertex. Returns false if it already exists.
func (g *Graph[V]) AddVertex(v V) bool {
	if _, ok := g.adjacency[v]; ok {
		return false
	}
	g.adjacency[v] = nil
	return true
}

// AddEdge links two vertices, appending each to the other's adjacency
// list. Returns false unless both vertices exist. Duplicate edges are
// permitted.
func (g *Graph[V]) AddEdge(a, b V) bool {
	if _, ok := g.adjacency[a]; !ok {
		return false
	}
	if _, ok := g.adjacency[b]; !ok {
		return false
	}
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
	return true
}

// HasVertex reports whether the vertex is registered.
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.adjacency[v]
	return ok
}

// Neighbors returns the adjacency list of a vertex in edge insertion
// order, including duplicates. The returned slice is shared with the
// graph and must not be mutated by callers.
func (g *Graph[V]) Neighbors(v V) []V {
	return g.adjacency[v]
}

// Order returns the number of vertices.
func (g *Graph[V]) Order() int {
	return len(g.adjacency)
}
