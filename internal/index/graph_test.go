// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package index

import (
	"reflect"
	"testing"
)

func TestGraph_AddVertex(t *testing.T) {
	g := NewGraph[string]()

	if !g.AddVertex("alice") {
		t.Error("first AddVertex must succeed")
	}
	if g.AddVertex("alice") {
		t.Error("duplicate AddVertex must report existing")
	}
	if g.Order() != 1 {
		t.Errorf("Order() = %d, want 1", g.Order())
	}
}

func TestGraph_AddEdgeRequiresBothVertices(t *testing.T) {
	g := NewGraph[string]()
	g.AddVertex("alice")

	if g.AddEdge("alice", "pizza") {
		t.Error("AddEdge with a missing vertex must fail")
	}
	if g.AddEdge("pizza", "alice") {
		t.Error("AddEdge with a missing vertex must fail")
	}

	g.AddVertex("pizza")
	if !g.AddEdge("alice", "pizza") {
		t.Error("AddEdge with both vertices must succeed")
	}

	if got := g.Neighbors("alice"); !reflect.DeepEqual(got, []string{"pizza"}) {
		t.Errorf("Neighbors(alice) = %v, want [pizza]", got)
	}
	if got := g.Neighbors("pizza"); !reflect.DeepEqual(got, []string{"alice"}) {
		t.Errorf("Neighbors(pizza) = %v, want [alice]", got)
	}
}

func TestGraph_DuplicateEdgesKept(t *testing.T) {
	g := NewGraph[string]()
	g.AddVertex("alice")
	g.AddVertex("pizza")

	// One edge per order placed; reordering the same food adds a
	// second edge rather than deduplicating.
	g.AddEdge("alice", "pizza")
	g.AddEdge("alice", "pizza")

	if got := g.Neighbors("alice"); len(got) != 2 {
		t.Errorf("Neighbors(alice) has %d entries, want 2", len(got))
	}
}

func TestGraph_NeighborsOfUnknownVertex(t *testing.T) {
	g := NewGraph[string]()
	if got := g.Neighbors("ghost"); got != nil {
		t.Errorf("Neighbors of unknown vertex = %v, want nil", got)
	}
	if g.HasVertex("ghost") {
		t.Error("HasVertex of unknown vertex must be false")
	}
}
