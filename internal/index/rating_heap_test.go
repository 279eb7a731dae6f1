// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package index

import "testing"

func TestRatingHeap_PopDescending(t *testing.T) {
	h := NewRatingHeap()

	ratings := map[string]int{
		"pizza": 3, "tacos": 5, "salad": 1, "curry": 4, "wrap": 2,
	}
	for name, r := range ratings {
		h.Push(name, r)
	}

	if h.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", h.Len())
	}

	prev := int(^uint(0) >> 1) // max int
	for i := 0; i < 5; i++ {
		dish, ok := h.Pop()
		if !ok {
			t.Fatalf("Pop() %d returned empty", i)
		}
		if dish.Rating > prev {
			t.Errorf("Pop() produced rating %d after %d, want non-increasing", dish.Rating, prev)
		}
		prev = dish.Rating
	}

	if _, ok := h.Pop(); ok {
		t.Error("Pop() on drained heap must report empty")
	}
}

func TestRatingHeap_SingleAndEmpty(t *testing.T) {
	h := NewRatingHeap()

	if _, ok := h.Pop(); ok {
		t.Error("Pop() on empty heap must report empty")
	}

	h.Push("only", 7)
	dish, ok := h.Pop()
	if !ok || dish.Name != "only" || dish.Rating != 7 {
		t.Errorf("Pop() = (%+v, %v), want only/7", dish, ok)
	}
	if h.Len() != 0 {
		t.Errorf("Len() after drain = %d, want 0", h.Len())
	}
}

func TestRatingHeap_DuplicateRatings(t *testing.T) {
	h := NewRatingHeap()
	h.Push("a", 3)
	h.Push("b", 3)
	h.Push("c", 3)

	seen := make(map[string]bool)
	for {
		dish, ok := h.Pop()
		if !ok {
			break
		}
		if dish.Rating != 3 {
			t.Errorf("unexpected rating %d", dish.Rating)
		}
		seen[dish.Name] = true
	}
	if len(seen) != 3 {
		t.Errorf("popped %d distinct dishes, want 3", len(seen))
	}
}
