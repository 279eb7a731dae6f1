// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package index

// RatedDish is one heap entry: a food name with the rating it carried
// when the heap was built.
type RatedDish struct {
	Name   string
	Rating int
}

// RatingHeap is an array-backed binary max-heap over dish ratings.
//
// The heap is transient: it is rebuilt from a cuisine's food list for
// every top-rated query (O(n log n) per query) rather than maintained
// incrementally across rating changes. Tie order between equal ratings
// is unspecified.
type RatingHeap struct {
	dishes []RatedDish
}

// NewRatingHeap creates an empty rating heap.
func NewRatingHeap() *RatingHeap {
	return &RatingHeap{}
}

// Push adds a dish and restores the heap property, O(log n).
func (h *RatingHeap) Push(name string, rating int) {
	h.dishes = append(h.dishes, RatedDish{Name: name, Rating: rating})
	h.siftUp(len(h.dishes) - 1)
}

// Pop removes and returns the highest-rated dish, O(log n).
// The second return is false when the heap is empty.
func (h *RatingHeap) Pop() (RatedDish, bool) {
	if len(h.dishes) == 0 {
		return RatedDish{}, false
	}

	root := h.dishes[0]
	last := len(h.dishes) - 1
	h.dishes[0] = h.dishes[last]
	h.dishes = h.dishes[:last]
	if len(h.dishes) > 0 {
		h.siftDown(0)
	}

	return root, true
}

// Len returns the number of dishes in the heap.
func (h *RatingHeap) Len() int {
	return len(h.dishes)
}

func (h *RatingHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.dishes[i].Rating <= h.dishes[parent].Rating {
			break
		}
		h.dishes[i], h.dishes[parent] = h.dishes[parent], h.dishes[i]
		i = parent
	}
}

func (h *RatingHeap) siftDown(i int) {
	n := len(h.dishes)
	for {
		child := 2*i + 1
		if child >= n {
			return
		}
		if right := child + 1; right < n && h.dishes[right].Rating > h.dishes[child].Rating {
			child = right
		}
		if h.dishes[i].Rating >= h.dishes[child].Rating {
			return
		}
		h.dishes[i], h.dishes[child] = h.dishes[child], h.dishes[i]
		i = child
	}
}
