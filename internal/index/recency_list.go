// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package index

// recencyNode is a node in the recency list.
type recencyNode struct {
	name string
	prev *recencyNode
	next *recencyNode
}

// DefaultRecencyCapacity is the bound on tracked arrivals when no
// explicit capacity is configured.
const DefaultRecencyCapacity = 5

// RecencyList is a bounded doubly linked list tracking the most
// recently added foods in insertion order. Appending at capacity
// evicts the structural head (the oldest entry) first.
//
// Append and eviction are O(1); Recent is O(k) in the capacity.
type RecencyList struct {
	head     *recencyNode
	tail     *recencyNode
	size     int
	capacity int
}

// NewRecencyList creates a recency list with the given capacity.
// Non-positive capacities fall back to DefaultRecencyCapacity.
func NewRecencyList(capacity int) *RecencyList {
	if capacity <= 0 {
		capacity = DefaultRecencyCapacity
	}
	return &RecencyList{capacity: capacity}
}

// Append links a food name as the new tail, evicting the oldest entry
// when the list is at capacity.
func (l *RecencyList) Append(name string) {
	if l.size >= l.capacity {
		l.head = l.head.next
		if l.head != nil {
			l.head.prev = nil
		} else {
			l.tail = nil
		}
		l.size--
	}

	node := &recencyNode{name: name}
	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		l.tail.next = node
		node.prev = l.tail
		l.tail = node
	}
	l.size++
}

// Recent returns at most capacity food names, newest first, by walking
// from the tail toward the head.
func (l *RecencyList) Recent() []string {
	names := make([]string, 0, l.size)
	for cur := l.tail; cur != nil && len(names) < l.capacity; cur = cur.prev {
		names = append(names, cur.name)
	}
	return names
}

// Len returns the number of tracked arrivals.
func (l *RecencyList) Len() int {
	return l.size
}

// Capacity returns the configured bound.
func (l *RecencyList) Capacity() int {
	return l.capacity
}
