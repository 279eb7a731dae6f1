// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package index

// offerNode is a node in the offer BST.
type offerNode struct {
	name  string
	left  *offerNode
	right *offerNode
}

// OfferTree is a binary search tree over food names, holding the foods
// that currently carry a promotion. In-order traversal yields the
// promoted foods in ascending lexicographic (case-sensitive) name
// order for display.
//
// Membership is fixed at the time a promotion is added: the tree is
// ordered by name, not promotion text, so a food keeps its slot even
// if its promotion later changes.
type OfferTree struct {
	root *offerNode
	size int
}

// NewOfferTree creates an empty offer tree.
func NewOfferTree() *OfferTree {
	return &OfferTree{}
}

// Insert adds a food name. Inserting a name already present is a
// no-op and returns false.
func (t *OfferTree) Insert(name string) bool {
	if t.root == nil {
		t.root = &offerNode{name: name}
		t.size++
		return true
	}

	cur := t.root
	for {
		switch {
		case name < cur.name:
			if cur.left == nil {
				cur.left = &offerNode{name: name}
				t.size++
				return true
			}
			cur = cur.left
		case name > cur.name:
			if cur.right == nil {
				cur.right = &offerNode{name: name}
				t.size++
				return true
			}
			cur = cur.right
		default:
			return false
		}
	}
}

// InOrder returns all promoted food names ascending by name.
func (t *OfferTree) InOrder() []string {
	var names []string

	var walk func(n *offerNode)
	walk = func(n *offerNode) {
		if n == nil {
			return
		}
		walk(n.left)
		names = append(names, n.name)
		walk(n.right)
	}
	walk(t.root)

	return names
}

// Len returns the number of promoted foods.
func (t *OfferTree) Len() int {
	return t.size
}
