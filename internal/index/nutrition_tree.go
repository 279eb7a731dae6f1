// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package index

// nutritionNode is a node in the nutrition BST. Nodes hold the food
// name and a copy of its score; the score of a food never changes, so
// no rebalancing or update path is needed.
type nutritionNode struct {
	name  string
	score float64
	left  *nutritionNode
	right *nutritionNode
}

// NutritionTree is a binary search tree keyed by nutrition score.
// It backs nutrition-similarity recommendations with range and
// nearest-or-exact lookups.
//
// Ordering invariant: strictly lower scores go left, equal or higher
// scores go right. Insertion is O(log n) on average; the tree is not
// self-balancing, which is acceptable for catalog-sized inputs.
type NutritionTree struct {
	root *nutritionNode
	size int
}

// NewNutritionTree creates an empty nutrition tree.
func NewNutritionTree() *NutritionTree {
	return &NutritionTree{}
}

// Insert adds a food with its derived score as a new leaf.
// Duplicate scores are permitted and route right.
func (t *NutritionTree) Insert(name string, score float64) {
	node := &nutritionNode{name: name, score: score}
	t.size++

	if t.root == nil {
		t.root = node
		return
	}

	cur := t.root
	for {
		if score < cur.score {
			if cur.left == nil {
				cur.left = node
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = node
				return
			}
			cur = cur.right
		}
	}
}

// Len returns the number of foods in the tree.
func (t *NutritionTree) Len() int {
	return t.size
}

// RangeLookup returns the names of all foods whose score lies in
// [center-tolerance, center+tolerance], ascending by score (in-order
// traversal).
func (t *NutritionTree) RangeLookup(center, tolerance float64) []string {
	lo, hi := center-tolerance, center+tolerance
	var names []string

	var walk func(n *nutritionNode)
	walk = func(n *nutritionNode) {
		if n == nil {
			return
		}
		walk(n.left)
		if n.score >= lo && n.score <= hi {
			names = append(names, n.name)
		}
		walk(n.right)
	}
	walk(t.root)

	return names
}

// InOrder returns all food names ascending by score.
func (t *NutritionTree) InOrder() []string {
	var names []string

	var walk func(n *nutritionNode)
	walk = func(n *nutritionNode) {
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

// NearestOrExact returns the name of the food with exactly the given
// score, if present. Otherwise it returns the best lower-score
// candidate seen while descending right branches.
//
// This is deliberately not a true nearest-neighbor search: candidates
// reachable only through left branches are never considered, so a
// closer higher-scored food may be skipped in favor of a lower one.
// Callers (nutrition-based recommendation) tolerate the asymmetry.
func (t *NutritionTree) NearestOrExact(score float64) (string, bool) {
	var closest string
	found := false

	cur := t.root
	for cur != nil {
		switch {
		case cur.score == score:
			return cur.name, true
		case score < cur.score:
			cur = cur.left
		default:
			closest = cur.name
			found = true
			cur = cur.right
		}
	}

	return closest, found
}
