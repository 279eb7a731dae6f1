// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package index

// trieNode represents a node in the cuisine trie.
type trieNode struct {
	children map[rune]*trieNode
	terminal bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Trie is a case-sensitive prefix tree used as the cuisine registry's
// membership index. It accepts exactly the strings that were inserted:
// Contains("Ital") is false when only "Italian" was inserted.
//
// Operations are O(m) in the length of the query string.
type Trie struct {
	root *trieNode
	size int
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert adds a string to the trie, marking its last node terminal.
// Returns true if the string was not already present.
func (t *Trie) Insert(value string) bool {
	if value == "" {
		return false
	}

	node := t.root
	for _, ch := range value {
		child, ok := node.children[ch]
		if !ok {
			child = newTrieNode()
			node.children[ch] = child
		}
		node = child
	}

	if node.terminal {
		return false
	}
	node.terminal = true
	t.size++
	return true
}

// Contains reports whether the exact string was inserted. It is not a
// prefix match: every character must be present and the final node
// must be terminal.
func (t *Trie) Contains(value string) bool {
	node := t.root
	for _, ch := range value {
		child, ok := node.children[ch]
		if !ok {
			return false
		}
		node = child
	}
	return node.terminal
}

// Len returns the number of complete strings stored.
func (t *Trie) Len() int {
	return t.size
}
