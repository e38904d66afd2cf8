// Package trie provides the prefix indexes used for word completion.
//
// Two implementations satisfy Index: the rune-keyed node Trie, which is the
// default, and Patricia, a radix tree backed by go-patricia. Both lowercase
// their input and return every stored word under a prefix, leaving limits and
// ranking to the caller.
package trie

import (
	"sort"
	"strings"
)

// Index is a read-mostly prefix index over a fixed vocabulary.
type Index interface {
	// Insert stores word. Inserting the same word twice is a no-op.
	Insert(word string)
	// SearchPrefix returns every stored word that starts with prefix.
	SearchPrefix(prefix string) []string
	// Contains reports whether word was inserted.
	Contains(word string) bool
	// Len returns the number of distinct stored words.
	Len() int
}

// node is one character step in the tree.
type node struct {
	children map[rune]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is a character tree keyed by rune.
// It is not safe for concurrent Insert; concurrent reads after the last
// Insert are fine.
type Trie struct {
	root  *node
	words int
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert lowercases word and stores it. Empty words are ignored.
func (t *Trie) Insert(word string) {
	word = strings.ToLower(word)
	if word == "" {
		return
	}

	current := t.root
	for _, ch := range word {
		child, ok := current.children[ch]
		if !ok {
			child = newNode()
			current.children[ch] = child
		}
		current = child
	}

	if !current.terminal {
		current.terminal = true
		t.words++
	}
}

// walk follows key from the root and returns the node it ends on, or nil.
func (t *Trie) walk(key string) *node {
	current := t.root
	for _, ch := range key {
		child, ok := current.children[ch]
		if !ok {
			return nil
		}
		current = child
	}
	return current
}

// SearchPrefix returns all stored words beginning with prefix, in ascending
// rune order along each level. No partial matches: if prefix leaves the tree
// the result is empty.
func (t *Trie) SearchPrefix(prefix string) []string {
	prefix = strings.ToLower(prefix)
	start := t.walk(prefix)
	if start == nil {
		return []string{}
	}
	return collect(start, prefix)
}

// Words returns every stored word.
func (t *Trie) Words() []string {
	return t.SearchPrefix("")
}

// Contains reports whether word (case-insensitive) is stored.
func (t *Trie) Contains(word string) bool {
	n := t.walk(strings.ToLower(word))
	return n != nil && n.terminal
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.words
}

// frame is a pending subtree on the traversal stack. depth is the length of
// the path leading to the parent of n.
type frame struct {
	n     *node
	ch    rune
	depth int
}

// collect gathers every terminal node under start with an explicit stack,
// so long words never grow the goroutine stack. The path buffer is shared
// and truncated back to each frame's depth when the frame is popped.
func collect(start *node, prefix string) []string {
	results := []string{}
	path := []rune(prefix)
	base := len(path)

	if start.terminal {
		results = append(results, prefix)
	}
	stack := pushChildren(nil, start, base)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		path = append(path[:top.depth], top.ch)
		if top.n.terminal {
			results = append(results, string(path))
		}
		stack = pushChildren(stack, top.n, top.depth+1)
	}

	return results
}

// pushChildren pushes the children of n in descending rune order so the
// smallest rune is popped first.
func pushChildren(stack []frame, n *node, depth int) []frame {
	if len(n.children) == 0 {
		return stack
	}
	keys := make([]rune, 0, len(n.children))
	for ch := range n.children {
		keys = append(keys, ch)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] > keys[j] })

	for _, ch := range keys {
		stack = append(stack, frame{n: n.children[ch], ch: ch, depth: depth})
	}
	return stack
}
