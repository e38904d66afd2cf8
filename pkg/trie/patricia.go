package trie

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Patricia is an Index backed by a radix tree. Results for a prefix are the
// same set the node Trie returns; the visiting order follows the radix tree.
type Patricia struct {
	trie  *patricia.Trie
	words int
}

// NewPatricia returns an empty radix tree index.
func NewPatricia() *Patricia {
	return &Patricia{trie: patricia.NewTrie()}
}

func (p *Patricia) Insert(word string) {
	word = strings.ToLower(word)
	if word == "" {
		return
	}
	if p.trie.Insert(patricia.Prefix(word), struct{}{}) {
		p.words++
	}
}

func (p *Patricia) SearchPrefix(prefix string) []string {
	prefix = strings.ToLower(prefix)
	results := []string{}

	visitor := func(key patricia.Prefix, _ patricia.Item) error {
		results = append(results, string(key))
		return nil
	}

	var err error
	if prefix == "" {
		err = p.trie.Visit(visitor)
	} else {
		err = p.trie.VisitSubtree(patricia.Prefix(prefix), visitor)
	}
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return []string{}
	}
	return results
}

func (p *Patricia) Contains(word string) bool {
	word = strings.ToLower(word)
	if word == "" {
		return false
	}
	return p.trie.Match(patricia.Prefix(word))
}

func (p *Patricia) Len() int {
	return p.words
}

// Kind names an Index implementation in configuration.
type Kind string

const (
	KindNode     Kind = "node"
	KindPatricia Kind = "patricia"
)

// NewIndex returns an empty Index of the given kind. Unknown kinds fall back
// to the node trie.
func NewIndex(kind Kind) Index {
	switch kind {
	case KindPatricia:
		return NewPatricia()
	case KindNode, "":
		return New()
	default:
		log.Warnf("Unknown index kind %q, using %q", kind, KindNode)
		return New()
	}
}
