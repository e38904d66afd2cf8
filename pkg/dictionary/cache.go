package dictionary

import (
	"strings"
	"sync"
	"time"

	"github.com/bastiangx/wordfind/pkg/fuzzy"
	"github.com/bastiangx/wordfind/pkg/trie"
	"github.com/charmbracelet/log"
)

// Snapshot is the immutable state every query reads from.
type Snapshot struct {
	// Vocabulary holds the loaded words, lowercased, in file order.
	Vocabulary []string
	Index      trie.Index
	Matcher    *fuzzy.Matcher
	BuildTime  time.Duration
}

// TotalWords is the size of the vocabulary, duplicates included.
func (s *Snapshot) TotalWords() int {
	return len(s.Vocabulary)
}

// Cache builds a Snapshot from its Source on first use and keeps it for the
// lifetime of the value. Concurrent first callers block until the single
// build finishes, so a partially built index is never observed.
type Cache struct {
	source Source
	kind   trie.Kind

	once    sync.Once
	snap    *Snapshot
	loadErr error
}

// NewCache returns a cache that loads source lazily into an index of kind.
func NewCache(source Source, kind trie.Kind) *Cache {
	return &Cache{source: source, kind: kind}
}

// Get returns the snapshot, building it on the first call.
func (c *Cache) Get() *Snapshot {
	c.once.Do(c.build)
	return c.snap
}

// Err reports the load error seen while building, if any. It triggers the
// build when called first.
func (c *Cache) Err() error {
	c.Get()
	return c.loadErr
}

func (c *Cache) build() {
	start := time.Now()
	index := trie.NewIndex(c.kind)

	var words []string
	if c.source == nil {
		c.loadErr = ErrNoSource
	} else {
		words, c.loadErr = c.source.Load()
	}

	if c.loadErr != nil {
		log.Errorf("Error reading word list: %v", c.loadErr)
		words = []string{}
	} else {
		log.Debug("Building trie from word list...", "words", len(words), "index", c.kind)
		normalized := make([]string, len(words))
		for i, w := range words {
			normalized[i] = strings.ToLower(w)
			index.Insert(normalized[i])
		}
		words = normalized
	}

	c.snap = &Snapshot{
		Vocabulary: words,
		Index:      index,
		Matcher:    fuzzy.NewMatcher(words),
		BuildTime:  time.Since(start),
	}
	log.Infof("Trie built with %d words (%d distinct) in %v", len(words), index.Len(), c.snap.BuildTime)
}
