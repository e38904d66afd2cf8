// Package fuzzy ranks vocabulary words by edit distance to a query.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/bastiangx/wordfind/pkg/levenshtein"
)

// Edit distance thresholds used by the search orchestrator.
const (
	// DefaultMaxDistance applies when fuzzy search is the primary strategy.
	DefaultMaxDistance = 2
	// SupplementMaxDistance applies to the typo pass that tops up short
	// prefix results.
	SupplementMaxDistance = 1
)

// Match is a vocabulary word and its edit distance to the query.
type Match struct {
	Word     string
	Distance int
}

// Matcher scans a fixed vocabulary for approximate matches.
type Matcher struct {
	words []string
}

// NewMatcher creates a matcher over words. The slice is not copied and must
// not be modified afterwards.
func NewMatcher(words []string) *Matcher {
	return &Matcher{words: words}
}

// Size returns the number of vocabulary entries scanned per query.
func (m *Matcher) Size() int {
	return len(m.words)
}

// Search returns every word within maxDistance edits of query, closest first.
func (m *Matcher) Search(query string, maxDistance int) []Match {
	return Search(query, m.words, maxDistance)
}

// Search scores every word in vocabulary against query and keeps those with
// distance <= maxDistance. Results are ordered by distance, then by the
// lowercased word, then by the word itself.
func Search(query string, vocabulary []string, maxDistance int) []Match {
	matches := []Match{}
	if maxDistance < 0 {
		return matches
	}

	q := levenshtein.Normalize(query)
	for _, word := range vocabulary {
		if d, ok := levenshtein.WithinRunes(q, word, maxDistance); ok {
			matches = append(matches, Match{Word: word, Distance: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return less(matches[i], matches[j])
	})
	return matches
}

func less(a, b Match) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	la, lb := strings.ToLower(a.Word), strings.ToLower(b.Word)
	if la != lb {
		return la < lb
	}
	return a.Word < b.Word
}

// Words extracts the words from matches, preserving order.
func Words(matches []Match) []string {
	words := make([]string, len(matches))
	for i, m := range matches {
		words[i] = m.Word
	}
	return words
}
