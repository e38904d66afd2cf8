// Package levenshtein computes unit-cost edit distance between words.
package levenshtein

import (
	"strings"
	"unicode/utf8"
)

// Distance returns the minimum number of single-rune insertions, deletions
// or substitutions that turn a into b. Both inputs are lowercased first.
func Distance(a, b string) int {
	return distanceRunes([]rune(strings.ToLower(a)), []rune(strings.ToLower(b)))
}

func distanceRunes(ra, rb []rune) int {
	// keep the rolling rows sized to the shorter input
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(
				prev[j-1], // substitution
				curr[j-1], // insertion
				prev[j],   // deletion
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Normalize lowercases s and splits it into runes, the form WithinRunes
// expects for its query.
func Normalize(s string) []rune {
	return []rune(strings.ToLower(s))
}

// Within reports whether Distance(a, b) <= maxDist. It rejects pairs whose
// length difference alone exceeds maxDist without filling the matrix.
func Within(a, b string, maxDist int) (int, bool) {
	return WithinRunes(Normalize(a), b, maxDist)
}

// WithinRunes is Within for a query already passed through Normalize, so a
// caller scanning many words converts the query once.
func WithinRunes(query []rune, word string, maxDist int) (int, bool) {
	if maxDist < 0 {
		return 0, false
	}
	word = strings.ToLower(word)
	diff := len(query) - utf8.RuneCountInString(word)
	if diff < 0 {
		diff = -diff
	}
	if diff > maxDist {
		return diff, false
	}
	d := distanceRunes(query, []rune(word))
	return d, d <= maxDist
}
