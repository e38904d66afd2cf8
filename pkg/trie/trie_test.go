package trie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleWords = []string{"cat", "car", "card", "dog", "Cart", "do", "café", "carpet"}

func buildIndexes(words []string) map[string]Index {
	indexes := map[string]Index{
		"node":     New(),
		"patricia": NewPatricia(),
	}
	for _, idx := range indexes {
		for _, w := range words {
			idx.Insert(w)
		}
	}
	return indexes
}

func TestSearchPrefix(t *testing.T) {
	testCases := []struct {
		prefix   string
		expected []string
	}{
		{"ca", []string{"car", "card", "carpet", "cart", "cat", "café"}},
		{"CAR", []string{"car", "card", "carpet", "cart"}},
		{"card", []string{"card"}},
		{"do", []string{"do", "dog"}},
		{"caf", []string{"café"}},
		{"x", []string{}},
		{"cards", []string{}},
	}

	for name, idx := range buildIndexes(sampleWords) {
		for _, tc := range testCases {
			t.Run(name+"/"+tc.prefix, func(t *testing.T) {
				got := idx.SearchPrefix(tc.prefix)
				require.NotNil(t, got)
				assert.ElementsMatch(t, tc.expected, got)
				for _, w := range got {
					assert.True(t, strings.HasPrefix(w, strings.ToLower(tc.prefix)), "word %q lacks prefix %q", w, tc.prefix)
				}
			})
		}
	}
}

func TestSearchPrefixNodeOrderIsLexical(t *testing.T) {
	tr := New()
	for _, w := range []string{"dog", "card", "cat", "car"} {
		tr.Insert(w)
	}

	assert.Equal(t, []string{"car", "card", "cat"}, tr.SearchPrefix("ca"))
	assert.Equal(t, []string{"car", "card", "cat", "dog"}, tr.Words())
}

func TestEmptyPrefixReturnsEveryWordOnce(t *testing.T) {
	words := append([]string{}, sampleWords...)
	words = append(words, "cat", "CAT", "dog")

	for name, idx := range buildIndexes(words) {
		t.Run(name, func(t *testing.T) {
			got := idx.SearchPrefix("")
			assert.Len(t, got, 8)
			assert.Equal(t, 8, idx.Len())

			seen := make(map[string]bool)
			for _, w := range got {
				assert.False(t, seen[w], "duplicate word %q", w)
				seen[w] = true
			}
		})
	}
}

func TestInsertIsIdempotent(t *testing.T) {
	once := New()
	twice := New()
	for _, w := range sampleWords {
		once.Insert(w)
		twice.Insert(w)
		twice.Insert(w)
	}

	for _, p := range []string{"", "c", "ca", "car", "d", "z"} {
		assert.Equal(t, once.SearchPrefix(p), twice.SearchPrefix(p), "prefix %q", p)
	}
	assert.Equal(t, once.Len(), twice.Len())
}

func TestInsertIgnoresEmptyWord(t *testing.T) {
	for name, idx := range buildIndexes(nil) {
		t.Run(name, func(t *testing.T) {
			idx.Insert("")
			assert.Equal(t, 0, idx.Len())
			assert.Empty(t, idx.SearchPrefix(""))
			assert.False(t, idx.Contains(""))
		})
	}
}

func TestContains(t *testing.T) {
	for name, idx := range buildIndexes(sampleWords) {
		t.Run(name, func(t *testing.T) {
			assert.True(t, idx.Contains("card"))
			assert.True(t, idx.Contains("CART"))
			assert.False(t, idx.Contains("ca"))
			assert.False(t, idx.Contains("cards"))
		})
	}
}

func TestLongWordTraversal(t *testing.T) {
	long := strings.Repeat("a", 10000)
	tr := New()
	tr.Insert(long)
	tr.Insert(long[:5000])

	got := tr.SearchPrefix("aaa")
	require.Len(t, got, 2)
	assert.Equal(t, long[:5000], got[0])
	assert.Equal(t, long, got[1])
}

func TestNewIndex(t *testing.T) {
	assert.IsType(t, &Trie{}, NewIndex(KindNode))
	assert.IsType(t, &Trie{}, NewIndex(""))
	assert.IsType(t, &Patricia{}, NewIndex(KindPatricia))
	assert.IsType(t, &Trie{}, NewIndex("bogus"))
}
