package dictionary

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bastiangx/wordfind/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestCacheBuildsSnapshot(t *testing.T) {
	for _, kind := range []trie.Kind{trie.KindNode, trie.KindPatricia} {
		t.Run(string(kind), func(t *testing.T) {
			cache := NewCache(StaticSource{"Cat", "car", "card", "dog", "cat"}, kind)
			snap := cache.Get()

			require.NoError(t, cache.Err())
			assert.Equal(t, []string{"cat", "car", "card", "dog", "cat"}, snap.Vocabulary)
			assert.Equal(t, 5, snap.TotalWords())
			assert.Equal(t, 4, snap.Index.Len())
			assert.ElementsMatch(t, []string{"cat", "car", "card"}, snap.Index.SearchPrefix("ca"))
			assert.Equal(t, 5, snap.Matcher.Size())
		})
	}
}

func TestCacheDoesNotMutateSourceSlice(t *testing.T) {
	words := []string{"Apple", "BANANA"}
	cache := NewCache(SourceFunc(func() ([]string, error) { return words, nil }), trie.KindNode)

	assert.Equal(t, []string{"apple", "banana"}, cache.Get().Vocabulary)
	assert.Equal(t, []string{"Apple", "BANANA"}, words)
}

func TestCacheLoadFailureDegradesToEmpty(t *testing.T) {
	boom := errors.New("disk on fire")
	cache := NewCache(SourceFunc(func() ([]string, error) { return nil, boom }), trie.KindNode)

	snap := cache.Get()
	require.NotNil(t, snap)
	assert.ErrorIs(t, cache.Err(), boom)
	assert.Equal(t, 0, snap.TotalWords())
	assert.Empty(t, snap.Index.SearchPrefix(""))
	assert.Empty(t, snap.Matcher.Search("anything", 2))
}

func TestCacheWithoutSource(t *testing.T) {
	cache := NewCache(nil, trie.KindNode)
	assert.Equal(t, 0, cache.Get().TotalWords())
	assert.ErrorIs(t, cache.Err(), ErrNoSource)
}

func TestCacheBuildsOnceUnderConcurrency(t *testing.T) {
	var loads atomic.Int32
	source := SourceFunc(func() ([]string, error) {
		loads.Add(1)
		return []string{"cat", "car", "card"}, nil
	})
	cache := NewCache(source, trie.KindNode)

	const workers = 32
	var wg sync.WaitGroup
	snaps := make([]*Snapshot, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			snaps[idx] = cache.Get()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), loads.Load())
	for _, s := range snaps {
		assert.Same(t, snaps[0], s)
		assert.Equal(t, 3, s.Index.Len())
	}
}
