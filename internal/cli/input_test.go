package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/bastiangx/wordfind/pkg/dictionary"
	"github.com/bastiangx/wordfind/pkg/search"
	"github.com/bastiangx/wordfind/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runREPL(t *testing.T, input string) string {
	t.Helper()
	words := dictionary.StaticSource{"cat", "car", "card", "dog", "door"}
	engine := search.NewEngine(dictionary.NewCache(words, trie.KindNode), search.DefaultOptions())

	var out bytes.Buffer
	h := NewInputHandler(engine, config.NewLive(nil), strings.NewReader(input), &out)
	require.NoError(t, h.Start())
	return out.String()
}

func TestREPLPrefix(t *testing.T) {
	out := runREPL(t, "ca\n")
	assert.Contains(t, out, "Found 3 of 5 words for 'ca' [prefix]")
	assert.Contains(t, out, " 1. ")
	assert.Contains(t, out, "card")
}

func TestREPLBlend(t *testing.T) {
	out := runREPL(t, "car\n")
	assert.Contains(t, out, "Found 3 of 5 words for 'car' [prefix+fuzzy]")
}

func TestREPLFuzzyMarker(t *testing.T) {
	out := runREPL(t, "~dgo\n")
	assert.Contains(t, out, "[fuzzy]")
	assert.Contains(t, out, "dog")
}

func TestREPLNoMatches(t *testing.T) {
	out := runREPL(t, "zz\n")
	assert.Contains(t, out, "No matches for 'zz' (prefix)")
}

func TestREPLSkipsBlankLinesAndRejectsBareMarker(t *testing.T) {
	out := runREPL(t, "\n   \n~\n")
	assert.Contains(t, out, "Invalid query")
	assert.NotContains(t, out, "Found")
}

func TestREPLLastLineWithoutNewline(t *testing.T) {
	out := runREPL(t, "do")
	assert.Contains(t, out, "Found 2 of 5 words for 'do' [prefix]")
}
