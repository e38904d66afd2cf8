/*
Package dictionary loads word lists and owns the lazily-built search cache.

A Source yields the raw vocabulary: newline-delimited words, trimmed, with
blank lines discarded. A Cache turns a Source into an immutable Snapshot (the
vocabulary, a prefix index and a fuzzy matcher) exactly once, on first use.

	cache := dictionary.NewCache(dictionary.NewFileSource("words.txt"), trie.KindNode)
	snap := cache.Get()
	words := snap.Index.SearchPrefix("ca")

Load failures never reach callers of Get; they are logged and the cache
degrades to an empty snapshot.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for files that cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported word list format")
	// ErrNoSource is returned when a cache is built without a source.
	ErrNoSource = errors.New("no word list source configured")
)

// maxLineSize bounds a single line of the word list.
const maxLineSize = 1 << 20

// Source produces the vocabulary once per process.
type Source interface {
	Load() ([]string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() ([]string, error)

func (f SourceFunc) Load() ([]string, error) { return f() }

// FileSource reads a word list from disk.
type FileSource struct {
	Path string
}

// NewFileSource returns a Source reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load opens the file, detects its format and reads the words.
func (s *FileSource) Load() ([]string, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", s.Path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	head, _ := reader.Peek(len(gzipMagic))
	format := DetectFormat(s.Path, head)

	r, err := openFormat(reader, format)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", s.Path, err)
	}
	if closer, ok := r.(io.Closer); ok {
		defer closer.Close()
	}

	words, err := ReadWords(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", s.Path, err)
	}
	return words, nil
}

// StaticSource serves a fixed word slice, mostly for tests and embedding.
type StaticSource []string

func (s StaticSource) Load() ([]string, error) {
	return ReadWords(strings.NewReader(strings.Join(s, "\n")))
}

// ReadWords splits r into lines, trims each line and drops blank ones. Order
// and duplicates are preserved.
func ReadWords(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	words := []string{}
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
