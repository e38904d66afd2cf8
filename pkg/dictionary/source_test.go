package dictionary

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadWords(t *testing.T) {
	words, err := ReadWords(strings.NewReader("  cat\r\n\ncar\n   \n\tcard \ncat\ndog"))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "car", "card", "cat", "dog"}, words)
}

func TestReadWordsEmpty(t *testing.T) {
	words, err := ReadWords(strings.NewReader("\n\n  \n"))
	require.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)
}

func TestFileSourceText(t *testing.T) {
	path := writeFile(t, "words.txt", "Cat\ncar\n\ncard\n")
	words, err := NewFileSource(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Cat", "car", "card"}, words)
}

func TestFileSourceGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte("alpha\nbeta\n\ngamma\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	words, err := NewFileSource(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, words)
}

func TestFileSourceMissing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.txt")).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileSourceFakeGzip(t *testing.T) {
	path := writeFile(t, "words.gz", "not compressed\n")
	_, err := NewFileSource(path).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDetectFormat(t *testing.T) {
	testCases := []struct {
		name     string
		head     []byte
		expected FileFormat
	}{
		{"words.txt", []byte("ab"), FormatText},
		{"words", []byte("ab"), FormatText},
		{"words.dic", []byte("ab"), FormatText},
		{"words.bin", gzipMagic, FormatGzip},
		{"words.gz", gzipMagic, FormatGzip},
		{"words.gz", []byte("ab"), FormatUnknown},
		{"tiny.txt", nil, FormatText},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, DetectFormat(tc.name, tc.head), tc.name)
	}
}
