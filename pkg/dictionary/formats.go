package dictionary

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// FileFormat identifies how a word list is stored on disk.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // newline-delimited plain text
	FormatGzip               // gzip-compressed newline-delimited text
)

// FormatInfo contains metadata about a word list format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{".txt", ".lst", ""},
	},
	FormatGzip: {
		Format:      FormatGzip,
		Description: "Gzip Word List",
		Extensions:  []string{".gz"},
	},
}

var gzipMagic = []byte{0x1f, 0x8b}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}

// DetectFormat picks a format from the file's leading bytes, falling back to
// its extension. head may be shorter than two bytes.
func DetectFormat(filename string, head []byte) FileFormat {
	if bytes.HasPrefix(head, gzipMagic) {
		return FormatGzip
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, format := range []FileFormat{FormatGzip, FormatText} {
		for _, e := range supportedFormats[format].Extensions {
			if ext == e {
				if format == FormatGzip {
					// .gz without the magic header is not gzip
					return FormatUnknown
				}
				return format
			}
		}
	}
	// anything else is read as text; word lists come with odd extensions
	return FormatText
}

// openFormat wraps r so reads yield plain text for the given format.
func openFormat(r *bufio.Reader, format FileFormat) (io.Reader, error) {
	switch format {
	case FormatText:
		return r, nil
	case FormatGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return gz, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
