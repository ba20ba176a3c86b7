package document

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by Load when the file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// Document is the full text of the target file. It is read once and never
// mutated; a repair produces a new string instead.
type Document struct {
	Path string
	Text string
}

// Load reads the whole file at path into memory.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}
	return &Document{Path: path, Text: string(content)}, nil
}
