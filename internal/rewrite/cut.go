package rewrite

import (
	"errors"
	"fmt"
)

var ErrInvalidRange = errors.New("invalid range")

// Cut returns text with the span [start, end) removed.
func Cut(text string, start, end int) (string, error) {
	if start < 0 || end > len(text) || start > end {
		return "", fmt.Errorf("cut [%d, %d) of %d bytes: %w", start, end, len(text), ErrInvalidRange)
	}
	return text[:start] + text[end:], nil
}

// ExtendToLineEnd moves end past the rest of its line when that rest holds
// only spaces, tabs and a line terminator. Otherwise end is returned as is.
func ExtendToLineEnd(text string, end int) int {
	i := end
	for i < len(text) && (text[i] == ' ' || text[i] == '\t' || text[i] == '\r') {
		i++
	}
	switch {
	case i == len(text):
		return i
	case text[i] == '\n':
		return i + 1
	default:
		return end
	}
}
