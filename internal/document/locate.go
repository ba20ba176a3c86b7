package document

import (
	"errors"
	"strings"
)

var (
	ErrEmptyMarker         = errors.New("marker is empty")
	ErrMarkerNotFound      = errors.New("marker not found")
	ErrMarkerNotDuplicated = errors.New("marker occurs only once")
)

// Occurrences holds the byte offsets of the first and second occurrence of a marker.
type Occurrences struct {
	First  int
	Second int
}

// Locate finds the first occurrence of marker in text and the first occurrence
// after it. Matching is plain substring search, so "void foo(" also matches
// inside "void foo(int)" and a marker like "void foo" matches "void foobar(".
//
// The second search resumes one byte past the start of the first match, which
// means overlapping occurrences (e.g. "aa" in "aaa") count as two.
func Locate(text, marker string) (Occurrences, error) {
	if marker == "" {
		return Occurrences{}, ErrEmptyMarker
	}

	first := strings.Index(text, marker)
	if first == -1 {
		return Occurrences{}, ErrMarkerNotFound
	}

	rest := strings.Index(text[first+1:], marker)
	if rest == -1 {
		return Occurrences{First: first, Second: -1}, ErrMarkerNotDuplicated
	}

	return Occurrences{First: first, Second: first + 1 + rest}, nil
}
