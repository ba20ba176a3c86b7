package rewrite

import (
	"sort"
	"strings"
)

// LineIndex maps byte offsets in a document to 1-based line numbers.
type LineIndex struct {
	offsets []int // byte offset where each line begins
}

// NewLineIndex builds the index for text.
func NewLineIndex(text string) *LineIndex {
	return &LineIndex{offsets: BuildLineOffsets(text)}
}

// LineOf returns the 1-based line number that contains offset.
func (li *LineIndex) LineOf(offset int) int {
	i := sort.Search(len(li.offsets), func(i int) bool {
		return li.offsets[i] > offset
	})
	if i == 0 {
		return 1
	}
	return i
}

// Lines reports how many lines the index covers.
func (li *LineIndex) Lines() int {
	return len(li.offsets)
}

// BuildLineOffsets returns a slice of byte offsets where each new line begins.
// E.g. if text[0]=='a' and text[5]=='\n', then offsets = [0,6,...].
// A trailing newline does not start a new line.
func BuildLineOffsets(text string) []int {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' && i+1 < len(text) {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// LineStart returns the offset of the first byte of the line containing
// offset: one past the nearest preceding '\n', or 0 if there is none.
func LineStart(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	if offset <= 0 {
		return 0
	}
	return strings.LastIndexByte(text[:offset], '\n') + 1
}
