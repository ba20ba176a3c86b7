package document

import (
	"errors"
	"fmt"
)

var (
	ErrUnbalancedBlock  = errors.New("no matching closing brace")
	ErrOffsetOutOfRange = errors.New("offset out of range")
)

// BlockEnd scans text from start and returns the offset just past the brace
// that balances the first '{' at or after start.
//
// The scan is purely lexical: braces inside string literals and comments are
// counted like any other. A '}' seen before the block opens lowers the depth
// but never ends the scan.
func BlockEnd(text string, start int) (int, error) {
	if start < 0 || start > len(text) {
		return -1, fmt.Errorf("scan start %d (document length %d): %w", start, len(text), ErrOffsetOutOfRange)
	}

	depth := 0
	opened := false
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
			opened = true
		case '}':
			depth--
			if opened && depth == 0 {
				return i + 1, nil
			}
		}
	}
	return -1, ErrUnbalancedBlock
}
