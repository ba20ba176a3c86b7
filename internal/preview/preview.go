package preview

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Kind classifies a line of a diff.
type Kind int

const (
	Context Kind = iota
	Deleted
	Inserted
)

// Prefix returns the unified-diff marker for the kind.
func (k Kind) Prefix() string {
	switch k {
	case Deleted:
		return "-"
	case Inserted:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a line-level diff. OldLine and NewLine are 1-based;
// the one that does not apply to the kind is zero.
type Line struct {
	Kind    Kind
	OldLine int
	NewLine int
	Text    string
}

// Lines computes a line-level diff between two texts.
func Lines(oldText, newText string) []Line {
	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(chars1, chars2, false)
	lineDiffs := dmp.DiffCharsToLines(diffs, lineArray)

	var lines []Line
	oldNo, newNo := 1, 1
	for _, d := range lineDiffs {
		for _, text := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				lines = append(lines, Line{Kind: Context, OldLine: oldNo, NewLine: newNo, Text: text})
				oldNo++
				newNo++
			case diffmatchpatch.DiffDelete:
				lines = append(lines, Line{Kind: Deleted, OldLine: oldNo, Text: text})
				oldNo++
			case diffmatchpatch.DiffInsert:
				lines = append(lines, Line{Kind: Inserted, NewLine: newNo, Text: text})
				newNo++
			}
		}
	}
	return lines
}

// Unified renders the diff between oldText and newText as hunks with the
// given number of context lines. It returns "" when the texts are equal.
func Unified(oldText, newText string, context int) string {
	if oldText == newText {
		return ""
	}
	lines := Lines(oldText, newText)

	// Mark every line within context of a change.
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Kind == Context {
			continue
		}
		lo := max(i-context, 0)
		hi := min(i+context, len(lines)-1)
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}

	var sb strings.Builder
	for i := 0; i < len(lines); {
		if !keep[i] {
			i++
			continue
		}
		j := i
		for j < len(lines) && keep[j] {
			j++
		}
		writeHunk(&sb, lines[i:j])
		i = j
	}
	return sb.String()
}

func writeHunk(sb *strings.Builder, hunk []Line) {
	oldStart, newStart := 0, 0
	oldCount, newCount := 0, 0
	for _, l := range hunk {
		if l.Kind != Inserted {
			if oldStart == 0 {
				oldStart = l.OldLine
			}
			oldCount++
		}
		if l.Kind != Deleted {
			if newStart == 0 {
				newStart = l.NewLine
			}
			newCount++
		}
	}
	fmt.Fprintf(sb, "@@ -%d,%d +%d,%d @@\n", oldStart, oldCount, newStart, newCount)
	for _, l := range hunk {
		sb.WriteString(l.Kind.Prefix())
		sb.WriteString(l.Text)
		sb.WriteByte('\n')
	}
}

// splitLines splits a diff chunk into lines without their terminating
// newline. A chunk from DiffCharsToLines always ends on a line boundary
// unless it is the last line of the text.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\n")
	}
	return lines
}
