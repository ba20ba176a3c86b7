package repair

import (
	"errors"
	"fmt"

	"dedupfix/internal/document"
	"dedupfix/internal/rewrite"
)

// PlanOptions selects what to look for and how much to cut.
type PlanOptions struct {
	Marker string
	// WholeLines also removes the blank remainder of the closing brace's line.
	WholeLines bool
}

// Plan describes the removal of the second occurrence's block. Offsets are
// byte offsets into the original text; lines are 1-based.
type Plan struct {
	Marker string

	First  int
	Second int
	Start  int // start of the line holding Second
	End    int // one past the balancing '}' (or its line, with WholeLines)

	FirstLine  int
	SecondLine int
	EndLine    int

	Removed string
	Output  string
}

// NewPlan locates the duplicated block in text and computes the repaired
// document. It does no I/O.
func NewPlan(text string, opts PlanOptions) (*Plan, error) {
	occ, err := document.Locate(text, opts.Marker)
	if err != nil {
		if errors.Is(err, document.ErrEmptyMarker) {
			return nil, err
		}
		return nil, &Failure{Kind: MarkerNotDuplicated, Marker: opts.Marker, Err: err}
	}

	lines := rewrite.NewLineIndex(text)

	end, err := document.BlockEnd(text, occ.Second)
	if err != nil {
		return nil, &Failure{Kind: UnbalancedBlock, Marker: opts.Marker, Line: lines.LineOf(occ.Second), Err: err}
	}
	if opts.WholeLines {
		end = rewrite.ExtendToLineEnd(text, end)
	}

	start := rewrite.LineStart(text, occ.Second)
	output, err := rewrite.Cut(text, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to cut block: %w", err)
	}

	return &Plan{
		Marker:     opts.Marker,
		First:      occ.First,
		Second:     occ.Second,
		Start:      start,
		End:        end,
		FirstLine:  lines.LineOf(occ.First),
		SecondLine: lines.LineOf(occ.Second),
		EndLine:    lines.LineOf(end - 1),
		Removed:    text[start:end],
		Output:     output,
	}, nil
}
