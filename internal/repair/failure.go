package repair

import (
	"errors"
	"fmt"

	"dedupfix/internal/document"
)

// FailureKind classifies why a repair could not be planned.
type FailureKind int

const (
	// MarkerNotDuplicated means the marker occurs zero times or once.
	MarkerNotDuplicated FailureKind = iota + 1
	// UnbalancedBlock means the second occurrence's block never closes.
	UnbalancedBlock
)

func (k FailureKind) String() string {
	switch k {
	case MarkerNotDuplicated:
		return "marker-not-duplicated"
	case UnbalancedBlock:
		return "unbalanced-block"
	default:
		return "unknown"
	}
}

// Failure is returned by NewPlan when the document cannot be repaired.
// The document is never written when planning fails.
type Failure struct {
	Kind   FailureKind
	Marker string
	Line   int // line of the second occurrence, for UnbalancedBlock
	Err    error
}

func (f *Failure) Error() string {
	switch f.Kind {
	case MarkerNotDuplicated:
		if errors.Is(f.Err, document.ErrMarkerNotFound) {
			return fmt.Sprintf("marker %q not found", f.Marker)
		}
		return fmt.Sprintf("only one occurrence of %q", f.Marker)
	case UnbalancedBlock:
		return fmt.Sprintf("could not find closing brace for block at line %d", f.Line)
	default:
		return f.Err.Error()
	}
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// KindOf returns the failure kind carried by err, or 0 if err is not a Failure.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return 0
}
