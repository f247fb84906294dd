package pipeline

import (
	"fmt"
	"strings"
)

// MissingInputError lists the required inputs absent from a run request.
type MissingInputError struct {
	Missing []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required input(s): %s", strings.Join(e.Missing, ", "))
}

// HeaderRowOutOfRangeError reports an explicit header-row choice beyond
// the onboarding sheet's bounds.
type HeaderRowOutOfRangeError struct {
	Row    int // 1-based requested row
	MaxRow int
}

func (e *HeaderRowOutOfRangeError) Error() string {
	return fmt.Sprintf("header row %d is out of range for this file (1..%d)", e.Row, e.MaxRow)
}
