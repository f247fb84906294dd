package mapping

import (
	"errors"

	"github.com/ashutoshjangde-ui/Masterfile-Automation/internal/sheet"
)

// ErrNoUsableHeaderRow means auto-detection found no candidate row that
// keeps any header after cleaning.
var ErrNoUsableHeaderRow = errors.New("could not auto-detect a usable header row")

// Candidate is a hypothesized header-row position together with the
// mapping it produces.
type Candidate struct {
	HeaderRow int // 0-based row offset of the header row
	Columns   []Column
	Mapping   *Result
}

// AutoDetectHeaderRow tries each of the first maxRowsToTry rows as the
// header row, resolving headers and building a full mapping against the
// data below it, and returns the candidate explaining the most master
// columns. Vendors pad onboarding sheets with a variable number of banner
// rows above the real header, so header-row choice is scored by mapping
// quality rather than by structural guesses. Candidates are compared by
// (resolved columns, kept headers) lexicographically; on ties the
// first-seen candidate wins.
func AutoDetectHeaderRow(g *sheet.Grid, maxRowsToTry int, masterLabels []string, aliases AliasTable) (Candidate, error) {
	rows := g.Rows()

	limit := maxRowsToTry
	if len(rows)-1 < limit {
		limit = len(rows) - 1
	}

	var best *Candidate
	for h0 := 0; h0 < limit; h0++ {
		cols := ResolveHeaders(rows[h0])
		cand := Candidate{
			HeaderRow: h0,
			Columns:   cols,
			Mapping:   Build(masterLabels, cols, aliases),
		}
		if best == nil || beats(cand, *best) {
			c := cand
			best = &c
		}
	}

	if best == nil || len(best.Columns) == 0 {
		return Candidate{}, ErrNoUsableHeaderRow
	}
	return *best, nil
}

// beats reports whether a scores strictly higher than b.
func beats(a, b Candidate) bool {
	if a.Mapping.Resolved != b.Mapping.Resolved {
		return a.Mapping.Resolved > b.Mapping.Resolved
	}
	return len(a.Columns) > len(b.Columns)
}
