package mapping

import (
	"fmt"
	"strings"

	"github.com/ashutoshjangde-ui/Masterfile-Automation/internal/normalize"
	"github.com/ashutoshjangde-ui/Masterfile-Automation/internal/similarity"
)

// Kind tags a destination column's resolution outcome.
type Kind int

const (
	// KindUnresolved leaves the destination column blank for every row.
	KindUnresolved Kind = iota
	// KindSource copies values from one onboarding column.
	KindSource
	// KindFixed writes a literal constant for every row, ignoring data.
	KindFixed
)

// Entry is the outcome for a single destination column.
type Entry struct {
	Kind   Kind
	Source int    // 0-based raw column index, set when Kind is KindSource
	Fixed  string // literal value, set when Kind is KindFixed
}

// Result is a complete column mapping with its diagnostics. Built once per
// resolution attempt and never mutated afterwards; re-resolving produces a
// fresh Result.
type Result struct {
	Entries   map[int]Entry // 1-based destination column -> outcome
	Resolved  int
	Unmatched []string
	Report    []string
}

// FixedListValue is written to the listing-action column when no
// onboarding column resolves for it.
const FixedListValue = "List"

const maxSuggestions = 3

var listingActionKey = normalize.Key("Listing Action (List or Unlist)")

// Build resolves each master column, left to right, against the cleaned
// onboarding columns. For every master label the alias list from the table
// is walked in priority order with the raw label itself as a final
// fallback; the first alias whose normalized form equals an onboarding
// column's key wins. Similarity never decides a match, it only feeds the
// suggestions reported for unmatched columns.
func Build(masterLabels []string, onboarding []Column, aliases AliasTable) *Result {
	byKey := make(map[string]int, len(onboarding))
	labels := make([]string, len(onboarding))
	for i, col := range onboarding {
		byKey[col.Key] = col.Index
		labels[i] = col.Label
	}

	res := &Result{Entries: make(map[int]Entry, len(masterLabels))}

	for i, disp := range masterLabels {
		destCol := i + 1

		list := append([]string(nil), aliases[normalize.Key(disp)]...)
		if disp != "" {
			list = append(list, disp)
		}

		matched := false
		for _, alias := range list {
			if src, ok := byKey[normalize.Key(alias)]; ok {
				res.Entries[destCol] = Entry{Kind: KindSource, Source: src}
				res.Resolved++
				res.Report = append(res.Report, fmt.Sprintf("✓ %s ← %q", disp, alias))
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		if normalize.Key(disp) == listingActionKey {
			res.Entries[destCol] = Entry{Kind: KindFixed, Fixed: FixedListValue}
			res.Report = append(res.Report, fmt.Sprintf("◦ %s ← fixed %q", disp, FixedListValue))
			continue
		}

		res.Entries[destCol] = Entry{Kind: KindUnresolved}
		res.Unmatched = append(res.Unmatched, disp)
		res.Report = append(res.Report, fmt.Sprintf("✗ %s: no match (suggestions: %s)",
			disp, formatSuggestions(similarity.TopMatches(disp, labels, maxSuggestions))))
	}

	return res
}

func formatSuggestions(matches []similarity.Match) string {
	if len(matches) == 0 {
		return "none"
	}
	parts := make([]string, len(matches))
	for i, m := range matches {
		parts[i] = fmt.Sprintf("%s (%.1f%%)", m.Candidate, m.Score*100)
	}
	return strings.Join(parts, ", ")
}
