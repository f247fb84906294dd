package mapping

import (
	"fmt"

	"github.com/ashutoshjangde-ui/Masterfile-Automation/internal/normalize"
)

// Column is one onboarding column retained after header cleaning.
type Column struct {
	Index int    // 0-based position in the raw sheet row
	Label string // trimmed display name
	Key   string // normalized form, unique within a cleaned row
}

// ResolveHeaders cleans a raw header row into the column universe the
// engine may match against. Blank headers are dropped outright, and any
// header whose normalized form repeats an earlier one is dropped too:
// duplicate-looking vendor headers are ambiguous, so the first occurrence
// wins and the rest are excluded rather than guessed at. Relative order
// of the kept columns is preserved.
func ResolveHeaders(rawRow []string) []Column {
	seen := make(map[string]struct{})
	var kept []Column

	for idx, v := range rawRow {
		label := normalize.TrimCell(v)
		key := normalize.Key(label)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if label == "" {
			// Unreachable when key is non-empty, kept for callers passing
			// pre-cleaned rows.
			label = fmt.Sprintf("col_%d", idx+1)
		}
		kept = append(kept, Column{Index: idx, Label: label, Key: key})
	}
	return kept
}
