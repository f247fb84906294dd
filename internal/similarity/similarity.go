// Package similarity ranks candidate header strings by how closely they
// resemble a query. Scores are advisory only: they back the suggestions
// shown for unmatched columns and never decide a mapping.
package similarity

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/ashutoshjangde-ui/Masterfile-Automation/internal/normalize"
)

// Match pairs a candidate string with its similarity score in [0, 1].
type Match struct {
	Score     float64
	Candidate string
}

// TopMatches scores every candidate against query using a matching-blocks
// sequence ratio over the normalized forms of both strings, and returns
// the k best in descending score order. The sort is stable, so equal
// scores keep the original candidate order.
func TopMatches(query string, candidates []string, k int) []Match {
	q := runes(normalize.Key(query))

	scored := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		m := difflib.NewMatcher(q, runes(normalize.Key(c)))
		scored = append(scored, Match{Score: m.Ratio(), Candidate: c})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k < len(scored) {
		scored = scored[:k]
	}
	return scored
}

// runes splits s into one-character strings for the character-level matcher.
func runes(s string) []string {
	return strings.Split(s, "")
}
