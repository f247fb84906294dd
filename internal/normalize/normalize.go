// Package normalize canonicalizes header strings so that vendor spelling
// variants of the same column name compare equal.
package normalize

import (
	"regexp"
	"strings"
)

var (
	localeSuffix = regexp.MustCompile(`(?i)\s*-\s*en\s*[-_ ]\s*us\s*$`)
	separatorRun = regexp.MustCompile(`[._/\\-]+`)
	nonAlnum     = regexp.MustCompile(`[^0-9a-z\s]+`)
	spaceRun     = regexp.MustCompile(`\s+`)

	unicodeDashes = strings.NewReplacer("–", "-", "—", "-", "−", "-")
)

// Key reduces a raw header string to its canonical comparison form:
// lowercase ASCII alphanumerics separated by single spaces, with NBSPs,
// localization suffixes like " - EN-US", unicode dashes, and separator
// characters (. _ / \ -) folded away. Two headers name the same column
// iff their keys are equal. Key is idempotent.
func Key(raw string) string {
	x := strings.ReplaceAll(raw, " ", " ")
	x = strings.ToLower(strings.TrimSpace(x))
	x = localeSuffix.ReplaceAllString(x, "")
	x = unicodeDashes.Replace(x)
	x = separatorRun.ReplaceAllString(x, " ")
	x = nonAlnum.ReplaceAllString(x, " ")
	return strings.TrimSpace(spaceRun.ReplaceAllString(x, " "))
}

// TrimCell trims surrounding whitespace from a raw cell value, treating
// non-breaking spaces as whitespace.
func TrimCell(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, " ", " "))
}
