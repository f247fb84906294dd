// Package mapping resolves master template columns to onboarding sheet
// columns: it cleans raw header rows, matches columns through a
// priority-ordered alias table, and auto-detects the header row position
// when it is not known up front.
package mapping

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/ashutoshjangde-ui/Masterfile-Automation/internal/normalize"
)

// AliasTable maps a normalized master label to its onboarding aliases in
// priority order. First matching alias wins.
type AliasTable map[string][]string

// AliasParseError reports malformed alias-table JSON.
type AliasParseError struct {
	Err error
}

func (e *AliasParseError) Error() string {
	return fmt.Sprintf("mapping JSON could not be parsed: %v", e.Err)
}

func (e *AliasParseError) Unwrap() error { return e.Err }

// ParseAliasTable decodes alias JSON of the form
//
//	{"Partner SKU": ["Seller SKU", "item_sku"], "Brand": "brand_name"}
//
// where each value is a string or a list of strings. Keys are normalized
// here; values are kept verbatim and normalized at match time.
func ParseAliasTable(data []byte) (AliasTable, error) {
	var raw map[string]any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, &AliasParseError{Err: err}
	}

	table := make(AliasTable, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			table[normalize.Key(k)] = []string{val}
		case []any:
			aliases := make([]string, 0, len(val))
			for _, a := range val {
				s, ok := a.(string)
				if !ok {
					return nil, &AliasParseError{Err: fmt.Errorf("alias list for %q holds a non-string value", k)}
				}
				aliases = append(aliases, s)
			}
			table[normalize.Key(k)] = aliases
		default:
			return nil, &AliasParseError{Err: fmt.Errorf("value for %q must be a string or a list of strings", k)}
		}
	}
	return table, nil
}
