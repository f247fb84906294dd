package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHeaders(t *testing.T) {
	tests := []struct {
		name        string
		row         []string
		wantLabels  []string
		wantIndices []int
	}{
		{
			name:        "Blank and duplicate dropped",
			row:         []string{"A", "", "A", "B"},
			wantLabels:  []string{"A", "B"},
			wantIndices: []int{0, 3},
		},
		{
			name:        "Duplicate by normalized form",
			row:         []string{"Seller SKU", "seller_sku", "Title"},
			wantLabels:  []string{"Seller SKU", "Title"},
			wantIndices: []int{0, 2},
		},
		{
			name:        "NBSP-only header dropped",
			row:         []string{"   ", "Brand"},
			wantLabels:  []string{"Brand"},
			wantIndices: []int{1},
		},
		{
			name:        "Trims display labels",
			row:         []string{"  Title  "},
			wantLabels:  []string{"Title"},
			wantIndices: []int{0},
		},
		{
			name:        "All blank",
			row:         []string{"", "  ", ""},
			wantLabels:  nil,
			wantIndices: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveHeaders(tt.row)
			require.Len(t, got, len(tt.wantLabels))
			for i, col := range got {
				assert.Equal(t, tt.wantLabels[i], col.Label)
				assert.Equal(t, tt.wantIndices[i], col.Index)
			}
		})
	}
}

func TestParseAliasTable(t *testing.T) {
	table, err := ParseAliasTable([]byte(`{"Partner SKU": ["Seller SKU", "item_sku"], "Brand": "brand_name"}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Seller SKU", "item_sku"}, table["partner sku"])
	assert.Equal(t, []string{"brand_name"}, table["brand"])
}

func TestParseAliasTableNormalizesKeys(t *testing.T) {
	table, err := ParseAliasTable([]byte(`{"SKU_Code/Ref": ["x"]}`))
	require.NoError(t, err)

	_, ok := table["sku code ref"]
	assert.True(t, ok)
}

func TestParseAliasTableErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Malformed JSON", `{"a": `},
		{"Non-string alias", `{"a": [1, 2]}`},
		{"Numeric value", `{"a": 3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAliasTable([]byte(tt.data))
			require.Error(t, err)

			var parseErr *AliasParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}
