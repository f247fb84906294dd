package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", ""},
		{"Whitespace only", "   \t ", ""},
		{"Lowercases", "Seller SKU", "seller sku"},
		{"Trims NBSP", " Item Name ", "item name"},
		{"Locale suffix", "Item Name - EN-US", "item name"},
		{"Locale suffix underscore", "Item Name - en_us", "item name"},
		{"Separators to space", "SKU_Code/Ref", "sku code ref"},
		{"Backslash and dot", `a.b\c`, "a b c"},
		{"En dash", "Price – USD", "price usd"},
		{"Em dash", "Price — USD", "price usd"},
		{"Minus sign", "Price − USD", "price usd"},
		{"Strips punctuation", "Listing Action (List or Unlist)", "listing action list or unlist"},
		{"Collapses spaces", "a   b\tc", "a b c"},
		{"Digits kept", "UPC 12", "upc 12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Key(tt.input))
		})
	}
}

func TestKeyIdempotent(t *testing.T) {
	inputs := []string{
		"Item Name - EN-US",
		"SKU_Code/Ref",
		"  Partner SKU  ",
		"Listing Action (List or Unlist)",
		"–—−",
		"",
	}
	for _, s := range inputs {
		once := Key(s)
		assert.Equal(t, once, Key(once), "Key not idempotent for %q", s)
	}
}

func TestKeyEquivalences(t *testing.T) {
	assert.Equal(t, Key("item name"), Key("Item Name - EN-US"))
	assert.Equal(t, Key("sku code ref"), Key("SKU_Code/Ref"))
}

func TestTrimCell(t *testing.T) {
	assert.Equal(t, "Item Name", TrimCell("  Item Name  "))
	assert.Equal(t, "", TrimCell("    "))
}
