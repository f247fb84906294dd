package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopMatchesIdentical(t *testing.T) {
	got := TopMatches("Seller SKU", []string{"Title", "seller_sku", "Brand"}, 3)

	require.Len(t, got, 3)
	assert.Equal(t, "seller_sku", got[0].Candidate)
	assert.Equal(t, 1.0, got[0].Score)
}

func TestTopMatchesTruncates(t *testing.T) {
	got := TopMatches("SKU", []string{"a", "b", "c", "d", "e"}, 3)
	assert.Len(t, got, 3)
}

func TestTopMatchesFewerThanK(t *testing.T) {
	got := TopMatches("SKU", []string{"SKU Code"}, 3)
	assert.Len(t, got, 1)
}

func TestTopMatchesStableOnTies(t *testing.T) {
	// Disjoint candidates all score 0.0 and must keep input order.
	got := TopMatches("abc", []string{"xyz", "uvw", "qqq"}, 3)

	require.Len(t, got, 3)
	assert.Equal(t, 0.0, got[0].Score)
	assert.Equal(t, []string{"xyz", "uvw", "qqq"},
		[]string{got[0].Candidate, got[1].Candidate, got[2].Candidate})
}

func TestTopMatchesOrdering(t *testing.T) {
	got := TopMatches("Item Name", []string{"Brand", "item name - EN-US", "Item No"}, 3)

	require.Len(t, got, 3)
	assert.Equal(t, "item name - EN-US", got[0].Candidate)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i].Score, got[i-1].Score)
	}
}

func TestTopMatchesEmptyCandidates(t *testing.T) {
	assert.Empty(t, TopMatches("SKU", nil, 3))
}
