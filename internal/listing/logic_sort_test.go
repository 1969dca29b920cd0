package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortDefault, []string{"1", "2", "3", "4", "5"}},
		{SortPriceLow, []string{"5", "3", "1", "2", "4"}},
		{SortPriceHigh, []string{"4", "2", "1", "3", "5"}},
		// "Weekend" parses to 0 days and sorts first
		{SortDurationShort, []string{"5", "3", "2", "1", "4"}},
		{SortDurationAsc, []string{"5", "3", "2", "1", "4"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			in := departures()
			got := Sort(in, tt.key)

			assert.Equal(t, tt.want, ids(got))
			assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(in), "input is not mutated")
		})
	}
}

func TestSortStable(t *testing.T) {
	items := []ListingItem{
		{ID: "a", Price: 100, Rating: 4.5},
		{ID: "b", Price: 50, Rating: 4.5},
		{ID: "c", Price: 100, Rating: 4.0},
		{ID: "d", Price: 100, Rating: 4.5},
	}

	byPrice := Sort(items, SortPriceLow)
	assert.Equal(t, []string{"b", "a", "c", "d"}, listingIDs(byPrice))

	byRating := Sort(items, SortRatingDesc)
	assert.Equal(t, []string{"a", "b", "d", "c"}, listingIDs(byRating))
}

func TestRecommended(t *testing.T) {
	items := []ListingItem{
		{ID: "a", Price: 900, Rating: 4.5},
		{ID: "b", Price: 300, Rating: 4.9},
		{ID: "c", Price: 200, Rating: 4.5},
	}

	assert.Equal(t, []string{"b", "c", "a"}, listingIDs(Recommended(items)))
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortDefault, k)

	k, err = ParseSortKey("price_high")
	require.NoError(t, err)
	assert.Equal(t, SortPriceHigh, k)

	_, err = ParseSortKey("popular")
	assert.Error(t, err)
}

func listingIDs(items []ListingItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
