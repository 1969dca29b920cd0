package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func departures() []DepartureRecord {
	return []DepartureRecord{
		{ID: "1", Title: "Char Dham Yatra", Destination: "Uttarakhand", Category: "Pilgrimage", Duration: "9N/10D", Price: 15000},
		{ID: "2", Title: "Leh Ladakh Bike Trip", Destination: "Ladakh", Category: "Adventure", Duration: "6N/7D", Price: 24999},
		{ID: "3", Title: "Kerala Escape", Destination: "Kerala", Category: "Honeymoon", Duration: "4N/5D", Price: 14999},
		{ID: "4", Title: "Spiti Circuit", Destination: "Himachal Pradesh", Category: "adventure", Duration: "11N/12D", Price: 25001},
		{ID: "5", Title: "Goa Weekend", Destination: "Goa", Category: "Beach", Duration: "Weekend", Price: 8000},
	}
}

func ids(items []DepartureRecord) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{"defaults keep everything", DefaultCriteria(), []string{"1", "2", "3", "4", "5"}},
		{"zero criteria keep everything", Criteria{}, []string{"1", "2", "3", "4", "5"}},
		{"category is case insensitive", Criteria{Category: "Adventure"}, []string{"2", "4"}},
		{"15000 falls in the middle bucket", Criteria{Price: "15k_25k"}, []string{"1", "2"}},
		{"under 15k excludes 15000", Criteria{Price: "under_15k"}, []string{"3", "5"}},
		{"above 25k", Criteria{Price: "above_25k"}, []string{"4"}},
		{"10D is medium", Criteria{Duration: "medium"}, []string{"1", "2"}},
		{"unparseable duration matches no bucket", Criteria{Duration: "short"}, []string{"3"}},
		{"query matches name", Criteria{Query: "yatra"}, []string{"1"}},
		{"query matches location", Criteria{Query: "  KERALA "}, []string{"3"}},
		{"predicates combine", Criteria{Category: "adventure", Price: "above_25k"}, []string{"4"}},
		{"unknown bucket is ignored", Criteria{Price: "free"}, []string{"1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(departures(), tt.c, FixedDepartures)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	c := Criteria{Category: "adventure", Duration: "medium"}

	once := Filter(departures(), c, FixedDepartures)
	twice := Filter(once, c, FixedDepartures)

	assert.Equal(t, once, twice)
}

func TestFilterNarrowingNeverGrows(t *testing.T) {
	broad := Filter(departures(), Criteria{Price: "15k_25k"}, FixedDepartures)
	narrow := Filter(departures(), Criteria{Price: "15k_25k", Query: "leh"}, FixedDepartures)

	assert.LessOrEqual(t, len(narrow), len(broad))
	assert.Subset(t, ids(broad), ids(narrow))
}

func TestFilterRating(t *testing.T) {
	items := []ListingItem{
		{ID: "a", Name: "A", Rating: 4.8},
		{ID: "b", Name: "B", Rating: 4.0},
		{ID: "c", Name: "C", Rating: 3.2},
	}

	got := Filter(items, Criteria{Rating: "4.0"}, Packages)
	assert.Len(t, got, 2)

	// fixed departures have no rating selector
	got = Filter(items, Criteria{Rating: "4.0"}, FixedDepartures)
	assert.Len(t, got, 3)
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, FixedDepartures.Validate(DefaultCriteria()))
	assert.NoError(t, Packages.Validate(Criteria{Price: "5000+", Duration: "13+", Rating: "3.5", Sort: "rating-desc"}))

	err := FixedDepartures.Validate(Criteria{Price: "5000+"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)

	assert.Error(t, Packages.Validate(Criteria{Duration: "forever"}))
	assert.Error(t, Packages.Validate(Criteria{Rating: "six"}))
	assert.Error(t, Packages.Validate(Criteria{Sort: "newest"}))
}

func TestBucketEdges(t *testing.T) {
	b, ok := Packages.PriceBuckets.Lookup("1000-2500")
	assert.True(t, ok)
	assert.False(t, b.Contains(1000))
	assert.True(t, b.Contains(1000.01))
	assert.True(t, b.Contains(2500))

	low, _ := Packages.PriceBuckets.Lookup("0-1000")
	assert.True(t, low.Contains(0))
	assert.True(t, low.Contains(1000))
}
