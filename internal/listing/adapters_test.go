package listing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleNumber(t *testing.T) {
	var v struct {
		A FlexibleNumber `json:"a"`
		B FlexibleNumber `json:"b"`
		C FlexibleNumber `json:"c"`
		D FlexibleNumber `json:"d"`
		E FlexibleNumber `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a": 12500, "b": "₹15,000", "c": null, "d": "call us", "e": {"x":1}}`), &v)
	require.NoError(t, err)

	assert.Equal(t, FlexibleNumber{Value: 12500, Valid: true}, v.A)
	assert.Equal(t, FlexibleNumber{Value: 15000, Valid: true}, v.B)
	assert.False(t, v.C.Valid)
	assert.False(t, v.D.Valid)
	assert.False(t, v.E.Valid)
	assert.Equal(t, 7.0, v.C.Or(7))
}

func TestFromDestination(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		item := FromDestination(RawDestination{ID: "d1", Name: "Goa", Country: "India"})

		assert.Equal(t, KindDestination, item.Kind)
		assert.Equal(t, DefaultRating, item.Rating)
		assert.Equal(t, 0.0, item.Price)
		assert.Equal(t, "India", item.Location)
		assert.Equal(t, "/destinations/d1", item.Link)
		assert.Nil(t, item.Image)
	})

	t.Run("full record", func(t *testing.T) {
		item := FromDestination(RawDestination{
			ID:            "d2",
			Name:          "Manali",
			Slug:          "manali",
			State:         "Himachal Pradesh",
			Country:       "India",
			TourType:      "Hill Station",
			Rating:        FlexibleNumber{Value: 4.8, Valid: true},
			StartingPrice: FlexibleNumber{Value: -5, Valid: true},
			Images:        []string{"", "https://cdn/manali.jpg"},
		})

		assert.Equal(t, "Himachal Pradesh, India", item.Location)
		assert.Equal(t, "/destinations/manali", item.Link)
		assert.Equal(t, 4.8, item.Rating)
		assert.Equal(t, 0.0, item.Price, "negative price clamps to zero")
		require.NotNil(t, item.Image)
		assert.Equal(t, "https://cdn/manali.jpg", *item.Image)
	})
}

func TestFromPackage(t *testing.T) {
	item := FromPackage(RawPackage{
		Name:        "Kerala Backwaters",
		Destination: "Kerala",
		TourType:    "Honeymoon",
		Rating:      FlexibleNumber{Value: 0, Valid: true},
		Price:       FlexibleNumber{Value: 2400, Valid: true},
		Image:       "k.jpg",
	})

	assert.Equal(t, KindPackage, item.Kind)
	assert.Equal(t, "Kerala Backwaters", item.Name)
	assert.Equal(t, "Honeymoon", item.Category)
	assert.Equal(t, 0.0, item.Rating, "an explicit zero rating is kept")
	assert.Equal(t, "/packages", item.Link, "link is never empty")
}

func TestFromFixedDeparture(t *testing.T) {
	rec := FromFixedDeparture(RawFixedDeparture{
		ID:    "fd1",
		Title: "Char Dham Yatra",
		Slug:  "char-dham",
		Price: FlexibleNumber{Value: 21000, Valid: true},
		Itinerary: []ItineraryDay{
			{Day: 3, Title: "Kedarnath"},
			{Day: 1, Title: "Haridwar"},
			{Day: 0, Title: "bogus"},
			{Day: 2, Title: "Barkot"},
			{Day: 1, Title: "duplicate"},
		},
		Departures: []RawDepartureBatch{
			{Date: "2026-05-01", Seats: FlexibleNumber{Value: 25, Valid: true}, Status: "available"},
			{Date: "2026-05-15", Seats: FlexibleNumber{Value: 4, Valid: true}, Status: "available"},
			{Date: "2026-06-01", Seats: FlexibleNumber{Value: 30, Valid: true}, Status: "SoldOut"},
			{Date: "2026-06-15", Price: FlexibleNumber{Value: 23000, Valid: true}, Seats: FlexibleNumber{Value: 12, Valid: true}, Status: "limited"},
		},
	})

	days := make([]int, 0, len(rec.Itinerary))
	for _, d := range rec.Itinerary {
		days = append(days, d.Day)
	}
	assert.Equal(t, []int{1, 2, 3}, days)
	assert.Equal(t, "Haridwar", rec.Itinerary[0].Title)

	require.Len(t, rec.Departures, 4)
	assert.Equal(t, StatusAvailable, rec.Departures[0].Urgency)
	assert.True(t, rec.Departures[0].CanBook)
	assert.Equal(t, 21000.0, rec.Departures[0].Price, "batch inherits record price")

	assert.Equal(t, StatusLimited, rec.Departures[1].Urgency, "under ten seats is limited even if stored available")

	assert.Equal(t, StatusSoldOut, rec.Departures[2].Urgency, "soldout wins over seat count")
	assert.False(t, rec.Departures[2].CanBook)

	assert.Equal(t, StatusAvailable, rec.Departures[3].Urgency, "stored limited is not trusted")
	assert.Equal(t, 23000.0, rec.Departures[3].Price)
}
