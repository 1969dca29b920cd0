package listing

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type Kind string

const (
	KindDestination Kind = "destination"
	KindPackage     Kind = "package"
)

// DefaultRating is shown for records the backend sent without a rating.
const DefaultRating = 4.5

// ListingItem is the common display shape for destinations and packages.
type ListingItem struct {
	ID          string  `json:"id"`
	Kind        Kind    `json:"kind"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Link        string  `json:"link"`
	Image       *string `json:"image"`
}

func (i ListingItem) ItemName() string     { return i.Name }
func (i ListingItem) ItemLocation() string { return i.Location }
func (i ListingItem) ItemCategory() string { return i.Category }
func (i ListingItem) ItemPrice() float64   { return i.Price }
func (i ListingItem) ItemDuration() string { return i.Duration }
func (i ListingItem) ItemRating() float64  { return i.Rating }

// Item is what the filter and sort stages need from a record.
type Item interface {
	ItemName() string
	ItemLocation() string
	ItemCategory() string
	ItemPrice() float64
	ItemDuration() string
	ItemRating() float64
}

type DepartureStatus string

const (
	StatusAvailable DepartureStatus = "available"
	StatusLimited   DepartureStatus = "limited"
	StatusSoldOut   DepartureStatus = "soldout"
)

type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Meals       string `json:"meals,omitempty"`
	Hotel       string `json:"hotel,omitempty"`
}

// DepartureBatch is one scheduled date of a fixed departure.
type DepartureBatch struct {
	Date    string          `json:"date"`
	Price   float64         `json:"price"`
	Seats   int             `json:"seats"`
	Status  DepartureStatus `json:"status"`
	Urgency DepartureStatus `json:"urgency"`
	CanBook bool            `json:"bookable"`
}

type DepartureRecord struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Slug           string           `json:"slug"`
	Destination    string           `json:"destination"`
	Category       string           `json:"category"`
	Duration       string           `json:"duration"`
	Price          float64          `json:"price"`
	OriginalPrice  *float64         `json:"originalPrice,omitempty"`
	AvailableSeats int              `json:"availableSeats"`
	TotalSeats     int              `json:"totalSeats"`
	Image          *string          `json:"image"`
	Itinerary      []ItineraryDay   `json:"itinerary"`
	Inclusions     []string         `json:"inclusions"`
	Exclusions     []string         `json:"exclusions"`
	Departures     []DepartureBatch `json:"departures"`
}

func (d DepartureRecord) ItemName() string     { return d.Title }
func (d DepartureRecord) ItemLocation() string { return d.Destination }
func (d DepartureRecord) ItemCategory() string { return d.Category }
func (d DepartureRecord) ItemPrice() float64   { return d.Price }
func (d DepartureRecord) ItemDuration() string { return d.Duration }
func (d DepartureRecord) ItemRating() float64  { return DefaultRating }

// FlexibleNumber decodes a JSON number, a numeric string ("₹15,000"), or null.
// Anything unparseable decodes as an absent value instead of failing the payload.
type FlexibleNumber struct {
	Value float64
	Valid bool
}

func (n *FlexibleNumber) UnmarshalJSON(b []byte) error {
	*n = FlexibleNumber{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		s = strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				return r
			}
			return -1
		}, s)
		b = []byte(s)
	}

	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return nil
	}
	n.Value, n.Valid = v, true
	return nil
}

func (n FlexibleNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Or returns the value, or fallback when absent.
func (n FlexibleNumber) Or(fallback float64) float64 {
	if !n.Valid {
		return fallback
	}
	return n.Value
}

// RawDestination is a record from GET /api/destinations.
type RawDestination struct {
	ID            string         `json:"_id"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	State         string         `json:"state"`
	Country       string         `json:"country"`
	TourType      string         `json:"tourType"`
	Rating        FlexibleNumber `json:"rating"`
	Duration      string         `json:"duration"`
	StartingPrice FlexibleNumber `json:"startingPrice"`
	Description   string         `json:"description"`
	Image         string         `json:"image"`
	Images        []string       `json:"images"`
}

// RawPackage is a record from GET /api/packages.
type RawPackage struct {
	ID          string         `json:"_id"`
	Title       string         `json:"title"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Destination string         `json:"destination"`
	Category    string         `json:"category"`
	TourType    string         `json:"tourType"`
	Rating      FlexibleNumber `json:"rating"`
	Duration    string         `json:"duration"`
	Price       FlexibleNumber `json:"price"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Images      []string       `json:"images"`
}

type RawDepartureBatch struct {
	Date   string         `json:"date"`
	Price  FlexibleNumber `json:"price"`
	Seats  FlexibleNumber `json:"seats"`
	Status string         `json:"status"`
}

// RawFixedDeparture is a record from GET /api/fixed-departures.
type RawFixedDeparture struct {
	ID             string              `json:"_id"`
	Title          string              `json:"title"`
	Slug           string              `json:"slug"`
	Destination    string              `json:"destination"`
	TourType       string              `json:"tourType"`
	Duration       string              `json:"duration"`
	Price          FlexibleNumber      `json:"price"`
	OriginalPrice  FlexibleNumber      `json:"originalPrice"`
	AvailableSeats FlexibleNumber      `json:"availableSeats"`
	TotalSeats     FlexibleNumber      `json:"totalSeats"`
	Image          string              `json:"image"`
	Images         []string            `json:"images"`
	Itinerary      []ItineraryDay      `json:"itinerary"`
	Inclusions     []string            `json:"inclusions"`
	Exclusions     []string            `json:"exclusions"`
	Departures     []RawDepartureBatch `json:"departures"`
}
