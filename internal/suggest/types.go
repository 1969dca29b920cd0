package suggest

import (
	"errors"
	"fmt"
	"strings"

	"tripfinder/internal/listing"
)

// MaxResults caps the dropdown.
const MaxResults = 10

type Suggestion struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Destination   string                 `json:"destination,omitempty"`
	Price         listing.FlexibleNumber `json:"price"`
	Duration      string                 `json:"duration,omitempty"`
	Category      string                 `json:"category"`
	Slug          string                 `json:"slug,omitempty"`
	Image         *string                `json:"image"`
	DepartureDate string                 `json:"departureDate,omitempty"`
	Country       string                 `json:"country,omitempty"`
	States        []string               `json:"states,omitempty"`
	IsFeatured    bool                   `json:"isFeatured,omitempty"`
}

// Source is one backend suggest endpoint.
type Source struct {
	Name string
	Path string
}

// DefaultSources is also the merge order.
var DefaultSources = []Source{
	{Name: "packages", Path: "/api/packages/suggest"},
	{Name: "fixed-departures", Path: "/api/fixed-departures/suggest"},
	{Name: "destinations", Path: "/api/destinations/suggest"},
	{Name: "holiday-types", Path: "/api/holiday-types/suggest"},
}

// FetchError means no source answered, so there is nothing to show.
type FetchError struct {
	Errs []error
}

func (e *FetchError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("suggestion fetch failed: all %d sources failed: %s", len(e.Errs), strings.Join(msgs, "; "))
}

func (e *FetchError) Unwrap() error { return errors.Join(e.Errs...) }

// Metadata describes how a result list was produced.
type Metadata struct {
	SourcesQueried   int    `json:"sources_queried"`
	SourcesSucceeded int    `json:"sources_succeeded"`
	SourcesFailed    int    `json:"sources_failed"`
	SearchTimeMs     int64  `json:"search_time_ms"`
	CacheKey         string `json:"cache_key,omitempty"`
	CacheHit         bool   `json:"cache_hit"`
}

type Response struct {
	Query       string       `json:"query"`
	Suggestions []Suggestion `json:"suggestions"`
	Metadata    Metadata     `json:"metadata"`
}
