package listing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// All is the "no constraint" value for every selector.
const All = "all"

// Bucket is a named numeric interval used by the price and duration selectors.
type Bucket struct {
	Key          string  `json:"key"`
	Label        string  `json:"label"`
	Min          float64 `json:"-"`
	Max          float64 `json:"-"`
	MinExclusive bool    `json:"-"`
	MaxExclusive bool    `json:"-"`
}

func (b Bucket) Contains(v float64) bool {
	if b.MinExclusive {
		if v <= b.Min {
			return false
		}
	} else if v < b.Min {
		return false
	}

	if b.MaxExclusive {
		return v < b.Max
	}
	return v <= b.Max
}

type BucketTable []Bucket

func (t BucketTable) Lookup(key string) (Bucket, bool) {
	for _, b := range t {
		if b.Key == key {
			return b, true
		}
	}
	return Bucket{}, false
}

// Profile holds the per-page configuration of the discovery pipeline. The two
// listing pages bucket differently on purpose, so each gets its own tables.
type Profile struct {
	Name            string      `json:"name"`
	Prefix          string      `json:"-"`
	PageSize        int         `json:"page_size"`
	PriceBuckets    BucketTable `json:"price_buckets"`
	DurationBuckets BucketTable `json:"duration_buckets"`
	RatingEnabled   bool        `json:"rating_enabled"`
	RatingOptions   []float64   `json:"rating_options,omitempty"`
}

var inf = math.Inf(1)

// FixedDepartures is the fixed-departures listing page.
var FixedDepartures = Profile{
	Name:     "fixed-departures",
	Prefix:   "fd",
	PageSize: 9,
	PriceBuckets: BucketTable{
		{Key: "under_15k", Label: "Under ₹15,000", Min: math.Inf(-1), Max: 15000, MaxExclusive: true},
		{Key: "15k_25k", Label: "₹15,000 - ₹25,000", Min: 15000, Max: 25000},
		{Key: "above_25k", Label: "Above ₹25,000", Min: 25000, MinExclusive: true, Max: inf},
	},
	DurationBuckets: BucketTable{
		{Key: "short", Label: "1-5 Days", Min: 1, Max: 5},
		{Key: "medium", Label: "6-10 Days", Min: 6, Max: 10},
		{Key: "long", Label: "11+ Days", Min: 11, Max: inf},
	},
}

// Packages is the mixed destinations and packages listing page.
var Packages = Profile{
	Name:     "packages",
	Prefix:   "pkg",
	PageSize: 12,
	PriceBuckets: BucketTable{
		{Key: "0-1000", Label: "Up to 1,000", Min: 0, Max: 1000},
		{Key: "1000-2500", Label: "1,000 - 2,500", Min: 1000, MinExclusive: true, Max: 2500},
		{Key: "2500-5000", Label: "2,500 - 5,000", Min: 2500, MinExclusive: true, Max: 5000},
		{Key: "5000+", Label: "5,000+", Min: 5000, MinExclusive: true, Max: inf},
	},
	DurationBuckets: BucketTable{
		{Key: "1-3", Label: "1-3 Days", Min: 1, Max: 3},
		{Key: "4-6", Label: "4-6 Days", Min: 4, Max: 6},
		{Key: "7-9", Label: "7-9 Days", Min: 7, Max: 9},
		{Key: "10-12", Label: "10-12 Days", Min: 10, Max: 12},
		{Key: "13+", Label: "13+ Days", Min: 13, Max: inf},
	},
	RatingEnabled: true,
	RatingOptions: []float64{4.5, 4.0, 3.5, 3.0},
}

// ProfileByName resolves the {context} path segment of the HTTP API.
func ProfileByName(name string) (Profile, bool) {
	switch name {
	case FixedDepartures.Name:
		return FixedDepartures, true
	case Packages.Name:
		return Packages, true
	}
	return Profile{}, false
}

// Criteria is the filter and sort part of a listing view.
type Criteria struct {
	Query    string `json:"search"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Duration string `json:"duration"`
	Rating   string `json:"rating"`
	Sort     string `json:"sort"`
}

// DefaultCriteria is the state of a freshly opened listing page.
func DefaultCriteria() Criteria {
	return Criteria{
		Category: All,
		Price:    All,
		Duration: All,
		Rating:   All,
		Sort:     string(SortDefault),
	}
}

type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// Validate rejects selector values the profile does not know about.
func (p Profile) Validate(c Criteria) error {
	if !isAll(c.Price) {
		if _, ok := p.PriceBuckets.Lookup(c.Price); !ok {
			return &ValidationError{Field: "price", Value: c.Price}
		}
	}
	if !isAll(c.Duration) {
		if _, ok := p.DurationBuckets.Lookup(c.Duration); !ok {
			return &ValidationError{Field: "duration", Value: c.Duration}
		}
	}
	if p.RatingEnabled && !isAll(c.Rating) {
		v, err := strconv.ParseFloat(c.Rating, 64)
		if err != nil || v < 0 || v > 5 {
			return &ValidationError{Field: "rating", Value: c.Rating}
		}
	}
	if _, err := ParseSortKey(c.Sort); err != nil {
		return err
	}
	return nil
}

func isAll(v string) bool {
	return v == "" || strings.EqualFold(v, All)
}
