package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"tripfinder/internal/listing"
)

// ListQuery narrows a destinations or packages request. Zero values are omitted.
type ListQuery struct {
	Limit    int
	TourType string
	State    string
	Country  string
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.TourType != "" {
		v.Set("tourType", q.TourType)
	}
	if q.State != "" {
		v.Set("state", q.State)
	}
	if q.Country != "" {
		v.Set("country", q.Country)
	}
	return v
}

type destinationsResponse struct {
	Destinations []listing.RawDestination `json:"destinations"`
}

type packagesResponse struct {
	Packages []listing.RawPackage `json:"packages"`
}

func (c *Client) ListDestinations(ctx context.Context, q ListQuery) ([]listing.RawDestination, error) {
	var resp destinationsResponse
	if err := c.getJSON(ctx, "/api/destinations", q.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Destinations, nil
}

func (c *Client) ListPackages(ctx context.Context, q ListQuery) ([]listing.RawPackage, error) {
	var resp packagesResponse
	if err := c.getJSON(ctx, "/api/packages", q.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Packages, nil
}

// ListFixedDepartures accepts both {"fixedDepartures": [...]} and a bare array.
func (c *Client) ListFixedDepartures(ctx context.Context) ([]listing.RawFixedDeparture, error) {
	const path = "/api/fixed-departures"

	var raw json.RawMessage
	if err := c.getJSON(ctx, path, nil, &raw); err != nil {
		return nil, err
	}

	var records []listing.RawFixedDeparture
	if isArray(raw) {
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, &RemoteFetchError{Endpoint: path, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
		return records, nil
	}

	var wrapped struct {
		FixedDepartures []listing.RawFixedDeparture `json:"fixedDepartures"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, &RemoteFetchError{Endpoint: path, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return wrapped.FixedDepartures, nil
}

// FixedDepartureBySlug accepts both {"fixedDeparture": {...}} and a bare object.
func (c *Client) FixedDepartureBySlug(ctx context.Context, slug string) (listing.RawFixedDeparture, error) {
	path := "/api/fixed-departures/slug/" + url.PathEscape(slug)

	var raw json.RawMessage
	if err := c.getJSON(ctx, path, nil, &raw); err != nil {
		return listing.RawFixedDeparture{}, err
	}

	body := raw
	var wrapped struct {
		FixedDeparture json.RawMessage `json:"fixedDeparture"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.FixedDeparture) > 0 {
		body = wrapped.FixedDeparture
	}

	var rec listing.RawFixedDeparture
	if err := json.Unmarshal(body, &rec); err != nil {
		return listing.RawFixedDeparture{}, &RemoteFetchError{Endpoint: path, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return rec, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
