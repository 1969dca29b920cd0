package listing

import (
	"sort"
	"strings"
)

// FromDestination maps a backend destination into the display shape.
func FromDestination(raw RawDestination) ListingItem {
	return ListingItem{
		ID:          raw.ID,
		Kind:        KindDestination,
		Name:        raw.Name,
		Location:    joinNonEmpty(", ", raw.State, raw.Country),
		Category:    raw.TourType,
		Rating:      raw.Rating.Or(DefaultRating),
		Duration:    raw.Duration,
		Price:       nonNegative(raw.StartingPrice.Or(0)),
		Description: raw.Description,
		Link:        detailLink("/destinations", raw.Slug, raw.ID),
		Image:       firstImage(raw.Image, raw.Images),
	}
}

// FromPackage maps a backend package into the display shape.
func FromPackage(raw RawPackage) ListingItem {
	name := raw.Title
	if name == "" {
		name = raw.Name
	}
	category := raw.Category
	if category == "" {
		category = raw.TourType
	}

	return ListingItem{
		ID:          raw.ID,
		Kind:        KindPackage,
		Name:        name,
		Location:    raw.Destination,
		Category:    category,
		Rating:      raw.Rating.Or(DefaultRating),
		Duration:    raw.Duration,
		Price:       nonNegative(raw.Price.Or(0)),
		Description: raw.Description,
		Link:        detailLink("/packages", raw.Slug, raw.ID),
		Image:       firstImage(raw.Image, raw.Images),
	}
}

// FromFixedDeparture maps a backend fixed departure and derives the
// per-batch urgency state.
func FromFixedDeparture(raw RawFixedDeparture) DepartureRecord {
	rec := DepartureRecord{
		ID:             raw.ID,
		Title:          raw.Title,
		Slug:           raw.Slug,
		Destination:    raw.Destination,
		Category:       raw.TourType,
		Duration:       raw.Duration,
		Price:          nonNegative(raw.Price.Or(0)),
		AvailableSeats: int(nonNegative(raw.AvailableSeats.Or(0))),
		TotalSeats:     int(nonNegative(raw.TotalSeats.Or(0))),
		Image:          firstImage(raw.Image, raw.Images),
		Itinerary:      raw.Itinerary,
		Inclusions:     raw.Inclusions,
		Exclusions:     raw.Exclusions,
	}
	if raw.OriginalPrice.Valid {
		op := nonNegative(raw.OriginalPrice.Value)
		rec.OriginalPrice = &op
	}

	rec.Departures = make([]DepartureBatch, 0, len(raw.Departures))
	for _, b := range raw.Departures {
		rec.Departures = append(rec.Departures, DepartureBatch{
			Date:   b.Date,
			Price:  nonNegative(b.Price.Or(rec.Price)),
			Seats:  int(nonNegative(b.Seats.Or(0))),
			Status: DepartureStatus(strings.ToLower(strings.TrimSpace(b.Status))),
		})
	}

	rec.Normalize()
	return rec
}

// Normalize orders the itinerary by day, drops entries without a valid day
// number, and recomputes every batch's urgency.
func (d *DepartureRecord) Normalize() {
	days := make([]ItineraryDay, 0, len(d.Itinerary))
	seen := make(map[int]struct{}, len(d.Itinerary))
	for _, day := range d.Itinerary {
		if day.Day < 1 {
			continue
		}
		if _, dup := seen[day.Day]; dup {
			continue
		}
		seen[day.Day] = struct{}{}
		days = append(days, day)
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	d.Itinerary = days

	for i := range d.Departures {
		d.Departures[i].Urgency = d.Departures[i].ComputeUrgency()
		d.Departures[i].CanBook = d.Departures[i].Urgency != StatusSoldOut
	}
}

// limitedSeatThreshold is the seat count below which a batch shows as limited.
const limitedSeatThreshold = 10

// ComputeUrgency derives the display state from seats; the stored status is
// only trusted for soldout.
func (b DepartureBatch) ComputeUrgency() DepartureStatus {
	if b.Status == StatusSoldOut {
		return StatusSoldOut
	}
	if b.Seats < limitedSeatThreshold {
		return StatusLimited
	}
	return StatusAvailable
}

func detailLink(base, slug, id string) string {
	switch {
	case slug != "":
		return base + "/" + slug
	case id != "":
		return base + "/" + id
	default:
		return base
	}
}

func firstImage(image string, images []string) *string {
	if image != "" {
		return &image
	}
	for _, img := range images {
		if img != "" {
			return &img
		}
	}
	return nil
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
