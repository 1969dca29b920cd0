package listing

import (
	"strconv"
	"strings"
)

// filterContext holds parsed criteria so nothing is re-parsed inside the loop
type filterContext struct {
	query     string
	category  string
	price     *Bucket
	duration  *Bucket
	minRating float64
	hasRating bool
}

func newFilterContext(c Criteria, p Profile) *filterContext {
	fc := &filterContext{
		query: strings.ToLower(strings.TrimSpace(c.Query)),
	}

	if !isAll(c.Category) {
		fc.category = c.Category
	}
	if !isAll(c.Price) {
		if b, ok := p.PriceBuckets.Lookup(c.Price); ok {
			fc.price = &b
		}
	}
	if !isAll(c.Duration) {
		if b, ok := p.DurationBuckets.Lookup(c.Duration); ok {
			fc.duration = &b
		}
	}
	if p.RatingEnabled && !isAll(c.Rating) {
		if v, err := strconv.ParseFloat(c.Rating, 64); err == nil {
			fc.minRating, fc.hasRating = v, true
		}
	}
	return fc
}

// Filter returns the items that pass every active predicate. It is pure and
// idempotent; selector values the profile does not know are ignored (callers
// reject them up front with Profile.Validate).
func Filter[T Item](items []T, c Criteria, p Profile) []T {
	fc := newFilterContext(c, p)

	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if fc.matches(it) {
			filtered = append(filtered, it)
		}
	}
	return filtered
}

// matches returns true only if ALL active filters pass
func (fc *filterContext) matches(it Item) bool {
	// Category
	if fc.category != "" && !strings.EqualFold(it.ItemCategory(), fc.category) {
		return false
	}

	// Price
	if fc.price != nil && !fc.price.Contains(it.ItemPrice()) {
		return false
	}

	// Duration
	if fc.duration != nil && !fc.duration.Contains(float64(ParseDays(it.ItemDuration()))) {
		return false
	}

	// Rating
	if fc.hasRating && it.ItemRating() < fc.minRating {
		return false
	}

	// Free text against name OR location (string search is heaviest, do last)
	if fc.query != "" {
		name := strings.ToLower(it.ItemName())
		location := strings.ToLower(it.ItemLocation())
		if !strings.Contains(name, fc.query) && !strings.Contains(location, fc.query) {
			return false
		}
	}

	return true
}
