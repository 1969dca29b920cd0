package listing

import "sort"

type SortKey string

const (
	SortDefault       SortKey = "default"
	SortPriceLow      SortKey = "price_low"
	SortPriceHigh     SortKey = "price_high"
	SortDurationShort SortKey = "duration_short"
	SortDurationAsc   SortKey = "duration-asc"
	SortRatingDesc    SortKey = "rating-desc"
)

// ParseSortKey accepts the selector values of both listing pages. Empty means default.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case "", SortDefault:
		return SortDefault, nil
	case SortPriceLow, SortPriceHigh, SortDurationShort, SortDurationAsc, SortRatingDesc:
		return k, nil
	}
	return "", &ValidationError{Field: "sort", Value: s}
}

// Sort returns a sorted copy. Ties keep their incoming order so the grid does
// not jump when values are equal. SortDefault and unknown keys return the
// input order unchanged.
func Sort[T Item](items []T, key SortKey) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	if len(sorted) <= 1 {
		return sorted
	}

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ItemPrice() < sorted[j].ItemPrice()
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ItemPrice() > sorted[j].ItemPrice()
		})
	case SortDurationShort, SortDurationAsc:
		// parse once per item, not once per comparison
		days := make([]int, len(sorted))
		order := make([]int, len(sorted))
		for i, it := range sorted {
			days[i] = ParseDays(it.ItemDuration())
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool { return days[order[a]] < days[order[b]] })

		byDays := make([]T, len(sorted))
		for i, from := range order {
			byDays[i] = sorted[from]
		}
		sorted = byDays
	case SortRatingDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ItemRating() > sorted[j].ItemRating()
		})
	}

	return sorted
}

// Recommended is the ordering applied once when a mixed listing is assembled:
// best rated first, cheaper first among equals.
func Recommended[T Item](items []T) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].ItemRating(), sorted[j].ItemRating()
		if ri != rj {
			return ri > rj
		}
		return sorted[i].ItemPrice() < sorted[j].ItemPrice()
	})
	return sorted
}
