package catalog

import (
	"context"
	"sort"
	"strings"

	"tripfinder/internal/filterstate"
	"tripfinder/internal/listing"
	"tripfinder/pkg/logger"
)

type ViewState string

const (
	ViewOK    ViewState = "ok"
	ViewEmpty ViewState = "empty"
	ViewError ViewState = "error"
)

// Options lists what the selectors can offer on a page.
type Options struct {
	Categories      []string         `json:"categories"`
	PriceBuckets    []listing.Bucket `json:"price_buckets"`
	DurationBuckets []listing.Bucket `json:"duration_buckets"`
	RatingOptions   []float64        `json:"rating_options,omitempty"`
}

// View is one rendered listing page. State "error" means the backend could not
// be reached and Items is empty for that reason, not because nothing matched.
type View[T any] struct {
	Context     string                  `json:"context"`
	State       ViewState               `json:"state"`
	Filters     filterstate.FilterState `json:"filters"`
	Page        listing.Page[T]         `json:"page"`
	Options     Options                 `json:"options"`
	ScrollToTop bool                    `json:"scroll_to_top"`
	Retryable   bool                    `json:"retryable,omitempty"`
}

func (s *Service) BrowsePackages(ctx context.Context, st filterstate.FilterState) View[listing.ListingItem] {
	items, err := s.Packages(ctx)
	if err != nil {
		s.logger.Error("failed to load packages",
			logger.Field{Key: "err", Value: err},
		)
	}
	return browse(items, err, listing.Packages, st, s.logger)
}

func (s *Service) BrowseFixedDepartures(ctx context.Context, st filterstate.FilterState) View[listing.DepartureRecord] {
	items, err := s.FixedDepartures(ctx)
	if err != nil {
		s.logger.Error("failed to load fixed departures",
			logger.Field{Key: "err", Value: err},
		)
	}
	return browse(items, err, listing.FixedDepartures, st, s.logger)
}

// browse runs raw items through filter, sort and paginate. A fetch error
// yields an empty page in the error state.
func browse[T listing.Item](items []T, fetchErr error, p listing.Profile, st filterstate.FilterState, log logger.Logger) View[T] {
	if fetchErr != nil {
		items = nil
	}

	key, err := listing.ParseSortKey(st.Sort)
	if err != nil {
		log.Warn("unknown sort key ignored", logger.Field{Key: "sort", Value: st.Sort})
		key = listing.SortDefault
	}

	filtered := listing.Filter(items, st.Criteria, p)
	sorted := listing.Sort(filtered, key)
	page := listing.Paginate(sorted, p.PageSize, st.Page)

	view := View[T]{
		Context: p.Name,
		State:   ViewOK,
		Filters: st,
		Page:    page,
		Options: Options{
			Categories:      categories(items),
			PriceBuckets:    p.PriceBuckets,
			DurationBuckets: p.DurationBuckets,
			RatingOptions:   p.RatingOptions,
		},
	}
	view.Filters.Page = page.CurrentPage

	switch {
	case fetchErr != nil:
		view.State = ViewError
		view.Retryable = true
	case len(sorted) == 0:
		view.State = ViewEmpty
	}
	return view
}

// categories returns the distinct non-empty categories, first spelling wins.
func categories[T listing.Item](items []T) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, it := range items {
		c := strings.TrimSpace(it.ItemCategory())
		if c == "" {
			continue
		}
		k := strings.ToLower(c)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
