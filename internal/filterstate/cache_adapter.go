package filterstate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tripfinder/internal/listing"
	"tripfinder/pkg/cache"
)

// field suffixes appended to the profile prefix, e.g. fd_price
const (
	keyCategory = "filter"
	keyPrice    = "price"
	keyDuration = "duration"
	keySort     = "sort"
	keySearch   = "search"
	keyRating   = "rating"
	keyPage     = "page"
)

// CacheAdapter keeps a tab's filter selections as plain string keys under
// session:<sid>:<prefix>_<field>.
type CacheAdapter struct {
	cache     cache.Cache
	sessionID string
	profile   listing.Profile
	ttl       time.Duration
}

func NewCacheAdapter(c cache.Cache, sessionID string, profile listing.Profile, ttl time.Duration) *CacheAdapter {
	return &CacheAdapter{
		cache:     c,
		sessionID: sessionID,
		profile:   profile,
		ttl:       ttl,
	}
}

// CacheOpener opens CacheAdapters that share c.
func CacheOpener(c cache.Cache, ttl time.Duration) Opener {
	return func(sessionID string, profile listing.Profile) PersistenceAdapter {
		return NewCacheAdapter(c, sessionID, profile, ttl)
	}
}

func (a *CacheAdapter) key(field string) string {
	return fmt.Sprintf("session:%s:%s_%s", a.sessionID, a.profile.Prefix, field)
}

func (a *CacheAdapter) fields() []string {
	fields := []string{keyCategory, keyPrice, keyDuration, keySort, keySearch, keyPage}
	if a.profile.RatingEnabled {
		fields = append(fields, keyRating)
	}
	return fields
}

// Keys lists every key this adapter may write.
func (a *CacheAdapter) Keys() []string {
	fields := a.fields()
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, a.key(f))
	}
	return keys
}

func (a *CacheAdapter) Load(ctx context.Context) (FilterState, error) {
	state := Default()

	for _, f := range a.fields() {
		v, err := a.cache.Get(ctx, a.key(f))
		if errors.Is(err, cache.ErrMiss) {
			continue
		}
		if err != nil {
			return Default(), fmt.Errorf("load %s: %w", a.key(f), err)
		}
		a.assign(&state, f, v)
	}
	return state, nil
}

func (a *CacheAdapter) assign(state *FilterState, field, v string) {
	switch field {
	case keyCategory:
		state.Category = v
	case keyPrice:
		state.Price = v
	case keyDuration:
		state.Duration = v
	case keySort:
		state.Sort = v
	case keySearch:
		state.Query = v
	case keyRating:
		state.Rating = v
	case keyPage:
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			state.Page = n
		}
	}
}

func (a *CacheAdapter) value(state FilterState, field string) string {
	switch field {
	case keyCategory:
		return state.Category
	case keyPrice:
		return state.Price
	case keyDuration:
		return state.Duration
	case keySort:
		return state.Sort
	case keySearch:
		return state.Query
	case keyRating:
		return state.Rating
	case keyPage:
		return strconv.Itoa(state.Page)
	}
	return ""
}

func (a *CacheAdapter) Save(ctx context.Context, state FilterState) error {
	var errs []error
	for _, f := range a.fields() {
		if err := a.cache.Set(ctx, a.key(f), a.value(state, f), a.ttl); err != nil {
			errs = append(errs, fmt.Errorf("save %s: %w", a.key(f), err))
		}
	}
	return errors.Join(errs...)
}

func (a *CacheAdapter) Clear(ctx context.Context) error {
	if err := a.cache.Del(ctx, a.Keys()...); err != nil {
		return fmt.Errorf("clear session %s: %w", a.sessionID, err)
	}
	return nil
}
