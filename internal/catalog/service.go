package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"tripfinder/internal/listing"
	"tripfinder/pkg/apperror"
	"tripfinder/pkg/backend"
	"tripfinder/pkg/cache"
	"tripfinder/pkg/logger"
)

type Backend interface {
	ListDestinations(ctx context.Context, q backend.ListQuery) ([]listing.RawDestination, error)
	ListPackages(ctx context.Context, q backend.ListQuery) ([]listing.RawPackage, error)
	ListFixedDepartures(ctx context.Context) ([]listing.RawFixedDeparture, error)
	FixedDepartureBySlug(ctx context.Context, slug string) (listing.RawFixedDeparture, error)
}

// Service assembles the listing collections from the backend and keeps the
// assembled result in the cache for a short while.
type Service struct {
	backend Backend
	cache   cache.Cache
	ttl     time.Duration
	limit   int
	logger  logger.Logger
}

func NewService(b Backend, c cache.Cache, ttlMinutes int, limit int, log logger.Logger) *Service {
	return &Service{
		backend: b,
		cache:   c,
		ttl:     time.Duration(ttlMinutes) * time.Minute,
		limit:   limit,
		logger:  log,
	}
}

// Packages returns destinations and packages merged into one list, in
// recommended order. A failing endpoint contributes nothing; the call only
// fails when both do. Partial lists are not cached.
func (s *Service) Packages(ctx context.Context) ([]listing.ListingItem, error) {
	cacheKey := fmt.Sprintf("catalog:packages:%d", s.limit)

	var items []listing.ListingItem
	if s.fromCache(ctx, cacheKey, &items) {
		return items, nil
	}

	var (
		destinations []listing.RawDestination
		packages     []listing.RawPackage
		destErr      error
		pkgErr       error
	)
	q := backend.ListQuery{Limit: s.limit}

	var g errgroup.Group
	g.Go(func() error {
		destinations, destErr = s.backend.ListDestinations(ctx, q)
		return nil
	})
	g.Go(func() error {
		packages, pkgErr = s.backend.ListPackages(ctx, q)
		return nil
	})
	_ = g.Wait()

	if destErr != nil && pkgErr != nil {
		return nil, errors.Join(destErr, pkgErr)
	}
	if destErr != nil {
		s.logger.Warn("failed to fetch destinations", logger.Field{Key: "err", Value: destErr})
		destinations = nil
	}
	if pkgErr != nil {
		s.logger.Warn("failed to fetch packages", logger.Field{Key: "err", Value: pkgErr})
		packages = nil
	}

	items = make([]listing.ListingItem, 0, len(destinations)+len(packages))
	for _, d := range destinations {
		items = append(items, listing.FromDestination(d))
	}
	for _, p := range packages {
		items = append(items, listing.FromPackage(p))
	}
	items = listing.Recommended(items)

	if destErr == nil && pkgErr == nil {
		s.toCache(cacheKey, items)
	}
	return items, nil
}

func (s *Service) FixedDepartures(ctx context.Context) ([]listing.DepartureRecord, error) {
	const cacheKey = "catalog:fixed-departures"

	var records []listing.DepartureRecord
	if s.fromCache(ctx, cacheKey, &records) {
		return records, nil
	}

	raws, err := s.backend.ListFixedDepartures(ctx)
	if err != nil {
		return nil, err
	}

	records = make([]listing.DepartureRecord, 0, len(raws))
	for _, r := range raws {
		records = append(records, listing.FromFixedDeparture(r))
	}

	s.toCache(cacheKey, records)
	return records, nil
}

// FixedDeparture loads one departure for its detail page. Urgency is always
// derived fresh from the seat counts.
func (s *Service) FixedDeparture(ctx context.Context, slug string) (listing.DepartureRecord, error) {
	raw, err := s.backend.FixedDepartureBySlug(ctx, slug)
	if err != nil {
		var rfe *backend.RemoteFetchError
		if errors.As(err, &rfe) && rfe.StatusCode == http.StatusNotFound {
			return listing.DepartureRecord{}, apperror.NotFound("fixed departure not found")
		}
		return listing.DepartureRecord{}, err
	}
	if raw.ID == "" && raw.Slug == "" {
		return listing.DepartureRecord{}, apperror.NotFound("fixed departure not found")
	}
	return listing.FromFixedDeparture(raw), nil
}

func (s *Service) fromCache(ctx context.Context, key string, out any) bool {
	cached, err := s.cache.Get(ctx, key)
	if err != nil || cached == "" {
		if err != nil && !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("catalog cache read failed", logger.Field{Key: "err", Value: err})
		}
		return false
	}
	if err := json.Unmarshal([]byte(cached), out); err != nil {
		s.logger.Error("failed to unmarshal cached catalog", logger.Field{Key: "err", Value: err})
		return false
	}
	s.logger.Debug("catalog cache hit", logger.Field{Key: "cache_key", Value: key})
	return true
}

func (s *Service) toCache(key string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("failed to marshal catalog", logger.Field{Key: "err", Value: err})
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.cache.Set(ctx, key, string(body), s.ttl); err != nil {
			s.logger.Error("failed to cache catalog", logger.Field{Key: "err", Value: err})
		}
	}()
}
