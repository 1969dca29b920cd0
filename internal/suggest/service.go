package suggest

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tripfinder/pkg/cache"
	"tripfinder/pkg/logger"
)

type Service struct {
	aggregator *Aggregator
	cache      cache.Cache
	ttl        time.Duration
	logger     logger.Logger
}

func NewService(aggregator *Aggregator, c cache.Cache, ttl time.Duration, log logger.Logger) *Service {
	return &Service{
		aggregator: aggregator,
		cache:      c,
		ttl:        ttl,
		logger:     log,
	}
}

// cleanQuery trims and collapses whitespace; case is kept for the backend.
func cleanQuery(q string) string {
	return strings.Join(strings.Fields(q), " ")
}

// generateCacheKey creates a deterministic key from the case-folded query
func (s *Service) generateCacheKey(q string) string {
	hash := sha256.Sum256([]byte("suggest:" + strings.ToLower(q)))
	return fmt.Sprintf("suggest:query:%x", hash[:16])
}

// Suggest serves from cache when it can. Only successful aggregations are
// cached, so a failing backend is retried on the next call.
func (s *Service) Suggest(ctx context.Context, q string) (*Response, error) {
	q = cleanQuery(q)
	if q == "" {
		return &Response{Query: q, Suggestions: []Suggestion{}}, nil
	}

	cacheKey := s.generateCacheKey(q)

	cached, err := s.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var resp Response
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			s.logger.Debug("suggest cache hit", logger.Field{Key: "cache_key", Value: cacheKey})
			resp.Query = q
			resp.Metadata.CacheHit = true
			resp.Metadata.CacheKey = cacheKey
			return &resp, nil
		}
		s.logger.Error("failed to unmarshal cached suggestions", logger.Field{Key: "err", Value: err})
	}

	items, meta, err := s.aggregator.Suggest(ctx, q)
	if err != nil {
		return nil, err
	}
	meta.CacheKey = cacheKey

	resp := &Response{Query: q, Suggestions: items, Metadata: meta}

	body, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("failed to marshal suggestions", logger.Field{Key: "err", Value: err})
		return resp, nil
	}

	// the caller may already be gone; the write should still land
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.cache.Set(ctx, cacheKey, string(body), s.ttl); err != nil {
			s.logger.Error("failed to cache suggestions", logger.Field{Key: "err", Value: err})
		}
	}()

	return resp, nil
}
