package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"tripfinder/pkg/logger"
)

const instrumentationName = "tripfinder/internal/suggest"

// Fetcher calls one suggest endpoint.
type Fetcher interface {
	Suggest(ctx context.Context, path, q string) ([]json.RawMessage, error)
}

// Aggregator fans a query out to every source and merges what comes back.
type Aggregator struct {
	fetcher  Fetcher
	sources  []Source
	timeout  time.Duration
	logger   logger.Logger
	tracer   trace.Tracer
	outcomes metric.Int64Counter
}

func NewAggregator(fetcher Fetcher, sources []Source, timeout time.Duration, log logger.Logger) *Aggregator {
	meter := otel.Meter(instrumentationName)
	outcomes, err := meter.Int64Counter(
		"suggest.source.requests",
		metric.WithDescription("Suggest source requests by outcome"),
	)
	if err != nil {
		log.Warn("failed to create suggest counter", logger.Field{Key: "err", Value: err})
	}

	return &Aggregator{
		fetcher:  fetcher,
		sources:  sources,
		timeout:  timeout,
		logger:   log,
		tracer:   otel.Tracer(instrumentationName),
		outcomes: outcomes,
	}
}

// sourceResult mirrors one source's outcome; a failed source has Err set and
// contributes nothing.
type sourceResult struct {
	Source string
	Items  []json.RawMessage
	Err    error
}

// Suggest returns at most MaxResults ranked suggestions for q. A blank query
// returns nothing without calling any source. It fails with *FetchError only
// when every source failed.
func (a *Aggregator) Suggest(ctx context.Context, q string) ([]Suggestion, Metadata, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []Suggestion{}, Metadata{}, nil
	}

	start := time.Now()
	results := make([]sourceResult, len(a.sources))

	// goroutines never return an error so one failing source cannot cancel the rest
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range a.sources {
		g.Go(func() error {
			results[i] = a.fetch(gctx, src, q)
			return nil
		})
	}
	_ = g.Wait()

	meta := Metadata{SourcesQueried: len(a.sources)}
	lists := make([][]json.RawMessage, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			meta.SourcesFailed++
			errs = append(errs, fmt.Errorf("%s: %w", r.Source, r.Err))
			continue
		}
		meta.SourcesSucceeded++
		lists = append(lists, r.Items)
	}
	meta.SearchTimeMs = time.Since(start).Milliseconds()

	if len(a.sources) > 0 && meta.SourcesSucceeded == 0 {
		a.logger.Error("all suggest sources failed",
			logger.Field{Key: "query", Value: q},
			logger.Field{Key: "sources", Value: len(a.sources)},
		)
		return nil, meta, &FetchError{Errs: errs}
	}

	merged := rank(merge(lists))
	a.logger.Debug("suggestions aggregated",
		logger.Field{Key: "query", Value: q},
		logger.Field{Key: "results", Value: len(merged)},
		logger.Field{Key: "sources_failed", Value: meta.SourcesFailed},
		logger.Field{Key: "search_time_ms", Value: meta.SearchTimeMs},
	)
	return merged, meta, nil
}

func (a *Aggregator) fetch(ctx context.Context, src Source, q string) sourceResult {
	ctx, span := a.tracer.Start(ctx, "suggest."+src.Name,
		trace.WithAttributes(attribute.String("suggest.source", src.Name)),
	)
	defer span.End()

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	items, err := a.fetcher.Suggest(ctx, src.Path, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "source failed")
		a.count(ctx, src.Name, "error")
		a.logger.Warn("suggest source failed",
			logger.Field{Key: "source", Value: src.Name},
			logger.Field{Key: "err", Value: err},
		)
		return sourceResult{Source: src.Name, Err: err}
	}

	span.SetAttributes(attribute.Int("suggest.results", len(items)))
	a.count(ctx, src.Name, "ok")
	return sourceResult{Source: src.Name, Items: items}
}

func (a *Aggregator) count(ctx context.Context, source, outcome string) {
	if a.outcomes == nil {
		return
	}
	a.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
		attribute.String("outcome", outcome),
	))
}
