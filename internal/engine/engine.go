// Package engine orchestrates catalog ingestion and deal comparison.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kagiso-dev/flyer-deals/internal/catalog"
	"github.com/kagiso-dev/flyer-deals/internal/flyer"
	"github.com/kagiso-dev/flyer-deals/internal/metrics"
	"github.com/kagiso-dev/flyer-deals/pkg/compare"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

// Engine ties the flyer feed to the in-memory catalog and runs
// comparisons against the current snapshot.
type Engine struct {
	catalog *catalog.Catalog
	client  flyer.CatalogClient
	matcher compare.Matcher
	log     *slog.Logger
	tracer  trace.Tracer

	mu     sync.Mutex
	cursor string
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(cat *catalog.Catalog, client flyer.CatalogClient, opts ...EngineOption) *Engine {
	eng := &Engine{
		catalog: cat,
		client:  client,
		matcher: compare.NewMatcher(),
		log:     slog.Default(),
		tracer:  otel.Tracer("github.com/kagiso-dev/flyer-deals/internal/engine"),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithMatcher sets the matcher used for comparisons.
func WithMatcher(m compare.Matcher) EngineOption {
	return func(e *Engine) {
		e.matcher = m
	}
}

// RunRefresh replaces the whole catalog with a fresh fetch of the feed.
func (eng *Engine) RunRefresh(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.CatalogRefreshDuration.Observe(time.Since(start).Seconds())
	}()

	deals, err := eng.client.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetching catalog: %w", err)
	}

	eng.catalog.ReplaceAll(deals)
	metrics.CatalogDeals.Set(float64(eng.catalog.Len()))

	eng.log.Info("catalog refreshed", "deals", len(deals))
	return nil
}

// RunSync fetches incremental events since the last cursor and applies
// them to the catalog. The cursor advances only on success.
func (eng *Engine) RunSync(ctx context.Context) error {
	eng.mu.Lock()
	cursor := eng.cursor
	eng.mu.Unlock()

	events, next, err := eng.client.FetchEvents(ctx, cursor)
	if err != nil {
		return fmt.Errorf("fetching catalog events: %w", err)
	}

	eng.catalog.Apply(events)
	for _, ev := range events {
		metrics.CatalogEventsTotal.WithLabelValues(string(ev.Kind)).Inc()
	}
	metrics.CatalogDeals.Set(float64(eng.catalog.Len()))

	eng.mu.Lock()
	eng.cursor = next
	eng.mu.Unlock()

	if len(events) > 0 {
		eng.log.Info("catalog synced", "events", len(events), "cursor", next)
	}
	return nil
}

// Compare builds comparison groups for the picked items against the
// current catalog snapshot.
func (eng *Engine) Compare(ctx context.Context, picks []domain.PickedItem) []domain.ComparisonGroup {
	_, span := eng.tracer.Start(ctx, "engine.Compare",
		trace.WithAttributes(attribute.Int("picks", len(picks))),
	)
	defer span.End()

	start := time.Now()
	groups := compare.BuildGroups(picks, eng.catalog.Snapshot(), eng.matcher)

	metrics.CompareRunsTotal.Inc()
	metrics.CompareDuration.Observe(time.Since(start).Seconds())
	for _, g := range groups {
		metrics.CompareGroupSize.Observe(float64(len(g.Deals)))
	}
	span.SetAttributes(attribute.Int("groups", len(groups)))

	return groups
}

// Cursor returns the current sync cursor.
func (eng *Engine) Cursor() string {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return eng.cursor
}
