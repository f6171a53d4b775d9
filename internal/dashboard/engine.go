package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/couchcryptid/air-quality-dashboard/internal/observability"
)

// Store is the read-only record store the engine filters.
type Store interface {
	Filter(sel domain.Selection) domain.View
	FullSelection() domain.Selection
	Len() int
}

// Publisher ships freshly computed snapshots to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, snap Snapshot) error
}

// Engine recomputes the dashboard for a selection. Each call is a full,
// synchronous recompute from the record store unless the selection is cached.
type Engine struct {
	store     Store
	publisher Publisher
	cache     *snapshotCache
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates an Engine. A nil publisher disables publishing and a
// cacheSize of zero disables caching.
func New(store Store, publisher Publisher, logger *slog.Logger, metrics *observability.Metrics, cacheSize int) *Engine {
	e := &Engine{
		store:     store,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
	if cacheSize > 0 {
		e.cache = newSnapshotCache(cacheSize)
	}
	metrics.RecordsLoaded.Set(float64(store.Len()))
	return e
}

// CheckReadiness returns nil once the record store holds observations.
func (e *Engine) CheckReadiness(_ context.Context) error {
	if e.store.Len() == 0 {
		return errors.New("record store is empty")
	}
	return nil
}

// Options returns the selectable years and stations.
func (e *Engine) Options() Options {
	full := e.store.FullSelection()
	return Options{Years: full.Years, Stations: full.Stations}
}

// Compute returns the snapshot for sel, recomputing it unless cached.
func (e *Engine) Compute(ctx context.Context, sel domain.Selection) Snapshot {
	key := sel.Key()

	if e.cache != nil {
		if snap, ok := e.cache.get(key); ok {
			e.metrics.SnapshotCache.WithLabelValues("hit").Inc()
			return snap
		}
		e.metrics.SnapshotCache.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	snap := Build(sel, e.store.Filter(sel))
	e.metrics.Recomputations.Inc()
	e.metrics.RecomputeDuration.Observe(time.Since(start).Seconds())

	if snap.RankInsufficient {
		e.metrics.RankInsufficient.Inc()
	}

	e.logger.Debug("dashboard recomputed",
		"selection", key,
		"observations", snap.Observations,
		"duration", time.Since(start),
	)

	if e.cache != nil {
		e.cache.put(key, snap)
	}

	e.publish(ctx, key, snap)
	return snap
}

// publish is best-effort: failures are logged and counted but never surface
// to the caller.
func (e *Engine) publish(ctx context.Context, key string, snap Snapshot) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, snap); err != nil {
		e.metrics.PublishErrors.Inc()
		e.logger.Warn("snapshot publish failed", "error", err, "selection", key)
		return
	}
	e.metrics.SnapshotsPublished.Inc()
}
