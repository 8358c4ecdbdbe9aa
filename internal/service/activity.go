package service

import (
	"context"
	"log/slog"
	"time"

	"admin-dashboard/internal/cache"
	"admin-dashboard/internal/database"
	"admin-dashboard/internal/logging"
	"admin-dashboard/internal/store"
	"admin-dashboard/internal/worker"
)

// StatsCacheKey holds the cached GET /stats body.
const StatsCacheKey = "stats:summary"

const recordTimeout = 5 * time.Second

var insertActivity = store.InsertActivity

// Recorder logs mutations to the activity feed.
type Recorder interface {
	Record(user, action, amount string)
}

// ActivityRecorder writes activity entries on the worker pool and drops
// the cached stats so the next GET /stats recomputes them.
type ActivityRecorder struct {
	db     database.DB
	cache  cache.Cache
	pool   worker.Pool
	logger *slog.Logger
}

func NewActivityRecorder(db database.DB, cch cache.Cache, pool worker.Pool, logger *slog.Logger) *ActivityRecorder {
	return &ActivityRecorder{db: db, cache: cch, pool: pool, logger: logging.OrNop(logger)}
}

// Record returns once the task is queued; failures are only logged.
func (r *ActivityRecorder) Record(user, action, amount string) {
	r.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := insertActivity(ctx, r.db, user, action, amount); err != nil {
			r.logger.Warn("record activity", "action", action, "error", err)
		}
		if err := r.cache.Del(ctx, StatsCacheKey).Err(); err != nil {
			r.logger.Warn("invalidate stats cache", "error", err)
		}
	})
}
