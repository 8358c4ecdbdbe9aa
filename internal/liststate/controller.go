package liststate

import (
	"context"
	"log/slog"
	"sync"

	"admin-dashboard/internal/logging"
)

// Fetcher loads a fresh snapshot from the server.
type Fetcher[S any] func(ctx context.Context) (S, error)

// Controller owns one section's snapshot. It never patches the snapshot
// locally: every change goes through a full re-fetch.
type Controller[S any] struct {
	fetch        Fetcher[S]
	errorMessage string
	fallback     *S
	logger       *slog.Logger

	lifetime context.Context
	stop     context.CancelFunc

	mu     sync.Mutex
	state  State[S]
	gen    uint64
	closed bool
}

// Option configures a Controller.
type Option[S any] func(*Controller[S])

// WithErrorMessage sets the text shown when the fetch fails.
func WithErrorMessage[S any](message string) Option[S] {
	return func(c *Controller[S]) {
		c.errorMessage = message
	}
}

// WithFallback makes a failed fetch resolve to Ready(data) instead of
// Error. The failure is only logged.
func WithFallback[S any](data S) Option[S] {
	return func(c *Controller[S]) {
		c.fallback = &data
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger[S any](logger *slog.Logger) Option[S] {
	return func(c *Controller[S]) {
		c.logger = logging.OrNop(logger)
	}
}

// New creates a controller in the Loading state. Nothing is fetched until
// Refresh.
func New[S any](fetch Fetcher[S], opts ...Option[S]) *Controller[S] {
	lifetime, stop := context.WithCancel(context.Background())
	c := &Controller[S]{
		fetch:        fetch,
		errorMessage: "No se pudieron cargar los datos.",
		logger:       logging.Nop(),
		lifetime:     lifetime,
		stop:         stop,
		state:        Loading[S](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller[S]) State() State[S] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Refresh enters Loading, fetches once and stores the outcome. The result
// is dropped if the controller was closed or another Refresh started in
// the meantime; the state current at that point is returned instead.
func (c *Controller[S]) Refresh(ctx context.Context) State[S] {
	c.mu.Lock()
	if c.closed {
		state := c.state
		c.mu.Unlock()
		return state
	}
	c.gen++
	gen := c.gen
	c.state = Loading[S]()
	c.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	release := context.AfterFunc(c.lifetime, cancel)
	defer release()

	data, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		c.logger.Debug("discarding stale fetch", "generation", gen)
		return c.state
	}
	switch {
	case err == nil:
		c.state = Ready(data)
	case c.fallback != nil:
		c.logger.Warn("fetch failed, using fallback data", "error", err)
		c.state = Ready(*c.fallback)
	default:
		c.logger.Debug("fetch failed", "error", err)
		c.state = Failed[S](c.errorMessage)
	}
	return c.state
}

// Reload is Refresh without the result.
func (c *Controller[S]) Reload(ctx context.Context) {
	c.Refresh(ctx)
}

// Fail puts the controller into Error with message. Mutations use it to
// surface their failures. A Refresh still in flight is discarded.
func (c *Controller[S]) Fail(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.gen++
	c.state = Failed[S](message)
}

// Close ends the controller's lifetime: an in-flight fetch is cancelled
// and no later result or failure changes the state.
func (c *Controller[S]) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.stop()
}

// Closed reports whether Close was called.
func (c *Controller[S]) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
