package runner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/FrancoisGib/cron-dsl/pkg/registry"
)

// Executor runs the command payload of a due entry. The engine never
// interprets commands itself; the executor is where the caller decides
// what an entry's command means.
type Executor func(ctx context.Context, e *registry.Entry) error

// Runner polls a registry once per interval and executes every due entry
// in its own goroutine.
type Runner struct {
	registry *registry.Registry
	exec     Executor
	config   Config
	wg       sync.WaitGroup
}

// New creates a runner over the registry.
func New(reg *registry.Registry, exec Executor, opts ...Option) *Runner {
	config := Config{
		Interval: time.Minute,
		Now:      time.Now,
		Logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt.Apply(&config)
	}
	return &Runner{registry: reg, exec: exec, config: config}
}

// Start polls immediately and then once per interval. It blocks until the
// context is cancelled, then waits for in-flight commands to finish.
func (r *Runner) Start(ctx context.Context) error {
	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	r.config.Logger.Info("runner started", "entries", r.registry.Len())
	for {
		r.RunDue(ctx, r.config.Now())
		select {
		case <-ticker.C:
		case <-ctx.Done():
			r.wg.Wait()
			r.config.Logger.Info("runner stopped")
			return ctx.Err()
		}
	}
}

// RunDue executes every entry due at the given instant. Exposed so callers
// driving their own clock can trigger a poll directly.
func (r *Runner) RunDue(ctx context.Context, now time.Time) {
	for _, e := range r.registry.DueAt(now) {
		r.wg.Add(1)
		go func(e *registry.Entry) {
			defer r.wg.Done()
			defer func() {
				if rec := recover(); rec != nil {
					r.config.Logger.Error("command panicked", "entry", e.Name, "panic", rec)
				}
			}()
			if err := r.exec(ctx, e); err != nil {
				r.config.Logger.Error("command failed", "entry", e.Name, "error", err)
				return
			}
			r.config.Logger.Info("command completed", "entry", e.Name)
		}(e)
	}
}

// Wait blocks until all in-flight commands have finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}
