package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/route-finder/pkg/lifecycle"
	"github.com/robfig/cron/v3"
)

// Retention periodically purges searches older than a fixed window.
type Retention struct {
	sys      System
	window   time.Duration
	schedule string
	now      func() time.Time
	logger   *slog.Logger
	cron     *cron.Cron
}

func NewRetention(sys System, window time.Duration, schedule string, logger *slog.Logger) *Retention {
	return &Retention{
		sys:      sys,
		window:   window,
		schedule: schedule,
		now:      time.Now,
		logger:   logger.With("system", "history.retention"),
	}
}

// Start schedules the purge job, runs one purge as a startup hook, and stops
// the scheduler when the coordinator shuts down.
func (r *Retention) Start(lc *lifecycle.Coordinator) error {
	r.cron = cron.New()

	if _, err := r.cron.AddFunc(r.schedule, func() { r.Run(lc.Context()) }); err != nil {
		return fmt.Errorf("schedule purge %q: %w", r.schedule, err)
	}

	lc.OnStartup(func() { r.Run(lc.Context()) })

	r.cron.Start()
	r.logger.Info("retention scheduled", "schedule", r.schedule, "window", r.window)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		<-r.cron.Stop().Done()
		r.logger.Info("retention stopped")
	})

	return nil
}

// Run purges once. Failures are logged.
func (r *Retention) Run(ctx context.Context) {
	cutoff := r.now().Add(-r.window)

	n, err := r.sys.Purge(ctx, cutoff)
	if err != nil {
		r.logger.Error("purge failed", "error", err)
		return
	}
	r.logger.Debug("purge complete", "removed", n)
}
