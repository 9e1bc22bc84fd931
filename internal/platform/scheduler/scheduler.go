// Package scheduler runs periodic background jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Refresher regenerates the stored bond snapshot.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler manages the background market refresh task.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	ctx       context.Context
}

// NewScheduler creates a Scheduler bound to the given context.
func NewScheduler(ctx context.Context, refresher Refresher) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		refresher: refresher,
		ctx:       ctx,
	}
}

// Register adds the periodic refresh task. spec accepts the usual cron
// expressions plus the @every shorthand (e.g., "@every 30s").
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("scheduler stopped")
}

func (s *Scheduler) refreshTask() {
	if err := s.refresher.Refresh(s.ctx); err != nil {
		slog.Error("scheduled refresh failed", "error", err)
	}
}
