package api

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/katiamach/rainfall-console/internal/logger"
)

// Resyncer reloads the station list.
type Resyncer interface {
	Resync(ctx context.Context) error
}

// Scheduler resyncs the stations on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	target  Resyncer
	timeout time.Duration
}

// NewScheduler creates new Scheduler running target on spec, a standard
// five-field cron expression or descriptor such as "@every 5m".
func NewScheduler(spec string, target Resyncer, timeout time.Duration) (*Scheduler, error) {
	cronLogger := cron.PrintfLogger(logger.WithFields(logger.Fields{"component": "resync"}))

	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger)),
		),
		target:  target,
		timeout: timeout,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("failed to schedule resync %q: %w", spec, err)
	}

	return s, nil
}

// Start runs the schedule in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running resync to finish or ctx
// to be done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) run() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.target.Resync(ctx); err != nil {
		logger.Error(err)
		return
	}

	logger.Debug("stations resynced")
}
