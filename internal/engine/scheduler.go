// Package engine schedules background price check sweeps. The API serves
// on-demand sweeps without it; the scheduler only exists for deployments
// that want checks to run unattended.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	domain "github.com/donaldgifford/price-alert-api/pkg/types"
)

// Sweeper runs one price check pass at the given instant.
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) (*domain.SweepResult, error)
}

// Scheduler runs periodic sweeps on a fixed interval.
type Scheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
	log     *slog.Logger
}

// NewScheduler creates a Scheduler that sweeps every interval. The interval
// must be positive; callers that want no background sweeps simply do not
// construct a Scheduler.
func NewScheduler(s Sweeper, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	c := cron.New()

	sched := &Scheduler{
		cron:    c,
		sweeper: s,
		log:     log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), sched.runSweep); err != nil {
		return nil, err
	}

	return sched, nil
}

// Start begins running scheduled sweeps.
func (s *Scheduler) Start() {
	s.log.Info("sweep scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for a running sweep to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("sweep scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runSweep() {
	ctx := context.Background()
	s.log.Info("scheduled sweep starting")

	result, err := s.sweeper.Sweep(ctx, time.Now().UTC())
	if err != nil {
		s.log.Error("scheduled sweep failed", "error", err)
		return
	}

	s.log.Info("scheduled sweep finished",
		"checked", result.Checked,
		"triggered", result.Triggered,
	)
}
