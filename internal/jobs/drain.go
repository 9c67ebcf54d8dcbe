// Package jobs runs the settlement drain on a schedule.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iskorotkov/referral-ledger/internal/domain"
	"github.com/robfig/cron/v3"
)

type Drainer interface {
	DrainPending(ctx context.Context, batchSize int) (domain.DrainResult, error)
}

type Config struct {
	Schedule  string
	BatchSize int
	Timeout   time.Duration
}

// Scheduler triggers drains. A run still in progress when the next tick fires
// makes that tick a no-op, so at most one drain runs per process.
type Scheduler struct {
	cron *cron.Cron
	d    Drainer
	cfg  Config
}

func NewScheduler(d Drainer, cfg Config) (*Scheduler, error) {
	logger := cronLogger{}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	s := &Scheduler{
		cron: c,
		d:    d,
		cfg:  cfg,
	}

	if _, err := c.AddFunc(cfg.Schedule, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("schedule drain %q: %w", cfg.Schedule, err)
	}

	return s, nil
}

// RunOnce drains one batch and logs the outcome.
func (s *Scheduler) RunOnce(ctx context.Context) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	result, err := s.d.DrainPending(ctx, s.cfg.BatchSize)
	if err != nil {
		slog.ErrorContext(ctx, "drain failed", "error", err)
		return
	}

	if failed := result.Failed(); failed > 0 {
		slog.WarnContext(ctx, "drain finished with failures",
			"attempted", result.Attempted,
			"failed", failed)
	}
}

func (s *Scheduler) Start() {
	slog.Info("starting drain scheduler", "schedule", s.cfg.Schedule, "batch_size", s.cfg.BatchSize)
	s.cron.Start()
}

// Stop stops scheduling and waits for a running drain until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for running drain: %w", ctx.Err())
	}
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error(msg, append(keysAndValues, "error", err)...)
}
