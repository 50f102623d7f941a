package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"rental-ops/internal/reservation"
	"rental-ops/pkg/log"
)

const defaultTimeout = 2 * time.Minute

// Config drives the calendar sync schedule.
type Config struct {
	// Spec is a 5-field cron expression or a descriptor such as "@every 15m".
	Spec    string
	Timeout time.Duration
}

// Scheduler periodically pulls every linked calendar into the reservation store.
type Scheduler struct {
	l       log.Logger
	uc      reservation.UseCase
	cron    *cron.Cron
	timeout time.Duration
	now     func() time.Time
}

// New parses cfg.Spec and registers the sync job. Overlapping runs are skipped.
func New(l log.Logger, uc reservation.UseCase, cfg Config) (*Scheduler, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cl := cronLogger{l: l}
	c := cron.New(
		cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow|cron.Descriptor)),
		cron.WithLocation(time.UTC),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	s := &Scheduler{l: l, uc: uc, cron: c, timeout: timeout, now: time.Now}
	if _, err := c.AddFunc(cfg.Spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid sync schedule %q: %w", cfg.Spec, err)
	}
	return s, nil
}

// RunOnce performs one full sync bounded by the configured timeout.
func (s *Scheduler) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := s.now()
	out, err := s.uc.SyncAll(ctx, started.UTC())
	if err != nil {
		s.l.Errorf(ctx, "reservation.job.RunOnce: %v", err)
		return
	}
	for id, ferr := range out.Failed {
		s.l.Warnf(ctx, "reservation.job.RunOnce: property %s failed: %v", id, ferr)
	}
	s.l.Infof(ctx, "reservation.job.RunOnce: synced=%d failed=%d in %s",
		len(out.Results), len(out.Failed), s.now().Sub(started).Round(time.Millisecond))
}

// Start runs the schedule until ctx is done, then waits for a running sync to finish.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	s.l.Infof(ctx, "reservation.job: scheduler started, next run at %s", s.cron.Entries()[0].Next.Format(time.RFC3339))

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.l.Info(context.Background(), "reservation.job: scheduler stopped")
}

// cronLogger routes cron's own diagnostics through the service logger.
type cronLogger struct {
	l log.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debugf(context.Background(), "cron: %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Errorf(context.Background(), "cron: %s: %v %v", msg, err, keysAndValues)
}
