// Package scheduler runs periodic maintenance jobs using robfig/cron.
package scheduler

import (
	"context"
	"time"

	"github.com/grachmannico95/wallet-import/pkg/logger"
	"github.com/robfig/cron/v3"
)

// SessionExpirer drops import sessions idle for longer than ttl.
type SessionExpirer interface {
	ExpireIdle(ctx context.Context, ttl time.Duration) int
}

// Sweeper discards idle import sessions on a cron schedule.
type Sweeper struct {
	cron     *cron.Cron
	schedule string
	ttl      time.Duration
	expirer  SessionExpirer
	logger   *logger.Logger
}

func NewSweeper(expirer SessionExpirer, schedule string, ttl time.Duration, log *logger.Logger) *Sweeper {
	c := cron.New(cron.WithLogger(cron.PrintfLogger(log)))

	return &Sweeper{
		cron:     c,
		schedule: schedule,
		ttl:      ttl,
		expirer:  expirer,
		logger:   log,
	}
}

// Start registers the sweep job and starts the scheduler.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.RunNow); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info(context.Background(), "Session sweeper started",
		"schedule", s.schedule,
		"ttl", s.ttl.String(),
	)
	return nil
}

// Stop stops the scheduler; the returned context is done once a running
// sweep has finished.
func (s *Sweeper) Stop() context.Context {
	s.logger.Info(context.Background(), "Session sweeper stopping")
	return s.cron.Stop()
}

// RunNow performs one sweep synchronously.
func (s *Sweeper) RunNow() {
	ctx := logger.WithTraceID(context.Background(), "session-sweep")

	expired := s.expirer.ExpireIdle(ctx, s.ttl)
	s.logger.Debug(ctx, "Session sweep finished",
		"expired", expired,
	)
}
