package jobs

import (
	"context"
	"log/slog"
	"time"

	"toolshare/internal/pkg/config"
	"toolshare/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const runTimeout = 2 * time.Minute

// Scheduler runs the marketplace's periodic jobs.
type Scheduler struct {
	cron       *cron.Cron
	completion commands.CompletionCommands
	logger     *slog.Logger
}

func NewScheduler(cfg config.Config, completion commands.CompletionCommands, logger *slog.Logger) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(cfg.Server.Location()),
		cron.WithSeconds(),
		cron.WithChain(cron.Recover(cronLogger{logger}), cron.SkipIfStillRunning(cronLogger{logger})),
	)

	s := &Scheduler{
		cron:       c,
		completion: completion,
		logger:     logger,
	}

	if _, err := s.cron.AddFunc(cfg.Jobs.CompleteReservationsSpec, s.CompleteEndedReservations); err != nil {
		return nil, err
	}
	return s, nil
}

// CompleteEndedReservations unlocks reviews for rentals whose last day is over.
func (s *Scheduler) CompleteEndedReservations() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	start := time.Now()
	n, err := s.completion.CompleteEnded(ctx)
	if err != nil {
		s.logger.Error("complete ended reservations failed", "error", err)
		return
	}
	s.logger.Info("completed ended reservations", "count", n, "duration", time.Since(start))
}

func (s *Scheduler) Start() {
	s.logger.Info("starting cron scheduler", "entries", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop waits for running jobs, bounded by ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("cron scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("cron scheduler stop timed out")
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	l *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debug(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Error(msg, append(keysAndValues, "error", err)...)
}
