package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-co-op/gocron/v2"

	"mlb-roster-service/internal/logging"
	"mlb-roster-service/internal/poller"
)

// Scheduler runs the daily standings refresh. The interval poller keeps the
// cache warm during the day; this job guarantees a rebuild shortly after the
// previous night's games are final even if the poller interval is long.
type Scheduler struct {
	s         gocron.Scheduler
	refresher poller.Refresher
	logger    *slog.Logger
	hour      int
}

// New creates a scheduler that refreshes at the given local hour every day.
func New(refresher poller.Refresher, logger *slog.Logger, hour int) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Scheduler{
		s:         s,
		refresher: refresher,
		logger:    logger,
		hour:      hour,
	}, nil
}

// Start registers the daily job and begins the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(s.hour), 0, 0))),
		gocron.NewTask(func() {
			if err := s.refresher.Refresh(ctx); err != nil {
				logging.Error(s.logger, "daily standings refresh failed", err)
				return
			}
			logging.Info(s.logger, "daily standings refresh completed")
		}),
	)
	if err != nil {
		return fmt.Errorf("create daily refresh job: %w", err)
	}

	s.s.Start()
	return nil
}

// Stop shuts the scheduler down, waiting for a running job to finish.
func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}
