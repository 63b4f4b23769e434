package scheduler

import (
	"context"
	"log/slog"
	"time"

	"subfeed/internal/domain"
)

// Syncer runs one subscription sync pass.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncResult, error)
}

// Scheduler runs sync passes on a fixed interval. Passes never overlap: the next tick
// is only observed after the running pass returned.
type Scheduler struct {
	syncer     Syncer
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(syncer Syncer, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:     syncer,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger.With("component", "scheduler"),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce runs a single pass bounded by the run timeout.
func (s *Scheduler) RunOnce(ctx context.Context) *domain.SyncResult {
	syncCtx := ctx
	if s.runTimeout > 0 {
		var cancel context.CancelFunc
		syncCtx, cancel = context.WithTimeout(ctx, s.runTimeout)
		defer cancel()
	}

	result, err := s.syncer.Sync(syncCtx)
	if err != nil {
		s.logger.Error("sync failed", "error", err)
		return nil
	}

	if result.FailedChannels > 0 {
		s.logger.Warn("sync finished with failed channels",
			"sync_id", result.ID,
			"failed_channels", result.FailedChannels,
			"channels", result.Channels,
		)
	}
	return result
}
