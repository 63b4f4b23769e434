package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"subfeed/internal/config"
	"subfeed/internal/domain"
)

const defaultConcurrency = 4

// ProgressListener is told about every finished channel of a batch.
// Calls for one batch never overlap.
type ProgressListener interface {
	OnChannelFetched(channelID domain.ChannelID, newItems int, isError bool)
}

type ProgressFunc func(channelID domain.ChannelID, newItems int, isError bool)

func (f ProgressFunc) OnChannelFetched(channelID domain.ChannelID, newItems int, isError bool) {
	f(channelID, newItems, isError)
}

// SyncRequest selects the channels of a batch. A nil ChannelIDs means every subscribed channel.
type SyncRequest struct {
	ChannelIDs []domain.ChannelID
	Listener   ProgressListener
}

type SyncService struct {
	source    ContentSource
	store     Store
	publisher Publisher
	observer  Observer
	logger    *slog.Logger
	config    config.SyncConfig
	now       func() time.Time
}

func NewSyncService(
	source ContentSource,
	store Store,
	publisher Publisher,
	observer Observer,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	if observer == nil {
		observer = nopObserver{}
	}
	return &SyncService{
		source:    source,
		store:     store,
		publisher: publisher,
		observer:  observer,
		logger:    logger.With("component", "sync"),
		config:    cfg,
		now:       time.Now,
	}
}

type channelOutcome struct {
	channelID domain.ChannelID
	newItems  int
	err       error
}

// Sync runs a batch over all subscribed channels, logging per-channel progress.
func (s *SyncService) Sync(ctx context.Context) (*domain.SyncResult, error) {
	return s.SyncAll(ctx, SyncRequest{
		Listener: ProgressFunc(func(channelID domain.ChannelID, newItems int, isError bool) {
			s.logger.Debug("channel fetched",
				"channel_id", channelID,
				"new", newItems,
				"error", isError,
			)
		}),
	})
}

// SyncAll discovers, enriches and persists new items for every requested channel.
//
// Channels run in a pool bounded by the configured concurrency. A failing channel contributes
// zero items and never aborts the batch; the only returned error is a failure to list the
// subscribed channels. Outcomes are consumed by this goroutine alone, so the listener and the
// aggregate are applied one channel at a time in completion order.
func (s *SyncService) SyncAll(ctx context.Context, req SyncRequest) (*domain.SyncResult, error) {
	result := &domain.SyncResult{
		ID:        uuid.NewString(),
		StartedAt: s.now(),
	}
	logger := s.logger.With("sync_id", result.ID)

	channelIDs := req.ChannelIDs
	if channelIDs == nil {
		ids, err := s.store.SubscribedChannelIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("list subscribed channels: %w", err)
		}
		channelIDs = ids
	}
	channelIDs = uniqueChannels(channelIDs)
	result.Channels = len(channelIDs)

	logger.Info("starting subscription sync",
		"channels", len(channelIDs),
		"concurrency", s.concurrency(),
	)

	outcomes := make(chan channelOutcome)
	go func() {
		var g errgroup.Group
		g.SetLimit(s.concurrency())
		for _, channelID := range channelIDs {
			channelID := channelID
			g.Go(func() error {
				outcomes <- s.runChannel(ctx, channelID)
				return nil
			})
		}
		_ = g.Wait()
		close(outcomes)
	}()

	for outcome := range outcomes {
		result.NewItemCount += outcome.newItems
		if outcome.err != nil {
			result.FailedChannels++
		}
		if req.Listener != nil {
			req.Listener.OnChannelFetched(outcome.channelID, outcome.newItems, outcome.err != nil)
		}
	}

	result.Changed = result.NewItemCount > 0
	result.Duration = s.now().Sub(result.StartedAt)

	// The start time, not the end, bounds the next pass.
	if err := s.store.SetLastSyncTime(ctx, result.StartedAt); err != nil {
		logger.Error("failed to record last sync time", "error", err)
	}

	s.observer.BatchCompleted(result)

	logger.Info("subscription sync completed",
		"new", result.NewItemCount,
		"changed", result.Changed,
		"failed_channels", result.FailedChannels,
		"duration", result.Duration,
	)

	return result, nil
}

// DiscoverChannel runs the sync pipeline for a single channel and returns its new item count.
func (s *SyncService) DiscoverChannel(ctx context.Context, channelID domain.ChannelID) (int, error) {
	outcome := s.runChannel(ctx, channelID)
	return outcome.newItems, outcome.err
}

func (s *SyncService) runChannel(ctx context.Context, channelID domain.ChannelID) channelOutcome {
	outcome := channelOutcome{channelID: channelID}
	logger := s.logger.With("channel_id", channelID)

	known, err := s.store.KnownTimestamps(ctx, channelID)
	if err != nil {
		outcome.err = s.storeFailed(channelID, fmt.Errorf("%w: load known items: %w", ErrStore, err))
		return outcome
	}

	candidates, err := s.discover(ctx, channelID, known)
	if err != nil {
		outcome.err = err
		return outcome
	}
	if len(candidates) == 0 {
		return outcome
	}

	channel, err := s.store.CachedChannel(ctx, channelID)
	if err != nil {
		outcome.err = s.storeFailed(channelID, fmt.Errorf("%w: load cached channel: %w", ErrStore, err))
		return outcome
	}

	enriched := make([]domain.Item, 0, len(candidates))
	for _, candidate := range candidates {
		item, err := s.enrich(ctx, candidate, channel)
		if err != nil {
			logger.Error("dropping item", "item_id", candidate.ID, "error", err)
			s.observer.ItemDropped(candidate.ID, err)
			continue
		}
		enriched = append(enriched, item)
	}

	if len(enriched) == 0 {
		return outcome
	}

	if err := s.store.PersistItems(ctx, enriched, channelID); err != nil {
		outcome.err = s.storeFailed(channelID, fmt.Errorf("%w: persist items: %w", ErrStore, err))
		return outcome
	}

	s.publish(ctx, enriched)

	logger.Info("new items stored", "candidates", len(candidates), "new", len(enriched))
	outcome.newItems = len(enriched)
	return outcome
}

func (s *SyncService) storeFailed(channelID domain.ChannelID, err error) error {
	s.logger.Error("channel sync failed", "channel_id", channelID, "error", err)
	s.observer.ChannelFailed(channelID, err)
	return err
}

func (s *SyncService) publish(ctx context.Context, items []domain.Item) {
	if s.publisher == nil {
		return
	}
	for i := range items {
		if err := s.publisher.Publish(ctx, &items[i]); err != nil {
			s.logger.Warn("failed to publish item", "item_id", items[i].ID, "error", err)
		}
	}
}

// uniqueChannels drops repeated ids, keeping first occurrences in order. Two pipelines on one
// channel would write the same rows concurrently.
func uniqueChannels(ids []domain.ChannelID) []domain.ChannelID {
	seen := make(map[domain.ChannelID]struct{}, len(ids))
	unique := make([]domain.ChannelID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func (s *SyncService) concurrency() int {
	if s.config.Concurrency > 0 {
		return s.config.Concurrency
	}
	return defaultConcurrency
}

type nopObserver struct{}

func (nopObserver) ChannelFailed(domain.ChannelID, error) {}

func (nopObserver) ItemDropped(domain.ItemID, error) {}

func (nopObserver) BatchCompleted(*domain.SyncResult) {}
