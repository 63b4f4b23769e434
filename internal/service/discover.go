package service

import (
	"context"
	"fmt"
	"time"

	"subfeed/internal/domain"
)

// discover returns the items of a channel that precede the first already known one.
//
// Listings are newest first, so the scan stops at the first known id and everything after it
// is assumed to be known as well. A listing that is out of order can hide older new items;
// that is accepted. A known item whose exact publish time drifted from the stored one gets its
// stored time corrected but is not returned.
func (s *SyncService) discover(
	ctx context.Context,
	channelID domain.ChannelID,
	known map[domain.ItemID]time.Time,
) ([]domain.Item, error) {
	items, err := s.source.FetchLatestItems(ctx, channelID)
	if err != nil {
		err = fmt.Errorf("%w: channel %s: %w", ErrSourceUnavailable, channelID, err)
		s.logger.Error("failed to fetch channel", "channel_id", channelID, "error", err)
		s.observer.ChannelFailed(channelID, err)
		return nil, err
	}

	var candidates []domain.Item
	for _, item := range items {
		storedAt, ok := known[item.ID]
		if !ok {
			candidates = append(candidates, item)
			continue
		}

		if item.PublishedExact && !storedAt.Equal(item.PublishedAt) {
			s.correctTimestamp(ctx, item, storedAt)
		}
		break
	}

	s.logger.Debug("channel scanned",
		"channel_id", channelID,
		"fetched", len(items),
		"candidates", len(candidates),
	)

	return candidates, nil
}

func (s *SyncService) correctTimestamp(ctx context.Context, item domain.Item, storedAt time.Time) {
	if err := s.store.UpdateTimestamp(ctx, item.ID, item.PublishedAt); err != nil {
		s.logger.Warn("failed to correct publish timestamp", "item_id", item.ID, "error", err)
		return
	}
	s.logger.Info("corrected publish timestamp",
		"item_id", item.ID,
		"title", item.Title,
		"stored", storedAt,
		"published_at", item.PublishedAt,
	)
}
