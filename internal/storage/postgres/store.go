package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"subfeed/internal/domain"
	"subfeed/internal/service"
)

var _ service.Store = (*Store)(nil)

// SubscriptionsState names the sync_state row of the subscription feed.
const SubscriptionsState = "subscriptions"

// Store backs the sync engine with the video, channel and sync state tables.
type Store struct {
	db       *sqlx.DB
	tx       *TransactionManager
	videos   *VideoStore
	channels *ChannelStore
	state    *SyncStateStore
	now      func() time.Time
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		db:       db,
		tx:       NewTransactionManager(db),
		videos:   NewVideoStore(db),
		channels: NewChannelStore(db),
		state:    NewSyncStateStore(db),
		now:      time.Now,
	}
}

func (s *Store) Channels() *ChannelStore {
	return s.channels
}

// SubscriptionFeed opens a pager over the saved videos of subscribed channels.
func (s *Store) SubscriptionFeed(pageSize int) *FeedPager {
	return NewFeedPager(s.db, pageSize)
}

func (s *Store) KnownTimestamps(ctx context.Context, channelID domain.ChannelID) (map[domain.ItemID]time.Time, error) {
	known, err := s.videos.KnownTimestamps(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("load known videos of %s: %w", channelID, err)
	}
	return known, nil
}

func (s *Store) CachedChannel(ctx context.Context, channelID domain.ChannelID) (*domain.Channel, error) {
	ch, err := s.channels.Get(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("load channel %s: %w", channelID, err)
	}
	return ch, nil
}

func (s *Store) IsSubscribed(ctx context.Context, channelID domain.ChannelID) (bool, error) {
	return s.channels.IsSubscribed(ctx, channelID)
}

func (s *Store) SubscribedChannelIDs(ctx context.Context) ([]domain.ChannelID, error) {
	return s.channels.SubscribedIDs(ctx)
}

// PersistItems saves a channel's videos in one transaction and marks the channel as checked.
// Channel metadata carried by the items refreshes the cached channel row.
func (s *Store) PersistItems(ctx context.Context, items []domain.Item, channelID domain.ChannelID) error {
	if len(items) == 0 {
		return nil
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		for i := range items {
			if err := s.videos.Upsert(ctx, &items[i]); err != nil {
				return fmt.Errorf("upsert video %s: %w", items[i].ID, err)
			}
		}
		if ch := channelMetadata(items, channelID); ch != nil {
			if err := s.channels.UpsertBatch(ctx, []domain.Channel{*ch}); err != nil {
				return fmt.Errorf("save channel %s: %w", channelID, err)
			}
		}
		if err := s.channels.Touch(ctx, channelID, s.now()); err != nil {
			return fmt.Errorf("touch channel %s: %w", channelID, err)
		}
		if err := s.state.AddSynced(ctx, SubscriptionsState, len(items)); err != nil {
			return fmt.Errorf("count synced videos: %w", err)
		}
		return nil
	})
}

func (s *Store) UpdateTimestamp(ctx context.Context, itemID domain.ItemID, publishedAt time.Time) error {
	return s.videos.SetExactTimestamp(ctx, itemID, publishedAt)
}

func (s *Store) LastSyncTime(ctx context.Context) (time.Time, error) {
	state, err := s.state.Get(ctx, SubscriptionsState)
	if err != nil {
		return time.Time{}, fmt.Errorf("load sync state: %w", err)
	}
	return state.LastSyncedAt, nil
}

func (s *Store) SetLastSyncTime(ctx context.Context, t time.Time) error {
	return s.state.SetLastSynced(ctx, SubscriptionsState, t)
}

// channelMetadata returns the first titled channel record attached to the items.
func channelMetadata(items []domain.Item, channelID domain.ChannelID) *domain.Channel {
	for i := range items {
		ch := items[i].Channel
		if ch != nil && ch.ID == channelID && ch.Title != "" {
			return ch
		}
	}
	return nil
}
