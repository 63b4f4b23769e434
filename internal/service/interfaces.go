package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"subfeed/internal/domain"
)

// ContentSource fetches channel listings and video details from the remote side.
type ContentSource interface {
	// FetchLatestItems returns the newest items of a channel, most recent first.
	FetchLatestItems(ctx context.Context, channelID domain.ChannelID) ([]domain.Item, error)
	FetchDetail(ctx context.Context, itemID domain.ItemID) (*domain.Item, error)
}

// Pager yields consecutive, non-overlapping pages. An empty page means the source is exhausted.
type Pager interface {
	NextPage(ctx context.Context) ([]domain.Card, error)
}

type Store interface {
	KnownTimestamps(ctx context.Context, channelID domain.ChannelID) (map[domain.ItemID]time.Time, error)
	CachedChannel(ctx context.Context, channelID domain.ChannelID) (*domain.Channel, error)
	IsSubscribed(ctx context.Context, channelID domain.ChannelID) (bool, error)
	SubscribedChannelIDs(ctx context.Context) ([]domain.ChannelID, error)
	PersistItems(ctx context.Context, items []domain.Item, channelID domain.ChannelID) error
	UpdateTimestamp(ctx context.Context, itemID domain.ItemID, publishedAt time.Time) error
	LastSyncTime(ctx context.Context) (time.Time, error)
	SetLastSyncTime(ctx context.Context, t time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, item *domain.Item) error
	Close() error
}

// FilterPolicy decides whether a card may be shown.
type FilterPolicy interface {
	Allow(card domain.Card) (bool, error)
}

// Observer receives failures and batch outcomes for diagnostics.
type Observer interface {
	ChannelFailed(channelID domain.ChannelID, err error)
	ItemDropped(itemID domain.ItemID, err error)
	BatchCompleted(result *domain.SyncResult)
}
