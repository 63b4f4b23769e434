package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"subfeed/internal/config"
	"subfeed/internal/domain"
)

// FeedView describes the list a caller is refreshing.
type FeedView struct {
	Target        int              // cards already displayed; a subscription feed reset refills at least this many
	Filtering     bool             // the view category runs the content filter
	Subscriptions bool             // the view is the subscription feed
	ChannelID     domain.ChannelID // channel the view belongs to, empty for mixed feeds
	Reset         bool
}

// ChannelPagerFunc opens a listing of a channel's videos published after the given time.
type ChannelPagerFunc func(channelID domain.ChannelID, publishedAfter time.Time) Pager

// FeedService serves feed views and channel listings on demand.
type FeedService struct {
	source ContentSource
	pagers ChannelPagerFunc
	store  Store
	filter *ContentFilter
	logger *slog.Logger
	config config.SyncConfig
	now    func() time.Time
}

func NewFeedService(
	source ContentSource,
	pagers ChannelPagerFunc,
	store Store,
	filter *ContentFilter,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *FeedService {
	return &FeedService{
		source: source,
		pagers: pagers,
		store:  store,
		filter: filter,
		logger: logger.With("component", "feed"),
		config: cfg,
		now:    time.Now,
	}
}

// FillToSize fills a batch up to target cards and, when filterEnabled, filters it afterwards.
func (s *FeedService) FillToSize(ctx context.Context, pager Pager, target int, filterEnabled bool) ([]domain.Card, error) {
	batch, err := FillToSize(ctx, pager, target)
	if filterEnabled {
		batch = s.filter.Apply(batch)
	}
	return batch, err
}

// LoadFeedView fetches the next cards of a view. A reset of the subscription feed refills it to
// its current size; every other load reads a single page. Videos of a subscribed channel view are saved.
func (s *FeedService) LoadFeedView(ctx context.Context, pager Pager, view FeedView) ([]domain.Card, error) {
	var (
		cards []domain.Card
		err   error
	)
	if view.Reset && view.Subscriptions {
		cards, err = s.FillToSize(ctx, pager, view.Target, view.Filtering)
	} else {
		cards, err = pager.NextPage(ctx)
		if err == nil && view.Filtering {
			cards = s.filter.Apply(cards)
		}
	}
	if err != nil {
		s.logger.Error("failed to load feed view", "channel_id", view.ChannelID, "error", err)
		return cards, err
	}

	if view.ChannelID != "" {
		if err := s.saveIfSubscribed(ctx, view.ChannelID, domain.Videos(cards)); err != nil {
			return cards, err
		}
	}

	return cards, nil
}

// ChannelVideos returns the first page of a channel's videos published after publishedAfter.
// A nil bound falls back to the last sync time, or to the default lookback when no sync ran yet.
// Videos of subscribed channels are saved.
func (s *FeedService) ChannelVideos(ctx context.Context, channelID domain.ChannelID, publishedAfter *time.Time) ([]domain.Card, error) {
	after := s.lowerBound(ctx, publishedAfter)

	cards, err := s.pagers(channelID, after).NextPage(ctx)
	if err != nil {
		err = fmt.Errorf("%w: channel %s: %w", ErrSourceUnavailable, channelID, err)
		s.logger.Error("failed to get channel videos", "channel_id", channelID, "error", err)
		return nil, err
	}

	if err := s.saveIfSubscribed(ctx, channelID, domain.Videos(cards)); err != nil {
		return cards, err
	}

	return cards, nil
}

// Description returns the item's description, fetching the detail once when it is missing.
// The fetched counts are copied onto the item as well.
func (s *FeedService) Description(ctx context.Context, item *domain.Item) (string, error) {
	if item.Description != nil {
		return *item.Description, nil
	}

	detail, err := s.source.FetchDetail(ctx, item.ID)
	if err != nil {
		return "", fmt.Errorf("%w: item %s: %w", ErrDetailFetch, item.ID, err)
	}
	if detail == nil {
		return "", fmt.Errorf("%w: item %s: empty detail", ErrDetailFetch, item.ID)
	}

	description := ""
	if detail.Description != nil {
		description = *detail.Description
	}
	item.Description = &description
	item.ViewCount = detail.ViewCount
	item.LikeCount = detail.LikeCount
	item.DislikeCount = detail.DislikeCount

	return description, nil
}

func (s *FeedService) lowerBound(ctx context.Context, publishedAfter *time.Time) time.Time {
	if publishedAfter != nil {
		return *publishedAfter
	}

	last, err := s.store.LastSyncTime(ctx)
	if err != nil {
		s.logger.Warn("failed to read last sync time", "error", err)
	}
	if err == nil && !last.IsZero() {
		return last
	}

	return s.now().Add(-s.config.DefaultLookback)
}

func (s *FeedService) saveIfSubscribed(ctx context.Context, channelID domain.ChannelID, items []domain.Item) error {
	if len(items) == 0 {
		return nil
	}

	subscribed, err := s.store.IsSubscribed(ctx, channelID)
	if err != nil {
		return fmt.Errorf("%w: subscription lookup: %w", ErrStore, err)
	}
	if !subscribed {
		return nil
	}

	if err := s.store.PersistItems(ctx, items, channelID); err != nil {
		return fmt.Errorf("%w: save channel videos: %w", ErrStore, err)
	}
	return nil
}
