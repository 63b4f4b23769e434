package service

import (
	"context"
	"fmt"

	"subfeed/internal/domain"
)

// enrich fetches the full detail of a candidate. An exact publish time on the candidate wins
// over whatever the detail reports. Channel metadata comes from the cached record; a cached
// record without a title takes the one reported by the listing.
func (s *SyncService) enrich(ctx context.Context, candidate domain.Item, channel *domain.Channel) (domain.Item, error) {
	detail, err := s.source.FetchDetail(ctx, candidate.ID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("%w: item %s: %w", ErrDetailFetch, candidate.ID, err)
	}
	if detail == nil {
		return domain.Item{}, fmt.Errorf("%w: item %s: empty detail", ErrDetailFetch, candidate.ID)
	}

	item := *detail
	item.ID = candidate.ID
	if item.ChannelID == "" {
		item.ChannelID = candidate.ChannelID
	}
	if item.Title == "" {
		item.Title = candidate.Title
	}
	if item.ThumbnailURL == "" {
		item.ThumbnailURL = candidate.ThumbnailURL
	}
	if item.PublishedAt.IsZero() {
		item.PublishedAt = candidate.PublishedAt
	}
	if candidate.PublishedExact {
		item.PublishedAt = candidate.PublishedAt
		item.PublishedExact = true
	}
	item.Channel = listedChannel(channel, candidate.Channel)

	return item, nil
}

// listedChannel returns the cached channel, completed with the title and thumbnail the listing
// reported when the cache has none.
func listedChannel(cached, listed *domain.Channel) *domain.Channel {
	if listed == nil || (cached != nil && cached.Title != "") {
		return cached
	}
	if cached == nil {
		ch := *listed
		return &ch
	}

	ch := *cached
	ch.Title = listed.Title
	if ch.ThumbnailURL == "" {
		ch.ThumbnailURL = listed.ThumbnailURL
	}
	return &ch
}
