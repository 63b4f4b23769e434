package youtube

import (
	"context"
	"time"

	"subfeed/internal/domain"
)

// ChannelPager walks a channel's upload listing page by page, newest first.
// It stops at the first video published before the lower bound.
type ChannelPager struct {
	source         *Source
	channelID      domain.ChannelID
	publishedAfter time.Time
	continuation   string
	done           bool
}

func (s *Source) ChannelPager(channelID domain.ChannelID, publishedAfter time.Time) *ChannelPager {
	return &ChannelPager{
		source:         s,
		channelID:      channelID,
		publishedAfter: publishedAfter,
	}
}

// NextPage returns the next page of video cards. An empty page means the listing is exhausted.
func (p *ChannelPager) NextPage(ctx context.Context) ([]domain.Card, error) {
	if p.done {
		return nil, nil
	}

	page, err := p.source.fetchChannelPage(ctx, p.channelID, p.continuation)
	if err != nil {
		return nil, err
	}

	cards := make([]domain.Card, 0, len(page.Videos))
	for _, v := range page.Videos {
		item := p.source.toItem(v, p.channelID)
		if !p.publishedAfter.IsZero() && item.PublishedAt.Before(p.publishedAfter) {
			p.done = true
			break
		}
		cards = append(cards, domain.VideoCard(&item))
	}

	p.continuation = page.Continuation
	if p.continuation == "" {
		p.done = true
	}

	return cards, nil
}
