package domain

import "time"

type ChannelID string

type ItemID string

// Item is a single published video of a channel.
type Item struct {
	ID             ItemID
	ChannelID      ChannelID
	Title          string
	Description    *string
	PublishedAt    time.Time
	PublishedExact bool // PublishedAt came from server data, not an estimate
	Duration       int
	ViewCount      *int64
	LikeCount      *int64
	DislikeCount   *int64
	ThumbnailURL   string
	Channel        *Channel // channel record from the cache or listing, saved to the channel row, never with the item
	RetrievedAt    time.Time
}

type Channel struct {
	ID            ChannelID `db:"id"`
	Title         string    `db:"title"`
	ThumbnailURL  string    `db:"thumbnail_url"`
	Subscribed    bool      `db:"subscribed"`
	LastCheckedAt time.Time `db:"last_checked_at"`
}

type CardKind int

const (
	CardVideo CardKind = iota
	CardChannel
	CardPlaylist
)

func (k CardKind) String() string {
	switch k {
	case CardVideo:
		return "video"
	case CardChannel:
		return "channel"
	case CardPlaylist:
		return "playlist"
	default:
		return "unknown"
	}
}

// Card is one entry of a feed view. Video is set only for CardVideo.
type Card struct {
	Kind      CardKind
	ID        string
	Title     string
	ChannelID ChannelID
	Video     *Item
}

// VideoCard wraps an item as a feed card.
func VideoCard(item *Item) Card {
	return Card{
		Kind:      CardVideo,
		ID:        string(item.ID),
		Title:     item.Title,
		ChannelID: item.ChannelID,
		Video:     item,
	}
}

// Videos returns the items behind the video cards, in order.
func Videos(cards []Card) []Item {
	items := make([]Item, 0, len(cards))
	for _, c := range cards {
		if c.Kind == CardVideo && c.Video != nil {
			items = append(items, *c.Video)
		}
	}
	return items
}
