package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"

	"subfeed/internal/domain"
)

var feedColumns = []string{
	"v.id", "v.channel_id", "v.title", "v.description", "v.published_at", "v.published_exact", "v.duration",
	"v.view_count", "v.like_count", "v.dislike_count", "v.thumbnail_url", "v.retrieved_at",
	"c.title AS channel_title",
	"c.thumbnail_url AS channel_thumbnail_url",
	"c.last_checked_at AS channel_last_checked_at",
}

// FeedPager pages through the saved videos of subscribed channels, newest first.
// Pages are keyed on (published_at, id), so rows saved while paging do not shift later pages.
type FeedPager struct {
	db       *sqlx.DB
	pageSize int

	afterPublished time.Time
	afterID        string
	started        bool
	done           bool
}

func NewFeedPager(db *sqlx.DB, pageSize int) *FeedPager {
	if pageSize < 1 {
		pageSize = 20
	}
	return &FeedPager{db: db, pageSize: pageSize}
}

// NextPage returns the next page of video cards. An empty page means the feed is exhausted.
func (p *FeedPager) NextPage(ctx context.Context) ([]domain.Card, error) {
	if p.done {
		return nil, nil
	}

	query, args := p.query()

	var rows []videoRow
	if err := sqlx.SelectContext(ctx, p.db, &rows, query, args...); err != nil {
		return nil, err
	}

	p.started = true
	if len(rows) < p.pageSize {
		p.done = true
	}
	if len(rows) == 0 {
		return nil, nil
	}

	last := rows[len(rows)-1]
	p.afterPublished = last.PublishedAt
	p.afterID = last.ID

	cards := make([]domain.Card, 0, len(rows))
	for i := range rows {
		item := rows[i].toItem()
		cards = append(cards, domain.VideoCard(&item))
	}
	return cards, nil
}

func (p *FeedPager) query() (string, []any) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(feedColumns...).
		From("videos v").
		Join("channels c", "c.id = v.channel_id").
		Where("c.subscribed")

	if p.started {
		sb.Where(fmt.Sprintf("(v.published_at, v.id) < (%s, %s)", sb.Var(p.afterPublished), sb.Var(p.afterID)))
	}

	sb.OrderBy("v.published_at DESC", "v.id DESC").Limit(p.pageSize)

	return sb.Build()
}
