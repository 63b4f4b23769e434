package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"subfeed/internal/domain"
)

// Timestamps are stored with millisecond precision.
const timestampPrecision = time.Millisecond

type VideoStore struct {
	db *sqlx.DB
}

func NewVideoStore(db *sqlx.DB) *VideoStore {
	return &VideoStore{db: db}
}

// Upsert saves a video. An exact publish time is never replaced by an approximate one, and
// lazily loaded fields (description, counts) keep their stored values when the new record lacks them.
func (s *VideoStore) Upsert(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO videos (
			id, channel_id, title, description, published_at, published_exact, duration,
			view_count, like_count, dislike_count, thumbnail_url, retrieved_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = COALESCE(EXCLUDED.description, videos.description),
			published_at = CASE
				WHEN videos.published_exact AND NOT EXCLUDED.published_exact THEN videos.published_at
				ELSE EXCLUDED.published_at
			END,
			published_exact = videos.published_exact OR EXCLUDED.published_exact,
			duration = CASE WHEN EXCLUDED.duration > 0 THEN EXCLUDED.duration ELSE videos.duration END,
			view_count = COALESCE(EXCLUDED.view_count, videos.view_count),
			like_count = COALESCE(EXCLUDED.like_count, videos.like_count),
			dislike_count = COALESCE(EXCLUDED.dislike_count, videos.dislike_count),
			thumbnail_url = CASE WHEN EXCLUDED.thumbnail_url <> '' THEN EXCLUDED.thumbnail_url ELSE videos.thumbnail_url END,
			retrieved_at = EXCLUDED.retrieved_at`

	retrievedAt := item.RetrievedAt
	if retrievedAt.IsZero() {
		retrievedAt = time.Now()
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		item.ID,
		item.ChannelID,
		item.Title,
		item.Description,
		item.PublishedAt.Truncate(timestampPrecision),
		item.PublishedExact,
		item.Duration,
		item.ViewCount,
		item.LikeCount,
		item.DislikeCount,
		item.ThumbnailURL,
		retrievedAt,
	)
	return err
}

// KnownTimestamps maps every stored video id of a channel to its publish time.
func (s *VideoStore) KnownTimestamps(ctx context.Context, channelID domain.ChannelID) (map[domain.ItemID]time.Time, error) {
	rows, err := GetExecutor(ctx, s.db).QueryContext(ctx,
		"SELECT id, published_at FROM videos WHERE channel_id = $1",
		channelID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[domain.ItemID]time.Time)
	for rows.Next() {
		var (
			id          string
			publishedAt time.Time
		)
		if err := rows.Scan(&id, &publishedAt); err != nil {
			return nil, err
		}
		result[domain.ItemID(id)] = publishedAt.UTC()
	}

	return result, rows.Err()
}

// SetExactTimestamp replaces a video's publish time with a server-provided one.
func (s *VideoStore) SetExactTimestamp(ctx context.Context, id domain.ItemID, publishedAt time.Time) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE videos SET published_at = $2, published_exact = TRUE WHERE id = $1",
		id, publishedAt.Truncate(timestampPrecision),
	)
	return err
}

type videoRow struct {
	ID                  string         `db:"id"`
	ChannelID           string         `db:"channel_id"`
	Title               string         `db:"title"`
	Description         sql.NullString `db:"description"`
	PublishedAt         time.Time      `db:"published_at"`
	PublishedExact      bool           `db:"published_exact"`
	Duration            int            `db:"duration"`
	ViewCount           sql.NullInt64  `db:"view_count"`
	LikeCount           sql.NullInt64  `db:"like_count"`
	DislikeCount        sql.NullInt64  `db:"dislike_count"`
	ThumbnailURL        string         `db:"thumbnail_url"`
	RetrievedAt         time.Time      `db:"retrieved_at"`
	ChannelTitle        string         `db:"channel_title"`
	ChannelThumbnailURL string         `db:"channel_thumbnail_url"`
	ChannelCheckedAt    time.Time      `db:"channel_last_checked_at"`
}

func (r *videoRow) toItem() domain.Item {
	item := domain.Item{
		ID:             domain.ItemID(r.ID),
		ChannelID:      domain.ChannelID(r.ChannelID),
		Title:          r.Title,
		PublishedAt:    r.PublishedAt.UTC(),
		PublishedExact: r.PublishedExact,
		Duration:       r.Duration,
		ThumbnailURL:   r.ThumbnailURL,
		RetrievedAt:    r.RetrievedAt.UTC(),
		Channel: &domain.Channel{
			ID:            domain.ChannelID(r.ChannelID),
			Title:         r.ChannelTitle,
			ThumbnailURL:  r.ChannelThumbnailURL,
			Subscribed:    true,
			LastCheckedAt: r.ChannelCheckedAt.UTC(),
		},
	}
	if r.Description.Valid {
		item.Description = &r.Description.String
	}
	item.ViewCount = nullInt(r.ViewCount)
	item.LikeCount = nullInt(r.LikeCount)
	item.DislikeCount = nullInt(r.DislikeCount)
	return item
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
