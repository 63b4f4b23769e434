package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"subfeed/internal/domain"
)

type ChannelStore struct {
	db *sqlx.DB
}

func NewChannelStore(db *sqlx.DB) *ChannelStore {
	return &ChannelStore{db: db}
}

// UpsertBatch saves channel metadata. The subscription flag of existing rows is kept, and empty
// titles or thumbnails do not overwrite stored ones.
func (s *ChannelStore) UpsertBatch(ctx context.Context, channels []domain.Channel) error {
	if len(channels) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO channels (id, title, thumbnail_url, subscribed) VALUES ")
	valueArgs := make([]any, 0, len(channels)*4)

	for i, ch := range channels {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(placeholders(i*4+1, 4))
		valueArgs = append(valueArgs, ch.ID, ch.Title, ch.ThumbnailURL, ch.Subscribed)
	}
	sb.WriteString(` ON CONFLICT (id) DO UPDATE SET
		title = CASE WHEN EXCLUDED.title <> '' THEN EXCLUDED.title ELSE channels.title END,
		thumbnail_url = CASE WHEN EXCLUDED.thumbnail_url <> '' THEN EXCLUDED.thumbnail_url ELSE channels.thumbnail_url END`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// SetSubscribed subscribes to or unsubscribes from a channel, creating the row when needed.
func (s *ChannelStore) SetSubscribed(ctx context.Context, id domain.ChannelID, subscribed bool) error {
	query := `
		INSERT INTO channels (id, subscribed) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET subscribed = EXCLUDED.subscribed`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, subscribed)
	return err
}

// Get returns the cached channel or nil when it is unknown.
func (s *ChannelStore) Get(ctx context.Context, id domain.ChannelID) (*domain.Channel, error) {
	query := `
		SELECT id, title, thumbnail_url, subscribed, last_checked_at
		FROM channels
		WHERE id = $1`

	var ch domain.Channel
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &ch, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (s *ChannelStore) IsSubscribed(ctx context.Context, id domain.ChannelID) (bool, error) {
	var subscribed bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &subscribed,
		"SELECT EXISTS (SELECT 1 FROM channels WHERE id = $1 AND subscribed)",
		id,
	)
	return subscribed, err
}

func (s *ChannelStore) SubscribedIDs(ctx context.Context) ([]domain.ChannelID, error) {
	var ids []domain.ChannelID
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids,
		"SELECT id FROM channels WHERE subscribed ORDER BY id",
	)
	return ids, err
}

// Touch records when a channel was last checked for new videos.
func (s *ChannelStore) Touch(ctx context.Context, id domain.ChannelID, at time.Time) error {
	query := `
		INSERT INTO channels (id, last_checked_at) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET last_checked_at = EXCLUDED.last_checked_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, at)
	return err
}

// placeholders renders "($from, ..., $from+n-1)".
func placeholders(from, n int) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('$')
		sb.WriteString(strconv.Itoa(from + i))
	}
	sb.WriteByte(')')
	return sb.String()
}
