package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"subfeed/internal/domain"
)

type SyncStateStore struct {
	db *sqlx.DB
}

func NewSyncStateStore(db *sqlx.DB) *SyncStateStore {
	return &SyncStateStore{db: db}
}

type syncStateRow struct {
	ID           int64        `db:"id"`
	Name         string       `db:"name"`
	LastSyncedAt sql.NullTime `db:"last_synced_at"`
	TotalSynced  int64        `db:"total_synced"`
}

// Get returns the named state. A state that was never written comes back empty.
func (s *SyncStateStore) Get(ctx context.Context, name string) (*domain.SyncState, error) {
	var row syncStateRow
	query := `
		SELECT id, name, last_synced_at, total_synced
		FROM sync_state
		WHERE name = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.SyncState{Name: name}, nil
	}
	if err != nil {
		return nil, err
	}

	state := &domain.SyncState{
		ID:          row.ID,
		Name:        row.Name,
		TotalSynced: row.TotalSynced,
	}
	if row.LastSyncedAt.Valid {
		state.LastSyncedAt = row.LastSyncedAt.Time.UTC()
	}
	return state, nil
}

// SetLastSynced moves the sync time of the named state without touching its counters.
func (s *SyncStateStore) SetLastSynced(ctx context.Context, name string, t time.Time) error {
	query := `
		INSERT INTO sync_state (name, last_synced_at)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET last_synced_at = EXCLUDED.last_synced_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, name, t)
	return err
}

// AddSynced increments the saved-item counter of the named state.
func (s *SyncStateStore) AddSynced(ctx context.Context, name string, n int) error {
	query := `
		INSERT INTO sync_state (name, total_synced)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET total_synced = sync_state.total_synced + EXCLUDED.total_synced`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, name, n)
	return err
}
