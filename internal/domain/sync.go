package domain

import "time"

// SyncResult holds the aggregate outcome of a subscription sync batch.
type SyncResult struct {
	ID             string
	Channels       int
	NewItemCount   int
	Changed        bool
	FailedChannels int
	StartedAt      time.Time
	Duration       time.Duration
}

type SyncState struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	LastSyncedAt time.Time `db:"last_synced_at"`
	TotalSynced  int64     `db:"total_synced"`
}
