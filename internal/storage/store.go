package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// StateKey is the row the full application snapshot lives under.
const StateKey = "state"

// SnapshotStore persists opaque JSON snapshots. It knows nothing about
// the engine's types; the caller owns the blob shape.
type SnapshotStore struct {
	db *sql.DB
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Load returns the stored snapshot, or nil when none has been saved
// yet. Callers treat nil (and undecodable blobs) as first run.
func (s *SnapshotStore) Load(ctx context.Context) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE key = ?`, StateKey)
	var blob []byte
	if err := row.Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshot load: %w", err)
	}
	return blob, nil
}

// Save upserts the snapshot inside a transaction, so readers never see
// a partial write.
func (s *SnapshotStore) Save(ctx context.Context, blob []byte) error {
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`, StateKey, blob, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("snapshot save: %w", err)
		}
		return nil
	})
}

// Delete removes the stored snapshot. Used by the full reset flow.
func (s *SnapshotStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, StateKey); err != nil {
		return fmt.Errorf("snapshot delete: %w", err)
	}
	return nil
}
