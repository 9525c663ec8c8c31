// Package store persists the reconciled snapshot into the local SQLite
// cache. The cache is a single keyed slot: one JSON blob holding a full
// AppState, overwritten wholesale on every successful sync and every local
// mutation. Last writer wins; there is no field-level update.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ligafc/leaguehub/internal/league"
)

// ErrNotFound is returned by Load when no snapshot has been saved yet.
var ErrNotFound = errors.New("no cached snapshot")

const snapshotKey = "fifa_26_championship_data"

type SnapshotStore struct {
	db *sql.DB
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Load reads the cached snapshot. Called at startup before any remote call
// completes, so the app can render immediately.
func (s *SnapshotStore) Load(ctx context.Context) (league.AppState, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM snapshots WHERE key = ?
	`, snapshotKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return league.Empty(), ErrNotFound
	}
	if err != nil {
		return league.Empty(), fmt.Errorf("reading snapshot: %w", err)
	}

	state := league.Empty()
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		// A corrupt cache behaves like an empty one; the next sync rewrites it.
		return league.Empty(), ErrNotFound
	}
	return state, nil
}

// Save overwrites the cached snapshot under the fixed key.
func (s *SnapshotStore) Save(ctx context.Context, state league.AppState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, payload, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, snapshotKey, string(payload))
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
