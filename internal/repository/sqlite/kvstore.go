package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/youth-portal/internal/domain"
)

// KeyValueStore implements domain.KeyValueStore on the local_storage table.
type KeyValueStore struct {
	db *sql.DB
}

// NewKeyValueStore creates a SQLite-backed KeyValueStore.
func NewKeyValueStore(db *DB) *KeyValueStore {
	return &KeyValueStore{db: db.SqlDB}
}

func (s *KeyValueStore) GetItem(ctx context.Context, namespace, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM local_storage WHERE namespace = ? AND item_key = ?`,
		namespace, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("query item %q: %w", key, err)
	}
	return value, nil
}

const upsertItemSQL = `INSERT INTO local_storage (namespace, item_key, value, updated_at)
	 VALUES (?, ?, ?, ?)
	 ON CONFLICT (namespace, item_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

func (s *KeyValueStore) SetItem(ctx context.Context, namespace, key, value string) error {
	_, err := s.db.ExecContext(ctx, upsertItemSQL, namespace, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert item %q: %w", key, err)
	}
	return nil
}

// UpdateItem runs the read and the write in one transaction.
func (s *KeyValueStore) UpdateItem(ctx context.Context, namespace, key string, fn func(current string, found bool) (string, error)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current string
	found := true
	err = tx.QueryRowContext(ctx,
		`SELECT value FROM local_storage WHERE namespace = ? AND item_key = ?`,
		namespace, key,
	).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		found = false
	} else if err != nil {
		return fmt.Errorf("query item %q: %w", key, err)
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, upsertItemSQL, namespace, key, next, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert item %q: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
