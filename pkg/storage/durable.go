package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/blizbi/blizbi/pkg/db"
)

const durableSchema = `
	CREATE TABLE IF NOT EXISTS local_storage (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`

// Durable is a key-value store kept in a local SQLite file
type Durable struct {
	db *sqlx.DB
}

// OpenDurable opens (or creates) the local store at the given path.
// ":memory:" gives a store living as long as the returned value, handy for tests.
func OpenDurable(ctx context.Context, path string) (*Durable, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?mode=rwc&_txlock=immediate"
	}
	conn, err := db.Open(ctx, db.Config{DSN: dsn, MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		return nil, fmt.Errorf("open local storage %s: %w", path, err)
	}
	if _, err := conn.ExecContext(ctx, durableSchema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create local storage table: %w", err)
	}
	return &Durable{db: conn}, nil
}

// Get returns the value of the key
func (d *Durable) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := d.db.GetContext(ctx, &value, "SELECT value FROM local_storage WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores the value under the key, replacing the previous one
func (d *Durable) Set(ctx context.Context, key, value string) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Remove deletes the key, missing key is fine
func (d *Durable) Remove(ctx context.Context, key string) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM local_storage WHERE key = ?", key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Keys returns all stored keys sorted
func (d *Durable) Keys(ctx context.Context) ([]string, error) {
	keys := []string{}
	if err := d.db.SelectContext(ctx, &keys, "SELECT key FROM local_storage ORDER BY key"); err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}

// Close closes the underlying database
func (d *Durable) Close() error {
	return d.db.Close()
}
