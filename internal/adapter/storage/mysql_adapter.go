package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/pinkstock/internal/port"
)

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// EnsureSchema creates the key-value table if it does not exist yet.
func (m *MySQLAdapter) EnsureSchema(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_store (
			k VARCHAR(191) NOT NULL PRIMARY KEY,
			v LONGTEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("create kv_store: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := m.db.QueryRowContext(ctx, `SELECT v FROM kv_store WHERE k = ?`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", port.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("query kv_store: %w", err)
	}

	return value, nil
}

func (m *MySQLAdapter) Set(ctx context.Context, key, value string) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO kv_store (k, v) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v)`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert kv_store: %w", err)
	}

	return nil
}
