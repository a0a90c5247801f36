package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hypatia-cli/hypatia/internal/db"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("setting %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("scanning setting: %w", err)
	}
	return value, nil
}

func (r *SQLiteSettingsRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("upserting setting: %w", err)
	}
	return nil
}

func (r *SQLiteSettingsRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting setting: %w", err)
	}
	return nil
}
