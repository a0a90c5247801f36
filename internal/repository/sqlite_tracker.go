package repository

import (
	"context"
	"fmt"

	"github.com/hypatia-cli/hypatia/internal/db"
	"github.com/hypatia-cli/hypatia/internal/domain"
)

// SQLiteTrackerRepo implements TrackerRepo using a SQLite database.
type SQLiteTrackerRepo struct {
	db db.DBTX
}

// NewSQLiteTrackerRepo creates a new SQLiteTrackerRepo.
func NewSQLiteTrackerRepo(conn db.DBTX) *SQLiteTrackerRepo {
	return &SQLiteTrackerRepo{db: conn}
}

func (r *SQLiteTrackerRepo) GetUsage(ctx context.Context) (map[string]domain.CategoryUsage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, count, last_used_at_total FROM category_usage`)
	if err != nil {
		return nil, fmt.Errorf("listing category usage: %w", err)
	}
	defer rows.Close()

	usage := make(map[string]domain.CategoryUsage)
	for rows.Next() {
		var category string
		var u domain.CategoryUsage
		if err := rows.Scan(&category, &u.Count, &u.LastUsedAtTotalAnswers); err != nil {
			return nil, fmt.Errorf("scanning usage row: %w", err)
		}
		usage[category] = u
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating usage: %w", err)
	}
	return usage, nil
}

func (r *SQLiteTrackerRepo) PutUsage(ctx context.Context, category string, u domain.CategoryUsage) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO category_usage (category, count, last_used_at_total)
		 VALUES (?, ?, ?)
		 ON CONFLICT(category) DO UPDATE SET
		   count = excluded.count,
		   last_used_at_total = excluded.last_used_at_total`,
		category, u.Count, u.LastUsedAtTotalAnswers)
	if err != nil {
		return fmt.Errorf("upserting usage: %w", err)
	}
	return nil
}

func (r *SQLiteTrackerRepo) GetPriorities(ctx context.Context) (map[string]float64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, priority FROM category_priority`)
	if err != nil {
		return nil, fmt.Errorf("listing priorities: %w", err)
	}
	defer rows.Close()

	priorities := make(map[string]float64)
	for rows.Next() {
		var category string
		var p float64
		if err := rows.Scan(&category, &p); err != nil {
			return nil, fmt.Errorf("scanning priority row: %w", err)
		}
		priorities[category] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating priorities: %w", err)
	}
	return priorities, nil
}

func (r *SQLiteTrackerRepo) PutPriority(ctx context.Context, category string, priority float64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO category_priority (category, priority)
		 VALUES (?, ?)
		 ON CONFLICT(category) DO UPDATE SET priority = excluded.priority`,
		category, priority)
	if err != nil {
		return fmt.Errorf("upserting priority: %w", err)
	}
	return nil
}

func (r *SQLiteTrackerRepo) EnsureDefaults(ctx context.Context, categories []string) error {
	for _, category := range categories {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO category_usage (category, count, last_used_at_total) VALUES (?, 0, 0)`,
			category); err != nil {
			return fmt.Errorf("seeding usage for %s: %w", category, err)
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO category_priority (category, priority) VALUES (?, ?)`,
			category, domain.DefaultPriority); err != nil {
			return fmt.Errorf("seeding priority for %s: %w", category, err)
		}
	}
	return nil
}

func (r *SQLiteTrackerRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM category_usage`); err != nil {
		return fmt.Errorf("clearing usage: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM category_priority`); err != nil {
		return fmt.Errorf("clearing priorities: %w", err)
	}
	return nil
}
