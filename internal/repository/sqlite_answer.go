package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hypatia-cli/hypatia/internal/db"
	"github.com/hypatia-cli/hypatia/internal/domain"
)

// SQLiteAnswerRepo implements AnswerRepo using a SQLite database.
type SQLiteAnswerRepo struct {
	db db.DBTX
}

// NewSQLiteAnswerRepo creates a new SQLiteAnswerRepo.
func NewSQLiteAnswerRepo(conn db.DBTX) *SQLiteAnswerRepo {
	return &SQLiteAnswerRepo{db: conn}
}

func (r *SQLiteAnswerRepo) Get(ctx context.Context, question string) (domain.Answer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT value, skipped FROM answers WHERE question = ?`, question)

	var value sql.NullString
	var skipped int
	if err := row.Scan(&value, &skipped); err != nil {
		if err == sql.ErrNoRows {
			return domain.Answer{}, fmt.Errorf("answer %q: %w", question, ErrNotFound)
		}
		return domain.Answer{}, fmt.Errorf("scanning answer: %w", err)
	}
	return scanAnswer(value, skipped), nil
}

func (r *SQLiteAnswerRepo) List(ctx context.Context) (domain.Ledger, error) {
	return r.list(ctx, `SELECT question, value, skipped FROM answers`)
}

func (r *SQLiteAnswerRepo) ListByCategory(ctx context.Context, category string) (domain.Ledger, error) {
	return r.list(ctx, `SELECT question, value, skipped FROM answers WHERE category = ?`, category)
}

func (r *SQLiteAnswerRepo) list(ctx context.Context, query string, args ...any) (domain.Ledger, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}
	defer rows.Close()

	ledger := make(domain.Ledger)
	for rows.Next() {
		var question string
		var value sql.NullString
		var skipped int
		if err := rows.Scan(&question, &value, &skipped); err != nil {
			return nil, fmt.Errorf("scanning answer row: %w", err)
		}
		ledger[question] = scanAnswer(value, skipped)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answers: %w", err)
	}
	return ledger, nil
}

func (r *SQLiteAnswerRepo) RecentSubstantive(ctx context.Context, limit int) ([]LedgerEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT question, value, category FROM answers
		 WHERE skipped = 0 AND value IS NOT NULL AND value != ''
		 ORDER BY updated_at DESC, question ASC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent answers: %w", err)
	}
	defer rows.Close()

	var entries []LedgerEntry
	for rows.Next() {
		var e LedgerEntry
		var value sql.NullString
		if err := rows.Scan(&e.Question, &value, &e.Category); err != nil {
			return nil, fmt.Errorf("scanning recent answer: %w", err)
		}
		e.Answer = domain.Answered(value.String)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recent answers: %w", err)
	}
	return entries, nil
}

func (r *SQLiteAnswerRepo) Put(ctx context.Context, question, category string, a domain.Answer) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answers (question, value, skipped, category, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(question) DO UPDATE SET
		   value = excluded.value,
		   skipped = excluded.skipped,
		   category = excluded.category,
		   updated_at = excluded.updated_at`,
		question, answerValue(a), boolToInt(a.Skipped), category, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting answer: %w", err)
	}
	return nil
}

func (r *SQLiteAnswerRepo) Delete(ctx context.Context, question string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM answers WHERE question = ?`, question)
	if err != nil {
		return fmt.Errorf("deleting answer: %w", err)
	}
	return nil
}

func (r *SQLiteAnswerRepo) CountSubstantive(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM answers WHERE skipped = 0 AND value IS NOT NULL AND value != ''`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("counting answers: %w", err)
	}
	return n, nil
}

func (r *SQLiteAnswerRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM answers`); err != nil {
		return fmt.Errorf("clearing answers: %w", err)
	}
	return nil
}

func scanAnswer(value sql.NullString, skipped int) domain.Answer {
	if intToBool(skipped) {
		return domain.Skip()
	}
	return domain.Answered(value.String)
}

func answerValue(a domain.Answer) any {
	if a.Skipped {
		return nil
	}
	return a.Value
}
