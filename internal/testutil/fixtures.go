package testutil

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/hypatia-cli/hypatia/internal/bank"
	"github.com/hypatia-cli/hypatia/internal/domain"
)

// seedAnswer writes a ledger row directly, bypassing the repository layer so
// this package stays import-cycle free.
func seedAnswer(t *testing.T, database *sql.DB, question, category string, a domain.Answer) {
	t.Helper()
	var value any
	if !a.Skipped {
		value = a.Value
	}
	_, err := database.Exec(
		`INSERT INTO answers (question, value, skipped, category, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(question) DO UPDATE SET
		   value = excluded.value,
		   skipped = excluded.skipped,
		   category = excluded.category,
		   updated_at = excluded.updated_at`,
		question, value, boolToInt(a.Skipped), category, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("seeding answer for %q: %v", question, err)
	}
}

// SeedAnswer records one answer attributed to the question's bank category.
func SeedAnswer(t *testing.T, database *sql.DB, b *bank.Bank, question, value string) {
	t.Helper()
	key, ok := b.CategoryOf(question)
	if !ok {
		key = domain.GeneratedCategoryKey
	}
	seedAnswer(t, database, question, key, domain.Answered(value))
}

// SeedSkip records a skip marker for a question.
func SeedSkip(t *testing.T, database *sql.DB, b *bank.Bank, question string) {
	t.Helper()
	key, ok := b.CategoryOf(question)
	if !ok {
		key = domain.GeneratedCategoryKey
	}
	seedAnswer(t, database, question, key, domain.Skip())
}

// AnswerEverything writes a substantive answer for every question in the
// bank, leaving the scheduler exhausted. Answers embed the question index so
// they stay distinct.
func AnswerEverything(t *testing.T, database *sql.DB, b *bank.Bank) int {
	t.Helper()
	n := 0
	for _, c := range b.Categories() {
		for _, q := range c.Questions {
			answer := fmt.Sprintf("recorded answer number %d for testing", n)
			if c.Kind != domain.InputText && len(c.Options) > 0 {
				answer = c.Options[0]
			}
			seedAnswer(t, database, q, c.Key, domain.Answered(answer))
			n++
		}
	}
	return n
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
