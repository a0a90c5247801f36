package scheduler

import "github.com/hypatia-cli/hypatia/internal/domain"

// Selection identifies the chosen category and question.
type Selection struct {
	CategoryKey   string
	QuestionIndex int
	Question      string
	Score         float64
}

// SelectNext picks the next question to present. Categories with no pending
// question (every prompt answered, not skipped) are excluded; the highest
// scoring remaining category wins, with ties broken by bank declaration
// order. Within the winner the first pending question is chosen. Returns
// false when the whole bank is exhausted.
//
// The caller must record the selection in the usage tracker exactly once per
// question actually presented; SelectNext itself never mutates state.
func SelectNext(
	categories []domain.Category,
	ledger domain.Ledger,
	usage map[string]domain.CategoryUsage,
	priorities map[string]float64,
	totalAnswers int,
) (Selection, bool) {
	best := Selection{QuestionIndex: -1}
	found := false

	for _, c := range categories {
		qi := firstPending(c, ledger)
		if qi < 0 {
			continue
		}
		priority := domain.DefaultPriority
		if p, ok := priorities[c.Key]; ok {
			priority = p
		}
		score := Score(priority, usage[c.Key], totalAnswers)
		// Strict > keeps the first declared category among ties.
		if !found || score > best.Score {
			best = Selection{
				CategoryKey:   c.Key,
				QuestionIndex: qi,
				Question:      c.Questions[qi],
				Score:         score,
			}
			found = true
		}
	}

	return best, found
}

// firstPending returns the index of the first question in declared order
// whose ledger entry is missing or a skip marker, or -1 when the category is
// fully answered.
func firstPending(c domain.Category, ledger domain.Ledger) int {
	for i, q := range c.Questions {
		if ledger.Pending(q) {
			return i
		}
	}
	return -1
}

// Exhausted reports whether every question in every category has a
// substantive (non-skip) answer.
func Exhausted(categories []domain.Category, ledger domain.Ledger) bool {
	for _, c := range categories {
		if firstPending(c, ledger) >= 0 {
			return false
		}
	}
	return true
}

// CategoryComplete reports whether a single category has no pending question
// left.
func CategoryComplete(c domain.Category, ledger domain.Ledger) bool {
	return firstPending(c, ledger) < 0
}
