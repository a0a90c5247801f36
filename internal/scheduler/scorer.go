// Package scheduler ranks question categories and selects the next question
// to present. Scoring favors categories that are both intrinsically important
// (priority) and under-served (low usage, long since last touched); dividing
// by usage keeps the score bounded so a high-priority category cannot
// dominate forever once it has been asked repeatedly.
package scheduler

import "github.com/hypatia-cli/hypatia/internal/domain"

// recencyWeight converts "answers since this category was last used" into
// usage-score units.
const recencyWeight = 0.1

// UsageScore combines how often a category has been used with how recently:
// count + 0.1 x (totalAnswers - lastUsedAtTotalAnswers).
func UsageScore(u domain.CategoryUsage, totalAnswers int) float64 {
	recency := float64(totalAnswers-u.LastUsedAtTotalAnswers) * recencyWeight
	return float64(u.Count) + recency
}

// Score is the selection score for a category: priority / (usageScore + 1).
// The +1 keeps the divisor positive for never-used categories. Holding
// priority fixed, increasing usage strictly decreases the score.
func Score(priority float64, u domain.CategoryUsage, totalAnswers int) float64 {
	return priority / (UsageScore(u, totalAnswers) + 1)
}
