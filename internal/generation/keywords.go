// Package generation synthesizes a follow-on question once the fixed bank is
// exhausted. It is a keyword-frequency heuristic over the recorded answers,
// not semantic understanding: the most frequent substantive token steers the
// choice of which category to revisit, or seeds a templated question when no
// category matches.
package generation

import (
	"strings"
	"unicode/utf8"

	"github.com/hypatia-cli/hypatia/internal/domain"
)

// MinSubstantiveAnswers is the minimum ledger size before generation kicks
// in; below it the caller falls back to re-invoking the scheduler.
const MinSubstantiveAnswers = 5

// minTokenRunes: tokens this short are noise and never counted.
const minTokenRunes = 4

// maxRecentExcluded bounds how many recently-used categories are excluded
// from the match search.
const maxRecentExcluded = 4

// TopToken tokenizes all substantive answers (lowercased, whitespace split),
// discards stop-words and short tokens, and returns the most frequent token.
// Ties break to the lexicographically smallest token so the result is
// deterministic for a given ledger.
func TopToken(ledger domain.Ledger, stopWords map[string]struct{}) (string, bool) {
	counts := make(map[string]int)
	for _, a := range ledger {
		if !a.IsSubstantive() {
			continue
		}
		for _, token := range strings.Fields(strings.ToLower(a.Value)) {
			if utf8.RuneCountInString(token) < minTokenRunes {
				continue
			}
			if _, stop := stopWords[token]; stop {
				continue
			}
			counts[token]++
		}
	}

	best := ""
	bestCount := 0
	for token, n := range counts {
		if n > bestCount || (n == bestCount && bestCount > 0 && token < best) {
			best = token
			bestCount = n
		}
	}
	return best, bestCount > 0
}

// MatchCategory matches the token against each category's curated keyword
// list, excluding up to the last four recently-used categories. Among matches
// the highest current priority wins; ties keep bank declaration order. The
// matched category may or may not still have pending questions; the caller
// decides what to do with it.
func MatchCategory(
	token string,
	categories []domain.Category,
	recent []string,
	priorities map[string]float64,
) (string, bool) {
	if token == "" {
		return "", false
	}
	excluded := make(map[string]struct{}, maxRecentExcluded)
	start := len(recent) - maxRecentExcluded
	if start < 0 {
		start = 0
	}
	for _, key := range recent[start:] {
		excluded[key] = struct{}{}
	}

	lowered := strings.ToLower(token)
	bestKey := ""
	bestPriority := 0.0
	for _, c := range categories {
		if _, skip := excluded[c.Key]; skip {
			continue
		}
		if !categoryMentions(c, lowered) {
			continue
		}
		priority := domain.DefaultPriority
		if p, ok := priorities[c.Key]; ok {
			priority = p
		}
		if bestKey == "" || priority > bestPriority {
			bestKey = c.Key
			bestPriority = priority
		}
	}
	return bestKey, bestKey != ""
}

// categoryMentions accepts a match when the token and a keyword contain each
// other in either direction, so inflected forms ("learning" vs "learn",
// Arabic definite articles) still land on their category.
func categoryMentions(c domain.Category, loweredToken string) bool {
	for _, kw := range c.Keywords {
		lowered := strings.ToLower(kw)
		if strings.Contains(loweredToken, lowered) || strings.Contains(lowered, loweredToken) {
			return true
		}
	}
	return false
}
