// Package bank holds the static, language-indexed question bank: categories
// with their prompts, input kinds and option sets, the keyword boost rules,
// positive-answer word lists, stop-words, and user-facing strings. The bank
// is immutable after construction; the engine only reads from it.
package bank

import (
	"fmt"
	"strings"

	"github.com/hypatia-cli/hypatia/internal/domain"
)

// Bank is the category store for one language.
type Bank struct {
	lang       domain.Language
	categories []domain.Category
	byKey      map[string]int
	byQuestion map[string]string // question text -> category key
	rules      []domain.BoostRule
	positive   []string
	stop       map[string]struct{}
	ui         UIStrings
}

// ForLanguage returns the bank for the given language, falling back to
// English for unknown codes.
func ForLanguage(lang domain.Language) *Bank {
	categories, ok := categoryTables[lang]
	if !ok {
		lang = domain.LangEnglish
		categories = categoryTables[lang]
	}
	b := &Bank{
		lang:       lang,
		categories: categories,
		byKey:      make(map[string]int, len(categories)),
		byQuestion: make(map[string]string),
		rules:      boostRules[lang],
		positive:   positiveWords[lang],
		stop:       make(map[string]struct{}),
		ui:         uiStrings[lang],
	}
	for i, c := range categories {
		b.byKey[c.Key] = i
		for _, q := range c.Questions {
			b.byQuestion[q] = c.Key
		}
	}
	for _, w := range stopWords[lang] {
		b.stop[w] = struct{}{}
	}
	return b
}

// Language returns the bank's language code.
func (b *Bank) Language() domain.Language { return b.lang }

// Categories returns all categories in declaration order. Callers must not
// mutate the returned slice.
func (b *Bank) Categories() []domain.Category { return b.categories }

// Category looks up a category by key.
func (b *Bank) Category(key string) (domain.Category, bool) {
	i, ok := b.byKey[key]
	if !ok {
		return domain.Category{}, false
	}
	return b.categories[i], true
}

// CategoryOf resolves the category key owning the given question prompt.
// Generated and synthetic prompts resolve to false.
func (b *Bank) CategoryOf(question string) (string, bool) {
	key, ok := b.byQuestion[question]
	return key, ok
}

// Title returns the display title for a category key, or the key itself for
// synthetic categories with no bank entry.
func (b *Bank) Title(key string) string {
	if c, ok := b.Category(key); ok {
		return c.Title
	}
	return key
}

// Rules returns the keyword boost rules for this language.
func (b *Bank) Rules() []domain.BoostRule { return b.rules }

// IsPositive reports whether the answer reads as affirmative (used to decide
// whether a follow-up leads into an elaboration).
func (b *Bank) IsPositive(answer string) bool {
	lowered := strings.ToLower(answer)
	for _, w := range b.positive {
		if strings.Contains(lowered, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// StopWords returns the stop-word set used by new-question generation.
func (b *Bank) StopWords() map[string]struct{} { return b.stop }

// UI returns the user-facing strings for this language.
func (b *Bank) UI() UIStrings { return b.ui }

// SkipMarker is the bracket-wrapped sentinel written to export documents for
// skipped questions.
func (b *Bank) SkipMarker() string { return b.ui.SkipMarker }

// FollowUpPrompt builds the generic "anything more on this topic?" prompt
// for a category.
func (b *Bank) FollowUpPrompt(c domain.Category) string {
	return fmt.Sprintf(b.ui.FollowUpFormat, c.CleanTitle())
}

// GeneratedPrompt builds the templated fallback question embedding the most
// frequent answer token.
func (b *Bank) GeneratedPrompt(token string) string {
	return fmt.Sprintf(b.ui.SpeakingOfFormat, token)
}

// Summary builds a recap for a recent substantive answer. Categories with a
// dedicated template get a tailored recap; everything else reports false so
// the caller can fall back to the generic summary.
func (b *Bank) Summary(categoryKey, answer string) (string, bool) {
	tmpl, ok := summaryTemplates[b.lang][categoryKey]
	if !ok {
		return "", false
	}
	return tmpl(answer), true
}

// GenericSummary is the recap used when no category template applies.
func (b *Bank) GenericSummary() string { return b.ui.SummaryGeneric }

// Validate checks the bank invariants: non-empty categories, options present
// for select/checkbox kinds, and question prompts unique across the whole
// bank. The static tables are covered by tests; Validate exists so imports
// of future language tables can be sanity-checked the same way.
func (b *Bank) Validate() error {
	seen := make(map[string]string)
	for _, c := range b.categories {
		if len(c.Questions) == 0 {
			return fmt.Errorf("category %s: no questions", c.Key)
		}
		if (c.Kind == domain.InputSelect || c.Kind == domain.InputCheckbox) && len(c.Options) == 0 {
			return fmt.Errorf("category %s: kind %s requires options", c.Key, c.Kind)
		}
		if len(c.Keywords) == 0 {
			return fmt.Errorf("category %s: no keywords", c.Key)
		}
		for _, q := range c.Questions {
			if owner, dup := seen[q]; dup {
				return fmt.Errorf("question %q declared in both %s and %s", q, owner, c.Key)
			}
			seen[q] = c.Key
		}
	}
	return nil
}
