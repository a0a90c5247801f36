package bank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypatia-cli/hypatia/internal/domain"
)

func TestForLanguage_BothBanksValid(t *testing.T) {
	for _, lang := range []domain.Language{domain.LangArabic, domain.LangEnglish} {
		b := ForLanguage(lang)
		require.NoError(t, b.Validate(), "bank for %s", lang)
		assert.Equal(t, lang, b.Language())
		assert.Len(t, b.Categories(), 25)
	}
}

func TestForLanguage_UnknownFallsBackToEnglish(t *testing.T) {
	b := ForLanguage(domain.Language("xx"))
	assert.Equal(t, domain.LangEnglish, b.Language())
}

func TestBank_QuestionPromptsUnique(t *testing.T) {
	for _, lang := range []domain.Language{domain.LangArabic, domain.LangEnglish} {
		b := ForLanguage(lang)
		seen := make(map[string]string)
		for _, c := range b.Categories() {
			for _, q := range c.Questions {
				prev, dup := seen[q]
				assert.False(t, dup, "question %q appears in both %s and %s", q, prev, c.Key)
				seen[q] = c.Key
			}
		}
	}
}

func TestBank_CategoryOf(t *testing.T) {
	b := ForLanguage(domain.LangEnglish)
	key, ok := b.CategoryOf("What is your name?")
	require.True(t, ok)
	assert.Equal(t, "personal_data", key)

	_, ok = b.CategoryOf("not a bank question")
	assert.False(t, ok)
}

func TestBank_IsPositive(t *testing.T) {
	en := ForLanguage(domain.LangEnglish)
	assert.True(t, en.IsPositive("Yes, definitely"))
	assert.True(t, en.IsPositive("sure thing"))
	assert.False(t, en.IsPositive("not really"))

	ar := ForLanguage(domain.LangArabic)
	assert.True(t, ar.IsPositive("نعم بالتأكيد"))
}

func TestBank_SummaryTemplates(t *testing.T) {
	b := ForLanguage(domain.LangEnglish)

	text, ok := b.Summary("cognitive_passion", "ancient philosophy and its history")
	require.True(t, ok)
	assert.Contains(t, text, "passionate")

	_, ok = b.Summary("personal_data", "anything")
	assert.False(t, ok, "categories without a template fall back to the generic recap")
	assert.NotEmpty(t, b.GenericSummary())
}

func TestBank_Prompts(t *testing.T) {
	b := ForLanguage(domain.LangEnglish)
	c, ok := b.Category("ethical_values")
	require.True(t, ok)

	follow := b.FollowUpPrompt(c)
	assert.Contains(t, follow, "Ethical Values")
	assert.False(t, strings.ContainsRune(follow, '⚖'), "follow-up uses the cleaned title")

	generated := b.GeneratedPrompt("justice")
	assert.Contains(t, generated, "justice")
}

func TestBank_SkipMarker(t *testing.T) {
	assert.Equal(t, "[Skipped]", ForLanguage(domain.LangEnglish).SkipMarker())
	assert.Equal(t, "[تم التخطي]", ForLanguage(domain.LangArabic).SkipMarker())
}
