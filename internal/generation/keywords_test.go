package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypatia-cli/hypatia/internal/domain"
)

var testStopWords = map[string]struct{}{
	"with": {}, "that": {}, "this": {},
}

func TestTopToken_MostFrequentWins(t *testing.T) {
	ledger := domain.Ledger{
		"q1": domain.Answered("philosophy shapes everything"),
		"q2": domain.Answered("I read philosophy with coffee"),
		"q3": domain.Answered("history too"),
	}
	token, ok := TopToken(ledger, testStopWords)
	require.True(t, ok)
	assert.Equal(t, "philosophy", token)
}

func TestTopToken_DropsShortAndStopTokens(t *testing.T) {
	ledger := domain.Ledger{
		"q1": domain.Answered("cat cat cat with with with"),
		"q2": domain.Answered("reading"),
	}
	token, ok := TopToken(ledger, testStopWords)
	require.True(t, ok)
	assert.Equal(t, "reading", token, "three-rune tokens and stop-words never count")
}

func TestTopToken_SkipsNonSubstantive(t *testing.T) {
	ledger := domain.Ledger{
		"q1": domain.Skip(),
		"q2": domain.Answered(""),
	}
	_, ok := TopToken(ledger, testStopWords)
	assert.False(t, ok)
}

func TestTopToken_DeterministicTieBreak(t *testing.T) {
	ledger := domain.Ledger{
		"q1": domain.Answered("zebra apple"),
	}
	token, ok := TopToken(ledger, testStopWords)
	require.True(t, ok)
	assert.Equal(t, "apple", token, "ties resolve to the lexicographically smallest token")
}

func matchCategories() []domain.Category {
	return []domain.Category{
		{Key: "reading", Title: "Reading Habits", Keywords: []string{"books", "novel"}},
		{Key: "philosophy", Title: "Worldview", Keywords: []string{"philosophy", "ethics"}},
		{Key: "career", Title: "Career", Keywords: []string{"work", "profession"}},
	}
}

func TestMatchCategory_KeywordSearch(t *testing.T) {
	key, ok := MatchCategory("books", matchCategories(), nil, nil)
	require.True(t, ok)
	assert.Equal(t, "reading", key)

	key, ok = MatchCategory("PHILOSOPHY", matchCategories(), nil, nil)
	require.True(t, ok)
	assert.Equal(t, "philosophy", key)

	key, ok = MatchCategory("novels", matchCategories(), nil, nil)
	require.True(t, ok)
	assert.Equal(t, "reading", key, "an inflected token still lands on its keyword")
}

func TestMatchCategory_ExcludesRecent(t *testing.T) {
	// Only the last four recent categories count.
	_, ok := MatchCategory("books", matchCategories(), []string{"x", "y", "z", "reading"}, nil)
	assert.False(t, ok)

	// Pushed out of the window, the category matches again.
	key, ok := MatchCategory("books", matchCategories(), []string{"reading", "w", "x", "y", "z"}, nil)
	require.True(t, ok)
	assert.Equal(t, "reading", key)
}

func TestMatchCategory_HighestPriorityWins(t *testing.T) {
	cats := []domain.Category{
		{Key: "first", Keywords: []string{"topic"}},
		{Key: "second", Keywords: []string{"topic"}},
	}
	key, ok := MatchCategory("topic", cats, nil, map[string]float64{"second": 2.0})
	require.True(t, ok)
	assert.Equal(t, "second", key)

	key, ok = MatchCategory("topic", cats, nil, nil)
	require.True(t, ok)
	assert.Equal(t, "first", key, "equal priorities keep declaration order")
}

func TestMatchCategory_NoMatch(t *testing.T) {
	_, ok := MatchCategory("nonexistent", matchCategories(), nil, nil)
	assert.False(t, ok)

	_, ok = MatchCategory("", matchCategories(), nil, nil)
	assert.False(t, ok)
}
