package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument_FullBundle(t *testing.T) {
	data := []byte(`{
		"answers": {"What is your name?": "Hypatia", "skipped one": "[Skipped]"},
		"usage": {"personal_data": {"count": 2, "lastUsedAtTotalAnswers": 5}},
		"priorities": {"personal_data": 1.5},
		"language": "en",
		"totalAnswers": 7,
		"userId": "abc-123",
		"version": "1.0.0",
		"timestamp": "2026-01-02T03:04:05Z"
	}`)

	doc, err := ParseDocument(data)
	require.NoError(t, err)
	assert.False(t, doc.Legacy)
	assert.Empty(t, doc.Warnings)
	assert.Len(t, doc.Bundle.Answers, 2)
	require.NotNil(t, doc.Bundle.Answers["What is your name?"])
	assert.Equal(t, "Hypatia", *doc.Bundle.Answers["What is your name?"])
	assert.Equal(t, 2, doc.Bundle.Usage["personal_data"].Count)
	assert.Equal(t, 5, doc.Bundle.Usage["personal_data"].LastUsedAtTotalAnswers)
	assert.Equal(t, 1.5, doc.Bundle.Priorities["personal_data"])
	assert.Equal(t, "en", doc.Bundle.Language)
	assert.Equal(t, 7, doc.Bundle.TotalAnswers)
	assert.Equal(t, "abc-123", doc.Bundle.UserID)
}

func TestParseDocument_LegacyBareMap(t *testing.T) {
	data := []byte(`{"q1": "answer one", "q2": null}`)

	doc, err := ParseDocument(data)
	require.NoError(t, err)
	assert.True(t, doc.Legacy)
	assert.Len(t, doc.Bundle.Answers, 2)
	assert.Nil(t, doc.Bundle.Answers["q2"])
}

func TestParseDocument_InvalidTopLevel(t *testing.T) {
	for _, data := range []string{`[]`, `"string"`, `42`, `not json`} {
		_, err := ParseDocument([]byte(data))
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %s", data)
	}
}

func TestParseDocument_AnswersNotObject(t *testing.T) {
	_, err := ParseDocument([]byte(`{"answers": [1, 2, 3]}`))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseDocument_DropsInvalidEntries(t *testing.T) {
	data := []byte(`{"good": "text", "bad number": 5, "bad object": {"x": 1}, "also good": null}`)

	doc, err := ParseDocument(data)
	require.NoError(t, err)
	assert.Len(t, doc.Bundle.Answers, 2, "invalid entries are dropped, not fatal")
	assert.Len(t, doc.Warnings, 2)
	assert.NotContains(t, doc.Bundle.Answers, "bad number")
}
