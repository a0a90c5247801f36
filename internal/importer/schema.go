// Package importer defines the portable bundle format shared by export and
// import, detects which of the two accepted shapes a document uses, and
// validates ledger entries without letting one bad entry abort the rest.
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidFormat is returned when the document is not JSON or its top-level
// value is not an object.
var ErrInvalidFormat = errors.New("invalid data format")

// UsageEntry mirrors domain.CategoryUsage on the wire.
type UsageEntry struct {
	Count                  int `json:"count"`
	LastUsedAtTotalAnswers int `json:"lastUsedAtTotalAnswers"`
}

// Bundle is the full persisted bundle: the export document shape. Answers
// values are string-or-null; skip markers travel as bracket-wrapped strings.
type Bundle struct {
	Answers      map[string]*string    `json:"answers"`
	Usage        map[string]UsageEntry `json:"usage,omitempty"`
	Priorities   map[string]float64    `json:"priorities,omitempty"`
	Language     string                `json:"language,omitempty"`
	TotalAnswers int                   `json:"totalAnswers,omitempty"`
	UserID       string                `json:"userId,omitempty"`
	Version      string                `json:"version,omitempty"`
	Timestamp    string                `json:"timestamp,omitempty"`
}

// Document is the parse result: either a full bundle or a legacy bare ledger
// promoted into Bundle.Answers, plus per-entry diagnostics for anything
// dropped during validation.
type Document struct {
	Bundle   Bundle
	Legacy   bool
	Warnings []string
}

// LoadDocument reads and parses a bundle file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}

// ParseDocument accepts either the full bundle shape (top-level "answers"
// object) or a legacy bare map of question to answer. Invalid ledger entries
// (non-string, non-null values) are dropped with a warning; a top-level value
// that is not an object fails with ErrInvalidFormat.
func ParseDocument(data []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	doc := &Document{}
	var rawAnswers map[string]json.RawMessage
	if raw, full := top["answers"]; full {
		// Full bundle shape: "answers" must itself be an object.
		if err := json.Unmarshal(raw, &rawAnswers); err != nil {
			return nil, fmt.Errorf("%w: answers is not an object", ErrInvalidFormat)
		}
		if err := json.Unmarshal(data, &doc.Bundle); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	} else {
		doc.Legacy = true
		rawAnswers = top
	}

	doc.Bundle.Answers, doc.Warnings = validateAnswers(rawAnswers)
	return doc, nil
}
