package domain

import (
	"strings"
	"unicode"
)

// InputKind selects how a category's questions collect their answer.
type InputKind string

const (
	InputText     InputKind = "text"
	InputSelect   InputKind = "select"
	InputCheckbox InputKind = "checkbox"
)

// CheckboxSeparator joins multi-select answers into a single ledger value.
const CheckboxSeparator = ", "

// Category is a themed group of question prompts sharing an input kind and,
// for select/checkbox kinds, a fixed option set. Question prompts must be
// unique across the whole bank for a language: they serve as ledger keys.
type Category struct {
	Key       string
	Title     string
	Kind      InputKind
	Options   []string
	Questions []string

	// Keywords drive post-exhaustion topic matching. They are curated per
	// language rather than derived from the title or question text.
	Keywords []string
}

// CleanTitle returns the title without its leading emoji decoration.
func (c Category) CleanTitle() string {
	return strings.TrimSpace(strings.TrimLeftFunc(c.Title, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}))
}

// Synthetic category keys and suffixes used by the conversation controller
// for prompts that do not belong to a bank category.
const (
	GeneratedCategoryKey = "generated_general"
	SummaryCategoryKey   = "summary_follow_up"
	FollowUpSuffix       = "_follow_up"
	ElaborationSuffix    = "_elaboration"
)
