package domain

import "fmt"

// Language selects which question bank and UI strings are active.
type Language string

const (
	LangArabic  Language = "ar"
	LangEnglish Language = "en"
)

// DefaultLanguage is used on first run when no setting is persisted.
const DefaultLanguage = LangArabic

// ParseLanguage validates a language code.
func ParseLanguage(code string) (Language, error) {
	switch Language(code) {
	case LangArabic, LangEnglish:
		return Language(code), nil
	}
	return "", fmt.Errorf("unsupported language %q (expected ar or en)", code)
}
