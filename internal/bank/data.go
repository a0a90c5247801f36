package bank

import "github.com/hypatia-cli/hypatia/internal/domain"

var categoryTables = map[domain.Language][]domain.Category{
	domain.LangEnglish: englishCategories,
	domain.LangArabic:  arabicCategories,
}
