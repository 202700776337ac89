package usecase

import "github.com/precoscan/backend/internal/domain"

// BuildSearchQuery produces the shopping search query for a registered
// product. The name is sanitized first; the category travels only when it
// is non-empty after sanitizing, so untagged products produce no filter
// parameter at all. Pure function.
func BuildSearchQuery(name, category string) domain.SearchQuery {
	return domain.SearchQuery{
		Query:    SanitizeQueryText(name),
		Category: SanitizeQueryText(category),
	}
}
