// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"github.com/ledgerkeep/backend/internal/application/adapter"
)

// configCategoryStore serves the seed category list from configuration.
type configCategoryStore struct {
	categories []string
}

// NewConfigCategoryStore creates a category store backed by a static list.
func NewConfigCategoryStore(categories []string) adapter.CategoryStore {
	copied := make([]string, len(categories))
	copy(copied, categories)
	return &configCategoryStore{categories: copied}
}

// Categories returns the seed categories in configured order.
func (s *configCategoryStore) Categories() []string {
	return s.categories
}
