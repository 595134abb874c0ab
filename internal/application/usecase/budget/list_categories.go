// Package budget contains budget-related use cases.
package budget

import (
	"context"

	"github.com/ledgerkeep/backend/internal/application/adapter"
)

// ListCategoriesOutput represents the output of category listing.
type ListCategoriesOutput struct {
	Categories []string
}

// ListCategoriesUseCase merges the configured seed categories with the
// distinct categories already present in the transaction history, for budget
// category selection.
type ListCategoriesUseCase struct {
	categoryStore   adapter.CategoryStore
	transactionRepo adapter.TransactionRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryStore adapter.CategoryStore, transactionRepo adapter.TransactionRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryStore:   categoryStore,
		transactionRepo: transactionRepo,
	}
}

// Execute returns seed categories first, then ledger-derived ones, without
// duplicates.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	derived, err := uc.transactionRepo.GetDistinctCategories(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	categories := make([]string, 0, len(derived))
	for _, category := range uc.categoryStore.Categories() {
		if !seen[category] {
			seen[category] = true
			categories = append(categories, category)
		}
	}
	for _, category := range derived {
		if !seen[category] {
			seen[category] = true
			categories = append(categories, category)
		}
	}

	return &ListCategoriesOutput{Categories: categories}, nil
}
