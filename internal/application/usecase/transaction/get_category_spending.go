// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/ledgerkeep/backend/internal/application/adapter"
)

// GetCategorySpendingInput represents the input for the monthly per-category
// expense breakdown.
type GetCategorySpendingInput struct {
	Year  int
	Month time.Month
}

// GetCategorySpendingOutput represents the output of the breakdown.
type GetCategorySpendingOutput struct {
	Spending []adapter.CategorySpending
}

// GetCategorySpendingUseCase handles the monthly spending breakdown.
type GetCategorySpendingUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetCategorySpendingUseCase creates a new GetCategorySpendingUseCase instance.
func NewGetCategorySpendingUseCase(transactionRepo adapter.TransactionRepository) *GetCategorySpendingUseCase {
	return &GetCategorySpendingUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute aggregates expense totals per description for the calendar month.
func (uc *GetCategorySpendingUseCase) Execute(ctx context.Context, input GetCategorySpendingInput) (*GetCategorySpendingOutput, error) {
	spending, err := uc.transactionRepo.GetCategorySpending(ctx, input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	return &GetCategorySpendingOutput{Spending: spending}, nil
}
