// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"time"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for budget listing. Now is
// injectable for deterministic windows in tests.
type ListBudgetsInput struct {
	Now time.Time
}

// ListBudgetsOutput represents the output of budget listing.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetWithSpending
}

// ListBudgetsUseCase lists budgets with their derived period-to-date spend.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
	spending   *GetBudgetSpendingUseCase
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, spending *GetBudgetSpendingUseCase) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
		spending:   spending,
	}
}

// Execute returns every budget paired with its spend.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindBudgets(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.BudgetWithSpending, 0, len(budgets))
	for _, budget := range budgets {
		spending, err := uc.spending.Execute(ctx, GetBudgetSpendingInput{BudgetID: budget.ID, Now: input.Now})
		if err != nil {
			return nil, err
		}
		result = append(result, &entity.BudgetWithSpending{
			Budget: budget,
			Spent:  spending.Spent,
		})
	}

	return &ListBudgetsOutput{Budgets: result}, nil
}
