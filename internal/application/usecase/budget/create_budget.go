// Package budget contains budget-related use cases.
package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	Category string
	Amount   decimal.Decimal
	Period   entity.BudgetPeriod
	Currency string
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	notifier   adapter.ChangeNotifier
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, notifier adapter.ChangeNotifier) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		notifier:   notifier,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if !isValidPeriod(input.Period) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"budget period must be 'weekly', 'monthly' or 'yearly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	budget := entity.NewBudget(input.Category, input.Amount, input.Period, input.Currency)
	if err := uc.budgetRepo.CreateBudget(ctx, budget); err != nil {
		return nil, err
	}

	uc.notifier.Notify()

	return &CreateBudgetOutput{Budget: budget}, nil
}
