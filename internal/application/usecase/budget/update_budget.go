// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update.
type UpdateBudgetInput struct {
	ID       uuid.UUID
	Category string
	Amount   decimal.Decimal
	Period   entity.BudgetPeriod
	Currency string
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	notifier   adapter.ChangeNotifier
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, notifier adapter.ChangeNotifier) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		notifier:   notifier,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
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

	budget, err := uc.budgetRepo.FindBudgetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	budget.Category = input.Category
	budget.Amount = input.Amount
	budget.Period = input.Period
	budget.Currency = input.Currency
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.UpdateBudget(ctx, budget); err != nil {
		return nil, err
	}

	uc.notifier.Notify()

	return &UpdateBudgetOutput{Budget: budget}, nil
}
