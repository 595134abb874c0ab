// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// BudgetRepository defines the persistence operations on budgets. Spend is
// derived by the budget service, never stored.
type BudgetRepository interface {
	// CreateBudget creates a new budget.
	CreateBudget(ctx context.Context, budget *entity.Budget) error

	// FindBudgetByID retrieves a budget by its ID.
	FindBudgetByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindBudgets retrieves all budgets.
	FindBudgets(ctx context.Context) ([]*entity.Budget, error)

	// UpdateBudget updates an existing budget.
	UpdateBudget(ctx context.Context, budget *entity.Budget) error

	// DeleteBudget removes a budget.
	DeleteBudget(ctx context.Context, id uuid.UUID) error

	// ImportBudgets bulk-inserts budgets preserving their IDs.
	ImportBudgets(ctx context.Context, budgets []*entity.Budget) error
}
