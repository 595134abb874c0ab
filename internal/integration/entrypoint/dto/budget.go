// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Period   string          `json:"period" binding:"required,oneof=weekly monthly yearly"`
	Currency string          `json:"currency" binding:"required"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Period   string          `json:"period" binding:"required,oneof=weekly monthly yearly"`
	Currency string          `json:"currency" binding:"required"`
}

// BudgetResponse represents a single budget in API responses. Spent is the
// derived period-to-date spend in the budget's currency.
type BudgetResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    string          `json:"period"`
	Currency  string          `json:"currency"`
	Spent     decimal.Decimal `json:"spent"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// CategoryListResponse represents the category suggestion list.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse.
func ToBudgetResponse(b *entity.Budget, spent decimal.Decimal) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID.String(),
		Category:  b.Category,
		Amount:    b.Amount,
		Period:    string(b.Period),
		Currency:  b.Currency,
		Spent:     spent,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBudgetListResponse converts budgets with derived spend to a
// BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.BudgetWithSpending) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(b.Budget, b.Spent)
	}
	return BudgetListResponse{Budgets: responses}
}
