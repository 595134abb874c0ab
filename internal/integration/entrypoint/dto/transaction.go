// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

// CreateTransactionRequest represents the request body for recording an
// income or expense movement.
type CreateTransactionRequest struct {
	AccountID   string          `json:"account_id" binding:"required,uuid"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind" binding:"required,oneof=income expense"`
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description"`
}

// UpdateTransactionRequest represents the request body for editing an income
// or expense movement.
type UpdateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind" binding:"required,oneof=income expense"`
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description"`
}

// TransferRequest represents the request body for a transfer between
// accounts.
type TransferRequest struct {
	FromAccountID string          `json:"from_account_id" binding:"required,uuid"`
	ToAccountID   string          `json:"to_account_id" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date" binding:"required"`
	Description   string          `json:"description"`
}

// UpdateTransferRequest represents the request body for editing a transfer,
// account endpoints included.
type UpdateTransferRequest struct {
	FromAccountID string          `json:"from_account_id" binding:"required,uuid"`
	ToAccountID   string          `json:"to_account_id" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date" binding:"required"`
	Description   string          `json:"description"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Kind            string          `json:"kind"`
	Date            string          `json:"date"`
	Description     string          `json:"description"`
	AccountID       string          `json:"account_id"`
	TargetAccountID *string         `json:"target_account_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// CategorySpendingResponse is one row of the monthly spending breakdown.
type CategorySpendingResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// CategorySpendingListResponse represents the monthly spending breakdown.
type CategorySpendingListResponse struct {
	Spending []CategorySpendingResponse `json:"spending"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          t.ID.String(),
		Amount:      t.Amount,
		Kind:        string(t.Kind),
		Date:        t.Date.Format(DateLayout),
		Description: t.Description,
		AccountID:   t.AccountID.String(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.TargetAccountID != nil {
		target := t.TargetAccountID.String()
		response.TargetAccountID = &target
	}
	return response
}

// ToTransactionListResponse converts a list of transactions to a
// TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{Transactions: responses}
}

// ToCategorySpendingListResponse converts aggregation rows to a
// CategorySpendingListResponse.
func ToCategorySpendingListResponse(spending []adapter.CategorySpending) CategorySpendingListResponse {
	responses := make([]CategorySpendingResponse, len(spending))
	for i, s := range spending {
		responses[i] = CategorySpendingResponse{Category: s.Category, Total: s.Total}
	}
	return CategorySpendingListResponse{Spending: responses}
}
