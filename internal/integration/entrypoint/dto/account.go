// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Currency       string          `json:"currency" binding:"required"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name     string `json:"name" binding:"required"`
	Currency string `json:"currency" binding:"required"`
}

// ReorderAccountsRequest represents the request body for account reordering.
type ReorderAccountsRequest struct {
	OrderedIDs []string `json:"ordered_ids" binding:"required"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Currency       string          `json:"currency"`
	SortIndex      int             `json:"sort_index"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse.
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:             a.ID.String(),
		Name:           a.Name,
		InitialBalance: a.InitialBalance,
		CurrentBalance: a.CurrentBalance,
		Currency:       a.Currency,
		SortIndex:      a.SortIndex,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ToAccountListResponse converts a list of accounts to an AccountListResponse.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		responses[i] = ToAccountResponse(a)
	}
	return AccountListResponse{Accounts: responses}
}
