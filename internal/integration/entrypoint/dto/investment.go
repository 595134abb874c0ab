// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// CreateInvestmentRequest represents the request body for recording a
// holding. When sync_to_transaction is set the purchase cost is expensed
// from account_id in the same operation.
type CreateInvestmentRequest struct {
	Name              string          `json:"name" binding:"required"`
	Type              string          `json:"type" binding:"required,oneof=stock fixed_deposit savings"`
	Amount            decimal.Decimal `json:"amount"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	CurrentPrice      decimal.Decimal `json:"current_price"`
	Currency          string          `json:"currency" binding:"required"`
	Date              string          `json:"date" binding:"required"`
	MaturityDate      *string         `json:"maturity_date,omitempty"`
	InterestRate      decimal.Decimal `json:"interest_rate"`
	InterestFrequency string          `json:"interest_frequency"`
	HandlingFee       decimal.Decimal `json:"handling_fee"`
	Notes             string          `json:"notes"`
	SyncToTransaction bool            `json:"sync_to_transaction"`
	AccountID         *string         `json:"account_id,omitempty" binding:"omitempty,uuid"`
}

// InvestmentActionRequest represents the request body for a lifecycle action
// (sell, close or withdraw).
type InvestmentActionRequest struct {
	Action            string          `json:"action" binding:"required,oneof=sell close withdraw"`
	Quantity          decimal.Decimal `json:"quantity"`
	Amount            decimal.Decimal `json:"amount"`
	ReturnAmount      decimal.Decimal `json:"return_amount"`
	Date              string          `json:"date" binding:"required"`
	SyncToTransaction bool            `json:"sync_to_transaction"`
	AccountID         *string         `json:"account_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateInvestmentRequest represents the request body for editing a holding's
// valuation or notes.
type UpdateInvestmentRequest struct {
	CurrentPrice decimal.Decimal `json:"current_price"`
	Notes        string          `json:"notes"`
}

// UpdateStockPriceRequest represents the request body for a bulk valuation
// update across every active lot of a symbol.
type UpdateStockPriceRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
}

// InvestmentResponse represents a single investment in API responses.
type InvestmentResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Type                string          `json:"type"`
	Amount              decimal.Decimal `json:"amount"`
	CostPrice           decimal.Decimal `json:"cost_price"`
	CurrentPrice        decimal.Decimal `json:"current_price"`
	Currency            string          `json:"currency"`
	Date                string          `json:"date"`
	MaturityDate        *string         `json:"maturity_date,omitempty"`
	InterestRate        decimal.Decimal `json:"interest_rate"`
	InterestFrequency   string          `json:"interest_frequency,omitempty"`
	HandlingFee         decimal.Decimal `json:"handling_fee"`
	Notes               string          `json:"notes,omitempty"`
	SourceAccountID     *string         `json:"source_account_id,omitempty"`
	LinkedTransactionID *string         `json:"linked_transaction_id,omitempty"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// InvestmentListResponse represents the response for listing investments.
type InvestmentListResponse struct {
	Investments []InvestmentResponse `json:"investments"`
}

// UpdateStockPriceResponse reports how many lots a bulk valuation update
// touched.
type UpdateStockPriceResponse struct {
	Updated int64 `json:"updated"`
}

// ToInvestmentResponse converts a domain Investment entity to an
// InvestmentResponse.
func ToInvestmentResponse(inv *entity.Investment) InvestmentResponse {
	response := InvestmentResponse{
		ID:                inv.ID.String(),
		Name:              inv.Name,
		Type:              string(inv.Type),
		Amount:            inv.Amount,
		CostPrice:         inv.CostPrice,
		CurrentPrice:      inv.CurrentPrice,
		Currency:          inv.Currency,
		Date:              inv.Date.Format(DateLayout),
		InterestRate:      inv.InterestRate,
		InterestFrequency: inv.InterestFrequency,
		HandlingFee:       inv.HandlingFee,
		Notes:             inv.Notes,
		Status:            string(inv.Status),
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
	}
	if inv.MaturityDate != nil {
		maturity := inv.MaturityDate.Format(DateLayout)
		response.MaturityDate = &maturity
	}
	if inv.SourceAccountID != nil {
		source := inv.SourceAccountID.String()
		response.SourceAccountID = &source
	}
	if inv.LinkedTransactionID != nil {
		linked := inv.LinkedTransactionID.String()
		response.LinkedTransactionID = &linked
	}
	return response
}

// ToInvestmentListResponse converts a list of investments to an
// InvestmentListResponse.
func ToInvestmentListResponse(investments []*entity.Investment) InvestmentListResponse {
	responses := make([]InvestmentResponse, len(investments))
	for i, inv := range investments {
		responses[i] = ToInvestmentResponse(inv)
	}
	return InvestmentListResponse{Investments: responses}
}
