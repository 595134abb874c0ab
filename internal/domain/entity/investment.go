// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentType classifies an investment holding.
type InvestmentType string

const (
	InvestmentTypeStock        InvestmentType = "stock"
	InvestmentTypeFixedDeposit InvestmentType = "fixed_deposit"
	InvestmentTypeSavings      InvestmentType = "savings"
)

// InvestmentStatus represents the lifecycle state of a holding. Transitions
// are one-directional: active → sold (stock) or active → closed
// (fixed_deposit/savings). Sold and closed are terminal.
type InvestmentStatus string

const (
	InvestmentStatusActive InvestmentStatus = "active"
	InvestmentStatusSold   InvestmentStatus = "sold"
	InvestmentStatusClosed InvestmentStatus = "closed"
)

// InvestmentAction is a lifecycle operation applied to an active holding.
type InvestmentAction string

const (
	InvestmentActionSell     InvestmentAction = "sell"
	InvestmentActionClose    InvestmentAction = "close"
	InvestmentActionWithdraw InvestmentAction = "withdraw"
)

// Investment represents a holding: equity shares, a term deposit, or flexible
// savings. Amount is the share count (stock) or principal (deposits/savings).
// For stocks, CostPrice is the total purchase cost of the lot and is kept
// unchanged on partial sells; per-share valuation uses CurrentPrice only.
// Settled records are retained, never deleted.
type Investment struct {
	ID                  uuid.UUID
	Name                string // Symbol or product name.
	Type                InvestmentType
	Amount              decimal.Decimal
	CostPrice           decimal.Decimal // Stock only: total cost of the lot.
	CurrentPrice        decimal.Decimal
	Currency            string
	Date                time.Time
	MaturityDate        *time.Time // Fixed deposit only.
	InterestRate        decimal.Decimal
	InterestFrequency   string // Savings only, e.g. "monthly".
	HandlingFee         decimal.Decimal
	Notes               string
	SourceAccountID     *uuid.UUID // Set when the purchase was ledger-synced.
	LinkedTransactionID *uuid.UUID // Expense transaction created at purchase.
	Status              InvestmentStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewInvestment creates a new active Investment entity.
func NewInvestment(
	name string,
	investmentType InvestmentType,
	amount decimal.Decimal,
	currency string,
	date time.Time,
) *Investment {
	now := time.Now().UTC()

	return &Investment{
		ID:        uuid.New(),
		Name:      name,
		Type:      investmentType,
		Amount:    amount,
		Currency:  currency,
		Date:      date,
		Status:    InvestmentStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Settled reports whether the holding has reached a terminal state.
func (i *Investment) Settled() bool {
	return i.Status == InvestmentStatusSold || i.Status == InvestmentStatusClosed
}

// PurchaseCost returns the amount debited from the source account at
// purchase time: total cost for stock, principal otherwise, plus the
// handling fee.
func (i *Investment) PurchaseCost() decimal.Decimal {
	if i.Type == InvestmentTypeStock {
		return i.CostPrice.Add(i.HandlingFee)
	}
	return i.Amount.Add(i.HandlingFee)
}
