// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the rolling window a budget applies to.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a spending limit for a category over a period. Spend is
// never stored here; the budget service derives it from expense transactions
// whose description starts with Category.
type Budget struct {
	ID        uuid.UUID
	Category  string
	Amount    decimal.Decimal
	Period    BudgetPeriod
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(category string, amount decimal.Decimal, period BudgetPeriod, currency string) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		Category:  category,
		Amount:    amount,
		Period:    period,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BudgetWithSpending pairs a budget with its derived period-to-date spend,
// expressed in the budget's currency.
type BudgetWithSpending struct {
	Budget *Budget
	Spent  decimal.Decimal
}
