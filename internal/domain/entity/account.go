// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a currency-denominated money account in the ledger.
//
// CurrentBalance is kept in sync with the transaction history by the
// services: it always equals InitialBalance plus the net effect of every
// transaction referencing this account.
type Account struct {
	ID             uuid.UUID
	Name           string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Currency       string
	SortIndex      int // User-controlled display order, independent of ID.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAccount creates a new Account entity. The current balance starts equal
// to the initial balance; SortIndex is assigned by the account service.
func NewAccount(name string, initialBalance decimal.Decimal, currency string, sortIndex int) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:             uuid.New(),
		Name:           name,
		InitialBalance: initialBalance,
		CurrentBalance: initialBalance,
		Currency:       currency,
		SortIndex:      sortIndex,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
