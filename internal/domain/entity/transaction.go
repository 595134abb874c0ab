// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind classifies a ledger movement.
type TransactionKind string

const (
	TransactionKindIncome   TransactionKind = "income"
	TransactionKindExpense  TransactionKind = "expense"
	TransactionKindTransfer TransactionKind = "transfer"
)

// Transaction represents a single ledger movement. Amount is always positive;
// the kind determines the sign of its effect on the account balance. A
// transfer is one record referencing both the source and target accounts.
type Transaction struct {
	ID              uuid.UUID
	Amount          decimal.Decimal
	Kind            TransactionKind
	Date            time.Time
	Description     string // Free text; a budget category key via prefix match.
	AccountID       uuid.UUID
	TargetAccountID *uuid.UUID // Set only for transfers.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTransaction creates a new income or expense Transaction entity.
func NewTransaction(
	accountID uuid.UUID,
	amount decimal.Decimal,
	kind TransactionKind,
	date time.Time,
	description string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		Amount:      amount,
		Kind:        kind,
		Date:        date,
		Description: description,
		AccountID:   accountID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewTransfer creates a new transfer Transaction entity between two accounts.
func NewTransfer(
	fromAccountID, toAccountID uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	description string,
) *Transaction {
	transfer := NewTransaction(fromAccountID, amount, TransactionKindTransfer, date, description)
	transfer.TargetAccountID = &toAccountID
	return transfer
}

// BalanceEffect returns the signed effect of this transaction on the given
// account's balance: positive for income into it, negative for expense out of
// it, and the matching sign for each leg of a transfer. Zero when the
// transaction does not touch the account.
func (t *Transaction) BalanceEffect(accountID uuid.UUID) decimal.Decimal {
	switch t.Kind {
	case TransactionKindIncome:
		if t.AccountID == accountID {
			return t.Amount
		}
	case TransactionKindExpense:
		if t.AccountID == accountID {
			return t.Amount.Neg()
		}
	case TransactionKindTransfer:
		if t.AccountID == accountID {
			return t.Amount.Neg()
		}
		if t.TargetAccountID != nil && *t.TargetAccountID == accountID {
			return t.Amount
		}
	}
	return decimal.Zero
}

// References reports whether the transaction touches the given account as
// either source or target.
func (t *Transaction) References(accountID uuid.UUID) bool {
	if t.AccountID == accountID {
		return true
	}
	return t.TargetAccountID != nil && *t.TargetAccountID == accountID
}
