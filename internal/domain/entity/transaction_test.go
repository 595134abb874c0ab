// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestTransaction_BalanceEffect(t *testing.T) {
	source := uuid.New()
	target := uuid.New()
	other := uuid.New()
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("150.50")

	income := NewTransaction(source, amount, TransactionKindIncome, date, "salary")
	expense := NewTransaction(source, amount, TransactionKindExpense, date, "groceries")
	transfer := NewTransfer(source, target, amount, date, "move")

	tests := []struct {
		name        string
		transaction *Transaction
		accountID   uuid.UUID
		want        decimal.Decimal
	}{
		{
			name:        "income credits its account",
			transaction: income,
			accountID:   source,
			want:        amount,
		},
		{
			name:        "income does not touch other accounts",
			transaction: income,
			accountID:   other,
			want:        decimal.Zero,
		},
		{
			name:        "expense debits its account",
			transaction: expense,
			accountID:   source,
			want:        amount.Neg(),
		},
		{
			name:        "transfer debits the source leg",
			transaction: transfer,
			accountID:   source,
			want:        amount.Neg(),
		},
		{
			name:        "transfer credits the target leg",
			transaction: transfer,
			accountID:   target,
			want:        amount,
		},
		{
			name:        "transfer does not touch other accounts",
			transaction: transfer,
			accountID:   other,
			want:        decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transaction.BalanceEffect(tt.accountID)
			if !got.Equal(tt.want) {
				t.Errorf("BalanceEffect() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTransaction_TransferEffectsConserveMoney(t *testing.T) {
	source := uuid.New()
	target := uuid.New()
	transfer := NewTransfer(source, target, decimal.RequireFromString("300"), time.Now().UTC(), "")

	sum := transfer.BalanceEffect(source).Add(transfer.BalanceEffect(target))
	if !sum.IsZero() {
		t.Errorf("expected transfer legs to sum to zero, got %s", sum)
	}
}

func TestTransaction_References(t *testing.T) {
	source := uuid.New()
	target := uuid.New()
	other := uuid.New()

	transfer := NewTransfer(source, target, decimal.NewFromInt(10), time.Now().UTC(), "")
	if !transfer.References(source) {
		t.Error("expected transfer to reference its source account")
	}
	if !transfer.References(target) {
		t.Error("expected transfer to reference its target account")
	}
	if transfer.References(other) {
		t.Error("expected transfer not to reference an unrelated account")
	}

	expense := NewTransaction(source, decimal.NewFromInt(10), TransactionKindExpense, time.Now().UTC(), "")
	if !expense.References(source) {
		t.Error("expected expense to reference its account")
	}
	if expense.References(target) {
		t.Error("expected expense not to reference another account")
	}
}
