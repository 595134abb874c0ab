// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/usecase/usecasetest"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

func TestAddTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("income adds the amount to the balance", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		notifier := usecasetest.NewNotifier()
		account := entity.NewAccount("checking", decimal.NewFromInt(1000), "TWD", 0)
		ledger.SeedAccount(account)

		uc := NewAddTransactionUseCase(ledger, ledger, notifier)
		output, err := uc.Execute(ctx, AddTransactionInput{
			AccountID:   account.ID,
			Amount:      decimal.NewFromInt(250),
			Kind:        entity.TransactionKindIncome,
			Date:        date,
			Description: "salary",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := ledger.Balance(account.ID); !got.Equal(decimal.NewFromInt(1250)) {
			t.Errorf("expected balance 1250, got %s", got)
		}
		if output.Transaction.Kind != entity.TransactionKindIncome {
			t.Errorf("expected kind income, got %s", output.Transaction.Kind)
		}
		if notifier.Count() != 1 {
			t.Errorf("expected 1 notification, got %d", notifier.Count())
		}
	})

	t.Run("expense subtracts the amount from the balance", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		account := entity.NewAccount("checking", decimal.NewFromInt(1000), "TWD", 0)
		ledger.SeedAccount(account)

		uc := NewAddTransactionUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err := uc.Execute(ctx, AddTransactionInput{
			AccountID:   account.ID,
			Amount:      decimal.NewFromInt(300),
			Kind:        entity.TransactionKindExpense,
			Date:        date,
			Description: "餐飲",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := ledger.Balance(account.ID); !got.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected balance 700, got %s", got)
		}
	})

	t.Run("expense may overdraw the account", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		account := entity.NewAccount("checking", decimal.NewFromInt(100), "TWD", 0)
		ledger.SeedAccount(account)

		uc := NewAddTransactionUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err := uc.Execute(ctx, AddTransactionInput{
			AccountID: account.ID,
			Amount:    decimal.NewFromInt(250),
			Kind:      entity.TransactionKindExpense,
			Date:      date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := ledger.Balance(account.ID); !got.Equal(decimal.NewFromInt(-150)) {
			t.Errorf("expected balance -150, got %s", got)
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		account := entity.NewAccount("checking", decimal.NewFromInt(100), "TWD", 0)
		ledger.SeedAccount(account)

		uc := NewAddTransactionUseCase(ledger, ledger, usecasetest.NewNotifier())
		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			_, err := uc.Execute(ctx, AddTransactionInput{
				AccountID: account.ID,
				Amount:    amount,
				Kind:      entity.TransactionKindIncome,
				Date:      date,
			})
			if !errors.Is(err, domainerror.ErrInvalidAmount) {
				t.Errorf("amount %s: expected ErrInvalidAmount, got %v", amount, err)
			}
		}
		if ledger.TransactionCount() != 0 {
			t.Error("expected no transactions recorded")
		}
	})

	t.Run("rejects the transfer kind", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		account := entity.NewAccount("checking", decimal.NewFromInt(100), "TWD", 0)
		ledger.SeedAccount(account)

		uc := NewAddTransactionUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err := uc.Execute(ctx, AddTransactionInput{
			AccountID: account.ID,
			Amount:    decimal.NewFromInt(10),
			Kind:      entity.TransactionKindTransfer,
			Date:      date,
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionKind) {
			t.Errorf("expected ErrInvalidTransactionKind, got %v", err)
		}
	})

	t.Run("rejects an overlong description", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		account := entity.NewAccount("checking", decimal.NewFromInt(100), "TWD", 0)
		ledger.SeedAccount(account)

		uc := NewAddTransactionUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err := uc.Execute(ctx, AddTransactionInput{
			AccountID:   account.ID,
			Amount:      decimal.NewFromInt(10),
			Kind:        entity.TransactionKindExpense,
			Date:        date,
			Description: strings.Repeat("x", MaxDescriptionLength+1),
		})
		if !errors.Is(err, domainerror.ErrDescriptionTooLong) {
			t.Errorf("expected ErrDescriptionTooLong, got %v", err)
		}
	})

	t.Run("unknown account surfaces not found", func(t *testing.T) {
		ledger := usecasetest.NewLedger()

		uc := NewAddTransactionUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err := uc.Execute(ctx, AddTransactionInput{
			AccountID: entity.NewAccount("ghost", decimal.Zero, "TWD", 0).ID,
			Amount:    decimal.NewFromInt(10),
			Kind:      entity.TransactionKindIncome,
			Date:      date,
		})
		if !errors.Is(err, domainerror.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})
}
