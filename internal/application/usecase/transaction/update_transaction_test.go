// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/usecase/usecasetest"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

func TestUpdateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	seed := func(t *testing.T, kind entity.TransactionKind, amount int64) (*usecasetest.Ledger, *entity.Account, *entity.Transaction) {
		t.Helper()
		ledger := usecasetest.NewLedger()
		account := entity.NewAccount("checking", decimal.NewFromInt(1000), "TWD", 0)
		ledger.SeedAccount(account)

		add := NewAddTransactionUseCase(ledger, ledger, usecasetest.NewNotifier())
		output, err := add.Execute(ctx, AddTransactionInput{
			AccountID:   account.ID,
			Amount:      decimal.NewFromInt(amount),
			Kind:        kind,
			Date:        date,
			Description: "original",
		})
		if err != nil {
			t.Fatalf("seed transaction failed: %v", err)
		}
		return ledger, account, output.Transaction
	}

	t.Run("changing the amount keeps the balance exact", func(t *testing.T) {
		ledger, account, recorded := seed(t, entity.TransactionKindExpense, 200)
		// Balance after seed: 1000 - 200 = 800.

		uc := NewUpdateTransactionUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			ID:          recorded.ID,
			Amount:      decimal.NewFromInt(50),
			Kind:        entity.TransactionKindExpense,
			Date:        date,
			Description: "reduced",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Old effect reverted (+200), new applied (-50).
		if got := ledger.Balance(account.ID); !got.Equal(decimal.NewFromInt(950)) {
			t.Errorf("expected balance 950, got %s", got)
		}
	})

	t.Run("flipping expense to income reverses the effect", func(t *testing.T) {
		ledger, account, recorded := seed(t, entity.TransactionKindExpense, 200)
		// Balance after seed: 800.

		uc := NewUpdateTransactionUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			ID:     recorded.ID,
			Amount: decimal.NewFromInt(200),
			Kind:   entity.TransactionKindIncome,
			Date:   date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := ledger.Balance(account.ID); !got.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected balance 1200, got %s", got)
		}
	})

	t.Run("transfers cannot be edited as movements", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		from := entity.NewAccount("from", decimal.NewFromInt(500), "TWD", 0)
		to := entity.NewAccount("to", decimal.NewFromInt(0), "TWD", 1)
		ledger.SeedAccount(from)
		ledger.SeedAccount(to)

		transferUC := NewPerformTransferUseCase(ledger, ledger, usecasetest.NewNotifier())
		output, err := transferUC.Execute(ctx, PerformTransferInput{
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(100),
			Date:          date,
		})
		if err != nil {
			t.Fatalf("seed transfer failed: %v", err)
		}

		uc := NewUpdateTransactionUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err = uc.Execute(ctx, UpdateTransactionInput{
			ID:     output.Transaction.ID,
			Amount: decimal.NewFromInt(100),
			Kind:   entity.TransactionKindExpense,
			Date:   date,
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionKind) {
			t.Errorf("expected ErrInvalidTransactionKind, got %v", err)
		}
	})

	t.Run("unknown transaction surfaces not found", func(t *testing.T) {
		ledger := usecasetest.NewLedger()

		uc := NewUpdateTransactionUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			ID:     entity.NewAccount("x", decimal.Zero, "TWD", 0).ID,
			Amount: decimal.NewFromInt(10),
			Kind:   entity.TransactionKindIncome,
			Date:   date,
		})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}
