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

func TestPerformTransferUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	seed := func(fromBalance, toBalance int64) (*usecasetest.Ledger, *entity.Account, *entity.Account) {
		ledger := usecasetest.NewLedger()
		from := entity.NewAccount("from", decimal.NewFromInt(fromBalance), "TWD", 0)
		to := entity.NewAccount("to", decimal.NewFromInt(toBalance), "TWD", 1)
		ledger.SeedAccount(from)
		ledger.SeedAccount(to)
		return ledger, from, to
	}

	t.Run("moves the amount and conserves the total", func(t *testing.T) {
		ledger, from, to := seed(1000, 200)

		uc := NewPerformTransferUseCase(ledger, ledger, usecasetest.NewNotifier())
		output, err := uc.Execute(ctx, PerformTransferInput{
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(300),
			Date:          date,
			Description:   "rebalance",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := ledger.Balance(from.ID); !got.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected source balance 700, got %s", got)
		}
		if got := ledger.Balance(to.ID); !got.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected target balance 500, got %s", got)
		}

		total := ledger.Balance(from.ID).Add(ledger.Balance(to.ID))
		if !total.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected total 1200 across accounts, got %s", total)
		}

		if output.Transaction.Kind != entity.TransactionKindTransfer {
			t.Errorf("expected transfer kind, got %s", output.Transaction.Kind)
		}
		if output.Transaction.TargetAccountID == nil || *output.Transaction.TargetAccountID != to.ID {
			t.Error("expected transfer to carry the target account")
		}
	})

	t.Run("rejects overdrawing the source", func(t *testing.T) {
		ledger, from, to := seed(100, 0)

		uc := NewPerformTransferUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err := uc.Execute(ctx, PerformTransferInput{
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(101),
			Date:          date,
		})
		if !errors.Is(err, domainerror.ErrInsufficientFunds) {
			t.Errorf("expected ErrInsufficientFunds, got %v", err)
		}

		// Neither balance may move on a rejected transfer.
		if got := ledger.Balance(from.ID); !got.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected source balance unchanged, got %s", got)
		}
		if ledger.TransactionCount() != 0 {
			t.Error("expected no transfer recorded")
		}
	})

	t.Run("allows transferring the exact balance", func(t *testing.T) {
		ledger, from, to := seed(100, 0)

		uc := NewPerformTransferUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err := uc.Execute(ctx, PerformTransferInput{
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(100),
			Date:          date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := ledger.Balance(from.ID); !got.IsZero() {
			t.Errorf("expected source balance 0, got %s", got)
		}
	})

	t.Run("rejects a self transfer", func(t *testing.T) {
		ledger, from, _ := seed(100, 0)

		uc := NewPerformTransferUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err := uc.Execute(ctx, PerformTransferInput{
			FromAccountID: from.ID,
			ToAccountID:   from.ID,
			Amount:        decimal.NewFromInt(10),
			Date:          date,
		})
		if !errors.Is(err, domainerror.ErrTransferSameAccount) {
			t.Errorf("expected ErrTransferSameAccount, got %v", err)
		}
	})
}

func TestUpdateTransferUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("changing the amount reverts then applies", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		from := entity.NewAccount("from", decimal.NewFromInt(1000), "TWD", 0)
		to := entity.NewAccount("to", decimal.NewFromInt(0), "TWD", 1)
		ledger.SeedAccount(from)
		ledger.SeedAccount(to)

		transferUC := NewPerformTransferUseCase(ledger, ledger, usecasetest.NewNotifier())
		output, err := transferUC.Execute(ctx, PerformTransferInput{
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(400),
			Date:          date,
		})
		if err != nil {
			t.Fatalf("seed transfer failed: %v", err)
		}

		uc := NewUpdateTransferUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err = uc.Execute(ctx, UpdateTransferInput{
			ID:            output.Transaction.ID,
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(150),
			Date:          date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := ledger.Balance(from.ID); !got.Equal(decimal.NewFromInt(850)) {
			t.Errorf("expected source balance 850, got %s", got)
		}
		if got := ledger.Balance(to.ID); !got.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected target balance 150, got %s", got)
		}
	})

	t.Run("moving the transfer between account pairs touches all four", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		a := entity.NewAccount("a", decimal.NewFromInt(500), "TWD", 0)
		b := entity.NewAccount("b", decimal.NewFromInt(0), "TWD", 1)
		c := entity.NewAccount("c", decimal.NewFromInt(300), "TWD", 2)
		d := entity.NewAccount("d", decimal.NewFromInt(0), "TWD", 3)
		for _, account := range []*entity.Account{a, b, c, d} {
			ledger.SeedAccount(account)
		}

		transferUC := NewPerformTransferUseCase(ledger, ledger, usecasetest.NewNotifier())
		output, err := transferUC.Execute(ctx, PerformTransferInput{
			FromAccountID: a.ID,
			ToAccountID:   b.ID,
			Amount:        decimal.NewFromInt(200),
			Date:          date,
		})
		if err != nil {
			t.Fatalf("seed transfer failed: %v", err)
		}

		uc := NewUpdateTransferUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err = uc.Execute(ctx, UpdateTransferInput{
			ID:            output.Transaction.ID,
			FromAccountID: c.ID,
			ToAccountID:   d.ID,
			Amount:        decimal.NewFromInt(50),
			Date:          date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Old pair fully restored, new pair moved by the new amount.
		if got := ledger.Balance(a.ID); !got.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected a restored to 500, got %s", got)
		}
		if got := ledger.Balance(b.ID); !got.IsZero() {
			t.Errorf("expected b restored to 0, got %s", got)
		}
		if got := ledger.Balance(c.ID); !got.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected c debited to 250, got %s", got)
		}
		if got := ledger.Balance(d.ID); !got.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected d credited to 50, got %s", got)
		}
	})

	t.Run("rejects editing a plain movement as a transfer", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		from := entity.NewAccount("from", decimal.NewFromInt(500), "TWD", 0)
		to := entity.NewAccount("to", decimal.NewFromInt(0), "TWD", 1)
		ledger.SeedAccount(from)
		ledger.SeedAccount(to)

		add := NewAddTransactionUseCase(ledger, ledger, usecasetest.NewNotifier())
		output, err := add.Execute(ctx, AddTransactionInput{
			AccountID: from.ID,
			Amount:    decimal.NewFromInt(100),
			Kind:      entity.TransactionKindExpense,
			Date:      date,
		})
		if err != nil {
			t.Fatalf("seed transaction failed: %v", err)
		}

		uc := NewUpdateTransferUseCase(ledger, ledger, usecasetest.NewNotifier())
		_, err = uc.Execute(ctx, UpdateTransferInput{
			ID:            output.Transaction.ID,
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(100),
			Date:          date,
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionKind) {
			t.Errorf("expected ErrInvalidTransactionKind, got %v", err)
		}
	})
}
