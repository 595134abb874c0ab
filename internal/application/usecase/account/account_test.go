// Package account contains account-related use cases.
package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/usecase/usecasetest"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

func TestAddAccountUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("first account gets sort index zero", func(t *testing.T) {
		ledger := usecasetest.NewLedger()

		uc := NewAddAccountUseCase(ledger, usecasetest.NewNotifier())
		output, err := uc.Execute(ctx, AddAccountInput{
			Name:           "checking",
			InitialBalance: decimal.NewFromInt(1000),
			Currency:       "TWD",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Account.SortIndex != 0 {
			t.Errorf("expected sort index 0, got %d", output.Account.SortIndex)
		}
		if !output.Account.CurrentBalance.Equal(output.Account.InitialBalance) {
			t.Error("expected current balance to start at the initial balance")
		}
	})

	t.Run("new accounts append to the display order", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		existing := entity.NewAccount("first", decimal.Zero, "TWD", 3)
		ledger.SeedAccount(existing)

		uc := NewAddAccountUseCase(ledger, usecasetest.NewNotifier())
		output, err := uc.Execute(ctx, AddAccountInput{Name: "second", Currency: "TWD"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Account.SortIndex != 4 {
			t.Errorf("expected sort index 4, got %d", output.Account.SortIndex)
		}
	})
}

func TestDeleteAccountUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an unreferenced account", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		account := entity.NewAccount("checking", decimal.NewFromInt(100), "TWD", 0)
		ledger.SeedAccount(account)

		uc := NewDeleteAccountUseCase(ledger, ledger, usecasetest.NewNotifier())
		if err := uc.Execute(ctx, DeleteAccountInput{ID: account.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := ledger.FindAccountByID(ctx, account.ID); !errors.Is(err, domainerror.ErrAccountNotFound) {
			t.Error("expected account to be gone")
		}
	})

	t.Run("blocks deletion while transactions reference the account", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		account := entity.NewAccount("checking", decimal.NewFromInt(100), "TWD", 0)
		ledger.SeedAccount(account)

		transaction := entity.NewTransaction(account.ID, decimal.NewFromInt(10), entity.TransactionKindExpense, time.Now().UTC(), "")
		if err := ledger.ImportTransactions(ctx, []*entity.Transaction{transaction}); err != nil {
			t.Fatalf("seed transaction failed: %v", err)
		}

		uc := NewDeleteAccountUseCase(ledger, ledger, usecasetest.NewNotifier())
		err := uc.Execute(ctx, DeleteAccountInput{ID: account.ID})
		if !errors.Is(err, domainerror.ErrAccountInUse) {
			t.Errorf("expected ErrAccountInUse, got %v", err)
		}

		if _, err := ledger.FindAccountByID(ctx, account.ID); err != nil {
			t.Error("expected account to remain")
		}
	})

	t.Run("blocks deletion when the account is a transfer target", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		source := entity.NewAccount("source", decimal.NewFromInt(100), "TWD", 0)
		target := entity.NewAccount("target", decimal.Zero, "TWD", 1)
		ledger.SeedAccount(source)
		ledger.SeedAccount(target)

		transfer := entity.NewTransfer(source.ID, target.ID, decimal.NewFromInt(10), time.Now().UTC(), "")
		if err := ledger.ImportTransactions(ctx, []*entity.Transaction{transfer}); err != nil {
			t.Fatalf("seed transfer failed: %v", err)
		}

		uc := NewDeleteAccountUseCase(ledger, ledger, usecasetest.NewNotifier())
		err := uc.Execute(ctx, DeleteAccountInput{ID: target.ID})
		if !errors.Is(err, domainerror.ErrAccountInUse) {
			t.Errorf("expected ErrAccountInUse, got %v", err)
		}
	})

	t.Run("unknown account surfaces not found", func(t *testing.T) {
		ledger := usecasetest.NewLedger()

		uc := NewDeleteAccountUseCase(ledger, ledger, usecasetest.NewNotifier())
		err := uc.Execute(ctx, DeleteAccountInput{ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

func TestReorderAccountsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	seed := func(ledger *usecasetest.Ledger, names ...string) []*entity.Account {
		accounts := make([]*entity.Account, len(names))
		for i, name := range names {
			accounts[i] = entity.NewAccount(name, decimal.Zero, "TWD", i)
			ledger.SeedAccount(accounts[i])
		}
		return accounts
	}

	t.Run("reassigns sort index by position", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		accounts := seed(ledger, "a", "b", "c")

		uc := NewReorderAccountsUseCase(ledger, usecasetest.NewNotifier())
		err := uc.Execute(ctx, ReorderAccountsInput{
			OrderedIDs: []uuid.UUID{accounts[2].ID, accounts[0].ID, accounts[1].ID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		listed, err := ledger.FindAccounts(ctx)
		if err != nil {
			t.Fatalf("listing failed: %v", err)
		}
		wantNames := []string{"c", "a", "b"}
		for i, account := range listed {
			if account.Name != wantNames[i] {
				t.Errorf("position %d: expected %s, got %s", i, wantNames[i], account.Name)
			}
		}
	})

	t.Run("rejects a partial order", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		accounts := seed(ledger, "a", "b", "c")

		uc := NewReorderAccountsUseCase(ledger, usecasetest.NewNotifier())
		err := uc.Execute(ctx, ReorderAccountsInput{
			OrderedIDs: []uuid.UUID{accounts[0].ID, accounts[1].ID},
		})
		if !errors.Is(err, domainerror.ErrInvalidAccountOrder) {
			t.Errorf("expected ErrInvalidAccountOrder, got %v", err)
		}
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		accounts := seed(ledger, "a", "b")

		uc := NewReorderAccountsUseCase(ledger, usecasetest.NewNotifier())
		err := uc.Execute(ctx, ReorderAccountsInput{
			OrderedIDs: []uuid.UUID{accounts[0].ID, accounts[0].ID},
		})
		if !errors.Is(err, domainerror.ErrInvalidAccountOrder) {
			t.Errorf("expected ErrInvalidAccountOrder, got %v", err)
		}
	})

	t.Run("rejects an unknown id", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		accounts := seed(ledger, "a", "b")

		uc := NewReorderAccountsUseCase(ledger, usecasetest.NewNotifier())
		err := uc.Execute(ctx, ReorderAccountsInput{
			OrderedIDs: []uuid.UUID{accounts[0].ID, uuid.New()},
		})
		if !errors.Is(err, domainerror.ErrInvalidAccountOrder) {
			t.Errorf("expected ErrInvalidAccountOrder, got %v", err)
		}
	})
}
