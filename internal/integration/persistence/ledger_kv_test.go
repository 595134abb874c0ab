package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
)

func newTestKVRepo(t *testing.T) adapter.LedgerRepository {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewKVLedgerRepository(client)
}

func TestKVLedgerRepositoryCategorySpending(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("equal totals order by category", func(t *testing.T) {
		repo := newTestKVRepo(t)

		account := entity.NewAccount("現金", decimal.NewFromInt(1000), "TWD", 0)
		if err := repo.CreateAccount(ctx, account); err != nil {
			t.Fatalf("failed to create account: %v", err)
		}

		for i, description := range []string{"餐飲", "交通"} {
			expense := entity.NewTransaction(account.ID, decimal.NewFromInt(500), entity.TransactionKindExpense, date, description)
			balance := decimal.NewFromInt(int64(1000 - (i+1)*500))
			if err := repo.CreateTransactionWithBalance(ctx, expense, balance); err != nil {
				t.Fatalf("failed to create transaction: %v", err)
			}
		}

		spending, err := repo.GetCategorySpending(ctx, date.Year(), date.Month())
		if err != nil {
			t.Fatalf("failed to aggregate spending: %v", err)
		}
		if len(spending) != 2 {
			t.Fatalf("expected 2 spending rows, got %d", len(spending))
		}
		if spending[0].Category != "交通" || spending[1].Category != "餐飲" {
			t.Errorf("expected categories [交通 餐飲], got [%s %s]", spending[0].Category, spending[1].Category)
		}
	})

	t.Run("larger totals come first", func(t *testing.T) {
		repo := newTestKVRepo(t)

		account := entity.NewAccount("現金", decimal.NewFromInt(1000), "TWD", 0)
		if err := repo.CreateAccount(ctx, account); err != nil {
			t.Fatalf("failed to create account: %v", err)
		}

		amounts := map[string]int64{"餐飲": 700, "交通": 100}
		balance := decimal.NewFromInt(1000)
		for description, amount := range amounts {
			expense := entity.NewTransaction(account.ID, decimal.NewFromInt(amount), entity.TransactionKindExpense, date, description)
			balance = balance.Sub(decimal.NewFromInt(amount))
			if err := repo.CreateTransactionWithBalance(ctx, expense, balance); err != nil {
				t.Fatalf("failed to create transaction: %v", err)
			}
		}

		spending, err := repo.GetCategorySpending(ctx, date.Year(), date.Month())
		if err != nil {
			t.Fatalf("failed to aggregate spending: %v", err)
		}
		if len(spending) != 2 {
			t.Fatalf("expected 2 spending rows, got %d", len(spending))
		}
		if spending[0].Category != "餐飲" || !spending[0].Total.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected 餐飲 700 first, got %s %s", spending[0].Category, spending[0].Total)
		}
	})
}
