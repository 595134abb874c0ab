package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// newTestDB opens a private in-memory database with foreign key enforcement
// on, matching the referential integrity the postgres backend runs with.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(Models()...); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}

func TestSQLLedgerRepositoryClearAll(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("clears accounts referenced by transactions", func(t *testing.T) {
		repo := NewSQLLedgerRepository(newTestDB(t))

		account := entity.NewAccount("現金", decimal.NewFromInt(1000), "TWD", 0)
		if err := repo.CreateAccount(ctx, account); err != nil {
			t.Fatalf("failed to create account: %v", err)
		}

		expense := entity.NewTransaction(account.ID, decimal.NewFromInt(200), entity.TransactionKindExpense, date, "餐飲 午餐")
		if err := repo.CreateTransactionWithBalance(ctx, expense, decimal.NewFromInt(800)); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		if err := repo.ClearAll(ctx); err != nil {
			t.Fatalf("expected ClearAll to succeed, got %v", err)
		}

		accounts, err := repo.FindAccounts(ctx)
		if err != nil {
			t.Fatalf("failed to list accounts: %v", err)
		}
		if len(accounts) != 0 {
			t.Errorf("expected 0 accounts after clear, got %d", len(accounts))
		}

		transactions, err := repo.FindTransactions(ctx)
		if err != nil {
			t.Fatalf("failed to list transactions: %v", err)
		}
		if len(transactions) != 0 {
			t.Errorf("expected 0 transactions after clear, got %d", len(transactions))
		}
	})

	t.Run("clears both legs of a transfer", func(t *testing.T) {
		repo := NewSQLLedgerRepository(newTestDB(t))

		from := entity.NewAccount("現金", decimal.NewFromInt(1000), "TWD", 0)
		to := entity.NewAccount("銀行", decimal.NewFromInt(0), "TWD", 1)
		for _, account := range []*entity.Account{from, to} {
			if err := repo.CreateAccount(ctx, account); err != nil {
				t.Fatalf("failed to create account: %v", err)
			}
		}

		transfer := entity.NewTransfer(from.ID, to.ID, decimal.NewFromInt(300), date, "儲蓄")
		if err := repo.PerformTransfer(ctx, transfer, decimal.NewFromInt(700), decimal.NewFromInt(300)); err != nil {
			t.Fatalf("failed to perform transfer: %v", err)
		}

		if err := repo.ClearAll(ctx); err != nil {
			t.Fatalf("expected ClearAll to succeed, got %v", err)
		}
	})

	t.Run("equal spending totals order by category", func(t *testing.T) {
		repo := NewSQLLedgerRepository(newTestDB(t))

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

	t.Run("import repopulates a cleared store", func(t *testing.T) {
		repo := NewSQLLedgerRepository(newTestDB(t))

		account := entity.NewAccount("現金", decimal.NewFromInt(1000), "TWD", 0)
		if err := repo.CreateAccount(ctx, account); err != nil {
			t.Fatalf("failed to create account: %v", err)
		}
		expense := entity.NewTransaction(account.ID, decimal.NewFromInt(240), entity.TransactionKindExpense, date, "交通 高鐵")
		if err := repo.CreateTransactionWithBalance(ctx, expense, decimal.NewFromInt(760)); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		account.CurrentBalance = decimal.NewFromInt(760)

		if err := repo.ClearAll(ctx); err != nil {
			t.Fatalf("expected ClearAll to succeed, got %v", err)
		}
		if err := repo.ImportAccounts(ctx, []*entity.Account{account}); err != nil {
			t.Fatalf("failed to import accounts: %v", err)
		}
		if err := repo.ImportTransactions(ctx, []*entity.Transaction{expense}); err != nil {
			t.Fatalf("failed to import transactions: %v", err)
		}

		restored, err := repo.FindAccountByID(ctx, account.ID)
		if err != nil {
			t.Fatalf("failed to find restored account: %v", err)
		}
		if !restored.CurrentBalance.Equal(decimal.NewFromInt(760)) {
			t.Errorf("expected restored balance 760, got %s", restored.CurrentBalance)
		}

		transactions, err := repo.FindTransactions(ctx)
		if err != nil {
			t.Fatalf("failed to list transactions: %v", err)
		}
		if len(transactions) != 1 {
			t.Errorf("expected 1 restored transaction, got %d", len(transactions))
		}
	})
}
