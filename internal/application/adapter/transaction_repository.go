// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// CategorySpending is one row of a per-category expense aggregation.
type CategorySpending struct {
	Category string
	Total    decimal.Decimal
}

// TransactionRepository defines the persistence operations on transactions.
//
// The *WithBalance and transfer operations are composite: they persist the
// transaction row together with the already-computed account balances in one
// atomic unit. The SQL backend wraps them in an explicit transaction scope;
// the KV backend stages every mutated record and flushes a single batched
// write. Balance arithmetic (revert-then-apply) lives in the services; the
// repository persists final values only.
type TransactionRepository interface {
	// CreateTransactionWithBalance inserts a transaction row and overwrites
	// the balance of its account atomically.
	CreateTransactionWithBalance(ctx context.Context, transaction *entity.Transaction, balance decimal.Decimal) error

	// FindTransactionByID retrieves a transaction by its ID.
	FindTransactionByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindTransactions retrieves all transactions ordered by date descending.
	FindTransactions(ctx context.Context) ([]*entity.Transaction, error)

	// FindTransactionsByAccount retrieves all transactions referencing the
	// account as source or target, ordered by date descending.
	FindTransactionsByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error)

	// FindTransactionsInRange retrieves all transactions dated within
	// [start, end] inclusive, ordered by date descending.
	FindTransactionsInRange(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error)

	// UpdateTransactionWithBalance persists updated transaction fields and
	// overwrites the balance of its account atomically.
	UpdateTransactionWithBalance(ctx context.Context, transaction *entity.Transaction, balance decimal.Decimal) error

	// DeleteTransactionWithBalances removes a transaction row and overwrites
	// every balance in the map atomically. Income and expense rows touch one
	// account; deleting a transfer reverts both legs.
	DeleteTransactionWithBalances(ctx context.Context, id uuid.UUID, balances map[uuid.UUID]decimal.Decimal) error

	// PerformTransfer inserts a transfer row and overwrites both account
	// balances atomically. Either all three writes land or none do.
	PerformTransfer(ctx context.Context, transfer *entity.Transaction, fromBalance, toBalance decimal.Decimal) error

	// UpdateTransfer persists updated transfer fields and overwrites every
	// balance in the map atomically. The map holds up to four accounts when
	// the transfer is moved between account pairs.
	UpdateTransfer(ctx context.Context, transfer *entity.Transaction, balances map[uuid.UUID]decimal.Decimal) error

	// GetCategorySpending aggregates expense totals per description for the
	// given calendar month.
	GetCategorySpending(ctx context.Context, year int, month time.Month) ([]CategorySpending, error)

	// GetDistinctCategories returns the distinct descriptions of expense
	// transactions, for category suggestions.
	GetDistinctCategories(ctx context.Context) ([]string, error)

	// ImportTransactions bulk-inserts transactions preserving their IDs.
	// Balances are not touched: restore trusts the snapshot's stored values.
	ImportTransactions(ctx context.Context, transactions []*entity.Transaction) error
}
