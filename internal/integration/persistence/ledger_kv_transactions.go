// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
	"github.com/ledgerkeep/backend/internal/integration/persistence/model"
)

// CreateTransactionWithBalance stages the transaction record and the account
// balance write-back, then flushes both in one batch.
func (r *kvLedgerRepository) CreateTransactionWithBalance(ctx context.Context, transaction *entity.Transaction, balance decimal.Decimal) error {
	pipe := r.client.TxPipeline()
	if err := stageRecord(ctx, pipe, transactionKey(transaction.ID), model.TransactionFromEntity(transaction)); err != nil {
		return err
	}
	pipe.SAdd(ctx, kvTransactionIndex, transaction.ID.String())
	if err := r.stageBalance(ctx, pipe, transaction.AccountID, balance); err != nil {
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *kvLedgerRepository) FindTransactionByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transactionModel, err := r.loadTransactionModel(ctx, id)
	if err != nil {
		return nil, err
	}
	return transactionModel.ToEntity(), nil
}

// FindTransactions retrieves all transactions ordered by date descending.
func (r *kvLedgerRepository) FindTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	transactionModels, err := r.loadTransactionModels(ctx)
	if err != nil {
		return nil, err
	}
	return toTransactionEntities(transactionModels), nil
}

// FindTransactionsByAccount retrieves all transactions referencing the
// account as source or target.
func (r *kvLedgerRepository) FindTransactionsByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error) {
	transactionModels, err := r.loadTransactionModels(ctx)
	if err != nil {
		return nil, err
	}

	matched := transactionModels[:0]
	for _, tm := range transactionModels {
		if tm.AccountID == accountID || (tm.TargetAccountID != nil && *tm.TargetAccountID == accountID) {
			matched = append(matched, tm)
		}
	}
	return toTransactionEntities(matched), nil
}

// FindTransactionsInRange retrieves all transactions dated within
// [start, end] inclusive.
func (r *kvLedgerRepository) FindTransactionsInRange(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error) {
	transactionModels, err := r.loadTransactionModels(ctx)
	if err != nil {
		return nil, err
	}

	matched := transactionModels[:0]
	for _, tm := range transactionModels {
		if tm.Date.Before(start) || tm.Date.After(end) {
			continue
		}
		matched = append(matched, tm)
	}
	return toTransactionEntities(matched), nil
}

// UpdateTransactionWithBalance stages the updated record and the account
// balance write-back, then flushes both in one batch.
func (r *kvLedgerRepository) UpdateTransactionWithBalance(ctx context.Context, transaction *entity.Transaction, balance decimal.Decimal) error {
	if _, err := r.loadTransactionModel(ctx, transaction.ID); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	if err := stageRecord(ctx, pipe, transactionKey(transaction.ID), model.TransactionFromEntity(transaction)); err != nil {
		return err
	}
	if err := r.stageBalance(ctx, pipe, transaction.AccountID, balance); err != nil {
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}

// DeleteTransactionWithBalances stages the record removal and every balance
// write-back, then flushes all in one batch.
func (r *kvLedgerRepository) DeleteTransactionWithBalances(ctx context.Context, id uuid.UUID, balances map[uuid.UUID]decimal.Decimal) error {
	if _, err := r.loadTransactionModel(ctx, id); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, transactionKey(id))
	pipe.SRem(ctx, kvTransactionIndex, id.String())
	for accountID, balance := range balances {
		if err := r.stageBalance(ctx, pipe, accountID, balance); err != nil {
			return err
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

// PerformTransfer stages the transfer record and both balance write-backs,
// then flushes all three in one batch.
func (r *kvLedgerRepository) PerformTransfer(ctx context.Context, transfer *entity.Transaction, fromBalance, toBalance decimal.Decimal) error {
	if transfer.TargetAccountID == nil {
		return domainerror.ErrTransactionNotFound
	}

	pipe := r.client.TxPipeline()
	if err := stageRecord(ctx, pipe, transactionKey(transfer.ID), model.TransactionFromEntity(transfer)); err != nil {
		return err
	}
	pipe.SAdd(ctx, kvTransactionIndex, transfer.ID.String())
	if err := r.stageBalance(ctx, pipe, transfer.AccountID, fromBalance); err != nil {
		return err
	}
	if err := r.stageBalance(ctx, pipe, *transfer.TargetAccountID, toBalance); err != nil {
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}

// UpdateTransfer stages the updated transfer record and every balance
// write-back, then flushes all in one batch.
func (r *kvLedgerRepository) UpdateTransfer(ctx context.Context, transfer *entity.Transaction, balances map[uuid.UUID]decimal.Decimal) error {
	if _, err := r.loadTransactionModel(ctx, transfer.ID); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	if err := stageRecord(ctx, pipe, transactionKey(transfer.ID), model.TransactionFromEntity(transfer)); err != nil {
		return err
	}
	for accountID, balance := range balances {
		if err := r.stageBalance(ctx, pipe, accountID, balance); err != nil {
			return err
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

// GetCategorySpending aggregates expense totals per description for the
// given calendar month.
func (r *kvLedgerRepository) GetCategorySpending(ctx context.Context, year int, month time.Month) ([]adapter.CategorySpending, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	transactionModels, err := r.loadTransactionModels(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, tm := range transactionModels {
		if tm.Kind != string(entity.TransactionKindExpense) {
			continue
		}
		if tm.Date.Before(start) || !tm.Date.Before(end) {
			continue
		}
		totals[tm.Description] = totals[tm.Description].Add(tm.Amount)
	}

	spending := make([]adapter.CategorySpending, 0, len(totals))
	for category, total := range totals {
		spending = append(spending, adapter.CategorySpending{Category: category, Total: total})
	}
	sort.Slice(spending, func(i, j int) bool {
		if !spending[i].Total.Equal(spending[j].Total) {
			return spending[i].Total.GreaterThan(spending[j].Total)
		}
		return spending[i].Category < spending[j].Category
	})
	return spending, nil
}

// GetDistinctCategories returns the distinct descriptions of expense
// transactions.
func (r *kvLedgerRepository) GetDistinctCategories(ctx context.Context) ([]string, error) {
	transactionModels, err := r.loadTransactionModels(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, tm := range transactionModels {
		if tm.Kind != string(entity.TransactionKindExpense) {
			continue
		}
		if _, ok := seen[tm.Description]; ok {
			continue
		}
		seen[tm.Description] = struct{}{}
		categories = append(categories, tm.Description)
	}
	sort.Strings(categories)
	return categories, nil
}

// ImportTransactions bulk-inserts transactions preserving IDs.
func (r *kvLedgerRepository) ImportTransactions(ctx context.Context, transactions []*entity.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, transaction := range transactions {
		if err := stageRecord(ctx, pipe, transactionKey(transaction.ID), model.TransactionFromEntity(transaction)); err != nil {
			return err
		}
		pipe.SAdd(ctx, kvTransactionIndex, transaction.ID.String())
	}
	_, err := pipe.Exec(ctx)
	return err
}

// loadTransactionModels fetches every transaction ordered by date
// descending, newest created first within a date.
func (r *kvLedgerRepository) loadTransactionModels(ctx context.Context) ([]model.TransactionModel, error) {
	transactionModels, err := loadIndexed[model.TransactionModel](ctx, r.client, kvTransactionIndex, kvTransactionPrefix)
	if err != nil {
		return nil, err
	}

	sort.Slice(transactionModels, func(i, j int) bool {
		if !transactionModels[i].Date.Equal(transactionModels[j].Date) {
			return transactionModels[i].Date.After(transactionModels[j].Date)
		}
		return transactionModels[i].CreatedAt.After(transactionModels[j].CreatedAt)
	})
	return transactionModels, nil
}
