// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
	"github.com/ledgerkeep/backend/internal/integration/persistence/model"
)

// CreateTransactionWithBalance inserts a transaction row and overwrites the
// balance of its account in one transaction scope.
func (r *sqlLedgerRepository) CreateTransactionWithBalance(ctx context.Context, transaction *entity.Transaction, balance decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
		return setBalance(tx, transaction.AccountID, balance)
	})
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *sqlLedgerRepository) FindTransactionByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindTransactions retrieves all transactions ordered by date descending.
func (r *sqlLedgerRepository) FindTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// FindTransactionsByAccount retrieves all transactions referencing the
// account as source or target.
func (r *sqlLedgerRepository) FindTransactionsByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("account_id = ? OR target_account_id = ?", accountID, accountID).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// FindTransactionsInRange retrieves all transactions dated within
// [start, end] inclusive.
func (r *sqlLedgerRepository) FindTransactionsInRange(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels), nil
}

// UpdateTransactionWithBalance persists updated fields and overwrites the
// account balance in one transaction scope.
func (r *sqlLedgerRepository) UpdateTransactionWithBalance(ctx context.Context, transaction *entity.Transaction, balance decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateTransactionRow(tx, transaction); err != nil {
			return err
		}
		return setBalance(tx, transaction.AccountID, balance)
	})
}

// DeleteTransactionWithBalances removes a row and overwrites every balance in
// the map in one transaction scope.
func (r *sqlLedgerRepository) DeleteTransactionWithBalances(ctx context.Context, id uuid.UUID, balances map[uuid.UUID]decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&model.TransactionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		for accountID, balance := range balances {
			if err := setBalance(tx, accountID, balance); err != nil {
				return err
			}
		}
		return nil
	})
}

// PerformTransfer inserts a transfer row and overwrites both balances in one
// transaction scope: either all three writes land or none do.
func (r *sqlLedgerRepository) PerformTransfer(ctx context.Context, transfer *entity.Transaction, fromBalance, toBalance decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(transfer)).Error; err != nil {
			return err
		}
		if err := setBalance(tx, transfer.AccountID, fromBalance); err != nil {
			return err
		}
		if transfer.TargetAccountID == nil {
			return domainerror.ErrTransactionNotFound
		}
		return setBalance(tx, *transfer.TargetAccountID, toBalance)
	})
}

// UpdateTransfer persists updated transfer fields and overwrites every
// balance in the map in one transaction scope.
func (r *sqlLedgerRepository) UpdateTransfer(ctx context.Context, transfer *entity.Transaction, balances map[uuid.UUID]decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateTransactionRow(tx, transfer); err != nil {
			return err
		}
		for accountID, balance := range balances {
			if err := setBalance(tx, accountID, balance); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetCategorySpending aggregates expense totals per description for the
// given calendar month.
func (r *sqlLedgerRepository) GetCategorySpending(ctx context.Context, year int, month time.Month) ([]adapter.CategorySpending, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var rows []struct {
		Description string          `gorm:"column:description"`
		Total       decimal.Decimal `gorm:"column:total"`
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("description, SUM(amount) as total").
		Where("kind = ?", string(entity.TransactionKindExpense)).
		Where("date >= ? AND date < ?", start, end).
		Group("description").
		Order("total DESC, description ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	spending := make([]adapter.CategorySpending, len(rows))
	for i, row := range rows {
		spending[i] = adapter.CategorySpending{Category: row.Description, Total: row.Total}
	}
	return spending, nil
}

// GetDistinctCategories returns the distinct descriptions of expense
// transactions.
func (r *sqlLedgerRepository) GetDistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("kind = ?", string(entity.TransactionKindExpense)).
		Distinct("description").
		Order("description ASC").
		Pluck("description", &categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

// ImportTransactions bulk-inserts transactions preserving IDs.
func (r *sqlLedgerRepository) ImportTransactions(ctx context.Context, transactions []*entity.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	transactionModels := make([]*model.TransactionModel, len(transactions))
	for i, transaction := range transactions {
		transactionModels[i] = model.TransactionFromEntity(transaction)
	}
	return r.db.WithContext(ctx).Create(transactionModels).Error
}

func updateTransactionRow(tx *gorm.DB, transaction *entity.Transaction) error {
	result := tx.Model(&model.TransactionModel{}).
		Where("id = ?", transaction.ID).
		Select("amount", "kind", "date", "description", "account_id", "target_account_id", "updated_at").
		Updates(model.TransactionFromEntity(transaction))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

func toTransactionEntities(transactionModels []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions
}
