// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
	"github.com/ledgerkeep/backend/internal/integration/persistence/model"
)

// sqlLedgerRepository implements adapter.LedgerRepository on a relational
// store. Every composite operation runs inside an explicit gorm transaction
// scope: begin, statement sequence, commit or rollback.
type sqlLedgerRepository struct {
	db *gorm.DB
}

// NewSQLLedgerRepository creates a new relational ledger repository instance.
func NewSQLLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &sqlLedgerRepository{
		db: db,
	}
}

// Models returns the gorm models to auto-migrate for this backend.
func Models() []any {
	return []any{
		&model.AccountModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.GoalModel{},
		&model.InvestmentModel{},
	}
}

// ClearModels returns the gorm models in deletion order: referencing tables
// before referenced ones, so transactions go before the accounts their
// foreign keys point at.
func ClearModels() []any {
	return []any{
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.GoalModel{},
		&model.InvestmentModel{},
		&model.AccountModel{},
	}
}

// ClearAll removes every entity. Used by backup restore before import.
func (r *sqlLedgerRepository) ClearAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range ClearModels() {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// setBalance overwrites an account's current balance inside a transaction
// scope.
func setBalance(tx *gorm.DB, id uuid.UUID, balance decimal.Decimal) error {
	result := tx.Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"current_balance": balance,
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}
