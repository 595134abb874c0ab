// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
	"github.com/ledgerkeep/backend/internal/integration/persistence/model"
)

// CreateAccount creates a new account.
func (r *sqlLedgerRepository) CreateAccount(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Create(model.AccountFromEntity(account)).Error
}

// FindAccountByID retrieves an account by its ID.
func (r *sqlLedgerRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindAccounts retrieves all accounts ordered by SortIndex ascending.
func (r *sqlLedgerRepository) FindAccounts(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).Order("sort_index ASC").Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// UpdateAccount updates an existing account.
func (r *sqlLedgerRepository) UpdateAccount(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(model.AccountFromEntity(account))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}

// DeleteAccount removes an account.
func (r *sqlLedgerRepository) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AccountModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}

// UpdateAccountBalance overwrites an account's current balance.
func (r *sqlLedgerRepository) UpdateAccountBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	return setBalance(r.db.WithContext(ctx), id, balance)
}

// UpdateAccountOrder reassigns SortIndex by position, all-or-nothing.
func (r *sqlLedgerRepository) UpdateAccountOrder(ctx context.Context, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for position, id := range orderedIDs {
			result := tx.Model(&model.AccountModel{}).
				Where("id = ?", id).
				Updates(map[string]any{
					"sort_index": position,
					"updated_at": now,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerror.ErrAccountNotFound
			}
		}
		return nil
	})
}

// ImportAccounts bulk-inserts accounts preserving IDs and balances.
func (r *sqlLedgerRepository) ImportAccounts(ctx context.Context, accounts []*entity.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	accountModels := make([]*model.AccountModel, len(accounts))
	for i, account := range accounts {
		accountModels[i] = model.AccountFromEntity(account)
	}
	return r.db.WithContext(ctx).Create(accountModels).Error
}
