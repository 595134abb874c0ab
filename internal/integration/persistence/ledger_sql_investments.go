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

// CreateInvestmentFunded inserts an investment and, when the purchase is
// synced, the linked expense transaction plus the source account balance in
// one transaction scope.
func (r *sqlLedgerRepository) CreateInvestmentFunded(ctx context.Context, investment *entity.Investment, linked *entity.Transaction, sourceBalance *decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.InvestmentFromEntity(investment)).Error; err != nil {
			return err
		}
		if linked == nil {
			return nil
		}
		if err := tx.Create(model.TransactionFromEntity(linked)).Error; err != nil {
			return err
		}
		return setBalance(tx, linked.AccountID, *sourceBalance)
	})
}

// FindInvestmentByID retrieves an investment by its ID.
func (r *sqlLedgerRepository) FindInvestmentByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	var investmentModel model.InvestmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&investmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvestmentNotFound
		}
		return nil, result.Error
	}
	return investmentModel.ToEntity(), nil
}

// FindInvestments retrieves all investments, settled records included.
func (r *sqlLedgerRepository) FindInvestments(ctx context.Context) ([]*entity.Investment, error) {
	var investmentModels []model.InvestmentModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&investmentModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toInvestmentEntities(investmentModels), nil
}

// FindActiveInvestments retrieves investments with status active.
func (r *sqlLedgerRepository) FindActiveInvestments(ctx context.Context) ([]*entity.Investment, error) {
	var investmentModels []model.InvestmentModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.InvestmentStatusActive)).
		Order("created_at ASC").
		Find(&investmentModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toInvestmentEntities(investmentModels), nil
}

// UpdateInvestment updates an existing investment.
func (r *sqlLedgerRepository) UpdateInvestment(ctx context.Context, investment *entity.Investment) error {
	return updateInvestmentRow(r.db.WithContext(ctx), investment)
}

// SettleInvestment persists a lifecycle mutation and, when the settlement is
// synced, the income transaction plus the target account balance in one
// transaction scope.
func (r *sqlLedgerRepository) SettleInvestment(ctx context.Context, investment *entity.Investment, income *entity.Transaction, targetBalance *decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateInvestmentRow(tx, investment); err != nil {
			return err
		}
		if income == nil {
			return nil
		}
		if err := tx.Create(model.TransactionFromEntity(income)).Error; err != nil {
			return err
		}
		return setBalance(tx, income.AccountID, *targetBalance)
	})
}

// UpdateStockPrice overwrites CurrentPrice on every active stock holding with
// the given symbol.
func (r *sqlLedgerRepository) UpdateStockPrice(ctx context.Context, name string, price decimal.Decimal) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.InvestmentModel{}).
		Where("name = ? AND type = ? AND status = ?",
			name, string(entity.InvestmentTypeStock), string(entity.InvestmentStatusActive)).
		Updates(map[string]interface{}{
			"current_price": price,
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ImportInvestments bulk-inserts investments preserving IDs and statuses.
func (r *sqlLedgerRepository) ImportInvestments(ctx context.Context, investments []*entity.Investment) error {
	if len(investments) == 0 {
		return nil
	}

	investmentModels := make([]*model.InvestmentModel, len(investments))
	for i, investment := range investments {
		investmentModels[i] = model.InvestmentFromEntity(investment)
	}
	return r.db.WithContext(ctx).Create(investmentModels).Error
}

func updateInvestmentRow(tx *gorm.DB, investment *entity.Investment) error {
	investmentModel := model.InvestmentFromEntity(investment)
	result := tx.Model(&model.InvestmentModel{}).
		Where("id = ?", investment.ID).
		Select("amount", "cost_price", "current_price", "status", "notes", "updated_at").
		Updates(investmentModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInvestmentNotFound
	}
	return nil
}

func toInvestmentEntities(investmentModels []model.InvestmentModel) []*entity.Investment {
	investments := make([]*entity.Investment, len(investmentModels))
	for i, im := range investmentModels {
		investments[i] = im.ToEntity()
	}
	return investments
}
