// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
	"github.com/ledgerkeep/backend/internal/integration/persistence/model"
)

// CreateBudget creates a new budget.
func (r *sqlLedgerRepository) CreateBudget(ctx context.Context, budget *entity.Budget) error {
	return r.db.WithContext(ctx).Create(model.BudgetFromEntity(budget)).Error
}

// FindBudgetByID retrieves a budget by its ID.
func (r *sqlLedgerRepository) FindBudgetByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindBudgets retrieves all budgets.
func (r *sqlLedgerRepository) FindBudgets(ctx context.Context) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// UpdateBudget updates an existing budget.
func (r *sqlLedgerRepository) UpdateBudget(ctx context.Context, budget *entity.Budget) error {
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ?", budget.ID).
		Updates(model.BudgetFromEntity(budget))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// DeleteBudget removes a budget.
func (r *sqlLedgerRepository) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BudgetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// ImportBudgets bulk-inserts budgets preserving IDs.
func (r *sqlLedgerRepository) ImportBudgets(ctx context.Context, budgets []*entity.Budget) error {
	if len(budgets) == 0 {
		return nil
	}

	budgetModels := make([]*model.BudgetModel, len(budgets))
	for i, budget := range budgets {
		budgetModels[i] = model.BudgetFromEntity(budget)
	}
	return r.db.WithContext(ctx).Create(budgetModels).Error
}
