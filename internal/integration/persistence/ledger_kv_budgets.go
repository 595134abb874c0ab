// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
	"github.com/ledgerkeep/backend/internal/integration/persistence/model"
)

// CreateBudget creates a new budget.
func (r *kvLedgerRepository) CreateBudget(ctx context.Context, budget *entity.Budget) error {
	pipe := r.client.TxPipeline()
	if err := stageRecord(ctx, pipe, budgetKey(budget.ID), model.BudgetFromEntity(budget)); err != nil {
		return err
	}
	pipe.SAdd(ctx, kvBudgetIndex, budget.ID.String())
	_, err := pipe.Exec(ctx)
	return err
}

// FindBudgetByID retrieves a budget by its ID.
func (r *kvLedgerRepository) FindBudgetByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	budgetModel, err := r.loadBudgetModel(ctx, id)
	if err != nil {
		return nil, err
	}
	return budgetModel.ToEntity(), nil
}

// FindBudgets retrieves all budgets.
func (r *kvLedgerRepository) FindBudgets(ctx context.Context) ([]*entity.Budget, error) {
	budgetModels, err := loadIndexed[model.BudgetModel](ctx, r.client, kvBudgetIndex, kvBudgetPrefix)
	if err != nil {
		return nil, err
	}

	sort.Slice(budgetModels, func(i, j int) bool {
		return budgetModels[i].CreatedAt.Before(budgetModels[j].CreatedAt)
	})

	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// UpdateBudget updates an existing budget.
func (r *kvLedgerRepository) UpdateBudget(ctx context.Context, budget *entity.Budget) error {
	if _, err := r.loadBudgetModel(ctx, budget.ID); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	if err := stageRecord(ctx, pipe, budgetKey(budget.ID), model.BudgetFromEntity(budget)); err != nil {
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}

// DeleteBudget removes a budget.
func (r *kvLedgerRepository) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	if _, err := r.loadBudgetModel(ctx, id); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, budgetKey(id))
	pipe.SRem(ctx, kvBudgetIndex, id.String())
	_, err := pipe.Exec(ctx)
	return err
}

// ImportBudgets bulk-inserts budgets preserving IDs.
func (r *kvLedgerRepository) ImportBudgets(ctx context.Context, budgets []*entity.Budget) error {
	if len(budgets) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, budget := range budgets {
		if err := stageRecord(ctx, pipe, budgetKey(budget.ID), model.BudgetFromEntity(budget)); err != nil {
			return err
		}
		pipe.SAdd(ctx, kvBudgetIndex, budget.ID.String())
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *kvLedgerRepository) loadBudgetModel(ctx context.Context, id uuid.UUID) (*model.BudgetModel, error) {
	payload, err := r.client.Get(ctx, budgetKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, err
	}
	var budgetModel model.BudgetModel
	if err := json.Unmarshal(payload, &budgetModel); err != nil {
		return nil, err
	}
	return &budgetModel, nil
}
