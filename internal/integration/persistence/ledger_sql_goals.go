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

// CreateGoal creates a new goal.
func (r *sqlLedgerRepository) CreateGoal(ctx context.Context, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Create(model.GoalFromEntity(goal)).Error
}

// FindGoalByID retrieves a goal by its ID.
func (r *sqlLedgerRepository) FindGoalByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindGoals retrieves all goals.
func (r *sqlLedgerRepository) FindGoals(ctx context.Context) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// UpdateGoal updates an existing goal.
func (r *sqlLedgerRepository) UpdateGoal(ctx context.Context, goal *entity.Goal) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ?", goal.ID).
		Updates(model.GoalFromEntity(goal))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// DeleteGoal removes a goal.
func (r *sqlLedgerRepository) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GoalModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// ImportGoals bulk-inserts goals preserving IDs.
func (r *sqlLedgerRepository) ImportGoals(ctx context.Context, goals []*entity.Goal) error {
	if len(goals) == 0 {
		return nil
	}

	goalModels := make([]*model.GoalModel, len(goals))
	for i, goal := range goals {
		goalModels[i] = model.GoalFromEntity(goal)
	}
	return r.db.WithContext(ctx).Create(goalModels).Error
}
