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

// CreateGoal creates a new goal.
func (r *kvLedgerRepository) CreateGoal(ctx context.Context, goal *entity.Goal) error {
	pipe := r.client.TxPipeline()
	if err := stageRecord(ctx, pipe, goalKey(goal.ID), model.GoalFromEntity(goal)); err != nil {
		return err
	}
	pipe.SAdd(ctx, kvGoalIndex, goal.ID.String())
	_, err := pipe.Exec(ctx)
	return err
}

// FindGoalByID retrieves a goal by its ID.
func (r *kvLedgerRepository) FindGoalByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	goalModel, err := r.loadGoalModel(ctx, id)
	if err != nil {
		return nil, err
	}
	return goalModel.ToEntity(), nil
}

// FindGoals retrieves all goals.
func (r *kvLedgerRepository) FindGoals(ctx context.Context) ([]*entity.Goal, error) {
	goalModels, err := loadIndexed[model.GoalModel](ctx, r.client, kvGoalIndex, kvGoalPrefix)
	if err != nil {
		return nil, err
	}

	sort.Slice(goalModels, func(i, j int) bool {
		return goalModels[i].CreatedAt.Before(goalModels[j].CreatedAt)
	})

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// UpdateGoal updates an existing goal.
func (r *kvLedgerRepository) UpdateGoal(ctx context.Context, goal *entity.Goal) error {
	if _, err := r.loadGoalModel(ctx, goal.ID); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	if err := stageRecord(ctx, pipe, goalKey(goal.ID), model.GoalFromEntity(goal)); err != nil {
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}

// DeleteGoal removes a goal.
func (r *kvLedgerRepository) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	if _, err := r.loadGoalModel(ctx, id); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, goalKey(id))
	pipe.SRem(ctx, kvGoalIndex, id.String())
	_, err := pipe.Exec(ctx)
	return err
}

// ImportGoals bulk-inserts goals preserving IDs.
func (r *kvLedgerRepository) ImportGoals(ctx context.Context, goals []*entity.Goal) error {
	if len(goals) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, goal := range goals {
		if err := stageRecord(ctx, pipe, goalKey(goal.ID), model.GoalFromEntity(goal)); err != nil {
			return err
		}
		pipe.SAdd(ctx, kvGoalIndex, goal.ID.String())
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *kvLedgerRepository) loadGoalModel(ctx context.Context, id uuid.UUID) (*model.GoalModel, error) {
	payload, err := r.client.Get(ctx, goalKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, err
	}
	var goalModel model.GoalModel
	if err := json.Unmarshal(payload, &goalModel); err != nil {
		return nil, err
	}
	return &goalModel, nil
}
