// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// GoalRepository defines the persistence operations on savings goals.
type GoalRepository interface {
	// CreateGoal creates a new goal.
	CreateGoal(ctx context.Context, goal *entity.Goal) error

	// FindGoalByID retrieves a goal by its ID.
	FindGoalByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindGoals retrieves all goals.
	FindGoals(ctx context.Context) ([]*entity.Goal, error)

	// UpdateGoal updates an existing goal.
	UpdateGoal(ctx context.Context, goal *entity.Goal) error

	// DeleteGoal removes a goal.
	DeleteGoal(ctx context.Context, id uuid.UUID) error

	// ImportGoals bulk-inserts goals preserving their IDs.
	ImportGoals(ctx context.Context, goals []*entity.Goal) error
}
