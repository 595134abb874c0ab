// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// ListGoalsOutput represents the output of goal listing.
type ListGoalsOutput struct {
	Goals []*entity.Goal
}

// ListGoalsUseCase handles goal listing.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute returns all goals.
func (uc *ListGoalsUseCase) Execute(ctx context.Context) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindGoals(ctx)
	if err != nil {
		return nil, err
	}

	return &ListGoalsOutput{Goals: goals}, nil
}
