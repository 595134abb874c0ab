// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerkeep/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	ID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
	notifier adapter.ChangeNotifier
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, notifier adapter.ChangeNotifier) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
		notifier: notifier,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if _, err := uc.goalRepo.FindGoalByID(ctx, input.ID); err != nil {
		return err
	}

	if err := uc.goalRepo.DeleteGoal(ctx, input.ID); err != nil {
		return err
	}

	uc.notifier.Notify()

	return nil
}
