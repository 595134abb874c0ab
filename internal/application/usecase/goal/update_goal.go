// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Progress is adjusted
// through the adjust operation, not here.
type UpdateGoalInput struct {
	ID           uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
	Currency     string
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	notifier adapter.ChangeNotifier
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, notifier adapter.ChangeNotifier) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		notifier: notifier,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalAmount,
			"target amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	goal, err := uc.goalRepo.FindGoalByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	goal.Name = input.Name
	goal.TargetAmount = input.TargetAmount
	goal.Deadline = input.Deadline
	goal.Currency = input.Currency
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.UpdateGoal(ctx, goal); err != nil {
		return nil, err
	}

	uc.notifier.Notify()

	return &UpdateGoalOutput{Goal: goal}, nil
}
