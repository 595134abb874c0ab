// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Name         string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
	Currency     string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	notifier adapter.ChangeNotifier
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, notifier adapter.ChangeNotifier) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		notifier: notifier,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalAmount,
			"target amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	goal := entity.NewGoal(input.Name, input.TargetAmount, input.Deadline, input.Currency)
	if err := uc.goalRepo.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}

	uc.notifier.Notify()

	return &CreateGoalOutput{Goal: goal}, nil
}
