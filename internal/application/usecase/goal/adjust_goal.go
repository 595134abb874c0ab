// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/application/usecase/transaction"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

// AdjustDirection is the direction of a goal progress adjustment.
type AdjustDirection string

const (
	AdjustDirectionAdd      AdjustDirection = "add"
	AdjustDirectionSubtract AdjustDirection = "subtract"
)

// AdjustGoalInput represents the input for a progress adjustment. When
// syncing an add, the chosen accounts decide the ledger movement: both set →
// transfer, from only → expense, to only → income, neither → no movement.
type AdjustGoalInput struct {
	ID            uuid.UUID
	Delta         decimal.Decimal
	Direction     AdjustDirection
	Date          time.Time
	Sync          bool
	FromAccountID *uuid.UUID
	ToAccountID   *uuid.UUID
}

// AdjustGoalOutput represents the output of a progress adjustment.
type AdjustGoalOutput struct {
	Goal *entity.Goal
}

// AdjustGoalUseCase mutates goal progress, optionally synchronizing a ledger
// movement. The movement is delegated to the transaction use cases so every
// balance change follows the same revert/apply discipline.
type AdjustGoalUseCase struct {
	goalRepo        adapter.GoalRepository
	addTransaction  *transaction.AddTransactionUseCase
	performTransfer *transaction.PerformTransferUseCase
	notifier        adapter.ChangeNotifier
}

// NewAdjustGoalUseCase creates a new AdjustGoalUseCase instance.
func NewAdjustGoalUseCase(
	goalRepo adapter.GoalRepository,
	addTransaction *transaction.AddTransactionUseCase,
	performTransfer *transaction.PerformTransferUseCase,
	notifier adapter.ChangeNotifier,
) *AdjustGoalUseCase {
	return &AdjustGoalUseCase{
		goalRepo:        goalRepo,
		addTransaction:  addTransaction,
		performTransfer: performTransfer,
		notifier:        notifier,
	}
}

// Execute adjusts the goal's progress. The progress update is unconditional:
// it is persisted before the ledger movement is attempted, so a failed sync
// never rolls it back. Subtracting clamps at zero; adding may exceed the
// target, which means the goal is achieved.
func (uc *AdjustGoalUseCase) Execute(ctx context.Context, input AdjustGoalInput) (*AdjustGoalOutput, error) {
	if input.Delta.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalAmount,
			"adjustment delta must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	goal, err := uc.goalRepo.FindGoalByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	switch input.Direction {
	case AdjustDirectionAdd:
		goal.CurrentAmount = goal.CurrentAmount.Add(input.Delta)
	case AdjustDirectionSubtract:
		goal.CurrentAmount = goal.CurrentAmount.Sub(input.Delta)
		if goal.CurrentAmount.IsNegative() {
			goal.CurrentAmount = decimal.Zero
		}
	default:
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalDirection,
			"direction must be 'add' or 'subtract'",
			domainerror.ErrInvalidGoalDirection,
		)
	}
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.UpdateGoal(ctx, goal); err != nil {
		return nil, err
	}
	uc.notifier.Notify()

	if input.Sync && input.Direction == AdjustDirectionAdd {
		if err := uc.syncMovement(ctx, goal, input); err != nil {
			// Progress already updated and kept; the failed movement
			// surfaces to the caller.
			slog.Warn("goal ledger sync failed", "goal_id", goal.ID, "error", err)
			return nil, err
		}
	}

	return &AdjustGoalOutput{Goal: goal}, nil
}

func (uc *AdjustGoalUseCase) syncMovement(ctx context.Context, goal *entity.Goal, input AdjustGoalInput) error {
	description := "目標 " + goal.Name

	switch {
	case input.FromAccountID != nil && input.ToAccountID != nil:
		_, err := uc.performTransfer.Execute(ctx, transaction.PerformTransferInput{
			FromAccountID: *input.FromAccountID,
			ToAccountID:   *input.ToAccountID,
			Amount:        input.Delta,
			Date:          input.Date,
			Description:   description,
		})
		return err
	case input.FromAccountID != nil:
		_, err := uc.addTransaction.Execute(ctx, transaction.AddTransactionInput{
			AccountID:   *input.FromAccountID,
			Amount:      input.Delta,
			Kind:        entity.TransactionKindExpense,
			Date:        input.Date,
			Description: description,
		})
		return err
	case input.ToAccountID != nil:
		_, err := uc.addTransaction.Execute(ctx, transaction.AddTransactionInput{
			AccountID:   *input.ToAccountID,
			Amount:      input.Delta,
			Kind:        entity.TransactionKindIncome,
			Date:        input.Date,
			Description: description,
		})
		return err
	}

	// No accounts chosen: progress only, no ledger movement.
	return nil
}
