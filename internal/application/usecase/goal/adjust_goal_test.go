// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/usecase/transaction"
	"github.com/ledgerkeep/backend/internal/application/usecase/usecasetest"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

func TestAdjustGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC)

	build := func(ledger *usecasetest.Ledger) *AdjustGoalUseCase {
		notifier := usecasetest.NewNotifier()
		add := transaction.NewAddTransactionUseCase(ledger, ledger, notifier)
		transfer := transaction.NewPerformTransferUseCase(ledger, ledger, notifier)
		return NewAdjustGoalUseCase(ledger, add, transfer, notifier)
	}

	t.Run("adding increases progress", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		goal := entity.NewGoal("trip", decimal.NewFromInt(1000), nil, "TWD")
		ledger.SeedGoal(goal)

		uc := build(ledger)
		output, err := uc.Execute(ctx, AdjustGoalInput{
			ID:        goal.ID,
			Delta:     decimal.NewFromInt(300),
			Direction: AdjustDirectionAdd,
			Date:      date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Goal.CurrentAmount.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected progress 300, got %s", output.Goal.CurrentAmount)
		}
	})

	t.Run("progress may exceed the target", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		goal := entity.NewGoal("trip", decimal.NewFromInt(1000), nil, "TWD")
		goal.CurrentAmount = decimal.NewFromInt(900)
		ledger.SeedGoal(goal)

		uc := build(ledger)
		output, err := uc.Execute(ctx, AdjustGoalInput{
			ID:        goal.ID,
			Delta:     decimal.NewFromInt(500),
			Direction: AdjustDirectionAdd,
			Date:      date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Goal.CurrentAmount.Equal(decimal.NewFromInt(1400)) {
			t.Errorf("expected progress 1400, got %s", output.Goal.CurrentAmount)
		}
		if !output.Goal.Achieved() {
			t.Error("expected goal to be achieved")
		}
	})

	t.Run("subtracting clamps at zero", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		goal := entity.NewGoal("trip", decimal.NewFromInt(1000), nil, "TWD")
		goal.CurrentAmount = decimal.NewFromInt(200)
		ledger.SeedGoal(goal)

		uc := build(ledger)
		output, err := uc.Execute(ctx, AdjustGoalInput{
			ID:        goal.ID,
			Delta:     decimal.NewFromInt(500),
			Direction: AdjustDirectionSubtract,
			Date:      date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Goal.CurrentAmount.IsZero() {
			t.Errorf("expected progress clamped at 0, got %s", output.Goal.CurrentAmount)
		}
	})

	t.Run("synced add with both accounts records a transfer", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		from := entity.NewAccount("checking", decimal.NewFromInt(1000), "TWD", 0)
		to := entity.NewAccount("savings", decimal.NewFromInt(0), "TWD", 1)
		ledger.SeedAccount(from)
		ledger.SeedAccount(to)
		goal := entity.NewGoal("trip", decimal.NewFromInt(1000), nil, "TWD")
		ledger.SeedGoal(goal)

		uc := build(ledger)
		_, err := uc.Execute(ctx, AdjustGoalInput{
			ID:            goal.ID,
			Delta:         decimal.NewFromInt(250),
			Direction:     AdjustDirectionAdd,
			Date:          date,
			Sync:          true,
			FromAccountID: &from.ID,
			ToAccountID:   &to.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := ledger.Balance(from.ID); !got.Equal(decimal.NewFromInt(750)) {
			t.Errorf("expected source balance 750, got %s", got)
		}
		if got := ledger.Balance(to.ID); !got.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected target balance 250, got %s", got)
		}
		if ledger.TransactionCount() != 1 {
			t.Errorf("expected one transfer, got %d", ledger.TransactionCount())
		}
	})

	t.Run("synced add with only a source records an expense", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		from := entity.NewAccount("checking", decimal.NewFromInt(1000), "TWD", 0)
		ledger.SeedAccount(from)
		goal := entity.NewGoal("trip", decimal.NewFromInt(1000), nil, "TWD")
		ledger.SeedGoal(goal)

		uc := build(ledger)
		_, err := uc.Execute(ctx, AdjustGoalInput{
			ID:            goal.ID,
			Delta:         decimal.NewFromInt(100),
			Direction:     AdjustDirectionAdd,
			Date:          date,
			Sync:          true,
			FromAccountID: &from.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := ledger.Balance(from.ID); !got.Equal(decimal.NewFromInt(900)) {
			t.Errorf("expected balance 900, got %s", got)
		}
	})

	t.Run("failed sync keeps the progress update", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		from := entity.NewAccount("checking", decimal.NewFromInt(50), "TWD", 0)
		to := entity.NewAccount("savings", decimal.NewFromInt(0), "TWD", 1)
		ledger.SeedAccount(from)
		ledger.SeedAccount(to)
		goal := entity.NewGoal("trip", decimal.NewFromInt(1000), nil, "TWD")
		ledger.SeedGoal(goal)

		uc := build(ledger)
		// Transfer of 100 overdraws the source and must fail.
		_, err := uc.Execute(ctx, AdjustGoalInput{
			ID:            goal.ID,
			Delta:         decimal.NewFromInt(100),
			Direction:     AdjustDirectionAdd,
			Date:          date,
			Sync:          true,
			FromAccountID: &from.ID,
			ToAccountID:   &to.ID,
		})
		if !errors.Is(err, domainerror.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}

		stored, findErr := ledger.FindGoalByID(ctx, goal.ID)
		if findErr != nil {
			t.Fatalf("goal missing: %v", findErr)
		}
		if !stored.CurrentAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected progress kept at 100, got %s", stored.CurrentAmount)
		}
	})

	t.Run("rejects an unknown direction", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		goal := entity.NewGoal("trip", decimal.NewFromInt(1000), nil, "TWD")
		ledger.SeedGoal(goal)

		uc := build(ledger)
		_, err := uc.Execute(ctx, AdjustGoalInput{
			ID:        goal.ID,
			Delta:     decimal.NewFromInt(10),
			Direction: AdjustDirection("sideways"),
			Date:      date,
		})
		if !errors.Is(err, domainerror.ErrInvalidGoalDirection) {
			t.Errorf("expected ErrInvalidGoalDirection, got %v", err)
		}
	})

	t.Run("rejects a non-positive delta", func(t *testing.T) {
		ledger := usecasetest.NewLedger()
		goal := entity.NewGoal("trip", decimal.NewFromInt(1000), nil, "TWD")
		ledger.SeedGoal(goal)

		uc := build(ledger)
		_, err := uc.Execute(ctx, AdjustGoalInput{
			ID:        goal.ID,
			Delta:     decimal.Zero,
			Direction: AdjustDirectionAdd,
			Date:      date,
		})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})
}
