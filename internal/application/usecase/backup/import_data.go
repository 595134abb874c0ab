// Package backup contains backup and restore use cases.
package backup

import (
	"context"
	"log/slog"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

// ImportDataInput represents the input for a destructive restore.
type ImportDataInput struct {
	Snapshot *entity.Snapshot
}

// ImportDataUseCase restores a snapshot: clears every existing entity, then
// inserts each collection ID-preserving in the order accounts, transactions,
// budgets, goals, investments. Import bypasses balance derivation entirely
// and trusts the snapshot's stored CurrentBalance values.
type ImportDataUseCase struct {
	ledgerRepo adapter.LedgerRepository
	notifier   adapter.ChangeNotifier
}

// NewImportDataUseCase creates a new ImportDataUseCase instance.
func NewImportDataUseCase(ledgerRepo adapter.LedgerRepository, notifier adapter.ChangeNotifier) *ImportDataUseCase {
	return &ImportDataUseCase{
		ledgerRepo: ledgerRepo,
		notifier:   notifier,
	}
}

// Execute performs the restore. The category list is a read-only collaborator
// and is not persisted here.
func (uc *ImportDataUseCase) Execute(ctx context.Context, input ImportDataInput) error {
	if input.Snapshot == nil {
		return domainerror.NewBackupError(
			domainerror.ErrCodeSnapshotInvalid,
			"snapshot is required",
			domainerror.ErrSnapshotInvalid,
		)
	}

	if err := uc.ledgerRepo.ClearAll(ctx); err != nil {
		return err
	}

	if err := uc.ledgerRepo.ImportAccounts(ctx, input.Snapshot.Accounts); err != nil {
		return err
	}
	if err := uc.ledgerRepo.ImportTransactions(ctx, input.Snapshot.Transactions); err != nil {
		return err
	}
	if err := uc.ledgerRepo.ImportBudgets(ctx, input.Snapshot.Budgets); err != nil {
		return err
	}
	if err := uc.ledgerRepo.ImportGoals(ctx, input.Snapshot.Goals); err != nil {
		return err
	}
	if err := uc.ledgerRepo.ImportInvestments(ctx, input.Snapshot.Investments); err != nil {
		return err
	}

	slog.Info("snapshot imported",
		"accounts", len(input.Snapshot.Accounts),
		"transactions", len(input.Snapshot.Transactions),
		"investments", len(input.Snapshot.Investments),
	)
	uc.notifier.Notify()

	return nil
}
