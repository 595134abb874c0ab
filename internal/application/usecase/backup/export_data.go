// Package backup contains backup and restore use cases.
package backup

import (
	"context"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/application/usecase/budget"
	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// ExportDataOutput represents a full ledger snapshot.
type ExportDataOutput struct {
	Snapshot *entity.Snapshot
}

// ExportDataUseCase dumps every entity collection for backup export.
type ExportDataUseCase struct {
	ledgerRepo adapter.LedgerRepository
	categories *budget.ListCategoriesUseCase
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(ledgerRepo adapter.LedgerRepository, categories *budget.ListCategoriesUseCase) *ExportDataUseCase {
	return &ExportDataUseCase{
		ledgerRepo: ledgerRepo,
		categories: categories,
	}
}

// Execute builds the snapshot. Stored balances are exported as-is.
func (uc *ExportDataUseCase) Execute(ctx context.Context) (*ExportDataOutput, error) {
	accounts, err := uc.ledgerRepo.FindAccounts(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := uc.ledgerRepo.FindTransactions(ctx)
	if err != nil {
		return nil, err
	}
	budgets, err := uc.ledgerRepo.FindBudgets(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := uc.ledgerRepo.FindGoals(ctx)
	if err != nil {
		return nil, err
	}
	investments, err := uc.ledgerRepo.FindInvestments(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categories.Execute(ctx)
	if err != nil {
		return nil, err
	}

	return &ExportDataOutput{
		Snapshot: &entity.Snapshot{
			Accounts:     accounts,
			Transactions: transactions,
			Budgets:      budgets,
			Goals:        goals,
			Investments:  investments,
			Categories:   categories.Categories,
		},
	}, nil
}
