// Package account contains account-related use cases.
package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

// ReorderAccountsInput represents the input for account reordering. The
// sequence must contain every existing account exactly once.
type ReorderAccountsInput struct {
	OrderedIDs []uuid.UUID
}

// ReorderAccountsUseCase handles user-controlled account ordering.
type ReorderAccountsUseCase struct {
	accountRepo adapter.AccountRepository
	notifier    adapter.ChangeNotifier
}

// NewReorderAccountsUseCase creates a new ReorderAccountsUseCase instance.
func NewReorderAccountsUseCase(accountRepo adapter.AccountRepository, notifier adapter.ChangeNotifier) *ReorderAccountsUseCase {
	return &ReorderAccountsUseCase{
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

// Execute reassigns SortIndex = position in the given sequence. The
// repository applies the reassignment all-or-nothing.
func (uc *ReorderAccountsUseCase) Execute(ctx context.Context, input ReorderAccountsInput) error {
	accounts, err := uc.accountRepo.FindAccounts(ctx)
	if err != nil {
		return err
	}

	if len(input.OrderedIDs) != len(accounts) {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountOrder,
			"order must list every account exactly once",
			domainerror.ErrInvalidAccountOrder,
		)
	}

	known := make(map[uuid.UUID]bool, len(accounts))
	for _, account := range accounts {
		known[account.ID] = true
	}
	seen := make(map[uuid.UUID]bool, len(input.OrderedIDs))
	for _, id := range input.OrderedIDs {
		if !known[id] || seen[id] {
			return domainerror.NewAccountError(
				domainerror.ErrCodeInvalidAccountOrder,
				"order must list every account exactly once",
				domainerror.ErrInvalidAccountOrder,
			)
		}
		seen[id] = true
	}

	if err := uc.accountRepo.UpdateAccountOrder(ctx, input.OrderedIDs); err != nil {
		return err
	}

	uc.notifier.Notify()

	return nil
}
