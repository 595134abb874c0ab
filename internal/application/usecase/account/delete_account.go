// Package account contains account-related use cases.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	ID uuid.UUID
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	notifier        adapter.ChangeNotifier
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	notifier adapter.ChangeNotifier,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute performs the account deletion. Deletion is blocked while any
// transaction still references the account as source or target.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if _, err := uc.accountRepo.FindAccountByID(ctx, input.ID); err != nil {
		return err
	}

	referencing, err := uc.transactionRepo.FindTransactionsByAccount(ctx, input.ID)
	if err != nil {
		return err
	}
	if len(referencing) > 0 {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountInUse,
			"account has transactions and cannot be deleted",
			domainerror.ErrAccountInUse,
		)
	}

	if err := uc.accountRepo.DeleteAccount(ctx, input.ID); err != nil {
		return err
	}

	slog.Info("account deleted", "account_id", input.ID)
	uc.notifier.Notify()

	return nil
}
