// Package account contains account-related use cases.
package account

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// UpdateAccountInput represents the input for account update. Balances are
// not editable here; they change only through recorded ledger movements.
type UpdateAccountInput struct {
	ID       uuid.UUID
	Name     string
	Currency string
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	notifier    adapter.ChangeNotifier
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository, notifier adapter.ChangeNotifier) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := uc.accountRepo.FindAccountByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	account.Name = input.Name
	account.Currency = input.Currency
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}

	uc.notifier.Notify()

	return &UpdateAccountOutput{Account: account}, nil
}
