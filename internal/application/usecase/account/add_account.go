// Package account contains account-related use cases.
package account

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// AddAccountInput represents the input for account creation.
type AddAccountInput struct {
	Name           string
	InitialBalance decimal.Decimal
	Currency       string
}

// AddAccountOutput represents the output of account creation.
type AddAccountOutput struct {
	Account *entity.Account
}

// AddAccountUseCase handles account creation logic.
type AddAccountUseCase struct {
	accountRepo adapter.AccountRepository
	notifier    adapter.ChangeNotifier
}

// NewAddAccountUseCase creates a new AddAccountUseCase instance.
func NewAddAccountUseCase(accountRepo adapter.AccountRepository, notifier adapter.ChangeNotifier) *AddAccountUseCase {
	return &AddAccountUseCase{
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

// Execute performs the account creation. The new account is appended to the
// display order: SortIndex = max(existing) + 1.
func (uc *AddAccountUseCase) Execute(ctx context.Context, input AddAccountInput) (*AddAccountOutput, error) {
	accounts, err := uc.accountRepo.FindAccounts(ctx)
	if err != nil {
		return nil, err
	}

	sortIndex := 0
	for _, existing := range accounts {
		if existing.SortIndex >= sortIndex {
			sortIndex = existing.SortIndex + 1
		}
	}

	account := entity.NewAccount(input.Name, input.InitialBalance, input.Currency, sortIndex)
	if err := uc.accountRepo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	slog.Info("account created", "account_id", account.ID, "currency", account.Currency)
	uc.notifier.Notify()

	return &AddAccountOutput{Account: account}, nil
}
