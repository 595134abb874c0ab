// Package account contains account-related use cases.
package account

import (
	"context"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// ListAccountsOutput represents the output of account listing.
type ListAccountsOutput struct {
	Accounts []*entity.Account
}

// ListAccountsUseCase handles account listing.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute returns all accounts in display order.
func (uc *ListAccountsUseCase) Execute(ctx context.Context) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindAccounts(ctx)
	if err != nil {
		return nil, err
	}

	return &ListAccountsOutput{Accounts: accounts}, nil
}
