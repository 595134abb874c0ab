// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// ListTransactionsInput represents the filter for transaction listing. All
// fields are optional.
type ListTransactionsInput struct {
	AccountID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// ListTransactionsOutput represents the output of transaction listing.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles transaction listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns transactions matching the filter, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	var transactions []*entity.Transaction
	var err error

	switch {
	case input.AccountID != nil:
		transactions, err = uc.transactionRepo.FindTransactionsByAccount(ctx, *input.AccountID)
	case input.StartDate != nil && input.EndDate != nil:
		transactions, err = uc.transactionRepo.FindTransactionsInRange(ctx, *input.StartDate, *input.EndDate)
	default:
		transactions, err = uc.transactionRepo.FindTransactions(ctx)
	}
	if err != nil {
		return nil, err
	}

	if input.AccountID != nil && input.StartDate != nil && input.EndDate != nil {
		filtered := transactions[:0]
		for _, t := range transactions {
			if !t.Date.Before(*input.StartDate) && !t.Date.After(*input.EndDate) {
				filtered = append(filtered, t)
			}
		}
		transactions = filtered
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
