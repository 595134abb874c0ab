// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for editing an income or
// expense. The owning account is fixed; moving money between accounts is a
// transfer operation.
type UpdateTransactionInput struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Kind        entity.TransactionKind
	Date        time.Time
	Description string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction edit logic.
type UpdateTransactionUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	notifier        adapter.ChangeNotifier
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	notifier adapter.ChangeNotifier,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute edits the movement keeping the account balance exact: the stored
// kind/amount's effect is reverted first, then the new effect applied. The
// revert-then-apply order avoids a transient wrong balance if a failure is
// detected mid-way.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if !isMovementKind(input.Kind) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"transaction kind must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	transaction, err := uc.transactionRepo.FindTransactionByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if !isMovementKind(transaction.Kind) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"transfers are edited through the transfer operation",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	account, err := uc.accountRepo.FindAccountByID(ctx, transaction.AccountID)
	if err != nil {
		return nil, err
	}

	reverted := account.CurrentBalance.Sub(transaction.BalanceEffect(account.ID))

	transaction.Amount = input.Amount
	transaction.Kind = input.Kind
	transaction.Date = input.Date
	transaction.Description = input.Description
	transaction.UpdatedAt = time.Now().UTC()

	balance := reverted.Add(transaction.BalanceEffect(account.ID))
	if err := uc.transactionRepo.UpdateTransactionWithBalance(ctx, transaction, balance); err != nil {
		return nil, err
	}

	uc.notifier.Notify()

	return &UpdateTransactionOutput{Transaction: transaction}, nil
}
