// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

// AddTransactionInput represents the input for recording an income or expense.
type AddTransactionInput struct {
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Kind        entity.TransactionKind
	Date        time.Time
	Description string
}

// AddTransactionOutput represents the output of transaction creation.
type AddTransactionOutput struct {
	Transaction *entity.Transaction
}

// AddTransactionUseCase handles transaction creation logic.
type AddTransactionUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	notifier        adapter.ChangeNotifier
}

// NewAddTransactionUseCase creates a new AddTransactionUseCase instance.
func NewAddTransactionUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	notifier adapter.ChangeNotifier,
) *AddTransactionUseCase {
	return &AddTransactionUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute records the movement and adjusts the account balance: income adds
// the amount, expense subtracts it. Row insert and balance overwrite are one
// atomic unit in the repository.
func (uc *AddTransactionUseCase) Execute(ctx context.Context, input AddTransactionInput) (*AddTransactionOutput, error) {
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
	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	account, err := uc.accountRepo.FindAccountByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(input.AccountID, input.Amount, input.Kind, input.Date, input.Description)

	balance := account.CurrentBalance.Add(transaction.BalanceEffect(account.ID))
	if err := uc.transactionRepo.CreateTransactionWithBalance(ctx, transaction, balance); err != nil {
		return nil, err
	}

	slog.Info("transaction recorded",
		"transaction_id", transaction.ID,
		"kind", transaction.Kind,
		"account_id", account.ID,
	)
	uc.notifier.Notify()

	return &AddTransactionOutput{Transaction: transaction}, nil
}
