// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	notifier        adapter.ChangeNotifier
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	notifier adapter.ChangeNotifier,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute reverts the movement's balance effect, then removes the row.
// Deleting a transfer restores both legs.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	transaction, err := uc.transactionRepo.FindTransactionByID(ctx, input.ID)
	if err != nil {
		return err
	}

	balances := make(map[uuid.UUID]decimal.Decimal, 2)
	if err := uc.revertInto(ctx, balances, transaction, transaction.AccountID); err != nil {
		return err
	}
	if transaction.Kind == entity.TransactionKindTransfer && transaction.TargetAccountID != nil {
		if err := uc.revertInto(ctx, balances, transaction, *transaction.TargetAccountID); err != nil {
			return err
		}
	}

	if err := uc.transactionRepo.DeleteTransactionWithBalances(ctx, transaction.ID, balances); err != nil {
		return err
	}

	slog.Info("transaction deleted", "transaction_id", transaction.ID, "kind", transaction.Kind)
	uc.notifier.Notify()

	return nil
}

func (uc *DeleteTransactionUseCase) revertInto(
	ctx context.Context,
	balances map[uuid.UUID]decimal.Decimal,
	transaction *entity.Transaction,
	accountID uuid.UUID,
) error {
	account, err := uc.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	balances[accountID] = account.CurrentBalance.Sub(transaction.BalanceEffect(accountID))
	return nil
}
