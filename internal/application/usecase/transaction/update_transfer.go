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

// UpdateTransferInput represents the input for editing a transfer. The
// source/target pair may change entirely.
type UpdateTransferInput struct {
	ID            uuid.UUID
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Description   string
}

// UpdateTransferOutput represents the output of a transfer update.
type UpdateTransferOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransferUseCase handles transfer edit logic.
type UpdateTransferUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	notifier        adapter.ChangeNotifier
}

// NewUpdateTransferUseCase creates a new UpdateTransferUseCase instance.
func NewUpdateTransferUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	notifier adapter.ChangeNotifier,
) *UpdateTransferUseCase {
	return &UpdateTransferUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute reverts the old transfer on both old accounts, then applies the new
// amount on the new pair. Up to four balance mutations plus the row update
// run as one atomic unit in the repository.
func (uc *UpdateTransferUseCase) Execute(ctx context.Context, input UpdateTransferInput) (*UpdateTransferOutput, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.FromAccountID == input.ToAccountID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransferSameAccount,
			"cannot transfer to the same account",
			domainerror.ErrTransferSameAccount,
		)
	}

	transfer, err := uc.transactionRepo.FindTransactionByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if transfer.Kind != entity.TransactionKindTransfer || transfer.TargetAccountID == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"transaction is not a transfer",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	balances := make(map[uuid.UUID]decimal.Decimal, 4)
	load := func(id uuid.UUID) (decimal.Decimal, error) {
		if balance, ok := balances[id]; ok {
			return balance, nil
		}
		account, err := uc.accountRepo.FindAccountByID(ctx, id)
		if err != nil {
			return decimal.Zero, err
		}
		balances[id] = account.CurrentBalance
		return account.CurrentBalance, nil
	}

	// Revert the old legs first: restore the old source by +oldAmount and
	// the old target by -oldAmount.
	oldFrom, oldTo := transfer.AccountID, *transfer.TargetAccountID
	for _, id := range []uuid.UUID{oldFrom, oldTo, input.FromAccountID, input.ToAccountID} {
		if _, err := load(id); err != nil {
			return nil, err
		}
	}
	balances[oldFrom] = balances[oldFrom].Add(transfer.Amount)
	balances[oldTo] = balances[oldTo].Sub(transfer.Amount)

	// Then apply the new legs.
	balances[input.FromAccountID] = balances[input.FromAccountID].Sub(input.Amount)
	balances[input.ToAccountID] = balances[input.ToAccountID].Add(input.Amount)

	transfer.AccountID = input.FromAccountID
	target := input.ToAccountID
	transfer.TargetAccountID = &target
	transfer.Amount = input.Amount
	transfer.Date = input.Date
	transfer.Description = input.Description
	transfer.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.UpdateTransfer(ctx, transfer, balances); err != nil {
		return nil, err
	}

	uc.notifier.Notify()

	return &UpdateTransferOutput{Transaction: transfer}, nil
}
