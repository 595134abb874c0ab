// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

// PerformTransferInput represents the input for a transfer between accounts.
type PerformTransferInput struct {
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Description   string
}

// PerformTransferOutput represents the output of a transfer.
type PerformTransferOutput struct {
	Transaction *entity.Transaction
}

// PerformTransferUseCase handles transfer logic.
type PerformTransferUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	notifier        adapter.ChangeNotifier
}

// NewPerformTransferUseCase creates a new PerformTransferUseCase instance.
func NewPerformTransferUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	notifier adapter.ChangeNotifier,
) *PerformTransferUseCase {
	return &PerformTransferUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute records one transfer row and moves the amount between the two
// balances in a single atomic unit. The overdraft check lives here, not in
// the repository, so balance edits may still overdraw deliberately elsewhere.
func (uc *PerformTransferUseCase) Execute(ctx context.Context, input PerformTransferInput) (*PerformTransferOutput, error) {
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

	from, err := uc.accountRepo.FindAccountByID(ctx, input.FromAccountID)
	if err != nil {
		return nil, err
	}
	to, err := uc.accountRepo.FindAccountByID(ctx, input.ToAccountID)
	if err != nil {
		return nil, err
	}

	if from.CurrentBalance.LessThan(input.Amount) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInsufficientFunds,
			"source account balance is lower than the transfer amount",
			domainerror.ErrInsufficientFunds,
		)
	}

	transfer := entity.NewTransfer(from.ID, to.ID, input.Amount, input.Date, input.Description)

	fromBalance := from.CurrentBalance.Sub(input.Amount)
	toBalance := to.CurrentBalance.Add(input.Amount)
	if err := uc.transactionRepo.PerformTransfer(ctx, transfer, fromBalance, toBalance); err != nil {
		return nil, err
	}

	slog.Info("transfer performed",
		"transaction_id", transfer.ID,
		"from_account_id", from.ID,
		"to_account_id", to.ID,
	)
	uc.notifier.Notify()

	return &PerformTransferOutput{Transaction: transfer}, nil
}
