// Package investment contains investment-related use cases.
package investment

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

// ProcessActionInput represents the input for a lifecycle action. Quantity is
// the share count for sell; Amount is the principal withdrawn for withdraw.
// ReturnAmount, when positive and syncing, is credited to the target account
// as an income transaction.
type ProcessActionInput struct {
	ID           uuid.UUID
	Action       entity.InvestmentAction
	Quantity     decimal.Decimal
	Amount       decimal.Decimal
	ReturnAmount decimal.Decimal
	Date         time.Time
	Sync         SyncOptions
}

// ProcessActionOutput represents the output of a lifecycle action.
type ProcessActionOutput struct {
	Investment *entity.Investment
}

// ProcessActionUseCase handles the investment lifecycle state machine:
// active → sold (stock) and active → closed (fixed deposit/savings), both
// terminal.
type ProcessActionUseCase struct {
	accountRepo    adapter.AccountRepository
	investmentRepo adapter.InvestmentRepository
	notifier       adapter.ChangeNotifier
}

// NewProcessActionUseCase creates a new ProcessActionUseCase instance.
func NewProcessActionUseCase(
	accountRepo adapter.AccountRepository,
	investmentRepo adapter.InvestmentRepository,
	notifier adapter.ChangeNotifier,
) *ProcessActionUseCase {
	return &ProcessActionUseCase{
		accountRepo:    accountRepo,
		investmentRepo: investmentRepo,
		notifier:       notifier,
	}
}

// Execute applies the action. The investment update, the optional settlement
// income transaction and the optional balance credit are one atomic unit.
func (uc *ProcessActionUseCase) Execute(ctx context.Context, input ProcessActionInput) (*ProcessActionOutput, error) {
	investment, err := uc.investmentRepo.FindInvestmentByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if investment.Settled() {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvestmentSettled,
			"no actions apply to a sold or closed investment",
			domainerror.ErrInvestmentSettled,
		)
	}

	switch input.Action {
	case entity.InvestmentActionSell:
		if err := uc.applySell(investment, input.Quantity); err != nil {
			return nil, err
		}
	case entity.InvestmentActionClose:
		if err := uc.applyClose(investment); err != nil {
			return nil, err
		}
	case entity.InvestmentActionWithdraw:
		if err := uc.applyWithdraw(investment, input.Amount); err != nil {
			return nil, err
		}
	default:
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentAction,
			"action must be 'sell', 'close' or 'withdraw'",
			domainerror.ErrInvalidInvestmentAction,
		)
	}

	investment.UpdatedAt = time.Now().UTC()

	var income *entity.Transaction
	var targetBalance *decimal.Decimal

	if input.Sync.SyncToTransaction && input.Sync.AccountID != nil && input.ReturnAmount.GreaterThan(decimal.Zero) {
		account, err := uc.accountRepo.FindAccountByID(ctx, *input.Sync.AccountID)
		if err != nil {
			return nil, err
		}

		income = entity.NewTransaction(account.ID, input.ReturnAmount, entity.TransactionKindIncome, input.Date, "贖回 "+investment.Name)

		balance := account.CurrentBalance.Add(input.ReturnAmount)
		targetBalance = &balance
	}

	if err := uc.investmentRepo.SettleInvestment(ctx, investment, income, targetBalance); err != nil {
		return nil, err
	}

	slog.Info("investment action processed",
		"investment_id", investment.ID,
		"action", input.Action,
		"status", investment.Status,
	)
	uc.notifier.Notify()

	return &ProcessActionOutput{Investment: investment}, nil
}

// applySell reduces the share count, clamped at zero. A full sell is
// terminal; a partial sell stays active. CostPrice is deliberately not
// reduced proportionally: realized cost basis is out of scope.
func (uc *ProcessActionUseCase) applySell(investment *entity.Investment, quantity decimal.Decimal) error {
	if investment.Type != entity.InvestmentTypeStock {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentAction,
			"sell applies to stock investments only",
			domainerror.ErrInvalidInvestmentAction,
		)
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvInvalidAmount,
			"sell quantity must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	remaining := investment.Amount.Sub(quantity)
	if remaining.LessThanOrEqual(decimal.Zero) {
		remaining = decimal.Zero
		investment.Status = entity.InvestmentStatusSold
	}
	investment.Amount = remaining
	return nil
}

// applyClose zeroes a fixed deposit unconditionally.
func (uc *ProcessActionUseCase) applyClose(investment *entity.Investment) error {
	if investment.Type != entity.InvestmentTypeFixedDeposit {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentAction,
			"close applies to fixed deposits only",
			domainerror.ErrInvalidInvestmentAction,
		)
	}

	investment.Amount = decimal.Zero
	investment.Status = entity.InvestmentStatusClosed
	return nil
}

// applyWithdraw reduces savings principal, clamped at zero; fully depleted
// savings close.
func (uc *ProcessActionUseCase) applyWithdraw(investment *entity.Investment, amount decimal.Decimal) error {
	if investment.Type != entity.InvestmentTypeSavings {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentAction,
			"withdraw applies to savings investments only",
			domainerror.ErrInvalidInvestmentAction,
		)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvInvalidAmount,
			"withdraw amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	remaining := investment.Amount.Sub(amount)
	if remaining.LessThanOrEqual(decimal.Zero) {
		remaining = decimal.Zero
		investment.Status = entity.InvestmentStatusClosed
	}
	investment.Amount = remaining
	return nil
}
