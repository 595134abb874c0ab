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

// SyncOptions controls whether an investment mutation also records a ledger
// movement against an account.
type SyncOptions struct {
	SyncToTransaction bool
	AccountID         *uuid.UUID
}

// CreateInvestmentInput represents the input for investment creation. For
// stocks, Amount is the share count and CostPrice the total purchase cost;
// CurrentPrice is the per-unit valuation price.
type CreateInvestmentInput struct {
	Name              string
	Type              entity.InvestmentType
	Amount            decimal.Decimal
	CostPrice         decimal.Decimal
	CurrentPrice      decimal.Decimal
	Currency          string
	Date              time.Time
	MaturityDate      *time.Time
	InterestRate      decimal.Decimal
	InterestFrequency string
	HandlingFee       decimal.Decimal
	Notes             string
	Sync              SyncOptions
}

// CreateInvestmentOutput represents the output of investment creation.
type CreateInvestmentOutput struct {
	Investment *entity.Investment
}

// CreateInvestmentUseCase handles investment creation logic.
type CreateInvestmentUseCase struct {
	accountRepo    adapter.AccountRepository
	investmentRepo adapter.InvestmentRepository
	notifier       adapter.ChangeNotifier
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(
	accountRepo adapter.AccountRepository,
	investmentRepo adapter.InvestmentRepository,
	notifier adapter.ChangeNotifier,
) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{
		accountRepo:    accountRepo,
		investmentRepo: investmentRepo,
		notifier:       notifier,
	}
}

// Execute inserts the investment with status active. When syncing and a
// source account is given, one expense transaction for the purchase cost
// (cost price or principal, plus handling fee) debits the source account and
// is back-referenced through LinkedTransactionID, atomically with the
// investment insert.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input CreateInvestmentInput) (*CreateInvestmentOutput, error) {
	if !isValidInvestmentType(input.Type) {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentType,
			"investment type must be 'stock', 'fixed_deposit' or 'savings'",
			domainerror.ErrInvalidInvestmentType,
		)
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvInvalidAmount,
			"amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	investment := entity.NewInvestment(input.Name, input.Type, input.Amount, input.Currency, input.Date)
	investment.CostPrice = input.CostPrice
	investment.CurrentPrice = input.CurrentPrice
	investment.MaturityDate = input.MaturityDate
	investment.InterestRate = input.InterestRate
	investment.InterestFrequency = input.InterestFrequency
	investment.HandlingFee = input.HandlingFee
	investment.Notes = input.Notes

	var linked *entity.Transaction
	var sourceBalance *decimal.Decimal

	if input.Sync.SyncToTransaction && input.Sync.AccountID != nil {
		account, err := uc.accountRepo.FindAccountByID(ctx, *input.Sync.AccountID)
		if err != nil {
			return nil, err
		}

		cost := investment.PurchaseCost()
		linked = entity.NewTransaction(account.ID, cost, entity.TransactionKindExpense, input.Date, "投資 "+input.Name)

		balance := account.CurrentBalance.Sub(cost)
		sourceBalance = &balance

		investment.SourceAccountID = &account.ID
		investment.LinkedTransactionID = &linked.ID
	}

	if err := uc.investmentRepo.CreateInvestmentFunded(ctx, investment, linked, sourceBalance); err != nil {
		return nil, err
	}

	slog.Info("investment created",
		"investment_id", investment.ID,
		"type", investment.Type,
		"synced", linked != nil,
	)
	uc.notifier.Notify()

	return &CreateInvestmentOutput{Investment: investment}, nil
}

func isValidInvestmentType(t entity.InvestmentType) bool {
	switch t {
	case entity.InvestmentTypeStock, entity.InvestmentTypeFixedDeposit, entity.InvestmentTypeSavings:
		return true
	}
	return false
}
