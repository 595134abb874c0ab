// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	"github.com/ledgerkeep/backend/internal/domain/valueobject"
)

// GetBudgetSpendingInput represents the input for the spend aggregation. Now
// is injectable for deterministic window boundaries in tests; the zero value
// means the current time.
type GetBudgetSpendingInput struct {
	BudgetID uuid.UUID
	Now      time.Time
}

// GetBudgetSpendingOutput represents the derived period-to-date spend.
type GetBudgetSpendingOutput struct {
	Budget *entity.Budget
	Spent  decimal.Decimal
}

// GetBudgetSpendingUseCase derives a budget's period-to-date spend from the
// transaction history. Spend is never stored.
type GetBudgetSpendingUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	rates           *valueobject.RateTable
}

// NewGetBudgetSpendingUseCase creates a new GetBudgetSpendingUseCase instance.
func NewGetBudgetSpendingUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	rates *valueobject.RateTable,
) *GetBudgetSpendingUseCase {
	return &GetBudgetSpendingUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		rates:           rates,
	}
}

// Execute sums expense transactions whose description starts with the
// budget's category, dated within [window start, now], each converted from
// its account's currency into the budget's currency. The prefix match is
// deliberate: categories are free text with optional suffixes. A transaction
// dated exactly at now is included.
func (uc *GetBudgetSpendingUseCase) Execute(ctx context.Context, input GetBudgetSpendingInput) (*GetBudgetSpendingOutput, error) {
	budget, err := uc.budgetRepo.FindBudgetByID(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	windowStart := PeriodStart(now, budget.Period)

	transactions, err := uc.transactionRepo.FindTransactionsInRange(ctx, windowStart, now)
	if err != nil {
		return nil, err
	}

	currencies := make(map[uuid.UUID]string)
	spent := decimal.Zero

	for _, transaction := range transactions {
		if transaction.Kind != entity.TransactionKindExpense {
			continue
		}
		if !strings.HasPrefix(transaction.Description, budget.Category) {
			continue
		}

		currency, ok := currencies[transaction.AccountID]
		if !ok {
			account, err := uc.accountRepo.FindAccountByID(ctx, transaction.AccountID)
			if err != nil {
				return nil, err
			}
			currency = account.Currency
			currencies[transaction.AccountID] = currency
		}

		spent = spent.Add(uc.rates.Convert(transaction.Amount, currency, budget.Currency))
	}

	return &GetBudgetSpendingOutput{Budget: budget, Spent: spent}, nil
}
