// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

// UpdateStockPriceInput represents the input for a bulk valuation update.
type UpdateStockPriceInput struct {
	Name  string
	Price decimal.Decimal
}

// UpdateStockPriceOutput represents the output of a bulk valuation update.
type UpdateStockPriceOutput struct {
	Updated int64
}

// UpdateStockPriceUseCase updates CurrentPrice on every active stock lot
// sharing a symbol, supporting multiple lots of the same stock.
type UpdateStockPriceUseCase struct {
	investmentRepo adapter.InvestmentRepository
	notifier       adapter.ChangeNotifier
}

// NewUpdateStockPriceUseCase creates a new UpdateStockPriceUseCase instance.
func NewUpdateStockPriceUseCase(investmentRepo adapter.InvestmentRepository, notifier adapter.ChangeNotifier) *UpdateStockPriceUseCase {
	return &UpdateStockPriceUseCase{
		investmentRepo: investmentRepo,
		notifier:       notifier,
	}
}

// Execute performs the bulk price update.
func (uc *UpdateStockPriceUseCase) Execute(ctx context.Context, input UpdateStockPriceInput) (*UpdateStockPriceOutput, error) {
	if input.Price.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvInvalidAmount,
			"price must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	updated, err := uc.investmentRepo.UpdateStockPrice(ctx, input.Name, input.Price)
	if err != nil {
		return nil, err
	}

	if updated > 0 {
		slog.Info("stock price updated", "name", input.Name, "lots", updated)
		uc.notifier.Notify()
	}

	return &UpdateStockPriceOutput{Updated: updated}, nil
}
