// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

// UpdateInvestmentInput represents the editable fields of a holding.
// Lifecycle fields (amount, status) change only through actions.
type UpdateInvestmentInput struct {
	ID           uuid.UUID
	CurrentPrice decimal.Decimal
	Notes        string
}

// UpdateInvestmentOutput represents the output of an investment update.
type UpdateInvestmentOutput struct {
	Investment *entity.Investment
}

// UpdateInvestmentUseCase handles investment edits.
type UpdateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
	notifier       adapter.ChangeNotifier
}

// NewUpdateInvestmentUseCase creates a new UpdateInvestmentUseCase instance.
func NewUpdateInvestmentUseCase(investmentRepo adapter.InvestmentRepository, notifier adapter.ChangeNotifier) *UpdateInvestmentUseCase {
	return &UpdateInvestmentUseCase{
		investmentRepo: investmentRepo,
		notifier:       notifier,
	}
}

// Execute performs the edit. Settled holdings are immutable.
func (uc *UpdateInvestmentUseCase) Execute(ctx context.Context, input UpdateInvestmentInput) (*UpdateInvestmentOutput, error) {
	investment, err := uc.investmentRepo.FindInvestmentByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if investment.Settled() {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvestmentSettled,
			"a sold or closed investment cannot be edited",
			domainerror.ErrInvestmentSettled,
		)
	}

	investment.CurrentPrice = input.CurrentPrice
	investment.Notes = input.Notes
	investment.UpdatedAt = time.Now().UTC()

	if err := uc.investmentRepo.UpdateInvestment(ctx, investment); err != nil {
		return nil, err
	}

	uc.notifier.Notify()

	return &UpdateInvestmentOutput{Investment: investment}, nil
}
