// Package investment contains investment-related use cases.
package investment

import (
	"context"

	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// ListInvestmentsInput represents the filter for investment listing.
type ListInvestmentsInput struct {
	ActiveOnly bool
}

// ListInvestmentsOutput represents the output of investment listing.
type ListInvestmentsOutput struct {
	Investments []*entity.Investment
}

// ListInvestmentsUseCase handles investment listing. Settled records are
// retained but excluded from active views.
type ListInvestmentsUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(investmentRepo adapter.InvestmentRepository) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute returns investments, optionally active ones only.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context, input ListInvestmentsInput) (*ListInvestmentsOutput, error) {
	var investments []*entity.Investment
	var err error

	if input.ActiveOnly {
		investments, err = uc.investmentRepo.FindActiveInvestments(ctx)
	} else {
		investments, err = uc.investmentRepo.FindInvestments(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &ListInvestmentsOutput{Investments: investments}, nil
}
