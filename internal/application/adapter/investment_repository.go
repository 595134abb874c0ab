// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// InvestmentRepository defines the persistence operations on investments.
//
// CreateInvestmentFunded and SettleInvestment are composite atomic
// operations; see TransactionRepository for the backend atomicity contract.
type InvestmentRepository interface {
	// CreateInvestmentFunded inserts an investment and, when linked is
	// non-nil, the purchase expense transaction plus the source account's
	// new balance, all in one atomic unit.
	CreateInvestmentFunded(ctx context.Context, investment *entity.Investment, linked *entity.Transaction, sourceBalance *decimal.Decimal) error

	// FindInvestmentByID retrieves an investment by its ID.
	FindInvestmentByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// FindInvestments retrieves all investments, settled records included.
	FindInvestments(ctx context.Context) ([]*entity.Investment, error)

	// FindActiveInvestments retrieves investments with status active.
	FindActiveInvestments(ctx context.Context) ([]*entity.Investment, error)

	// UpdateInvestment updates an existing investment.
	UpdateInvestment(ctx context.Context, investment *entity.Investment) error

	// SettleInvestment persists a lifecycle mutation and, when income is
	// non-nil, the settlement income transaction plus the target account's
	// new balance, all in one atomic unit.
	SettleInvestment(ctx context.Context, investment *entity.Investment, income *entity.Transaction, targetBalance *decimal.Decimal) error

	// UpdateStockPrice overwrites CurrentPrice on every active stock holding
	// with the given symbol. Returns the number of holdings updated.
	UpdateStockPrice(ctx context.Context, name string, price decimal.Decimal) (int64, error)

	// ImportInvestments bulk-inserts investments preserving their IDs and
	// statuses.
	ImportInvestments(ctx context.Context, investments []*entity.Investment) error
}
