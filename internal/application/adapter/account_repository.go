// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// AccountRepository defines the persistence operations on accounts. It is
// part of the LedgerRepository contract and is implemented by both the SQL
// and the KV backend.
type AccountRepository interface {
	// CreateAccount creates a new account.
	CreateAccount(ctx context.Context, account *entity.Account) error

	// FindAccountByID retrieves an account by its ID.
	FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindAccounts retrieves all accounts ordered by SortIndex ascending.
	FindAccounts(ctx context.Context) ([]*entity.Account, error)

	// UpdateAccount updates an existing account.
	UpdateAccount(ctx context.Context, account *entity.Account) error

	// DeleteAccount removes an account. Referential checks are the account
	// service's responsibility, not the repository's.
	DeleteAccount(ctx context.Context, id uuid.UUID) error

	// UpdateAccountBalance overwrites an account's current balance. Used only
	// by service flows that record a matching ledger movement.
	UpdateAccountBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error

	// UpdateAccountOrder reassigns SortIndex by position in orderedIDs.
	// All-or-nothing: no partial reordering may be observed.
	UpdateAccountOrder(ctx context.Context, orderedIDs []uuid.UUID) error

	// ImportAccounts bulk-inserts accounts preserving their IDs and balances.
	// Used by backup restore only.
	ImportAccounts(ctx context.Context, accounts []*entity.Account) error
}
