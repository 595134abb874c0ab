// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// LedgerRepository is the full persistence contract of the engine. It is
// implemented independently by the SQL backend (gorm, explicit transaction
// scopes) and the KV backend (redis, staged batched writes); the two must be
// drop-in substitutable and observationally identical for any operation
// sequence.
type LedgerRepository interface {
	AccountRepository
	TransactionRepository
	BudgetRepository
	GoalRepository
	InvestmentRepository

	// ClearAll removes every entity. Used by backup restore before import.
	ClearAll(ctx context.Context) error
}
