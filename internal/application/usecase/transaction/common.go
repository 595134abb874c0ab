// Package transaction contains transaction-related use cases.
package transaction

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/backend/internal/domain/entity"
	domainerror "github.com/ledgerkeep/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
)

// validateAmount rejects non-positive amounts. Repositories never validate;
// every mutating service entry point runs this check.
func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}

// isMovementKind reports whether the kind is a plain income/expense movement.
// Transfers have their own operations.
func isMovementKind(kind entity.TransactionKind) bool {
	return kind == entity.TransactionKindIncome || kind == entity.TransactionKindExpense
}
