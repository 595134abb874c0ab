// Package error defines domain-specific errors for the LedgerKeep engine.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the ledger.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidAmount is returned when a non-positive or malformed amount is
	// supplied to a service. The repository layer does not validate amounts.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidTransactionKind is returned when the transaction kind is invalid.
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrTransferSameAccount is returned when a transfer's source equals its target.
	ErrTransferSameAccount = errors.New("transfer source and target accounts are the same")

	// ErrInsufficientFunds is returned by the service-level overdraft check on
	// transfers. Repositories never enforce non-negative balances.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound    TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidAmount          TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionKind TransactionErrorCode = "TXN-010003"
	ErrCodeTransferSameAccount    TransactionErrorCode = "TXN-010004"
	ErrCodeInsufficientFunds      TransactionErrorCode = "TXN-010005"
	ErrCodeTxnAccountNotFound     TransactionErrorCode = "TXN-010006"
	ErrCodeDescriptionTooLong     TransactionErrorCode = "TXN-010007"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
