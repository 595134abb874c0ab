// Package error defines domain-specific errors for the LedgerKeep engine.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the ledger.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountInUse is returned when deleting an account that transactions
	// still reference as source or target.
	ErrAccountInUse = errors.New("account is referenced by transactions")

	// ErrInvalidAccountOrder is returned when a reorder request does not cover
	// existing accounts exactly.
	ErrInvalidAccountOrder = errors.New("invalid account order")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNotFound     AccountErrorCode = "ACC-010001"
	ErrCodeAccountInUse        AccountErrorCode = "ACC-010002"
	ErrCodeInvalidAccountOrder AccountErrorCode = "ACC-010003"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
