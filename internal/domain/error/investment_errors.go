// Package error defines domain-specific errors for the LedgerKeep engine.
package error

import "errors"

// Investment domain errors.
var (
	// ErrInvestmentNotFound is returned when an investment is not found.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrInvestmentSettled is returned when acting on a sold or closed holding.
	ErrInvestmentSettled = errors.New("investment already sold or closed")

	// ErrInvalidInvestmentType is returned when the investment type is invalid.
	ErrInvalidInvestmentType = errors.New("invalid investment type")

	// ErrInvalidInvestmentAction is returned when the requested lifecycle
	// action does not apply to the holding's type.
	ErrInvalidInvestmentAction = errors.New("invalid action for investment type")
)

// InvestmentErrorCode defines error codes for investment errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvestmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvestmentNotFound      InvestmentErrorCode = "INV-010001"
	ErrCodeInvestmentSettled       InvestmentErrorCode = "INV-010002"
	ErrCodeInvalidInvestmentType   InvestmentErrorCode = "INV-010003"
	ErrCodeInvalidInvestmentAction InvestmentErrorCode = "INV-010004"
	ErrCodeInvInvalidAmount        InvestmentErrorCode = "INV-010005"
)

// InvestmentError represents an investment error with code and message.
type InvestmentError struct {
	Code    InvestmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvestmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvestmentError) Unwrap() error {
	return e.Err
}

// NewInvestmentError creates a new InvestmentError with the given code and message.
func NewInvestmentError(code InvestmentErrorCode, message string, err error) *InvestmentError {
	return &InvestmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
