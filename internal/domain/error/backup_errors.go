// Package error defines domain-specific errors for the LedgerKeep engine.
package error

import "errors"

// Backup domain errors.
var (
	// ErrSnapshotInvalid is returned when an import snapshot is malformed.
	ErrSnapshotInvalid = errors.New("invalid snapshot")
)

// BackupErrorCode defines error codes for backup errors.
// Format: BAK-XXYYYY where XX is category and YYYY is specific error.
type BackupErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSnapshotInvalid BackupErrorCode = "BAK-010001"
)

// BackupError represents a backup error with code and message.
type BackupError struct {
	Code    BackupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BackupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BackupError) Unwrap() error {
	return e.Err
}

// NewBackupError creates a new BackupError with the given code and message.
func NewBackupError(code BackupErrorCode, message string, err error) *BackupError {
	return &BackupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
