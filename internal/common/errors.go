package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	// ErrAcquisition marks a document that could not be opened or yielded no text
	// by any tier. The file is left untouched; there is no retry.
	ErrAcquisition = errors.New("text acquisition failed")
	// ErrFilesystem marks a failed move or directory-create during renaming or
	// quarantine. The file is left wherever the failed operation left it.
	ErrFilesystem   = errors.New("filesystem operation failed")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// AcquisitionError wraps cause as a terminal acquisition failure.
func AcquisitionError(message string, cause error) *AppError {
	if cause == nil {
		cause = ErrAcquisition
	} else {
		cause = fmt.Errorf("%w: %w", ErrAcquisition, cause)
	}
	return NewAppError("ACQUISITION_ERROR", message, cause)
}

// FilesystemError wraps cause as a failed filesystem mutation.
func FilesystemError(message string, cause error) *AppError {
	if cause == nil {
		cause = ErrFilesystem
	} else {
		cause = fmt.Errorf("%w: %w", ErrFilesystem, cause)
	}
	return NewAppError("FILESYSTEM_ERROR", message, cause)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
