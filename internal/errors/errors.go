// Package errors provides structured error types for the Touchline system.
// All errors include a category, code, message, and retryable flag for
// consistent error handling across components.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies errors by system component.
type ErrorCategory string

const (
	ErrCategoryValidation ErrorCategory = "VALIDATION"
	ErrCategoryStore      ErrorCategory = "STORE"
	ErrCategoryIngest     ErrorCategory = "INGEST"
	ErrCategoryArchive    ErrorCategory = "ARCHIVE"
	ErrCategoryInternal   ErrorCategory = "INTERNAL"
)

// Error codes for each category.
const (
	// Validation codes
	CodeMissingParameter = "MISSING_PARAMETER"
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeInvalidTimestamp = "INVALID_TIMESTAMP"

	// Store codes
	CodeQueryFailed  = "QUERY_FAILED"
	CodeInsertFailed = "INSERT_FAILED"
	CodeSchemaFailed = "SCHEMA_FAILED"

	// Ingest codes
	CodeFileNotFound = "FILE_NOT_FOUND"
	CodeBadLine      = "BAD_LINE"
	CodeEmptyBatch   = "EMPTY_BATCH"

	// Archive codes
	CodeUploadFailed   = "UPLOAD_FAILED"
	CodeDownloadFailed = "DOWNLOAD_FAILED"
	CodeObjectNotFound = "OBJECT_NOT_FOUND"

	// Internal codes
	CodeUnexpected = "UNEXPECTED"
)

// TouchlineError is the structured error type used throughout the system.
type TouchlineError struct {
	Category  ErrorCategory
	Code      string
	Message   string
	Details   map[string]interface{}
	Cause     error
	Retryable bool
}

// Error returns a formatted error string.
func (e *TouchlineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *TouchlineError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches this error's category and code.
func (e *TouchlineError) Is(target error) bool {
	var t *TouchlineError
	if errors.As(target, &t) {
		return e.Category == t.Category && e.Code == t.Code
	}
	return false
}

// New creates a new TouchlineError.
func New(category ErrorCategory, code, message string) *TouchlineError {
	return &TouchlineError{
		Category:  category,
		Code:      code,
		Message:   message,
		Retryable: isRetryable(category, code),
	}
}

// Wrap creates a new TouchlineError wrapping an existing error.
func Wrap(category ErrorCategory, code, message string, cause error) *TouchlineError {
	return &TouchlineError{
		Category:  category,
		Code:      code,
		Message:   message,
		Cause:     cause,
		Retryable: isRetryable(category, code),
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *TouchlineError) WithDetails(details map[string]interface{}) *TouchlineError {
	cp := *e
	cp.Details = details
	return &cp
}

// IsRetryable checks whether an error (or its chain) is retryable.
func IsRetryable(err error) bool {
	var te *TouchlineError
	if errors.As(err, &te) {
		return te.Retryable
	}
	return false
}

// GetCategory extracts the error category from an error chain.
// Returns empty string if the error is not a TouchlineError.
func GetCategory(err error) ErrorCategory {
	var te *TouchlineError
	if errors.As(err, &te) {
		return te.Category
	}
	return ""
}

// GetCode extracts the error code from an error chain.
// Returns empty string if the error is not a TouchlineError.
func GetCode(err error) string {
	var te *TouchlineError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

// isRetryable determines if an error code is transient.
// Archive transfers can be retried; validation and store failures cannot.
func isRetryable(category ErrorCategory, code string) bool {
	switch {
	case category == ErrCategoryArchive && code == CodeUploadFailed:
		return true
	case category == ErrCategoryArchive && code == CodeDownloadFailed:
		return true
	default:
		return false
	}
}

// Convenience constructors for common errors.

func NewValidationError(code, message string) *TouchlineError {
	return New(ErrCategoryValidation, code, message)
}

func NewStoreError(code, message string, cause error) *TouchlineError {
	return Wrap(ErrCategoryStore, code, message, cause)
}

func NewIngestError(code, message string, cause error) *TouchlineError {
	return Wrap(ErrCategoryIngest, code, message, cause)
}

func NewArchiveError(code, message string, cause error) *TouchlineError {
	return Wrap(ErrCategoryArchive, code, message, cause)
}

func NewInternalError(message string, cause error) *TouchlineError {
	return Wrap(ErrCategoryInternal, CodeUnexpected, message, cause)
}
