package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ValidationFailed indicates invalid user input, detected before any
	// filesystem mutation.
	ValidationFailed AppErrorType = iota
	// CloneFailed indicates the template could not be cloned.
	CloneFailed
	// ScaffoldFailed indicates the rewrite or rename pass could not run.
	ScaffoldFailed
	// MergeFailed indicates merging into the destination could not run.
	MergeFailed
	// MoveFailed indicates the scaffold could not be moved into place.
	MoveFailed
	// ManifestFailed indicates the template manifest could not be loaded.
	ManifestFailed
	// ReportFailed indicates the run report could not be written.
	ReportFailed
)

// String returns the string representation of the error type.
func (t AppErrorType) String() string {
	switch t {
	case ValidationFailed:
		return "ValidationFailed"
	case CloneFailed:
		return "CloneFailed"
	case ScaffoldFailed:
		return "ScaffoldFailed"
	case MergeFailed:
		return "MergeFailed"
	case MoveFailed:
		return "MoveFailed"
	case ManifestFailed:
		return "ManifestFailed"
	case ReportFailed:
		return "ReportFailed"
	default:
		return "Unknown"
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// IsValidationError reports whether err is an AppError of type ValidationFailed.
func IsValidationError(err error) bool {
	e, ok := err.(*AppError)
	return ok && e.Type == ValidationFailed
}
