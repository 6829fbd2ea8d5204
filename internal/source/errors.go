package source

import "fmt"

// ErrorType represents the type of source error.
type ErrorType int

const (
	// InvalidURL indicates the repository URL is empty or malformed.
	InvalidURL ErrorType = iota
	// UnsupportedScheme indicates the URL uses a scheme liscaf cannot clone.
	UnsupportedScheme
	// ToolMissing indicates the git binary could not be found or started.
	ToolMissing
	// CommandFailed indicates a git command exited with a non-zero code.
	CommandFailed
	// NotFound indicates a local template directory does not exist.
	NotFound
	// FetchFailed indicates copying a template or fetching a manifest failed.
	FetchFailed
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	switch t {
	case InvalidURL:
		return "InvalidURL"
	case UnsupportedScheme:
		return "UnsupportedScheme"
	case ToolMissing:
		return "ToolMissing"
	case CommandFailed:
		return "CommandFailed"
	case NotFound:
		return "NotFound"
	case FetchFailed:
		return "FetchFailed"
	default:
		return "Unknown"
	}
}

// Error represents a template source error.
type Error struct {
	// Type is the error type classification.
	Type ErrorType
	// Message is the human-readable error message.
	Message string
	// URL is the repository URL or path involved.
	URL string
	// ExitCode is the git exit code for CommandFailed, -1 if unknown.
	ExitCode int
	// Stderr is the captured standard error of a failed command.
	Stderr string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s [%s] for '%s'", e.Message, e.Type, e.URL)
	if e.Type == CommandFailed {
		msg += fmt.Sprintf(" (exit code %d)", e.ExitCode)
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for error wrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error.
func NewError(typ ErrorType, url, message string, cause error) *Error {
	return &Error{
		Type:     typ,
		Message:  message,
		URL:      url,
		ExitCode: -1,
		Cause:    cause,
	}
}

// IsConfigurationError reports whether err was caused by bad user input
// rather than by an external tool.
func IsConfigurationError(err error) bool {
	e, ok := err.(*Error)
	return ok && (e.Type == InvalidURL || e.Type == UnsupportedScheme || e.Type == NotFound)
}
