package scaffold

import "fmt"

// ErrorType categorizes scaffold errors.
type ErrorType int

const (
	// ConfigurationError indicates an invalid root or destination directory.
	ConfigurationError ErrorType = iota
	// ReadFailed indicates a file could not be read.
	ReadFailed
	// WriteFailed indicates a file or directory could not be written.
	WriteFailed
	// RenameFailed indicates a path could not be renamed.
	RenameFailed
	// WalkFailed indicates a directory could not be traversed.
	WalkFailed
	// DestinationBusy indicates another run holds the destination lock.
	DestinationBusy
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	switch t {
	case ConfigurationError:
		return "Configuration"
	case ReadFailed:
		return "ReadFailed"
	case WriteFailed:
		return "WriteFailed"
	case RenameFailed:
		return "RenameFailed"
	case WalkFailed:
		return "WalkFailed"
	case DestinationBusy:
		return "DestinationBusy"
	default:
		return "Unknown"
	}
}

// Error represents a scaffold-specific error.
type Error struct {
	// Type categorizes the error.
	Type ErrorType
	// Message is the error message.
	Message string
	// Path is the file path related to the error (if applicable).
	Path string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (path: %s): %v", e.Message, e.Path, e.Cause)
		}
		return fmt.Sprintf("%s (path: %s)", e.Message, e.Path)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// newError creates a new Error.
func newError(typ ErrorType, message, path string, cause error) *Error {
	return &Error{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// IsConfigurationError reports whether err is a scaffold configuration error.
func IsConfigurationError(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == ConfigurationError
}
