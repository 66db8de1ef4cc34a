package config

// Error codes for configuration failures
const (
	ErrCodeFileNotFound     = "FILE_NOT_FOUND"
	ErrCodeFileUnreadable   = "FILE_UNREADABLE"
	ErrCodeUnknownProfile   = "UNKNOWN_PROFILE"
	ErrCodeMissingType      = "MISSING_TYPE"
	ErrCodeInvalidDimension = "INVALID_DIMENSION"
)

// Error represents a configuration error. All configuration errors are
// fatal: the caller reports them and stops before reading any input.
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new configuration Error
func NewError(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
