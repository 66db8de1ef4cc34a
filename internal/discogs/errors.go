package discogs

import "fmt"

// Input error codes
const (
	ErrCodeFileNotFound   = "FILE_NOT_FOUND"
	ErrCodeFileUnreadable = "FILE_UNREADABLE"
	ErrCodeMalformed      = "MALFORMED"
)

// InputError reports a CSV export that cannot be read or parsed.
type InputError struct {
	Code    string
	Path    string
	Line    int
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

func newInputError(code, path string, line int, message string, cause error) *InputError {
	return &InputError{
		Code:    code,
		Path:    path,
		Line:    line,
		Message: message,
		Cause:   cause,
	}
}
