package model

import "fmt"

// Data error codes
const (
	ErrCodeMissingIdentifier = "MISSING_IDENTIFIER"
)

// DataError reports a record that cannot be turned into a label.
//
// The only case today is a record missing the identifier column required
// by its shape ("release_id" or "listing_id").
type DataError struct {
	Code string
	// Line is the source line of the offending record (0 if unknown).
	Line int
	// Field is the column that was missing or empty.
	Field   string
	Message string
	Cause   error
}

// NewDataError creates a new DataError.
func NewDataError(code string, line int, field, message string) *DataError {
	return &DataError{Code: code, Line: line, Field: field, Message: message}
}

func (e *DataError) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *DataError) Unwrap() error {
	return e.Cause
}
