package app

import (
	"errors"
	"fmt"
	"time"
)

type ErrorCode string

const (
	ErrCodeActiveSessionExists ErrorCode = "ACTIVE_SESSION_EXISTS"
	ErrCodeNoActiveSession     ErrorCode = "NO_ACTIVE_SESSION"
	ErrCodeInvalidRange        ErrorCode = "INVALID_RANGE"
	ErrCodePersistence         ErrorCode = "PERSISTENCE_ERROR"
)

// Error is the typed failure returned by timer and report use cases.
// Two Errors match under errors.Is when their codes are equal, so callers
// compare against the sentinels below.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := string(e.Code)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrActiveSessionExists = &Error{Code: ErrCodeActiveSessionExists}
	ErrNoActiveSession     = &Error{Code: ErrCodeNoActiveSession}
	ErrInvalidRange        = &Error{Code: ErrCodeInvalidRange}
	ErrPersistence         = &Error{Code: ErrCodePersistence}
)

func NewError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// PersistenceError wraps a store failure for the named operation.
func PersistenceError(op string, err error) *Error {
	return &Error{Code: ErrCodePersistence, Message: op, Err: err}
}

// ErrorCodeOf returns the code carried by err, or "" when err is not an *Error.
func ErrorCodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func invalidRangeMessage(start, end time.Time) string {
	return fmt.Sprintf("range start %s must be before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
}
