package types

import (
	"fmt"
	"net/http"
)

// Error is an error returned to HTTP clients. The message is written as the
// response body.
type Error struct {
	StatusCode int
	Message    string
}

// Error returns the error message string.
func (e Error) Error() string {
	return e.Message
}

// NewError creates a new Error with the specified status code and message. If
// message is empty, the status text is used instead.
func NewError(statusCode int, message string) *Error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &Error{
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewErrorf creates a new Error with the specified status code and a formatted
// message.
func NewErrorf(statusCode int, format string, args ...any) *Error {
	return NewError(statusCode, fmt.Sprintf(format, args...))
}
