package exception

import (
	"errors"
	"fmt"
	"net/http"
)

// ApplicationError is a domain error with an HTTP status attached, so the
// transport layer can map it to a response without a lookup table.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

// New builds a sentinel ApplicationError without a cause.
func New(statusCode int, message string) ApplicationError {
	return ApplicationError{
		Message:    message,
		StatusCode: statusCode,
	}
}

// NotFound builds a 404 sentinel error.
func NotFound(message string) ApplicationError {
	return New(http.StatusNotFound, message)
}

// BadRequest builds a 400 sentinel error.
func BadRequest(message string) ApplicationError {
	return New(http.StatusBadRequest, message)
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Cause == targetErr.Cause &&
		e.Message == targetErr.Message
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}
