package booking

import "fmt"

// ValidationError rejects a request whose input is malformed or incomplete.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validationError: %s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// ConflictError reports that the requested slot was taken between the
// availability check and the write.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{Code: "conflictError", Message: msg}
}

// NotFoundError reports a missing service, staff member, or booking.
type NotFoundError struct {
	Code    string
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Code: "notFoundError", Message: msg}
}

// TransientError wraps infrastructure failures the caller may retry.
type TransientError struct {
	Code    string
	Message string
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewTransientError(msg string) error {
	return &TransientError{Code: "transientError", Message: msg}
}
