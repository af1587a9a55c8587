package serrors

import "fmt"

// Error is a stable, code-carrying error used across package boundaries.
type Error struct {
	Code    string
	Message string
	Details string
}

func NewError(code, message, details string) *Error {
	return &Error{Code: code, Message: message, Details: details}
}

func (e *Error) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
}
