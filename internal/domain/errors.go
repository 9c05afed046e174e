package domain

import "errors"

var ErrNotFound = errors.New("not found")

// ValidationError carries a caller-facing message for malformed input.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(msg string) error { return &ValidationError{Msg: msg} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
