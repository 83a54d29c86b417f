package service

import "errors"

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidStatus is returned when a status update names an unknown status.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidCredentials is returned by Login for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError describes a rejected request field. Its message is safe to show to users.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + " " + e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func required(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}

func invalid(field string) error {
	return &ValidationError{Field: field, Reason: "is not a valid option"}
}
