package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingRequiredField is returned when a required record field is empty.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidEmailFormat is returned when an email does not match models.EmailPattern.
	ErrInvalidEmailFormat = errors.New("invalid email format")
)

// FieldError reports which field failed validation and with what value.
// It unwraps to one of the sentinel errors above.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidEmailFormat):
		return fmt.Sprintf("%s is not a valid email!", e.Value)
	case errors.Is(e.Err, ErrMissingRequiredField):
		return fmt.Sprintf("%s is required", e.Field)
	default:
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
