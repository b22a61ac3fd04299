package errorvalues

import (
	"errors"
	"fmt"
)

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongOwner       = errors.New("resource belongs to another user")

	ErrRecordNotFound = errors.New("virtue record doesn't exist")
	ErrRecordExists   = errors.New("virtue record for this day already exists")

	ErrValidation         = errors.New("validation error")
	ErrInvalidDate        = errors.New("invalid date")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError describes a single rejected input field.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InvalidDateError is a validation failure for a date that cannot be parsed.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD or RFC 3339", e.Value)
}

func (e *InvalidDateError) Unwrap() []error {
	return []error{ErrInvalidDate, ErrValidation}
}

// StorageUnavailableError is returned when the persistence backend can't be reached.
// It is not retried inside the repository layer.
type StorageUnavailableError struct {
	Op  string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("%s: storage unavailable: %v", e.Op, e.Err)
}

func (e *StorageUnavailableError) Unwrap() []error {
	return []error{ErrStorageUnavailable, e.Err}
}

// ValidationFields collects every ValidationError found in err's tree.
func ValidationFields(err error) []*ValidationError {
	var result []*ValidationError
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if ve, ok := e.(*ValidationError); ok {
			result = append(result, ve)
			return
		}
		if de, ok := e.(*InvalidDateError); ok {
			result = append(result, &ValidationError{Field: "date", Reason: de.Error()})
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)
	return result
}
