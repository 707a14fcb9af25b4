package engine

import (
	"fmt"
	"math"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

const (
	// ErrInvalidConfiguration is returned when an input violates a declared invariant:
	// an unknown enumeration value, a negative quantity, an out-of-range percentage or
	// a zero attendee count.
	ErrInvalidConfiguration = constError("invalid configuration")

	// ErrDistribution is returned when travel cohort shares do not sum to 100 within
	// tolerance and the distribution policy is reject.
	ErrDistribution = constError("invalid travel distribution")
)

// ValidationError identifies the offending field of a rejected input.
// It unwraps to ErrInvalidConfiguration or ErrDistribution.
type ValidationError struct {
	// Field is the dotted path of the field, e.g. "venue.energy_source".
	Field string `json:"field"`

	// Value is the rejected value.
	Value any `json:"value"`

	// Reason describes the violated constraint.
	Reason string `json:"reason"`

	// Kind is the sentinel this error wraps.
	Kind error `json:"-"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s %s (got %v)", e.Kind, e.Field, e.Reason, e.Value)
}

// Unwrap returns the sentinel kind so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(field string, value any, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason, Kind: ErrInvalidConfiguration}
}

func unknownValue[T ~string](field string, value T) error {
	return invalid(field, string(value), "is not a recognized value")
}

func checkNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, v, "must be a finite number")
	}
	if v < 0 {
		return invalid(field, v, "must not be negative")
	}
	return nil
}

func checkPositive(field string, v float64) error {
	if err := checkNonNegative(field, v); err != nil {
		return err
	}
	if v == 0 {
		return invalid(field, v, "must be greater than zero")
	}
	return nil
}

func checkCount(field string, n int) error {
	if n <= 0 {
		return invalid(field, n, "must be greater than zero")
	}
	return nil
}

func checkPercent(field string, v float64) error {
	if err := checkNonNegative(field, v); err != nil {
		return err
	}
	if v > 100 {
		return invalid(field, v, "must be between 0 and 100")
	}
	return nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
