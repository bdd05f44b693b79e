package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a month, year or period is not an integer
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange is returned when an integer input falls outside its allowed range
	ErrOutOfRange = errors.New("value out of range")
)

// InvalidInputError describes a raw value that could not be read as an integer
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s is not an integer", e.Value)
}

// Is reports ErrInvalidInput so callers can match with errors.Is
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// RangeError describes an integer input outside the range it must fall in
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d must be between %d and %d", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
