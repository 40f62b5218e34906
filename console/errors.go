package console

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned for a TargetType or type name outside the
	// supported set.
	ErrUnknownType = errors.New("unknown target type")
	// ErrUnorderedType is returned when bounds are given for bool or text.
	ErrUnorderedType = errors.New("target type has no ordering")
	// ErrBoundsType is returned when a bound's Go type does not match the
	// target type.
	ErrBoundsType = errors.New("bound does not match target type")
	// ErrInvalidBounds is returned when min is greater than max or either
	// side is NaN.
	ErrInvalidBounds = errors.New("invalid bounds: min is greater than max or NaN")
)

// ErrorKind classifies a rejected input line.
type ErrorKind int

const (
	FormatError ErrorKind = iota + 1
	OverflowError
	BoundsError
)

func (k ErrorKind) String() string {
	switch k {
	case FormatError:
		return "format"
	case OverflowError:
		return "overflow"
	case BoundsError:
		return "bounds"
	}
	return "unknown"
}

// InputError describes why a line was rejected. Its message is the text
// shown to the user after the "Error: " prefix.
type InputError struct {
	Kind  ErrorKind
	Type  TargetType
	Input string
	Min   string // bounds errors only
	Max   string // bounds errors only
}

func (e *InputError) Error() string {
	switch e.Kind {
	case OverflowError:
		return fmt.Sprintf("The parsed input value is too large for a(n) %s.", e.Type)
	case BoundsError:
		return fmt.Sprintf("Input needs to be between %s and %s.", e.Min, e.Max)
	default:
		return "Input string is not valid."
	}
}

func formatError(t TargetType, input string) *InputError {
	return &InputError{Kind: FormatError, Type: t, Input: input}
}

func overflowError(t TargetType, input string) *InputError {
	return &InputError{Kind: OverflowError, Type: t, Input: input}
}

// IsFormatError returns true if err is an InputError for text that is not a
// value of the target type.
func IsFormatError(err error) bool {
	return hasKind(err, FormatError)
}

// IsOverflowError returns true if err is an InputError for a value outside
// the target type's native range.
func IsOverflowError(err error) bool {
	return hasKind(err, OverflowError)
}

// IsBoundsError returns true if err is an InputError for a value outside the
// caller's bounds.
func IsBoundsError(err error) bool {
	return hasKind(err, BoundsError)
}

func hasKind(err error, kind ErrorKind) bool {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Kind == kind
	}
	return false
}
