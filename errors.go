package vecmath

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a vector is constructed from no coordinates.
	ErrEmptyInput = errors.New("the coordinates must be nonempty")

	// ErrNotIterable is returned when the input is not a sequence of numeric values.
	ErrNotIterable = errors.New("the coordinates must be an iterable of numeric values")

	// ErrZeroVector is returned when normalizing a vector of zero magnitude.
	ErrZeroVector = errors.New("cannot normalize the zero vector")

	// ErrAngleWithZeroVector is returned when either operand of an angle is the zero vector.
	ErrAngleWithZeroVector = errors.New("cannot compute an angle with the zero vector")

	// ErrNoUniqueParallelComponent is returned when projecting onto a zero basis.
	ErrNoUniqueParallelComponent = errors.New("no unique parallel component")

	// ErrNoUniqueOrthogonalComponent is returned when decomposing against a zero basis.
	ErrNoUniqueOrthogonalComponent = errors.New("no unique orthogonal component")

	// ErrUnsupportedDimension is returned by operations defined for two and three dimensions only.
	ErrUnsupportedDimension = errors.New("only defined in two and three dimensions")
)

// ErrDimensionMismatch indicates that the operands of an element-wise
// operation have different dimensions.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidCoordinate indicates a coordinate that cannot be converted to a decimal.
//
// It matches ErrNotIterable via errors.Is. The conversion error (if any) can be
// accessed via errors.Unwrap.
type ErrInvalidCoordinate struct {
	Index int
	Value any
	cause error
}

func (e *ErrInvalidCoordinate) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid coordinate %d (%v): %v", e.Index, e.Value, e.cause)
	}
	return fmt.Sprintf("invalid coordinate %d (%v)", e.Index, e.Value)
}

func (e *ErrInvalidCoordinate) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrNotIterable}
	}
	return []error{ErrNotIterable, e.cause}
}

// Kind classifies the errors returned by this package.
type Kind int

const (
	KindUnknown Kind = iota
	KindEmptyInput
	KindNotIterable
	KindZeroVector
	KindAngleWithZeroVector
	KindNoUniqueParallelComponent
	KindNoUniqueOrthogonalComponent
	KindUnsupportedDimension
	KindDimensionMismatch
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "Unknown"
	case KindEmptyInput:
		return "EmptyInput"
	case KindNotIterable:
		return "NotIterable"
	case KindZeroVector:
		return "ZeroVector"
	case KindAngleWithZeroVector:
		return "AngleWithZeroVector"
	case KindNoUniqueParallelComponent:
		return "NoUniqueParallelComponent"
	case KindNoUniqueOrthogonalComponent:
		return "NoUniqueOrthogonalComponent"
	case KindUnsupportedDimension:
		return "UnsupportedDimension"
	case KindDimensionMismatch:
		return "DimensionMismatch"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// KindOf returns the most specific Kind in err's chain.
// Derived errors wrap their cause, so the derived kinds are checked first.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var dm *ErrDimensionMismatch
	switch {
	case errors.As(err, &dm):
		return KindDimensionMismatch
	case errors.Is(err, ErrNoUniqueOrthogonalComponent):
		return KindNoUniqueOrthogonalComponent
	case errors.Is(err, ErrNoUniqueParallelComponent):
		return KindNoUniqueParallelComponent
	case errors.Is(err, ErrAngleWithZeroVector):
		return KindAngleWithZeroVector
	case errors.Is(err, ErrZeroVector):
		return KindZeroVector
	case errors.Is(err, ErrUnsupportedDimension):
		return KindUnsupportedDimension
	case errors.Is(err, ErrEmptyInput):
		return KindEmptyInput
	case errors.Is(err, ErrNotIterable):
		return KindNotIterable
	default:
		return KindUnknown
	}
}

func checkDimension(expected, actual int) error {
	if expected != actual {
		return &ErrDimensionMismatch{Expected: expected, Actual: actual}
	}
	return nil
}
