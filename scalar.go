package vecmath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errNonFinite  = errors.New("value is not finite")
	errNilDecimal = errors.New("nil decimal pointer")
)

// ParseScalar converts a numeric literal to a decimal.
//
// Accepted inputs are decimal.Decimal, strings in decimal or scientific
// notation, and the built-in integer and float types. NaN and infinities
// are rejected.
func ParseScalar(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, errNilDecimal
		}
		return *x, nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(x))
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, errNonFinite
		}
		return decimal.NewFromFloat(x), nil
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return decimal.Zero, errNonFinite
		}
		return decimal.NewFromFloat32(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int8:
		return decimal.NewFromInt(int64(x)), nil
	case int16:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt32(x), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case uint:
		return decimal.NewFromString(strconv.FormatUint(uint64(x), 10))
	case uint8:
		return decimal.NewFromInt(int64(x)), nil
	case uint16:
		return decimal.NewFromInt(int64(x)), nil
	case uint32:
		return decimal.NewFromInt(int64(x)), nil
	case uint64:
		return decimal.NewFromString(strconv.FormatUint(x, 10))
	default:
		return decimal.Zero, fmt.Errorf("unsupported scalar type %T", v)
	}
}

// FromAny builds a Vector from any supported sequence of numeric literals.
//
// Supported inputs are Vector, []decimal.Decimal, []string, []float64,
// []float32, []int, []int64 and []any holding values accepted by
// ParseScalar. A nil or empty input fails with ErrEmptyInput, any other
// type fails with ErrNotIterable.
func FromAny(v any, optFns ...Option) (Vector, error) {
	if v == nil {
		return Vector{}, ErrEmptyInput
	}

	switch x := v.(type) {
	case Vector:
		return New(x.coords, optFns...)
	case []decimal.Decimal:
		return New(x, optFns...)
	case []string:
		return FromStrings(x, optFns...)
	case []float64:
		return FromFloats(x, optFns...)
	case []float32:
		return fromSlice(x, optFns)
	case []int:
		return fromSlice(x, optFns)
	case []int64:
		return fromSlice(x, optFns)
	case []any:
		return fromSlice(x, optFns)
	default:
		return Vector{}, fmt.Errorf("%w: got %T", ErrNotIterable, v)
	}
}

// FromStrings parses each element as a decimal literal.
func FromStrings(coords []string, optFns ...Option) (Vector, error) {
	return fromSlice(coords, optFns)
}

// FromFloats converts each element with decimal.NewFromFloat.
func FromFloats(coords []float64, optFns ...Option) (Vector, error) {
	return fromSlice(coords, optFns)
}

func fromSlice[T any](xs []T, optFns []Option) (Vector, error) {
	if len(xs) == 0 {
		return Vector{}, ErrEmptyInput
	}

	coords := make([]decimal.Decimal, len(xs))
	for i, x := range xs {
		d, err := ParseScalar(x)
		if err != nil {
			return Vector{}, &ErrInvalidCoordinate{Index: i, Value: x, cause: err}
		}
		coords[i] = d
	}

	return newVector(coords, applyOptions(optFns)), nil
}
