// Package decimalx provides precision-aware helpers on top of shopspring/decimal.
//
// shopspring/decimal keeps multiplication exact and rounds division to the
// package-global DivisionPrecision. The helpers here take the precision
// (in significant digits) explicitly instead, so callers can thread it
// through without touching global state.
// This is an internal package - external users should use the vecmath package.
package decimalx

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"

	"github.com/hupe1980/vecmath/internal/conv"
)

// ErrNegativeSqrt is returned when taking the square root of a negative value.
var ErrNegativeSqrt = errors.New("square root of negative number")

const maxNewtonIterations = 100

var (
	half   = decimal.New(5, -1)
	one    = decimal.NewFromInt(1)
	negOne = decimal.NewFromInt(-1)
)

// NumDigits returns the number of digits of the coefficient of d.
func NumDigits(d decimal.Decimal) int {
	c := d.Coefficient()
	if c.Sign() == 0 {
		return 1
	}
	return len(c.Abs(c).String())
}

// AdjustedExponent returns the power of ten of the most significant digit of d.
// For zero it returns 0.
func AdjustedExponent(d decimal.Decimal) int {
	if d.IsZero() {
		return 0
	}
	return NumDigits(d) + int(d.Exponent()) - 1
}

// Round rounds d half away from zero to prec significant digits.
// A non-positive prec leaves d unchanged.
func Round(d decimal.Decimal, prec int) decimal.Decimal {
	if prec <= 0 || d.IsZero() {
		return d
	}
	if NumDigits(d) <= prec {
		return d
	}
	return d.Round(conv.ClampToInt32(prec - 1 - AdjustedExponent(d)))
}

// Quo returns a / b rounded to prec significant digits.
// It panics if b is zero; callers check first.
func Quo(a, b decimal.Decimal, prec int) decimal.Decimal {
	if a.IsZero() {
		return decimal.Zero
	}
	places := prec - (AdjustedExponent(a) - AdjustedExponent(b)) + 1
	return Round(a.DivRound(b, conv.ClampToInt32(places)), prec)
}

// Sqrt returns the square root of d rounded to prec significant digits.
//
// The float64 square root seeds Newton's iteration, which then runs at two
// guard digits above prec until it stops moving.
func Sqrt(d decimal.Decimal, prec int) (decimal.Decimal, error) {
	switch d.Sign() {
	case -1:
		return decimal.Zero, ErrNegativeSqrt
	case 0:
		return decimal.Zero, nil
	}

	guard := prec + 2
	x := initialGuess(d)
	for range maxNewtonIterations {
		next := Round(x.Add(Quo(d, x, guard)).Mul(half), guard)
		if next.Equal(x) {
			break
		}
		x = next
	}

	return Round(x, prec), nil
}

func initialGuess(d decimal.Decimal) decimal.Decimal {
	if f := d.InexactFloat64(); f > 0 && !math.IsInf(f, 0) {
		if s := math.Sqrt(f); s > 0 && !math.IsInf(s, 0) {
			return decimal.NewFromFloat(s)
		}
	}
	// Out of float64 range: start from the right order of magnitude.
	return decimal.New(1, conv.ClampToInt32(AdjustedExponent(d)/2))
}

// Clamp limits d to the closed interval [lo, hi].
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// ClampUnit limits d to [-1, 1].
func ClampUnit(d decimal.Decimal) decimal.Decimal {
	return Clamp(d, negOne, one)
}

// SinFromCos returns sqrt(1 - c^2) to prec significant digits.
// c is clamped to [-1, 1] first.
func SinFromCos(c decimal.Decimal, prec int) decimal.Decimal {
	c = ClampUnit(c)
	// 1 - c^2 is non-negative after the clamp.
	s, _ := Sqrt(one.Sub(c.Mul(c)), prec)
	return s
}
