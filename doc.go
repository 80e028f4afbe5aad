// Package vecmath provides linear-algebra primitives over finite-dimensional
// real vectors with decimal coordinates.
//
// Vectors are immutable values backed by github.com/shopspring/decimal. Every
// coordinate and every derived scalar is rounded to a configurable number of
// significant digits (30 by default), which keeps equality and angle checks
// stable across chained operations.
//
// # Quick Start
//
//	v, _ := vecmath.FromStrings([]string{"8.218", "-9.341"})
//	w, _ := vecmath.FromStrings([]string{"-1.129", "2.111"})
//	sum, _ := v.Plus(w)
//	fmt.Println(sum) // Vector: (7.089, -7.23)
//
// # Precision and Tolerance
//
// Precision is threaded through construction; there is no package-level
// decimal context:
//
//	v, _ := vecmath.FromFloats([]float64{1, 1, 1}, vecmath.WithPrecision(50))
//
// Classification methods (IsZero, IsParallelTo, IsOrthogonalTo) use the
// tolerance configured with WithTolerance (1e-10 by default). The ...Within
// variants take an explicit tolerance.
//
// # Errors
//
// Failures are reported with sentinel errors and typed errors that can be
// matched with errors.Is / errors.As. Derived failures wrap their cause, e.g.
// ErrAngleWithZeroVector wraps ErrZeroVector. KindOf maps an error to an
// explicit Kind:
//
//	_, err := zero.AngleWith(v, vecmath.Radians)
//	switch vecmath.KindOf(err) {
//	case vecmath.KindAngleWithZeroVector:
//	    // ...
//	}
//
// Element-wise operations (Plus, Minus, Dot, Cross) on vectors of different
// dimensions fail with *ErrDimensionMismatch.
package vecmath
