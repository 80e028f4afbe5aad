package vecmath

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hupe1980/vecmath/internal/decimalx"
)

var two = decimal.NewFromInt(2)

// AngleUnit selects the unit returned by AngleWith.
type AngleUnit int

const (
	Radians AngleUnit = iota
	Degrees
)

func (u AngleUnit) String() string {
	switch u {
	case Radians:
		return "Radians"
	case Degrees:
		return "Degrees"
	default:
		return fmt.Sprintf("Unknown(%d)", int(u))
	}
}

// Vector is an immutable vector in R^n with decimal coordinates.
//
// All operations return new vectors; a Vector is safe for concurrent use.
// The zero value has no coordinates and is not a valid vector; use New.
type Vector struct {
	coords []decimal.Decimal
	opts   options
}

// New creates a vector from the given coordinates.
// The coordinates are copied and rounded to the configured precision.
func New(coords []decimal.Decimal, optFns ...Option) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, ErrEmptyInput
	}
	return newVector(append([]decimal.Decimal(nil), coords...), applyOptions(optFns)), nil
}

// newVector takes ownership of coords.
func newVector(coords []decimal.Decimal, o options) Vector {
	for i := range coords {
		coords[i] = decimalx.Round(coords[i], o.precision)
	}
	return Vector{coords: coords, opts: o}
}

func (v Vector) derive(coords []decimal.Decimal) Vector {
	return newVector(coords, v.opts)
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int { return len(v.coords) }

// Precision returns the number of significant digits kept by v.
func (v Vector) Precision() int { return v.opts.precision }

// Tolerance returns the default tolerance of v's classification methods.
func (v Vector) Tolerance() float64 { return v.opts.tolerance }

// At returns the i-th coordinate. It panics if i is out of range.
func (v Vector) At(i int) decimal.Decimal { return v.coords[i] }

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []decimal.Decimal {
	return append([]decimal.Decimal(nil), v.coords...)
}

// All returns an iterator over index/coordinate pairs.
// Each call starts a fresh iteration.
func (v Vector) All() iter.Seq2[int, decimal.Decimal] {
	return func(yield func(int, decimal.Decimal) bool) {
		for i, c := range v.coords {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Floats returns the coordinates as float64 values.
func (v Vector) Floats() []float64 {
	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = c.InexactFloat64()
	}
	return out
}

// Plus returns v + w.
func (v Vector) Plus(w Vector) (Vector, error) {
	if err := checkDimension(v.Dimension(), w.Dimension()); err != nil {
		return Vector{}, err
	}
	coords := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		coords[i] = v.coords[i].Add(w.coords[i])
	}
	return v.derive(coords), nil
}

// Minus returns v - w.
func (v Vector) Minus(w Vector) (Vector, error) {
	if err := checkDimension(v.Dimension(), w.Dimension()); err != nil {
		return Vector{}, err
	}
	coords := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		coords[i] = v.coords[i].Sub(w.coords[i])
	}
	return v.derive(coords), nil
}

// TimesScalar returns c * v.
func (v Vector) TimesScalar(c decimal.Decimal) Vector {
	coords := make([]decimal.Decimal, len(v.coords))
	for i, x := range v.coords {
		coords[i] = c.Mul(x)
	}
	return v.derive(coords)
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() decimal.Decimal {
	sum := decimal.Zero
	for _, x := range v.coords {
		sum = sum.Add(x.Mul(x))
	}
	// A sum of squares is never negative.
	m, _ := decimalx.Sqrt(sum, v.opts.precision)
	return m
}

// Normalized returns the unit vector in the direction of v.
// It fails with ErrZeroVector if v has zero magnitude.
func (v Vector) Normalized() (Vector, error) {
	m := v.Magnitude()
	if m.IsZero() {
		return Vector{}, ErrZeroVector
	}
	coords := make([]decimal.Decimal, len(v.coords))
	for i, x := range v.coords {
		coords[i] = decimalx.Quo(x, m, v.opts.precision)
	}
	return v.derive(coords), nil
}

// Dot returns the inner product of v and w.
func (v Vector) Dot(w Vector) (decimal.Decimal, error) {
	if err := checkDimension(v.Dimension(), w.Dimension()); err != nil {
		return decimal.Zero, err
	}
	return v.dot(w), nil
}

func (v Vector) dot(w Vector) decimal.Decimal {
	sum := decimal.Zero
	for i := range v.coords {
		sum = sum.Add(v.coords[i].Mul(w.coords[i]))
	}
	return decimalx.Round(sum, v.opts.precision)
}

// AngleWith returns the angle between v and w in the requested unit.
//
// The cosine is clamped to [-1, 1], since the dot product of two rounded
// unit vectors may land just outside that range.
func (v Vector) AngleWith(w Vector, unit AngleUnit) (float64, error) {
	cos, sin, err := v.cosSin(w)
	if err != nil {
		return 0, err
	}
	rad := math.Atan2(sin.InexactFloat64(), cos.InexactFloat64())
	if unit == Degrees {
		return rad * 180 / math.Pi, nil
	}
	return rad, nil
}

// cosSin returns the cosine and sine of the angle between v and w.
// The sine is derived in decimal: acos of a float64 cosine rounds angles
// below about 1e-8 to zero.
func (v Vector) cosSin(w Vector) (decimal.Decimal, decimal.Decimal, error) {
	if err := checkDimension(v.Dimension(), w.Dimension()); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	u1, err := v.Normalized()
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %w", ErrAngleWithZeroVector, err)
	}
	u2, err := w.Normalized()
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %w", ErrAngleWithZeroVector, err)
	}

	cos := decimalx.ClampUnit(u1.dot(u2))
	return cos, decimalx.SinFromCos(cos, v.opts.precision), nil
}

// IsZero reports whether v's magnitude is below v's tolerance.
func (v Vector) IsZero() bool {
	return v.IsZeroWithin(v.opts.tolerance)
}

// IsZeroWithin reports whether v's magnitude is below tol.
func (v Vector) IsZeroWithin(tol float64) bool {
	return v.Magnitude().InexactFloat64() < tol
}

// IsParallelTo reports whether v and w are parallel using v's tolerance.
func (v Vector) IsParallelTo(w Vector) bool {
	return v.IsParallelToWithin(w, v.opts.tolerance)
}

// IsParallelToWithin reports whether either vector is zero within tol, or the
// angle between them is within tol of 0 or pi. Vectors of different
// dimensions are never parallel.
func (v Vector) IsParallelToWithin(w Vector, tol float64) bool {
	if v.Dimension() != w.Dimension() {
		return false
	}
	if v.IsZeroWithin(tol) || w.IsZeroWithin(tol) {
		return true
	}
	cos, sin, err := v.cosSin(w)
	if err != nil {
		return false
	}
	// Distance of the angle from the nearer of 0 and pi.
	return math.Atan2(sin.InexactFloat64(), cos.Abs().InexactFloat64()) < tol
}

// IsOrthogonalTo reports whether v and w are orthogonal using v's tolerance.
func (v Vector) IsOrthogonalTo(w Vector) bool {
	return v.IsOrthogonalToWithin(w, v.opts.tolerance)
}

// IsOrthogonalToWithin reports whether |v · w| < tol. Vectors of different
// dimensions are never orthogonal.
func (v Vector) IsOrthogonalToWithin(w Vector, tol float64) bool {
	d, err := v.Dot(w)
	if err != nil {
		return false
	}
	return d.Abs().InexactFloat64() < tol
}

// ComponentParallelTo returns the projection of v onto basis.
// It fails with ErrNoUniqueParallelComponent if basis is the zero vector.
func (v Vector) ComponentParallelTo(basis Vector) (Vector, error) {
	if err := checkDimension(v.Dimension(), basis.Dimension()); err != nil {
		return Vector{}, err
	}
	u, err := basis.Normalized()
	if err != nil {
		return Vector{}, fmt.Errorf("%w: %w", ErrNoUniqueParallelComponent, err)
	}

	weight := v.dot(u)
	coords := make([]decimal.Decimal, len(u.coords))
	for i, x := range u.coords {
		coords[i] = weight.Mul(x)
	}
	return v.derive(coords), nil
}

// ComponentOrthogonalTo returns v minus its projection onto basis.
// It fails with ErrNoUniqueOrthogonalComponent if basis is the zero vector.
func (v Vector) ComponentOrthogonalTo(basis Vector) (Vector, error) {
	proj, err := v.ComponentParallelTo(basis)
	if err != nil {
		if errors.Is(err, ErrNoUniqueParallelComponent) {
			return Vector{}, fmt.Errorf("%w: %w", ErrNoUniqueOrthogonalComponent, err)
		}
		return Vector{}, err
	}
	return v.Minus(proj)
}

// Cross returns the cross product v × w.
//
// Two-dimensional inputs are embedded in R^3 with a zero third coordinate,
// so the result is always three-dimensional. Other dimensions fail with
// ErrUnsupportedDimension.
func (v Vector) Cross(w Vector) (Vector, error) {
	if err := checkDimension(v.Dimension(), w.Dimension()); err != nil {
		return Vector{}, err
	}

	switch v.Dimension() {
	case 2:
		return v.embed3().Cross(w.embed3())
	case 3:
		x1, y1, z1 := v.coords[0], v.coords[1], v.coords[2]
		x2, y2, z2 := w.coords[0], w.coords[1], w.coords[2]
		return v.derive([]decimal.Decimal{
			y1.Mul(z2).Sub(y2.Mul(z1)),
			x2.Mul(z1).Sub(x1.Mul(z2)),
			x1.Mul(y2).Sub(x2.Mul(y1)),
		}), nil
	default:
		return Vector{}, fmt.Errorf("%w: got dimension %d", ErrUnsupportedDimension, v.Dimension())
	}
}

func (v Vector) embed3() Vector {
	return Vector{coords: append(v.Coordinates(), decimal.Zero), opts: v.opts}
}

// AreaOfParallelogramWith returns the area of the parallelogram spanned by v and w.
func (v Vector) AreaOfParallelogramWith(w Vector) (decimal.Decimal, error) {
	c, err := v.Cross(w)
	if err != nil {
		return decimal.Zero, err
	}
	return c.Magnitude(), nil
}

// AreaOfTriangleWith returns the area of the triangle spanned by v and w.
func (v Vector) AreaOfTriangleWith(w Vector) (decimal.Decimal, error) {
	area, err := v.AreaOfParallelogramWith(w)
	if err != nil {
		return decimal.Zero, err
	}
	return decimalx.Quo(area, two, v.opts.precision), nil
}

// Equal reports whether v and w have identical coordinates.
// Vectors of different dimensions are unequal.
func (v Vector) Equal(w Vector) bool {
	if v.Dimension() != w.Dimension() {
		return false
	}
	for i := range v.coords {
		if !v.coords[i].Equal(w.coords[i]) {
			return false
		}
	}
	return true
}

// EqualWithin reports whether every coordinate of v differs from the
// corresponding coordinate of w by at most tol.
func (v Vector) EqualWithin(w Vector, tol float64) bool {
	if v.Dimension() != w.Dimension() {
		return false
	}
	for i := range v.coords {
		if v.coords[i].Sub(w.coords[i]).Abs().InexactFloat64() > tol {
			return false
		}
	}
	return true
}

// String returns "Vector: (c0, c1, ..., cn-1)".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("Vector: (")
	for i, c := range v.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// MarshalJSON encodes v as an array of decimal strings.
func (v Vector) MarshalJSON() ([]byte, error) {
	out := make([]string, len(v.coords))
	for i, c := range v.coords {
		out[i] = c.String()
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes an array of decimal strings or numbers.
// The receiver keeps its options; a zero Vector gets the defaults.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var coords []decimal.Decimal
	if err := json.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("%w: %w", ErrNotIterable, err)
	}
	if len(coords) == 0 {
		return ErrEmptyInput
	}

	o := v.opts
	if o.precision == 0 {
		o = defaultOptions()
	}
	*v = newVector(coords, o)
	return nil
}
