// Package line implements lines in the plane in normal-vector form n · x = k.
//
// A Line is an immutable value built on vecmath.Vector. Intersections are
// classified as a single point, no intersection (distinct parallel lines) or
// infinitely many (coincident lines).
package line

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/decimalx"
)

// ErrNoNonzeroElements is returned when a base point is requested for a zero normal vector.
var ErrNoNonzeroElements = errors.New("no nonzero elements found")

const (
	dimension     = 2
	displayPlaces = 3
)

// Line is the set of points x with normal · x = constant.
type Line struct {
	normal   vecmath.Vector
	constant decimal.Decimal
}

// New creates a line from a two-dimensional normal vector and a constant term.
func New(normal vecmath.Vector, constant decimal.Decimal) (Line, error) {
	if normal.Dimension() != dimension {
		return Line{}, fmt.Errorf("%w: line normal has dimension %d", vecmath.ErrUnsupportedDimension, normal.Dimension())
	}
	return Line{normal: normal, constant: constant}, nil
}

// Normal returns the normal vector.
func (l Line) Normal() vecmath.Vector { return l.normal }

// Constant returns the constant term.
func (l Line) Constant() decimal.Decimal { return l.constant }

func (l Line) firstNonzeroIndex() (int, error) {
	tol := l.normal.Tolerance()
	for i, c := range l.normal.All() {
		if c.Abs().InexactFloat64() >= tol {
			return i, nil
		}
	}
	return -1, ErrNoNonzeroElements
}

// BasePoint returns a point on the line. It fails with ErrNoNonzeroElements
// if the normal vector is zero.
func (l Line) BasePoint() (vecmath.Vector, error) {
	idx, err := l.firstNonzeroIndex()
	if err != nil {
		return vecmath.Vector{}, err
	}

	coords := make([]decimal.Decimal, dimension)
	for i := range coords {
		coords[i] = decimal.Zero
	}
	coords[idx] = decimalx.Quo(l.constant, l.normal.At(idx), l.normal.Precision())

	return vecmath.New(coords, l.vectorOptions()...)
}

func (l Line) vectorOptions() []vecmath.Option {
	return []vecmath.Option{
		vecmath.WithPrecision(l.normal.Precision()),
		vecmath.WithTolerance(l.normal.Tolerance()),
	}
}

// IsParallelTo reports whether the normals of l and o are parallel.
func (l Line) IsParallelTo(o Line) bool {
	return l.normal.IsParallelTo(o.normal)
}

// Equal reports whether l and o describe the same set of points.
func (l Line) Equal(o Line) bool {
	lZero, oZero := l.normal.IsZero(), o.normal.IsZero()
	switch {
	case lZero && oZero:
		return l.constant.Sub(o.constant).Abs().InexactFloat64() < l.normal.Tolerance()
	case lZero || oZero:
		return false
	}

	if !l.IsParallelTo(o) {
		return false
	}

	b1, err := l.BasePoint()
	if err != nil {
		return false
	}
	b2, err := o.BasePoint()
	if err != nil {
		return false
	}
	diff, err := b1.Minus(b2)
	if err != nil {
		return false
	}
	return diff.IsOrthogonalTo(l.normal)
}

// IntersectionWith intersects l with o.
func (l Line) IntersectionWith(o Line) Intersection {
	if l.IsParallelTo(o) {
		if l.Equal(o) {
			return Intersection{Kind: Infinite}
		}
		return Intersection{Kind: None}
	}

	a, b := l.normal.At(0), l.normal.At(1)
	c, d := o.normal.At(0), o.normal.At(1)
	k1, k2 := l.constant, o.constant

	det := a.Mul(d).Sub(b.Mul(c))
	if det.IsZero() {
		return Intersection{Kind: None}
	}

	prec := l.normal.Precision()
	x := decimalx.Quo(d.Mul(k1).Sub(b.Mul(k2)), det, prec)
	y := decimalx.Quo(a.Mul(k2).Sub(c.Mul(k1)), det, prec)

	p, err := vecmath.New([]decimal.Decimal{x, y}, l.vectorOptions()...)
	if err != nil {
		// Two coordinates are never empty.
		panic(err)
	}
	return Intersection{Kind: Point, Point: p}
}

// String renders the line like "4.046x_1 + 2.836x_2 = 1.21", with
// coefficients rounded to three decimal places.
func (l Line) String() string {
	var terms []string
	for i, c := range l.normal.All() {
		c = c.Round(displayPlaces)
		if c.IsZero() {
			continue
		}
		terms = append(terms, writeCoefficient(c, len(terms) == 0)+fmt.Sprintf("x_%d", i+1))
	}

	out := strings.Join(terms, " ")
	if out == "" {
		out = "0"
	}
	return out + " = " + l.constant.Round(displayPlaces).String()
}

func writeCoefficient(c decimal.Decimal, initial bool) string {
	var sb strings.Builder
	switch {
	case c.IsNegative():
		sb.WriteString("-")
	case !initial:
		sb.WriteString("+")
	}
	if !initial {
		sb.WriteString(" ")
	}
	if abs := c.Abs(); !abs.Equal(decimal.NewFromInt(1)) {
		sb.WriteString(abs.String())
	}
	return sb.String()
}

type lineJSON struct {
	Normal   vecmath.Vector  `json:"normal"`
	Constant decimal.Decimal `json:"constant"`
}

// MarshalJSON encodes the line as {"normal": [...], "constant": "..."}.
func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(lineJSON{Normal: l.normal, Constant: l.constant})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (l *Line) UnmarshalJSON(data []byte) error {
	var raw lineJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := New(raw.Normal, raw.Constant)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
