package exercise

import (
	"errors"
	"fmt"
)

// ErrUnknownOp is returned when parsing an unsupported operation name.
var ErrUnknownOp = errors.New("unknown operation")

// Op identifies the vector or line operation a Task performs.
type Op int

const (
	OpPlus Op = iota + 1
	OpMinus
	OpScale
	OpMagnitude
	OpNormalize
	OpDot
	OpAngle
	OpParallel
	OpOrthogonal
	OpProjection
	OpOrthogonalComponent
	OpCross
	OpParallelogram
	OpTriangle
	OpIntersect
)

var opNames = map[Op]string{
	OpPlus:                "plus",
	OpMinus:               "minus",
	OpScale:               "scale",
	OpMagnitude:           "magnitude",
	OpNormalize:           "normalize",
	OpDot:                 "dot",
	OpAngle:               "angle",
	OpParallel:            "parallel",
	OpOrthogonal:          "orthogonal",
	OpProjection:          "proj",
	OpOrthogonalComponent: "orth",
	OpCross:               "cross",
	OpParallelogram:       "parallelogram",
	OpTriangle:            "triangle",
	OpIntersect:           "intersect",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(o))
}

// Ops returns all operations in declaration order.
func Ops() []Op {
	ops := make([]Op, 0, len(opNames))
	for o := OpPlus; o <= OpIntersect; o++ {
		ops = append(ops, o)
	}
	return ops
}

// ParseOp returns the operation with the given name.
func ParseOp(name string) (Op, error) {
	for o, n := range opNames {
		if n == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

// MarshalText implements encoding.TextMarshaler.
func (o Op) MarshalText() ([]byte, error) {
	if _, ok := opNames[o]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOp, int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Op) UnmarshalText(text []byte) error {
	parsed, err := ParseOp(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// needsPair reports whether the operation takes two vectors.
func (o Op) needsPair() bool {
	switch o {
	case OpPlus, OpMinus, OpDot, OpAngle, OpParallel, OpOrthogonal,
		OpProjection, OpOrthogonalComponent, OpCross, OpParallelogram, OpTriangle:
		return true
	default:
		return false
	}
}
