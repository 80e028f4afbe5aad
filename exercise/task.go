package exercise

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/line"
)

// ErrMissingOperand is returned when a task lacks an operand its operation needs.
var ErrMissingOperand = errors.New("missing operand")

// Task is one operation on vectors or lines.
//
// A and B are the vector operands, Scalar is the factor of OpScale, L1 and L2
// are the lines of OpIntersect. Degrees switches OpAngle to degrees.
type Task struct {
	ID      string           `json:"id,omitempty"`
	Op      Op               `json:"op"`
	A       *vecmath.Vector  `json:"a,omitempty"`
	B       *vecmath.Vector  `json:"b,omitempty"`
	Scalar  *decimal.Decimal `json:"scalar,omitempty"`
	Degrees bool             `json:"degrees,omitempty"`
	L1      *line.Line       `json:"l1,omitempty"`
	L2      *line.Line       `json:"l2,omitempty"`
}

// Result is the outcome of a Task. Exactly one of the value fields is set
// on success; Error and ErrorKind are set on failure.
type Result struct {
	ID           string             `json:"id,omitempty"`
	Op           Op                 `json:"op"`
	Vector       *vecmath.Vector    `json:"vector,omitempty"`
	Scalar       *decimal.Decimal   `json:"scalar,omitempty"`
	Angle        *float64           `json:"angle,omitempty"`
	Bool         *bool              `json:"bool,omitempty"`
	Intersection *line.Intersection `json:"intersection,omitempty"`
	Error        string             `json:"error,omitempty"`
	ErrorKind    string             `json:"error_kind,omitempty"`

	err error
}

// Err returns the evaluation error, or nil if the task succeeded.
// Results decoded from a file carry the error message only.
func (r Result) Err() error {
	if r.err == nil && r.Error != "" {
		return errors.New(r.Error)
	}
	return r.err
}

// String renders the result value for display.
func (r Result) String() string {
	switch {
	case r.Error != "":
		return fmt.Sprintf("error: %s (%s)", r.Error, r.ErrorKind)
	case r.Vector != nil:
		return r.Vector.String()
	case r.Scalar != nil:
		return r.Scalar.String()
	case r.Angle != nil:
		return strconv.FormatFloat(*r.Angle, 'f', -1, 64)
	case r.Bool != nil:
		return strconv.FormatBool(*r.Bool)
	case r.Intersection != nil:
		return r.Intersection.String()
	default:
		return "<empty>"
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrMissingOperand):
		return "MissingOperand"
	case errors.Is(err, ErrUnknownOp):
		return "UnknownOp"
	default:
		return vecmath.KindOf(err).String()
	}
}

func failed(task Task, err error) Result {
	return Result{
		ID:        task.ID,
		Op:        task.Op,
		Error:     err.Error(),
		ErrorKind: errorKind(err),
		err:       err,
	}
}

// Evaluate runs a single task. The vector options, if any, are applied to
// every operand before evaluation, so precision and tolerance can be set
// for a whole batch.
func Evaluate(task Task, optFns ...vecmath.Option) Result {
	res, err := evaluate(task, optFns)
	if err != nil {
		return failed(task, err)
	}
	res.ID, res.Op = task.ID, task.Op
	return res
}

func evaluate(task Task, optFns []vecmath.Option) (Result, error) {
	if _, ok := opNames[task.Op]; !ok {
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownOp, task.Op)
	}
	if task.Op == OpIntersect {
		return evaluateIntersect(task, optFns)
	}

	a, err := operand(task.A, "a", optFns)
	if err != nil {
		return Result{}, err
	}

	var b vecmath.Vector
	if task.Op.needsPair() {
		if b, err = operand(task.B, "b", optFns); err != nil {
			return Result{}, err
		}
	}

	switch task.Op {
	case OpPlus:
		return vectorResult(a.Plus(b))
	case OpMinus:
		return vectorResult(a.Minus(b))
	case OpScale:
		if task.Scalar == nil {
			return Result{}, fmt.Errorf("%w: scalar", ErrMissingOperand)
		}
		return vectorResult(a.TimesScalar(*task.Scalar), nil)
	case OpMagnitude:
		return scalarResult(a.Magnitude(), nil)
	case OpNormalize:
		return vectorResult(a.Normalized())
	case OpDot:
		return scalarResult(a.Dot(b))
	case OpAngle:
		unit := vecmath.Radians
		if task.Degrees {
			unit = vecmath.Degrees
		}
		angle, err := a.AngleWith(b, unit)
		if err != nil {
			return Result{}, err
		}
		return Result{Angle: &angle}, nil
	case OpParallel:
		ok := a.IsParallelTo(b)
		return Result{Bool: &ok}, nil
	case OpOrthogonal:
		ok := a.IsOrthogonalTo(b)
		return Result{Bool: &ok}, nil
	case OpProjection:
		return vectorResult(a.ComponentParallelTo(b))
	case OpOrthogonalComponent:
		return vectorResult(a.ComponentOrthogonalTo(b))
	case OpCross:
		return vectorResult(a.Cross(b))
	case OpParallelogram:
		return scalarResult(a.AreaOfParallelogramWith(b))
	case OpTriangle:
		return scalarResult(a.AreaOfTriangleWith(b))
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownOp, task.Op)
	}
}

func evaluateIntersect(task Task, optFns []vecmath.Option) (Result, error) {
	l1, err := lineOperand(task.L1, "l1", optFns)
	if err != nil {
		return Result{}, err
	}
	l2, err := lineOperand(task.L2, "l2", optFns)
	if err != nil {
		return Result{}, err
	}
	is := l1.IntersectionWith(l2)
	return Result{Intersection: &is}, nil
}

func operand(v *vecmath.Vector, name string, optFns []vecmath.Option) (vecmath.Vector, error) {
	if v == nil {
		return vecmath.Vector{}, fmt.Errorf("%w: %s", ErrMissingOperand, name)
	}
	if len(optFns) == 0 {
		return *v, nil
	}
	return vecmath.FromAny(*v, optFns...)
}

func lineOperand(l *line.Line, name string, optFns []vecmath.Option) (line.Line, error) {
	if l == nil {
		return line.Line{}, fmt.Errorf("%w: %s", ErrMissingOperand, name)
	}
	n := l.Normal()
	n, err := operand(&n, name, optFns)
	if err != nil {
		return line.Line{}, err
	}
	return line.New(n, l.Constant())
}

func vectorResult(v vecmath.Vector, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Vector: &v}, nil
}

func scalarResult(d decimal.Decimal, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Scalar: &d}, nil
}
