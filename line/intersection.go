package line

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/vecmath"
)

// Kind classifies the intersection of two lines.
type Kind int

const (
	// Point means the lines meet in exactly one point.
	Point Kind = iota
	// None means the lines are parallel and distinct.
	None
	// Infinite means the lines coincide.
	Infinite
)

func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case None:
		return "none"
	case Infinite:
		return "infinite"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "point":
		*k = Point
	case "none":
		*k = None
	case "infinite":
		*k = Infinite
	default:
		return fmt.Errorf("unknown intersection kind %q", text)
	}
	return nil
}

// Intersection is the result of Line.IntersectionWith.
// Point is only set when Kind is Point.
type Intersection struct {
	Kind  Kind
	Point vecmath.Vector
}

type intersectionJSON struct {
	Kind  Kind            `json:"kind"`
	Point *vecmath.Vector `json:"point,omitempty"`
}

// MarshalJSON encodes the intersection as {"kind": "...", "point": [...]}.
func (i Intersection) MarshalJSON() ([]byte, error) {
	out := intersectionJSON{Kind: i.Kind}
	if i.Kind == Point {
		out.Point = &i.Point
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (i *Intersection) UnmarshalJSON(data []byte) error {
	var raw intersectionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Kind == Point && raw.Point == nil {
		return fmt.Errorf("intersection of kind %s without point", raw.Kind)
	}
	i.Kind = raw.Kind
	i.Point = vecmath.Vector{}
	if raw.Point != nil {
		i.Point = *raw.Point
	}
	return nil
}

func (i Intersection) String() string {
	switch i.Kind {
	case Point:
		return i.Point.String()
	case None:
		return "No intersection"
	case Infinite:
		return "Infinitely many intersections"
	default:
		return i.Kind.String()
	}
}
