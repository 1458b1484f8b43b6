package core

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the tolerance used for floating point comparisons and surface offsets
const Epsilon = 1e-5

var (
	// ErrTupleMisuse is raised when an operation is applied to the wrong kind of tuple
	ErrTupleMisuse = errors.New("tuple operation undefined for this kind")
	// ErrZeroMagnitude is raised when normalizing a zero-length direction
	ErrZeroMagnitude = errors.New("cannot normalize zero-length direction")
)

// TupleKind discriminates positions from displacements
type TupleKind uint8

const (
	Direction TupleKind = iota // w = 0
	Point                      // w = 1
)

func (k TupleKind) String() string {
	if k == Point {
		return "point"
	}
	return "direction"
}

// Tuple is a 3D point or direction
type Tuple struct {
	X, Y, Z float64
	Kind    TupleKind
}

// NewPoint creates a position
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, Kind: Point}
}

// NewVector creates a direction
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, Kind: Direction}
}

// IsPoint reports whether the tuple denotes a position
func (t Tuple) IsPoint() bool { return t.Kind == Point }

// IsVector reports whether the tuple denotes a direction
func (t Tuple) IsVector() bool { return t.Kind == Direction }

// W returns the homogeneous coordinate of the tuple
func (t Tuple) W() float64 {
	if t.Kind == Point {
		return 1
	}
	return 0
}

func misuse(op string, kinds ...TupleKind) {
	panic(fmt.Errorf("%w: %s on %v", ErrTupleMisuse, op, kinds))
}

// Add returns the sum of two tuples. Adding two points panics.
func (t Tuple) Add(other Tuple) Tuple {
	if t.Kind == Point && other.Kind == Point {
		misuse("add", t.Kind, other.Kind)
	}
	kind := Direction
	if t.Kind == Point || other.Kind == Point {
		kind = Point
	}
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, kind}
}

// Subtract returns the difference of two tuples.
// Point - Point is a direction, Point - Direction is a point,
// Direction - Point panics.
func (t Tuple) Subtract(other Tuple) Tuple {
	var kind TupleKind
	switch {
	case t.Kind == Point && other.Kind == Point:
		kind = Direction
	case t.Kind == Point:
		kind = Point
	case other.Kind == Point:
		misuse("subtract", t.Kind, other.Kind)
	default:
		kind = Direction
	}
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, kind}
}

// Negate returns the tuple with all components negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, t.Kind}
}

// Multiply scales the tuple by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.Kind}
}

// Divide scales the tuple by the reciprocal of a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.Kind}
}

// Magnitude returns the length of a direction
func (t Tuple) Magnitude() float64 {
	if t.Kind != Direction {
		misuse("magnitude", t.Kind)
	}
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z)
}

// Normalize returns a unit direction. Zero-length directions panic.
func (t Tuple) Normalize() Tuple {
	length := t.Magnitude()
	if length == 0 {
		panic(ErrZeroMagnitude)
	}
	return Tuple{t.X / length, t.Y / length, t.Z / length, Direction}
}

// Dot returns the dot product of two directions
func (t Tuple) Dot(other Tuple) float64 {
	if t.Kind != Direction || other.Kind != Direction {
		misuse("dot", t.Kind, other.Kind)
	}
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z
}

// Cross returns the cross product of two directions
func (t Tuple) Cross(other Tuple) Tuple {
	if t.Kind != Direction || other.Kind != Direction {
		misuse("cross", t.Kind, other.Kind)
	}
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect mirrors the incoming direction around the normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// AsVector returns the same components tagged as a direction
func (t Tuple) AsVector() Tuple {
	t.Kind = Direction
	return t
}

// Equals compares two tuples component-wise within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return t.Kind == other.Kind &&
		FloatEquals(t.X, other.X) &&
		FloatEquals(t.Y, other.Y) &&
		FloatEquals(t.Z, other.Z)
}

func (t Tuple) String() string {
	return fmt.Sprintf("%s(%g, %g, %g)", t.Kind, t.X, t.Y, t.Z)
}

// FloatEquals compares two scalars within Epsilon
func FloatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
