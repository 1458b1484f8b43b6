package core

import "math"

// Translation moves points by (x, y, z); directions are unaffected
func Translation(x, y, z float64) Matrix {
	return NewMatrix(
		[]float64{1, 0, 0, x},
		[]float64{0, 1, 0, y},
		[]float64{0, 0, 1, z},
		[]float64{0, 0, 0, 1},
	)
}

// Scaling scales each axis independently
func Scaling(x, y, z float64) Matrix {
	return NewMatrix(
		[]float64{x, 0, 0, 0},
		[]float64{0, y, 0, 0},
		[]float64{0, 0, z, 0},
		[]float64{0, 0, 0, 1},
	)
}

// RotationX rotates around the X axis by r radians (right-hand rule)
func RotationX(r float64) Matrix {
	sin, cos := math.Sincos(r)
	return NewMatrix(
		[]float64{1, 0, 0, 0},
		[]float64{0, cos, -sin, 0},
		[]float64{0, sin, cos, 0},
		[]float64{0, 0, 0, 1},
	)
}

// RotationY rotates around the Y axis by r radians
func RotationY(r float64) Matrix {
	sin, cos := math.Sincos(r)
	return NewMatrix(
		[]float64{cos, 0, sin, 0},
		[]float64{0, 1, 0, 0},
		[]float64{-sin, 0, cos, 0},
		[]float64{0, 0, 0, 1},
	)
}

// RotationZ rotates around the Z axis by r radians
func RotationZ(r float64) Matrix {
	sin, cos := math.Sincos(r)
	return NewMatrix(
		[]float64{cos, -sin, 0, 0},
		[]float64{sin, cos, 0, 0},
		[]float64{0, 0, 1, 0},
		[]float64{0, 0, 0, 1},
	)
}

// Shearing moves each component in proportion to the other two.
// xy is "x moved in proportion to y", and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix(
		[]float64{1, xy, xz, 0},
		[]float64{yx, 1, yz, 0},
		[]float64{zx, zy, 1, 0},
		[]float64{0, 0, 0, 1},
	)
}

// The chainable forms apply the new operation after the existing ones, so
// Identity().RotateX(a).Scale(s, s, s).Translate(x, y, z) rotates first.

// Translate appends a translation
func (a Matrix) Translate(x, y, z float64) Matrix { return Translation(x, y, z).Multiply(a) }

// Scale appends a scaling
func (a Matrix) Scale(x, y, z float64) Matrix { return Scaling(x, y, z).Multiply(a) }

// RotateX appends a rotation around X
func (a Matrix) RotateX(r float64) Matrix { return RotationX(r).Multiply(a) }

// RotateY appends a rotation around Y
func (a Matrix) RotateY(r float64) Matrix { return RotationY(r).Multiply(a) }

// RotateZ appends a rotation around Z
func (a Matrix) RotateZ(r float64) Matrix { return RotationZ(r).Multiply(a) }

// Shear appends a shearing
func (a Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Shearing(xy, xz, yx, yz, zx, zy).Multiply(a)
}

// ViewTransform orients the world relative to an eye at from looking at to
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := NewMatrix(
		[]float64{left.X, left.Y, left.Z, 0},
		[]float64{trueUp.X, trueUp.Y, trueUp.Z, 0},
		[]float64{-forward.X, -forward.Y, -forward.Z, 0},
		[]float64{0, 0, 0, 1},
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
