package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoInverse is returned when a matrix has a zero determinant
var ErrNoInverse = errors.New("matrix is not invertible")

// Matrix is a square matrix of size 2, 3 or 4 stored row-major.
// Transforms are always 4x4; smaller sizes only appear as submatrices
// during cofactor expansion.
type Matrix struct {
	size int
	m    [4][4]float64
}

// NewMatrix creates a square matrix from rows. It panics if rows are not square
// or larger than 4x4.
func NewMatrix(rows ...[]float64) Matrix {
	n := len(rows)
	if n < 1 || n > 4 {
		panic(fmt.Sprintf("core: unsupported matrix size %d", n))
	}
	mat := Matrix{size: n}
	for r, row := range rows {
		if len(row) != n {
			panic(fmt.Sprintf("core: matrix row %d has %d columns, want %d", r, len(row), n))
		}
		copy(mat.m[r][:n], row)
	}
	return mat
}

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{size: 4, m: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Size returns the number of rows (and columns)
func (a Matrix) Size() int { return a.size }

// At returns the element at row r, column c
func (a Matrix) At(r, c int) float64 { return a.m[r][c] }

// Multiply returns a·b. Both matrices must be the same size.
func (a Matrix) Multiply(b Matrix) Matrix {
	if a.size != b.size {
		panic(fmt.Sprintf("core: cannot multiply %dx%d by %dx%d", a.size, a.size, b.size, b.size))
	}
	r := Matrix{size: a.size}
	for row := 0; row < a.size; row++ {
		for col := 0; col < a.size; col++ {
			sum := 0.0
			for k := 0; k < a.size; k++ {
				sum += a.m[row][k] * b.m[k][col]
			}
			r.m[row][col] = sum
		}
	}
	return r
}

// MultiplyTuple applies a 4x4 matrix to a tuple treated as a column with w
// taken from its kind. The kind of the result is re-derived from the
// resulting w: only w ≈ 1 is a point.
func (a Matrix) MultiplyTuple(t Tuple) Tuple {
	in := [4]float64{t.X, t.Y, t.Z, t.W()}
	var out [4]float64
	for row := 0; row < 4; row++ {
		out[row] = a.m[row][0]*in[0] + a.m[row][1]*in[1] + a.m[row][2]*in[2] + a.m[row][3]*in[3]
	}
	kind := Direction
	if FloatEquals(out[3], 1) {
		kind = Point
	}
	return Tuple{X: out[0], Y: out[1], Z: out[2], Kind: kind}
}

// Transpose swaps rows and columns
func (a Matrix) Transpose() Matrix {
	r := Matrix{size: a.size}
	for row := 0; row < a.size; row++ {
		for col := 0; col < a.size; col++ {
			r.m[col][row] = a.m[row][col]
		}
	}
	return r
}

// Submatrix removes the given row and column
func (a Matrix) Submatrix(row, col int) Matrix {
	r := Matrix{size: a.size - 1}
	ri := 0
	for i := 0; i < a.size; i++ {
		if i == row {
			continue
		}
		ci := 0
		for j := 0; j < a.size; j++ {
			if j == col {
				continue
			}
			r.m[ri][ci] = a.m[i][j]
			ci++
		}
		ri++
	}
	return r
}

// Minor is the determinant of the submatrix at (row, col)
func (a Matrix) Minor(row, col int) float64 {
	return a.Submatrix(row, col).Determinant()
}

// Cofactor is the minor at (row, col) with sign (-1)^(row+col)
func (a Matrix) Cofactor(row, col int) float64 {
	minor := a.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant uses the closed form for 2x2 and cofactor expansion along
// the first row otherwise.
func (a Matrix) Determinant() float64 {
	switch a.size {
	case 1:
		return a.m[0][0]
	case 2:
		return a.m[0][0]*a.m[1][1] - a.m[0][1]*a.m[1][0]
	}
	det := 0.0
	for col := 0; col < a.size; col++ {
		det += a.m[0][col] * a.Cofactor(0, col)
	}
	return det
}

// Invertible reports whether the determinant is non-zero
func (a Matrix) Invertible() bool {
	return a.Determinant() != 0
}

// Inverse computes the inverse by the adjugate method
func (a Matrix) Inverse() (Matrix, error) {
	det := a.Determinant()
	if det == 0 {
		return Matrix{}, fmt.Errorf("%w: determinant is zero", ErrNoInverse)
	}
	r := Matrix{size: a.size}
	for row := 0; row < a.size; row++ {
		for col := 0; col < a.size; col++ {
			r.m[col][row] = a.Cofactor(row, col) / det
		}
	}
	return r, nil
}

// Equals compares two matrices element-wise within Epsilon
func (a Matrix) Equals(b Matrix) bool {
	if a.size != b.size {
		return false
	}
	for row := 0; row < a.size; row++ {
		for col := 0; col < a.size; col++ {
			if !FloatEquals(a.m[row][col], b.m[row][col]) {
				return false
			}
		}
	}
	return true
}

func (a Matrix) String() string {
	var sb strings.Builder
	for row := 0; row < a.size; row++ {
		sb.WriteString("|")
		for col := 0; col < a.size; col++ {
			fmt.Fprintf(&sb, " %8.5f", a.m[row][col])
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}
