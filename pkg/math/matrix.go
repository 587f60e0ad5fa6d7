package math

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShape is returned when operand shapes do not fit an operation.
	ErrShape = errors.New("matrix shape mismatch")
	// ErrSingular is returned by Inverse2 for a matrix with zero determinant.
	ErrSingular = errors.New("matrix is singular")
)

// ShapeError describes an operation attempted on incompatible shapes.
type ShapeError struct {
	Op          string
	Left, Right [2]int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %dx%d and %dx%d", e.Op, e.Left[0], e.Left[1], e.Right[0], e.Right[1])
}

// Unwrap lets errors.Is match ErrShape.
func (e *ShapeError) Unwrap() error { return ErrShape }

// Matrix is a rows x cols grid of float64 stored row-major. A vector is a
// matrix with one column. The zero Matrix has no shape and is what fallible
// operations return alongside an error.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix returns a zero-filled rows x cols matrix.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// FromRows builds a matrix from row slices. All rows must have the same
// length; shorter rows are zero-padded.
func FromRows(rows ...[]float64) Matrix {
	if len(rows) == 0 {
		return Matrix{}
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for r, row := range rows {
		copy(m.data[r*m.cols:(r+1)*m.cols], row)
	}
	return m
}

// Column builds a column vector.
func Column(values ...float64) Matrix {
	m := NewMatrix(len(values), 1)
	copy(m.data, values)
	return m
}

// Identity returns the n x n identity.
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Shape returns (rows, cols).
func (m Matrix) Shape() (int, int) { return m.rows, m.cols }

// IsZeroShape reports whether m is the shapeless "no result" value.
func (m Matrix) IsZeroShape() bool { return m.rows == 0 || m.cols == 0 }

// At returns the element at row r, column c.
func (m Matrix) At(r, c int) float64 { return m.data[r*m.cols+c] }

// Set stores v at row r, column c.
func (m Matrix) Set(r, c int, v float64) { m.data[r*m.cols+c] = v }

// Rows returns a copy of the contents as row slices.
func (m Matrix) Rows() [][]float64 {
	out := make([][]float64, m.rows)
	for r := range out {
		out[r] = append([]float64(nil), m.data[r*m.cols:(r+1)*m.cols]...)
	}
	return out
}

// Row returns row r as a 1 x cols matrix.
func (m Matrix) Row(r int) Matrix {
	return FromRows(m.data[r*m.cols : (r+1)*m.cols])
}

// Col returns column c as a rows x 1 matrix.
func (m Matrix) Col(c int) Matrix {
	out := NewMatrix(m.rows, 1)
	for r := 0; r < m.rows; r++ {
		out.data[r] = m.At(r, c)
	}
	return out
}

func (m Matrix) clone() Matrix {
	return Matrix{rows: m.rows, cols: m.cols, data: append([]float64(nil), m.data...)}
}

func (m Matrix) sameShape(op string, other Matrix) error {
	if m.rows != other.rows || m.cols != other.cols {
		return &ShapeError{Op: op, Left: [2]int{m.rows, m.cols}, Right: [2]int{other.rows, other.cols}}
	}
	return nil
}

func (m Matrix) elementwise(op string, other Matrix, f func(a, b float64) float64) (Matrix, error) {
	if err := m.sameShape(op, other); err != nil {
		return Matrix{}, err
	}
	out := NewMatrix(m.rows, m.cols)
	for i := range out.data {
		out.data[i] = f(m.data[i], other.data[i])
	}
	return out, nil
}

// Add returns m + other.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	return m.elementwise("add", other, func(a, b float64) float64 { return a + b })
}

// Sub returns m - other.
func (m Matrix) Sub(other Matrix) (Matrix, error) {
	return m.elementwise("subtract", other, func(a, b float64) float64 { return a - b })
}

// Mul returns the elementwise (Hadamard) product.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	return m.elementwise("multiply", other, func(a, b float64) float64 { return a * b })
}

// Scale multiplies every element by s.
func (m Matrix) Scale(s float64) Matrix {
	out := m.clone()
	for i := range out.data {
		out.data[i] *= s
	}
	return out
}

// Apply returns the matrix product m · right. It requires m.cols == right.rows.
func (m Matrix) Apply(right Matrix) (Matrix, error) {
	if m.cols != right.rows {
		return Matrix{}, &ShapeError{Op: "apply", Left: [2]int{m.rows, m.cols}, Right: [2]int{right.rows, right.cols}}
	}
	out := NewMatrix(m.rows, right.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < right.cols; c++ {
			var sum float64
			for i := 0; i < m.cols; i++ {
				sum += m.At(r, i) * right.At(i, c)
			}
			out.data[r*out.cols+c] = sum
		}
	}
	return out, nil
}

// Transpose swaps rows and columns.
func (m Matrix) Transpose() Matrix {
	out := NewMatrix(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.data[c*out.cols+r] = m.At(r, c)
		}
	}
	return out
}

func (m Matrix) square(op string, n int) error {
	if m.rows != n || m.cols != n {
		return &ShapeError{Op: op, Left: [2]int{m.rows, m.cols}, Right: [2]int{n, n}}
	}
	return nil
}

// Det2 returns the determinant of a 2x2 matrix.
func (m Matrix) Det2() (float64, error) {
	if err := m.square("det2", 2); err != nil {
		return 0, err
	}
	return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0), nil
}

// Det3 returns the determinant of a 3x3 matrix.
func (m Matrix) Det3() (float64, error) {
	a, err := m.Mat3()
	if err != nil {
		return 0, err
	}
	return a.Det(), nil
}

// Inverse2 returns the inverse of a 2x2 matrix, or ErrSingular.
func (m Matrix) Inverse2() (Matrix, error) {
	det, err := m.Det2()
	if err != nil {
		return Matrix{}, err
	}
	if det == 0 {
		return Matrix{}, ErrSingular
	}
	adj := FromRows(
		[]float64{m.At(1, 1), -m.At(0, 1)},
		[]float64{-m.At(1, 0), m.At(0, 0)},
	)
	return adj.Scale(1 / det), nil
}

// Inverse3 returns the inverse of a 3x3 matrix. A singular matrix yields the
// identity; only a wrong shape is an error.
func (m Matrix) Inverse3() (Matrix, error) {
	a, err := m.Mat3()
	if err != nil {
		return Matrix{}, err
	}
	return a.Inverse().Matrix(), nil
}

func (m Matrix) vector(op string, n int) error {
	if m.cols != 1 || (n > 0 && m.rows != n) {
		return &ShapeError{Op: op, Left: [2]int{m.rows, m.cols}, Right: [2]int{n, 1}}
	}
	return nil
}

// Dot returns the dot product of two column vectors of equal length.
func (m Matrix) Dot(other Matrix) (float64, error) {
	if err := m.vector("dot", 0); err != nil {
		return 0, err
	}
	if err := m.sameShape("dot", other); err != nil {
		return 0, err
	}
	var sum float64
	for i := range m.data {
		sum += m.data[i] * other.data[i]
	}
	return sum, nil
}

// Cross returns the cross product of two 3-vectors.
func (m Matrix) Cross(other Matrix) (Matrix, error) {
	a, err := m.Vec3()
	if err != nil {
		return Matrix{}, err
	}
	b, err := other.Vec3()
	if err != nil {
		return Matrix{}, err
	}
	return a.Cross(b).Matrix(), nil
}

// Magnitude returns the Euclidean length of the first column.
func (m Matrix) Magnitude() float64 {
	var sum float64
	for r := 0; r < m.rows; r++ {
		v := m.At(r, 0)
		sum += v * v
	}
	return math.Sqrt(sum)
}

// SetMagnitude rescales a column vector to the given length. The zero vector
// maps to itself.
func (m Matrix) SetMagnitude(length float64) (Matrix, error) {
	if err := m.vector("set magnitude", 0); err != nil {
		return Matrix{}, err
	}
	cur := m.Magnitude()
	if cur == 0 {
		return NewMatrix(m.rows, 1), nil
	}
	return m.Scale(length / cur), nil
}

// Mat3 converts a 3x3 Matrix to Mat3.
func (m Matrix) Mat3() (Mat3, error) {
	if err := m.square("mat3", 3); err != nil {
		return Mat3{}, err
	}
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m.At(r, c)
		}
	}
	return out, nil
}

// Vec3 converts a 3x1 Matrix to Vec3.
func (m Matrix) Vec3() (Vec3, error) {
	if err := m.vector("vec3", 3); err != nil {
		return Vec3{}, err
	}
	return Vec3{m.data[0], m.data[1], m.data[2]}, nil
}

// Equal reports whether both matrices have the same shape and every element
// differs by at most eps.
func (m Matrix) Equal(other Matrix, eps float64) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if math.Abs(m.data[i]-other.data[i]) > eps {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	return fmt.Sprint(m.Rows())
}
