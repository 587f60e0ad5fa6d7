package math

import "math"

// Mat3 is a 3x3 matrix stored row-major: m[row][col]. As an orientation its
// columns are the basis vectors of a frame, so scale and shear are allowed.
type Mat3 [3][3]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Scale3 returns a uniform scale matrix.
func Scale3(s float64) Mat3 {
	return Mat3{
		{s, 0, 0},
		{0, s, 0},
		{0, 0, s},
	}
}

// FromColumns builds a matrix whose columns are x, y and z.
func FromColumns(x, y, z Vec3) Mat3 {
	return Mat3{
		{x.X, y.X, z.X},
		{x.Y, y.Y, z.Y},
		{x.Z, y.Z, z.Z},
	}
}

// Column returns column i as a vector.
func (m Mat3) Column(i int) Vec3 {
	return Vec3{m[0][i], m[1][i], m[2][i]}
}

// Mul returns m · other (other is applied first).
func (m Mat3) Mul(other Mat3) Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row][col] = m[row][0]*other[0][col] + m[row][1]*other[1][col] + m[row][2]*other[2][col]
		}
	}
	return r
}

// MulVec returns m · v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Scale multiplies every element by s.
func (m Mat3) Scale(s float64) Mat3 {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[row][col] *= s
		}
	}
	return m
}

// Transpose swaps rows and columns.
func (m Mat3) Transpose() Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[col][row] = m[row][col]
		}
	}
	return r
}

// Det returns the determinant using the rule of Sarrus.
func (m Mat3) Det() float64 {
	return m[0][0]*m[1][1]*m[2][2] +
		m[0][1]*m[1][2]*m[2][0] +
		m[0][2]*m[1][0]*m[2][1] -
		m[2][0]*m[1][1]*m[0][2] -
		m[2][1]*m[1][2]*m[0][0] -
		m[2][2]*m[1][0]*m[0][1]
}

// Inverse returns the inverse via the transposed cofactor matrix.
//
// A singular matrix yields the identity rather than an error so that pose
// propagation always has a matrix to apply.
func (m Mat3) Inverse() Mat3 {
	det := m.Det()
	if det == 0 {
		return Identity3()
	}
	minor := func(r0, r1, c0, c1 int) float64 {
		return m[r0][c0]*m[r1][c1] - m[r0][c1]*m[r1][c0]
	}
	cof := Mat3{
		{minor(1, 2, 1, 2), -minor(1, 2, 0, 2), minor(1, 2, 0, 1)},
		{-minor(0, 2, 1, 2), minor(0, 2, 0, 2), -minor(0, 2, 0, 1)},
		{minor(0, 1, 1, 2), -minor(0, 1, 0, 2), minor(0, 1, 0, 1)},
	}
	return cof.Transpose().Scale(1 / det)
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat3) ApproxEqual(other Mat3, eps float64) bool {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if math.Abs(m[row][col]-other[row][col]) > eps {
				return false
			}
		}
	}
	return true
}

// Matrix returns m as a general 3x3 Matrix.
func (m Mat3) Matrix() Matrix {
	return FromRows(m[0][:], m[1][:], m[2][:])
}

// RotationX returns a rotation of angle radians about the X axis.
func RotationX(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotationY returns a rotation of angle radians about the Y axis.
func RotationY(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotationZ returns a rotation of angle radians about the Z axis.
func RotationZ(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// EulerRotation composes Rz · Rx · Ry: yaw is applied first, then pitch, then roll.
func EulerRotation(x, y, z float64) Mat3 {
	return RotationZ(z).Mul(RotationX(x)).Mul(RotationY(y))
}
