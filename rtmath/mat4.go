package rtmath

import "math"

// Mat4 is a 4x4 matrix stored row-major and used with the column-vector
// convention: a point is transformed as M*v, and composition m.Mul(other)
// applies other first, then m (same convention original_source's glm-based
// camera and instance transforms use).
type Mat4 [4][4]Scalar

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Zero() Mat4 {
	return Mat4{}
}

func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum Scalar
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

// MulVec4 applies the matrix to a homogeneous vector: M*v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// MulPoint transforms a point (w=1) and divides by the resulting w.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return m.MulVec4(v.ToVec4(1)).ToVec3DivW()
}

// MulDirection transforms a direction (w=0); translation has no effect.
func (m Mat4) MulDirection(v Vec3) Vec3 {
	return m.MulVec4(v.ToVec4(0)).ToVec3()
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

func Mat4Translation(t Vec3) Mat4 {
	m := Mat4Identity()
	m[0][3] = t.X
	m[1][3] = t.Y
	m[2][3] = t.Z
	return m
}

func Mat4Scale(s Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = s.X
	m[1][1] = s.Y
	m[2][2] = s.Z
	return m
}

func Mat4RotationX(angle Scalar) Mat4 {
	c := Scalar(math.Cos(float64(angle)))
	s := Scalar(math.Sin(float64(angle)))
	return Mat4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationY(angle Scalar) Mat4 {
	c := Scalar(math.Cos(float64(angle)))
	s := Scalar(math.Sin(float64(angle)))
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationZ(angle Scalar) Mat4 {
	c := Scalar(math.Cos(float64(angle)))
	s := Scalar(math.Sin(float64(angle)))
	return Mat4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationAxis(axis Vec3, angle Scalar) Mat4 {
	axis = axis.Normalize()
	c := Scalar(math.Cos(float64(angle)))
	s := Scalar(math.Sin(float64(angle)))
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4FromQuaternion(q Quaternion) Mat4 {
	return q.ToMat4()
}

func Mat4TRS(translation Vec3, rotation Quaternion, scale Vec3) Mat4 {
	return Mat4Translation(translation).Mul(rotation.ToMat4()).Mul(Mat4Scale(scale))
}

func Mat4LookAt(eye, target, up Vec3) Mat4 {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	// camera-to-world: columns are the basis vectors, translation is eye
	return Mat4{
		{right.X, trueUp.X, -forward.X, eye.X},
		{right.Y, trueUp.Y, -forward.Y, eye.Y},
		{right.Z, trueUp.Z, -forward.Z, eye.Z},
		{0, 0, 0, 1},
	}
}

// Inverse computes the general inverse of m via Gauss-Jordan elimination
// with partial pivoting, falling back to the identity if m is singular
// (mirrors the degenerate-matrix fallback in the teacher's math package).
func (m Mat4) Inverse() Mat4 {
	var a [4][8]Scalar
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a[i][j] = m[i][j]
		}
		a[i][4+i] = 1
	}

	for col := 0; col < 4; col++ {
		pivot := col
		best := abs(a[col][col])
		for row := col + 1; row < 4; row++ {
			if v := abs(a[row][col]); v > best {
				pivot = row
				best = v
			}
		}
		if best == 0 {
			return Mat4Identity()
		}
		a[col], a[pivot] = a[pivot], a[col]

		pv := a[col][col]
		for j := 0; j < 8; j++ {
			a[col][j] /= pv
		}
		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			factor := a[row][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 8; j++ {
				a[row][j] -= factor * a[col][j]
			}
		}
	}

	var inv Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			inv[i][j] = a[i][4+j]
		}
	}
	return inv
}

func abs(s Scalar) Scalar {
	if s < 0 {
		return -s
	}
	return s
}
