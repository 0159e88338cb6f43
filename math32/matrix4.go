// Copyright (c) 2025, The scene3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is a 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float32

// NewMatrix4 returns a new identity [Matrix4].
func NewMatrix4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// Identity4 returns a new identity [Matrix4].
func Identity4() *Matrix4 {
	return NewMatrix4()
}

// Set sets all the elements of the matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	m[0] = n11
	m[4] = n12
	m[8] = n13
	m[12] = n14
	m[1] = n21
	m[5] = n22
	m[9] = n23
	m[13] = n24
	m[2] = n31
	m[6] = n32
	m[10] = n33
	m[14] = n34
	m[3] = n41
	m[7] = n42
	m[11] = n43
	m[15] = n44
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetZero sets this matrix as the zero matrix.
func (m *Matrix4) SetZero() {
	*m = Matrix4{}
}

// SetTranslation sets this matrix to a translation transform
// from the specified x, y and z values.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	m.Set(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// SetScale sets this matrix to a scale transform
// from the specified x, y and z values.
func (m *Matrix4) SetScale(x, y, z float32) {
	m.Set(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// SetRotationX sets this matrix to a rotation transform
// around the X axis by the specified angle in radians.
func (m *Matrix4) SetRotationX(angle float32) {
	c := Cos(angle)
	s := Sin(angle)
	m.Set(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationY sets this matrix to a rotation transform
// around the Y axis by the specified angle in radians.
func (m *Matrix4) SetRotationY(angle float32) {
	c := Cos(angle)
	s := Sin(angle)
	m.Set(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationZ sets this matrix to a rotation transform
// around the Z axis by the specified angle in radians.
func (m *Matrix4) SetRotationZ(angle float32) {
	c := Cos(angle)
	s := Sin(angle)
	m.Set(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetRotationAxis sets this matrix to a rotation transform around the given
// axis by the specified angle in radians. The axis must be normalized.
func (m *Matrix4) SetRotationAxis(axis Vector3, angle float32) {
	c := Cos(angle)
	s := Sin(angle)
	t := 1 - c
	x := axis.X
	y := axis.Y
	z := axis.Z
	tx := t * x
	ty := t * y
	m.Set(
		tx*x+c, tx*y-s*z, tx*z+s*y, 0,
		tx*y+s*z, ty*y+c, ty*z-s*x, 0,
		tx*z-s*y, ty*z+s*x, t*z*z+c, 0,
		0, 0, 0, 1,
	)
}

// Translate4 returns a new translation matrix from the specified x, y and z values.
func Translate4(x, y, z float32) *Matrix4 {
	m := &Matrix4{}
	m.SetTranslation(x, y, z)
	return m
}

// Scale4 returns a new scale matrix from the specified x, y and z values.
func Scale4(x, y, z float32) *Matrix4 {
	m := &Matrix4{}
	m.SetScale(x, y, z)
	return m
}

// RotateX4 returns a new rotation matrix around the X axis by angle radians.
func RotateX4(angle float32) *Matrix4 {
	m := &Matrix4{}
	m.SetRotationX(angle)
	return m
}

// RotateY4 returns a new rotation matrix around the Y axis by angle radians.
func RotateY4(angle float32) *Matrix4 {
	m := &Matrix4{}
	m.SetRotationY(angle)
	return m
}

// RotateZ4 returns a new rotation matrix around the Z axis by angle radians.
func RotateZ4(angle float32) *Matrix4 {
	m := &Matrix4{}
	m.SetRotationZ(angle)
	return m
}

// RotateAxis4 returns a new rotation matrix around the given normalized axis
// by angle radians.
func RotateAxis4(axis Vector3, angle float32) *Matrix4 {
	m := &Matrix4{}
	m.SetRotationAxis(axis, angle)
	return m
}

// MulMatrices sets this matrix as the matrix multiplication of a by b
// (i.e., a*b; b is applied to a column vector first, then a).
// It is safe to call with m aliasing a or b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	a11 := a[0]
	a12 := a[4]
	a13 := a[8]
	a14 := a[12]
	a21 := a[1]
	a22 := a[5]
	a23 := a[9]
	a24 := a[13]
	a31 := a[2]
	a32 := a[6]
	a33 := a[10]
	a34 := a[14]
	a41 := a[3]
	a42 := a[7]
	a43 := a[11]
	a44 := a[15]

	b11 := b[0]
	b12 := b[4]
	b13 := b[8]
	b14 := b[12]
	b21 := b[1]
	b22 := b[5]
	b23 := b[9]
	b24 := b[13]
	b31 := b[2]
	b32 := b[6]
	b33 := b[10]
	b34 := b[14]
	b41 := b[3]
	b42 := b[7]
	b43 := b[11]
	b44 := b[15]

	m[0] = a11*b11 + a12*b21 + a13*b31 + a14*b41
	m[4] = a11*b12 + a12*b22 + a13*b32 + a14*b42
	m[8] = a11*b13 + a12*b23 + a13*b33 + a14*b43
	m[12] = a11*b14 + a12*b24 + a13*b34 + a14*b44

	m[1] = a21*b11 + a22*b21 + a23*b31 + a24*b41
	m[5] = a21*b12 + a22*b22 + a23*b32 + a24*b42
	m[9] = a21*b13 + a22*b23 + a23*b33 + a24*b43
	m[13] = a21*b14 + a22*b24 + a23*b34 + a24*b44

	m[2] = a31*b11 + a32*b21 + a33*b31 + a34*b41
	m[6] = a31*b12 + a32*b22 + a33*b32 + a34*b42
	m[10] = a31*b13 + a32*b23 + a33*b33 + a34*b43
	m[14] = a31*b14 + a32*b24 + a33*b34 + a34*b44

	m[3] = a41*b11 + a42*b21 + a43*b31 + a44*b41
	m[7] = a41*b12 + a42*b22 + a43*b32 + a44*b42
	m[11] = a41*b13 + a42*b23 + a43*b33 + a44*b43
	m[15] = a41*b14 + a42*b24 + a43*b34 + a44*b44
}

// Mul returns a new matrix as the matrix multiplication of this matrix by the
// other matrix (i.e., receiver*other: other applies to a column vector first).
func (a *Matrix4) Mul(b *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(a, b)
	return nm
}

// SetMul sets this matrix to the multiplication of itself by the other matrix
// (i.e., m = m*other), right-multiplying other onto the accumulated transform.
func (m *Matrix4) SetMul(b *Matrix4) {
	m.MulMatrices(m, b)
}

// Transpose returns a new matrix that is the transpose of this matrix.
func (m *Matrix4) Transpose() *Matrix4 {
	nm := &Matrix4{}
	nm.Set(
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15],
	)
	return nm
}
