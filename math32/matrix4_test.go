// Copyright (c) 2025, The scene3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualVector3(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	assert.InDelta(t, vt.X, va.X, float64(tol))
	assert.InDelta(t, vt.Y, va.Y, float64(tol))
	assert.InDelta(t, vt.Z, va.Z, float64(tol))
}

func TestMatrix4Identity(t *testing.T) {
	vx := Vec3(1, 0, 0)
	vy := Vec3(0, 1, 0)
	vxyz := Vec3(1, 1, 1)

	id := Identity4()
	assert.Equal(t, vx, vx.MulMatrix4AsPoint(id))
	assert.Equal(t, vy, vy.MulMatrix4AsPoint(id))
	assert.Equal(t, vxyz, vxyz.MulMatrix4AsPoint(id))

	assert.Equal(t, *id, *id.Mul(Identity4()))
}

func TestMatrix4Builders(t *testing.T) {
	v0 := Vec3(0, 0, 0)
	vx := Vec3(1, 0, 0)
	vy := Vec3(0, 1, 0)
	vz := Vec3(0, 0, 1)

	assert.Equal(t, Vec3(1, 2, 3), v0.MulMatrix4AsPoint(Translate4(1, 2, 3)))
	assert.Equal(t, Vec3(2, 3, 4), Vec3(1, 1, 1).MulMatrix4AsPoint(Translate4(1, 2, 3)))
	assert.Equal(t, Vec3(2, 6, 12), Vec3(1, 2, 3).MulMatrix4AsPoint(Scale4(2, 3, 4)))

	tolAssertEqualVector3(t, standardTol, vy, vx.MulMatrix4AsPoint(RotateZ4(DegToRad(90))))
	tolAssertEqualVector3(t, standardTol, vz, vy.MulMatrix4AsPoint(RotateX4(DegToRad(90))))
	tolAssertEqualVector3(t, standardTol, vx, vz.MulMatrix4AsPoint(RotateY4(DegToRad(90))))

	// translation is ignored for direction vectors
	assert.Equal(t, vx, vx.MulMatrix4AsVector(Translate4(5, 5, 5)))
}

func TestMatrix4RotationAxis(t *testing.T) {
	for _, angle := range []float32{-90, -45, 30, 90, 180} {
		rad := DegToRad(angle)
		az := RotateAxis4(Vec3(0, 0, 1), rad)
		ez := RotateZ4(rad)
		for i := range az {
			assert.InDelta(t, ez[i], az[i], float64(standardTol))
		}
	}
}

func TestMatrix4MulOrder(t *testing.T) {
	vx := Vec3(1, 0, 0)

	// 1,0,0 -> scale(2) = 2,0,0 -> rotate z 90 = 0,2,0 -> trans 1,1,0 -> 1,3,0
	// multiplication order is *reverse* of "logical" order:
	m := Translate4(1, 1, 0).Mul(RotateZ4(DegToRad(90))).Mul(Scale4(2, 2, 2))
	tolAssertEqualVector3(t, standardTol, Vec3(1, 3, 0), vx.MulMatrix4AsPoint(m))

	// SetMul right-multiplies, matching the chained form above
	sm := Identity4()
	sm.SetMul(Translate4(1, 1, 0))
	sm.SetMul(RotateZ4(DegToRad(90)))
	sm.SetMul(Scale4(2, 2, 2))
	for i := range m {
		assert.InDelta(t, m[i], sm[i], float64(standardTol))
	}
}

func TestMatrix4MulMatricesAliasing(t *testing.T) {
	a := Translate4(1, 2, 3).Mul(Scale4(2, 2, 2))
	b := RotateY4(DegToRad(30))
	want := a.Mul(b)

	got := *a
	got.MulMatrices(&got, b)
	assert.Equal(t, *want, got)
}

// gonumDense converts m to a float64 row-major dense matrix.
func gonumDense(m *Matrix4) *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			d.Set(row, col, float64(m[col*4+row]))
		}
	}
	return d
}

func TestMatrix4MulMatchesGonum(t *testing.T) {
	a := Translate4(1, -2, 3).Mul(RotateX4(DegToRad(37))).Mul(Scale4(2, 0.5, -1))
	b := RotateZ4(DegToRad(-63)).Mul(Translate4(-4, 5, 6))
	got := a.Mul(b)

	var want mat.Dense
	want.Product(gonumDense(a), gonumDense(b))

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			assert.InDelta(t, want.At(row, col), float64(got[col*4+row]), 1.0e-5)
		}
	}
}

func TestMatrix4Transpose(t *testing.T) {
	m := Translate4(1, 2, 3).Mul(RotateY4(DegToRad(45)))
	mt := m.Transpose()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			assert.Equal(t, m[col*4+row], mt[row*4+col])
		}
	}
	assert.Equal(t, *m, *mt.Transpose())
}
