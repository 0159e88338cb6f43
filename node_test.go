// Copyright (c) 2025, The scene3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene3d

import (
	"testing"

	"github.com/softrender/scene3d/math32"
	"github.com/stretchr/testify/assert"
)

func TestNodeDefaults(t *testing.T) {
	nd := NewNode()
	assert.Equal(t, *math32.Identity4(), nd.LocalMatrix())
	assert.Nil(t, nd.Model())
	assert.Equal(t, 0, nd.NumChildren())
}

func TestNodeTranslateChain(t *testing.T) {
	a := NewNode().Translate(1, 0, 0)
	b := NewNode().Translate(1, 0, 0)
	a.AddChild(b)

	wa := a.WorldMatrix(nil)
	wb := b.WorldMatrix(wa)
	assert.Equal(t, math32.Vec3(2, 0, 0), math32.Vec3(0, 0, 0).MulMatrix4AsPoint(wb))
}

func TestNodeWorldComposition(t *testing.T) {
	// 3-node chain a -> b -> c: c's world matrix equals Ma*Mb*Mc
	a := NewNode().Translate(1, 2, 3)
	b := NewNode().RotateZ(90)
	c := NewNode().Scale(2, 2, 2)
	a.AddChild(b)
	b.AddChild(c)

	wc := c.WorldMatrix(b.WorldMatrix(a.WorldMatrix(nil)))

	ma := a.LocalMatrix()
	mb := b.LocalMatrix()
	mc := c.LocalMatrix()
	want := ma.Mul(&mb).Mul(&mc)

	pt := math32.Vec3(1, 0, 0)
	tolAssertEqualVector3(t, standardTol, pt.MulMatrix4AsPoint(want), pt.MulMatrix4AsPoint(wc))
	// 1,0,0 -> scale = 2,0,0 -> rotate z 90 = 0,2,0 -> translate = 1,4,3
	tolAssertEqualVector3(t, standardTol, math32.Vec3(1, 4, 3), pt.MulMatrix4AsPoint(wc))
}

func TestNodeTRSOrder(t *testing.T) {
	nd := NewNode().Translate(1, 2, 3).RotateZ(90).Scale(2, 2, 2)

	// primitives apply to a point in reverse chain order:
	// scale first, then rotation, then translation
	w := nd.WorldMatrix(nil)
	tolAssertEqualVector3(t, standardTol, math32.Vec3(1, 4, 3), math32.Vec3(1, 0, 0).MulMatrix4AsPoint(w))

	nd.ResetIdentity()
	assert.Equal(t, *math32.Identity4(), nd.LocalMatrix())
}

func TestNodeRotateAxis(t *testing.T) {
	za := NewNode().RotateAxis(math32.Vec3(0, 0, 1), 90)
	z := NewNode().RotateZ(90)
	ma := za.LocalMatrix()
	mz := z.LocalMatrix()
	for i := range ma {
		assert.InDelta(t, mz[i], ma[i], float64(standardTol))
	}
}

func TestNodeSetLocalMatrix(t *testing.T) {
	nd := NewNode()
	m := *math32.Translate4(5, 6, 7)
	nd.SetLocalMatrix(m)
	assert.Equal(t, m, nd.LocalMatrix())

	// LocalMatrix returns a copy; mutating it does not touch the node
	lm := nd.LocalMatrix()
	lm.SetIdentity()
	assert.Equal(t, m, nd.LocalMatrix())
}

func TestNodeChildren(t *testing.T) {
	parent := NewNode()
	c1 := NewNode()
	c2 := NewNode()
	c3 := NewNode()
	parent.AddChild(c1).AddChild(c2).AddChild(c3)

	assert.Equal(t, 3, parent.NumChildren())
	assert.Same(t, c1, parent.Child(0))
	assert.Same(t, c2, parent.Child(1))
	assert.Same(t, c3, parent.Child(2))

	assert.True(t, parent.RemoveChild(c2))
	assert.False(t, parent.RemoveChild(c2))
	assert.Equal(t, 2, parent.NumChildren())
	assert.Same(t, c3, parent.Child(1))
}

func TestNodeSetModel(t *testing.T) {
	type wireModel struct{ name string }
	nd := NewNode().SetModel(&wireModel{name: "cube"})
	wm, ok := nd.Model().(*wireModel)
	assert.True(t, ok)
	assert.Equal(t, "cube", wm.name)
}
