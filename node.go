// Copyright (c) 2025, The scene3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene3d

import (
	"github.com/softrender/scene3d/math32"
)

// Node is one positioned element of the scene graph: a local transform,
// an optional renderable [Model], and an ordered list of child nodes.
//
// A parent exclusively owns its children. Adding the same node under two
// parents, or forming a cycle, double-applies transforms and is a caller
// error that is not checked. Nodes carry no parent back-pointer.
type Node struct {
	matrix   math32.Matrix4
	model    Model
	children []*Node
}

// NewNode returns a new [Node] with an identity local transform and no
// model or children.
func NewNode() *Node {
	nd := &Node{}
	nd.matrix.SetIdentity()
	return nd
}

// LocalMatrix returns a copy of the node's local transform.
func (nd *Node) LocalMatrix() math32.Matrix4 {
	return nd.matrix
}

// SetLocalMatrix replaces the node's local transform.
func (nd *Node) SetLocalMatrix(m math32.Matrix4) *Node {
	nd.matrix = m
	return nd
}

// ResetIdentity resets the local transform to the identity matrix.
// It anchors a chain of [Node.Translate], rotate and [Node.Scale] calls
// that build the transform in application order.
func (nd *Node) ResetIdentity() *Node {
	nd.matrix.SetIdentity()
	return nd
}

// Translate right-multiplies a translation by (x, y, z) onto the local
// transform.
func (nd *Node) Translate(x, y, z float32) *Node {
	nd.matrix.SetMul(math32.Translate4(x, y, z))
	return nd
}

// RotateX right-multiplies a rotation around the X axis by angle degrees
// onto the local transform.
func (nd *Node) RotateX(angle float32) *Node {
	nd.matrix.SetMul(math32.RotateX4(math32.DegToRad(angle)))
	return nd
}

// RotateY right-multiplies a rotation around the Y axis by angle degrees
// onto the local transform.
func (nd *Node) RotateY(angle float32) *Node {
	nd.matrix.SetMul(math32.RotateY4(math32.DegToRad(angle)))
	return nd
}

// RotateZ right-multiplies a rotation around the Z axis by angle degrees
// onto the local transform.
func (nd *Node) RotateZ(angle float32) *Node {
	nd.matrix.SetMul(math32.RotateZ4(math32.DegToRad(angle)))
	return nd
}

// RotateAxis right-multiplies a rotation around the given normalized axis
// by angle degrees onto the local transform.
func (nd *Node) RotateAxis(axis math32.Vector3, angle float32) *Node {
	nd.matrix.SetMul(math32.RotateAxis4(axis, math32.DegToRad(angle)))
	return nd
}

// Scale right-multiplies a scale by (x, y, z) onto the local transform.
func (nd *Node) Scale(x, y, z float32) *Node {
	nd.matrix.SetMul(math32.Scale4(x, y, z))
	return nd
}

// Model returns the renderable attached to this node, or nil.
func (nd *Node) Model() Model {
	return nd.model
}

// SetModel attaches a renderable to this node. The scene core never
// interprets it; the rendering pipeline does.
func (nd *Node) SetModel(m Model) *Node {
	nd.model = m
	return nd
}

// AddChild appends child to the ordered child list, transferring ownership
// of child to this node. Sibling order is insertion order and determines
// draw order downstream.
func (nd *Node) AddChild(child *Node) *Node {
	nd.children = append(nd.children, child)
	return nd
}

// RemoveChild removes the first occurrence of child from the child list,
// releasing ownership, and reports whether it was found.
func (nd *Node) RemoveChild(child *Node) bool {
	for i, kid := range nd.children {
		if kid == child {
			nd.children = append(nd.children[:i], nd.children[i+1:]...)
			return true
		}
	}
	return false
}

// NumChildren returns the number of children.
func (nd *Node) NumChildren() int {
	return len(nd.children)
}

// Child returns the i-th child in insertion order.
func (nd *Node) Child(i int) *Node {
	return nd.children[i]
}

// WorldMatrix returns ancestor * local: the matrix carrying a point from
// this node's model space to world space, given the composed world matrix
// of the owning ancestor chain. A nil ancestor means this node is a root
// and its local transform is its world transform.
func (nd *Node) WorldMatrix(ancestor *math32.Matrix4) *math32.Matrix4 {
	if ancestor == nil {
		m := nd.matrix
		return &m
	}
	return ancestor.Mul(&nd.matrix)
}
