// Copyright (c) 2025, The scene3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene3d

import (
	"errors"
	"fmt"

	"github.com/softrender/scene3d/math32"
)

// ErrSavedCameraNotFound is returned by [Scene.SetCamera] when no camera
// was saved under the given name.
var ErrSavedCameraNotFound = errors.New("scene3d: saved camera not found")

// Scene is the unit handed to the rendering pipeline: one [Camera] plus an
// ordered list of root [Node] trees, which it exclusively owns.
//
// A Scene is built once per frame configuration and mutated between renders
// by updating node matrices or camera parameters; the pipeline reads it
// synchronously per render call. Access from multiple goroutines must be
// serialized by the caller.
type Scene struct {
	// Camera determines the view onto the scene.
	Camera Camera

	roots []*Node

	// savedCams holds cameras stashed by SaveCamera, so a scene can be
	// viewed from named configurations and restored later.
	savedCams map[string]Camera
}

// NewScene returns a new [Scene] with a default perspective camera and no
// nodes.
func NewScene() *Scene {
	sc := &Scene{}
	sc.Camera.Defaults()
	return sc
}

// AddRoot appends a root node to the scene, transferring ownership of the
// tree under it. Root order is insertion order and determines draw order
// downstream.
func (sc *Scene) AddRoot(nd *Node) *Scene {
	sc.roots = append(sc.roots, nd)
	return sc
}

// RemoveRoot removes the first occurrence of nd from the root list,
// releasing ownership, and reports whether it was found.
func (sc *Scene) RemoveRoot(nd *Node) bool {
	for i, rt := range sc.roots {
		if rt == nd {
			sc.roots = append(sc.roots[:i], sc.roots[i+1:]...)
			return true
		}
	}
	return false
}

// NumRoots returns the number of root nodes.
func (sc *Scene) NumRoots() int {
	return len(sc.roots)
}

// Root returns the i-th root node in insertion order.
func (sc *Scene) Root(i int) *Node {
	return sc.roots[i]
}

// Continue and Break are return values for [Scene.WalkWorld] functions,
// signaling whether to descend into a node's children.
const (
	Continue = true
	Break    = false
)

// WalkWorld traverses every node depth-first, root-most first, calling fn
// with each node and its freshly composed world matrix. A node's world
// matrix is fully resolved before its children are visited; siblings are
// visited in insertion order. fn returning [Break] skips the children of
// that node. World matrices are recomputed on every walk, so the traversal
// is always current with the node transforms.
func (sc *Scene) WalkWorld(fn func(nd *Node, world *math32.Matrix4) bool) {
	ident := math32.Identity4()
	for _, rt := range sc.roots {
		walkWorld(rt, ident, fn)
	}
}

func walkWorld(nd *Node, ancestor *math32.Matrix4, fn func(nd *Node, world *math32.Matrix4) bool) {
	world := nd.WorldMatrix(ancestor)
	if !fn(nd, world) {
		return
	}
	for _, kid := range nd.children {
		walkWorld(kid, world, fn)
	}
}

// SaveCamera saves the current camera under the given name, so the view
// can be restored later with [Scene.SetCamera].
func (sc *Scene) SaveCamera(name string) {
	if sc.savedCams == nil {
		sc.savedCams = map[string]Camera{}
	}
	sc.savedCams[name] = sc.Camera
}

// SetCamera restores a camera previously saved under the given name.
func (sc *Scene) SetCamera(name string) error {
	cm, ok := sc.savedCams[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrSavedCameraNotFound, name)
	}
	sc.Camera = cm
	return nil
}
