// Copyright (c) 2025, The scene3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene3d models a 3D scene as a hierarchical tree of positioned
// nodes together with a camera, for consumption by a software clip and
// rasterize pipeline.
//
// A [Node] pairs a local transform matrix with an optional renderable
// [Model] and an ordered list of exclusively owned children; world
// transforms compose parent to child, root-most first. A [Camera] holds a
// perspective or orthographic view-volume description and derives the
// normalization matrix mapping that volume onto the canonical [-1, 1]
// cross-section shared by both projections. A [Scene] bundles one camera
// with the root nodes and is the unit handed to a [Renderer].
//
// All operations are synchronous, in-process computations with no shared
// state beyond the value operated on; callers serialize any concurrent
// scene mutation themselves.
package scene3d
