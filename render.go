// Copyright (c) 2025, The scene3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene3d

import "image"

// Model is the renderable geometry reference carried by a [Node]. The
// scene core stores and hands it through without interpreting it; the
// rendering pipeline defines the concrete types it accepts.
type Model any

// Renderer is the boundary contract toward the clip and rasterize
// pipeline, which is outside this package. An implementation is expected
// to walk the scene with [Scene.WalkWorld], obtain the camera's
// [Camera.NormalizationMatrix], and carry each node's world matrix plus
// its attached [Model] through clipping and rasterization into the given
// viewport.
//
// The core performs no validation on behalf of a renderer: a degenerate
// camera volume (see [Camera.Validate]) surfaces as numerically unstable
// output here, not as an error from the scene types.
type Renderer interface {
	Render(sc *Scene, viewport image.Rectangle) error
}
