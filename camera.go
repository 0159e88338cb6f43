// Copyright (c) 2025, The scene3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene3d

import (
	"errors"
	"fmt"

	"github.com/softrender/scene3d/math32"
)

// Projection selects the shape of a camera's view volume.
type Projection int32

const (
	// Perspective is an infinite pyramid with its apex at the eye.
	Perspective Projection = iota

	// Orthographic is an infinite rectangular prism parallel to the
	// viewing axis.
	Orthographic
)

func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	}
	return fmt.Sprintf("Projection(%d)", int32(p))
}

var (
	// ErrInvalidParameter is returned by camera configuration methods
	// when a numeric argument is NaN or infinite.
	ErrInvalidParameter = errors.New("scene3d: invalid parameter")

	// ErrDegenerateVolume is returned by [Camera.Validate] when the view
	// rectangle has zero width or height. The configuration methods
	// accept such bounds without error; the resulting normalization
	// matrix has infinite or undefined scale factors.
	ErrDegenerateVolume = errors.New("scene3d: degenerate view volume")
)

// Camera describes a view volume: the view rectangle on the near plane,
// a perspective or orthographic projection, and a world-space placement.
// Its [Camera.NormalizationMatrix] maps the view volume into the canonical
// clip volume consumed by the downstream clip and rasterize stages.
//
// The zero value is not configured; call [Camera.Defaults] or one of the
// Set methods before use. Fields are only reachable through the accessor
// and configuration methods, so a Camera handed to a renderer cannot be
// reshaped behind its back except through those methods.
type Camera struct {
	left   float32
	right  float32
	bottom float32
	top    float32

	// near is stored negated: the near plane sits at z = near in view
	// coordinates, so a distance d in front of the eye is stored as -d.
	near float32

	proj Projection

	// placement is the camera translation in world space. It is a scene
	// assembly convenience and takes no part in the clip-volume math.
	placement math32.Vector3
}

// Defaults configures the standard symmetric perspective volume:
// bounds (-1, 1, -1, 1) at near distance 1, placed at the origin.
func (cm *Camera) Defaults() {
	cm.SetPerspective(-1, 1, -1, 1, 1)
	cm.placement.SetZero()
}

// checkFinite returns ErrInvalidParameter (wrapped) if any value is
// NaN or infinite.
func checkFinite(vals ...float32) error {
	for _, v := range vals {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value %v", ErrInvalidParameter, v)
		}
	}
	return nil
}

// SetPerspective configures a perspective view volume: the infinite pyramid
// with its apex at the eye and base rectangle (left, bottom)..(right, top)
// in the plane z = -near. near is the distance to the near plane; it may be
// negative to place the plane behind the eye. Degenerate bounds
// (left == right or bottom == top) are accepted; see [Camera.Validate].
func (cm *Camera) SetPerspective(left, right, bottom, top, near float32) error {
	if err := checkFinite(left, right, bottom, top, near); err != nil {
		return err
	}
	cm.left = left
	cm.right = right
	cm.bottom = bottom
	cm.top = top
	cm.near = -near
	cm.proj = Perspective
	return nil
}

// SetPerspectiveFOVY configures a symmetric perspective view volume from a
// vertical field of view angle in degrees, a width:height aspect ratio, and
// the near plane distance: top = near*tan(fovy/2), right = top*aspect.
func (cm *Camera) SetPerspectiveFOVY(fovy, aspect, near float32) error {
	if err := checkFinite(fovy, aspect, near); err != nil {
		return err
	}
	top := near * math32.Tan(math32.DegToRad(fovy)/2)
	right := top * aspect
	return cm.SetPerspective(-right, right, -top, top, near)
}

// SetPerspectiveFocalLength configures a perspective view volume whose
// bounds are given in the plane at distance focal, rescaled to the
// unit-distance convention used internally. The near plane is pinned at
// distance 0.1 regardless of focal.
//
// TODO: confirm the rescale direction against the downstream projection;
// dividing by focal shrinks the rectangle for focal > 1 where multiplying
// may have been intended. Kept as is for compatibility.
func (cm *Camera) SetPerspectiveFocalLength(left, right, bottom, top, focal float32) error {
	if err := checkFinite(left, right, bottom, top, focal); err != nil {
		return err
	}
	return cm.SetPerspective(left/focal, right/focal, bottom/focal, top/focal, 0.1)
}

// SetOrthographic configures an orthographic view volume: the infinite
// rectangular prism with cross-section (left, bottom)..(right, top),
// parallel to the viewing axis. near is stored but does not shape the
// prism. Degenerate bounds are accepted; see [Camera.Validate].
func (cm *Camera) SetOrthographic(left, right, bottom, top, near float32) error {
	if err := checkFinite(left, right, bottom, top, near); err != nil {
		return err
	}
	cm.left = left
	cm.right = right
	cm.bottom = bottom
	cm.top = top
	cm.near = -near
	cm.proj = Orthographic
	return nil
}

// SetOrthographicFOVY configures a symmetric orthographic view volume from
// a vertical field of view angle in degrees and an aspect ratio:
// top = tan(fovy/2), right = top*aspect. near is stored unchanged and does
// not scale the bounds.
func (cm *Camera) SetOrthographicFOVY(fovy, aspect, near float32) error {
	if err := checkFinite(fovy, aspect, near); err != nil {
		return err
	}
	top := math32.Tan(math32.DegToRad(fovy) / 2)
	right := top * aspect
	return cm.SetOrthographic(-right, right, -top, top, near)
}

// SetPlacement sets the camera translation in world space.
func (cm *Camera) SetPlacement(x, y, z float32) error {
	if err := checkFinite(x, y, z); err != nil {
		return err
	}
	cm.placement.Set(x, y, z)
	return nil
}

// WithNear returns a copy of this camera with the near plane at the given
// distance. The receiver is not modified.
func (cm Camera) WithNear(near float32) Camera {
	nc := cm
	nc.near = -near
	return nc
}

// WithPlacement returns a copy of this camera placed at the given world
// coordinates. The receiver is not modified.
func (cm Camera) WithPlacement(x, y, z float32) Camera {
	nc := cm
	nc.placement = math32.Vec3(x, y, z)
	return nc
}

// Left returns the left bound of the view rectangle.
func (cm *Camera) Left() float32 { return cm.left }

// Right returns the right bound of the view rectangle.
func (cm *Camera) Right() float32 { return cm.right }

// Bottom returns the bottom bound of the view rectangle.
func (cm *Camera) Bottom() float32 { return cm.bottom }

// Top returns the top bound of the view rectangle.
func (cm *Camera) Top() float32 { return cm.top }

// Near returns the near plane distance (the near plane sits at z = -Near()
// in view coordinates).
func (cm *Camera) Near() float32 { return -cm.near }

// Proj returns the active projection variant.
func (cm *Camera) Proj() Projection { return cm.proj }

// Placement returns the camera translation in world space.
func (cm *Camera) Placement() math32.Vector3 { return cm.placement }

// NormalizationMatrix returns the matrix mapping the current view volume
// into the canonical clip volume. It is recomputed on every call, so it is
// always current with the camera's fields.
//
// Both variants first cancel the asymmetry of the view rectangle by
// translating its center to the viewing axis, then scale x and y so the
// rectangle spans [-1, 1] in each. The perspective variant additionally
// scales x and y by 1/near to normalize the pyramid to the unit-distance
// convention; z passes through untouched in both (the perspective divide
// happens downstream, at projection to the image plane).
func (cm *Camera) NormalizationMatrix() *math32.Matrix4 {
	center := math32.Translate4(-(cm.right+cm.left)/2, -(cm.top+cm.bottom)/2, 0)
	span := math32.Scale4(2/(cm.right-cm.left), 2/(cm.top-cm.bottom), 1)
	nm := span.Mul(center)
	switch cm.proj {
	case Perspective:
		unit := math32.Scale4(1/-cm.near, 1/-cm.near, 1)
		nm = unit.Mul(nm)
	case Orthographic:
		// cross-section scaling only; depth is untouched
	}
	return nm
}

// Validate reports whether the view volume is non-degenerate, returning
// ErrDegenerateVolume (wrapped) when the view rectangle has zero width or
// height. The core never calls this itself: degenerate bounds silently
// yield a singular normalization matrix, and callers wanting the stricter
// behavior check here after configuring.
func (cm *Camera) Validate() error {
	if cm.left == cm.right {
		return fmt.Errorf("%w: left == right == %g", ErrDegenerateVolume, cm.left)
	}
	if cm.bottom == cm.top {
		return fmt.Errorf("%w: bottom == top == %g", ErrDegenerateVolume, cm.bottom)
	}
	return nil
}

// String returns a human-readable dump of the camera fields plus the
// derived field of view angle and aspect ratio. Diagnostic only.
func (cm Camera) String() string {
	fovy := math32.RadToDeg(math32.Atan(cm.top) + math32.Atan(-cm.bottom))
	aspect := (cm.right - cm.left) / (cm.top - cm.bottom)
	return fmt.Sprintf("%v camera: left: %g right: %g bottom: %g top: %g near: %g placement: %v fovy: %g aspect: %g",
		cm.proj, cm.left, cm.right, cm.bottom, cm.top, -cm.near, cm.placement, fovy, aspect)
}
