// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shading

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/forward/transform"
)

// PassthroughColor returns the unlit fragment color for an interpolated
// vertex color: the color as given, alpha one.
func PassthroughColor(color mgl32.Vec3) mgl32.Vec4 {
	return color.Vec4(1)
}

// NormalColor maps a world-space normal to the normal-debug fragment
// color: each component remapped from [-1, 1] to [0, 1], alpha one. The
// normal is used as given, so interpolated normals shade slightly toward
// grey between vertices.
func NormalColor(normal mgl32.Vec3) mgl32.Vec4 {
	c := normal.Mul(0.5).Add(mgl32.Vec3{0.5, 0.5, 0.5})
	return c.Vec4(1)
}

// LinearizeDepth maps a [0, 1] depth buffer value to view-space distance
// as a fraction of the far plane, using the shared clip planes. Geometry
// on the near plane maps to near/far, geometry on the far plane to one.
func LinearizeDepth(depth float32) float32 {
	near, far := transform.NearPlane, transform.FarPlane
	ndc := depth*2 - 1
	linear := (2 * near * far) / (far + near - ndc*(far-near))
	return linear / far
}

// DepthColor maps a depth buffer value to the depth-debug fragment color:
// the linearized depth in all three channels, alpha one.
func DepthColor(depth float32) mgl32.Vec4 {
	d := LinearizeDepth(depth)
	return mgl32.Vec4{d, d, d, 1}
}
