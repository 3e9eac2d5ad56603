// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shading holds the CPU side of the fragment behaviors: the fixed
// light, the material block, and the color mappings of the debug variants.
// The WGSL stages are the shipped implementations; the functions here are
// the reference the shader tests compare against and the values hosts need
// when they upload material data.
package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// lightDirection is the single directional light of the lit behavior,
// pointing from the light toward the scene. The value is fixed; changing
// it means editing the lit shader source to match.
var lightDirection = mgl32.Vec3{0.2, -1.0, -0.3}

// LightDirection returns the fixed light direction, unnormalized, exactly
// as the lit shader declares it.
func LightDirection() mgl32.Vec3 {
	return lightDirection
}

// Attenuation returns the diffuse factor for a world-space surface normal:
// the dot of the normal with the direction toward the light, clamped at
// zero. The normal is used as given. Interpolated normals shrink toward
// face boundaries and the lit behavior keeps that darkening rather than
// renormalizing.
func Attenuation(normal mgl32.Vec3) float32 {
	d := lightDirection.Normalize().Mul(-1).Dot(normal)
	if d < 0 {
		return 0
	}
	return d
}

// Shade returns the lit fragment color for a material and a world-space
// normal: the material color scaled by Attenuation, alpha one.
func Shade(m Material, normal mgl32.Vec3) mgl32.Vec4 {
	c := m.Color.Mul(Attenuation(normal))
	return c.Vec4(1)
}
