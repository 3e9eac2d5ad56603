// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a decomposed model transform: scale, then rotation, then
// translation.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Translated returns a copy of the transform moved by delta.
func (t Transform) Translated(delta mgl32.Vec3) Transform {
	t.Translation = t.Translation.Add(delta)
	return t
}

// Rotated returns a copy of the transform rotated by angle radians around
// axis, applied after the existing rotation.
func (t Transform) Rotated(angle float32, axis mgl32.Vec3) Transform {
	t.Rotation = mgl32.QuatRotate(angle, axis.Normalize()).Mul(t.Rotation)
	return t
}

// Scaled returns a copy of the transform with its scale multiplied
// componentwise by factor.
func (t Transform) Scaled(factor mgl32.Vec3) Transform {
	t.Scale = mgl32.Vec3{
		t.Scale.X() * factor.X(),
		t.Scale.Y() * factor.Y(),
		t.Scale.Z() * factor.Z(),
	}
	return t
}

// Mat4 returns the model matrix: translation * rotation * scale.
func (t Transform) Mat4() mgl32.Mat4 {
	tr := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	sc := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return tr.Mul4(t.Rotation.Mat4()).Mul4(sc)
}
