// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Clip planes shared by every variant. The depth-debug fragment stage
// linearizes against the same pair, so hosts that project with other
// planes get a mislabeled depth visualization.
const (
	// NearPlane is the near clip distance of the shared projection.
	NearPlane float32 = 0.1

	// FarPlane is the far clip distance of the shared projection.
	FarPlane float32 = 100.0
)

// Default projection parameters.
const (
	// DefaultFOVY is the default vertical field of view in radians.
	DefaultFOVY float32 = math.Pi / 4

	// DefaultAspect is the default width-over-height aspect ratio.
	DefaultAspect float32 = 800.0 / 600.0
)

// Perspective returns a right-handed perspective projection mapping view
// depth to the [0, 1] clip range, with Y negated so clip space matches a
// top-left surface origin. fovy is the vertical field of view in radians,
// aspect is width over height.
func Perspective(fovy, aspect, near, far float32) mgl32.Mat4 {
	f := float32(1.0 / math.Tan(float64(fovy)/2))
	r := far / (near - far)

	var m mgl32.Mat4
	m[0] = f / aspect
	m[5] = -f
	m[10] = r
	m[11] = -1
	m[14] = r * near
	return m
}

// DefaultPerspective returns Perspective with the package defaults and the
// shared clip planes.
func DefaultPerspective() mgl32.Mat4 {
	return Perspective(DefaultFOVY, DefaultAspect, NearPlane, FarPlane)
}

// LookTo returns a right-handed view matrix for an eye looking along
// front, which need not be normalized.
func LookTo(eye, front, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, eye.Add(front), up)
}

// LookAt returns a right-handed view matrix for an eye looking at center.
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, center, up)
}

// Camera is a free-look eye: a position and a facing direction. Its zero
// value is unusable; start from NewCamera.
type Camera struct {
	// Position is the eye position in world space.
	Position mgl32.Vec3

	// Front is the facing direction. Kept normalized.
	Front mgl32.Vec3

	// Up is the world up direction. Kept normalized.
	Up mgl32.Vec3
}

// NewCamera returns a camera at position facing front with world up
// +Y.
func NewCamera(position, front mgl32.Vec3) Camera {
	return Camera{
		Position: position,
		Front:    front.Normalize(),
		Up:       mgl32.Vec3{0, 1, 0},
	}
}

// View returns the camera's view matrix.
func (c Camera) View() mgl32.Mat4 {
	return LookTo(c.Position, c.Front, c.Up)
}

// Right returns the camera's right direction, normalized.
func (c Camera) Right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// Advance moves the camera along its facing direction by dist, negative
// to back away.
func (c *Camera) Advance(dist float32) {
	c.Position = c.Position.Add(c.Front.Mul(dist))
}

// Strafe moves the camera along its right direction by dist, negative to
// move left.
func (c *Camera) Strafe(dist float32) {
	c.Position = c.Position.Add(c.Right().Mul(dist))
}

// Climb moves the camera along the up direction by dist, negative to
// descend.
func (c *Camera) Climb(dist float32) {
	c.Position = c.Position.Add(c.Up.Mul(dist))
}
