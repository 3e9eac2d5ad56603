package shading

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/forward/transform"
)

func TestPassthroughColor(t *testing.T) {
	got := PassthroughColor(mgl32.Vec3{0.2, 0.4, 0.6})
	want := mgl32.Vec4{0.2, 0.4, 0.6, 1}
	if got != want {
		t.Errorf("PassthroughColor() = %v, want %v", got, want)
	}
}

func TestNormalColor(t *testing.T) {
	tests := []struct {
		name   string
		normal mgl32.Vec3
		want   mgl32.Vec4
	}{
		{"up", mgl32.Vec3{0, 1, 0}, mgl32.Vec4{0.5, 1, 0.5, 1}},
		{"negative x", mgl32.Vec3{-1, 0, 0}, mgl32.Vec4{0, 0.5, 0.5, 1}},
		{"zero maps to mid grey", mgl32.Vec3{}, mgl32.Vec4{0.5, 0.5, 0.5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalColor(tt.normal)
			for i := range tt.want {
				if diff := got[i] - tt.want[i]; diff > epsilon || diff < -epsilon {
					t.Fatalf("NormalColor(%v) = %v, want %v", tt.normal, got, tt.want)
				}
			}
		})
	}
}

func TestLinearizeDepth(t *testing.T) {
	nearOverFar := transform.NearPlane / transform.FarPlane

	tests := []struct {
		name  string
		depth float32
		want  float32
	}{
		{"near plane", 0, nearOverFar},
		{"far plane", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearizeDepth(tt.depth)
			if diff := got - tt.want; diff > epsilon || diff < -epsilon {
				t.Errorf("LinearizeDepth(%v) = %v, want %v", tt.depth, got, tt.want)
			}
		})
	}
}

func TestLinearizeDepthMonotonic(t *testing.T) {
	prev := LinearizeDepth(0)
	for _, depth := range []float32{0.25, 0.5, 0.75, 1} {
		got := LinearizeDepth(depth)
		if got <= prev {
			t.Fatalf("LinearizeDepth(%v) = %v, not above %v", depth, got, prev)
		}
		prev = got
	}
}

func TestDepthColor(t *testing.T) {
	got := DepthColor(1)
	want := mgl32.Vec4{1, 1, 1, 1}
	for i := range want {
		if diff := got[i] - want[i]; diff > epsilon || diff < -epsilon {
			t.Fatalf("DepthColor(1) = %v, want %v", got, want)
		}
	}

	if got := DepthColor(0.5); got.X() != got.Y() || got.Y() != got.Z() {
		t.Errorf("DepthColor(0.5) = %v, want grayscale", got)
	}
}
