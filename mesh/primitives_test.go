package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// checkTriangles walks every indexed triangle and asserts indices stay in
// range and the winding is clockwise when seen from the stored normal
// side, which is what the clockwise front-face setting expects after the
// Y-flipped projection.
func checkTriangles(t *testing.T, m Mesh) {
	t.Helper()
	if len(m.Indices)%3 != 0 {
		t.Fatalf("len(Indices) = %d, not a multiple of 3", len(m.Indices))
	}
	for tri := 0; tri < len(m.Indices); tri += 3 {
		for k := 0; k < 3; k++ {
			if idx := m.Indices[tri+k]; int(idx) >= len(m.Vertices) {
				t.Fatalf("index %d out of range (%d vertices)", idx, len(m.Vertices))
			}
		}
		v0 := m.Vertices[m.Indices[tri]]
		v1 := m.Vertices[m.Indices[tri+1]]
		v2 := m.Vertices[m.Indices[tri+2]]

		e1 := v1.Position.Sub(v0.Position)
		e2 := v2.Position.Sub(v0.Position)
		if got := e1.Cross(e2).Dot(v0.Normal); got >= 0 {
			t.Errorf("triangle %d winding dot = %v, want < 0", tri/3, got)
		}
	}
}

func TestCubeShape(t *testing.T) {
	m := Cube()

	if len(m.Vertices) != 24 {
		t.Errorf("len(Vertices) = %d, want 24", len(m.Vertices))
	}
	if len(m.Indices) != 36 {
		t.Errorf("len(Indices) = %d, want 36", len(m.Indices))
	}
	if got := m.TriangleCount(); got != 12 {
		t.Errorf("TriangleCount() = %d, want 12", got)
	}
	checkTriangles(t, m)
}

func TestCubeVertices(t *testing.T) {
	for i, v := range Cube().Vertices {
		for c := 0; c < 3; c++ {
			if p := v.Position[c]; p != 0.5 && p != -0.5 {
				t.Errorf("vertex %d position[%d] = %v, want ±0.5", i, c, p)
			}
		}
		// Each vertex sits on the face plane its normal names.
		if got := v.Position.Dot(v.Normal); got != 0.5 {
			t.Errorf("vertex %d position·normal = %v, want 0.5", i, got)
		}
		if v.Normal.Len() != 1 {
			t.Errorf("vertex %d normal length = %v, want 1", i, v.Normal.Len())
		}
	}
}

func TestCubeColorsFollowTexCoords(t *testing.T) {
	for i, v := range Cube().Vertices {
		if v.Color.X() != v.TexCoord.X() || v.Color.Y() != v.TexCoord.Y() {
			t.Errorf("vertex %d color = %v, texcoord = %v", i, v.Color, v.TexCoord)
		}
		if v.Color.Z() != 0 {
			t.Errorf("vertex %d color z = %v, want 0", i, v.Color.Z())
		}
	}
}

func TestPlaneGrids(t *testing.T) {
	tests := []struct {
		name        string
		mesh        Mesh
		vertices    int
		indices     int
		normal      mgl32.Vec3
		first, last mgl32.Vec3
	}{
		{
			name:     "xz minimal",
			mesh:     PlaneXZ(2, 2),
			vertices: 4,
			indices:  6,
			normal:   mgl32.Vec3{0, 1, 0},
			first:    mgl32.Vec3{-0.5, 0, 0.5},
			last:     mgl32.Vec3{0.5, 0, -0.5},
		},
		{
			name:     "xz clamped",
			mesh:     PlaneXZ(0, 0),
			vertices: 4,
			indices:  6,
			normal:   mgl32.Vec3{0, 1, 0},
			first:    mgl32.Vec3{-0.5, 0, 0.5},
			last:     mgl32.Vec3{0.5, 0, -0.5},
		},
		{
			name:     "xz rectangular",
			mesh:     PlaneXZ(3, 2),
			vertices: 6,
			indices:  12,
			normal:   mgl32.Vec3{0, 1, 0},
			first:    mgl32.Vec3{-0.5, 0, 0.5},
			last:     mgl32.Vec3{0.5, 0, -0.5},
		},
		{
			name:     "xy",
			mesh:     PlaneXY(2, 2),
			vertices: 4,
			indices:  6,
			normal:   mgl32.Vec3{0, 0, 1},
			first:    mgl32.Vec3{-0.5, -0.5, 0},
			last:     mgl32.Vec3{0.5, 0.5, 0},
		},
		{
			name:     "yz",
			mesh:     PlaneYZ(2, 2),
			vertices: 4,
			indices:  6,
			normal:   mgl32.Vec3{1, 0, 0},
			first:    mgl32.Vec3{0, -0.5, 0.5},
			last:     mgl32.Vec3{0, 0.5, -0.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.mesh
			if len(m.Vertices) != tt.vertices {
				t.Fatalf("len(Vertices) = %d, want %d", len(m.Vertices), tt.vertices)
			}
			if len(m.Indices) != tt.indices {
				t.Fatalf("len(Indices) = %d, want %d", len(m.Indices), tt.indices)
			}
			if got := m.Vertices[0].Position; got != tt.first {
				t.Errorf("first position = %v, want %v", got, tt.first)
			}
			if got := m.Vertices[len(m.Vertices)-1].Position; got != tt.last {
				t.Errorf("last position = %v, want %v", got, tt.last)
			}
			for i, v := range m.Vertices {
				if v.Normal != tt.normal {
					t.Errorf("vertex %d normal = %v, want %v", i, v.Normal, tt.normal)
				}
			}
			checkTriangles(t, m)
		})
	}
}

func TestPlaneTexCoordsSpanUnitSquare(t *testing.T) {
	m := PlaneXZ(3, 3)
	want := []mgl32.Vec2{
		{0, 0}, {0.5, 0}, {1, 0},
		{0, 0.5}, {0.5, 0.5}, {1, 0.5},
		{0, 1}, {0.5, 1}, {1, 1},
	}
	if len(m.Vertices) != len(want) {
		t.Fatalf("len(Vertices) = %d, want %d", len(m.Vertices), len(want))
	}
	for i, v := range m.Vertices {
		if v.TexCoord != want[i] {
			t.Errorf("vertex %d texcoord = %v, want %v", i, v.TexCoord, want[i])
		}
		if v.Color.X() != v.TexCoord.X() || v.Color.Y() != v.TexCoord.Y() {
			t.Errorf("vertex %d color = %v, texcoord = %v", i, v.Color, v.TexCoord)
		}
	}
}
