// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// faceUV is the texture coordinate walk of a quad's four corners. Colors
// reuse it, so every face grades black, green, yellow, red.
var faceUV = [4]mgl32.Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

// Cube returns a unit cube centered on the origin with sharp edges: four
// vertices per face so face normals stay uncut, 36 indices.
func Cube() Mesh {
	faces := []struct {
		normal mgl32.Vec3
		pos    [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{
			{-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, -0.5, 0.5},
		}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{
			{0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {0.5, -0.5, -0.5},
		}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{
			{0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}, {-0.5, -0.5, -0.5},
		}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{
			{-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5}, {-0.5, -0.5, 0.5},
		}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{
			{-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5},
		}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{
			{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, -0.5, -0.5},
		}},
	}

	var m Mesh
	m.Vertices = make([]Vertex, 0, len(faces)*4)
	m.Indices = make([]uint32, 0, len(faces)*6)
	for f, face := range faces {
		for i := range face.pos {
			m.Vertices = append(m.Vertices, Vertex{
				Position: face.pos[i],
				Normal:   face.normal,
				TexCoord: faceUV[i],
				Color:    mgl32.Vec3{faceUV[i].X(), faceUV[i].Y(), 0},
			})
		}
		b := uint32(f * 4)
		m.Indices = append(m.Indices, b, b+1, b+3, b+1, b+2, b+3)
	}
	return m
}

// PlaneXZ returns a grid in the XZ plane spanning [-0.5, 0.5] on both
// axes, normals up. cols and rows count vertices per side; fewer than two
// of either is clamped to two.
func PlaneXZ(cols, rows int) Mesh {
	return plane(cols, rows, func(u, v float32) Vertex {
		return Vertex{
			Position: mgl32.Vec3{u - 0.5, 0, 0.5 - v},
			Normal:   mgl32.Vec3{0, 1, 0},
			TexCoord: mgl32.Vec2{u, v},
			Color:    mgl32.Vec3{u, v, 0},
		}
	})
}

// PlaneXY returns a grid in the XY plane spanning [-0.5, 0.5] on both
// axes, normals out of the screen.
func PlaneXY(cols, rows int) Mesh {
	return plane(cols, rows, func(u, v float32) Vertex {
		return Vertex{
			Position: mgl32.Vec3{u - 0.5, v - 0.5, 0},
			Normal:   mgl32.Vec3{0, 0, 1},
			TexCoord: mgl32.Vec2{u, v},
			Color:    mgl32.Vec3{u, v, 0},
		}
	})
}

// PlaneYZ returns a grid in the YZ plane spanning [-0.5, 0.5] on both
// axes, normals along +X.
func PlaneYZ(cols, rows int) Mesh {
	return plane(cols, rows, func(u, v float32) Vertex {
		return Vertex{
			Position: mgl32.Vec3{0, v - 0.5, 0.5 - u},
			Normal:   mgl32.Vec3{1, 0, 0},
			TexCoord: mgl32.Vec2{u, v},
			Color:    mgl32.Vec3{u, v, 0},
		}
	})
}

func plane(cols, rows int, at func(u, v float32) Vertex) Mesh {
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}

	var m Mesh
	m.Vertices = make([]Vertex, 0, cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			u := float32(i) / float32(cols-1)
			v := float32(j) / float32(rows-1)
			m.Vertices = append(m.Vertices, at(u, v))
		}
	}

	m.Indices = make([]uint32, 0, (cols-1)*(rows-1)*6)
	for j := 0; j < rows-1; j++ {
		for i := 0; i < cols-1; i++ {
			i1 := uint32(i + j*cols)
			i2 := uint32(i + (j+1)*cols)
			i3 := uint32(i + 1 + (j+1)*cols)
			i4 := uint32(i + 1 + j*cols)
			m.Indices = append(m.Indices, i1, i2, i4, i2, i3, i4)
		}
	}
	return m
}
