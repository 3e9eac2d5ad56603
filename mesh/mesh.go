// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mesh provides CPU-side geometry in the interleaved vertex layout
// the pipeline variants consume, plus generators for the test primitives.
// Buffer creation stays with the host; meshes marshal themselves into
// upload-ready bytes.
package mesh

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/forward"
)

// Byte offsets of the vertex fields in the interleaved layout.
const (
	// PositionOffset is the byte offset of the position field.
	PositionOffset = 0

	// NormalOffset is the byte offset of the normal field.
	NormalOffset = 12

	// TexCoordOffset is the byte offset of the texture coordinate field.
	TexCoordOffset = 24

	// ColorOffset is the byte offset of the color field.
	ColorOffset = 32

	// VertexSize is the byte stride of one interleaved vertex.
	VertexSize = 44
)

// Vertex is one interleaved vertex. Every mesh carries all four fields;
// a variant's attribute set selects which of them its vertex stage reads.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
	Color    mgl32.Vec3
}

// marshal writes the vertex into dst, which must hold VertexSize bytes.
func (v Vertex) marshal(dst []byte) {
	putFloats(dst[PositionOffset:], v.Position[:])
	putFloats(dst[NormalOffset:], v.Normal[:])
	putFloats(dst[TexCoordOffset:], v.TexCoord[:])
	putFloats(dst[ColorOffset:], v.Color[:])
}

func putFloats(dst []byte, vals []float32) {
	for i, f := range vals {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(f))
	}
}

// Mesh is indexed triangle-list geometry.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// VertexBytes marshals the vertices for upload: little-endian float32,
// VertexSize bytes per vertex, field offsets per the package constants.
func (m *Mesh) VertexBytes() []byte {
	buf := make([]byte, len(m.Vertices)*VertexSize)
	for i, v := range m.Vertices {
		v.marshal(buf[i*VertexSize:])
	}
	return buf
}

// IndexBytes marshals the indices for upload as little-endian uint32.
func (m *Mesh) IndexBytes() []byte {
	buf := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

// TriangleCount returns the number of triangles the index list describes.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// semanticOffset maps an attribute semantic to its byte offset in the
// interleaved vertex.
func semanticOffset(sem forward.AttributeSemantic) (uint64, bool) {
	switch sem {
	case forward.SemanticPosition:
		return PositionOffset, true
	case forward.SemanticNormal:
		return NormalOffset, true
	case forward.SemanticTexCoord:
		return TexCoordOffset, true
	case forward.SemanticColor:
		return ColorOffset, true
	}
	return 0, false
}

// InterleavedLayout returns the vertex buffer layout that feeds a
// variant's attribute set from this package's interleaved vertices: full
// VertexSize stride, field offsets per the package constants, shader
// locations per the set's slots. The set must use only semantics the
// vertex carries, at their fixed formats; anything else is reported as a
// *forward.PreconditionViolation wrapping forward.ErrLayoutMismatch.
func InterleavedLayout(set forward.AttributeSet) (gputypes.VertexBufferLayout, error) {
	attrs := make([]forward.VertexAttribute, len(set))
	copy(attrs, set)
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Slot < attrs[j].Slot })

	out := make([]gputypes.VertexAttribute, 0, len(attrs))
	for _, a := range attrs {
		offset, ok := semanticOffset(a.Semantic)
		if !ok || a.Format != a.Semantic.Format() {
			return gputypes.VertexBufferLayout{}, &forward.PreconditionViolation{
				Op:  "mesh: interleaved layout",
				Err: forward.ErrLayoutMismatch,
			}
		}
		out = append(out, gputypes.VertexAttribute{
			Format:         a.Format,
			Offset:         offset,
			ShaderLocation: a.Slot,
		})
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexSize,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  out,
	}, nil
}
