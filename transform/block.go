// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package transform supplies the per-draw matrix math of the pipeline
// contract: the 192-byte transform block, clip-space position, the
// normal transform, and the projection and view constructors that fix
// the library's coordinate convention in one place.
//
// # Coordinate convention
//
// All variants share one convention: right-handed view space, zero-to-one
// clip depth, and a projection with Y flipped for surfaces whose origin is
// top-left. With the flip, front faces wind clockwise.
package transform

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/forward"
)

// Block byte sizes. A marshaled block is three column-major 4x4 float32
// matrices: Model at offset 0, View at 64, Proj at 128.
const (
	// MatrixSize is the byte size of one marshaled matrix.
	MatrixSize = 64

	// BlockSize is the byte size of a marshaled block.
	BlockSize = 3 * MatrixSize
)

// Block is the transform block every variant receives, whether pushed per
// draw or bound as a uniform buffer. Field order matches the marshaled
// layout.
type Block struct {
	Model mgl32.Mat4
	View  mgl32.Mat4
	Proj  mgl32.Mat4
}

// Identity returns a block of identity matrices.
func Identity() Block {
	return Block{
		Model: mgl32.Ident4(),
		View:  mgl32.Ident4(),
		Proj:  mgl32.Ident4(),
	}
}

// Marshal encodes the block for GPU upload: little-endian float32,
// column-major, Model then View then Proj.
func (b Block) Marshal() []byte {
	buf := make([]byte, BlockSize)
	putMat4(buf[0*MatrixSize:], b.Model)
	putMat4(buf[1*MatrixSize:], b.View)
	putMat4(buf[2*MatrixSize:], b.Proj)
	return buf
}

// putMat4 writes the matrix's 16 floats in storage order.
func putMat4(dst []byte, m mgl32.Mat4) {
	for i, v := range m {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
}

// ClipPosition transforms an object-space position into clip space:
// Proj * View * Model * [p, 1]. Perspective division is the rasterizer's
// job and is not applied here.
func (b Block) ClipPosition(p mgl32.Vec3) mgl32.Vec4 {
	return b.Proj.Mul4(b.View).Mul4(b.Model).Mul4x1(p.Vec4(1))
}

// NormalMatrix returns the world-space normal transform of the block's
// model matrix. See the package-level NormalMatrix.
func (b Block) NormalMatrix() (mgl32.Mat3, error) {
	return NormalMatrix(b.Model)
}

// NormalMatrix returns the transpose of the inverse of the model matrix's
// upper-left 3x3, the transform that keeps normals perpendicular under
// non-uniform scale. A singular model matrix has no normal transform; the
// caller must rule it out before drawing, and supplying one is reported
// as a *forward.PreconditionViolation wrapping forward.ErrSingularModel.
func NormalMatrix(model mgl32.Mat4) (mgl32.Mat3, error) {
	m := model.Mat3()
	if m.Det() == 0 {
		return mgl32.Mat3{}, &forward.PreconditionViolation{
			Op:  "transform: normal matrix",
			Err: forward.ErrSingularModel,
		}
	}
	return m.Inv().Transpose(), nil
}
