// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shading

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaterialSize is the byte size of a marshaled material block. A vec3
// rounds up to 16 bytes under uniform buffer alignment rules; the final
// four bytes are padding.
const MaterialSize = 16

// Material is the per-object surface data of the lit behavior. Only a
// base color for now.
type Material struct {
	// Color is the diffuse base color, linear RGB in [0, 1].
	Color mgl32.Vec3
}

// NewMaterial returns a material with the given base color.
func NewMaterial(r, g, b float32) Material {
	return Material{Color: mgl32.Vec3{r, g, b}}
}

// Marshal encodes the material for GPU upload: three little-endian
// float32 components followed by four bytes of padding.
func (m Material) Marshal() []byte {
	buf := make([]byte, MaterialSize)
	for i, v := range m.Color {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}
