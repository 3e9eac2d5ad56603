// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgpu

import (
	"github.com/gogpu/gputypes"
)

// Config configures pipeline realization. The zero value builds with the
// package defaults.
type Config struct {
	// ColorFormat is the color attachment format.
	// If undefined, defaults to BGRA8Unorm.
	ColorFormat gputypes.TextureFormat

	// DepthFormat is the depth attachment format. Every pipeline renders
	// depth-tested; there is no way to opt out.
	// If undefined, defaults to Depth24PlusStencil8.
	DepthFormat gputypes.TextureFormat

	// SampleCount is the number of samples per pixel.
	// If 0, defaults to 1.
	SampleCount uint32

	// VertexLayout overrides the vertex buffer layout. If nil, the
	// variant's packed layout is used. Hosts drawing mesh package
	// geometry pass mesh.InterleavedLayout for the variant's attribute
	// set instead.
	VertexLayout *gputypes.VertexBufferLayout

	// DisableCulling renders both faces instead of culling back faces.
	// Useful when debugging winding problems.
	DisableCulling bool

	// PrecompileSPIRV translates the shader to SPIR-V on the CPU and
	// hands the words to the device instead of WGSL source.
	PrecompileSPIRV bool
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		ColorFormat: gputypes.TextureFormatBGRA8Unorm,
		DepthFormat: gputypes.TextureFormatDepth24PlusStencil8,
		SampleCount: 1,
	}
}

// withDefaults returns a copy of the config with zero fields defaulted.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ColorFormat == gputypes.TextureFormatUndefined {
		c.ColorFormat = def.ColorFormat
	}
	if c.DepthFormat == gputypes.TextureFormatUndefined {
		c.DepthFormat = def.DepthFormat
	}
	if c.SampleCount == 0 {
		c.SampleCount = def.SampleCount
	}
	return c
}
