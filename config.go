// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package forward

// Limits holds the platform bounds variants are validated against. Zero
// fields take the defaults below at registry construction.
type Limits struct {
	// MaxPushConstantSize is the push constant budget in bytes.
	// If 0, defaults to DefaultMaxPushConstantSize. The portable minimum
	// on Vulkan-class hardware is 128; the default assumes the common
	// desktop guarantee of 256, which the 192-byte transform block fits.
	MaxPushConstantSize int

	// MaxVertexAttributes is the largest attribute set a variant may
	// declare. If 0, defaults to DefaultMaxVertexAttributes.
	MaxVertexAttributes uint32

	// MaxBindGroups bounds the bind group index of uniform bindings.
	// If 0, defaults to DefaultMaxBindGroups.
	MaxBindGroups uint32
}

// Default platform limits, matching WebGPU defaults where one exists.
const (
	DefaultMaxPushConstantSize = 256
	DefaultMaxVertexAttributes = 16
	DefaultMaxBindGroups       = 4
)

// DefaultLimits returns the default platform limits.
func DefaultLimits() Limits {
	return Limits{
		MaxPushConstantSize: DefaultMaxPushConstantSize,
		MaxVertexAttributes: DefaultMaxVertexAttributes,
		MaxBindGroups:       DefaultMaxBindGroups,
	}
}

// withDefaults fills zero fields with their defaults.
func (l Limits) withDefaults() Limits {
	if l.MaxPushConstantSize == 0 {
		l.MaxPushConstantSize = DefaultMaxPushConstantSize
	}
	if l.MaxVertexAttributes == 0 {
		l.MaxVertexAttributes = DefaultMaxVertexAttributes
	}
	if l.MaxBindGroups == 0 {
		l.MaxBindGroups = DefaultMaxBindGroups
	}
	return l
}

// Config configures registry construction.
type Config struct {
	// Limits are the platform bounds to validate against. Zero fields
	// take their defaults.
	Limits Limits
}

// DefaultConfig returns a Config with default limits.
func DefaultConfig() Config {
	return Config{Limits: DefaultLimits()}
}

// withDefaults fills zero fields with their defaults.
func (c Config) withDefaults() Config {
	c.Limits = c.Limits.withDefaults()
	return c
}
