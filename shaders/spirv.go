// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shaders

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// ErrEmptySource reports a compile request without shader source.
var ErrEmptySource = errors.New("shaders: source is empty")

// CompileSPIRV compiles WGSL source to SPIR-V words for backends that
// consume SPIR-V modules directly, such as Vulkan hosts that deliver the
// transform block through native push constants.
func CompileSPIRV(source string) ([]uint32, error) {
	if source == "" {
		return nil, ErrEmptySource
	}

	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("shaders: compile failed: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
