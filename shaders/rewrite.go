// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shaders

import (
	"fmt"
	"strings"
)

// pushConstantDecl is the storage qualifier of the per-draw transform
// block in the built-in push-constant sources. Each of those sources
// declares it exactly once.
const pushConstantDecl = "var<push_constant>"

// HasPushConstants reports whether the source declares a push-constant
// block.
func HasPushConstants(source string) bool {
	return strings.Contains(source, pushConstantDecl)
}

// EmulatePushConstants rewrites a push-constant block into a uniform
// buffer binding at the given group and binding. WebGPU-shaped backends
// have no push-constant interface; rewriting lets them run the
// push-constant variants by supplying the same 192-byte block through a
// uniform binding instead. Sources without a push-constant block are
// returned unchanged.
func EmulatePushConstants(source string, group, binding uint32) string {
	uniformDecl := fmt.Sprintf("@group(%d) @binding(%d) var<uniform>", group, binding)
	return strings.Replace(source, pushConstantDecl, uniformDecl, 1)
}
