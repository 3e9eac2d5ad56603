// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shaders holds the WGSL sources of the built-in pipeline
// variants and the tooling to compile or rewrite them for a backend.
//
// Each source carries both shader stages of one variant under the
// conventional entry points vs_main and fs_main. Sources are embedded at
// build time; they never change at runtime.
package shaders

import (
	_ "embed"
)

// Entry point names shared by every built-in source.
const (
	// VertexEntryPoint is the vertex stage entry point.
	VertexEntryPoint = "vs_main"

	// FragmentEntryPoint is the fragment stage entry point.
	FragmentEntryPoint = "fs_main"
)

// Embedded WGSL shader sources.

//go:embed wgsl/unlit.wgsl
var unlitSource string

//go:embed wgsl/mesh_view.wgsl
var meshViewSource string

//go:embed wgsl/material_simple.wgsl
var materialSimpleSource string

//go:embed wgsl/normal_debug.wgsl
var normalDebugSource string

//go:embed wgsl/depth_debug.wgsl
var depthDebugSource string

// UnlitSource returns the WGSL source for the unlit variant: vertex color
// passthrough with the transform block bound as a uniform buffer at
// group 0 binding 0.
func UnlitSource() string { return unlitSource }

// MeshViewSource returns the WGSL source for the mesh_view variant:
// vertex color passthrough with push-constant transforms.
func MeshViewSource() string { return meshViewSource }

// MaterialSimpleSource returns the WGSL source for the material_simple
// variant: diffuse shading under the fixed directional light, material
// color bound at group 0 binding 0.
func MaterialSimpleSource() string { return materialSimpleSource }

// NormalDebugSource returns the WGSL source for the normal_debug variant.
func NormalDebugSource() string { return normalDebugSource }

// DepthDebugSource returns the WGSL source for the depth_debug variant.
func DepthDebugSource() string { return depthDebugSource }

// Sources returns all built-in sources keyed by variant name.
func Sources() map[string]string {
	return map[string]string{
		"unlit":           unlitSource,
		"mesh_view":       meshViewSource,
		"material_simple": materialSimpleSource,
		"normal_debug":    normalDebugSource,
		"depth_debug":     depthDebugSource,
	}
}
