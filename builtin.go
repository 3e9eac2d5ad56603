// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package forward

import "github.com/gogpu/forward/shaders"

// Names of the built-in pipeline variants.
const (
	// VariantUnlit draws vertex-colored geometry with the transform block
	// bound as a uniform buffer.
	VariantUnlit = "unlit"

	// VariantMeshView draws vertex-colored geometry with the transform
	// block pushed per draw.
	VariantMeshView = "mesh_view"

	// VariantMaterialSimple draws lit geometry from a diffuse material
	// color and the fixed directional light.
	VariantMaterialSimple = "material_simple"

	// VariantNormalDebug visualizes world-space normals as RGB.
	VariantNormalDebug = "normal_debug"

	// VariantDepthDebug visualizes linearized fragment depth as grayscale.
	VariantDepthDebug = "depth_debug"
)

// attr builds an attribute with the format its semantic fixes.
func attr(slot uint32, sem AttributeSemantic) VertexAttribute {
	return VertexAttribute{Slot: slot, Semantic: sem, Format: sem.Format()}
}

// BuiltinSpecs returns the five stock variant specifications. Every spec
// validates under DefaultLimits; feed them to New together with any custom
// specs, or use Default for the stock registry.
func BuiltinSpecs() []VariantSpec {
	return []VariantSpec{
		{
			Name:     VariantUnlit,
			Behavior: VertexColorPassthrough,
			Delivery: DeliveryUniformBuffer,
			Attributes: AttributeSet{
				attr(0, SemanticPosition),
				attr(1, SemanticColor),
			},
			TransformBinding: &BindingSlot{Group: 0, Binding: 0},
			WGSL:             shaders.UnlitSource(),
		},
		{
			Name:     VariantMeshView,
			Behavior: VertexColorPassthrough,
			Delivery: DeliveryPushConstant,
			Attributes: AttributeSet{
				attr(0, SemanticPosition),
				attr(1, SemanticColor),
			},
			WGSL: shaders.MeshViewSource(),
		},
		{
			Name:     VariantMaterialSimple,
			Behavior: LitDiffuse,
			Delivery: DeliveryPushConstant,
			Attributes: AttributeSet{
				attr(0, SemanticPosition),
				attr(1, SemanticNormal),
				attr(2, SemanticTexCoord),
			},
			MaterialBinding: &BindingSlot{Group: 0, Binding: 0},
			WGSL:            shaders.MaterialSimpleSource(),
		},
		{
			Name:     VariantNormalDebug,
			Behavior: NormalDebug,
			Delivery: DeliveryPushConstant,
			Attributes: AttributeSet{
				attr(0, SemanticPosition),
				attr(1, SemanticNormal),
			},
			WGSL: shaders.NormalDebugSource(),
		},
		{
			Name:     VariantDepthDebug,
			Behavior: DepthDebug,
			Delivery: DeliveryPushConstant,
			Attributes: AttributeSet{
				attr(0, SemanticPosition),
			},
			WGSL: shaders.DepthDebugSource(),
		},
	}
}
