// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package forward

import (
	"github.com/gogpu/gputypes"
)

// TransformBlockSize is the byte size of the transform block every variant
// receives: three column-major 4x4 float32 matrices in the fixed order
// Model (offset 0), View (offset 64), Proj (offset 128).
const TransformBlockSize = 192

// FragmentBehavior selects what a variant's fragment stage computes.
// Every behavior writes a single color attachment at location 0 with alpha
// fixed at 1.0.
type FragmentBehavior uint8

const (
	// VertexColorPassthrough outputs the interpolated vertex color
	// unchanged.
	VertexColorPassthrough FragmentBehavior = iota

	// LitDiffuse scales the material color by a clamped Lambertian term
	// for the fixed directional light. No ambient, no specular: surfaces
	// facing away from the light render black.
	LitDiffuse

	// NormalDebug maps the interpolated world-space normal from [-1,1]
	// to [0,1] RGB.
	NormalDebug

	// DepthDebug outputs linearized fragment depth broadcast to RGB.
	DepthDebug
)

// String returns the behavior name used in logs and shader file names.
func (b FragmentBehavior) String() string {
	switch b {
	case VertexColorPassthrough:
		return "vertex_color_passthrough"
	case LitDiffuse:
		return "lit_diffuse"
	case NormalDebug:
		return "normal_debug"
	case DepthDebug:
		return "depth_debug"
	}
	return "unknown"
}

// consumed returns the attribute semantics the behavior's vertex stage
// reads. A valid attribute set declares exactly these: anything less
// starves the stage, anything more breaks the every-attribute-is-used rule.
func (b FragmentBehavior) consumed() []AttributeSemantic {
	switch b {
	case VertexColorPassthrough:
		return []AttributeSemantic{SemanticPosition, SemanticColor}
	case LitDiffuse:
		return []AttributeSemantic{SemanticPosition, SemanticNormal, SemanticTexCoord}
	case NormalDebug:
		return []AttributeSemantic{SemanticPosition, SemanticNormal}
	case DepthDebug:
		return []AttributeSemantic{SemanticPosition}
	}
	return nil
}

// TransformDelivery declares how a variant receives its transform block.
type TransformDelivery uint8

const (
	// DeliveryPushConstant supplies the block directly with each draw
	// call. Lowest latency, bounded by the platform push constant budget.
	DeliveryPushConstant TransformDelivery = iota

	// DeliveryUniformBuffer binds the block through a uniform buffer
	// slot, shared across draws until rebound.
	DeliveryUniformBuffer
)

// String returns the delivery mode name used in logs.
func (d TransformDelivery) String() string {
	switch d {
	case DeliveryPushConstant:
		return "push_constant"
	case DeliveryUniformBuffer:
		return "uniform_buffer"
	}
	return "unknown"
}

// AttributeSemantic identifies what a vertex attribute carries.
type AttributeSemantic uint8

const (
	// SemanticPosition is the object-space vertex position, vec3.
	SemanticPosition AttributeSemantic = iota

	// SemanticNormal is the object-space vertex normal, vec3.
	SemanticNormal

	// SemanticTexCoord is the texture coordinate, vec2.
	SemanticTexCoord

	// SemanticColor is the per-vertex RGB color, vec3.
	SemanticColor
)

// String returns the semantic name as it appears in shader sources.
func (s AttributeSemantic) String() string {
	switch s {
	case SemanticPosition:
		return "position"
	case SemanticNormal:
		return "normal"
	case SemanticTexCoord:
		return "texcoord"
	case SemanticColor:
		return "color"
	}
	return "unknown"
}

// Format returns the vertex format the contract fixes for the semantic:
// vec2 for texture coordinates, vec3 for everything else.
func (s AttributeSemantic) Format() gputypes.VertexFormat {
	if s == SemanticTexCoord {
		return gputypes.VertexFormatFloat32x2
	}
	return gputypes.VertexFormatFloat32x3
}

// formatSize returns the byte width of the vertex formats the contract
// uses, or 0 for any other format.
func formatSize(f gputypes.VertexFormat) uint64 {
	switch f {
	case gputypes.VertexFormatFloat32:
		return 4
	case gputypes.VertexFormatFloat32x2:
		return 8
	case gputypes.VertexFormatFloat32x3:
		return 12
	case gputypes.VertexFormatFloat32x4:
		return 16
	}
	return 0
}

// VertexAttribute is one entry of a variant's attribute set: a shader input
// slot, the semantic a mesh must supply there, and its vertex format.
type VertexAttribute struct {
	// Slot is the shader input location. Slots within a set are unique
	// and contiguous starting at 0.
	Slot uint32

	// Semantic identifies the data the slot carries.
	Semantic AttributeSemantic

	// Format is the per-vertex data format. Must match Semantic.Format().
	Format gputypes.VertexFormat
}

// AttributeSet is the ordered per-vertex input contract of one variant.
// A mesh bound to the variant must supply a buffer layout matching it
// slot-for-slot.
type AttributeSet []VertexAttribute

// clone returns an independent copy of the set.
func (s AttributeSet) clone() AttributeSet {
	if s == nil {
		return nil
	}
	out := make(AttributeSet, len(s))
	copy(out, s)
	return out
}

// sortedBySlot returns a copy of the set ordered by slot index.
func (s AttributeSet) sortedBySlot() AttributeSet {
	out := s.clone()
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Slot < out[j-1].Slot; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Stride returns the byte stride of one tightly packed vertex.
func (s AttributeSet) Stride() uint64 {
	var stride uint64
	for _, a := range s {
		stride += formatSize(a.Format)
	}
	return stride
}

// Find returns the attribute carrying the given semantic.
func (s AttributeSet) Find(sem AttributeSemantic) (VertexAttribute, bool) {
	for _, a := range s {
		if a.Semantic == sem {
			return a, true
		}
	}
	return VertexAttribute{}, false
}

// PackedLayout returns the single-buffer vertex layout for the set, with
// attributes at consecutive offsets in slot order and the stride equal to
// the packed vertex size. Hosts interleaving extra data compute their own
// offsets instead; see the mesh package.
func (s AttributeSet) PackedLayout() gputypes.VertexBufferLayout {
	sorted := s.sortedBySlot()
	attrs := make([]gputypes.VertexAttribute, 0, len(sorted))
	var offset uint64
	for _, a := range sorted {
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         a.Format,
			Offset:         offset,
			ShaderLocation: a.Slot,
		})
		offset += formatSize(a.Format)
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

// BindingSlot addresses one uniform buffer binding: a bind group index and
// a binding index within the group.
type BindingSlot struct {
	Group   uint32
	Binding uint32
}

// VariantSpec declares a pipeline variant before validation. Specs are
// plain data; New validates them and converts each into an immutable
// PipelineVariant.
type VariantSpec struct {
	// Name identifies the variant within its registry.
	Name string

	// Behavior selects the fragment stage computation.
	Behavior FragmentBehavior

	// Delivery declares how the transform block reaches the vertex stage.
	Delivery TransformDelivery

	// Attributes is the per-vertex input contract.
	Attributes AttributeSet

	// TransformBinding locates the transform uniform buffer. Required for
	// DeliveryUniformBuffer, forbidden for DeliveryPushConstant.
	TransformBinding *BindingSlot

	// MaterialBinding locates the material uniform buffer. Required for
	// LitDiffuse, forbidden otherwise.
	MaterialBinding *BindingSlot

	// WGSL is the variant's shader source, carrying both the vs_main and
	// fs_main entry points.
	WGSL string
}

// PipelineVariant is a validated, immutable pipeline configuration. Values
// are created only by New and are safe for unsynchronized concurrent use.
type PipelineVariant struct {
	name             string
	behavior         FragmentBehavior
	delivery         TransformDelivery
	attributes       AttributeSet
	transformBinding *BindingSlot
	materialBinding  *BindingSlot
	wgsl             string
}

// build converts a validated spec into its immutable variant.
func (s VariantSpec) build() *PipelineVariant {
	v := &PipelineVariant{
		name:       s.Name,
		behavior:   s.Behavior,
		delivery:   s.Delivery,
		attributes: s.Attributes.clone(),
		wgsl:       s.WGSL,
	}
	if s.TransformBinding != nil {
		b := *s.TransformBinding
		v.transformBinding = &b
	}
	if s.MaterialBinding != nil {
		b := *s.MaterialBinding
		v.materialBinding = &b
	}
	return v
}

// Name returns the variant name.
func (v *PipelineVariant) Name() string { return v.name }

// Behavior returns the fragment stage behavior.
func (v *PipelineVariant) Behavior() FragmentBehavior { return v.behavior }

// Delivery returns the transform delivery mode.
func (v *PipelineVariant) Delivery() TransformDelivery { return v.delivery }

// Attributes returns a copy of the variant's attribute set.
func (v *PipelineVariant) Attributes() AttributeSet {
	return v.attributes.clone()
}

// VertexLayout returns the tightly packed vertex buffer layout for the
// variant's attribute set.
func (v *PipelineVariant) VertexLayout() gputypes.VertexBufferLayout {
	return v.attributes.PackedLayout()
}

// TransformBinding returns the transform uniform binding slot. The second
// result is false for push-constant variants.
func (v *PipelineVariant) TransformBinding() (BindingSlot, bool) {
	if v.transformBinding == nil {
		return BindingSlot{}, false
	}
	return *v.transformBinding, true
}

// MaterialBinding returns the material uniform binding slot. The second
// result is false for variants without material shading.
func (v *PipelineVariant) MaterialBinding() (BindingSlot, bool) {
	if v.materialBinding == nil {
		return BindingSlot{}, false
	}
	return *v.materialBinding, true
}

// PushConstantSize returns the byte size the backend must reserve for push
// constants: TransformBlockSize for push-constant variants, 0 otherwise.
func (v *PipelineVariant) PushConstantSize() int {
	if v.delivery == DeliveryPushConstant {
		return TransformBlockSize
	}
	return 0
}

// WGSL returns the variant's shader source.
func (v *PipelineVariant) WGSL() string { return v.wgsl }
