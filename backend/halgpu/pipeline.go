// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgpu

import (
	"fmt"
	"sort"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/forward"
	"github.com/gogpu/forward/shaders"
)

// Pipeline is a realized variant: the shader module, bind group layouts,
// and render pipeline created on one device. Destroy releases them in
// reverse creation order.
type Pipeline struct {
	device  hal.Device
	variant *forward.PipelineVariant

	shader      hal.ShaderModule
	bindLayouts []hal.BindGroupLayout
	pipeLayout  hal.PipelineLayout
	pipeline    hal.RenderPipeline

	transformSlot forward.BindingSlot
	emulated      bool
}

// Build realizes a variant on the device. The returned pipeline holds GPU
// resources; the caller owns them and releases them with Destroy.
//
// The hal exposes a WebGPU-shaped surface with no push constant ranges,
// so variants that push their transform block are realized with the push
// declaration rewritten to a uniform binding on the first free slot of
// group 0. TransformSlot reports where the block actually binds.
func Build(device hal.Device, variant *forward.PipelineVariant, cfg Config) (*Pipeline, error) {
	if device == nil {
		return nil, fmt.Errorf("halgpu: device is required")
	}
	if variant == nil {
		return nil, fmt.Errorf("halgpu: variant is required")
	}
	cfg = cfg.withDefaults()

	p := &Pipeline{device: device, variant: variant}

	source := variant.WGSL()
	if variant.Delivery() == forward.DeliveryPushConstant {
		p.transformSlot = emulationSlot(variant)
		p.emulated = true
		source = shaders.EmulatePushConstants(source, p.transformSlot.Group, p.transformSlot.Binding)
	} else if slot, ok := variant.TransformBinding(); ok {
		p.transformSlot = slot
	}

	shaderSource := hal.ShaderSource{WGSL: source}
	if cfg.PrecompileSPIRV {
		words, err := shaders.CompileSPIRV(source)
		if err != nil {
			return nil, fmt.Errorf("halgpu: compile %s shader: %w", variant.Name(), err)
		}
		shaderSource = hal.ShaderSource{SPIRV: words}
	}

	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  variant.Name() + "_shader",
		Source: shaderSource,
	})
	if err != nil {
		return nil, fmt.Errorf("halgpu: create %s shader module: %w", variant.Name(), err)
	}
	p.shader = shader

	if err := p.createLayouts(); err != nil {
		p.Destroy()
		return nil, err
	}
	if err := p.createPipeline(cfg); err != nil {
		p.Destroy()
		return nil, err
	}

	forward.Logger().Debug("pipeline realized",
		"variant", variant.Name(),
		"delivery", variant.Delivery(),
		"emulated", p.emulated)
	return p, nil
}

// emulationSlot picks the uniform slot that stands in for push constants:
// the first binding in group 0 the variant leaves free.
func emulationSlot(variant *forward.PipelineVariant) forward.BindingSlot {
	used := make(map[forward.BindingSlot]bool, 2)
	if slot, ok := variant.TransformBinding(); ok {
		used[slot] = true
	}
	if slot, ok := variant.MaterialBinding(); ok {
		used[slot] = true
	}
	slot := forward.BindingSlot{}
	for used[slot] {
		slot.Binding++
	}
	return slot
}

// createLayouts creates one bind group layout per group up to the highest
// group the variant touches, then the pipeline layout over them. Groups
// the variant skips get empty layouts to keep indices aligned.
func (p *Pipeline) createLayouts() error {
	type groupEntry struct {
		group uint32
		entry gputypes.BindGroupLayoutEntry
	}
	entries := []groupEntry{{
		group: p.transformSlot.Group,
		entry: gputypes.BindGroupLayoutEntry{
			Binding:    p.transformSlot.Binding,
			Visibility: gputypes.ShaderStageVertex,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
	}}
	if slot, ok := p.variant.MaterialBinding(); ok {
		entries = append(entries, groupEntry{
			group: slot.Group,
			entry: gputypes.BindGroupLayoutEntry{
				Binding:    slot.Binding,
				Visibility: gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		})
	}

	var maxGroup uint32
	for _, ge := range entries {
		if ge.group > maxGroup {
			maxGroup = ge.group
		}
	}
	groups := make([][]gputypes.BindGroupLayoutEntry, maxGroup+1)
	for _, ge := range entries {
		groups[ge.group] = append(groups[ge.group], ge.entry)
	}
	for _, g := range groups {
		sort.Slice(g, func(i, j int) bool { return g[i].Binding < g[j].Binding })
	}

	p.bindLayouts = make([]hal.BindGroupLayout, 0, len(groups))
	for gi, g := range groups {
		layout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
			Label:   fmt.Sprintf("%s_group%d_layout", p.variant.Name(), gi),
			Entries: g,
		})
		if err != nil {
			return fmt.Errorf("halgpu: create %s group %d layout: %w", p.variant.Name(), gi, err)
		}
		p.bindLayouts = append(p.bindLayouts, layout)
	}

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            p.variant.Name() + "_layout",
		BindGroupLayouts: p.bindLayouts,
	})
	if err != nil {
		return fmt.Errorf("halgpu: create %s pipeline layout: %w", p.variant.Name(), err)
	}
	p.pipeLayout = pipeLayout
	return nil
}

// createPipeline creates the render pipeline with the contract's fixed
// state: triangle lists, depth test Less with writes on, stencil ignored.
func (p *Pipeline) createPipeline(cfg Config) error {
	layout := p.variant.VertexLayout()
	if cfg.VertexLayout != nil {
		layout = *cfg.VertexLayout
	}

	cull := gputypes.CullModeBack
	if cfg.DisableCulling {
		cull = gputypes.CullModeNone
	}

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  p.variant.Name() + "_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: shaders.VertexEntryPoint,
			Buffers:    []gputypes.VertexBufferLayout{layout},
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: shaders.FragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    cfg.ColorFormat,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		DepthStencil: &hal.DepthStencilState{
			Format:            cfg.DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLess,
			StencilFront: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilBack: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilReadMask:  0x00,
			StencilWriteMask: 0x00,
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			// The Y-flipped projection mirrors winding, so clockwise
			// is front.
			FrontFace: gputypes.FrontFaceCW,
			CullMode:  cull,
		},
		Multisample: gputypes.MultisampleState{
			Count: cfg.SampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("halgpu: create %s pipeline: %w", p.variant.Name(), err)
	}
	p.pipeline = pipeline
	return nil
}

// Variant returns the contract this pipeline realizes.
func (p *Pipeline) Variant() *forward.PipelineVariant { return p.variant }

// Raw returns the underlying render pipeline for draw recording.
func (p *Pipeline) Raw() hal.RenderPipeline { return p.pipeline }

// BindGroupLayouts returns the layouts the host creates bind groups
// against, indexed by group.
func (p *Pipeline) BindGroupLayouts() []hal.BindGroupLayout {
	out := make([]hal.BindGroupLayout, len(p.bindLayouts))
	copy(out, p.bindLayouts)
	return out
}

// TransformSlot returns where the transform block binds: the variant's
// declared binding, or the emulation slot when the variant pushes.
func (p *Pipeline) TransformSlot() forward.BindingSlot { return p.transformSlot }

// TransformEmulated reports whether pushed transforms were rewritten to a
// uniform binding.
func (p *Pipeline) TransformEmulated() bool { return p.emulated }

// Bind sets the pipeline on a render pass.
func (p *Pipeline) Bind(rp hal.RenderPassEncoder) {
	rp.SetPipeline(p.pipeline)
}

// Destroy releases all GPU resources held by the pipeline. Safe to call
// more than once.
func (p *Pipeline) Destroy() {
	if p == nil || p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	for i := len(p.bindLayouts) - 1; i >= 0; i-- {
		p.device.DestroyBindGroupLayout(p.bindLayouts[i])
	}
	p.bindLayouts = nil
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
