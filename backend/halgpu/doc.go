// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package halgpu realizes validated pipeline variants on a wgpu hal
// device.
//
// The forward package owns the contract: which variants exist, what
// vertex data they consume, where their blocks bind. This package turns
// one Ready variant into device objects:
//
//	reg, err := forward.Default()
//	if err != nil { ... }
//	v, _ := reg.Variant(forward.VariantMeshView)
//	pipe, err := halgpu.Build(device, v, halgpu.DefaultConfig())
//	if err != nil { ... }
//	defer pipe.Destroy()
//
//	pipe.Bind(renderPass)
//
// # Push constant emulation
//
// The hal speaks WebGPU, and WebGPU pipeline layouts carry no push
// constant ranges. Variants that push their transform block are realized
// with the push declaration rewritten to a uniform binding on the first
// free slot of group 0; TransformSlot reports the slot and
// TransformEmulated whether the rewrite happened. Hosts write the
// marshaled block to a uniform buffer bound there, which preserves the
// contract's data layout byte for byte.
package halgpu
