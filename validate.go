// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package forward

import "fmt"

// validate checks every construction-time invariant of the spec against
// the given limits. It returns nil or a *ValidationError wrapping the rule
// sentinel of the first invariant the spec breaks.
func (s VariantSpec) validate(limits Limits) error {
	fail := func(err error) error {
		return &ValidationError{Variant: s.Name, Err: err}
	}

	if s.Name == "" {
		return &ValidationError{Err: ErrEmptyName}
	}
	if s.Behavior > DepthDebug {
		return fail(fmt.Errorf("%w: %d", ErrUnknownBehavior, s.Behavior))
	}
	if s.Delivery > DeliveryUniformBuffer {
		return fail(fmt.Errorf("%w: %d", ErrUnknownDelivery, s.Delivery))
	}
	if err := s.validateAttributes(limits); err != nil {
		return fail(err)
	}
	if err := s.validateBindings(limits); err != nil {
		return fail(err)
	}
	if s.WGSL == "" {
		return fail(ErrEmptyShader)
	}
	return nil
}

// validateAttributes checks slot contiguity and uniqueness, semantic and
// format consistency, and that the set matches the vertex stage's
// consumption exactly.
func (s VariantSpec) validateAttributes(limits Limits) error {
	attrs := s.Attributes
	if n := len(attrs); uint32(n) > limits.MaxVertexAttributes {
		return fmt.Errorf("%w: %d attributes, limit %d", ErrTooManyAttributes, n, limits.MaxVertexAttributes)
	}

	// Slots must be unique, and with uniqueness contiguity from 0 holds
	// exactly when every slot is below the set length.
	seen := make(map[uint32]bool, len(attrs))
	for _, a := range attrs {
		if seen[a.Slot] {
			return fmt.Errorf("%w: slot %d", ErrSlotCollision, a.Slot)
		}
		seen[a.Slot] = true
	}
	for _, a := range attrs {
		if a.Slot >= uint32(len(attrs)) {
			return fmt.Errorf("%w: slot %d with %d attributes", ErrSlotGap, a.Slot, len(attrs))
		}
	}

	bySemantic := make(map[AttributeSemantic]int, len(attrs))
	for _, a := range attrs {
		if a.Semantic > SemanticColor {
			return fmt.Errorf("%w: %d on slot %d", ErrUnknownSemantic, a.Semantic, a.Slot)
		}
		if a.Format != a.Semantic.Format() {
			return fmt.Errorf("%w: %s on slot %d", ErrFormatMismatch, a.Semantic, a.Slot)
		}
		bySemantic[a.Semantic]++
		if bySemantic[a.Semantic] > 1 {
			return fmt.Errorf("%w: %s", ErrDuplicateSemantic, a.Semantic)
		}
	}

	consumed := s.Behavior.consumed()
	for _, sem := range consumed {
		if bySemantic[sem] == 0 {
			return fmt.Errorf("%w: %s", ErrMissingAttribute, sem)
		}
	}
	if len(attrs) > len(consumed) {
		for _, a := range s.Attributes.sortedBySlot() {
			if !semanticIn(consumed, a.Semantic) {
				return fmt.Errorf("%w: %s on slot %d", ErrUnusedAttribute, a.Semantic, a.Slot)
			}
		}
	}
	return nil
}

// validateBindings checks the transform delivery declaration, the push
// constant budget, the material binding rules, and binding collisions.
func (s VariantSpec) validateBindings(limits Limits) error {
	switch s.Delivery {
	case DeliveryPushConstant:
		if s.TransformBinding != nil {
			return ErrMixedDelivery
		}
		if TransformBlockSize > limits.MaxPushConstantSize {
			return fmt.Errorf("%w: %d bytes, budget %d", ErrPushConstantBudget, TransformBlockSize, limits.MaxPushConstantSize)
		}
	case DeliveryUniformBuffer:
		if s.TransformBinding == nil {
			return ErrMissingTransformBinding
		}
		if s.TransformBinding.Group >= limits.MaxBindGroups {
			return fmt.Errorf("%w: transform group %d, limit %d", ErrBindGroupLimit, s.TransformBinding.Group, limits.MaxBindGroups)
		}
	}

	if s.Behavior == LitDiffuse {
		if s.MaterialBinding == nil {
			return ErrMissingMaterialBinding
		}
		if s.MaterialBinding.Group >= limits.MaxBindGroups {
			return fmt.Errorf("%w: material group %d, limit %d", ErrBindGroupLimit, s.MaterialBinding.Group, limits.MaxBindGroups)
		}
	} else if s.MaterialBinding != nil {
		return ErrUnexpectedMaterialBinding
	}

	if s.TransformBinding != nil && s.MaterialBinding != nil && *s.TransformBinding == *s.MaterialBinding {
		return fmt.Errorf("%w: group %d binding %d", ErrBindingCollision, s.TransformBinding.Group, s.TransformBinding.Binding)
	}
	return nil
}

func semanticIn(list []AttributeSemantic, sem AttributeSemantic) bool {
	for _, s := range list {
		if s == sem {
			return true
		}
	}
	return false
}
