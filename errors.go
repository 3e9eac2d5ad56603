// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package forward

import (
	"errors"
	"fmt"
)

// Validation rule sentinels. Registry construction wraps each in a
// *ValidationError naming the offending variant; match with errors.Is.
var (
	// ErrEmptyName reports a variant spec without a name.
	ErrEmptyName = errors.New("forward: variant name is empty")

	// ErrDuplicateVariant reports two specs registered under one name.
	ErrDuplicateVariant = errors.New("forward: duplicate variant name")

	// ErrEmptyShader reports a variant spec without shader source.
	ErrEmptyShader = errors.New("forward: shader source is empty")

	// ErrSlotCollision reports two attributes declared on the same slot.
	ErrSlotCollision = errors.New("forward: attribute slot collision")

	// ErrSlotGap reports attribute slots that are not contiguous from 0.
	ErrSlotGap = errors.New("forward: attribute slots not contiguous from 0")

	// ErrTooManyAttributes reports an attribute set larger than the
	// platform limit allows.
	ErrTooManyAttributes = errors.New("forward: attribute count exceeds limit")

	// ErrUnknownSemantic reports an attribute with a semantic the contract
	// does not define.
	ErrUnknownSemantic = errors.New("forward: unknown attribute semantic")

	// ErrDuplicateSemantic reports one semantic declared on two slots.
	ErrDuplicateSemantic = errors.New("forward: duplicate attribute semantic")

	// ErrFormatMismatch reports an attribute whose vertex format differs
	// from the one the contract fixes for its semantic.
	ErrFormatMismatch = errors.New("forward: attribute format does not match semantic")

	// ErrMissingAttribute reports a set lacking an attribute the variant's
	// vertex stage consumes.
	ErrMissingAttribute = errors.New("forward: behavior requires an attribute the set does not declare")

	// ErrUnusedAttribute reports a declared attribute the variant's vertex
	// stage never reads.
	ErrUnusedAttribute = errors.New("forward: declared attribute not consumed by the vertex stage")

	// ErrUnknownBehavior reports a fragment behavior outside the contract.
	ErrUnknownBehavior = errors.New("forward: unknown fragment behavior")

	// ErrUnknownDelivery reports a transform delivery mode outside the
	// contract.
	ErrUnknownDelivery = errors.New("forward: unknown transform delivery mode")

	// ErrMixedDelivery reports a push-constant variant that also declares a
	// transform uniform binding. A variant uses exactly one delivery mode.
	ErrMixedDelivery = errors.New("forward: push-constant variant declares a transform binding")

	// ErrMissingTransformBinding reports a uniform-buffer variant without a
	// transform binding slot.
	ErrMissingTransformBinding = errors.New("forward: uniform delivery declares no transform binding")

	// ErrPushConstantBudget reports a transform block larger than the
	// platform's push constant budget.
	ErrPushConstantBudget = errors.New("forward: transform block exceeds push constant budget")

	// ErrMissingMaterialBinding reports a lit variant without a material
	// binding slot.
	ErrMissingMaterialBinding = errors.New("forward: lit variant declares no material binding")

	// ErrUnexpectedMaterialBinding reports a material binding on a variant
	// whose fragment stage never reads a material.
	ErrUnexpectedMaterialBinding = errors.New("forward: material binding on a variant without material shading")

	// ErrBindingCollision reports the transform and material blocks bound
	// to the same group and binding.
	ErrBindingCollision = errors.New("forward: transform and material share a binding slot")

	// ErrBindGroupLimit reports a binding group index at or above the
	// platform's bind group limit.
	ErrBindGroupLimit = errors.New("forward: binding group index exceeds limit")
)

// Precondition sentinels. These mark caller errors: inputs the contract
// requires the host to rule out before the call is made.
var (
	// ErrSingularModel reports a non-invertible model matrix supplied to
	// the normal-transform path.
	ErrSingularModel = errors.New("forward: model matrix is singular")

	// ErrLayoutMismatch reports mesh vertex data that does not match the
	// attribute set of the variant it is bound to.
	ErrLayoutMismatch = errors.New("forward: mesh layout does not match variant attribute set")
)

// ValidationError reports a variant specification that failed a
// construction-time check. The wrapped error is one of the rule sentinels,
// so callers can distinguish which invariant failed:
//
//	_, err := forward.New(cfg, spec)
//	if errors.Is(err, forward.ErrPushConstantBudget) { ... }
type ValidationError struct {
	// Variant is the name of the offending spec. Empty when the name
	// itself failed validation.
	Variant string

	// Err wraps the rule sentinel, usually with slot or size detail.
	Err error
}

func (e *ValidationError) Error() string {
	if e.Variant == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("variant %q: %v", e.Variant, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// PreconditionViolation reports a contract precondition broken by the
// caller. Unlike a ValidationError it is not fixed by adjusting registry
// configuration; the host must correct the offending input (the model
// matrix, the bound mesh) before drawing.
type PreconditionViolation struct {
	// Op names the operation whose precondition was violated.
	Op string

	// Err wraps one of the precondition sentinels.
	Err error
}

func (e *PreconditionViolation) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PreconditionViolation) Unwrap() error { return e.Err }
