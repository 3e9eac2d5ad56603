// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package forward

import (
	"errors"
	"sort"
)

// Registry holds the validated pipeline variants of one renderer. It is
// built once, is immutable afterwards, and is safe for unsynchronized
// concurrent reads. Reconfiguration means building a new registry.
type Registry struct {
	variants map[string]*PipelineVariant
	names    []string
}

// New validates every spec against the configured limits and builds the
// registry. Construction is atomic: if any spec fails validation, no
// registry is returned and the error joins one *ValidationError per
// failing spec, so every broken invariant is reported at once.
func New(cfg Config, specs ...VariantSpec) (*Registry, error) {
	cfg = cfg.withDefaults()

	r := &Registry{variants: make(map[string]*PipelineVariant, len(specs))}
	var errs []error
	for _, spec := range specs {
		if err := spec.validate(cfg.Limits); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := r.variants[spec.Name]; dup {
			errs = append(errs, &ValidationError{Variant: spec.Name, Err: ErrDuplicateVariant})
			continue
		}
		v := spec.build()
		r.variants[v.name] = v
		r.names = append(r.names, v.name)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	sort.Strings(r.names)

	for _, name := range r.names {
		v := r.variants[name]
		slogger().Debug("variant ready",
			"variant", name,
			"behavior", v.behavior.String(),
			"delivery", v.delivery.String(),
			"attributes", len(v.attributes))
	}
	return r, nil
}

// Default builds the registry of built-in variants with default limits.
func Default() (*Registry, error) {
	return New(DefaultConfig(), BuiltinSpecs()...)
}

// Variant returns the named variant, or false if the registry does not
// hold it.
func (r *Registry) Variant(name string) (*PipelineVariant, bool) {
	v, ok := r.variants[name]
	return v, ok
}

// Names returns the registered variant names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered variants.
func (r *Registry) Len() int { return len(r.variants) }
