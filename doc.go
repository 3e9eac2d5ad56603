// Package forward defines the shading contract of a small forward
// renderer: a fixed set of pipeline variants, validated once, realized on
// a GPU backend by the host.
//
// # Overview
//
// forward is a Pure Go library for the GoGPU ecosystem. It does not draw;
// it pins down what each shader variant consumes (vertex attributes, the
// transform block, the material block), checks candidate variants against
// those rules at registry construction, and hands validated variants to a
// backend for realization. The shipped variants cover unlit vertex color,
// lit diffuse, and the normal and depth debug views.
//
// # Quick Start
//
//	import "github.com/gogpu/forward"
//
//	// Build the registry of shipped variants.
//	reg, err := forward.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Look up a variant and inspect its contract.
//	v, _ := reg.Variant(forward.VariantMaterialSimple)
//	fmt.Println(v.VertexLayout().ArrayStride)
//
// Hosts with a wgpu hal device realize variants through backend/halgpu.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Registry, PipelineVariant, VariantSpec, AttributeSet
//   - transform: matrix block, projection, view, model transforms
//   - shading: light model, material block, debug color mappings
//   - mesh: interleaved geometry and test primitives
//   - shaders: WGSL sources, SPIR-V translation, push constant rewrite
//   - Backends: halgpu (wgpu hal)
//
// # Coordinate System
//
// One convention across every variant:
//   - Right-handed view space, camera looking down -Z
//   - Clip depth in [0, 1]
//   - Projection flips Y for top-left surface origins
//   - Front faces wind clockwise after the flip
//
// # Validation
//
// A variant spec is Unbuilt until the registry accepts it. Construction
// validates every spec and either returns a registry of Ready variants or
// the joined ValidationErrors; there is no partially built registry.
package forward

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
