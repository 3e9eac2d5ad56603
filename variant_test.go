package forward

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestFragmentBehaviorString(t *testing.T) {
	tests := []struct {
		behavior FragmentBehavior
		want     string
	}{
		{VertexColorPassthrough, "vertex_color_passthrough"},
		{LitDiffuse, "lit_diffuse"},
		{NormalDebug, "normal_debug"},
		{DepthDebug, "depth_debug"},
		{FragmentBehavior(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.behavior.String(); got != tt.want {
			t.Errorf("FragmentBehavior(%d).String() = %q, want %q", tt.behavior, got, tt.want)
		}
	}
}

func TestTransformDeliveryString(t *testing.T) {
	tests := []struct {
		delivery TransformDelivery
		want     string
	}{
		{DeliveryPushConstant, "push_constant"},
		{DeliveryUniformBuffer, "uniform_buffer"},
		{TransformDelivery(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.delivery.String(); got != tt.want {
			t.Errorf("TransformDelivery(%d).String() = %q, want %q", tt.delivery, got, tt.want)
		}
	}
}

func TestAttributeSemanticFormat(t *testing.T) {
	tests := []struct {
		sem  AttributeSemantic
		want gputypes.VertexFormat
	}{
		{SemanticPosition, gputypes.VertexFormatFloat32x3},
		{SemanticNormal, gputypes.VertexFormatFloat32x3},
		{SemanticTexCoord, gputypes.VertexFormatFloat32x2},
		{SemanticColor, gputypes.VertexFormatFloat32x3},
	}
	for _, tt := range tests {
		if got := tt.sem.Format(); got != tt.want {
			t.Errorf("%s.Format() = %v, want %v", tt.sem, got, tt.want)
		}
	}
}

func TestAttributeSetStride(t *testing.T) {
	tests := []struct {
		name string
		set  AttributeSet
		want uint64
	}{
		{"empty", nil, 0},
		{"position only", AttributeSet{attr(0, SemanticPosition)}, 12},
		{"position color", AttributeSet{attr(0, SemanticPosition), attr(1, SemanticColor)}, 24},
		{"lit set", AttributeSet{
			attr(0, SemanticPosition),
			attr(1, SemanticNormal),
			attr(2, SemanticTexCoord),
		}, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Stride(); got != tt.want {
				t.Errorf("Stride() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAttributeSetFind(t *testing.T) {
	set := AttributeSet{attr(0, SemanticPosition), attr(1, SemanticNormal)}

	a, ok := set.Find(SemanticNormal)
	if !ok {
		t.Fatal("Find(SemanticNormal) = false, want true")
	}
	if a.Slot != 1 {
		t.Errorf("Find(SemanticNormal).Slot = %d, want 1", a.Slot)
	}

	if _, ok := set.Find(SemanticColor); ok {
		t.Error("Find(SemanticColor) = true, want false")
	}
}

func TestPackedLayoutOffsets(t *testing.T) {
	// Slot order decides offsets even when the set is declared shuffled.
	set := AttributeSet{
		attr(2, SemanticTexCoord),
		attr(0, SemanticPosition),
		attr(1, SemanticNormal),
	}
	layout := set.PackedLayout()

	if layout.ArrayStride != 32 {
		t.Errorf("ArrayStride = %d, want 32", layout.ArrayStride)
	}
	if layout.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want per-vertex", layout.StepMode)
	}

	want := []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
		{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
	}
	if len(layout.Attributes) != len(want) {
		t.Fatalf("len(Attributes) = %d, want %d", len(layout.Attributes), len(want))
	}
	for i, w := range want {
		if layout.Attributes[i] != w {
			t.Errorf("Attributes[%d] = %+v, want %+v", i, layout.Attributes[i], w)
		}
	}
}

func TestVariantAccessors(t *testing.T) {
	spec := VariantSpec{
		Name:     "probe",
		Behavior: LitDiffuse,
		Delivery: DeliveryUniformBuffer,
		Attributes: AttributeSet{
			attr(0, SemanticPosition),
			attr(1, SemanticNormal),
			attr(2, SemanticTexCoord),
		},
		TransformBinding: &BindingSlot{Group: 1, Binding: 0},
		MaterialBinding:  &BindingSlot{Group: 0, Binding: 0},
		WGSL:             "shader",
	}
	v := spec.build()

	if v.Name() != "probe" {
		t.Errorf("Name() = %q, want %q", v.Name(), "probe")
	}
	if v.Behavior() != LitDiffuse {
		t.Errorf("Behavior() = %v, want %v", v.Behavior(), LitDiffuse)
	}
	if v.Delivery() != DeliveryUniformBuffer {
		t.Errorf("Delivery() = %v, want %v", v.Delivery(), DeliveryUniformBuffer)
	}
	if v.WGSL() != "shader" {
		t.Errorf("WGSL() = %q, want %q", v.WGSL(), "shader")
	}

	slot, ok := v.TransformBinding()
	if !ok || slot != (BindingSlot{Group: 1, Binding: 0}) {
		t.Errorf("TransformBinding() = %+v, %v, want group 1 binding 0", slot, ok)
	}
	slot, ok = v.MaterialBinding()
	if !ok || slot != (BindingSlot{}) {
		t.Errorf("MaterialBinding() = %+v, %v, want group 0 binding 0", slot, ok)
	}
	if got := v.PushConstantSize(); got != 0 {
		t.Errorf("PushConstantSize() = %d, want 0 for uniform delivery", got)
	}
}

func TestVariantImmutable(t *testing.T) {
	spec := VariantSpec{
		Name:       "probe",
		Behavior:   VertexColorPassthrough,
		Delivery:   DeliveryPushConstant,
		Attributes: AttributeSet{attr(0, SemanticPosition), attr(1, SemanticColor)},
		WGSL:       "shader",
	}
	v := spec.build()

	// Mutating the source spec after build must not reach the variant.
	spec.Attributes[0].Slot = 9
	if got := v.Attributes()[0].Slot; got != 0 {
		t.Errorf("variant attribute slot = %d after spec mutation, want 0", got)
	}

	// Mutating the accessor result must not reach the variant either.
	got := v.Attributes()
	got[1].Semantic = SemanticNormal
	if v.Attributes()[1].Semantic != SemanticColor {
		t.Error("Attributes() result aliases variant state")
	}

	if got := v.PushConstantSize(); got != TransformBlockSize {
		t.Errorf("PushConstantSize() = %d, want %d", got, TransformBlockSize)
	}
}
