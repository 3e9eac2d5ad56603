package forward

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() = %v", err)
	}
	if reg.Len() != 5 {
		t.Errorf("Len() = %d, want 5", reg.Len())
	}

	want := []string{
		VariantDepthDebug,
		VariantMaterialSimple,
		VariantMeshView,
		VariantNormalDebug,
		VariantUnlit,
	}
	got := reg.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistryVariantLookup(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() = %v", err)
	}

	v, ok := reg.Variant(VariantUnlit)
	if !ok {
		t.Fatalf("Variant(%q) not found", VariantUnlit)
	}
	if v.Name() != VariantUnlit {
		t.Errorf("Name() = %q, want %q", v.Name(), VariantUnlit)
	}

	if _, ok := reg.Variant("wireframe"); ok {
		t.Error("Variant(\"wireframe\") = true, want false")
	}
}

func TestRegistryNamesCopy(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() = %v", err)
	}

	names := reg.Names()
	names[0] = "tampered"
	if reg.Names()[0] == "tampered" {
		t.Error("Names() result aliases registry state")
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	a := validSpec()
	b := validSpec()

	reg, err := New(DefaultConfig(), a, b)
	if reg != nil {
		t.Error("New() returned a registry alongside an error")
	}
	if !errors.Is(err, ErrDuplicateVariant) {
		t.Errorf("New() = %v, want %v", err, ErrDuplicateVariant)
	}
}

func TestNewIsAtomic(t *testing.T) {
	good := validSpec()
	bad := validSpec()
	bad.Name = "broken"
	bad.WGSL = ""

	reg, err := New(DefaultConfig(), good, bad)
	if reg != nil {
		t.Error("New() returned a registry although one spec failed")
	}
	if !errors.Is(err, ErrEmptyShader) {
		t.Errorf("New() = %v, want %v", err, ErrEmptyShader)
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error type %T, want to contain *ValidationError", err)
	}
	if ve.Variant != "broken" {
		t.Errorf("ValidationError.Variant = %q, want %q", ve.Variant, "broken")
	}
}

func TestNewJoinsAllFailures(t *testing.T) {
	// Two broken specs: both must be reported in one construction error.
	first := validSpec()
	first.Name = "first"
	first.WGSL = ""

	second := validSpec()
	second.Name = "second"
	second.TransformBinding = nil

	_, err := New(DefaultConfig(), first, second)
	if err == nil {
		t.Fatal("New() = nil error, want joined failures")
	}
	if !errors.Is(err, ErrEmptyShader) {
		t.Errorf("joined error misses %v: %v", ErrEmptyShader, err)
	}
	if !errors.Is(err, ErrMissingTransformBinding) {
		t.Errorf("joined error misses %v: %v", ErrMissingTransformBinding, err)
	}
	for _, name := range []string{"first", "second"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("joined error does not name %q: %v", name, err)
		}
	}
}

func TestNewAppliesConfiguredLimits(t *testing.T) {
	// A 128-byte budget rejects every push variant but keeps uniform
	// delivery valid.
	cfg := Config{Limits: Limits{MaxPushConstantSize: 128}}

	push := validSpec()
	push.Delivery = DeliveryPushConstant
	push.TransformBinding = nil
	if _, err := New(cfg, push); !errors.Is(err, ErrPushConstantBudget) {
		t.Errorf("New(push) = %v, want %v", err, ErrPushConstantBudget)
	}

	if _, err := New(cfg, validSpec()); err != nil {
		t.Errorf("New(uniform) = %v, want nil", err)
	}
}

func TestNewAcceptsCustomAlongsideBuiltins(t *testing.T) {
	custom := VariantSpec{
		Name:     "normal_debug_ubo",
		Behavior: NormalDebug,
		Delivery: DeliveryUniformBuffer,
		Attributes: AttributeSet{
			attr(0, SemanticPosition),
			attr(1, SemanticNormal),
		},
		TransformBinding: &BindingSlot{Group: 0, Binding: 0},
		WGSL:             "stub",
	}

	reg, err := New(DefaultConfig(), append(BuiltinSpecs(), custom)...)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if reg.Len() != 6 {
		t.Errorf("Len() = %d, want 6", reg.Len())
	}
	if _, ok := reg.Variant("normal_debug_ubo"); !ok {
		t.Error("custom variant not registered")
	}
}
