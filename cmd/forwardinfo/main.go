// Command forwardinfo prints the contract of the shipped pipeline
// variants: what each one consumes and where its blocks bind.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gogpu/forward"
	"github.com/gogpu/forward/shaders"
)

func main() {
	var (
		name    = flag.String("variant", "", "print a single variant")
		wgsl    = flag.Bool("wgsl", false, "dump WGSL source instead of the contract")
		spirv   = flag.Bool("spirv", false, "translate each shader to SPIR-V and report its size")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		forward.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	reg, err := forward.Default()
	if err != nil {
		log.Fatalf("Failed to build registry: %v", err)
	}

	names := reg.Names()
	if *name != "" {
		if _, ok := reg.Variant(*name); !ok {
			log.Fatalf("Unknown variant %q (have %s)", *name, strings.Join(names, ", "))
		}
		names = []string{*name}
	}

	if *wgsl {
		for _, n := range names {
			v, _ := reg.Variant(n)
			fmt.Printf("// ---- %s ----\n%s\n", n, v.WGSL())
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tBEHAVIOR\tTRANSFORMS\tMATERIAL\tATTRIBUTES\tSTRIDE")
	for _, n := range names {
		v, _ := reg.Variant(n)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			v.Name(), v.Behavior(), transformCell(v), materialCell(v),
			attributeCell(v), v.VertexLayout().ArrayStride)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to write table: %v", err)
	}

	if *spirv {
		fmt.Println()
		for _, n := range names {
			v, _ := reg.Variant(n)
			words, err := shaders.CompileSPIRV(v.WGSL())
			if err != nil {
				log.Fatalf("Failed to translate %s: %v", n, err)
			}
			fmt.Printf("%s: %d SPIR-V words\n", n, len(words))
		}
	}
}

func transformCell(v *forward.PipelineVariant) string {
	if slot, ok := v.TransformBinding(); ok {
		return fmt.Sprintf("uniform g%db%d", slot.Group, slot.Binding)
	}
	return fmt.Sprintf("push %dB", v.PushConstantSize())
}

func materialCell(v *forward.PipelineVariant) string {
	slot, ok := v.MaterialBinding()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("uniform g%db%d", slot.Group, slot.Binding)
}

func attributeCell(v *forward.PipelineVariant) string {
	attrs := v.Attributes()
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = fmt.Sprintf("%d:%s", a.Slot, a.Semantic)
	}
	return strings.Join(parts, " ")
}
