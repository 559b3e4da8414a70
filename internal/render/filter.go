package render

import (
	"github.com/chromabatch/chromabatch/internal/scene"
	"github.com/chromabatch/chromabatch/internal/settings"
)

// MaterialResolver looks a material up by name in the live scene.
// *scene.Scene satisfies it; tests use a fake.
type MaterialResolver interface {
	LookupMaterial(name string) (*scene.Material, error)
}

// Binding is one eligible material: the resolved material, the RGB node a
// batch render drives, and a copy of the binding's candidate colors.
type Binding struct {
	Material *scene.Material
	Node     *scene.Node
	Colors   []settings.RGBA
}

// EligibleBindings filters batch settings down to the bindings that can
// actually render, preserving order. Per binding, exclusion reasons are a
// warning diagnostic, never an abort: the material does not resolve, does
// not use a node graph, has no RGB node, or repeats a material already
// included (the later binding would only overwrite the earlier one's node
// inside the same combination).
//
// The filter never mutates the settings and is idempotent: two calls
// without external scene changes yield the same bindings and diagnostics.
func EligibleBindings(bs *settings.BatchSettings, res MaterialResolver, rep Reporter) []Binding {
	eligible := make([]Binding, 0, len(bs.Materials))
	seen := make(map[string]struct{}, len(bs.Materials))

	for _, b := range bs.Materials {
		if _, dup := seen[b.Material]; dup {
			Reportf(rep, SeverityWarning,
				"material %q is bound more than once; keeping the first binding", b.Material)
			continue
		}

		mat, err := res.LookupMaterial(b.Material)
		if err != nil {
			Reportf(rep, SeverityWarning, "skipping %q: material not found in scene", b.Material)
			continue
		}
		if !mat.UseNodes {
			Reportf(rep, SeverityWarning, "skipping %q: material does not use a node graph", b.Material)
			continue
		}
		node, ok := mat.FirstRGBNode()
		if !ok {
			Reportf(rep, SeverityWarning, "skipping %q: no RGB node found in material", b.Material)
			continue
		}

		colors := make([]settings.RGBA, len(b.Colors))
		for i, e := range b.Colors {
			colors[i] = e.Color
		}

		seen[b.Material] = struct{}{}
		eligible = append(eligible, Binding{Material: mat, Node: node, Colors: colors})
	}

	return eligible
}
