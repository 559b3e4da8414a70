package render

import "github.com/chromabatch/chromabatch/internal/settings"

// Plan is the filtered, countable batch: the eligible bindings plus the
// combination product over their color lists.
type Plan struct {
	Bindings []Binding

	product *Product
}

// NewPlan filters the batch settings against the live scene and builds
// the combination product. Diagnostics for excluded bindings go to rep.
func NewPlan(bs *settings.BatchSettings, res MaterialResolver, rep Reporter) *Plan {
	bindings := EligibleBindings(bs, res, rep)

	lists := make([][]settings.RGBA, len(bindings))
	for i, b := range bindings {
		lists[i] = b.Colors
	}

	return &Plan{
		Bindings: bindings,
		product:  NewProduct(lists),
	}
}

// Count returns the total number of renders the plan would perform.
func (p *Plan) Count() int {
	if len(p.Bindings) == 0 {
		return 0
	}
	return p.product.Count()
}

// Combinations returns the plan's combination sequence, restarted from
// the beginning.
func (p *Plan) Combinations() *Product {
	p.product.Reset()
	return p.product
}
