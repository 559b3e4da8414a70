package render

import "github.com/chromabatch/chromabatch/internal/settings"

// Product lazily enumerates the cartesian product of the eligible
// bindings' color lists. Combinations come out in standard nesting order:
// the last list varies fastest, the first slowest. The order is a
// contract — output files are numbered in enumeration order.
type Product struct {
	lists [][]settings.RGBA
	idx   []int
	done  bool
}

// NewProduct creates a product over lists. Any empty list makes the
// product empty: zero combinations, which is valid, not an error.
func NewProduct(lists [][]settings.RGBA) *Product {
	p := &Product{lists: lists}
	p.Reset()
	return p
}

// Count returns the total number of combinations (the product of the list
// lengths) without materializing them.
func (p *Product) Count() int {
	if len(p.lists) == 0 {
		return 0
	}
	total := 1
	for _, l := range p.lists {
		total *= len(l)
	}
	return total
}

// Reset restarts enumeration from the first combination.
func (p *Product) Reset() {
	p.idx = make([]int, len(p.lists))
	p.done = p.Count() == 0
}

// Next returns the next combination, one color per list in input order.
// The returned slice is freshly allocated; callers may keep it. ok is
// false once the product is exhausted.
func (p *Product) Next() (combo []settings.RGBA, ok bool) {
	if p.done {
		return nil, false
	}

	combo = make([]settings.RGBA, len(p.lists))
	for i, l := range p.lists {
		combo[i] = l[p.idx[i]]
	}

	// Odometer increment, last position fastest.
	for i := len(p.idx) - 1; i >= 0; i-- {
		p.idx[i]++
		if p.idx[i] < len(p.lists[i]) {
			return combo, true
		}
		p.idx[i] = 0
	}
	p.done = true
	return combo, true
}
