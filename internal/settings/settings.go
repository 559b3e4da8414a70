// Package settings models the batch color settings attached to a scene:
// the ordered list of material bindings taking part in a batch render and
// the candidate colors registered for each. The types here are pure data
// with guarded mutations; resolving material names against the live scene
// happens at render time, not here.
package settings

import "fmt"

// ColorEntry is a single candidate color. It has no identity beyond its
// position in the binding's list.
type ColorEntry struct {
	Color RGBA `yaml:"color"`
}

// UnmarshalYAML lets entries be written as bare color literals
// ("#ff8800" or [1, 0.5, 0, 1]) as well as the mapping form.
func (e *ColorEntry) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var c RGBA
	if err := unmarshal(&c); err == nil {
		e.Color = c
		return nil
	}

	type rawEntry struct {
		Color RGBA `yaml:"color"`
	}
	var raw rawEntry
	if err := unmarshal(&raw); err != nil {
		return err
	}
	e.Color = raw.Color
	return nil
}

// MarshalYAML emits the bare color literal form.
func (e ColorEntry) MarshalYAML() (interface{}, error) {
	return e.Color.MarshalYAML()
}

// MaterialBinding associates a material (by name, resolved lazily against
// the scene's material registry) with its ordered candidate colors and the
// color currently selected for editing. The selection is UI state only;
// the render driver never reads it.
type MaterialBinding struct {
	Material    string       `yaml:"material"`
	Colors      []ColorEntry `yaml:"colors"`
	ActiveColor int          `yaml:"active_color,omitempty"`
}

// NewMaterialBinding creates a binding for the named material with one
// default white entry, keeping the at-least-one-color invariant from the
// moment of creation.
func NewMaterialBinding(name string) *MaterialBinding {
	return &MaterialBinding{
		Material: name,
		Colors:   []ColorEntry{{Color: White()}},
	}
}

// AddColor appends a candidate color, selects it, and returns its index.
func (b *MaterialBinding) AddColor(c RGBA) int {
	b.Colors = append(b.Colors, ColorEntry{Color: c.Clamped()})
	b.ActiveColor = len(b.Colors) - 1
	return b.ActiveColor
}

// CanRemoveColor reports whether removing the selected color is allowed.
// It is the precondition the CLI and the editor check before offering the
// remove action.
func (b *MaterialBinding) CanRemoveColor() bool {
	return len(b.Colors) > 1 && b.ActiveColor >= 0 && b.ActiveColor < len(b.Colors)
}

// RemoveColor removes the color at index i. Removing the last remaining
// entry is rejected with ErrLastColor.
func (b *MaterialBinding) RemoveColor(i int) error {
	if i < 0 || i >= len(b.Colors) {
		return fmt.Errorf("%w: %d of %d", ErrColorIndex, i, len(b.Colors))
	}
	if len(b.Colors) == 1 {
		return fmt.Errorf("%w: %q", ErrLastColor, b.Material)
	}

	b.Colors = append(b.Colors[:i], b.Colors[i+1:]...)
	if b.ActiveColor >= i && b.ActiveColor > 0 {
		b.ActiveColor--
	}
	b.ClampSelection()
	return nil
}

// ClampSelection forces the active color index back into bounds.
func (b *MaterialBinding) ClampSelection() {
	if b.ActiveColor < 0 || len(b.Colors) == 0 {
		b.ActiveColor = 0
		return
	}
	if b.ActiveColor >= len(b.Colors) {
		b.ActiveColor = len(b.Colors) - 1
	}
}

// Validate checks the binding invariants: a material name and at least
// one color entry.
func (b *MaterialBinding) Validate() error {
	if b.Material == "" {
		return ErrEmptyMaterialName
	}
	if len(b.Colors) == 0 {
		return fmt.Errorf("binding %q: %w", b.Material, ErrLastColor)
	}
	return nil
}

// BatchSettings is the root aggregate: the ordered material bindings plus
// the binding currently selected for editing. Binding order is render
// grouping order; it determines the shape and ordering of combinations.
type BatchSettings struct {
	Materials []*MaterialBinding `yaml:"materials"`
	Active    int                `yaml:"active,omitempty"`
}

// AddMaterial appends a binding for the named material (initialized with
// one default color), selects it, and returns it.
func (s *BatchSettings) AddMaterial(name string) (*MaterialBinding, error) {
	if name == "" {
		return nil, ErrEmptyMaterialName
	}
	b := NewMaterialBinding(name)
	s.Materials = append(s.Materials, b)
	s.Active = len(s.Materials) - 1
	return b, nil
}

// RemoveMaterial removes the binding at index i.
func (s *BatchSettings) RemoveMaterial(i int) error {
	if i < 0 || i >= len(s.Materials) {
		return fmt.Errorf("%w: %d of %d", ErrMaterialIndex, i, len(s.Materials))
	}
	s.Materials = append(s.Materials[:i], s.Materials[i+1:]...)
	if s.Active >= i && s.Active > 0 {
		s.Active--
	}
	s.ClampSelection()
	return nil
}

// Binding returns the first binding for the named material.
func (s *BatchSettings) Binding(name string) (*MaterialBinding, bool) {
	for _, b := range s.Materials {
		if b.Material == name {
			return b, true
		}
	}
	return nil, false
}

// Selected returns the binding under the selection cursor, or nil when
// there are no bindings.
func (s *BatchSettings) Selected() *MaterialBinding {
	if len(s.Materials) == 0 {
		return nil
	}
	s.ClampSelection()
	return s.Materials[s.Active]
}

// ClampSelection forces all selection indices back into bounds, including
// each binding's active color.
func (s *BatchSettings) ClampSelection() {
	if s.Active < 0 || len(s.Materials) == 0 {
		s.Active = 0
	} else if s.Active >= len(s.Materials) {
		s.Active = len(s.Materials) - 1
	}
	for _, b := range s.Materials {
		b.ClampSelection()
	}
}

// Validate checks every binding's invariants.
func (s *BatchSettings) Validate() error {
	for i, b := range s.Materials {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("binding %d: %w", i, err)
		}
	}
	return nil
}
