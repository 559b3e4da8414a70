package settings

import "errors"

// Sentinel errors for batch settings mutation and validation.
var (
	// ErrInvalidColor indicates a color literal that could not be parsed
	// or has the wrong number of channels.
	ErrInvalidColor = errors.New("invalid color")

	// ErrLastColor indicates an attempt to remove the only color of a
	// binding. Every binding keeps at least one entry at all times.
	ErrLastColor = errors.New("cannot remove the last color of a material binding")

	// ErrColorIndex indicates a color index outside the binding's list.
	ErrColorIndex = errors.New("color index out of range")

	// ErrMaterialIndex indicates a binding index outside the settings list.
	ErrMaterialIndex = errors.New("material index out of range")

	// ErrEmptyMaterialName indicates a binding without a material name.
	ErrEmptyMaterialName = errors.New("material name must not be empty")
)
