package scene

import "errors"

// Sentinel errors for scene loading and material resolution.
var (
	// ErrMaterialNotFound indicates a lookup for a material name the
	// scene does not contain.
	ErrMaterialNotFound = errors.New("material not found")

	// ErrInvalidVersion indicates a scene version field that is not a
	// parseable semantic version.
	ErrInvalidVersion = errors.New("invalid scene format version")

	// ErrUnsupportedVersion indicates a scene written by an incompatible
	// format revision.
	ErrUnsupportedVersion = errors.New("unsupported scene format version")

	// ErrNoOutputPath indicates render settings without an output path.
	ErrNoOutputPath = errors.New("render output path must not be empty")

	// ErrDuplicateMaterial indicates two scene materials sharing a name.
	ErrDuplicateMaterial = errors.New("duplicate material name")
)
