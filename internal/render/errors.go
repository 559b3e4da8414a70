package render

import "errors"

// Sentinel errors for batch driver configuration.
var (
	// ErrNilEngine indicates a driver without a render engine.
	ErrNilEngine = errors.New("render engine must not be nil")

	// ErrNilOutput indicates a driver without an output-path setting.
	ErrNilOutput = errors.New("output-path setting must not be nil")
)
