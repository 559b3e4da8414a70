// Package engine provides the render engines a batch can drive: a
// built-in software rasterizer and a wrapper around an external renderer
// command. Both read the live scene state at call time.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for render engine invocation.
var (
	// ErrNoRenderCommand indicates an exec engine without a configured
	// renderer command in the scene's render settings.
	ErrNoRenderCommand = errors.New("no render command configured in scene")

	// ErrRenderFailed indicates the external renderer exited non-zero.
	ErrRenderFailed = errors.New("render command failed")
)

// RenderError wraps ErrRenderFailed with the renderer's stderr output.
func RenderError(stderr string) error {
	return fmt.Errorf("%w: %s", ErrRenderFailed, strings.TrimSpace(stderr))
}
