package engine

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/chromabatch/chromabatch/internal/logging"
	"github.com/chromabatch/chromabatch/internal/scene"
)

// Placeholder tokens expanded in the configured render command.
const (
	// TokenOutput expands to the current output path (extension included).
	TokenOutput = "{output}"
	// TokenScene expands to the scene file path.
	TokenScene = "{scene}"
)

// CommandRunner executes an external command and returns its stdout,
// stderr, and error. The interface enables testing without spawning real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (stdout []byte, stderr []byte, err error)
}

// execRunner is the default CommandRunner backed by exec.CommandContext.
type execRunner struct{}

func (r *execRunner) Run(ctx context.Context, dir string, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Exec drives an external renderer configured in the scene's render
// settings (render.command). The command's {output} and {scene} tokens
// are expanded per invocation, so each render sees the current output
// path.
type Exec struct {
	Scene  *scene.Scene
	Runner CommandRunner
}

// NewExec creates an exec engine over sc using the real subprocess runner.
func NewExec(sc *scene.Scene) *Exec {
	return &Exec{Scene: sc, Runner: &execRunner{}}
}

// Render implements the render operation by invoking the configured
// command synchronously. A non-zero exit wraps ErrRenderFailed with the
// renderer's stderr. When writeStill is false the command is not run: the
// external renderer's only observable product is the file on disk.
func (e *Exec) Render(ctx context.Context, writeStill bool) error {
	argv := e.Scene.Render.Command
	if len(argv) == 0 {
		return ErrNoRenderCommand
	}
	if !writeStill {
		return nil
	}

	out := e.Scene.OutputPath()
	if filepath.Ext(out) == "" {
		out += e.Scene.Render.Extension()
	}

	expanded := make([]string, len(argv))
	for i, a := range argv {
		a = strings.ReplaceAll(a, TokenOutput, out)
		a = strings.ReplaceAll(a, TokenScene, e.Scene.Path())
		expanded[i] = a
	}

	dir := filepath.Dir(e.Scene.Path())
	logging.FromContext(ctx).Debug().
		Str("component", "engine").
		Strs("argv", expanded).
		Str("dir", dir).
		Msg("invoking external renderer")

	_, stderr, err := e.Runner.Run(ctx, dir, expanded[0], expanded[1:]...)
	if err != nil {
		return RenderError(string(stderr))
	}
	return nil
}
