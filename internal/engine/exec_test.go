package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromabatch/chromabatch/internal/scene"
)

// fakeRunner records the command it was asked to run.
type fakeRunner struct {
	dir    string
	name   string
	args   []string
	stderr []byte
	err    error
	calls  int
}

func (r *fakeRunner) Run(_ context.Context, dir, name string, args ...string) ([]byte, []byte, error) {
	r.calls++
	r.dir = dir
	r.name = name
	r.args = args
	return nil, r.stderr, r.err
}

func execScene(t *testing.T, command []string) *scene.Scene {
	t.Helper()
	sc := scene.New()
	sc.Render.FilePath = "out/render_003"
	sc.Render.Command = command
	require.NoError(t, sc.SaveTo(filepath.Join(t.TempDir(), "scene.yaml")))
	return sc
}

func TestExec_Render(t *testing.T) {
	sc := execScene(t, []string{"myrenderer", "--scene", TokenScene, "--out", TokenOutput})
	runner := &fakeRunner{}
	eng := &Exec{Scene: sc, Runner: runner}

	require.NoError(t, eng.Render(context.Background(), true))

	assert.Equal(t, "myrenderer", runner.name)
	assert.Equal(t, []string{"--scene", sc.Path(), "--out", "out/render_003.png"}, runner.args)
	assert.Equal(t, filepath.Dir(sc.Path()), runner.dir)
}

func TestExec_RenderFailure(t *testing.T) {
	sc := execScene(t, []string{"myrenderer", TokenOutput})
	runner := &fakeRunner{stderr: []byte("GPU on fire\n"), err: errors.New("exit status 1")}
	eng := &Exec{Scene: sc, Runner: runner}

	err := eng.Render(context.Background(), true)
	require.ErrorIs(t, err, ErrRenderFailed)
	assert.Contains(t, err.Error(), "GPU on fire")
}

func TestExec_NoCommand(t *testing.T) {
	sc := execScene(t, nil)
	eng := &Exec{Scene: sc, Runner: &fakeRunner{}}

	err := eng.Render(context.Background(), true)
	assert.ErrorIs(t, err, ErrNoRenderCommand)
}

func TestExec_NoWrite(t *testing.T) {
	sc := execScene(t, []string{"myrenderer", TokenOutput})
	runner := &fakeRunner{}
	eng := &Exec{Scene: sc, Runner: runner}

	require.NoError(t, eng.Render(context.Background(), false))
	assert.Zero(t, runner.calls, "writeStill=false never spawns the renderer")
}
