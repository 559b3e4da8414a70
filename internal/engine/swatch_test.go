package engine

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromabatch/chromabatch/internal/scene"
	"github.com/chromabatch/chromabatch/internal/settings"
)

func testScene(t *testing.T, outBase string) *scene.Scene {
	t.Helper()
	sc := scene.New()
	sc.Render.FilePath = outBase
	sc.Render.Width = 64
	sc.Render.Height = 16
	return sc
}

func TestSwatch_Render(t *testing.T) {
	dir := t.TempDir()
	sc := testScene(t, filepath.Join(dir, "out", "render_000"))

	node, ok := sc.Materials[0].FirstRGBNode()
	require.True(t, ok)
	node.SetValue(settings.RGBA{1, 0, 0, 1})

	eng := NewSwatch(sc)
	require.NoError(t, eng.Render(context.Background(), true))

	// The extension comes from the scene format when the path has none.
	f, err := os.Open(filepath.Join(dir, "out", "render_000.png"))
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	// One material, so the whole image carries its node color.
	r, g, b, a := img.At(10, 8).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestSwatch_Bands(t *testing.T) {
	dir := t.TempDir()
	sc := testScene(t, filepath.Join(dir, "bands"))
	sc.Materials = append(sc.Materials, &scene.Material{
		Name:     "Second",
		UseNodes: true,
		Nodes:    []*scene.Node{{Kind: scene.NodeKindRGB, Value: settings.RGBA{0, 0, 1, 1}}},
	})

	node, ok := sc.Materials[0].FirstRGBNode()
	require.True(t, ok)
	node.SetValue(settings.RGBA{0, 1, 0, 1})

	require.NoError(t, NewSwatch(sc).Render(context.Background(), true))

	f, err := os.Open(filepath.Join(dir, "bands.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	_, g, _, _ := img.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xffff), g, "left band is the first material")

	_, _, b, _ := img.At(60, 5).RGBA()
	assert.Equal(t, uint32(0xffff), b, "right band is the second material")
}

func TestSwatch_NoWrite(t *testing.T) {
	dir := t.TempDir()
	sc := testScene(t, filepath.Join(dir, "none"))

	require.NoError(t, NewSwatch(sc).Render(context.Background(), false))

	_, err := os.Stat(filepath.Join(dir, "none.png"))
	assert.True(t, os.IsNotExist(err), "writeStill=false leaves no file")
}

func TestSwatch_CancelledContext(t *testing.T) {
	sc := testScene(t, filepath.Join(t.TempDir(), "c"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSwatch(sc).Render(ctx, true)
	assert.ErrorIs(t, err, context.Canceled)
}
