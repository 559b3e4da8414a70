package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromabatch/chromabatch/internal/settings"
)

const testScene = `version: "1.0.0"
render:
  filepath: out/render
  width: 64
  height: 32
materials:
  - name: Paint
    use_nodes: true
    nodes:
      - kind: texture
      - kind: rgb
        label: Base Color
        value: "#ff0000"
      - kind: rgb
        label: Second
        value: "#00ff00"
      - kind: bsdf
  - name: Flat
    use_nodes: false
batch:
  materials:
    - material: Paint
      colors:
        - "#ff0000"
        - [0, 0, 1, 1]
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	sc, err := Load(writeScene(t, testScene))
	require.NoError(t, err)

	assert.Equal(t, "out/render", sc.OutputPath())
	assert.Equal(t, 64, sc.Render.Width)
	assert.Equal(t, "png", sc.Render.Format, "format defaults to png")
	assert.Equal(t, ".png", sc.Render.Extension())

	require.Len(t, sc.Materials, 2)
	require.Len(t, sc.Batch.Materials, 1)
	assert.Equal(t, settings.RGBA{0, 0, 1, 1}, sc.Batch.Materials[0].Colors[1].Color)
}

func TestLoad_VersionGate(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr error
	}{
		{name: "supported", version: "1.0.0"},
		{name: "supported minor", version: "1.3.0"},
		{name: "future major", version: "2.0.0", wantErr: ErrUnsupportedVersion},
		{name: "garbage", version: "latest", wantErr: ErrInvalidVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "version: \"" + tt.version + "\"\nrender:\n  filepath: out/r\n"
			_, err := Load(writeScene(t, doc))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("missing version", func(t *testing.T) {
		_, err := Load(writeScene(t, "render:\n  filepath: out/r\n"))
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("no output path", func(t *testing.T) {
		_, err := Load(writeScene(t, "version: \"1.0.0\"\n"))
		assert.ErrorIs(t, err, ErrNoOutputPath)
	})

	t.Run("duplicate materials", func(t *testing.T) {
		doc := `version: "1.0.0"
render:
  filepath: out/r
materials:
  - name: Paint
  - name: Paint
`
		_, err := Load(writeScene(t, doc))
		assert.ErrorIs(t, err, ErrDuplicateMaterial)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestLookupMaterial(t *testing.T) {
	sc, err := Load(writeScene(t, testScene))
	require.NoError(t, err)

	m, err := sc.LookupMaterial("Paint")
	require.NoError(t, err)
	assert.Equal(t, "Paint", m.Name)

	_, err = sc.LookupMaterial("Missing")
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestMaterial_FirstRGBNode(t *testing.T) {
	sc, err := Load(writeScene(t, testScene))
	require.NoError(t, err)

	paint, err := sc.LookupMaterial("Paint")
	require.NoError(t, err)

	node, ok := paint.FirstRGBNode()
	require.True(t, ok)
	assert.Equal(t, "Base Color", node.Label, "first RGB node in declared order wins")
	assert.Equal(t, settings.RGBA{1, 0, 0, 1}, node.Value)
	assert.Equal(t, node.Value, paint.SurfaceColor())

	flat, err := sc.LookupMaterial("Flat")
	require.NoError(t, err)
	_, ok = flat.FirstRGBNode()
	assert.False(t, ok)
	assert.Equal(t, settings.White(), flat.SurfaceColor())
}

func TestNode_SetValue(t *testing.T) {
	n := &Node{Kind: NodeKindRGB}
	n.SetValue(settings.RGBA{2, -1, 0.5, 1})
	assert.Equal(t, settings.RGBA{1, 0, 0.5, 1}, n.Value)
}

func TestSaveRoundTrip(t *testing.T) {
	sc, err := Load(writeScene(t, testScene))
	require.NoError(t, err)

	// Mutate settings the way the CLI CRUD commands do, then round-trip.
	b, err := sc.Batch.AddMaterial("Flat")
	require.NoError(t, err)
	b.AddColor(settings.RGBA{0.25, 0.5, 0.75, 1})

	out := filepath.Join(t.TempDir(), "saved", "scene.yaml")
	require.NoError(t, sc.SaveTo(out))
	assert.Equal(t, out, sc.Path())

	again, err := Load(out)
	require.NoError(t, err)
	require.Len(t, again.Batch.Materials, 2)
	assert.Equal(t, "Flat", again.Batch.Materials[1].Material)
	require.Len(t, again.Batch.Materials[1].Colors, 2)
	assert.Equal(t, sc.Batch.Materials[1].Colors[1].Color.Hex(),
		again.Batch.Materials[1].Colors[1].Color.Hex())
}

func TestNew(t *testing.T) {
	sc := New()
	require.NoError(t, sc.Validate())
	require.Len(t, sc.Batch.Materials, 1)

	m, err := sc.LookupMaterial(sc.Batch.Materials[0].Material)
	require.NoError(t, err)
	_, ok := m.FirstRGBNode()
	assert.True(t, ok, "starter scene material must be drivable")
}

func TestRenderSettings_Extension(t *testing.T) {
	assert.Equal(t, ".png", (&RenderSettings{}).Extension())
	assert.Equal(t, ".png", (&RenderSettings{Format: "PNG"}).Extension())
	assert.Equal(t, ".tga", (&RenderSettings{Format: "tga"}).Extension())
}
