package engine

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/chromabatch/chromabatch/internal/scene"
)

// Swatch is the built-in software engine. It rasterizes the scene's
// current appearance as one vertical band per material, each painted with
// the material's current surface color, and encodes the result as PNG at
// the scene's current output path. It stands in for a full renderer: what
// matters to the batch driver is that it reads live node values and the
// live output path on every call.
type Swatch struct {
	Scene *scene.Scene
}

// NewSwatch creates a swatch engine over sc.
func NewSwatch(sc *scene.Scene) *Swatch {
	return &Swatch{Scene: sc}
}

// Render implements the render operation. When writeStill is false the
// image is rasterized but not written to disk.
func (e *Swatch) Render(ctx context.Context, writeStill bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	width := e.Scene.Render.Width
	height := e.Scene.Render.Height
	if width <= 0 {
		width = scene.DefaultWidth
	}
	if height <= 0 {
		height = scene.DefaultHeight
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	mats := e.Scene.Materials
	bands := len(mats)
	if bands == 0 {
		bands = 1
	}

	for x := 0; x < width; x++ {
		band := x * bands / width
		c := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		if band < len(mats) {
			c = mats[band].SurfaceColor().NRGBA()
		}
		for y := 0; y < height; y++ {
			img.SetNRGBA(x, y, c)
		}
	}

	if !writeStill {
		return nil
	}

	out := e.Scene.OutputPath()
	if filepath.Ext(out) == "" {
		out += e.Scene.Render.Extension()
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output image: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", out, err)
	}
	return f.Close()
}
