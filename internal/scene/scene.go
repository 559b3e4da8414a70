// Package scene models the host scene document: the material registry
// with per-material shading graphs, the shared render settings (output
// path, image format, resolution), and the attached batch color settings.
// The document is a YAML file; the batch render core treats a loaded
// Scene as the live scene state it reads and mutates.
package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/chromabatch/chromabatch/internal/settings"
)

// FormatVersion is the scene format revision this build writes.
const FormatVersion = "1.1.0"

// supportedVersions gates which scene format revisions this build loads.
const supportedVersions = "^1.0"

// Default render settings applied on load when the scene omits them.
const (
	DefaultFormat = "png"
	DefaultWidth  = 512
	DefaultHeight = 512
)

// RenderSettings is the shared mutable render state. FilePath is the
// output-path setting the batch driver captures, mutates, and restores
// around every render.
type RenderSettings struct {
	FilePath string   `yaml:"filepath"`
	Format   string   `yaml:"format,omitempty"`
	Width    int      `yaml:"width,omitempty"`
	Height   int      `yaml:"height,omitempty"`
	Command  []string `yaml:"command,omitempty,flow"`
}

// Extension returns the image file extension for the configured format,
// including the leading dot. Unknown or empty formats fall back to ".png".
func (r *RenderSettings) Extension() string {
	switch strings.ToLower(r.Format) {
	case "", "png":
		return ".png"
	default:
		return "." + strings.ToLower(r.Format)
	}
}

// Scene is the root document.
type Scene struct {
	Version   string                 `yaml:"version"`
	Render    RenderSettings         `yaml:"render"`
	Materials []*Material            `yaml:"materials"`
	Batch     settings.BatchSettings `yaml:"batch"`

	path string
}

// New creates a starter scene with one example material wired the way a
// batch render expects: an RGB node feeding a shader, plus one binding
// with a single default color.
func New() *Scene {
	sc := &Scene{
		Version: FormatVersion,
		Render: RenderSettings{
			FilePath: "renders/batch",
			Format:   DefaultFormat,
			Width:    DefaultWidth,
			Height:   DefaultHeight,
		},
		Materials: []*Material{
			{
				Name:     "Material",
				UseNodes: true,
				Nodes: []*Node{
					{Kind: NodeKindRGB, Label: "Base Color", Value: settings.White()},
					{Kind: NodeKindBSDF},
					{Kind: NodeKindOutput},
				},
			},
		},
	}
	if _, err := sc.Batch.AddMaterial("Material"); err != nil {
		panic(err) // name is a non-empty constant
	}
	return sc
}

// Load reads and validates a scene document from path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}

	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	sc.path = path

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}

	sc.applyDefaults()
	sc.Batch.ClampSelection()
	return &sc, nil
}

// Validate checks the format version, render settings, material registry,
// and the embedded batch settings.
func (s *Scene) Validate() error {
	if err := checkVersion(s.Version); err != nil {
		return err
	}
	if s.Render.FilePath == "" {
		return ErrNoOutputPath
	}

	seen := make(map[string]struct{}, len(s.Materials))
	for _, m := range s.Materials {
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateMaterial, m.Name)
		}
		seen[m.Name] = struct{}{}
	}

	return s.Batch.Validate()
}

// LookupMaterial resolves a material name against the registry. It is the
// capability the eligibility filter depends on; unknown names return a
// wrapped ErrMaterialNotFound rather than aborting anything.
func (s *Scene) LookupMaterial(name string) (*Material, error) {
	for _, m := range s.Materials {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrMaterialNotFound, name)
}

// OutputPath reads the shared output-path setting.
func (s *Scene) OutputPath() string {
	return s.Render.FilePath
}

// SetOutputPath overwrites the shared output-path setting.
func (s *Scene) SetOutputPath(path string) {
	s.Render.FilePath = path
}

// Path returns where the scene was loaded from or last saved to.
func (s *Scene) Path() string {
	return s.path
}

// Save writes the scene back to the path it was loaded from.
func (s *Scene) Save() error {
	if s.path == "" {
		return fmt.Errorf("scene has no file path")
	}
	return s.SaveTo(s.path)
}

// SaveTo writes the scene document to path, creating parent directories
// as needed, and remembers path for later saves.
func (s *Scene) SaveTo(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating scene directory: %w", err)
		}
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing scene %s: %w", path, err)
	}
	s.path = path
	return nil
}

// applyDefaults fills optional render settings after a successful load.
func (s *Scene) applyDefaults() {
	if s.Render.Format == "" {
		s.Render.Format = DefaultFormat
	}
	if s.Render.Width <= 0 {
		s.Render.Width = DefaultWidth
	}
	if s.Render.Height <= 0 {
		s.Render.Height = DefaultHeight
	}
}

// checkVersion validates the scene format version against the supported
// constraint.
func checkVersion(v string) error {
	if v == "" {
		return fmt.Errorf("%w: missing version field", ErrInvalidVersion)
	}

	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}

	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: scene is %s, this build supports %s", ErrUnsupportedVersion, v, supportedVersions)
	}
	return nil
}
