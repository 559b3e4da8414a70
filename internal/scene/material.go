package scene

import "github.com/chromabatch/chromabatch/internal/settings"

// NodeKind tags a node in a material's shading graph. Only RGB nodes are
// drivable: their output value can be overwritten programmatically to
// change rendered appearance.
type NodeKind string

// Node kinds understood by the scene format.
const (
	NodeKindRGB     NodeKind = "rgb"
	NodeKindBSDF    NodeKind = "bsdf"
	NodeKindTexture NodeKind = "texture"
	NodeKindMix     NodeKind = "mix"
	NodeKindOutput  NodeKind = "output"
)

// Node is one node of a material's shading graph. Value carries the
// node's output color and is meaningful only for RGB nodes.
type Node struct {
	Kind  NodeKind      `yaml:"kind"`
	Label string        `yaml:"label,omitempty"`
	Value settings.RGBA `yaml:"value,omitempty"`
}

// SetValue overwrites the node's output color. The write is destructive:
// the previous value is not recorded anywhere.
func (n *Node) SetValue(c settings.RGBA) {
	n.Value = c.Clamped()
}

// Material is a named entry in the scene's material registry. Nodes are
// kept in declared order; that order decides which RGB node is drivable.
type Material struct {
	Name     string  `yaml:"name"`
	UseNodes bool    `yaml:"use_nodes"`
	Nodes    []*Node `yaml:"nodes,omitempty"`
}

// FirstRGBNode returns the first RGB-kind node in declared order, which
// is the node a batch render drives for this material.
func (m *Material) FirstRGBNode() (*Node, bool) {
	for _, n := range m.Nodes {
		if n.Kind == NodeKindRGB {
			return n, true
		}
	}
	return nil, false
}

// SurfaceColor is the color the material currently renders with: the
// first RGB node's value, or opaque white when the material has none.
func (m *Material) SurfaceColor() settings.RGBA {
	if n, ok := m.FirstRGBNode(); ok {
		return n.Value.Clamped()
	}
	return settings.White()
}
