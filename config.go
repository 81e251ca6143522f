package glutil

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default context attributes.
const (
	DefaultAntialias             = true
	DefaultAlpha                 = true
	DefaultPremultipliedAlpha    = true
	DefaultPreserveDrawingBuffer = true
	DefaultDepth                 = false
	DefaultStencil               = false
)

// Config is the input of Provision. A nil field means unset; Provision fills
// it with the corresponding default.
type Config struct {
	// Context is returned as is when set.
	Context Context `yaml:"-"`
	// Surface is used instead of a new default surface when set.
	Surface Surface `yaml:"-"`

	Antialias             *bool `yaml:"antialias"`
	Alpha                 *bool `yaml:"alpha"`
	PremultipliedAlpha    *bool `yaml:"premultipliedAlpha"`
	PreserveDrawingBuffer *bool `yaml:"preserveDrawingBuffer"`
	Depth                 *bool `yaml:"depth"`
	Stencil               *bool `yaml:"stencil"`

	// Float enables floating-point textures with linear filtering.
	Float bool `yaml:"float"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Attributes are the resolved context creation attributes.
type Attributes struct {
	Antialias             bool
	Alpha                 bool
	PremultipliedAlpha    bool
	PreserveDrawingBuffer bool
	Depth                 bool
	Stencil               bool

	Width, Height int
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Attributes resolves unset flags to their defaults.
// A nil Config resolves to all defaults.
func (c *Config) Attributes() Attributes {
	if c == nil {
		c = &Config{}
	}
	return Attributes{
		Antialias:             boolOr(c.Antialias, DefaultAntialias),
		Alpha:                 boolOr(c.Alpha, DefaultAlpha),
		PremultipliedAlpha:    boolOr(c.PremultipliedAlpha, DefaultPremultipliedAlpha),
		PreserveDrawingBuffer: boolOr(c.PreserveDrawingBuffer, DefaultPreserveDrawingBuffer),
		Depth:                 boolOr(c.Depth, DefaultDepth),
		Stencil:               boolOr(c.Stencil, DefaultStencil),
		Width:                 c.Width,
		Height:                c.Height,
	}
}

// ParseConfig reads a YAML config. An empty document or a bare scalar, such as
// a label, gives the empty config.
func ParseConfig(b []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	c := &Config{}
	if len(doc.Content) == 0 {
		return c, nil
	}
	root := doc.Content[0]
	switch root.Kind {
	case yaml.ScalarNode, yaml.AliasNode:
		return c, nil
	case yaml.MappingNode:
		if err := root.Decode(c); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: config must be a mapping (line %d)", ErrInvalidArgument, root.Line)
	}
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseConfig(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
