package gridscene

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLayout is wrapped by every layout validation error.
var ErrInvalidLayout = errors.New("gridscene: invalid layout")

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Debug    bool   `yaml:"debug"`
	LogLevel string `yaml:"log_level"`
}

// Defaults for RunConfig fields left empty.
const (
	defaultTitle    = "gridscene"
	defaultWidth    = 640
	defaultHeight   = 480
	defaultLogLevel = "info"
)

// withDefaults fills unset fields.
func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	return c
}

// LoadRunConfig parses a YAML run configuration and applies defaults.
func LoadRunConfig(data []byte) (RunConfig, error) {
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse run config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// --- Layout ---

// Layout is a declarative scene description: surfaces with their cells and
// the entities placed on them.
type Layout struct {
	Surfaces []SurfaceLayout `yaml:"surfaces"`
}

// SurfaceLayout describes one surface.
type SurfaceLayout struct {
	Name     string         `yaml:"name"`
	Position [2]int         `yaml:"position"`
	Width    int            `yaml:"width"`
	Height   int            `yaml:"height"`
	Cell     [2]int         `yaml:"cell"`
	View     *ViewLayout    `yaml:"view"`
	Rows     []string       `yaml:"rows"`
	Entities []EntityLayout `yaml:"entities"`
}

// ViewLayout is a surface viewport in cells.
type ViewLayout struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EntityLayout describes one entity. Sync attaches a ViewSync;
// HandleVisibility defaults to true when omitted.
type EntityLayout struct {
	Name             string `yaml:"name"`
	Position         [2]int `yaml:"position"`
	Cell             [2]int `yaml:"cell"`
	Glyph            string `yaml:"glyph"`
	Sync             bool   `yaml:"sync"`
	HandleVisibility *bool  `yaml:"handle_visibility"`
}

// LoadLayout parses and validates a YAML layout.
func LoadLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *Layout) validate() error {
	if len(l.Surfaces) == 0 {
		return fmt.Errorf("%w: no surfaces", ErrInvalidLayout)
	}
	names := make(map[string]bool)
	claim := func(name string) error {
		if name == "" {
			return fmt.Errorf("%w: empty name", ErrInvalidLayout)
		}
		if names[name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidLayout, name)
		}
		names[name] = true
		return nil
	}
	for _, sl := range l.Surfaces {
		if err := claim(sl.Name); err != nil {
			return err
		}
		if sl.Width <= 0 || sl.Height <= 0 {
			return fmt.Errorf("%w: surface %q size %dx%d", ErrInvalidLayout, sl.Name, sl.Width, sl.Height)
		}
		if sl.Cell[0] <= 0 || sl.Cell[1] <= 0 {
			return fmt.Errorf("%w: surface %q cell size %v", ErrInvalidLayout, sl.Name, sl.Cell)
		}
		for _, el := range sl.Entities {
			if err := claim(el.Name); err != nil {
				return err
			}
			if el.Cell[0] <= 0 || el.Cell[1] <= 0 {
				return fmt.Errorf("%w: entity %q cell size %v", ErrInvalidLayout, el.Name, el.Cell)
			}
		}
	}
	return nil
}

// BuiltLayout holds the nodes created by Layout.Build, keyed by name.
type BuiltLayout struct {
	Surfaces  map[string]*Surface
	Entities  map[string]*Entity
	ViewSyncs map[string]*ViewSync
}

// Build creates the layout's nodes under the scene root. Surfaces are added
// in declaration order; entities become children of their surface.
func (l *Layout) Build(s *Scene) (*BuiltLayout, error) {
	out := &BuiltLayout{
		Surfaces:  make(map[string]*Surface, len(l.Surfaces)),
		Entities:  make(map[string]*Entity),
		ViewSyncs: make(map[string]*ViewSync),
	}
	for _, sl := range l.Surfaces {
		sf := NewSurface(sl.Name, sl.Width, sl.Height, Size{sl.Cell[0], sl.Cell[1]})
		sf.Node().SetPosition(Point{sl.Position[0], sl.Position[1]})
		if sl.View != nil {
			sf.SetViewSize(sl.View.Width, sl.View.Height)
			sf.SetViewPosition(Point{sl.View.X, sl.View.Y})
		}
		for y, row := range sl.Rows {
			sf.Print(0, y, row, ColorWhite)
		}

		for _, el := range sl.Entities {
			var glyph rune
			for _, r := range el.Glyph {
				glyph = r
				break
			}
			e := NewEntity(el.Name, Size{el.Cell[0], el.Cell[1]}, Cell{Glyph: glyph, Fg: ColorWhite})
			e.SetPosition(Point{el.Position[0], el.Position[1]})
			sf.AddChild(e.Node())
			if el.Sync {
				vs := NewViewSync()
				if el.HandleVisibility != nil {
					vs.HandleVisibility = *el.HandleVisibility
				}
				if err := e.AddComponent(vs); err != nil {
					return nil, fmt.Errorf("attach view sync to %q: %w", el.Name, err)
				}
				out.ViewSyncs[el.Name] = vs
			}
			out.Entities[el.Name] = e
		}

		s.Root().AddChild(sf.Node())
		out.Surfaces[sl.Name] = sf
	}
	return out, nil
}
