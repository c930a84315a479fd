// Package config loads the renderer and viewer settings from a TOML file.
package config

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"georaster/internal/pixel"
)

type Config struct {
	Map    Map    `toml:"map"`
	Label  Label  `toml:"label"`
	Viewer Viewer `toml:"viewer"`
}

// Map controls the headless render and the colors used for each layer.
type Map struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	Background  string  `toml:"background"`
	Fill        string  `toml:"fill"`
	Line        string  `toml:"line"`
	Point       string  `toml:"point"`
	PointRadius float64 `toml:"point_radius"`
}

// Label is the caption composited over the map.
type Label struct {
	Text  string  `toml:"text"`
	Size  float64 `toml:"size"`
	Color string  `toml:"color"`
	X     int     `toml:"x"`
	Y     int     `toml:"y"`
}

type Viewer struct {
	HoverColor string `toml:"hover_color"`
	MaxZoom    int    `toml:"max_zoom"`
}

func Default() Config {
	return Config{
		Map: Map{
			Width:       720,
			Height:      360,
			Background:  "#0B0F14",
			Fill:        "#2E7D32",
			Line:        "#1565C0",
			Point:       "#C62828",
			PointRadius: 3,
		},
		Label: Label{
			Size:  18,
			Color: "#FFFFFF",
			X:     4,
			Y:     4,
		},
		Viewer: Viewer{
			HoverColor: "#FFA500",
			MaxZoom:    8,
		},
	}
}

// Load reads path on top of the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(b)
}

// Parse decodes TOML over the defaults. Unknown keys are rejected.
func Parse(b []byte) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Map.Width < 2 || c.Map.Height < 2 {
		errs = append(errs, fmt.Errorf("map size %dx%d: both sides must be at least 2", c.Map.Width, c.Map.Height))
	}
	if c.Map.PointRadius < 0 {
		errs = append(errs, errors.New("map.point_radius must not be negative"))
	}
	if c.Label.Size <= 0 {
		errs = append(errs, errors.New("label.size must be positive"))
	}
	if c.Viewer.MaxZoom < 1 {
		errs = append(errs, errors.New("viewer.max_zoom must be at least 1"))
	}
	for key, v := range map[string]string{
		"map.background":     c.Map.Background,
		"map.fill":           c.Map.Fill,
		"map.line":           c.Map.Line,
		"map.point":          c.Map.Point,
		"label.color":        c.Label.Color,
		"viewer.hover_color": c.Viewer.HoverColor,
	} {
		if _, err := ParseColor(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// ParseColor reads "#RRGGBB" or "#RRGGBBAA" into an RGBA pixel.Color.
// Alpha defaults to opaque.
func ParseColor(s string) (pixel.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return pixel.Color{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return pixel.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	c := pixel.Color{b[0], b[1], b[2], 0xFF}
	if len(b) == 4 {
		c[3] = b[3]
	}
	return c, nil
}

// MustColor is ParseColor for values that already passed Validate.
func MustColor(s string) pixel.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
