// Package config loads the editor configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"honnef.co/go/casteljau"
)

// Config represents a casteljau.yaml configuration file.
type Config struct {
	Canvas             CanvasConfig   `yaml:"canvas"`
	ControlPointRadius float64        `yaml:"control_point_radius"`
	Sampling           SamplingConfig `yaml:"sampling"`
	Palette            PaletteConfig  `yaml:"palette"`
}

// CanvasConfig contains the canvas dimensions in pixels.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SamplingConfig contains the parameter range at which curves are sampled.
type SamplingConfig struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Step  float64 `yaml:"step"`
}

// PaletteConfig contains colors in #rrggbb or #rrggbbaa notation.
type PaletteConfig struct {
	Background string `yaml:"background,omitempty"`
	Axes       string `yaml:"axes,omitempty"`
	Point      string `yaml:"point,omitempty"`
	Polygon    string `yaml:"polygon,omitempty"`
	Curve      string `yaml:"curve,omitempty"`
	Crossplot  string `yaml:"crossplot,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Canvas:             CanvasConfig{Width: 400, Height: 400},
		ControlPointRadius: casteljau.DefaultRadius,
		Sampling: SamplingConfig{
			Start: casteljau.DefaultSampleRange.Start,
			End:   casteljau.DefaultSampleRange.End,
			Step:  casteljau.DefaultSampleRange.Step,
		},
		Palette: PaletteConfig{
			Background: "#ffd5fd",
			Axes:       "#0000ff",
			Point:      "#800080",
			Polygon:    "#800080",
			Curve:      "#000000",
			Crossplot:  "#808080",
		},
	}
}

// Parse decodes YAML data over the defaults and validates the result. Fields
// missing from data keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional reads the configuration file at path if it exists and returns
// the defaults otherwise.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks the configuration for values the editor cannot work with.
func (cfg *Config) Validate() error {
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.ControlPointRadius <= 0 {
		return fmt.Errorf("invalid control point radius %g", cfg.ControlPointRadius)
	}
	if !cfg.SampleRange().Valid() {
		s := cfg.Sampling
		return fmt.Errorf("invalid sampling range [%g, %g] step %g", s.Start, s.End, s.Step)
	}
	for _, f := range cfg.Palette.fields() {
		if _, err := ParseColor(f.value); err != nil {
			return fmt.Errorf("palette %s: %w", f.name, err)
		}
	}
	return nil
}

// SampleRange returns the configured sampling range.
func (cfg *Config) SampleRange() casteljau.SampleRange {
	return casteljau.SampleRange{
		Start: cfg.Sampling.Start,
		End:   cfg.Sampling.End,
		Step:  cfg.Sampling.Step,
	}
}

// Size returns the configured canvas size.
func (cfg *Config) Size() casteljau.Size {
	return casteljau.Sz(float64(cfg.Canvas.Width), float64(cfg.Canvas.Height))
}

// CurvePalette returns the colors for drawing curves. Colors that fail to
// parse, or are empty, fall back to [casteljau.DefaultPalette].
func (cfg *Config) CurvePalette() casteljau.Palette {
	p := casteljau.DefaultPalette
	p.Point = colorOr(cfg.Palette.Point, p.Point)
	p.Polygon = colorOr(cfg.Palette.Polygon, p.Polygon)
	p.Curve = colorOr(cfg.Palette.Curve, p.Curve)
	p.Crossplot = colorOr(cfg.Palette.Crossplot, p.Crossplot)
	return p
}

// Background returns the background color, or nil if none is configured.
func (cfg *Config) Background() color.Color { return colorOr(cfg.Palette.Background, nil) }

// Axes returns the axis color, or nil if none is configured.
func (cfg *Config) Axes() color.Color { return colorOr(cfg.Palette.Axes, nil) }

type paletteField struct {
	name  string
	value string
}

func (p PaletteConfig) fields() []paletteField {
	return []paletteField{
		{"background", p.Background},
		{"axes", p.Axes},
		{"point", p.Point},
		{"polygon", p.Polygon},
		{"curve", p.Curve},
		{"crossplot", p.Crossplot},
	}
}

func colorOr(s string, def color.Color) color.Color {
	if s == "" {
		return def
	}
	c, err := ParseColor(s)
	if err != nil {
		return def
	}
	return c
}

// ParseColor parses a color in #rgb, #rrggbb or #rrggbbaa notation. The empty
// string is accepted and yields a nil color.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return nil, fmt.Errorf("color %q must start with '#'", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("color %q has invalid length", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, err)
	}
	// Straight alpha in the file, premultiplied in color.RGBA.
	c := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(c), nil
}
