package config

import (
	"fmt"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/retinalab/oct-lesion-tools/internal/measure"
)

// Lesion describes one lesion type: its label code in the mask, its
// display color and how it is measured.
type Lesion struct {
	// Name is the display name, e.g. "SRF". Used as the key in the
	// measurement record and in the legend.
	Name string `yaml:"name"`

	// Code is the label value identifying this lesion in the mask (0-255).
	Code int `yaml:"code"`

	// Color is the display color as "#RRGGBB".
	Color string `yaml:"color"`

	// Kind selects the measurement: "area", "max-height" or "max-width".
	Kind string `yaml:"kind"`
}

// MeasureKind returns the parsed measurement kind. The lesion must
// have passed Validate.
func (l Lesion) MeasureKind() measure.Kind {
	k, err := measure.ParseKind(l.Kind)
	if err != nil {
		panic(fmt.Sprintf("config: lesion %q not validated: %v", l.Name, err))
	}
	return k
}

// NRGBA returns the display color as an opaque NRGBA value. The lesion
// must have passed Validate.
func (l Lesion) NRGBA() color.NRGBA {
	c, err := colorful.Hex(l.Color)
	if err != nil {
		panic(fmt.Sprintf("config: lesion %q not validated: %v", l.Name, err))
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Config holds the full engine configuration.
type Config struct {
	// Lesions is the lesion table, in legend order.
	Lesions []Lesion `yaml:"lesions"`

	// CaliperMinHeightPx is the component height below which a PED-style
	// measurement is rendered as an arrow instead of an I-beam caliper.
	// A component exactly at the threshold still gets a caliper.
	CaliperMinHeightPx int `yaml:"caliperMinHeightPx"`

	// BaselineBandPx is the depth in pixels of the baseline band used
	// for width-kind measurements.
	BaselineBandPx int `yaml:"baselineBandPx"`
}

// Default returns the canonical configuration: the AROI label codes,
// the colorblind-friendly palette and the standard thresholds.
func Default() Config {
	return Config{
		Lesions: []Lesion{
			{Name: "SRF", Code: 161, Color: "#00FFFF", Kind: "area"},
			{Name: "Cyst", Code: 115, Color: "#FFA500", Kind: "area"},
			{Name: "PED", Code: 138, Color: "#FF00FF", Kind: "max-height"},
			{Name: "Drusen", Code: 69, Color: "#FFFF00", Kind: "max-width"},
		},
		CaliperMinHeightPx: 15,
		BaselineBandPx:     3,
	}
}

// Load reads a configuration from a YAML file. A missing file yields
// the default configuration; a present but malformed file is an error.
// The result is always validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the lesion table and thresholds. It must pass before
// the Config is handed to the analyzer.
func (c Config) Validate() error {
	if len(c.Lesions) == 0 {
		return fmt.Errorf("lesion table is empty")
	}
	seenName := make(map[string]bool)
	seenCode := make(map[int]bool)
	for _, l := range c.Lesions {
		if l.Name == "" {
			return fmt.Errorf("lesion with code %d has no name", l.Code)
		}
		if seenName[l.Name] {
			return fmt.Errorf("duplicate lesion name %q", l.Name)
		}
		seenName[l.Name] = true
		if l.Code < 1 || l.Code > 255 {
			return fmt.Errorf("lesion %q: code %d outside 1-255", l.Name, l.Code)
		}
		if seenCode[l.Code] {
			return fmt.Errorf("duplicate lesion code %d", l.Code)
		}
		seenCode[l.Code] = true
		if _, err := colorful.Hex(l.Color); err != nil {
			return fmt.Errorf("lesion %q: bad color %q: %w", l.Name, l.Color, err)
		}
		if _, err := measure.ParseKind(l.Kind); err != nil {
			return fmt.Errorf("lesion %q: %w", l.Name, err)
		}
	}
	if c.CaliperMinHeightPx < 0 {
		return fmt.Errorf("caliperMinHeightPx must not be negative")
	}
	if c.BaselineBandPx < 0 {
		return fmt.Errorf("baselineBandPx must not be negative")
	}
	return nil
}
