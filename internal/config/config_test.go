package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/retinalab/oct-lesion-tools/internal/measure"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}

	if len(cfg.Lesions) != 4 {
		t.Fatalf("lesions: got %d, want 4", len(cfg.Lesions))
	}

	want := []struct {
		name string
		code int
		kind measure.Kind
	}{
		{"SRF", 161, measure.KindArea},
		{"Cyst", 115, measure.KindArea},
		{"PED", 138, measure.KindMaxHeight},
		{"Drusen", 69, measure.KindMaxWidth},
	}
	for i, w := range want {
		l := cfg.Lesions[i]
		if l.Name != w.name || l.Code != w.code || l.MeasureKind() != w.kind {
			t.Errorf("lesion %d: got %s/%d/%v, want %s/%d/%v",
				i, l.Name, l.Code, l.MeasureKind(), w.name, w.code, w.kind)
		}
	}

	if cfg.CaliperMinHeightPx != 15 {
		t.Errorf("caliper threshold: got %d, want 15", cfg.CaliperMinHeightPx)
	}
	if cfg.BaselineBandPx != 3 {
		t.Errorf("baseline band: got %d, want 3", cfg.BaselineBandPx)
	}
}

func TestLesionNRGBA(t *testing.T) {
	l := Lesion{Name: "SRF", Code: 161, Color: "#00FFFF", Kind: "area"}
	got := l.NRGBA()
	want := color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	if got != want {
		t.Errorf("NRGBA: got %v, want %v", got, want)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Lesions) != 4 || cfg.CaliperMinHeightPx != 15 {
		t.Error("missing file should yield the default configuration")
	}
}

func TestLoad_OverridesFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	doc := `
caliperMinHeightPx: 20
lesions:
  - name: SRF
    code: 161
    color: "#00FFFF"
    kind: area
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CaliperMinHeightPx != 20 {
		t.Errorf("threshold: got %d, want 20", cfg.CaliperMinHeightPx)
	}
	if len(cfg.Lesions) != 1 {
		t.Errorf("lesions: got %d, want 1", len(cfg.Lesions))
	}
	// Fields absent from the file keep their defaults.
	if cfg.BaselineBandPx != 3 {
		t.Errorf("band: got %d, want default 3", cfg.BaselineBandPx)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("lesions: {not a list"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config { return Default() }

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty table", func(c *Config) { c.Lesions = nil }},
		{"duplicate name", func(c *Config) { c.Lesions[1].Name = "SRF" }},
		{"duplicate code", func(c *Config) { c.Lesions[1].Code = 161 }},
		{"code out of range", func(c *Config) { c.Lesions[0].Code = 300 }},
		{"background code", func(c *Config) { c.Lesions[0].Code = 0 }},
		{"bad color", func(c *Config) { c.Lesions[0].Color = "cyan" }},
		{"bad kind", func(c *Config) { c.Lesions[0].Kind = "volume" }},
		{"no name", func(c *Config) { c.Lesions[0].Name = "" }},
		{"negative threshold", func(c *Config) { c.CaliperMinHeightPx = -1 }},
		{"negative band", func(c *Config) { c.BaselineBandPx = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
