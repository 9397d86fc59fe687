package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/xtree/internal/model"
)

func TestParse_Full(t *testing.T) {
	cfg, err := Parse([]byte(`
display: ":1"
style: double
format: yaml
recurse: true
max_depth: 3
show:
  attributes: false
  geometry: true
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display != ":1" || cfg.Style != "double" || cfg.Format != "yaml" {
		t.Errorf("unexpected strings: %+v", cfg)
	}
	if cfg.Recurse == nil || !*cfg.Recurse {
		t.Error("recurse should be true")
	}
	if cfg.MaxDepth == nil || *cfg.MaxDepth != 3 {
		t.Errorf("max_depth: got %v", cfg.MaxDepth)
	}

	toggles, err := cfg.Toggles()
	if err != nil {
		t.Fatal(err)
	}
	if toggles.Enabled(model.CategoryAttributes) {
		t.Error("attributes should be disabled")
	}
	if !toggles.Enabled(model.CategoryGeometry) {
		t.Error("geometry should be enabled")
	}
	if _, mentioned := toggles[model.CategoryProperties]; mentioned {
		t.Error("properties should be unmentioned")
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Recurse != nil || cfg.MaxDepth != nil {
		t.Errorf("empty config should leave pointers unset: %+v", cfg)
	}
}

func TestParse_MaxDepthZero(t *testing.T) {
	cfg, err := Parse([]byte("max_depth: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth == nil || *cfg.MaxDepth != 0 {
		t.Errorf("max_depth 0 should be set, got %v", cfg.MaxDepth)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"colour: red\n",
		"show:\n  icons: true\n",
		"max_depth: deep\n",
	}
	for _, doc := range tests {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("Parse(%q) should fail", doc)
		}
	}
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("missing optional config: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected empty config")
	}

	if _, err := Load(path, true); err == nil {
		t.Error("missing required config should fail")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("style: ascii\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style != "ascii" {
		t.Errorf("style: got %q, want ascii", cfg.Style)
	}
}
