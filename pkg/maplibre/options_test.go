package maplibre

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOptionsMissingFileUsesDefaults(t *testing.T) {
	opts, err := LoadOptions(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	want := DefaultOptions()
	if opts.StyleURL != want.StyleURL {
		t.Errorf("StyleURL = %q", opts.StyleURL)
	}
	if opts.TransitionUnit != UnitMilliseconds {
		t.Errorf("TransitionUnit = %q", opts.TransitionUnit)
	}
	if !opts.Gestures.Zoom || !opts.Gestures.Rotate {
		t.Errorf("gestures = %+v", opts.Gestures)
	}
}

func TestLoadOptionsOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
styleUrl: https://tiles.example.com/style.json
transitionUnit: s
camera:
  target: [27.7172, 85.3240]
  zoom: 12
gestures:
  rotate: false
  scroll: true
  tilt: true
  zoom: true
`
	if err := os.WriteFile(filepath.Join(dir, "maplibre.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(dir)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.StyleURL != "https://tiles.example.com/style.json" {
		t.Errorf("StyleURL = %q", opts.StyleURL)
	}
	if opts.TransitionUnit != UnitSeconds {
		t.Errorf("TransitionUnit = %q", opts.TransitionUnit)
	}
	if len(opts.Camera.Target) != 2 || opts.Camera.Target[0] != 27.7172 {
		t.Errorf("camera target = %v", opts.Camera.Target)
	}
	if opts.Camera.Zoom != 12 {
		t.Errorf("zoom = %v", opts.Camera.Zoom)
	}
	if opts.Gestures.Rotate {
		t.Error("rotate gesture should be disabled")
	}
}

func TestLoadOptionsNormalizesUnknownUnit(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "maplibre.yaml"), []byte("transitionUnit: fortnights\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err := LoadOptions(dir)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.TransitionUnit != UnitMilliseconds {
		t.Errorf("TransitionUnit = %q, want ms fallback", opts.TransitionUnit)
	}
}

func TestLoadOptionsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "maplibre.yaml"), []byte(":\n\t- bad"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptions(dir); err == nil {
		t.Error("malformed yaml did not error")
	}
}
