package maplibre

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CameraOptions is the initial camera placement.
type CameraOptions struct {
	// Target is [latitude, longitude].
	Target  []float64 `yaml:"target,omitempty"`
	Zoom    float64   `yaml:"zoom,omitempty"`
	Bearing float64   `yaml:"bearing,omitempty"`
	Tilt    float64   `yaml:"tilt,omitempty"`
}

// GestureOptions toggles user gestures on the map view.
type GestureOptions struct {
	Rotate bool `yaml:"rotate"`
	Scroll bool `yaml:"scroll"`
	Tilt   bool `yaml:"tilt"`
	Zoom   bool `yaml:"zoom"`
}

// Options configures a map controller.
type Options struct {
	StyleURL       string         `yaml:"styleUrl,omitempty"`
	Camera         CameraOptions  `yaml:"camera,omitempty"`
	Gestures       GestureOptions `yaml:"gestures,omitempty"`
	TransitionUnit TransitionUnit `yaml:"transitionUnit,omitempty"`
}

// DefaultOptions returns the options used when no maplibre.yaml is present.
func DefaultOptions() Options {
	return Options{
		StyleURL:       "https://demotiles.maplibre.org/style.json",
		Gestures:       GestureOptions{Rotate: true, Scroll: true, Tilt: true, Zoom: true},
		TransitionUnit: UnitMilliseconds,
	}
}

// LoadOptions reads maplibre.yaml from dir if present, applying its values
// over the defaults. A missing file yields the defaults without error.
func LoadOptions(dir string) (Options, error) {
	opts := DefaultOptions()

	path := filepath.Join(dir, "maplibre.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return opts, nil
		}
		return opts, fmt.Errorf("failed to read maplibre.yaml: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse maplibre.yaml: %w", err)
	}
	if opts.TransitionUnit != UnitSeconds {
		opts.TransitionUnit = UnitMilliseconds
	}
	return opts, nil
}
