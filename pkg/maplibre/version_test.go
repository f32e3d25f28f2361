package maplibre

import "testing"

func TestSupportsFeature(t *testing.T) {
	tests := []struct {
		version string
		feature string
		want    bool
	}{
		{"11.3.0", FeatureAnnotationDrag, true},
		{"v11.3.0", FeatureAnnotationDrag, true},
		{"9.0.0", FeatureAnnotationDrag, true},
		{"8.9.9", FeatureAnnotationDrag, false},
		{"9.4.0", FeatureFPSListener, true},
		{"9.3.9", FeatureFPSListener, false},
		{"10.0.0", FeatureImageSource, true},
		{"9.9.0", FeatureImageSource, false},
		{"11.0.0", "nonexistent", false},
		{"not a version", FeatureHillshade, false},
		{"", FeatureHillshade, false},
	}
	for _, tt := range tests {
		if got := supportsFeature(tt.version, tt.feature); got != tt.want {
			t.Errorf("supportsFeature(%q, %q) = %v, want %v", tt.version, tt.feature, got, tt.want)
		}
	}
}
