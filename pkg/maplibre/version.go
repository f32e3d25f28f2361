package maplibre

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Feature names gated on the native renderer version.
const (
	FeatureAnnotationDrag = "annotation-drag"
	FeatureFPSListener    = "fps-listener"
	FeatureImageSource    = "image-source"
	FeatureHillshade      = "hillshade"
)

// featureMinVersion maps a feature to the first renderer release carrying it.
var featureMinVersion = map[string]string{
	FeatureAnnotationDrag: "v9.0.0",
	FeatureFPSListener:    "v9.4.0",
	FeatureImageSource:    "v10.0.0",
	FeatureHillshade:      "v8.6.0",
}

// supportsFeature compares a renderer version string against the feature's
// minimum. Unknown features and unparseable versions report false.
func supportsFeature(version, feature string) bool {
	min, ok := featureMinVersion[feature]
	if !ok {
		return false
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return false
	}
	return semver.Compare(version, min) >= 0
}
