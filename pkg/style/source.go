package style

import (
	"encoding/json"

	"github.com/go-drift/maplibre/pkg/wire"
	"github.com/paulmach/orb/geojson"
)

// Source is a style data source declaration. The id shares the layer
// uniqueness precondition: duplicates are rejected by the renderer, not
// detected here.
type Source interface {
	SourceID() string
	ToArgs() map[string]any
}

// GeoJSONSource provides feature data inline or by URL. When both are set,
// inline data wins.
type GeoJSONSource struct {
	ID   string
	Data *geojson.FeatureCollection
	URL  string

	Buffer         *float64
	Tolerance      *float64
	MaxZoom        *float64
	Cluster        bool
	ClusterRadius  *float64
	ClusterMaxZoom *float64
	LineMetrics    bool
	PromoteID      string
}

// SourceID returns the source id.
func (s *GeoJSONSource) SourceID() string { return s.ID }

// ToArgs serializes the source. Inline feature collections travel as a
// GeoJSON string so the native side can hand them to the renderer verbatim.
func (s *GeoJSONSource) ToArgs() map[string]any {
	args := map[string]any{
		"type": "geojson",
		"id":   s.ID,
	}
	if s.Data != nil {
		if data, err := json.Marshal(s.Data); err == nil {
			args["data"] = string(data)
		}
	} else if s.URL != "" {
		args["data"] = s.URL
	}
	putFloat(args, "buffer", s.Buffer)
	putFloat(args, "tolerance", s.Tolerance)
	putFloat(args, "maxzoom", s.MaxZoom)
	if s.Cluster {
		args["cluster"] = true
		putFloat(args, "clusterRadius", s.ClusterRadius)
		putFloat(args, "clusterMaxZoom", s.ClusterMaxZoom)
	}
	if s.LineMetrics {
		args["lineMetrics"] = true
	}
	if s.PromoteID != "" {
		args["promoteId"] = s.PromoteID
	}
	return args
}

// VectorSource provides tiled vector data by TileJSON URL or tile templates.
type VectorSource struct {
	ID          string
	URL         string
	Tiles       []string
	Bounds      []float64
	Scheme      string
	MinZoom     *float64
	MaxZoom     *float64
	Attribution string
}

// SourceID returns the source id.
func (s *VectorSource) SourceID() string { return s.ID }

// ToArgs serializes the source.
func (s *VectorSource) ToArgs() map[string]any {
	args := map[string]any{
		"type": "vector",
		"id":   s.ID,
	}
	if s.URL != "" {
		args["url"] = s.URL
	}
	if len(s.Tiles) > 0 {
		args["tiles"] = toAnySlice(s.Tiles)
	}
	if len(s.Bounds) == 4 {
		args["bounds"] = toAnyFloats(s.Bounds)
	}
	if s.Scheme != "" {
		args["scheme"] = s.Scheme
	}
	putFloat(args, "minzoom", s.MinZoom)
	putFloat(args, "maxzoom", s.MaxZoom)
	if s.Attribution != "" {
		args["attribution"] = s.Attribution
	}
	return args
}

// RasterSource provides tiled raster data.
type RasterSource struct {
	ID          string
	URL         string
	Tiles       []string
	Bounds      []float64
	TileSize    *float64
	Scheme      string
	MinZoom     *float64
	MaxZoom     *float64
	Attribution string
}

// SourceID returns the source id.
func (s *RasterSource) SourceID() string { return s.ID }

// ToArgs serializes the source.
func (s *RasterSource) ToArgs() map[string]any {
	args := map[string]any{
		"type": "raster",
		"id":   s.ID,
	}
	if s.URL != "" {
		args["url"] = s.URL
	}
	if len(s.Tiles) > 0 {
		args["tiles"] = toAnySlice(s.Tiles)
	}
	if len(s.Bounds) == 4 {
		args["bounds"] = toAnyFloats(s.Bounds)
	}
	putFloat(args, "tileSize", s.TileSize)
	if s.Scheme != "" {
		args["scheme"] = s.Scheme
	}
	putFloat(args, "minzoom", s.MinZoom)
	putFloat(args, "maxzoom", s.MaxZoom)
	if s.Attribution != "" {
		args["attribution"] = s.Attribution
	}
	return args
}

// ImageSource drapes a georeferenced image over four corner coordinates,
// ordered top-left, top-right, bottom-right, bottom-left.
type ImageSource struct {
	ID          string
	URL         string
	Coordinates [4]wire.LatLng
}

// SourceID returns the source id.
func (s *ImageSource) SourceID() string { return s.ID }

// ToArgs serializes the source.
func (s *ImageSource) ToArgs() map[string]any {
	corners := make([]any, 4)
	for i, c := range s.Coordinates {
		corners[i] = c.ToWire()
	}
	return map[string]any{
		"type":        "image",
		"id":          s.ID,
		"url":         s.URL,
		"coordinates": corners,
	}
}

func putFloat(args map[string]any, key string, v *float64) {
	if v != nil {
		args[key] = *v
	}
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func toAnyFloats(fs []float64) []any {
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}
