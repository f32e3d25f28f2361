package style

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-drift/maplibre/pkg/wire"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func TestGeoJSONSourceInlineData(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	feature := geojson.NewFeature(orb.Point{85.3240, 27.7172})
	feature.Properties["name"] = "Kathmandu"
	fc.Append(feature)

	radius := 40.0
	src := &GeoJSONSource{
		ID:            "places",
		Data:          fc,
		Cluster:       true,
		ClusterRadius: &radius,
	}
	args := src.ToArgs()

	if args["type"] != "geojson" || args["id"] != "places" {
		t.Errorf("identity fields wrong: %v", args)
	}
	if args["cluster"] != true || args["clusterRadius"] != 40.0 {
		t.Errorf("cluster options wrong: %v", args)
	}

	data, ok := args["data"].(string)
	if !ok {
		t.Fatalf("data should be a GeoJSON string, got %T", args["data"])
	}
	decoded, err := geojson.UnmarshalFeatureCollection([]byte(data))
	if err != nil {
		t.Fatalf("data is not valid GeoJSON: %v", err)
	}
	if len(decoded.Features) != 1 || decoded.Features[0].Properties["name"] != "Kathmandu" {
		t.Errorf("decoded features wrong: %v", decoded.Features)
	}
}

func TestGeoJSONSourceURL(t *testing.T) {
	src := &GeoJSONSource{ID: "remote", URL: "https://example.com/data.geojson"}
	args := src.ToArgs()
	if args["data"] != "https://example.com/data.geojson" {
		t.Errorf("data = %v", args["data"])
	}
	if _, present := args["cluster"]; present {
		t.Error("cluster must be omitted when disabled")
	}
}

func TestVectorSourceToArgs(t *testing.T) {
	maxZoom := 14.0
	src := &VectorSource{
		ID:      "terrain",
		Tiles:   []string{"https://tiles.example.com/{z}/{x}/{y}.pbf"},
		MaxZoom: &maxZoom,
		Scheme:  "xyz",
	}
	args := src.ToArgs()
	if args["type"] != "vector" {
		t.Errorf("type = %v", args["type"])
	}
	tiles := args["tiles"].([]any)
	if len(tiles) != 1 || !strings.Contains(tiles[0].(string), "{z}") {
		t.Errorf("tiles = %v", tiles)
	}
	if args["maxzoom"] != 14.0 || args["scheme"] != "xyz" {
		t.Errorf("options wrong: %v", args)
	}
	if _, present := args["url"]; present {
		t.Error("unset url must be omitted")
	}
}

func TestRasterSourceToArgs(t *testing.T) {
	size := 256.0
	src := &RasterSource{ID: "satellite", URL: "https://example.com/tiles.json", TileSize: &size}
	args := src.ToArgs()
	if args["type"] != "raster" || args["tileSize"] != 256.0 {
		t.Errorf("args = %v", args)
	}
}

func TestImageSourceToArgs(t *testing.T) {
	src := &ImageSource{
		ID:  "radar",
		URL: "https://example.com/radar.png",
		Coordinates: [4]wire.LatLng{
			{Latitude: 2, Longitude: 1},
			{Latitude: 2, Longitude: 3},
			{Latitude: 0, Longitude: 3},
			{Latitude: 0, Longitude: 1},
		},
	}
	args := src.ToArgs()
	corners := args["coordinates"].([]any)
	if len(corners) != 4 {
		t.Fatalf("corners = %v", corners)
	}
	first := corners[0].([]any)
	if first[0] != 2.0 || first[1] != 1.0 {
		t.Errorf("corner wire order should be [lat, lng], got %v", first)
	}
}

func TestSourceArgsAreJSONEncodable(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	sources := []Source{
		&GeoJSONSource{ID: "a", Data: fc},
		&VectorSource{ID: "b", URL: "https://example.com/t.json"},
		&RasterSource{ID: "c", Tiles: []string{"https://example.com/{z}/{x}/{y}.png"}},
		&ImageSource{ID: "d", URL: "https://example.com/i.png"},
	}
	for _, s := range sources {
		if _, err := json.Marshal(s.ToArgs()); err != nil {
			t.Errorf("source %s args not encodable: %v", s.SourceID(), err)
		}
	}
}
