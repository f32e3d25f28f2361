package maplibre

import (
	"encoding/json"

	"github.com/go-drift/maplibre/pkg/events"
	"github.com/go-drift/maplibre/pkg/style"
	"github.com/go-drift/maplibre/pkg/wire"
	"github.com/paulmach/orb/geojson"
)

// ScreenRect is a rectangle in logical pixels on the map view.
type ScreenRect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RenderedFeatureQuery selects rendered features at a point or within a
// rect, optionally narrowed to layers and a filter expression. Point wins
// when both Point and Rect are set.
type RenderedFeatureQuery struct {
	Point    *events.ScreenPoint
	Rect     *ScreenRect
	LayerIDs []string
	Filter   any
}

func (q RenderedFeatureQuery) toArgs() map[string]any {
	args := map[string]any{}
	switch {
	case q.Point != nil:
		args["x"] = q.Point.X
		args["y"] = q.Point.Y
	case q.Rect != nil:
		args["left"] = q.Rect.Left
		args["top"] = q.Rect.Top
		args["right"] = q.Rect.Right
		args["bottom"] = q.Rect.Bottom
	}
	if len(q.LayerIDs) > 0 {
		ids := make([]any, len(q.LayerIDs))
		for i, id := range q.LayerIDs {
			ids[i] = id
		}
		args["layerIds"] = ids
	}
	if filter, ok := style.EncodeFilter(q.Filter); ok {
		args["filter"] = filter
	}
	return args
}

// parseRenderedFeatures decodes the renderer's query result. Features may
// arrive as GeoJSON strings or as decoded maps; entries that fail to parse
// are skipped.
func parseRenderedFeatures(result any) []*geojson.Feature {
	m := wire.Map(result)
	if m == nil {
		return nil
	}
	raw := wire.Slice(m["features"])
	features := make([]*geojson.Feature, 0, len(raw))
	for _, entry := range raw {
		var data []byte
		switch v := entry.(type) {
		case string:
			data = []byte(v)
		case map[string]any:
			encoded, err := json.Marshal(v)
			if err != nil {
				continue
			}
			data = encoded
		default:
			continue
		}
		feature, err := geojson.UnmarshalFeature(data)
		if err != nil {
			continue
		}
		features = append(features, feature)
	}
	return features
}
