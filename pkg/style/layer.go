package style

import "github.com/go-drift/maplibre/pkg/expr"

// LayerKind identifies a layer variant.
type LayerKind string

const (
	LayerBackground    LayerKind = "background"
	LayerFill          LayerKind = "fill"
	LayerLine          LayerKind = "line"
	LayerSymbol        LayerKind = "symbol"
	LayerCircle        LayerKind = "circle"
	LayerRaster        LayerKind = "raster"
	LayerHillshade     LayerKind = "hillshade"
	LayerHeatmap       LayerKind = "heatmap"
	LayerFillExtrusion LayerKind = "fill-extrusion"
)

// Layer is a style layer declaration. The id must be unique at the
// renderer; the bridge does not enforce uniqueness, and a violation
// surfaces as a renderer-reported duplicate-id channel error.
type Layer struct {
	Kind        LayerKind
	ID          string
	Source      string
	SourceLayer string

	// MinZoom/MaxZoom bound the layer's zoom range; nil means unbounded.
	MinZoom *float64
	MaxZoom *float64

	// Filter is a data filter expression: a bracket-shaped string, an
	// expr.Node, or a raw nested array. Malformed filters are omitted
	// silently, never raised.
	Filter any

	// Properties maps renderer property keys (e.g. "fill-color") to values.
	// Keys the layer kind does not recognize are dropped.
	Properties map[string]Value
}

// PropertyTable returns the allow-list table for the kind.
func (k LayerKind) PropertyTable() (PropertyTable, bool) {
	t, ok := layerTables[k]
	return t, ok
}

// ToArgs serializes the layer into the canonical argument map for the
// renderer boundary.
func (l *Layer) ToArgs() map[string]any {
	args := map[string]any{
		"type": string(l.Kind),
		"id":   l.ID,
	}
	if l.Source != "" {
		args["source"] = l.Source
	}
	if l.SourceLayer != "" {
		args["source-layer"] = l.SourceLayer
	}
	if l.MinZoom != nil {
		args["minzoom"] = *l.MinZoom
	}
	if l.MaxZoom != nil {
		args["maxzoom"] = *l.MaxZoom
	}

	table, ok := l.Kind.PropertyTable()
	if !ok {
		table = PropertyTable{}
	}
	layout, paint, transition := table.Encode(l.Properties)
	args["layout"] = layout
	args["paint"] = paint
	args["transition"] = transition

	if filter, ok := EncodeFilter(l.Filter); ok {
		args["filter"] = filter
	}
	return args
}

// EncodeFilter resolves a filter input to its serialized expression form.
// It accepts a bracket-shaped string, an expr.Node, or a raw nested array.
// Anything that fails to parse is omitted; entity serializers never raise
// on malformed filter input.
func EncodeFilter(filter any) (string, bool) {
	switch f := filter.(type) {
	case nil:
		return "", false
	case string:
		node, ok := expr.Parse(f)
		if !ok {
			return "", false
		}
		return expr.Serialize(node), true
	case expr.Node:
		if f.IsZero() {
			return "", false
		}
		return expr.Serialize(f), true
	case []any:
		node := expr.FromRaw(f)
		if !node.IsCall() {
			return "", false
		}
		return expr.Serialize(node), true
	default:
		return "", false
	}
}
