package style

import (
	"encoding/json"
	"strings"

	"github.com/go-drift/maplibre/pkg/expr"
	"github.com/go-drift/maplibre/pkg/wire"
)

// PropertyGroup places a property in the renderer's layout or paint map.
type PropertyGroup uint8

const (
	// GroupLayout properties control placement and visibility.
	GroupLayout PropertyGroup = iota
	// GroupPaint properties control appearance and are animatable.
	GroupPaint
)

// PropertyKind declares the wire shape a property slot accepts.
type PropertyKind uint8

const (
	// KindNumber accepts a numeric scalar.
	KindNumber PropertyKind = iota
	// KindBoolean accepts a boolean.
	KindBoolean
	// KindString accepts a free-form string (image names, text fields).
	KindString
	// KindEnum accepts a canonical lowercase hyphenated keyword.
	KindEnum
	// KindColor accepts a color; literal strings are coerced through the
	// color parser.
	KindColor
	// KindNumberList accepts a raw numeric array.
	KindNumberList
	// KindStringList accepts a raw string array.
	KindStringList
)

// PropertySpec describes one recognized property key.
type PropertySpec struct {
	Group          PropertyGroup
	Kind           PropertyKind
	Transitionable bool
}

// PropertyTable is the allow-list of recognized property keys for one
// entity kind. Keys the table does not list are silently dropped during
// serialization; this is compatibility behavior, not an error. Tables are
// built once at package init and never mutated.
type PropertyTable map[string]PropertySpec

const transitionSuffix = "-transition"

// Encode serializes properties against the table into layout, paint, and
// transition maps. Absent values and unrecognized keys are omitted; an
// explicit null is never emitted. "<key>-transition" entries are accepted
// for transitionable properties and collected into the transition map.
func (t PropertyTable) Encode(props map[string]Value) (layout, paint, transition map[string]any) {
	layout = make(map[string]any)
	paint = make(map[string]any)
	transition = make(map[string]any)

	for key, value := range props {
		if base, ok := strings.CutSuffix(key, transitionSuffix); ok {
			spec, known := t[base]
			if !known || !spec.Transitionable {
				continue
			}
			if value.kind != kindTransition {
				continue
			}
			transition[key] = value.transition.ToWire()
			continue
		}

		spec, known := t[key]
		if !known {
			continue
		}
		encoded, ok := EncodeValue(spec, value)
		if !ok {
			continue
		}
		switch spec.Group {
		case GroupLayout:
			layout[key] = encoded
		case GroupPaint:
			paint[key] = encoded
		}
	}
	return layout, paint, transition
}

// EncodeValue converts one union value against its property spec. The
// second return is false when the value must be omitted: absent values,
// shapes the slot does not accept (UnsupportedShape), and unparseable color
// literals all resolve to omission rather than an error.
func EncodeValue(spec PropertySpec, v Value) (any, bool) {
	switch v.kind {
	case kindAbsent:
		return nil, false

	case kindLiteral:
		return encodeLiteral(spec, v.lit)

	case kindNumberList:
		if spec.Kind == KindNumberList {
			out := make([]any, len(v.nums))
			for i, n := range v.nums {
				out[i] = n
			}
			return out, true
		}
		// The slot expects a single scalar: per-property wire convention
		// is a JSON-string-encoded array.
		return jsonString(v.nums)

	case kindStringList:
		if spec.Kind == KindStringList {
			out := make([]any, len(v.strs))
			for i, s := range v.strs {
				out[i] = s
			}
			return out, true
		}
		return jsonString(v.strs)

	case kindColor:
		if spec.Kind != KindColor {
			return nil, false
		}
		return v.color.RGBAString(), true

	case kindExpression:
		node := v.expr
		if node.IsZero() {
			return nil, false
		}
		if spec.Kind == KindColor {
			node = node.WithColorsSubstituted()
		}
		return expr.Serialize(node), true

	case kindTransition:
		// Transitions ride only under "-transition" keys, handled by Encode.
		return nil, false

	default:
		return nil, false
	}
}

// encodeLiteral matches a scalar literal against the slot shape.
func encodeLiteral(spec PropertySpec, lit any) (any, bool) {
	switch spec.Kind {
	case KindNumber:
		f, ok := wire.Float64(lit)
		return f, ok
	case KindBoolean:
		b, ok := lit.(bool)
		return b, ok
	case KindString:
		s, ok := lit.(string)
		return s, ok
	case KindEnum:
		s, ok := lit.(string)
		if !ok {
			return nil, false
		}
		return canonicalEnum(s), true
	case KindColor:
		switch c := lit.(type) {
		case string:
			parsed, err := wire.ParseColor(c)
			if err != nil {
				return nil, false
			}
			return parsed.RGBAString(), true
		default:
			if packed, ok := wire.Int64(lit); ok {
				return wire.FromPacked(packed).RGBAString(), true
			}
			return nil, false
		}
	case KindNumberList, KindStringList:
		// A bare scalar cannot fill a list slot.
		return nil, false
	default:
		return nil, false
	}
}

// canonicalEnum normalizes enum keywords to lowercase hyphenated form.
func canonicalEnum(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}

func jsonString(v any) (any, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	return string(data), true
}
