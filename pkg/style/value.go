// Package style serializes style entities (layers, sources, style images)
// into the canonical property maps the native renderer consumes. Property
// values are a tagged union over literals, lists, colors, expressions, and
// transition descriptors; serialization is an exhaustive match over the
// union, never runtime type inspection scattered per property.
package style

import (
	"github.com/go-drift/maplibre/pkg/expr"
	"github.com/go-drift/maplibre/pkg/wire"
)

type valueKind uint8

const (
	kindAbsent valueKind = iota
	kindLiteral
	kindNumberList
	kindStringList
	kindColor
	kindExpression
	kindTransition
)

// Value is a tagged union over the shapes a style property accepts.
// Exactly one variant is populated; the zero Value means "absent", which
// serializes to omission (use the renderer default), never to an explicit
// null.
type Value struct {
	kind       valueKind
	lit        any
	nums       []float64
	strs       []string
	color      wire.Color
	expr       expr.Node
	transition Transition
}

// Number constructs a numeric literal value.
func Number(f float64) Value {
	return Value{kind: kindLiteral, lit: f}
}

// String constructs a string literal value.
func String(s string) Value {
	return Value{kind: kindLiteral, lit: s}
}

// Bool constructs a boolean literal value.
func Bool(b bool) Value {
	return Value{kind: kindLiteral, lit: b}
}

// Numbers constructs an ordered numeric list value (offsets, translates,
// padding, dash arrays).
func Numbers(ns ...float64) Value {
	return Value{kind: kindNumberList, nums: ns}
}

// Strings constructs an ordered string list value (font stacks ...).
func Strings(ss ...string) Value {
	return Value{kind: kindStringList, strs: ss}
}

// Color constructs a color value.
func Color(c wire.Color) Value {
	return Value{kind: kindColor, color: c}
}

// ColorName constructs a color value from a named or hex color string.
// Unparseable input falls back to the documented default (black).
func ColorName(s string) Value {
	return Value{kind: kindColor, color: wire.ParseColorOrDefault(s)}
}

// Expression constructs a data-driven expression value.
func Expression(n expr.Node) Value {
	return Value{kind: kindExpression, expr: n}
}

// TransitionValue constructs a per-property transition timing value.
func TransitionValue(t Transition) Value {
	return Value{kind: kindTransition, transition: t}
}

// IsAbsent reports whether the value is unset.
func (v Value) IsAbsent() bool {
	return v.kind == kindAbsent
}

// Dynamic coerces a loosely-typed input into the union, implementing the
// fallback chain every property setter shares: try expression, else typed
// list, else literal, else absent. Color coercion for string literals is
// deferred to the per-property encoder, which knows whether the destination
// is a color slot.
func Dynamic(input any) Value {
	switch v := input.(type) {
	case nil:
		return Value{}
	case Value:
		return v
	case wire.Color:
		return Color(v)
	case Transition:
		return TransitionValue(v)
	case *Transition:
		if v == nil {
			return Value{}
		}
		return TransitionValue(*v)
	case expr.Node:
		return Expression(v)
	case string:
		if node, ok := expr.Parse(v); ok {
			return Expression(node)
		}
		return String(v)
	case bool:
		return Bool(v)
	case float64:
		return Number(v)
	case float32:
		return Number(float64(v))
	case int:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case []float64:
		return Numbers(v...)
	case []string:
		return Strings(v...)
	case []any:
		// Runtime shape decides: uniform lists are typed lists, anything
		// mixed is expression-shaped and reaches the wire JSON-string
		// encoded. Dynamic expressions arrive as bracket-shaped strings,
		// handled above.
		if ns, ok := wire.Floats(v); ok {
			return Numbers(ns...)
		}
		if ss, ok := wire.Strings(v); ok {
			return Strings(ss...)
		}
		return Expression(expr.FromRaw(v))
	case map[string]any:
		if t, ok := transitionFromMap(v); ok {
			return TransitionValue(t)
		}
		return Value{}
	default:
		if f, ok := wire.Float64(v); ok {
			return Number(f)
		}
		return Value{}
	}
}
