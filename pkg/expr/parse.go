package expr

import (
	"encoding/json"
	"strings"

	"github.com/go-drift/maplibre/pkg/wire"
)

// Parse decodes an expression from its string-encoded JSON form. Only
// strings that begin with "[" and end with "]" after trimming are
// considered; anything else is a plain literal and reported as not-an-
// expression. This is shape sniffing, not a grammar check: bracket-shaped
// input that fails to decode degrades to (zero, false) rather than an
// error, and callers fall back to literal handling.
func Parse(s string) (Node, bool) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 2 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
		return Node{}, false
	}
	var raw []any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return Node{}, false
	}
	return FromRaw(raw), true
}

// Serialize is the structural inverse of Parse: literal nodes become bare
// JSON scalars, call nodes become [operator, ...args] JSON arrays.
func Serialize(n Node) string {
	data, err := json.Marshal(n.ToRaw())
	if err != nil {
		// Only reachable with non-JSON-encodable literals (channels, funcs).
		return "null"
	}
	return string(data)
}

// SubstituteColors rewrites every string leaf of a raw nested-array
// expression that parses as a color (name or hex) into its concrete RGBA
// form. Arrays recurse; non-string, non-array leaves pass through
// unchanged. Operator strings never collide with the color dictionary, so
// the call structure and overall shape are preserved.
func SubstituteColors(raw any) any {
	switch v := raw.(type) {
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = SubstituteColors(elem)
		}
		return out
	case string:
		if c, err := wire.ParseColor(v); err == nil {
			return c.RGBAString()
		}
		return v
	default:
		return raw
	}
}

// WithColorsSubstituted returns a copy of the node with color-like string
// leaves resolved to RGBA form.
func (n Node) WithColorsSubstituted() Node {
	return FromRaw(SubstituteColors(n.ToRaw()))
}
