// Package wire converts between typed bridge values and the plain-primitive
// form (maps, lists, strings, numbers, bools) passed across the platform
// channel boundary. All functions are pure transforms.
package wire

import "fmt"

// Float64 converts various numeric types to float64.
func Float64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Int converts various numeric types to int.
func Int(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// Int64 converts various numeric types to int64.
func Int64(v any) (int64, bool) {
	n, ok := Int(v)
	return int64(n), ok
}

// String extracts a string from an any value.
func String(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// Bool extracts a bool from an any value.
func Bool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// Map extracts a map[string]any from an any value.
func Map(value any) map[string]any {
	if value == nil {
		return nil
	}
	if m, ok := value.(map[string]any); ok {
		return m
	}
	if m, ok := value.(map[any]any); ok {
		converted := make(map[string]any, len(m))
		for key, val := range m {
			if keyString, ok := key.(string); ok {
				converted[keyString] = val
			}
		}
		return converted
	}
	return nil
}

// Slice extracts an []any from an any value.
func Slice(value any) []any {
	if s, ok := value.([]any); ok {
		return s
	}
	return nil
}

// Floats converts a value holding a list of numbers to []float64.
// It accepts []float64 directly or any []any whose elements are numeric.
func Floats(value any) ([]float64, bool) {
	switch s := value.(type) {
	case []float64:
		return s, true
	case []any:
		out := make([]float64, len(s))
		for i, v := range s {
			f, ok := Float64(v)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	default:
		return nil, false
	}
}

// Strings converts a value holding a list of strings to []string.
func Strings(value any) ([]string, bool) {
	switch s := value.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, len(s))
		for i, v := range s {
			str, ok := v.(string)
			if !ok {
				return nil, false
			}
			out[i] = str
		}
		return out, true
	default:
		return nil, false
	}
}
