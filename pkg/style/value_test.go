package style

import (
	"reflect"
	"testing"

	"github.com/go-drift/maplibre/pkg/expr"
	"github.com/go-drift/maplibre/pkg/wire"
)

func TestDynamicFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want valueKind
	}{
		{"nil is absent", nil, kindAbsent},
		{"bracket string is expression", `["get","name"]`, kindExpression},
		{"plain string is literal", "red", kindLiteral},
		{"bool", true, kindLiteral},
		{"float", 12.0, kindLiteral},
		{"int", 12, kindLiteral},
		{"float slice", []float64{1, 2}, kindNumberList},
		{"string slice", []string{"Open Sans"}, kindStringList},
		{"numeric any slice", []any{1.0, 2.0}, kindNumberList},
		{"string any slice", []any{"a", "b"}, kindStringList},
		{"mixed any slice", []any{"==", []any{"get", "name"}, "Nepal"}, kindExpression},
		{"color", wire.ColorRed, kindColor},
		{"node", expr.Call("zoom"), kindExpression},
		{"transition", NewTransition(100, 300), kindTransition},
		{"transition map", map[string]any{"delay": 100, "duration": 300}, kindTransition},
		{"arbitrary map", map[string]any{"x": 1}, kindAbsent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dynamic(tt.in)
			if got.kind != tt.want {
				t.Errorf("Dynamic(%v).kind = %d, want %d", tt.in, got.kind, tt.want)
			}
		})
	}
}

func TestDynamicPassesValuesThrough(t *testing.T) {
	v := Number(12)
	if !reflect.DeepEqual(Dynamic(v), v) {
		t.Error("Dynamic(Value) should be identity")
	}
}

func TestTransitionClampsNegatives(t *testing.T) {
	tr := NewTransition(-5, -10)
	if tr.DelayMs != 0 || tr.DurationMs != 0 {
		t.Errorf("negative inputs should clamp to zero: %+v", tr)
	}
}

func TestTransitionToWire(t *testing.T) {
	w := NewTransition(100, 300).ToWire()
	if w["delay"] != int64(100) || w["duration"] != int64(300) {
		t.Errorf("ToWire = %v", w)
	}
}

func TestEncodeValueLiterals(t *testing.T) {
	tests := []struct {
		name   string
		spec   PropertySpec
		value  Value
		want   any
		wantOK bool
	}{
		{"number", PropertySpec{GroupPaint, KindNumber, true}, Number(12), 12.0, true},
		{"bool", PropertySpec{GroupPaint, KindBoolean, false}, Bool(true), true, true},
		{"string", PropertySpec{GroupLayout, KindString, false}, String("marker"), "marker", true},
		{"enum canonical", PropertySpec{GroupLayout, KindEnum, false}, String("Bottom_Left"), "bottom-left", true},
		{"string into number omitted", PropertySpec{GroupPaint, KindNumber, true}, String("12"), nil, false},
		{"number into bool omitted", PropertySpec{GroupPaint, KindBoolean, false}, Number(1), nil, false},
		{"scalar into list omitted", PropertySpec{GroupPaint, KindNumberList, true}, Number(1), nil, false},
		{"absent omitted", PropertySpec{GroupPaint, KindNumber, true}, Value{}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EncodeValue(tt.spec, tt.value)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %v (%T), want %v", got, got, tt.want)
			}
		})
	}
}

func TestEncodeValueColors(t *testing.T) {
	colorSpec := PropertySpec{GroupPaint, KindColor, true}

	got, ok := EncodeValue(colorSpec, ColorName("red"))
	if !ok || got != "rgba(255, 0, 0, 1)" {
		t.Errorf("named color = %v, %v", got, ok)
	}

	got, ok = EncodeValue(colorSpec, String("#00ff00"))
	if !ok || got != "rgba(0, 255, 0, 1)" {
		t.Errorf("hex literal = %v, %v", got, ok)
	}

	got, ok = EncodeValue(colorSpec, Number(float64(0xFF0000FF)))
	if !ok || got != "rgba(0, 0, 255, 1)" {
		t.Errorf("packed int = %v, %v", got, ok)
	}

	// Malformed color literal with no default: omitted, consistently.
	if _, ok := EncodeValue(colorSpec, String("notacolor")); ok {
		t.Error("malformed color literal should be omitted")
	}

	// A color value aimed at a non-color slot is an unsupported shape.
	if _, ok := EncodeValue(PropertySpec{GroupPaint, KindNumber, true}, Color(wire.ColorRed)); ok {
		t.Error("color into number slot should be omitted")
	}
}

func TestEncodeValueLists(t *testing.T) {
	listSpec := PropertySpec{GroupPaint, KindNumberList, true}
	got, ok := EncodeValue(listSpec, Numbers(1, 2))
	if !ok {
		t.Fatal("expected ok")
	}
	arr, isArr := got.([]any)
	if !isArr || len(arr) != 2 || arr[0] != 1.0 {
		t.Errorf("list slot should get a native array, got %v (%T)", got, got)
	}

	// A list aimed at a scalar slot is JSON-string-encoded.
	scalarSpec := PropertySpec{GroupPaint, KindNumber, true}
	got, ok = EncodeValue(scalarSpec, Numbers(1, 2))
	if !ok || got != "[1,2]" {
		t.Errorf("scalar slot should get a JSON string, got %v, %v", got, ok)
	}

	strSpec := PropertySpec{GroupLayout, KindStringList, false}
	got, ok = EncodeValue(strSpec, Strings("Open Sans", "Arial"))
	if !ok {
		t.Fatal("expected ok")
	}
	if arr, isArr := got.([]any); !isArr || len(arr) != 2 || arr[0] != "Open Sans" {
		t.Errorf("string list = %v (%T)", got, got)
	}
}

func TestEncodeValueExpressions(t *testing.T) {
	node, _ := expr.Parse(`["interpolate",["linear"],["zoom"],10,1,16,8]`)
	got, ok := EncodeValue(PropertySpec{GroupPaint, KindNumber, true}, Expression(node))
	if !ok || got != `["interpolate",["linear"],["zoom"],10,1,16,8]` {
		t.Errorf("expression = %v, %v", got, ok)
	}

	// Color slots get color substitution inside the expression.
	colorNode, _ := expr.Parse(`["match",["get","kind"],"water","blue","gray"]`)
	got, ok = EncodeValue(PropertySpec{GroupPaint, KindColor, true}, Expression(colorNode))
	if !ok {
		t.Fatal("expected ok")
	}
	want := `["match",["get","kind"],"water","rgba(0, 0, 255, 1)","rgba(128, 128, 128, 1)"]`
	if got != want {
		t.Errorf("color expression = %v, want %v", got, want)
	}
}

func TestEncodeValueEnumAcceptsExpression(t *testing.T) {
	// Enum-valued properties accept an expression on the same wire key.
	node, _ := expr.Parse(`["step",["zoom"],"map",10,"viewport"]`)
	got, ok := EncodeValue(PropertySpec{GroupLayout, KindEnum, false}, Expression(node))
	if !ok || got != `["step",["zoom"],"map",10,"viewport"]` {
		t.Errorf("enum expression = %v, %v", got, ok)
	}
}
