package expr

import (
	"encoding/json"
	"reflect"
	"testing"
)

// jsonEqual compares two JSON documents semantically, ignoring whitespace.
func jsonEqual(t *testing.T, a, b string) bool {
	t.Helper()
	var va, vb any
	if err := json.Unmarshal([]byte(a), &va); err != nil {
		t.Fatalf("invalid JSON %q: %v", a, err)
	}
	if err := json.Unmarshal([]byte(b), &vb); err != nil {
		t.Fatalf("invalid JSON %q: %v", b, err)
	}
	return reflect.DeepEqual(va, vb)
}

func TestParseSerializeRoundTrip(t *testing.T) {
	tests := []string{
		`["get","name"]`,
		`["==",["get","name"],"Nepal"]`,
		`["interpolate",["linear"],["zoom"],10,1,16,8]`,
		`["literal",[1,2,3]]`,
		`["case",["has","height"],["get","height"],0]`,
		`  ["trimmed", true]  `,
		`["frobnicate","unknown","operators","pass","through"]`,
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			node, ok := Parse(in)
			if !ok {
				t.Fatalf("Parse(%q) failed", in)
			}
			out := Serialize(node)
			if !jsonEqual(t, in, out) {
				t.Errorf("round trip of %q produced %q", in, out)
			}
		})
	}
}

func TestParseRejectsNonBracketShapes(t *testing.T) {
	tests := []string{
		"",
		"red",
		"#ff0000",
		"12.5",
		`{"not":"an expression"}`,
		"[unbalanced",
		"get, name]",
	}
	for _, in := range tests {
		if _, ok := Parse(in); ok {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestParseMalformedBracketShapeDegrades(t *testing.T) {
	// Bracket-shaped but not valid JSON: reported as not-an-expression,
	// never an error.
	for _, in := range []string{"[", "[]]", `["get",]`, "[,]"} {
		if _, ok := Parse(in); ok {
			t.Errorf("Parse(%q) should degrade to not-an-expression", in)
		}
	}
}

func TestParseLiteralArray(t *testing.T) {
	// An array without a string operator stays a literal list.
	node, ok := Parse("[1,2]")
	if !ok {
		t.Fatal("Parse failed")
	}
	if node.IsCall() {
		t.Error("numeric array should not become a call")
	}
	if out := Serialize(node); !jsonEqual(t, "[1,2]", out) {
		t.Errorf("Serialize = %q", out)
	}
}

func TestNodeConstruction(t *testing.T) {
	n := Call("==", Call("get", Lit("name")), Lit("Nepal"))
	if !n.IsCall() || n.Operator() != "==" || len(n.Args()) != 2 {
		t.Fatalf("unexpected node: %+v", n)
	}
	want := `["==",["get","name"],"Nepal"]`
	if got := Serialize(n); !jsonEqual(t, want, got) {
		t.Errorf("Serialize = %q, want %q", got, want)
	}
}

func TestFromRawToRawLossless(t *testing.T) {
	raw := []any{"step", []any{"zoom"}, 1.0, 10.0, []any{"literal", []any{1.0, 2.0}}}
	node := FromRaw(raw)
	if !reflect.DeepEqual(node.ToRaw(), raw) {
		t.Errorf("ToRaw = %v, want %v", node.ToRaw(), raw)
	}
}

func TestSubstituteColors(t *testing.T) {
	raw := []any{"match", []any{"get", "kind"}, "water", "blue", "park", "#00ff00", "fallback"}
	got, ok := SubstituteColors(raw).([]any)
	if !ok {
		t.Fatalf("unexpected type %T", SubstituteColors(raw))
	}

	// Shape and operators unchanged.
	if got[0] != "match" {
		t.Errorf("operator changed: %v", got[0])
	}
	if inner, ok := got[1].([]any); !ok || inner[0] != "get" {
		t.Errorf("nested call changed: %v", got[1])
	}
	// Color-like leaves resolved to RGBA form.
	if got[3] != "rgba(0, 0, 255, 1)" {
		t.Errorf("named color leaf = %v", got[3])
	}
	if got[5] != "rgba(0, 255, 0, 1)" {
		t.Errorf("hex color leaf = %v", got[5])
	}
	// Non-color strings untouched.
	if got[2] != "water" || got[6] != "fallback" {
		t.Errorf("non-color leaves changed: %v, %v", got[2], got[6])
	}
}

func TestWithColorsSubstituted(t *testing.T) {
	n, _ := Parse(`["interpolate",["linear"],["zoom"],5,"red",10,"white"]`)
	sub := n.WithColorsSubstituted()
	out := Serialize(sub)
	want := `["interpolate",["linear"],["zoom"],5,"rgba(255, 0, 0, 1)",10,"rgba(255, 255, 255, 1)"]`
	if !jsonEqual(t, want, out) {
		t.Errorf("Serialize = %q, want %q", out, want)
	}
}

func TestNodeIsZero(t *testing.T) {
	var zero Node
	if !zero.IsZero() {
		t.Error("zero node should report IsZero")
	}
	if Lit(1).IsZero() || Call("zoom").IsZero() {
		t.Error("populated nodes should not report IsZero")
	}
}
