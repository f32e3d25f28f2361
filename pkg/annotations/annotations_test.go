package annotations

import (
	"testing"

	"github.com/go-drift/maplibre/pkg/style"
	"github.com/paulmach/orb"
)

func TestCircleToArgsScenario(t *testing.T) {
	// Kathmandu, red circle of radius 12, no transition supplied.
	circle := NewCircle(orb.Point{85.3240, 27.7172}, map[string]style.Value{
		"circle-color":  style.ColorName("red"),
		"circle-radius": style.Number(12.0),
	})
	circle.setID("c-1")

	args := circle.ToArgs()
	if args["type"] != "circle" || args["id"] != "c-1" {
		t.Errorf("identity fields wrong: %v", args)
	}

	geometry := args["geometry"].([]any)
	if geometry[0] != 27.7172 || geometry[1] != 85.3240 {
		t.Errorf("geometry wire order should be [lat, lng]: %v", geometry)
	}

	paint := args["paint"].(map[string]any)
	if paint["circle-color"] != "rgba(255, 0, 0, 1)" {
		t.Errorf("circle-color = %v", paint["circle-color"])
	}
	if paint["circle-radius"] != 12.0 {
		t.Errorf("circle-radius = %v", paint["circle-radius"])
	}

	transition := args["transition"].(map[string]any)
	if _, present := transition["circle-radius-transition"]; present {
		t.Error("no transition was supplied; none must be emitted")
	}
}

func TestCircleMalformedStrokeColorOmitted(t *testing.T) {
	circle := NewCircle(orb.Point{0, 0}, map[string]style.Value{
		"circle-stroke-color": style.String("notacolor"),
	})
	paint := circle.ToArgs()["paint"].(map[string]any)
	if _, present := paint["circle-stroke-color"]; present {
		t.Error("malformed color with no default must be omitted")
	}
}

func TestCircleUnrecognizedKeyDropped(t *testing.T) {
	circle := NewCircle(orb.Point{0, 0}, map[string]style.Value{
		"line-width": style.Number(3),
	})
	paint := circle.ToArgs()["paint"].(map[string]any)
	if len(paint) != 0 {
		t.Errorf("foreign keys must be dropped: %v", paint)
	}
}

func TestCircleTransitionEmitted(t *testing.T) {
	circle := NewCircle(orb.Point{0, 0}, map[string]style.Value{
		"circle-radius":            style.Number(10),
		"circle-radius-transition": style.TransitionValue(style.NewTransition(50, 250)),
	})
	transition := circle.ToArgs()["transition"].(map[string]any)
	tr, ok := transition["circle-radius-transition"].(map[string]any)
	if !ok || tr["delay"] != int64(50) || tr["duration"] != int64(250) {
		t.Errorf("transition = %v", transition)
	}
}

func TestLineToArgs(t *testing.T) {
	line := NewLine(orb.LineString{{1, 2}, {3, 4}}, map[string]style.Value{
		"line-color": style.ColorName("blue"),
		"line-width": style.Number(4),
	})
	line.Draggable = true
	line.setID("l-1")

	args := line.ToArgs()
	if args["draggable"] != true {
		t.Error("draggable flag lost")
	}
	geometry := args["geometry"].([]any)
	first := geometry[0].([]any)
	if first[0] != 2.0 || first[1] != 1.0 {
		t.Errorf("path wire order should be [lat, lng]: %v", first)
	}
	paint := args["paint"].(map[string]any)
	if paint["line-width"] != 4.0 {
		t.Errorf("line-width = %v", paint["line-width"])
	}
}

func TestFillToArgsRings(t *testing.T) {
	shape := orb.Polygon{
		{{0, 0}, {0, 1}, {1, 1}, {0, 0}},
	}
	fill := NewFill(shape, map[string]style.Value{
		"fill-color": style.ColorName("green"),
	})
	args := fill.ToArgs()
	rings := args["geometry"].([]any)
	if len(rings) != 1 {
		t.Fatalf("rings = %v", rings)
	}
	if len(rings[0].([]any)) != 4 {
		t.Errorf("outer ring should keep all points: %v", rings[0])
	}
}

func TestSymbolUserData(t *testing.T) {
	sym := NewSymbol(orb.Point{0, 0}, map[string]style.Value{
		"icon-image": style.String("marker-15"),
		"text-field": style.String("Home"),
	})
	sym.UserData = map[string]any{"poiId": 42}

	args := sym.ToArgs()
	layout := args["layout"].(map[string]any)
	if layout["icon-image"] != "marker-15" || layout["text-field"] != "Home" {
		t.Errorf("layout = %v", layout)
	}
	if args["userData"].(map[string]any)["poiId"] != 42 {
		t.Errorf("userData = %v", args["userData"])
	}
}

func TestManagerAssignsIDs(t *testing.T) {
	m := NewManager()
	a := NewCircle(orb.Point{0, 0}, nil)
	id := m.Add(a)
	if id == "" || a.ID() != id {
		t.Errorf("generated id = %q, annotation id = %q", id, a.ID())
	}

	b := NewCircle(orb.Point{0, 0}, nil)
	b.setID("my-circle")
	if got := m.Add(b); got != "my-circle" {
		t.Errorf("explicit id not preserved: %q", got)
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d", m.Len())
	}
}

func TestManagerUpdateGeometry(t *testing.T) {
	m := NewManager()
	c := NewCircle(orb.Point{85.3240, 27.7172}, nil)
	id := m.Add(c)

	if !m.UpdateGeometry(id, orb.Point{85.0, 28.0}) {
		t.Fatal("update failed")
	}
	if c.Center != (orb.Point{85.0, 28.0}) {
		t.Errorf("center = %v", c.Center)
	}

	// Mismatched geometry type is rejected.
	if m.UpdateGeometry(id, orb.LineString{{0, 0}, {1, 1}}) {
		t.Error("line geometry should not apply to a circle")
	}
	if m.UpdateGeometry("ghost", orb.Point{}) {
		t.Error("unknown id should not update")
	}
}

func TestManagerRemoveAndClear(t *testing.T) {
	m := NewManager()
	id := m.Add(NewCircle(orb.Point{0, 0}, nil))
	if !m.Remove(id) || m.Remove(id) {
		t.Error("Remove should succeed once")
	}
	m.Add(NewLine(orb.LineString{{0, 0}, {1, 1}}, nil))
	m.Add(NewFill(orb.Polygon{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}}, nil))
	m.Clear()
	if m.Len() != 0 {
		t.Errorf("Len after Clear = %d", m.Len())
	}
}
