// Package annotations models application-owned map overlays (circles,
// lines, fills, symbols) and serializes them into the renderer's property
// vocabulary. Geometry uses orb types (x=lon, y=lat); the wire form is
// [lat, lng] nested lists.
package annotations

import (
	"github.com/go-drift/maplibre/pkg/style"
	"github.com/go-drift/maplibre/pkg/wire"
	"github.com/paulmach/orb"
)

// Kind identifies an annotation variant.
type Kind string

const (
	KindCircle Kind = "circle"
	KindLine   Kind = "line"
	KindFill   Kind = "fill"
	KindSymbol Kind = "symbol"
)

// Annotation is one application-declared overlay. Ids are unique within
// the annotation namespace at the renderer; the bridge assigns generated
// ids on Add when the application supplies none.
type Annotation interface {
	ID() string
	Kind() Kind
	Geometry() orb.Geometry
	SetGeometry(g orb.Geometry) bool
	IsDraggable() bool
	ToArgs() map[string]any

	setID(id string)
}

// base carries the fields shared by all annotation kinds.
type base struct {
	id        string
	Draggable bool
	// UserData is opaque application payload echoed back on events.
	UserData map[string]any
	// Properties maps renderer property keys to values; keys outside the
	// kind's allow-list are silently dropped.
	Properties map[string]style.Value
}

func (b *base) ID() string        { return b.id }
func (b *base) setID(id string)   { b.id = id }
func (b *base) IsDraggable() bool { return b.Draggable }

// toArgs assembles the shared argument map.
func (b *base) toArgs(kind Kind, table style.PropertyTable, geometry any) map[string]any {
	layout, paint, transition := table.Encode(b.Properties)
	args := map[string]any{
		"type":       string(kind),
		"id":         b.id,
		"geometry":   geometry,
		"draggable":  b.Draggable,
		"layout":     layout,
		"paint":      paint,
		"transition": transition,
	}
	if len(b.UserData) > 0 {
		args["userData"] = b.UserData
	}
	return args
}

// Circle is a filled circle anchored at a point.
type Circle struct {
	base
	Center orb.Point
}

// NewCircle creates a circle annotation at center with the given properties.
func NewCircle(center orb.Point, props map[string]style.Value) *Circle {
	return &Circle{base: base{Properties: props}, Center: center}
}

func (c *Circle) Kind() Kind             { return KindCircle }
func (c *Circle) Geometry() orb.Geometry { return c.Center }

// SetGeometry moves the circle; only point geometry is accepted.
func (c *Circle) SetGeometry(g orb.Geometry) bool {
	p, ok := g.(orb.Point)
	if !ok {
		return false
	}
	c.Center = p
	return true
}

// ToArgs serializes the circle.
func (c *Circle) ToArgs() map[string]any {
	return c.toArgs(KindCircle, circleProps, encodePoint(c.Center))
}

// Symbol is an icon and/or text label anchored at a point.
type Symbol struct {
	base
	Position orb.Point
}

// NewSymbol creates a symbol annotation at position with the given properties.
func NewSymbol(position orb.Point, props map[string]style.Value) *Symbol {
	return &Symbol{base: base{Properties: props}, Position: position}
}

func (s *Symbol) Kind() Kind             { return KindSymbol }
func (s *Symbol) Geometry() orb.Geometry { return s.Position }

// SetGeometry moves the symbol; only point geometry is accepted.
func (s *Symbol) SetGeometry(g orb.Geometry) bool {
	p, ok := g.(orb.Point)
	if !ok {
		return false
	}
	s.Position = p
	return true
}

// ToArgs serializes the symbol.
func (s *Symbol) ToArgs() map[string]any {
	return s.toArgs(KindSymbol, symbolProps, encodePoint(s.Position))
}

// Line is a polyline.
type Line struct {
	base
	Path orb.LineString
}

// NewLine creates a line annotation along path with the given properties.
func NewLine(path orb.LineString, props map[string]style.Value) *Line {
	return &Line{base: base{Properties: props}, Path: path}
}

func (l *Line) Kind() Kind             { return KindLine }
func (l *Line) Geometry() orb.Geometry { return l.Path }

// SetGeometry replaces the path; only line string geometry is accepted.
func (l *Line) SetGeometry(g orb.Geometry) bool {
	ls, ok := g.(orb.LineString)
	if !ok {
		return false
	}
	l.Path = ls
	return true
}

// ToArgs serializes the line.
func (l *Line) ToArgs() map[string]any {
	return l.toArgs(KindLine, lineProps, encodeLineString(l.Path))
}

// Fill is a polygon with optional holes.
type Fill struct {
	base
	Shape orb.Polygon
}

// NewFill creates a fill annotation over shape with the given properties.
func NewFill(shape orb.Polygon, props map[string]style.Value) *Fill {
	return &Fill{base: base{Properties: props}, Shape: shape}
}

func (f *Fill) Kind() Kind             { return KindFill }
func (f *Fill) Geometry() orb.Geometry { return f.Shape }

// SetGeometry replaces the shape; only polygon geometry is accepted.
func (f *Fill) SetGeometry(g orb.Geometry) bool {
	p, ok := g.(orb.Polygon)
	if !ok {
		return false
	}
	f.Shape = p
	return true
}

// ToArgs serializes the fill.
func (f *Fill) ToArgs() map[string]any {
	rings := make([]any, len(f.Shape))
	for i, ring := range f.Shape {
		rings[i] = encodeLineString(orb.LineString(ring))
	}
	return f.toArgs(KindFill, fillProps, rings)
}

func encodePoint(p orb.Point) []any {
	return wire.FromPoint(p).ToWire()
}

func encodeLineString(ls orb.LineString) []any {
	out := make([]any, len(ls))
	for i, p := range ls {
		out[i] = encodePoint(p)
	}
	return out
}
