package events

import (
	"github.com/go-drift/maplibre/pkg/wire"
)

// ScreenPoint is a position in logical pixels on the map view.
type ScreenPoint struct {
	X float64
	Y float64
}

// MapTap describes a click or long click on the map surface.
type MapTap struct {
	Position wire.LatLng
	Point    ScreenPoint
}

// CameraMoveReason tells what initiated a camera movement.
type CameraMoveReason int

const (
	MoveReasonUnknown CameraMoveReason = iota
	MoveReasonAPIGesture
	MoveReasonDeveloperAnimation
	MoveReasonAPIAnimation
)

// CameraPosition is the camera state reported while the map moves.
type CameraPosition struct {
	Target  wire.LatLng
	Zoom    float64
	Bearing float64
	Tilt    float64
}

// RotateEvent reports a rotation gesture in progress or at its boundaries.
type RotateEvent struct {
	// AngleThreshold is the angle the gesture must exceed before rotation
	// starts, in degrees.
	AngleThreshold float64
	// DeltaSinceStart is the cumulative rotation since the gesture began.
	DeltaSinceStart float64
	// DeltaSinceLast is the rotation since the previous rotate event.
	DeltaSinceLast float64
}

// AnnotationTap describes a click or long click on a managed annotation.
type AnnotationTap struct {
	ID   string
	Kind string
}

// DragPhase tags the stage of an annotation drag gesture.
type DragPhase string

const (
	DragStart DragPhase = "start"
	DragMove  DragPhase = "drag"
	DragEnd   DragPhase = "end"
)

// DragEvent reports an annotation being dragged.
type DragEvent struct {
	ID      string
	Kind    string
	Point   ScreenPoint
	Origin  wire.LatLng
	Current wire.LatLng
	Delta   wire.LatLng
	Phase   DragPhase
}

// decodeTap accepts either the bare [lat, lng] coordinate list or a map
// carrying "position" and an optional screen "point".
func decodeTap(args any) (MapTap, bool) {
	if pos, ok := wire.ParseLatLng(args); ok {
		return MapTap{Position: pos}, true
	}
	m := wire.Map(args)
	if m == nil {
		return MapTap{}, false
	}
	pos, ok := wire.ParseLatLng(m["position"])
	if !ok {
		pos, ok = wire.ParseLatLng(m)
	}
	if !ok {
		return MapTap{}, false
	}
	tap := MapTap{Position: pos}
	if pt := wire.Map(m["point"]); pt != nil {
		tap.Point.X, _ = wire.Float64(pt["x"])
		tap.Point.Y, _ = wire.Float64(pt["y"])
	}
	return tap, true
}

// decodeMoveReason accepts a bare integer code or a map keyed "reason".
// Unrecognized or absent codes decode to MoveReasonUnknown.
func decodeMoveReason(args any) CameraMoveReason {
	code, ok := wire.Int(args)
	if !ok {
		if m := wire.Map(args); m != nil {
			code, ok = wire.Int(m["reason"])
		}
	}
	if !ok || code < int(MoveReasonAPIGesture) || code > int(MoveReasonAPIAnimation) {
		return MoveReasonUnknown
	}
	return CameraMoveReason(code)
}

// ParseCameraPosition decodes a camera state map, optionally wrapped in a
// "position" key. A decodable target is required; zoom, bearing and tilt
// default to zero when absent.
func ParseCameraPosition(args any) (CameraPosition, bool) {
	m := wire.Map(args)
	if m == nil {
		return CameraPosition{}, false
	}
	if inner := wire.Map(m["position"]); inner != nil {
		m = inner
	}
	target, ok := wire.ParseLatLng(m["target"])
	if !ok {
		return CameraPosition{}, false
	}
	pos := CameraPosition{Target: target}
	pos.Zoom, _ = wire.Float64(m["zoom"])
	pos.Bearing, _ = wire.Float64(m["bearing"])
	pos.Tilt, _ = wire.Float64(m["tilt"])
	return pos, true
}

func decodeRotate(args any) (RotateEvent, bool) {
	m := wire.Map(args)
	if m == nil {
		return RotateEvent{}, false
	}
	var ev RotateEvent
	ev.AngleThreshold, _ = wire.Float64(m["angleThreshold"])
	ev.DeltaSinceStart, _ = wire.Float64(m["deltaSinceStart"])
	ev.DeltaSinceLast, _ = wire.Float64(m["deltaSinceLast"])
	return ev, true
}

func decodeFPS(args any) (float64, bool) {
	if fps, ok := wire.Float64(args); ok {
		return fps, true
	}
	if m := wire.Map(args); m != nil {
		return wire.Float64(m["fps"])
	}
	return 0, false
}

func decodeAnnotationTap(args any) (AnnotationTap, bool) {
	m := wire.Map(args)
	if m == nil {
		return AnnotationTap{}, false
	}
	id := wire.String(m["id"])
	if id == "" {
		return AnnotationTap{}, false
	}
	return AnnotationTap{ID: id, Kind: wire.String(m["type"])}, true
}

func decodeDrag(args any) (DragEvent, bool) {
	m := wire.Map(args)
	if m == nil {
		return DragEvent{}, false
	}
	id := wire.String(m["id"])
	if id == "" {
		return DragEvent{}, false
	}
	ev := DragEvent{
		ID:   id,
		Kind: wire.String(m["type"]),
	}
	switch wire.String(m["eventType"]) {
	case "start":
		ev.Phase = DragStart
	case "end":
		ev.Phase = DragEnd
	default:
		ev.Phase = DragMove
	}
	if pt := wire.Map(m["point"]); pt != nil {
		ev.Point.X, _ = wire.Float64(pt["x"])
		ev.Point.Y, _ = wire.Float64(pt["y"])
	}
	ev.Origin, _ = wire.ParseLatLng(m["origin"])
	ev.Current, _ = wire.ParseLatLng(m["current"])
	ev.Delta, _ = wire.ParseLatLng(m["delta"])
	return ev, true
}
