package events

// Method names used on the per-map channel for native-to-application events.
const (
	MethodMapClick            = "map#onMapClick"
	MethodMapLongClick        = "map#onMapLongClick"
	MethodCameraMoveStarted   = "camera#onMoveStarted"
	MethodCameraMove          = "camera#onMove"
	MethodCameraIdle          = "camera#onIdle"
	MethodRotateStarted       = "map#onRotateStarted"
	MethodRotate              = "map#onRotate"
	MethodRotateEnded         = "map#onRotateEnded"
	MethodFling               = "map#onFling"
	MethodFPSChanged          = "map#onFpsChanged"
	MethodAnnotationClick     = "annotation#onTap"
	MethodAnnotationLongClick = "annotation#onLongTap"
	MethodAnnotationDrag      = "annotation#onDrag"
)

// Hub fans a single native event occurrence out to every listener registered
// for that event kind. One field per kind; the zero value is ready to use.
type Hub struct {
	MapClick            Listeners[MapTap]
	MapLongClick        Listeners[MapTap]
	CameraMoveStarted   Listeners[CameraMoveReason]
	CameraMove          Listeners[CameraPosition]
	CameraIdle          Signal
	RotateStarted       Listeners[RotateEvent]
	Rotate              Listeners[RotateEvent]
	RotateEnded         Listeners[RotateEvent]
	Fling               Signal
	FPSChanged          Listeners[float64]
	AnnotationClick     Listeners[AnnotationTap]
	AnnotationLongClick Listeners[AnnotationTap]
	AnnotationDrag      Listeners[DragEvent]
}

// Dispatch decodes the wire payload once and notifies every listener for the
// named event in registration order. It reports whether the method named an
// event this hub handles; undecodable payloads for a known method are
// swallowed without notifying anyone.
func (h *Hub) Dispatch(method string, args any) bool {
	switch method {
	case MethodMapClick:
		if tap, ok := decodeTap(args); ok {
			h.MapClick.Notify(method, tap)
		}
	case MethodMapLongClick:
		if tap, ok := decodeTap(args); ok {
			h.MapLongClick.Notify(method, tap)
		}
	case MethodCameraMoveStarted:
		h.CameraMoveStarted.Notify(method, decodeMoveReason(args))
	case MethodCameraMove:
		if pos, ok := ParseCameraPosition(args); ok {
			h.CameraMove.Notify(method, pos)
		}
	case MethodCameraIdle:
		h.CameraIdle.Notify(method)
	case MethodRotateStarted:
		if ev, ok := decodeRotate(args); ok {
			h.RotateStarted.Notify(method, ev)
		}
	case MethodRotate:
		if ev, ok := decodeRotate(args); ok {
			h.Rotate.Notify(method, ev)
		}
	case MethodRotateEnded:
		if ev, ok := decodeRotate(args); ok {
			h.RotateEnded.Notify(method, ev)
		}
	case MethodFling:
		h.Fling.Notify(method)
	case MethodFPSChanged:
		if fps, ok := decodeFPS(args); ok {
			h.FPSChanged.Notify(method, fps)
		}
	case MethodAnnotationClick:
		if tap, ok := decodeAnnotationTap(args); ok {
			h.AnnotationClick.Notify(method, tap)
		}
	case MethodAnnotationLongClick:
		if tap, ok := decodeAnnotationTap(args); ok {
			h.AnnotationLongClick.Notify(method, tap)
		}
	case MethodAnnotationDrag:
		if ev, ok := decodeDrag(args); ok {
			h.AnnotationDrag.Notify(method, ev)
		}
	default:
		return false
	}
	return true
}

// Clear drops every listener for every event kind.
func (h *Hub) Clear() {
	h.MapClick.Clear()
	h.MapLongClick.Clear()
	h.CameraMoveStarted.Clear()
	h.CameraMove.Clear()
	h.CameraIdle.Clear()
	h.RotateStarted.Clear()
	h.Rotate.Clear()
	h.RotateEnded.Clear()
	h.Fling.Clear()
	h.FPSChanged.Clear()
	h.AnnotationClick.Clear()
	h.AnnotationLongClick.Clear()
	h.AnnotationDrag.Clear()
}
