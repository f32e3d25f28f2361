// Package maplibre is the application-facing facade over the native map
// renderer. A Controller owns one method channel per map view, serializes
// style entities into their wire form on the way out, and routes native
// events into its Hub on the way in.
package maplibre

import (
	"fmt"
	"sync"

	"github.com/go-drift/maplibre/pkg/annotations"
	"github.com/go-drift/maplibre/pkg/bridge"
	"github.com/go-drift/maplibre/pkg/errors"
	"github.com/go-drift/maplibre/pkg/events"
	"github.com/go-drift/maplibre/pkg/style"
	"github.com/go-drift/maplibre/pkg/wire"
	"github.com/paulmach/orb/geojson"
)

// Channel names per map view id. Discrete events (taps, annotation
// interactions) arrive as method calls; high-frequency gesture streams
// (camera moves, rotation, fps) arrive on the event channel.
const (
	channelNameFormat     = "maplibre/map_%d"
	eventChannelFormat    = "maplibre/map_%d/events"
	streamEventKey        = "event"
	streamEventPayloadKey = "data"
)

// Controller drives a single native map view.
//
// All methods are synchronous: outbound calls block until the native side
// responds, and inbound events run listeners on the native callback
// goroutine. Dispose releases the channel so a later view can reuse the id.
type Controller struct {
	id       int
	channel  *bridge.MethodChannel
	stream   *bridge.EventChannel
	streamed *bridge.Subscription
	hub      *events.Hub
	manager  *annotations.Manager
	opts     Options

	mu            sync.Mutex
	disposed      bool
	nativeVersion string
}

// NewController wires a controller to the channel for the given map view id.
// The native side must register the matching platform view under the same id.
func NewController(id int, opts Options) *Controller {
	if opts.TransitionUnit != UnitSeconds {
		opts.TransitionUnit = UnitMilliseconds
	}
	c := &Controller{
		id:      id,
		channel: bridge.NewMethodChannel(fmt.Sprintf(channelNameFormat, id)),
		stream:  bridge.NewEventChannel(fmt.Sprintf(eventChannelFormat, id)),
		hub:     &events.Hub{},
		manager: annotations.NewManager(),
		opts:    opts,
	}
	c.channel.SetHandler(c.handleNativeCall)
	c.streamed = c.stream.Listen(bridge.EventHandler{
		OnEvent: c.handleStreamEvent,
		OnError: func(err error) {
			errors.Report(&errors.BridgeError{
				Op:      "maplibre.eventStream",
				Kind:    errors.KindPlatform,
				Channel: c.stream.Name(),
				Err:     err,
			})
		},
	})

	// Keep locally managed geometry in sync while the user drags.
	c.hub.AnnotationDrag.Add(func(ev events.DragEvent) {
		if ev.Phase == events.DragStart {
			return
		}
		c.manager.UpdateGeometry(ev.ID, ev.Current.Point())
	})

	c.applyOptions()
	return c
}

// applyOptions pushes the construction-time options to the native view.
// Constructor context has no error return; failures (including a bridge
// that is not attached yet) are reported, and the embedder can re-read
// Options to apply them itself.
func (c *Controller) applyOptions() {
	args := map[string]any{
		"styleUrl": c.opts.StyleURL,
		"gestures": map[string]any{
			"rotate": c.opts.Gestures.Rotate,
			"scroll": c.opts.Gestures.Scroll,
			"tilt":   c.opts.Gestures.Tilt,
			"zoom":   c.opts.Gestures.Zoom,
		},
	}
	if len(c.opts.Camera.Target) == 2 {
		args["camera"] = map[string]any{
			"target":  []any{c.opts.Camera.Target[0], c.opts.Camera.Target[1]},
			"zoom":    c.opts.Camera.Zoom,
			"bearing": c.opts.Camera.Bearing,
			"tilt":    c.opts.Camera.Tilt,
		}
	}
	if _, err := c.invoke("map#setOptions", args); err != nil {
		errors.Report(&errors.BridgeError{
			Op:      "maplibre.applyOptions",
			Kind:    errors.KindPlatform,
			Channel: c.channel.Name(),
			Err:     err,
		})
	}
}

// ID returns the map view id.
func (c *Controller) ID() int { return c.id }

// Events returns the dispatch hub for listener registration.
func (c *Controller) Events() *events.Hub { return c.hub }

// Annotations returns the live annotation registry.
func (c *Controller) Annotations() *annotations.Manager { return c.manager }

// Options returns the normalized construction-time options, so the embedder
// building the platform view can consume them directly.
func (c *Controller) Options() Options { return c.opts }

// handleNativeCall routes every recognized event method into the hub.
// Event dispatch never returns an error to the native caller.
func (c *Controller) handleNativeCall(method string, args any) (any, error) {
	if c.hub.Dispatch(method, args) {
		return nil, nil
	}
	return nil, bridge.ErrMethodNotFound
}

// handleStreamEvent unwraps an event-channel envelope and routes it into the
// hub, hopping onto the registered dispatch thread when the embedder has one.
func (c *Controller) handleStreamEvent(data any) {
	m := wire.Map(data)
	if m == nil {
		return
	}
	method := wire.String(m[streamEventKey])
	payload := m[streamEventPayloadKey]
	if !bridge.Dispatch(func() { c.hub.Dispatch(method, payload) }) {
		c.hub.Dispatch(method, payload)
	}
}

// invoke finalizes args for the renderer's unit conventions and calls native.
func (c *Controller) invoke(method string, args map[string]any) (any, error) {
	c.mu.Lock()
	disposed := c.disposed
	c.mu.Unlock()
	if disposed {
		return nil, bridge.ErrClosed
	}
	if c.opts.TransitionUnit == UnitSeconds {
		convertTransitionUnits(args)
	}
	return c.channel.Invoke(method, args)
}

// SetStyle points the map at a new style URL or inline style JSON.
func (c *Controller) SetStyle(styleRef string) error {
	_, err := c.invoke("style#setStyle", map[string]any{"style": styleRef})
	return err
}

// AddLayer adds a layer, optionally inserting it below an existing layer id.
func (c *Controller) AddLayer(layer *style.Layer, belowID string) error {
	args := layer.ToArgs()
	if belowID != "" {
		args["belowLayerId"] = belowID
	}
	_, err := c.invoke("style#addLayer", args)
	return err
}

// UpdateLayer re-serializes the layer's properties over the existing layer.
func (c *Controller) UpdateLayer(layer *style.Layer) error {
	_, err := c.invoke("style#updateLayer", layer.ToArgs())
	return err
}

// RemoveLayer removes the layer with the given id.
func (c *Controller) RemoveLayer(id string) error {
	_, err := c.invoke("style#removeLayer", map[string]any{"id": id})
	return err
}

// SetLayerVisibility toggles a layer without removing it.
func (c *Controller) SetLayerVisibility(id string, visible bool) error {
	_, err := c.invoke("style#setLayerVisibility", map[string]any{
		"id":      id,
		"visible": visible,
	})
	return err
}

// SetFilter replaces the layer's data filter. A malformed filter clears it;
// filter failures never raise.
func (c *Controller) SetFilter(layerID string, filter any) error {
	args := map[string]any{"id": layerID}
	if encoded, ok := style.EncodeFilter(filter); ok {
		args["filter"] = encoded
	}
	_, err := c.invoke("style#setFilter", args)
	return err
}

// AddSource registers a data source with the style.
func (c *Controller) AddSource(src style.Source) error {
	_, err := c.invoke("source#add", src.ToArgs())
	return err
}

// RemoveSource removes the source with the given id.
func (c *Controller) RemoveSource(id string) error {
	_, err := c.invoke("source#remove", map[string]any{"id": id})
	return err
}

// SetGeoJSONData replaces the feature data of a GeoJSON source in place.
// Nil or unserializable data is rejected; an explicit null never crosses
// the wire.
func (c *Controller) SetGeoJSONData(sourceID string, data *geojson.FeatureCollection) error {
	if data == nil {
		return bridge.ErrInvalidArguments
	}
	src := style.GeoJSONSource{ID: sourceID, Data: data}
	encoded, ok := src.ToArgs()["data"]
	if !ok {
		return bridge.ErrInvalidArguments
	}
	_, err := c.invoke("source#setGeoJson", map[string]any{
		"id":   sourceID,
		"data": encoded,
	})
	return err
}

// AddImage registers a style image for use by symbol layers.
func (c *Controller) AddImage(img *style.Image) error {
	args, err := img.ToArgs()
	if err != nil {
		return err
	}
	_, err = c.invoke("style#addImage", args)
	return err
}

// RemoveImage removes a style image by id.
func (c *Controller) RemoveImage(id string) error {
	_, err := c.invoke("style#removeImage", map[string]any{"id": id})
	return err
}

// AddAnnotation registers the annotation locally, assigns it an id when it
// has none, and sends it to the renderer. The assigned id is returned even
// when the native call fails so the caller can retry or remove it.
func (c *Controller) AddAnnotation(a annotations.Annotation) (string, error) {
	id := c.manager.Add(a)
	_, err := c.invoke("annotation#add", a.ToArgs())
	return id, err
}

// UpdateAnnotation re-sends an annotation's current state to the renderer.
func (c *Controller) UpdateAnnotation(a annotations.Annotation) error {
	_, err := c.invoke("annotation#update", a.ToArgs())
	return err
}

// RemoveAnnotation removes the annotation locally and at the renderer.
func (c *Controller) RemoveAnnotation(id string) error {
	c.manager.Remove(id)
	_, err := c.invoke("annotation#remove", map[string]any{"id": id})
	return err
}

// ClearAnnotations removes every annotation locally and at the renderer.
func (c *Controller) ClearAnnotations() error {
	c.manager.Clear()
	_, err := c.invoke("annotation#removeAll", map[string]any{})
	return err
}

// MoveCamera applies the update immediately, without animation.
func (c *Controller) MoveCamera(update CameraUpdate) error {
	if update.IsZero() {
		return bridge.ErrInvalidArguments
	}
	_, err := c.invoke("camera#move", map[string]any{"cameraUpdate": update.ToWire()})
	return err
}

// AnimateCamera applies the update with an animation lasting durationMs
// milliseconds. A non-positive duration uses the renderer default.
func (c *Controller) AnimateCamera(update CameraUpdate, durationMs int64) error {
	if update.IsZero() {
		return bridge.ErrInvalidArguments
	}
	args := map[string]any{"cameraUpdate": update.ToWire()}
	if durationMs > 0 {
		args["duration"] = durationMs
	}
	_, err := c.invoke("camera#animate", args)
	return err
}

// GetCameraPosition reads the current camera state from the renderer.
func (c *Controller) GetCameraPosition() (events.CameraPosition, error) {
	result, err := c.invoke("camera#getPosition", map[string]any{})
	if err != nil {
		return events.CameraPosition{}, err
	}
	pos, ok := events.ParseCameraPosition(result)
	if !ok {
		return events.CameraPosition{}, bridge.ErrInvalidArguments
	}
	return pos, nil
}

// GetVisibleRegion reads the geographic quadrilateral currently on screen.
func (c *Controller) GetVisibleRegion() (VisibleRegion, error) {
	result, err := c.invoke("map#getVisibleRegion", map[string]any{})
	if err != nil {
		return VisibleRegion{}, err
	}
	region, ok := parseVisibleRegion(result)
	if !ok {
		return VisibleRegion{}, bridge.ErrInvalidArguments
	}
	return region, nil
}

// QueryRenderedFeatures asks the renderer which features are drawn at a
// point or within a rect. Result entries that fail to decode are skipped.
func (c *Controller) QueryRenderedFeatures(q RenderedFeatureQuery) ([]*geojson.Feature, error) {
	result, err := c.invoke("map#queryRenderedFeatures", q.toArgs())
	if err != nil {
		return nil, err
	}
	return parseRenderedFeatures(result), nil
}

// NativeVersion reports the renderer version, fetching it once and caching.
func (c *Controller) NativeVersion() (string, error) {
	c.mu.Lock()
	cached := c.nativeVersion
	c.mu.Unlock()
	if cached != "" {
		return cached, nil
	}

	result, err := c.invoke("map#getVersion", map[string]any{})
	if err != nil {
		return "", err
	}
	version := wire.String(result)
	if version == "" {
		if m := wire.Map(result); m != nil {
			version = wire.String(m["version"])
		}
	}
	if version == "" {
		return "", bridge.ErrInvalidArguments
	}

	c.mu.Lock()
	c.nativeVersion = version
	c.mu.Unlock()
	return version, nil
}

// SupportsFeature reports whether the renderer release behind this view
// carries the named feature. It returns false when the version cannot be
// determined.
func (c *Controller) SupportsFeature(feature string) bool {
	version, err := c.NativeVersion()
	if err != nil {
		return false
	}
	return supportsFeature(version, feature)
}

// Dispose drops all listeners and releases the channel. The controller is
// unusable afterwards; calls return ErrClosed.
func (c *Controller) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	c.mu.Unlock()

	c.streamed.Cancel()
	c.hub.Clear()
	c.manager.Clear()
	bridge.ReleaseChannel(c.channel.Name())
	bridge.ReleaseChannel(c.stream.Name())
}
