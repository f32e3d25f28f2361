package maplibre

import "github.com/go-drift/maplibre/pkg/wire"

// CameraUpdate describes a camera movement as the operator-tagged array the
// native renderer expects, mirroring the renderer SDK's update factories.
type CameraUpdate struct {
	raw []any
}

// ToWire returns the wire encoding of the update.
func (u CameraUpdate) ToWire() []any { return u.raw }

// IsZero reports whether the update was never constructed.
func (u CameraUpdate) IsZero() bool { return u.raw == nil }

// NewLatLng moves the camera target without changing zoom.
func NewLatLng(target wire.LatLng) CameraUpdate {
	return CameraUpdate{raw: []any{"newLatLng", target.ToWire()}}
}

// NewLatLngZoom moves the camera target and sets the zoom level.
func NewLatLngZoom(target wire.LatLng, zoom float64) CameraUpdate {
	return CameraUpdate{raw: []any{"newLatLngZoom", target.ToWire(), zoom}}
}

// NewLatLngBounds fits the camera to bounds with per-edge padding in
// logical pixels.
func NewLatLngBounds(bounds wire.LatLngBounds, left, top, right, bottom float64) CameraUpdate {
	return CameraUpdate{raw: []any{"newLatLngBounds", bounds.ToWire(), left, top, right, bottom}}
}

// ZoomTo sets an absolute zoom level.
func ZoomTo(zoom float64) CameraUpdate {
	return CameraUpdate{raw: []any{"zoomTo", zoom}}
}

// ZoomBy changes the zoom level by a delta.
func ZoomBy(delta float64) CameraUpdate {
	return CameraUpdate{raw: []any{"zoomBy", delta}}
}

// ZoomIn increases zoom by one level.
func ZoomIn() CameraUpdate { return ZoomBy(1) }

// ZoomOut decreases zoom by one level.
func ZoomOut() CameraUpdate { return ZoomBy(-1) }

// BearingTo rotates the camera to an absolute bearing in degrees.
func BearingTo(bearing float64) CameraUpdate {
	return CameraUpdate{raw: []any{"bearingTo", bearing}}
}

// TiltTo tilts the camera to an absolute pitch in degrees.
func TiltTo(tilt float64) CameraUpdate {
	return CameraUpdate{raw: []any{"tiltTo", tilt}}
}

// VisibleRegion is the geographic quadrilateral currently on screen. The
// far corners are the top of the screen, near corners the bottom; with a
// tilted camera the region is a trapezoid, so Bounds is the enclosing
// rectangle.
type VisibleRegion struct {
	FarLeft   wire.LatLng
	FarRight  wire.LatLng
	NearLeft  wire.LatLng
	NearRight wire.LatLng
	Bounds    wire.LatLngBounds
}

func parseVisibleRegion(args any) (VisibleRegion, bool) {
	m := wire.Map(args)
	if m == nil {
		return VisibleRegion{}, false
	}
	var region VisibleRegion
	var ok bool
	if region.FarLeft, ok = wire.ParseLatLng(m["farLeft"]); !ok {
		return VisibleRegion{}, false
	}
	if region.FarRight, ok = wire.ParseLatLng(m["farRight"]); !ok {
		return VisibleRegion{}, false
	}
	if region.NearLeft, ok = wire.ParseLatLng(m["nearLeft"]); !ok {
		return VisibleRegion{}, false
	}
	if region.NearRight, ok = wire.ParseLatLng(m["nearRight"]); !ok {
		return VisibleRegion{}, false
	}
	if bounds, ok := wire.ParseLatLngBounds(m["bounds"]); ok {
		region.Bounds = bounds
	} else {
		region.Bounds = enclosingBounds(region)
	}
	return region, true
}

func enclosingBounds(r VisibleRegion) wire.LatLngBounds {
	corners := []wire.LatLng{r.FarLeft, r.FarRight, r.NearLeft, r.NearRight}
	sw, ne := corners[0], corners[0]
	for _, c := range corners[1:] {
		if c.Latitude < sw.Latitude {
			sw.Latitude = c.Latitude
		}
		if c.Longitude < sw.Longitude {
			sw.Longitude = c.Longitude
		}
		if c.Latitude > ne.Latitude {
			ne.Latitude = c.Latitude
		}
		if c.Longitude > ne.Longitude {
			ne.Longitude = c.Longitude
		}
	}
	return wire.LatLngBounds{Southwest: sw, Northeast: ne}
}
