package wire

import "github.com/paulmach/orb"

// LatLng is a geographic coordinate. The bridge wire order is [latitude,
// longitude]; note that orb geometry uses the opposite (x=lon, y=lat) order,
// so conversions go through FromPoint/Point.
type LatLng struct {
	Latitude  float64
	Longitude float64
}

// ToWire encodes the coordinate in bridge order.
func (l LatLng) ToWire() []any {
	return []any{l.Latitude, l.Longitude}
}

// Point converts to an orb.Point (lon, lat order).
func (l LatLng) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// FromPoint converts an orb.Point (lon, lat order) to a LatLng.
func FromPoint(p orb.Point) LatLng {
	return LatLng{Latitude: p[1], Longitude: p[0]}
}

// ParseLatLng decodes a coordinate from its wire representation: either a
// [lat, lng] list or a map keyed "latitude"/"longitude" (or "lat"/"lng").
func ParseLatLng(v any) (LatLng, bool) {
	switch data := v.(type) {
	case []any:
		if len(data) < 2 {
			return LatLng{}, false
		}
		lat, okLat := Float64(data[0])
		lng, okLng := Float64(data[1])
		if !okLat || !okLng {
			return LatLng{}, false
		}
		return LatLng{Latitude: lat, Longitude: lng}, true
	case []float64:
		if len(data) < 2 {
			return LatLng{}, false
		}
		return LatLng{Latitude: data[0], Longitude: data[1]}, true
	case map[string]any:
		lat, okLat := Float64(data["latitude"])
		if !okLat {
			lat, okLat = Float64(data["lat"])
		}
		lng, okLng := Float64(data["longitude"])
		if !okLng {
			lng, okLng = Float64(data["lng"])
		}
		if !okLat || !okLng {
			return LatLng{}, false
		}
		return LatLng{Latitude: lat, Longitude: lng}, true
	default:
		return LatLng{}, false
	}
}

// LatLngBounds is a rectangle aligned to parallels and meridians.
type LatLngBounds struct {
	Southwest LatLng
	Northeast LatLng
}

// ToWire encodes the bounds as [[swLat, swLng], [neLat, neLng]].
func (b LatLngBounds) ToWire() []any {
	return []any{b.Southwest.ToWire(), b.Northeast.ToWire()}
}

// Bound converts to an orb.Bound.
func (b LatLngBounds) Bound() orb.Bound {
	return orb.Bound{Min: b.Southwest.Point(), Max: b.Northeast.Point()}
}

// ParseLatLngBounds decodes bounds from a [[swLat, swLng], [neLat, neLng]]
// list or a map keyed "sw"/"ne".
func ParseLatLngBounds(v any) (LatLngBounds, bool) {
	switch data := v.(type) {
	case []any:
		if len(data) < 2 {
			return LatLngBounds{}, false
		}
		sw, okSW := ParseLatLng(data[0])
		ne, okNE := ParseLatLng(data[1])
		if !okSW || !okNE {
			return LatLngBounds{}, false
		}
		return LatLngBounds{Southwest: sw, Northeast: ne}, true
	case map[string]any:
		sw, okSW := ParseLatLng(data["sw"])
		ne, okNE := ParseLatLng(data["ne"])
		if !okSW || !okNE {
			return LatLngBounds{}, false
		}
		return LatLngBounds{Southwest: sw, Northeast: ne}, true
	default:
		return LatLngBounds{}, false
	}
}
