package maplibre

import "github.com/go-drift/maplibre/pkg/wire"

// TransitionUnit selects the timing unit the native renderer expects for
// per-property transition descriptors. Descriptors are built and carried in
// milliseconds everywhere inside the bridge; when the renderer wants
// seconds, the conversion happens exactly once, immediately before the
// argument map crosses the channel.
type TransitionUnit string

const (
	UnitMilliseconds TransitionUnit = "ms"
	UnitSeconds      TransitionUnit = "s"
)

// convertTransitionUnits rewrites every per-property transition map inside
// args from milliseconds to seconds. It only touches the top-level
// "transition" sub-map produced by the style serializers.
func convertTransitionUnits(args map[string]any) {
	trans, ok := args["transition"].(map[string]any)
	if !ok {
		return
	}
	for _, v := range trans {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if delay, ok := wire.Float64(m["delay"]); ok {
			m["delay"] = delay / 1000
		}
		if duration, ok := wire.Float64(m["duration"]); ok {
			m["duration"] = duration / 1000
		}
	}
}
