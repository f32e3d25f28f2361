// Package bridge provides platform channel communication between Go and the
// native map renderer. It lets Go code invoke renderer operations (style
// mutation, camera moves, feature queries) and receive events back from the
// native side (gestures, camera changes, annotation drags).
package bridge

import (
	"encoding/json"
	"errors"

	"github.com/fxamacker/cbor/v2"
)

// MessageCodec encodes and decodes messages for platform channel communication.
type MessageCodec interface {
	// Encode converts a Go value to bytes for transmission to native code.
	Encode(value any) ([]byte, error)

	// Decode converts bytes received from native code to a Go value.
	Decode(data []byte) (any, error)
}

// JSONCodec implements MessageCodec using JSON encoding.
// JSON prioritizes interoperability and minimal native dependencies.
type JSONCodec struct{}

// Encode serializes the value to JSON bytes.
func (c JSONCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode deserializes JSON bytes to a Go value.
func (c JSONCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeInto deserializes JSON bytes into a specific type.
func (c JSONCodec) DecodeInto(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// CBORCodec implements MessageCodec using CBOR encoding. It avoids the
// base64 overhead JSON imposes on byte-heavy payloads such as style image
// bitmaps, at the cost of a native-side CBOR dependency. Embedders opt in
// with SetDefaultCodec when their renderer shim supports it.
type CBORCodec struct{}

// Encode serializes the value to CBOR bytes.
func (c CBORCodec) Encode(value any) ([]byte, error) {
	return cbor.Marshal(value)
}

// Decode deserializes CBOR bytes to a Go value. Maps are decoded with
// string keys so downstream payload handling sees the same shape as JSON.
func (c CBORCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := cbor.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return normalizeCBOR(result), nil
}

// normalizeCBOR rewrites map[any]any values produced by the CBOR decoder
// into map[string]any so both codecs yield one payload shape.
func normalizeCBOR(v any) any {
	switch m := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(m))
		for key, val := range m {
			if ks, ok := key.(string); ok {
				out[ks] = normalizeCBOR(val)
			}
		}
		return out
	case map[string]any:
		for key, val := range m {
			m[key] = normalizeCBOR(val)
		}
		return m
	case []any:
		for i, val := range m {
			m[i] = normalizeCBOR(val)
		}
		return m
	default:
		return v
	}
}

var defaultCodec MessageCodec = JSONCodec{}

// DefaultCodec returns the codec used by platform channels.
func DefaultCodec() MessageCodec {
	return defaultCodec
}

// SetDefaultCodec replaces the codec used by platform channels.
// Pass nil to restore the JSON codec.
func SetDefaultCodec(c MessageCodec) {
	if c == nil {
		defaultCodec = JSONCodec{}
		return
	}
	defaultCodec = c
}

// Standard errors for platform channel operations.
var (
	// ErrChannelNotFound indicates the requested platform channel does not exist.
	ErrChannelNotFound = errors.New("platform channel not found")

	// ErrMethodNotFound indicates the method is not implemented on the native side.
	ErrMethodNotFound = errors.New("method not implemented")

	// ErrInvalidArguments indicates the arguments passed to the method were invalid.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrRendererUnavailable indicates no native renderer is attached yet,
	// or the renderer has been torn down.
	ErrRendererUnavailable = errors.New("native renderer unavailable")

	// ErrClosed indicates the channel or stream has been shut down.
	ErrClosed = errors.New("channel closed")
)

// ChannelError represents an error returned from native code. The renderer
// reports style-level rejections this way, including duplicate entity ids
// (code "duplicate-id"), which the bridge deliberately does not detect
// locally.
type ChannelError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *ChannelError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

// NewChannelError creates a new ChannelError with the given code and message.
func NewChannelError(code, message string) *ChannelError {
	return &ChannelError{Code: code, Message: message}
}
