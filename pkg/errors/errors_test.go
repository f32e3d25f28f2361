package errors

import (
	"strings"
	"testing"
	"time"
)

func TestBridgeErrorString(t *testing.T) {
	err := &BridgeError{
		Op:   "test.operation",
		Kind: KindPlatform,
		Err:  &ParseError{Channel: "test", DataType: "TestData", Got: "invalid"},
	}
	if err.Error() == "" {
		t.Error("expected non-empty error string")
	}
}

func TestBridgeErrorWithChannel(t *testing.T) {
	err := &BridgeError{
		Op:      "test.operation",
		Kind:    KindParsing,
		Channel: "maplibre/map_0",
		Err:     &ParseError{Channel: "maplibre/map_0", DataType: "TestData", Got: nil},
	}
	got := err.Error()
	want := "channel=maplibre/map_0"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindPlatform, "platform"},
		{KindParsing, "parsing"},
		{KindColor, "color"},
		{KindExpression, "expression"},
		{KindStyle, "style"},
		{KindListener, "listener"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestListenerErrorString(t *testing.T) {
	err := &ListenerError{
		Event:     "onMapClick",
		Recovered: "boom",
	}
	got := err.Error()
	if !strings.Contains(got, "onMapClick") || !strings.Contains(got, "boom") {
		t.Errorf("ListenerError.Error() = %q, want event and value present", got)
	}
}

// testHandler captures reported errors for assertions.
type testHandler struct {
	onError    func(*BridgeError)
	onPanic    func(*PanicError)
	onListener func(*ListenerError)
}

func (h *testHandler) HandleError(err *BridgeError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleListenerError(err *ListenerError) {
	if h.onListener != nil {
		h.onListener(err)
	}
}

func TestReport(t *testing.T) {
	var captured *BridgeError
	handler := &testHandler{onError: func(err *BridgeError) { captured = err }}

	SetHandler(handler)
	defer SetHandler(nil)

	Report(&BridgeError{
		Op:   "test.op",
		Kind: KindStyle,
		Err:  &ParseError{Channel: "test", DataType: "Test", Got: nil},
	})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	SetHandler(&testHandler{onError: func(*BridgeError) { called = true }})
	defer SetHandler(nil)

	Report(nil)
	if called {
		t.Error("nil error should not reach the handler")
	}
}

func TestReportListenerErrorSetsTimestamp(t *testing.T) {
	var captured *ListenerError
	SetHandler(&testHandler{onListener: func(err *ListenerError) { captured = err }})
	defer SetHandler(nil)

	ReportListenerError(&ListenerError{Event: "onFling", Recovered: "nope"})

	if captured == nil {
		t.Fatal("expected listener error to be captured")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(nil)

	func() {
		defer Recover("test.recover")
		panic("contained")
	}()

	if captured == nil {
		t.Fatal("expected panic to be reported")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.Value != "contained" {
		t.Errorf("Value = %v, want %q", captured.Value, "contained")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", DefaultHandler)
	}
}
