package bridge

// noopBridge is a NativeBridge that accepts all calls without side effects.
type noopBridge struct{}

func (noopBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	return DefaultCodec().Encode(nil)
}
func (noopBridge) StartEventStream(string) error { return nil }
func (noopBridge) StopEventStream(string) error  { return nil }

// SetupTestBridge installs a no-op native bridge and synchronous dispatch
// function for testing. The cleanup function should be testing.T.Cleanup or
// equivalent; it registers a teardown that calls ResetForTest.
//
//	bridge.SetupTestBridge(t.Cleanup)
func SetupTestBridge(cleanup func(func())) {
	SetNativeBridge(noopBridge{})
	RegisterDispatch(func(cb func()) { cb() })
	cleanup(ResetForTest)
}

// RecordedCall is one method invocation captured by a RecordingBridge.
type RecordedCall struct {
	Channel string
	Method  string
	Args    any
}

// RecordingBridge is a NativeBridge that records invocations and returns
// canned responses keyed by method name.
type RecordingBridge struct {
	Calls     []RecordedCall
	Responses map[string]any
	Err       error
}

// InvokeMethod records the call and returns the canned response for method.
func (b *RecordingBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	decoded, err := DefaultCodec().Decode(args)
	if err != nil {
		return nil, err
	}
	b.Calls = append(b.Calls, RecordedCall{Channel: channel, Method: method, Args: decoded})
	if b.Err != nil {
		return nil, b.Err
	}
	return DefaultCodec().Encode(b.Responses[method])
}

func (b *RecordingBridge) StartEventStream(string) error { return nil }
func (b *RecordingBridge) StopEventStream(string) error  { return nil }

// LastCall returns the most recent recorded call, or nil if none were made.
func (b *RecordingBridge) LastCall() *RecordedCall {
	if len(b.Calls) == 0 {
		return nil
	}
	return &b.Calls[len(b.Calls)-1]
}
