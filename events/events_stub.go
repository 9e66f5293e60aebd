//go:build !wasm
// +build !wasm

package events

// Stub file for non-WASM builds so components compile and can be driven from
// native tests. The actual implementation is in events.go with js/wasm build tags.

// AdaptNoArgEvent returns the handler unchanged in non-WASM builds.
func AdaptNoArgEvent(handler func()) func() {
	return handler
}

// AdaptChangeEvent returns the handler unchanged in non-WASM builds, so tests
// can invoke it with a synthetic ChangeEventArgs.
func AdaptChangeEvent(handler func(ChangeEventArgs)) func(ChangeEventArgs) {
	return handler
}
