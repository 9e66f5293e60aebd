//go:build !wasm
// +build !wasm

package console

// Stub file for non-WASM builds so packages using the console bridge
// compile and run under native tests.

// Log is a no-op in non-WASM builds.
func Log(args ...any) {}

// Warn is a no-op in non-WASM builds.
func Warn(args ...any) {}

// Error is a no-op in non-WASM builds.
func Error(args ...any) {}
