//go:build (js || wasm) && dev
// +build js wasm
// +build dev

package runtime

import "time"

// runHook calls a lifecycle hook and lets panics crash the program, so a
// broken component fails loudly during development. Slow hooks are logged.
func (r *RendererImpl) runHook(hook, key string, fn func()) {
	start := time.Now()
	fn()
	if d := time.Since(start); d > slowHook {
		r.log.Warnw("slow lifecycle hook", "hook", hook, "component", key, "duration", d)
	}
}

const slowHook = 16 * time.Millisecond
