//go:build (js || wasm) && !dev
// +build js wasm
// +build !dev

package runtime

// runHook calls a lifecycle hook. A panicking hook is logged and the render
// carries on without it.
func (r *RendererImpl) runHook(hook, key string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Errorw("lifecycle hook panicked", "hook", hook, "component", key, "panic", rec)
		}
	}()
	fn()
}
