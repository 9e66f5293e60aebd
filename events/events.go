//go:build js || wasm
// +build js wasm

package events

import "syscall/js"

// AdaptNoArgEvent wraps a handler that ignores the DOM event.
// The default action is suppressed so buttons inside forms never submit the page.
func AdaptNoArgEvent(handler func()) func(js.Value) {
	return func(e js.Value) {
		preventDefault(e)
		handler()
	}
}

// AdaptChangeEvent wraps a handler that needs the event target's current value.
func AdaptChangeEvent(handler func(ChangeEventArgs)) func(js.Value) {
	return func(e js.Value) {
		target := e.Get("target")
		value := ""
		if target.Truthy() {
			value = target.Get("value").String()
		}
		handler(ChangeEventArgs{Value: value})
	}
}

func preventDefault(e js.Value) {
	if e.Truthy() && e.Get("preventDefault").Truthy() {
		e.Call("preventDefault")
	}
}
