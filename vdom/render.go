//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/userform/console"
)

// supportedTags lists the element tags createElement knows how to build.
var supportedTags = map[string]bool{
	"div": true, "p": true, "span": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "form": true, "input": true,
	"textarea": true, "select": true, "option": true, "button": true,
	"table": true, "thead": true, "tbody": true, "tr": true, "th": true,
	"td": true, "ul": true, "ol": true, "li": true, "a": true, "label": true,
	"section": true, "header": true, "footer": true, "main": true, "nav": true,
}

// releaseCallbacks releases all js.Func objects stored in a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}
	for _, cb := range v.GetEventCallbacks() {
		if jsFunc, ok := cb.(js.Func); ok {
			jsFunc.Release()
		}
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}
	releaseCallbacks(v)
	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

// Clear empties the mount element and releases the callbacks of prevVDOM.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}
	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}
	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func querySelector(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
	}
	return mount
}

// setAttributeValue sets an attribute on an element, handling boolean attributes and event handlers correctly.
func setAttributeValue(el js.Value, key string, value any) {
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
		// Reflect the property too: removing "disabled" alone does not re-enable a button in every engine.
		if key == "disabled" {
			el.Set("disabled", boolVal)
		}
		return
	}
	if isEventKey(key) {
		return
	}
	el.Call("setAttribute", key, value)
}

func isEventKey(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n'
}

// attachEventListeners attaches every func(js.Value) attribute whose key
// starts with "on" (onClick, onInput, onChange) as a DOM event listener.
func attachEventListeners(el js.Value, vnode *VNode, attributes map[string]any) {
	for key, value := range attributes {
		if !isEventKey(key) {
			continue
		}
		handler, ok := value.(func(js.Value))
		if !ok {
			continue
		}

		// "onClick" -> "click"
		eventName := key[2:]
		if eventName[0] >= 'A' && eventName[0] <= 'Z' {
			eventName = string(eventName[0]+('a'-'A')) + eventName[1:]
		}

		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				handler(args[0])
			}
			return nil
		})
		el.Call("addEventListener", eventName, cb)
		vnode.AddEventCallback(cb)
	}
}

func attachOnClick(el js.Value, n *VNode) {
	if n.OnClick == nil {
		return
	}
	onClick := n.OnClick
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		onClick()
		return nil
	})
	el.Call("addEventListener", "click", cb)
	n.AddEventCallback(cb)
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == "#text" {
		return doc.Call("createTextNode", n.Content)
	}
	if !supportedTags[n.Tag] {
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachEventListeners(el, n, n.Attributes)
	attachOnClick(el, n)

	switch n.Tag {
	case "input", "textarea":
		el.Set("value", n.Content)
		return el
	}

	if len(n.Children) == 0 {
		if n.Content != "" && n.Tag != "select" {
			el.Set("textContent", n.Content)
		}
		return el
	}

	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	// The selected value can only be applied once the options exist.
	if n.Tag == "select" {
		el.Set("value", n.Content)
	}
	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount := querySelector(mountSelector)
	if !mount.Truthy() {
		return
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		RenderToSelector(mountSelector, newVNode)
		return
	}
	patchElement(rootElement, oldVNode, newVNode)
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	if oldVNode.Tag != newVNode.Tag {
		deepReleaseCallbacks(oldVNode)
		newElement := createElement(newVNode)
		if newElement.Truthy() {
			parent := domElement.Get("parentNode")
			if parent.Truthy() {
				parent.Call("replaceChild", newElement, domElement)
			}
		}
		return
	}

	if newVNode.Tag == "#text" {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	releaseCallbacks(oldVNode)
	attachEventListeners(domElement, newVNode, newVNode.Attributes)
	attachOnClick(domElement, newVNode)

	switch newVNode.Tag {
	case "input", "textarea":
		// Leave a focused field alone so typing is not interrupted.
		isFocused := domElement.Call("matches", ":focus")
		if !isFocused.Bool() && domElement.Get("value").String() != newVNode.Content {
			domElement.Set("value", newVNode.Content)
		}
		return
	case "select":
		patchChildren(domElement, oldVNode.Children, newVNode.Children)
		if domElement.Get("value").String() != newVNode.Content {
			domElement.Set("value", newVNode.Content)
		}
		return
	}

	// Setting textContent wipes out all child nodes, so only leaf elements take it.
	if len(newVNode.Children) == 0 {
		if len(oldVNode.Children) > 0 || oldVNode.Content != newVNode.Content {
			deepReleaseChildren(oldVNode)
			domElement.Set("textContent", newVNode.Content)
		}
		return
	}
	if len(oldVNode.Children) == 0 && oldVNode.Content != "" {
		domElement.Set("textContent", "")
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children)
}

func deepReleaseChildren(v *VNode) {
	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if isEventKey(key) {
			continue
		}
		if _, exists := newAttrs[key]; !exists {
			domElement.Call("removeAttribute", key)
			if key == "disabled" {
				domElement.Set("disabled", false)
			}
		}
	}

	for key, value := range newAttrs {
		if isEventKey(key) {
			continue
		}
		if old, ok := oldAttrs[key]; !ok || old != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element position by position.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i])
		}
	}

	for i := oldLen; i < newLen; i++ {
		newChild := createElement(newChildren[i])
		if newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])
		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
