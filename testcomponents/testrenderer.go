package testcomponents

import (
	"sync"

	"github.com/vcrobe/userform/runtime"
	"github.com/vcrobe/userform/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Drive the OnInit / OnDestroy lifecycle
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree and the keyed child instances
type TestRenderer struct {
	mu          sync.Mutex
	currentVDOM *vdom.VNode
	component   runtime.Component
	renders     int

	children   map[string]runtime.Component
	activeKeys map[string]bool
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
		children:  make(map[string]runtime.Component),
	}
	comp.SetRenderer(r)
	return r
}

// Mount runs OnInit (when implemented) and performs the initial render,
// the way the WASM renderer does for a root component.
func (r *TestRenderer) Mount() *vdom.VNode {
	if initializer, ok := r.component.(runtime.Initializer); ok {
		initializer.OnInit()
	}
	return r.RenderRoot()
}

// Unmount runs OnDestroy on the component and on every mounted child.
func (r *TestRenderer) Unmount() {
	if cleaner, ok := r.component.(runtime.Cleaner); ok {
		cleaner.OnDestroy()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.activeKeys = nil
	r.destroyInactive()
}

// RenderRoot performs a render of the component and stores the result.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()

	if receiver, ok := r.component.(runtime.ParameterReceiver); ok {
		receiver.OnPropertiesSet()
	}
	r.activeKeys = make(map[string]bool)
	r.currentVDOM = r.component.Render(r)
	r.renders++
	r.destroyInactive()
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.RenderRoot()
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentVDOM
}

// RenderCount returns how many renders have happened so far.
func (r *TestRenderer) RenderCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders
}

// RenderChild renders a child, reusing the instance stored under key the way
// the WASM renderer does. It runs inside Render, with r.mu held.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	r.activeKeys[key] = true

	instance, exists := r.children[key]
	if !exists {
		instance = child
		r.children[key] = instance
		instance.SetRenderer(r)
		if initializer, ok := instance.(runtime.Initializer); ok {
			initializer.OnInit()
		}
	} else if updater, ok := instance.(runtime.PropUpdater); ok {
		updater.ApplyProps(child)
	}

	if receiver, ok := instance.(runtime.ParameterReceiver); ok {
		receiver.OnPropertiesSet()
	}
	return instance.Render(r)
}

// Child returns the instance mounted under key, or nil.
func (r *TestRenderer) Child(key string) runtime.Component {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.children[key]
}

func (r *TestRenderer) destroyInactive() {
	for key, instance := range r.children {
		if r.activeKeys[key] {
			continue
		}
		if cleaner, ok := instance.(runtime.Cleaner); ok {
			cleaner.OnDestroy()
		}
		delete(r.children, key)
	}
}
