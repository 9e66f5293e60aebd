//go:build js || wasm
// +build js wasm

package runtime

import (
	"sync"

	"go.uber.org/zap"

	"github.com/vcrobe/userform/vdom"
)

const rootKey = "__root__"

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree and handles rendering lifecycle.
type RendererImpl struct {
	mu sync.Mutex

	instances        map[string]Component
	initialized      map[string]bool // Track which components have been initialized
	activeKeys       map[string]bool // Track which components are active in the current render
	currentComponent Component
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
	log              *zap.SugaredLogger
}

// NewRenderer creates a new runtime renderer mounting under mountID.
func NewRenderer(mountID string, log *zap.SugaredLogger) *RendererImpl {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &RendererImpl{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		mountID:     mountID,
		log:         log,
	}
}

// SetCurrentComponent sets the root component to be rendered.
// Replacing the root destroys the previous one.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentComponent != nil && r.currentComponent != comp {
		if cleaner, ok := r.currentComponent.(Cleaner); ok {
			r.runHook("OnDestroy", rootKey, cleaner.OnDestroy)
		}
		delete(r.initialized, rootKey)
	}
	r.currentComponent = comp
}

// RenderRoot starts the rendering process for the entire application.
func (r *RendererImpl) RenderRoot() {
	r.mu.Lock()
	comp := r.currentComponent
	if comp == nil {
		r.mu.Unlock()
		return
	}
	r.activeKeys = make(map[string]bool)
	comp.SetRenderer(r)
	firstRender := !r.initialized[rootKey]
	r.initialized[rootKey] = true
	r.mu.Unlock()

	// OnInit may call StateHasChanged, so hooks run without the lock held.
	if firstRender {
		if initializer, ok := comp.(Initializer); ok {
			r.runHook("OnInit", rootKey, initializer.OnInit)
		}
	}
	if paramReceiver, ok := comp.(ParameterReceiver); ok {
		r.runHook("OnPropertiesSet", rootKey, paramReceiver.OnPropertiesSet)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	newVDOM := comp.Render(r)
	if r.prevVDOM == nil {
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}
	r.prevVDOM = newVDOM

	r.cleanupUnmountedComponents()
}

// RenderChild renders a child component, reusing the instance stored under key.
// It must be called from inside Render, while the render lock is held.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	if !exists {
		instance = childWithProps
		r.instances[key] = instance
	} else if updater, ok := instance.(PropUpdater); ok {
		updater.ApplyProps(childWithProps)
	}

	instance.SetRenderer(r)

	if !r.initialized[key] {
		if initializer, ok := instance.(Initializer); ok {
			r.runHook("OnInit", key, initializer.OnInit)
		}
		r.initialized[key] = true
	}

	if paramReceiver, ok := instance.(ParameterReceiver); ok {
		r.runHook("OnPropertiesSet", key, paramReceiver.OnPropertiesSet)
	}

	return instance.Render(r)
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if r.activeKeys[key] {
			continue
		}
		if cleaner, ok := instance.(Cleaner); ok {
			r.runHook("OnDestroy", key, cleaner.OnDestroy)
		}
		delete(r.instances, key)
		delete(r.initialized, key)
	}
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}
