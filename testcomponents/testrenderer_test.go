//go:build !wasm

package testcomponents

import (
	"testing"

	"github.com/vcrobe/userform/runtime"
	"github.com/vcrobe/userform/vdom"
)

type counterChild struct {
	runtime.ComponentBase
	Label string

	inits, propsSet, destroys int
}

func (c *counterChild) OnInit()          { c.inits++ }
func (c *counterChild) OnPropertiesSet() { c.propsSet++ }
func (c *counterChild) OnDestroy()       { c.destroys++ }

func (c *counterChild) ApplyProps(source runtime.Component) {
	if src, ok := source.(*counterChild); ok {
		c.Label = src.Label
	}
}

func (c *counterChild) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Span(c.Label, nil)
}

type parent struct {
	runtime.ComponentBase
	label     string
	showChild bool
}

func (p *parent) Render(r runtime.Renderer) *vdom.VNode {
	var child *vdom.VNode
	if p.showChild {
		child = r.RenderChild("child", &counterChild{Label: p.label})
	}
	return vdom.Div(nil, child)
}

func TestRenderChild_ReusesInstanceAndAppliesProps(t *testing.T) {
	p := &parent{label: "one", showChild: true}
	renderer := NewTestRenderer(p)
	renderer.Mount()

	first, ok := renderer.Child("child").(*counterChild)
	if !ok {
		t.Fatal("Expected a mounted child")
	}

	p.label = "two"
	p.StateHasChanged()

	if renderer.Child("child") != first {
		t.Fatal("Expected the child instance to be reused")
	}
	if first.inits != 1 {
		t.Errorf("OnInit ran %d times, want 1", first.inits)
	}
	if first.propsSet != 2 {
		t.Errorf("OnPropertiesSet ran %d times, want 2", first.propsSet)
	}
	if got := renderer.GetCurrentVDOM().Children[0].Content; got != "two" {
		t.Errorf("Expected rendered label 'two', got %q", got)
	}
}

func TestRenderChild_DestroysDroppedChildren(t *testing.T) {
	p := &parent{label: "one", showChild: true}
	renderer := NewTestRenderer(p)
	renderer.Mount()
	child := renderer.Child("child").(*counterChild)

	p.showChild = false
	p.StateHasChanged()

	if child.destroys != 1 {
		t.Errorf("OnDestroy ran %d times, want 1", child.destroys)
	}
	if renderer.Child("child") != nil {
		t.Errorf("Expected the dropped child to be forgotten")
	}
}

func TestUnmount_DestroysChildren(t *testing.T) {
	p := &parent{label: "one", showChild: true}
	renderer := NewTestRenderer(p)
	renderer.Mount()
	child := renderer.Child("child").(*counterChild)

	renderer.Unmount()

	if child.destroys != 1 {
		t.Errorf("OnDestroy ran %d times, want 1", child.destroys)
	}
}
