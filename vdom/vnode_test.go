package vdom

import "testing"

func TestNewVNode_ExtractsOnClick(t *testing.T) {
	clicked := false
	n := Button("Go", map[string]any{
		"class":   "primary",
		"onClick": func() { clicked = true },
	})

	if _, ok := n.Attributes["onClick"]; ok {
		t.Error("onClick must not stay in the attributes")
	}
	if n.OnClick == nil {
		t.Fatal("OnClick handler was not extracted")
	}
	n.OnClick()
	if !clicked {
		t.Error("OnClick did not call the handler")
	}
	if n.Attr("class") != "primary" {
		t.Errorf("Expected class 'primary', got %q", n.Attr("class"))
	}
}

func TestNewVNode_DropsNilChildren(t *testing.T) {
	n := Div(nil, Span("a", nil), nil, Span("b", nil))
	if len(n.Children) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(n.Children))
	}
	if n.Children[0].Content != "a" || n.Children[1].Content != "b" {
		t.Error("Children order not preserved")
	}

	if empty := Div(nil, nil); empty.Children != nil {
		t.Errorf("Expected no children, got %d", len(empty.Children))
	}
}

func TestHasAttr_BooleanAttributes(t *testing.T) {
	n := Button("x", map[string]any{"disabled": false, "hidden": true, "title": "t"})
	if n.HasAttr("disabled") {
		t.Error("false boolean attribute must read as absent")
	}
	if !n.HasAttr("hidden") || !n.HasAttr("title") {
		t.Error("present attributes must be reported")
	}
	if n.HasAttr("missing") {
		t.Error("missing attribute reported as present")
	}
}

func TestFormBuilders(t *testing.T) {
	in := InputText("Alice", nil)
	if in.Tag != "input" || in.Attr("type") != "text" || in.Content != "Alice" {
		t.Errorf("Unexpected input node: %+v", in)
	}

	sel := Select("LA", nil, Option("NY", "New York", nil), Option("LA", "Los Angeles", nil))
	if sel.Content != "LA" || len(sel.Children) != 2 {
		t.Fatalf("Unexpected select node: %+v", sel)
	}
	if sel.Children[1].Attr("value") != "LA" || sel.Children[1].Content != "Los Angeles" {
		t.Errorf("Unexpected option: %+v", sel.Children[1])
	}
}

func TestEventCallbacks(t *testing.T) {
	n := Div(nil)
	n.AddEventCallback("cb1")
	n.AddEventCallback("cb2")
	if len(n.GetEventCallbacks()) != 2 {
		t.Fatalf("Expected 2 callbacks, got %d", len(n.GetEventCallbacks()))
	}
	n.ClearEventCallbacks()
	if len(n.GetEventCallbacks()) != 0 {
		t.Error("Callbacks not cleared")
	}
}
