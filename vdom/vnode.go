package vdom

import "github.com/samber/lo"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name, or "#text" for a bare text node
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // Text content; the current value for input, textarea and select
	OnClick    func()         // Optional click event handler

	eventCallbacks []any // js.Func values attached to the rendered element
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				// Remove from attributes so it doesn't get rendered as an HTML attribute
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   compact(children),
		Content:    content,
		OnClick:    onClick,
	}
}

// compact drops nil children so callers can pass conditional nodes inline.
func compact(children []*VNode) []*VNode {
	if len(children) == 0 {
		return nil
	}
	return lo.Compact(children)
}

// AddEventCallback stores a callback handle so it can be released on re-render.
func (v *VNode) AddEventCallback(cb any) {
	v.eventCallbacks = append(v.eventCallbacks, cb)
}

// GetEventCallbacks returns the callback handles attached to this node.
func (v *VNode) GetEventCallbacks() []any {
	return v.eventCallbacks
}

// ClearEventCallbacks forgets all stored callback handles.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// Attr returns the string form of an attribute, or "" when it is absent.
func (v *VNode) Attr(name string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	s, _ := v.Attributes[name].(string)
	return s
}

// HasAttr reports whether the attribute is present and, for booleans, true.
func (v *VNode) HasAttr(name string) bool {
	if v == nil || v.Attributes == nil {
		return false
	}
	val, ok := v.Attributes[name]
	if !ok {
		return false
	}
	if b, isBool := val.(bool); isBool {
		return b
	}
	return true
}

// Element creates a VNode for any supported tag.
func Element(tag string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode(tag, attrs, children, "")
}

// TextElement creates a VNode whose only content is text, e.g. <span>, <td>, <h4>.
func TextElement(tag string, attrs map[string]any, text string) *VNode {
	return NewVNode(tag, attrs, nil, text)
}

// Span creates a <span> VNode with the given text and attributes.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// InputText returns a VNode representing an <input type="text"> element
// holding value.
func InputText(value string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = "text"
	return NewVNode("input", attrs, nil, value)
}

// Select creates a <select> VNode whose selected value is value.
func Select(value string, attrs map[string]any, options ...*VNode) *VNode {
	return NewVNode("select", attrs, options, value)
}

// Option creates an <option> VNode.
func Option(value, label string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["value"] = value
	return NewVNode("option", attrs, nil, label)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Form creates a <form> VNode.
func Form(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("form", attrs, children, "")
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}

// Table creates a <table> VNode.
func Table(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("table", attrs, children, "")
}

// Tr creates a <tr> VNode.
func Tr(attrs map[string]any, cells ...*VNode) *VNode {
	return NewVNode("tr", attrs, cells, "")
}

// Td creates a <td> VNode with text content.
func Td(text string, attrs map[string]any) *VNode {
	return NewVNode("td", attrs, nil, text)
}

// Th creates a <th> VNode with text content.
func Th(text string, attrs map[string]any) *VNode {
	return NewVNode("th", attrs, nil, text)
}
