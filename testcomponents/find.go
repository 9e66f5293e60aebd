package testcomponents

import "github.com/vcrobe/userform/vdom"

// Find returns the first node, depth first, for which match reports true.
func Find(root *vdom.VNode, match func(*vdom.VNode) bool) *vdom.VNode {
	if root == nil {
		return nil
	}
	if match(root) {
		return root
	}
	for _, child := range root.Children {
		if found := Find(child, match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node, depth first, for which match reports true.
func FindAll(root *vdom.VNode, match func(*vdom.VNode) bool) []*vdom.VNode {
	var out []*vdom.VNode
	var walk func(*vdom.VNode)
	walk = func(n *vdom.VNode) {
		if n == nil {
			return
		}
		if match(n) {
			out = append(out, n)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return out
}

// ByClass matches nodes whose class attribute equals class.
func ByClass(class string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool { return n.Attr("class") == class }
}

// ByID matches nodes whose id attribute equals id.
func ByID(id string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool { return n.Attr("id") == id }
}

// ByTag matches nodes with the given tag.
func ByTag(tag string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool { return n.Tag == tag }
}
