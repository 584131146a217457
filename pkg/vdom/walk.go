package vdom

// Walk visits every node of the tree in preorder. Returning false from fn
// stops descent into that node's children; siblings are still visited.
func Walk(n *VNode, fn func(*VNode) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Count returns the number of nodes in the tree, the root included.
func Count(n *VNode) int {
	total := 0
	Walk(n, func(*VNode) bool {
		total++
		return true
	})
	return total
}

// Clone returns a deep copy of the tree. Prop maps are copied one level
// deep; the values themselves are shared, which matches the engine's
// shallow equality semantics.
func Clone(n *VNode) *VNode {
	if n == nil {
		return nil
	}
	out := *n
	if n.Props != nil {
		out.Props = make(Props, len(n.Props))
		for k, v := range n.Props {
			out.Props[k] = v
		}
	}
	if n.Children != nil {
		out.Children = make([]*VNode, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = Clone(c)
		}
	}
	return &out
}
