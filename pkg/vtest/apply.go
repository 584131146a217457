package vtest

import (
	"sort"

	"github.com/weft-dev/weft/pkg/vdom"
)

// Apply returns the tree that results from applying patches, in list
// order, to prev. It is the reference consumer of the patch contract:
// the commit layer in a real host does to its render target what Apply
// does to a cloned tree. prev is never modified.
func Apply(prev *vdom.VNode, patches []vdom.Patch) *vdom.VNode {
	root := vdom.Clone(prev)
	for i := range patches {
		root = applyRoot(root, &patches[i])
	}
	return root
}

// applyRoot applies one root-level patch. Reorder never targets a root:
// a root is a single node, not a child list.
func applyRoot(node *vdom.VNode, p *vdom.Patch) *vdom.VNode {
	switch p.Op {
	case vdom.PatchCreate, vdom.PatchReplace:
		return vdom.Clone(p.Node)
	case vdom.PatchRemove:
		return nil
	case vdom.PatchText:
		out := *node
		out.Text = p.Text
		return &out
	case vdom.PatchUpdate:
		return applyUpdate(node, p)
	}
	return node
}

// applyUpdate applies an attribute delta and nested child patches to one
// node.
func applyUpdate(node *vdom.VNode, p *vdom.Patch) *vdom.VNode {
	out := *node
	if !p.Delta.Empty() {
		props := make(vdom.Props, len(node.Props)+len(p.Delta.Set))
		for k, v := range node.Props {
			props[k] = v
		}
		for _, k := range p.Delta.Remove {
			delete(props, k)
		}
		for k, v := range p.Delta.Set {
			props[k] = v
		}
		out.Props = props
	}
	out.Children = applyChildren(node.Children, p.Children)
	return &out
}

// applyChildren applies a child-level patch list in order. Indices are
// interpreted against the list as it stands when each patch applies,
// which is exactly the differ's emission contract: Removes descending,
// one Reorder, Creates ascending, then content patches by final position.
func applyChildren(children []*vdom.VNode, patches []vdom.Patch) []*vdom.VNode {
	out := append([]*vdom.VNode(nil), children...)
	for i := range patches {
		p := &patches[i]
		switch p.Op {
		case vdom.PatchRemove:
			out = append(out[:p.Index], out[p.Index+1:]...)
		case vdom.PatchCreate:
			n := vdom.Clone(p.Node)
			if p.Index >= len(out) {
				out = append(out, n)
			} else {
				out = append(out[:p.Index:p.Index], append([]*vdom.VNode{n}, out[p.Index:]...)...)
			}
		case vdom.PatchReplace:
			out[p.Index] = vdom.Clone(p.Node)
		case vdom.PatchText:
			c := *out[p.Index]
			c.Text = p.Text
			out[p.Index] = &c
		case vdom.PatchUpdate:
			out[p.Index] = applyUpdate(out[p.Index], p)
		case vdom.PatchReorder:
			out = applyReorder(out, p.Moves)
		}
	}
	return out
}

// applyReorder realizes a move set atomically: extract every moved child
// by key, then reinsert each at its target position in ascending order.
// Unmoved children keep their relative order.
func applyReorder(children []*vdom.VNode, moves []vdom.Move) []*vdom.VNode {
	moving := make(map[vdom.Key]*vdom.VNode, len(moves))
	for _, m := range moves {
		moving[m.Key] = nil
	}

	kept := make([]*vdom.VNode, 0, len(children))
	for _, c := range children {
		if n, ok := moving[c.Key]; ok && n == nil {
			moving[c.Key] = c
			continue
		}
		kept = append(kept, c)
	}

	ordered := append([]vdom.Move(nil), moves...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].To < ordered[j].To })

	for _, m := range ordered {
		n := moving[m.Key]
		if n == nil {
			continue
		}
		if m.To >= len(kept) {
			kept = append(kept, n)
		} else {
			kept = append(kept[:m.To:m.To], append([]*vdom.VNode{n}, kept[m.To:]...)...)
		}
	}
	return kept
}
