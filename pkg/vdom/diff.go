package vdom

// Diff compares two tree snapshots and returns the ordered patches that
// transform prev into next. It is a pure function: it never modifies
// either tree, performs no I/O, and never invokes component render
// functions. Both arguments may be nil: nil prev means the whole tree is
// new, nil next means it goes away, and two nils produce no patches.
func Diff(prev, next *VNode) []Patch {
	var patches []Patch
	diffAt(prev, next, 0, &patches)
	return patches
}

// diffAt reconciles one old/new pair addressed by its index within the
// parent's child list and appends the resulting patches.
func diffAt(prev, next *VNode, index int, patches *[]Patch) {
	switch {
	case prev == nil && next == nil:
		return
	case prev == nil:
		*patches = append(*patches, Patch{Op: PatchCreate, Index: index, Node: next})
		return
	case next == nil:
		*patches = append(*patches, Patch{Op: PatchRemove, Index: index, Old: prev})
		return
	}

	if prev == next {
		// Same snapshot reused; nothing can have changed.
		return
	}

	// A changed kind or key means a different logical node: swap the whole
	// subtree, never descend.
	if prev.Kind != next.Kind || prev.Key != next.Key {
		*patches = append(*patches, Patch{Op: PatchReplace, Index: index, Old: prev, Node: next})
		return
	}

	switch prev.Kind {
	case KindText:
		diffText(prev, next, index, patches)
	case KindRaw:
		diffRaw(prev, next, index, patches)
	case KindElement:
		diffElement(prev, next, index, patches)
	case KindFragment:
		diffFragment(prev, next, index, patches)
	case KindComponent:
		diffComponent(prev, next, index, patches)
	}
}

func diffText(prev, next *VNode, index int, patches *[]Patch) {
	if prev.Text != next.Text {
		*patches = append(*patches, Patch{Op: PatchText, Index: index, Text: next.Text})
	}
}

// diffRaw swaps the node on any change; raw markup has no structure to
// recurse into.
func diffRaw(prev, next *VNode, index int, patches *[]Patch) {
	if prev.Text != next.Text {
		*patches = append(*patches, Patch{Op: PatchReplace, Index: index, Old: prev, Node: next})
	}
}

func diffElement(prev, next *VNode, index int, patches *[]Patch) {
	if prev.Tag != next.Tag {
		*patches = append(*patches, Patch{Op: PatchReplace, Index: index, Old: prev, Node: next})
		return
	}

	delta := DiffProps(prev.Props, next.Props)

	var children []Patch
	diffChildren(prev.Children, next.Children, &children)

	if delta.Empty() && len(children) == 0 {
		return
	}
	*patches = append(*patches, Patch{Op: PatchUpdate, Index: index, Delta: delta, Children: children})
}

func diffFragment(prev, next *VNode, index int, patches *[]Patch) {
	var children []Patch
	diffChildren(prev.Children, next.Children, &children)
	if len(children) == 0 {
		return
	}
	*patches = append(*patches, Patch{Op: PatchUpdate, Index: index, Children: children})
}

// diffComponent compares the render-function reference and the props that
// would be passed to it. The function itself is never called here; the
// owner of the commit step re-renders when it sees the patch.
func diffComponent(prev, next *VNode, index int, patches *[]Patch) {
	if !sameFunc(prev.Fn, next.Fn) {
		*patches = append(*patches, Patch{Op: PatchReplace, Index: index, Old: prev, Node: next})
		return
	}
	if shallowEqualProps(prev.Props, next.Props) {
		return
	}
	*patches = append(*patches, Patch{Op: PatchUpdate, Index: index, Delta: DiffProps(prev.Props, next.Props)})
}
