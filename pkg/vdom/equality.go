package vdom

import "reflect"

// propEqual compares two attribute values under the engine's shallow rules:
// primitives compare by value, everything else by identity. Slices, maps,
// and functions are equal only when they are the same reference; nested
// structure is deliberately not walked, so a rebuilt slice or map always
// registers as changed.
func propEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	// Fast paths for the common primitive types.
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	}

	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func, reflect.Chan,
		reflect.Pointer, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	}
	if !ra.Comparable() {
		return false
	}
	return a == b
}

// shallowEqualProps reports whether two prop maps carry the same
// non-handler keys with propEqual values. The differ uses it to decide
// whether a component Update is worth emitting at all: it is equivalent to
// DiffProps(a, b).Empty() without building the delta.
func shallowEqualProps(a, b Props) bool {
	if attrCount(a) != attrCount(b) {
		return false
	}
	for k, av := range a {
		if IsHandlerProp(k) {
			continue
		}
		bv, ok := b[k]
		if !ok || !propEqual(av, bv) {
			return false
		}
	}
	return true
}

// attrCount counts the non-handler keys of a prop map.
func attrCount(p Props) int {
	n := 0
	for k := range p {
		if !IsHandlerProp(k) {
			n++
		}
	}
	return n
}

// sameFunc reports whether two component references share a code pointer.
// Closures built from the same literal compare equal even when their
// captured variables differ, so component identity must not ride on
// captures.
func sameFunc(a, b ComponentFunc) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// Equal reports whether two trees are structurally identical: same kinds,
// tags, keys, text, shallow-equal props, and pairwise Equal children.
// Component nodes compare by function identity and props, never by rendered
// output.
func Equal(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Key != b.Key || a.Text != b.Text {
		return false
	}
	if !sameFunc(a.Fn, b.Fn) {
		return false
	}
	if !shallowEqualProps(a.Props, b.Props) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
