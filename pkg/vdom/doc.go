// Package vdom implements Weft's virtual DOM: an immutable in-memory tree
// and a reconciler that turns two snapshots of it into a minimal ordered
// patch list.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes and event
// handlers. Attr and EventHandler are used to build Props. Key is the
// explicit reconciliation identity for list children.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// Keys are passed as a distinguished argument, not as an attribute:
//
//	Li(vdom.Key(todo.ID), Text(todo.Title))
//
// # Diffing
//
// Diff compares two trees and returns a slice of Patch operations: Create,
// Remove, Replace, Text, Update (attribute delta plus nested child
// patches), and Reorder (a minimal move set for keyed lists, computed via
// longest increasing subsequence). When every child on both sides carries a
// key, children are matched by identity; common whole-list transformations
// (append, prepend, trims, reverse, no change) are detected up front and
// short-circuit the general algorithm.
//
// Diff is pure: it never mutates its inputs, never renders a component, and
// cannot fail. Attribute comparison is shallow; rebuild a prop value's
// slice or map and it counts as changed.
//
// # Applying Patches
//
// Patches are consumed in list order; each assumes the positions
// established by the ones before it. The engine does not apply patches to
// any real UI itself; pkg/wire encodes them for transport and pkg/vtest
// applies them to in-memory trees for verification.
package vdom
