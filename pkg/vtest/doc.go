// Package vtest provides testing helpers for the reconciliation engine.
//
// The centerpiece is Apply, a reference implementation of the patch
// consumption contract: it applies a diff, in list order, to a copy of the
// old tree and returns the result. Tests pair it with Diff to assert the
// round-trip property — Apply(old, Diff(old, new)) must equal new — without
// a real render target.
//
//	patches := vdom.Diff(old, new)
//	got := vtest.Apply(old, patches)
//	vtest.RequireTreesEqual(t, new, got)
//
// Gen produces random trees and keyed child lists from a seed, for
// property-style loops:
//
//	g := vtest.NewGen(42)
//	old := g.Tree(3)
//	new := g.Mutate(old)
//
// Render assertions (ExpectContains and friends) check a tree's HTML for
// component tests that care about output rather than structure.
package vtest
