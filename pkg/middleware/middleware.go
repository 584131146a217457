package middleware

import (
	"context"

	"github.com/weft-dev/weft/pkg/vdom"
)

// ReconcileFunc computes the patches that transform prev into next.
// The live server wraps vdom.Diff in this shape so instrumentation can
// observe every reconciliation pass without the differ knowing about it.
type ReconcileFunc func(ctx context.Context, prev, next *vdom.VNode) []vdom.Patch

// Middleware wraps a ReconcileFunc with cross-cutting behavior.
type Middleware func(next ReconcileFunc) ReconcileFunc

// Chain wraps base with the given middlewares. The first middleware is
// outermost: Chain(base, a, b) runs a, then b, then base.
func Chain(base ReconcileFunc, mws ...Middleware) ReconcileFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		base = mws[i](base)
	}
	return base
}

// Reconciler adapts vdom.Diff to the ReconcileFunc shape. The context is
// accepted for interface symmetry only; the differ itself never blocks.
func Reconciler() ReconcileFunc {
	return func(_ context.Context, prev, next *vdom.VNode) []vdom.Patch {
		return vdom.Diff(prev, next)
	}
}

// CountPatches returns the total number of patch operations in the list,
// including patches nested inside Update patches.
func CountPatches(patches []vdom.Patch) int {
	total := 0
	for i := range patches {
		total++
		total += CountPatches(patches[i].Children)
	}
	return total
}

// countByOp tallies patch operations by op name, nested patches included.
func countByOp(patches []vdom.Patch, counts map[string]int) {
	for i := range patches {
		counts[patches[i].Op.String()]++
		countByOp(patches[i].Children, counts)
	}
}
