package middleware

import (
	"context"
	"testing"

	"github.com/weft-dev/weft/pkg/vdom"
)

func TestChainOrder(t *testing.T) {
	var order []string

	tag := func(name string) Middleware {
		return func(next ReconcileFunc) ReconcileFunc {
			return func(ctx context.Context, prev, nextTree *vdom.VNode) []vdom.Patch {
				order = append(order, name+"-before")
				patches := next(ctx, prev, nextTree)
				order = append(order, name+"-after")
				return patches
			}
		}
	}

	base := func(context.Context, *vdom.VNode, *vdom.VNode) []vdom.Patch {
		order = append(order, "base")
		return nil
	}

	Chain(base, tag("outer"), tag("inner"))(context.Background(), nil, nil)

	want := []string{"outer-before", "inner-before", "base", "inner-after", "outer-after"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d entries, got %d: %v", len(want), len(order), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, order)
		}
	}
}

func TestChainNoMiddleware(t *testing.T) {
	called := false
	base := func(context.Context, *vdom.VNode, *vdom.VNode) []vdom.Patch {
		called = true
		return nil
	}
	Chain(base)(context.Background(), nil, nil)
	if !called {
		t.Fatal("Expected base reconciler to be called")
	}
}

func TestReconcilerMatchesDiff(t *testing.T) {
	prev := vdom.Div(vdom.Text("a"))
	next := vdom.Div(vdom.Text("b"))

	got := Reconciler()(context.Background(), prev, next)
	want := vdom.Diff(prev, next)

	if len(got) != len(want) {
		t.Fatalf("Expected %d patches, got %d", len(want), len(got))
	}
	if got[0].Op != want[0].Op {
		t.Fatalf("Expected op %v, got %v", want[0].Op, got[0].Op)
	}
}

func TestCountPatchesNested(t *testing.T) {
	patches := []vdom.Patch{
		{Op: vdom.PatchUpdate, Children: []vdom.Patch{
			{Op: vdom.PatchText},
			{Op: vdom.PatchUpdate, Children: []vdom.Patch{
				{Op: vdom.PatchCreate},
			}},
		}},
		{Op: vdom.PatchRemove},
	}

	if got := CountPatches(patches); got != 5 {
		t.Fatalf("Expected 5 patches counted, got %d", got)
	}

	counts := make(map[string]int)
	countByOp(patches, counts)
	if counts["Update"] != 2 || counts["Text"] != 1 || counts["Create"] != 1 || counts["Remove"] != 1 {
		t.Fatalf("Expected op counts Update=2 Text=1 Create=1 Remove=1, got %v", counts)
	}
}

func TestCountPatchesEmpty(t *testing.T) {
	if got := CountPatches(nil); got != 0 {
		t.Fatalf("Expected 0, got %d", got)
	}
}
