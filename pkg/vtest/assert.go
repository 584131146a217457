package vtest

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/weft-dev/weft/pkg/render"
	"github.com/weft-dev/weft/pkg/vdom"
)

// componentsByIdentity compares component references the way the differ
// does: same function, same component.
var componentsByIdentity = cmp.Comparer(func(a, b vdom.ComponentFunc) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
})

// TreeDiff returns a human-readable structural diff between two trees, or
// the empty string when they match. Prop values must be comparable by
// go-cmp; handler funcs inside Props compare as unequal unless nil, so use
// this on primitive-only trees.
func TreeDiff(want, got *vdom.VNode) string {
	// Empty and nil prop maps and child lists are the same tree.
	return cmp.Diff(want, got, componentsByIdentity, cmpopts.EquateEmpty())
}

// RequireTreesEqual fails the test with a structural diff when the two
// trees differ.
func RequireTreesEqual(t *testing.T, want, got *vdom.VNode) {
	t.Helper()
	if d := TreeDiff(want, got); d != "" {
		t.Fatalf("trees differ (-want +got):\n%s", d)
	}
}

// RequireListsEqual fails the test with a structural diff when two child
// lists differ.
func RequireListsEqual(t *testing.T, want, got []*vdom.VNode) {
	t.Helper()
	if d := cmp.Diff(want, got, componentsByIdentity, cmpopts.EquateEmpty()); d != "" {
		t.Fatalf("child lists differ (-want +got):\n%s", d)
	}
}

// Keys returns the keys of a child list in order, for concise assertions
// on keyed reorder results.
func Keys(nodes []*vdom.VNode) []vdom.Key {
	out := make([]vdom.Key, len(nodes))
	for i, n := range nodes {
		out[i] = n.Key
	}
	return out
}

// RenderToString renders a tree and returns the HTML string; it returns
// "" on render errors, which is fine for substring assertions.
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains the substring.
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain the
// substring.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains the tag.
func ExpectElement(t *testing.T, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains the attribute
// value.
func ExpectAttribute(t *testing.T, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// truncate shortens a string to max length with an ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
