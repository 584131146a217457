package vtest

import (
	"fmt"
	"math/rand"

	"github.com/weft-dev/weft/pkg/vdom"
)

// Gen produces random trees and keyed child lists from a seed. The same
// seed yields the same sequence, so failing property loops reproduce.
// Generated trees carry only primitive prop values (strings, ints, bools)
// and no component or handler funcs, so go-cmp can compare them directly.
type Gen struct {
	rng     *rand.Rand
	nextKey int
}

// NewGen creates a generator with the given seed.
func NewGen(seed int64) *Gen {
	return &Gen{rng: rand.New(rand.NewSource(seed))}
}

var genTags = []string{"div", "span", "p", "ul", "li", "section", "article"}

var genWords = []string{
	"alpha", "beta", "gamma", "delta", "epsilon",
	"zeta", "eta", "theta", "iota", "kappa",
}

func (g *Gen) word() string {
	return genWords[g.rng.Intn(len(genWords))]
}

// freshKey returns a key no prior call has returned.
func (g *Gen) freshKey() vdom.Key {
	g.nextKey++
	return vdom.Key(fmt.Sprintf("k%d", g.nextKey))
}

func (g *Gen) props() vdom.Props {
	n := g.rng.Intn(4)
	if n == 0 {
		return nil
	}
	p := make(vdom.Props, n)
	for i := 0; i < n; i++ {
		switch g.rng.Intn(3) {
		case 0:
			p["class"] = g.word()
		case 1:
			p["id"] = g.word()
		case 2:
			p["data-n"] = g.rng.Intn(100)
		}
	}
	return p
}

// Tree generates a random tree of at most the given depth.
func (g *Gen) Tree(depth int) *vdom.VNode {
	if depth <= 0 || g.rng.Intn(4) == 0 {
		return vdom.Text(g.word())
	}

	var kids []*vdom.VNode
	for i, n := 0, g.rng.Intn(4); i < n; i++ {
		kids = append(kids, g.Tree(depth-1))
	}

	if g.rng.Intn(8) == 0 {
		return &vdom.VNode{Kind: vdom.KindFragment, Children: kids}
	}
	return &vdom.VNode{
		Kind:     vdom.KindElement,
		Tag:      genTags[g.rng.Intn(len(genTags))],
		Props:    g.props(),
		Children: kids,
	}
}

// KeyedList generates n keyed list items with unique keys.
func (g *Gen) KeyedList(n int) []*vdom.VNode {
	out := make([]*vdom.VNode, n)
	for i := range out {
		out[i] = g.keyedItem(g.freshKey())
	}
	return out
}

func (g *Gen) keyedItem(key vdom.Key) *vdom.VNode {
	return &vdom.VNode{
		Kind:     vdom.KindElement,
		Tag:      "li",
		Key:      key,
		Props:    g.props(),
		Children: []*vdom.VNode{vdom.Text(g.word())},
	}
}

// MutateList derives a new version of a keyed list: it drops, reorders,
// rebuilds, and inserts entries at random. Surviving entries keep their
// keys; rebuilt entries get fresh content under the same key, so content
// diffs have something to find. Key uniqueness is preserved.
func (g *Gen) MutateList(list []*vdom.VNode) []*vdom.VNode {
	out := make([]*vdom.VNode, 0, len(list)+2)
	for _, n := range list {
		switch g.rng.Intn(10) {
		case 0, 1:
			// dropped
		case 2, 3:
			out = append(out, g.keyedItem(n.Key))
		default:
			out = append(out, n)
		}
	}

	if g.rng.Intn(2) == 0 {
		g.rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}

	for i, n := 0, g.rng.Intn(3); i < n; i++ {
		at := g.rng.Intn(len(out) + 1)
		item := g.keyedItem(g.freshKey())
		out = append(out[:at:at], append([]*vdom.VNode{item}, out[at:]...)...)
	}
	return out
}

// Mutate derives a new version of a tree: some subtrees are kept by
// reference, some are rebuilt, some are replaced outright.
func (g *Gen) Mutate(tree *vdom.VNode) *vdom.VNode {
	if tree == nil {
		return g.Tree(3)
	}
	switch g.rng.Intn(10) {
	case 0:
		// Whole subtree replaced.
		return g.Tree(2)
	case 1, 2:
		// Kept by reference; the differ should short-circuit.
		return tree
	}

	out := *tree
	if tree.Kind == vdom.KindText {
		if g.rng.Intn(2) == 0 {
			out.Text = g.word()
		}
		return &out
	}

	if g.rng.Intn(3) == 0 {
		out.Props = g.props()
	}

	var kids []*vdom.VNode
	for _, c := range tree.Children {
		if g.rng.Intn(10) == 0 {
			continue // dropped
		}
		kids = append(kids, g.Mutate(c))
	}
	if g.rng.Intn(4) == 0 {
		kids = append(kids, g.Tree(2))
	}
	out.Children = kids
	return &out
}
