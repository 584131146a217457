package render

import (
	"fmt"
	"io"
	"testing"

	"github.com/weft-dev/weft/pkg/vdom"
)

func buildList(n int) *vdom.VNode {
	items := make([]*vdom.VNode, n)
	for i := range items {
		items[i] = vdom.Li(
			vdom.Class("item"),
			vdom.Data("idx", fmt.Sprintf("%d", i)),
			vdom.Text(fmt.Sprintf("Item %d", i)),
		)
	}
	return vdom.Ul(vdom.Class("list"), items)
}

func BenchmarkRenderToString(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("items-%d", size), func(b *testing.B) {
			renderer := NewRenderer(RendererConfig{})
			node := buildList(size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := renderer.RenderToString(node); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRenderToWriter(b *testing.B) {
	renderer := NewRenderer(RendererConfig{})
	node := buildList(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := renderer.RenderToWriter(io.Discard, node); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderPage(b *testing.B) {
	renderer := NewRenderer(RendererConfig{})
	page := PageData{
		Title:       "Bench",
		Body:        buildList(100),
		SessionID:   "sess_bench",
		StyleSheets: []string{"/main.css"},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := renderer.RenderPage(io.Discard, page); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEscapeHTMLCleanDirty(b *testing.B) {
	b.Run("clean", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			escapeHTML("a perfectly ordinary sentence with no special characters")
		}
	})
	b.Run("dirty", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			escapeHTML(`<div class="x">Tom & Jerry's "show"</div>`)
		}
	})
}
