// Package render converts VNode trees into HTML strings or streams.
//
// The renderer produces the markup a client sees before any patches
// arrive, handling all aspects of valid, secure HTML output including:
//
//   - HTML5 compliant element rendering
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - Component expansion
//
// # Basic Usage
//
// To render a VNode tree to a string:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// To stream HTML to a writer:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	err := renderer.RenderToWriter(w, node)
//
// # Components
//
// Component nodes are expanded here by calling their render function with
// the node's props. The differ treats component nodes as opaque references
// and never invokes them, so rendering is the only place a component
// function runs.
//
// # Streaming
//
// For large pages, use StreamingRenderer to flush content incrementally:
//
//	sr := render.NewStreamingRenderer(w, config)
//	err := sr.RenderPage(page)
//
// # Security
//
// All text content is escaped by default to prevent XSS attacks.
// Raw HTML can be inserted using KindRaw nodes, but should only be
// used with trusted content.
package render
