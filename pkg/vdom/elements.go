package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// newElement creates an element VNode with the given tag and arguments.
// Arguments can be: nil, Key, Attr, []Attr, *VNode, []*VNode,
// ComponentFunc, string, EventHandler. A Key argument sets the node's
// reconciliation key; it never lands in Props.
func newElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue

		case Key:
			node.Key = v

		case Attr:
			if v.Key != "" {
				node.Props[v.Key] = v.Value
			}

		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					node.Props[a.Key] = a.Value
				}
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case ComponentFunc:
			node.Children = append(node.Children, Component(v, nil))

		case string:
			// Shorthand for a text child
			node.Children = append(node.Children, Text(v))

		case EventHandler:
			node.Props[v.Event] = v.Handler
		}
	}

	return node
}

// Document structure elements

func Html(args ...any) *VNode  { return newElement("html", args) }
func Head(args ...any) *VNode  { return newElement("head", args) }
func Body(args ...any) *VNode  { return newElement("body", args) }
func Title(args ...any) *VNode { return newElement("title", args) }
func Meta(args ...any) *VNode  { return newElement("meta", args) }
func Link(args ...any) *VNode  { return newElement("link", args) }

// Content sectioning elements

func Header(args ...any) *VNode  { return newElement("header", args) }
func Footer(args ...any) *VNode  { return newElement("footer", args) }
func Main(args ...any) *VNode    { return newElement("main", args) }
func Nav(args ...any) *VNode     { return newElement("nav", args) }
func Section(args ...any) *VNode { return newElement("section", args) }
func Article(args ...any) *VNode { return newElement("article", args) }
func Aside(args ...any) *VNode   { return newElement("aside", args) }
func H1(args ...any) *VNode      { return newElement("h1", args) }
func H2(args ...any) *VNode      { return newElement("h2", args) }
func H3(args ...any) *VNode      { return newElement("h3", args) }
func H4(args ...any) *VNode      { return newElement("h4", args) }
func H5(args ...any) *VNode      { return newElement("h5", args) }
func H6(args ...any) *VNode      { return newElement("h6", args) }

// Text content elements

func Div(args ...any) *VNode        { return newElement("div", args) }
func P(args ...any) *VNode          { return newElement("p", args) }
func Span(args ...any) *VNode       { return newElement("span", args) }
func Pre(args ...any) *VNode        { return newElement("pre", args) }
func Blockquote(args ...any) *VNode { return newElement("blockquote", args) }
func Ul(args ...any) *VNode         { return newElement("ul", args) }
func Ol(args ...any) *VNode         { return newElement("ol", args) }
func Li(args ...any) *VNode         { return newElement("li", args) }
func Dl(args ...any) *VNode         { return newElement("dl", args) }
func Dt(args ...any) *VNode         { return newElement("dt", args) }
func Dd(args ...any) *VNode         { return newElement("dd", args) }
func Hr(args ...any) *VNode         { return newElement("hr", args) }
func Figure(args ...any) *VNode     { return newElement("figure", args) }
func Figcaption(args ...any) *VNode { return newElement("figcaption", args) }

// Inline text semantics

func A(args ...any) *VNode      { return newElement("a", args) }
func Strong(args ...any) *VNode { return newElement("strong", args) }
func Em(args ...any) *VNode     { return newElement("em", args) }
func B(args ...any) *VNode      { return newElement("b", args) }
func I(args ...any) *VNode      { return newElement("i", args) }
func U(args ...any) *VNode      { return newElement("u", args) }
func S(args ...any) *VNode      { return newElement("s", args) }
func Small(args ...any) *VNode  { return newElement("small", args) }
func Mark(args ...any) *VNode   { return newElement("mark", args) }
func Sub(args ...any) *VNode    { return newElement("sub", args) }
func Sup(args ...any) *VNode    { return newElement("sup", args) }
func Code(args ...any) *VNode   { return newElement("code", args) }
func Kbd(args ...any) *VNode    { return newElement("kbd", args) }
func Samp(args ...any) *VNode   { return newElement("samp", args) }
func Var(args ...any) *VNode    { return newElement("var", args) }
func Abbr(args ...any) *VNode   { return newElement("abbr", args) }
func Time_(args ...any) *VNode  { return newElement("time", args) }
func Cite(args ...any) *VNode   { return newElement("cite", args) }
func Q(args ...any) *VNode      { return newElement("q", args) }
func Dfn(args ...any) *VNode    { return newElement("dfn", args) }
func Br(args ...any) *VNode     { return newElement("br", args) }
func Wbr(args ...any) *VNode    { return newElement("wbr", args) }

// Form elements

func Form(args ...any) *VNode     { return newElement("form", args) }
func Input(args ...any) *VNode    { return newElement("input", args) }
func Textarea(args ...any) *VNode { return newElement("textarea", args) }
func Select(args ...any) *VNode   { return newElement("select", args) }
func Option(args ...any) *VNode   { return newElement("option", args) }
func Optgroup(args ...any) *VNode { return newElement("optgroup", args) }
func Button(args ...any) *VNode   { return newElement("button", args) }
func Label(args ...any) *VNode    { return newElement("label", args) }
func Fieldset(args ...any) *VNode { return newElement("fieldset", args) }
func Legend(args ...any) *VNode   { return newElement("legend", args) }
func Datalist(args ...any) *VNode { return newElement("datalist", args) }
func Output(args ...any) *VNode   { return newElement("output", args) }
func Progress(args ...any) *VNode { return newElement("progress", args) }
func Meter(args ...any) *VNode    { return newElement("meter", args) }

// Table elements

func Table(args ...any) *VNode    { return newElement("table", args) }
func Thead(args ...any) *VNode    { return newElement("thead", args) }
func Tbody(args ...any) *VNode    { return newElement("tbody", args) }
func Tfoot(args ...any) *VNode    { return newElement("tfoot", args) }
func Tr(args ...any) *VNode       { return newElement("tr", args) }
func Th(args ...any) *VNode       { return newElement("th", args) }
func Td(args ...any) *VNode       { return newElement("td", args) }
func Caption(args ...any) *VNode  { return newElement("caption", args) }
func Colgroup(args ...any) *VNode { return newElement("colgroup", args) }
func Col(args ...any) *VNode      { return newElement("col", args) }

// Media elements

func Img(args ...any) *VNode    { return newElement("img", args) }
func Source(args ...any) *VNode { return newElement("source", args) }
func Video(args ...any) *VNode  { return newElement("video", args) }
func Audio(args ...any) *VNode  { return newElement("audio", args) }
func Iframe(args ...any) *VNode { return newElement("iframe", args) }
func Canvas(args ...any) *VNode { return newElement("canvas", args) }
func Svg(args ...any) *VNode    { return newElement("svg", args) }

// Interactive elements

func Details(args ...any) *VNode { return newElement("details", args) }
func Summary(args ...any) *VNode { return newElement("summary", args) }
func Dialog(args ...any) *VNode  { return newElement("dialog", args) }
func Menu(args ...any) *VNode    { return newElement("menu", args) }

// Scripting elements

func Script(args ...any) *VNode   { return newElement("script", args) }
func Noscript(args ...any) *VNode { return newElement("noscript", args) }
func Template(args ...any) *VNode { return newElement("template", args) }
func Slot(args ...any) *VNode     { return newElement("slot", args) }
func Style(args ...any) *VNode    { return newElement("style", args) }

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *VNode {
	return newElement(tag, args)
}
