package wire

import (
	"errors"

	"github.com/weft-dev/weft/pkg/vdom"
)

// ErrInvalidNodeKind is returned when a decoded node carries an unknown
// kind byte. Unknown kinds cannot be skipped because their payload size
// is unknowable.
var ErrInvalidNodeKind = errors.New("wire: invalid node kind")

// Node is the wire format for tree nodes.
// It contains only serializable data: no event handlers, no component
// functions.
type Node struct {
	Kind     vdom.VKind        // Node type
	Tag      string            // Element tag name
	Key      string            // Reconciliation key ("" = unkeyed)
	Attrs    map[string]string // String attributes only (no handlers)
	Children []*Node           // Child nodes
	Text     string            // For Text and Raw nodes
}

// FromVNode converts a vdom.VNode to wire format.
// Event handlers are stripped and attribute values are stringified with
// vdom.AttrText. Component nodes become empty fragments; rendering them
// happens outside reconciliation and before encoding.
func FromVNode(node *vdom.VNode) *Node {
	if node == nil {
		return nil
	}

	if node.Kind == vdom.KindComponent {
		return &Node{Kind: vdom.KindFragment, Key: string(node.Key)}
	}

	w := &Node{
		Kind: node.Kind,
		Tag:  node.Tag,
		Key:  string(node.Key),
		Text: node.Text,
	}

	if node.Kind == vdom.KindElement {
		w.Attrs = vdom.EffectiveAttrs(node)
	}

	if len(node.Children) > 0 {
		w.Children = make([]*Node, 0, len(node.Children))
		for _, child := range node.Children {
			if child != nil {
				w.Children = append(w.Children, FromVNode(child))
			}
		}
	}

	return w
}

// ToVNode converts a wire Node back to a vdom.VNode.
// Event handlers cannot be restored from wire format; all attributes come
// back as string props.
func (w *Node) ToVNode() *vdom.VNode {
	if w == nil {
		return nil
	}

	node := &vdom.VNode{
		Kind: w.Kind,
		Tag:  w.Tag,
		Key:  vdom.Key(w.Key),
		Text: w.Text,
	}

	if len(w.Attrs) > 0 {
		node.Props = make(vdom.Props, len(w.Attrs))
		for k, v := range w.Attrs {
			node.Props[k] = v
		}
	}

	if len(w.Children) > 0 {
		node.Children = make([]*vdom.VNode, len(w.Children))
		for i, child := range w.Children {
			node.Children[i] = child.ToVNode()
		}
	}

	return node
}

// EncodeNode encodes a Node to bytes using the provided encoder.
// A nil node is encoded as a single 0xFF marker byte.
func EncodeNode(e *Encoder, node *Node) {
	if node == nil {
		e.WriteByte(0xFF) // Null marker
		return
	}

	kind := node.Kind
	if kind == vdom.KindComponent {
		// Components travel as empty fragments.
		kind = vdom.KindFragment
	}
	e.WriteByte(byte(kind))

	switch kind {
	case vdom.KindElement:
		e.WriteString(node.Tag)
		e.WriteString(node.Key)

		// Encode attributes
		e.WriteUvarint(uint64(len(node.Attrs)))
		for k, v := range node.Attrs {
			e.WriteString(k)
			e.WriteString(v)
		}

		// Encode children
		e.WriteUvarint(uint64(len(node.Children)))
		for _, child := range node.Children {
			EncodeNode(e, child)
		}

	case vdom.KindText:
		e.WriteString(node.Text)

	case vdom.KindFragment:
		e.WriteString(node.Key)
		e.WriteUvarint(uint64(len(node.Children)))
		for _, child := range node.Children {
			EncodeNode(e, child)
		}

	case vdom.KindRaw:
		e.WriteString(node.Text)
	}
}

// DecodeNode decodes a Node from the decoder.
// Enforces MaxNodeDepth to prevent stack overflow on hostile input.
func DecodeNode(d *Decoder) (*Node, error) {
	return decodeNodeWithDepth(d, 0)
}

// decodeNodeWithDepth decodes a Node with depth tracking.
func decodeNodeWithDepth(d *Decoder, depth int) (*Node, error) {
	// Check depth limit before any work
	if err := checkDepth(depth, MaxNodeDepth); err != nil {
		return nil, err
	}

	kindByte, err := d.ReadByte()
	if err != nil {
		return nil, err
	}

	// Null marker
	if kindByte == 0xFF {
		return nil, nil
	}

	node := &Node{
		Kind: vdom.VKind(kindByte),
	}

	switch node.Kind {
	case vdom.KindElement:
		node.Tag, err = d.ReadString()
		if err != nil {
			return nil, err
		}

		node.Key, err = d.ReadString()
		if err != nil {
			return nil, err
		}

		attrCount, err := d.ReadCollectionCount()
		if err != nil {
			return nil, err
		}
		if attrCount > 0 {
			node.Attrs = make(map[string]string, attrCount)
			for i := 0; i < attrCount; i++ {
				key, err := d.ReadString()
				if err != nil {
					return nil, err
				}
				value, err := d.ReadString()
				if err != nil {
					return nil, err
				}
				node.Attrs[key] = value
			}
		}

		childCount, err := d.ReadCollectionCount()
		if err != nil {
			return nil, err
		}
		if childCount > 0 {
			node.Children = make([]*Node, childCount)
			for i := 0; i < childCount; i++ {
				child, err := decodeNodeWithDepth(d, depth+1)
				if err != nil {
					return nil, err
				}
				node.Children[i] = child
			}
		}

	case vdom.KindText:
		node.Text, err = d.ReadString()
		if err != nil {
			return nil, err
		}

	case vdom.KindFragment:
		node.Key, err = d.ReadString()
		if err != nil {
			return nil, err
		}

		childCount, err := d.ReadCollectionCount()
		if err != nil {
			return nil, err
		}
		if childCount > 0 {
			node.Children = make([]*Node, childCount)
			for i := 0; i < childCount; i++ {
				child, err := decodeNodeWithDepth(d, depth+1)
				if err != nil {
					return nil, err
				}
				node.Children[i] = child
			}
		}

	case vdom.KindRaw:
		node.Text, err = d.ReadString()
		if err != nil {
			return nil, err
		}

	default:
		return nil, ErrInvalidNodeKind
	}

	return node, nil
}

// NewText creates a text Node.
func NewText(text string) *Node {
	return &Node{
		Kind: vdom.KindText,
		Text: text,
	}
}

// NewElement creates an element Node.
func NewElement(tag string, attrs map[string]string, children ...*Node) *Node {
	return &Node{
		Kind:     vdom.KindElement,
		Tag:      tag,
		Attrs:    attrs,
		Children: children,
	}
}

// NewKeyedElement creates an element Node carrying a reconciliation key.
func NewKeyedElement(tag, key string, attrs map[string]string, children ...*Node) *Node {
	return &Node{
		Kind:     vdom.KindElement,
		Tag:      tag,
		Key:      key,
		Attrs:    attrs,
		Children: children,
	}
}

// NewFragment creates a fragment Node.
func NewFragment(children ...*Node) *Node {
	return &Node{
		Kind:     vdom.KindFragment,
		Children: children,
	}
}

// NewRaw creates a raw HTML Node.
func NewRaw(html string) *Node {
	return &Node{
		Kind: vdom.KindRaw,
		Text: html,
	}
}
