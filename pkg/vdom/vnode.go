package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Reference to a render function
	KindRaw                    // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Key identifies a child across renders so the differ can match it by
// identity instead of position. Keys are passed explicitly at construction
// (a Key argument to an element factory, or WithKey); they are never stored
// as attributes. The empty key means unkeyed.
type Key string

// VNode is the virtual DOM node. Trees are immutable snapshots: once a node
// has been handed to Diff it must not be modified, and Diff itself never
// modifies or renders one.
type VNode struct {
	Kind     VKind         // Node type
	Tag      string        // Element tag name (e.g., "div")
	Props    Props         // Attributes and event handlers
	Children []*VNode      // Child nodes (elements and fragments only)
	Key      Key           // Reconciliation key ("" = unkeyed)
	Text     string        // For KindText and KindRaw
	Fn       ComponentFunc // For KindComponent
}

// Props holds attributes and event handlers.
type Props map[string]any

// ComponentFunc renders a component's props to a tree. The differ compares
// component nodes by function identity and never invokes the function;
// rendering happens outside reconciliation (see pkg/render).
type ComponentFunc func(props Props) *VNode

// WithKey returns a copy of the node carrying the given reconciliation key.
// Text and raw nodes are identified by content and cannot carry keys.
func (v *VNode) WithKey(key Key) *VNode {
	if v == nil || v.Kind == KindText || v.Kind == KindRaw {
		return v
	}
	out := *v
	out.Key = key
	return &out
}

// IsInteractive reports whether the node carries any event handler props.
func (v *VNode) IsInteractive() bool {
	if v == nil {
		return false
	}
	for k := range v.Props {
		if IsHandlerProp(k) {
			return true
		}
	}
	return false
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler. Handlers ride in Props under
// their "on"-prefixed event name; they are bound by the runtime at commit
// time and never appear in attribute deltas.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}
