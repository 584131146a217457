package wire

import (
	"errors"
	"sort"

	"github.com/weft-dev/weft/pkg/vdom"
)

// ErrInvalidPatchOp is returned when a decoded patch carries an unknown
// operation byte.
var ErrInvalidPatchOp = errors.New("wire: invalid patch op")

// ErrIndexTooLarge is returned when a decoded child index exceeds
// MaxCollectionCount. Indices address positions in a child list, so no
// legitimate index can be beyond the collection limit; anything larger
// would also overflow int on conversion.
var ErrIndexTooLarge = errors.New("wire: index exceeds limit")

// readIndex reads a child index and validates it against the collection
// limit.
func readIndex(d *Decoder) (int, error) {
	idx, err := d.ReadUvarint()
	if err != nil {
		return 0, err
	}
	if idx > MaxCollectionCount {
		return 0, ErrIndexTooLarge
	}
	return int(idx), nil
}

// Patch is the wire format for a single tree operation. It mirrors
// vdom.Patch with handlers stripped and attribute values stringified:
// an Update nests patches for the target's children, a Reorder carries
// the move set for one child level. Lists must be applied in order.
type Patch struct {
	Op       vdom.PatchOp      // Operation type
	Index    int               // Target child position; 0 at the tree root
	Node     *Node             // New node (Create, Replace)
	Text     string            // New text content (Text)
	Set      map[string]string // Attributes to set (Update)
	Remove   []string          // Attributes to remove (Update)
	Children []Patch           // Patches for the target's children (Update)
	Moves    []Move            // Move set (Reorder)
}

// Move relocates the keyed child at From to position To among the children
// that survive the diff. See vdom.Move for the application contract.
type Move struct {
	Key  string // Identity of the child being moved
	From int    // Index in the old child list
	To   int    // Index among surviving children in the new order
}

// PatchList is a sequenced list of patches, the payload of a FramePatches
// frame.
type PatchList struct {
	Seq     uint64 // Sequence number
	Patches []Patch
}

// NewPatchList creates a patch list with the given sequence number.
func NewPatchList(seq uint64, patches []Patch) *PatchList {
	return &PatchList{Seq: seq, Patches: patches}
}

// FromPatches lowers a diff into its wire shape.
func FromPatches(patches []vdom.Patch) []Patch {
	if len(patches) == 0 {
		return nil
	}
	out := make([]Patch, len(patches))
	for i, p := range patches {
		out[i] = FromPatch(p)
	}
	return out
}

// FromPatch lowers a single vdom.Patch into its wire shape. Attribute
// values are stringified with vdom.AttrText; a set value that no longer
// renders (nil, false boolean attr, unsupported type) becomes a removal.
func FromPatch(p vdom.Patch) Patch {
	w := Patch{Op: p.Op, Index: p.Index}

	switch p.Op {
	case vdom.PatchCreate, vdom.PatchReplace:
		w.Node = FromVNode(p.Node)

	case vdom.PatchText:
		w.Text = p.Text

	case vdom.PatchUpdate:
		var dropped []string
		if len(p.Delta.Set) > 0 {
			w.Set = make(map[string]string, len(p.Delta.Set))
			for k, v := range p.Delta.Set {
				if text, ok := vdom.AttrText(k, v); ok {
					w.Set[k] = text
				} else {
					dropped = append(dropped, k)
				}
			}
			if len(w.Set) == 0 {
				w.Set = nil
			}
		}
		if len(p.Delta.Remove) > 0 || len(dropped) > 0 {
			w.Remove = make([]string, 0, len(p.Delta.Remove)+len(dropped))
			w.Remove = append(w.Remove, p.Delta.Remove...)
			w.Remove = append(w.Remove, dropped...)
			sort.Strings(w.Remove)
		}
		if len(p.Children) > 0 {
			w.Children = make([]Patch, len(p.Children))
			for i, child := range p.Children {
				w.Children[i] = FromPatch(child)
			}
		}

	case vdom.PatchReorder:
		w.Moves = make([]Move, len(p.Moves))
		for i, m := range p.Moves {
			w.Moves[i] = Move{Key: string(m.Key), From: m.From, To: m.To}
		}
	}

	return w
}

// ToPatch converts a wire Patch back to a vdom.Patch. Attribute values
// come back as string props; Old pointers cannot be restored.
func (p Patch) ToPatch() vdom.Patch {
	out := vdom.Patch{Op: p.Op, Index: p.Index}

	switch p.Op {
	case vdom.PatchCreate, vdom.PatchReplace:
		out.Node = p.Node.ToVNode()

	case vdom.PatchText:
		out.Text = p.Text

	case vdom.PatchUpdate:
		if len(p.Set) > 0 {
			out.Delta.Set = make(vdom.Props, len(p.Set))
			for k, v := range p.Set {
				out.Delta.Set[k] = v
			}
		}
		if len(p.Remove) > 0 {
			out.Delta.Remove = append([]string(nil), p.Remove...)
		}
		if len(p.Children) > 0 {
			out.Children = make([]vdom.Patch, len(p.Children))
			for i, child := range p.Children {
				out.Children[i] = child.ToPatch()
			}
		}

	case vdom.PatchReorder:
		out.Moves = make([]vdom.Move, len(p.Moves))
		for i, m := range p.Moves {
			out.Moves[i] = vdom.Move{Key: vdom.Key(m.Key), From: m.From, To: m.To}
		}
	}

	return out
}

// EncodePatchList encodes a patch list to bytes.
func EncodePatchList(pl *PatchList) []byte {
	e := NewEncoder()
	EncodePatchListTo(e, pl)
	return e.Bytes()
}

// EncodePatchListTo encodes a patch list using the provided encoder.
func EncodePatchListTo(e *Encoder, pl *PatchList) {
	e.WriteUvarint(pl.Seq)
	e.WriteUvarint(uint64(len(pl.Patches)))
	for i := range pl.Patches {
		encodePatch(e, &pl.Patches[i])
	}
}

// encodePatch encodes a single patch.
//
// Wire format:
//
//	[Op: byte][Index: varint][op-specific fields]
func encodePatch(e *Encoder, p *Patch) {
	e.WriteByte(byte(p.Op))
	e.WriteUvarint(uint64(p.Index))

	switch p.Op {
	case vdom.PatchCreate, vdom.PatchReplace:
		EncodeNode(e, p.Node)

	case vdom.PatchRemove:
		// Index alone identifies the target.

	case vdom.PatchText:
		e.WriteString(p.Text)

	case vdom.PatchUpdate:
		e.WriteUvarint(uint64(len(p.Set)))
		for k, v := range p.Set {
			e.WriteString(k)
			e.WriteString(v)
		}
		e.WriteUvarint(uint64(len(p.Remove)))
		for _, k := range p.Remove {
			e.WriteString(k)
		}
		e.WriteUvarint(uint64(len(p.Children)))
		for i := range p.Children {
			encodePatch(e, &p.Children[i])
		}

	case vdom.PatchReorder:
		e.WriteUvarint(uint64(len(p.Moves)))
		for _, m := range p.Moves {
			e.WriteString(m.Key)
			e.WriteUvarint(uint64(m.From))
			e.WriteUvarint(uint64(m.To))
		}
	}
}

// DecodePatchList decodes a patch list from bytes.
func DecodePatchList(data []byte) (*PatchList, error) {
	d := NewDecoder(data)
	return DecodePatchListFrom(d)
}

// DecodePatchListFrom decodes a patch list from a decoder.
// Enforces MaxPatchDepth on Update nesting and MaxNodeDepth on carried
// node trees.
func DecodePatchListFrom(d *Decoder) (*PatchList, error) {
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}

	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}

	pl := &PatchList{Seq: seq}
	if count > 0 {
		pl.Patches = make([]Patch, count)
		for i := 0; i < count; i++ {
			if err := decodePatch(d, &pl.Patches[i], 0); err != nil {
				return nil, err
			}
		}
	}
	return pl, nil
}

// decodePatch decodes a single patch with depth tracking for Update
// nesting.
func decodePatch(d *Decoder, p *Patch, depth int) error {
	if err := checkDepth(depth, MaxPatchDepth); err != nil {
		return err
	}

	opByte, err := d.ReadByte()
	if err != nil {
		return err
	}
	p.Op = vdom.PatchOp(opByte)

	p.Index, err = readIndex(d)
	if err != nil {
		return err
	}

	switch p.Op {
	case vdom.PatchCreate, vdom.PatchReplace:
		p.Node, err = DecodeNode(d)
		if err != nil {
			return err
		}

	case vdom.PatchRemove:
		// No payload.

	case vdom.PatchText:
		p.Text, err = d.ReadString()
		if err != nil {
			return err
		}

	case vdom.PatchUpdate:
		setCount, err := d.ReadCollectionCount()
		if err != nil {
			return err
		}
		if setCount > 0 {
			p.Set = make(map[string]string, setCount)
			for i := 0; i < setCount; i++ {
				k, err := d.ReadString()
				if err != nil {
					return err
				}
				v, err := d.ReadString()
				if err != nil {
					return err
				}
				p.Set[k] = v
			}
		}

		removeCount, err := d.ReadCollectionCount()
		if err != nil {
			return err
		}
		if removeCount > 0 {
			p.Remove = make([]string, removeCount)
			for i := 0; i < removeCount; i++ {
				p.Remove[i], err = d.ReadString()
				if err != nil {
					return err
				}
			}
		}

		childCount, err := d.ReadCollectionCount()
		if err != nil {
			return err
		}
		if childCount > 0 {
			p.Children = make([]Patch, childCount)
			for i := 0; i < childCount; i++ {
				if err := decodePatch(d, &p.Children[i], depth+1); err != nil {
					return err
				}
			}
		}

	case vdom.PatchReorder:
		moveCount, err := d.ReadCollectionCount()
		if err != nil {
			return err
		}
		if moveCount > 0 {
			p.Moves = make([]Move, moveCount)
			for i := 0; i < moveCount; i++ {
				key, err := d.ReadString()
				if err != nil {
					return err
				}
				from, err := readIndex(d)
				if err != nil {
					return err
				}
				to, err := readIndex(d)
				if err != nil {
					return err
				}
				p.Moves[i] = Move{Key: key, From: from, To: to}
			}
		}

	default:
		return ErrInvalidPatchOp
	}

	return nil
}
