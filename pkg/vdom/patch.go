package vdom

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchCreate  PatchOp = 0x01 // Insert a new node at Index
	PatchRemove  PatchOp = 0x02 // Remove the node at Index
	PatchReplace PatchOp = 0x03 // Swap the node at Index for a new one
	PatchText    PatchOp = 0x04 // Set the text content of the node at Index
	PatchUpdate  PatchOp = 0x05 // Apply an attribute delta and child patches
	PatchReorder PatchOp = 0x06 // Move keyed children at this level
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchCreate:
		return "Create"
	case PatchRemove:
		return "Remove"
	case PatchReplace:
		return "Replace"
	case PatchText:
		return "Text"
	case PatchUpdate:
		return "Update"
	case PatchReorder:
		return "Reorder"
	default:
		return "Unknown"
	}
}

// Patch is a single tree operation. A diff is an ordered []Patch; consumers
// must apply patches strictly in list order because later patches assume
// the positions established by earlier ones. At each child level the differ
// emits Removes first (descending old index), then at most one Reorder,
// then Creates (ascending new index), then content patches addressed by
// their final position.
type Patch struct {
	Op       PatchOp    // Operation type
	Index    int        // Target child position; 0 at the tree root
	Node     *VNode     // New node (Create, Replace)
	Old      *VNode     // Old node (Remove, Replace)
	Text     string     // New text content (Text)
	Delta    PropsDelta // Attribute changes (Update)
	Children []Patch    // Patches for the target's children (Update)
	Moves    []Move     // Minimal move set (Reorder)
}

// Move relocates the child carrying Key to position To among the children
// that survive the diff. From records the child's index in the old list.
// A Reorder's moves apply atomically: extract every moved child, then
// reinsert each at To in ascending order; unmoved children keep their
// relative order.
type Move struct {
	Key  Key // Identity of the child being moved
	From int // Index in the old child list
	To   int // Index among surviving children in the new order
}

// PropsDelta is the output of DiffProps: attribute values to set (new or
// changed) and attribute names to remove.
type PropsDelta struct {
	Set    Props
	Remove []string
}

// Empty returns true if the delta carries no changes.
func (d PropsDelta) Empty() bool {
	return len(d.Set) == 0 && len(d.Remove) == 0
}
