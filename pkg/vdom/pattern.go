package vdom

// ListPattern classifies a keyed child transformation the differ can
// shortcut without running the general matching algorithm.
type ListPattern uint8

const (
	PatternNone        ListPattern = iota // No shortcut applies
	PatternNoChange                       // Identical entries, identical order
	PatternAppend                         // Old list is a prefix of new
	PatternPrepend                        // Old list is a suffix of new
	PatternRemoveStart                    // New list is a suffix of old
	PatternRemoveEnd                      // New list is a prefix of old
	PatternReverse                        // Same entries, reversed
)

// String returns the string representation of the ListPattern.
func (p ListPattern) String() string {
	switch p {
	case PatternNone:
		return "None"
	case PatternNoChange:
		return "NoChange"
	case PatternAppend:
		return "Append"
	case PatternPrepend:
		return "Prepend"
	case PatternRemoveStart:
		return "RemoveStart"
	case PatternRemoveEnd:
		return "RemoveEnd"
	case PatternReverse:
		return "Reverse"
	default:
		return "Unknown"
	}
}

// DetectListPattern classifies the transformation from prev to next.
// Shared entries must be the same *VNode references, not merely nodes with
// matching keys: the fast paths emit structural patches only, so lists
// whose entries were rebuilt take the general path and get content diffs.
// Returns PatternNone when no shortcut applies, including when either list
// is empty.
func DetectListPattern(prev, next []*VNode) ListPattern {
	np, nn := len(prev), len(next)
	if np == 0 || nn == 0 {
		return PatternNone
	}

	switch {
	case np == nn:
		if sameRun(prev, next, 0, 0, np) {
			return PatternNoChange
		}
		if reversedRun(prev, next) {
			return PatternReverse
		}
	case np < nn:
		if sameRun(prev, next, 0, 0, np) {
			return PatternAppend
		}
		if sameRun(prev, next, 0, nn-np, np) {
			return PatternPrepend
		}
	default:
		if sameRun(prev, next, 0, 0, nn) {
			return PatternRemoveEnd
		}
		if sameRun(prev, next, np-nn, 0, nn) {
			return PatternRemoveStart
		}
	}
	return PatternNone
}

// sameRun reports whether prev[po:po+n] and next[no:no+n] hold the same
// node references.
func sameRun(prev, next []*VNode, po, no, n int) bool {
	for i := 0; i < n; i++ {
		if prev[po+i] != next[no+i] {
			return false
		}
	}
	return true
}

// reversedRun reports whether next holds exactly prev's references in
// reverse order. Caller guarantees equal lengths.
func reversedRun(prev, next []*VNode) bool {
	n := len(prev)
	for i := 0; i < n; i++ {
		if prev[i] != next[n-1-i] {
			return false
		}
	}
	return true
}
