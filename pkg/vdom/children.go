package vdom

// diffChildren dispatches between keyed and positional reconciliation.
// Keyed matching runs only when every entry on both sides carries a key;
// mixed or absent keys fall back to positional matching.
func diffChildren(prev, next []*VNode, patches *[]Patch) {
	if allKeyed(prev) && allKeyed(next) {
		diffChildrenKeyed(prev, next, patches)
		return
	}
	diffChildrenByIndex(prev, next, patches)
}

// allKeyed reports whether every entry carries a non-empty key. An empty
// list is vacuously keyed.
func allKeyed(nodes []*VNode) bool {
	for _, n := range nodes {
		if n == nil || n.Key == "" {
			return false
		}
	}
	return true
}

// diffChildrenByIndex reconciles two child lists positionally: shared
// indices recurse pairwise, extra new entries become Creates, extra old
// entries become Removes. Removes are emitted in descending index so each
// index is still valid when its patch applies.
func diffChildrenByIndex(prev, next []*VNode, patches *[]Patch) {
	shared := min(len(prev), len(next))
	for i := 0; i < shared; i++ {
		diffAt(prev[i], next[i], i, patches)
	}
	for i := shared; i < len(next); i++ {
		*patches = append(*patches, Patch{Op: PatchCreate, Index: i, Node: next[i]})
	}
	for i := len(prev) - 1; i >= shared; i-- {
		*patches = append(*patches, Patch{Op: PatchRemove, Index: i, Old: prev[i]})
	}
}

// diffChildrenKeyed reconciles two fully keyed child lists. Pattern
// shortcuts are tried first. Otherwise: index the old keys, emit Removes
// for vanished keys (descending old index), one Reorder whose move set is
// minimized with longestIncreasingSubsequence, Creates for fresh keys
// (ascending new index), and finally content diffs for matched pairs
// addressed by their final position.
//
// Duplicate keys: the first occurrence wins; later occurrences never match
// and are removed from the old list or created from the new one.
func diffChildrenKeyed(prev, next []*VNode, patches *[]Patch) {
	switch DetectListPattern(prev, next) {
	case PatternNoChange:
		return
	case PatternAppend:
		for i := len(prev); i < len(next); i++ {
			*patches = append(*patches, Patch{Op: PatchCreate, Index: i, Node: next[i]})
		}
		return
	case PatternPrepend:
		for i := 0; i < len(next)-len(prev); i++ {
			*patches = append(*patches, Patch{Op: PatchCreate, Index: i, Node: next[i]})
		}
		return
	case PatternRemoveEnd:
		for i := len(prev) - 1; i >= len(next); i-- {
			*patches = append(*patches, Patch{Op: PatchRemove, Index: i, Old: prev[i]})
		}
		return
	case PatternRemoveStart:
		for i := len(prev) - len(next) - 1; i >= 0; i-- {
			*patches = append(*patches, Patch{Op: PatchRemove, Index: i, Old: prev[i]})
		}
		return
	case PatternReverse:
		// Hold the last entry of the new order still and move the rest;
		// n-1 moves is minimal for a true reversal.
		n := len(prev)
		moves := make([]Move, 0, n-1)
		for i := 0; i < n-1; i++ {
			moves = append(moves, Move{Key: next[i].Key, From: n - 1 - i, To: i})
		}
		*patches = append(*patches, Patch{Op: PatchReorder, Moves: moves})
		return
	}

	oldIndex := keyIndex(prev)
	newIndex := keyIndex(next)

	// Vanished and duplicate old entries, descending.
	for i := len(prev) - 1; i >= 0; i-- {
		k := prev[i].Key
		if oldIndex[k] != i {
			*patches = append(*patches, Patch{Op: PatchRemove, Index: i, Old: prev[i]})
			continue
		}
		if _, stays := newIndex[k]; !stays {
			*patches = append(*patches, Patch{Op: PatchRemove, Index: i, Old: prev[i]})
		}
	}

	// Surviving children in new-list order. seq holds their old indices,
	// finalAt their indices in the new list.
	var seq, finalAt []int
	for j, n := range next {
		k := n.Key
		if newIndex[k] != j {
			continue
		}
		if i, ok := oldIndex[k]; ok {
			seq = append(seq, i)
			finalAt = append(finalAt, j)
		}
	}

	// Children outside the longest increasing subsequence of seq move.
	if len(seq) > 1 {
		keep := longestIncreasingSubsequence(seq)
		if len(keep) < len(seq) {
			inLIS := make([]bool, len(seq))
			for _, p := range keep {
				inLIS[p] = true
			}
			moves := make([]Move, 0, len(seq)-len(keep))
			for p := range seq {
				if inLIS[p] {
					continue
				}
				moves = append(moves, Move{Key: next[finalAt[p]].Key, From: seq[p], To: p})
			}
			*patches = append(*patches, Patch{Op: PatchReorder, Moves: moves})
		}
	}

	// Fresh and duplicate new entries, ascending final index.
	for j, n := range next {
		k := n.Key
		if newIndex[k] != j {
			*patches = append(*patches, Patch{Op: PatchCreate, Index: j, Node: n})
			continue
		}
		if _, existed := oldIndex[k]; !existed {
			*patches = append(*patches, Patch{Op: PatchCreate, Index: j, Node: n})
		}
	}

	// Content diffs for matched pairs, addressed by final position.
	for p, j := range finalAt {
		diffAt(prev[seq[p]], next[j], j, patches)
	}
}

// keyIndex maps each key to its first occurrence in the list.
func keyIndex(nodes []*VNode) map[Key]int {
	idx := make(map[Key]int, len(nodes))
	for i, n := range nodes {
		if _, dup := idx[n.Key]; !dup {
			idx[n.Key] = i
		}
	}
	return idx
}
