package vdom

// longestIncreasingSubsequence returns the positions (into seq, ascending)
// of one longest strictly increasing subsequence of seq. The keyed child
// differ feeds it the old indices of surviving children in new-list order;
// positions in the result are the children that can stay put, everything
// else moves.
//
// Patience algorithm, O(n log n): tails[l] holds the position of the
// smallest tail value among increasing subsequences of length l+1, and a
// predecessor chain rebuilds the subsequence from the last tail.
func longestIncreasingSubsequence(seq []int) []int {
	if len(seq) == 0 {
		return nil
	}

	tails := make([]int, 0, len(seq))
	prev := make([]int, len(seq))

	for i, v := range seq {
		// Binary search for the first tail whose value is >= v.
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if seq[tails[mid]] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo > 0 {
			prev[i] = tails[lo-1]
		} else {
			prev[i] = -1
		}
		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}

	out := make([]int, len(tails))
	at := tails[len(tails)-1]
	for i := len(tails) - 1; i >= 0; i-- {
		out[i] = at
		at = prev[at]
	}
	return out
}
