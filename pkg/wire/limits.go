package wire

import "errors"

// Depth limits to prevent stack overflow attacks via deeply nested structures.
// These limits complement the allocation limits in decoder.go.
const (
	// MaxNodeDepth limits the maximum nesting depth of node trees.
	// This prevents stack overflow from maliciously deep trees.
	// 256 levels is sufficient for any reasonable document hierarchy.
	MaxNodeDepth = 256

	// MaxPatchDepth limits the maximum nesting depth of patch structures.
	// Update patches nest child patches and Create/Replace patches carry
	// node trees, so both recursions are bounded separately.
	MaxPatchDepth = 128
)

// ErrMaxDepthExceeded is returned when a decoded structure nests deeper
// than the configured limit.
var ErrMaxDepthExceeded = errors.New("wire: max depth exceeded")

// checkDepth guards each level of a recursive decode.
func checkDepth(current, max int) error {
	if current > max {
		return ErrMaxDepthExceeded
	}
	return nil
}
