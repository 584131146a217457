package live

import (
	"sync"
	"time"
)

// historyEntry stores a sent patch frame for potential replay.
type historyEntry struct {
	seq    uint64
	frame  []byte
	sentAt time.Time
}

// PatchHistory is a thread-safe ring buffer of pre-encoded patch frames.
// It maintains a sliding window of recently published frames so that a
// client that missed some can be caught up by replay instead of a full
// snapshot. The oldest entry is overwritten when the buffer is full.
type PatchHistory struct {
	mu       sync.RWMutex
	entries  []*historyEntry
	head     int    // next write position (circular)
	count    int    // current number of entries
	capacity int    // max entries
	minSeq   uint64 // lowest sequence in buffer
	maxSeq   uint64 // highest sequence in buffer
}

// NewPatchHistory creates a patch history ring buffer with the given capacity.
func NewPatchHistory(capacity int) *PatchHistory {
	if capacity <= 0 {
		capacity = DefaultSessionConfig().MaxPatchHistory
	}
	return &PatchHistory{
		entries:  make([]*historyEntry, capacity),
		capacity: capacity,
	}
}

// Add stores a patch frame. The frame bytes are copied so callers may
// reuse their buffer.
func (h *PatchHistory) Add(seq uint64, frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	frameCopy := make([]byte, len(frame))
	copy(frameCopy, frame)

	h.entries[h.head] = &historyEntry{
		seq:    seq,
		frame:  frameCopy,
		sentAt: time.Now(),
	}
	h.head = (h.head + 1) % h.capacity

	if h.count < h.capacity {
		h.count++
	}

	h.maxSeq = seq
	if h.count == 1 {
		h.minSeq = seq
	} else if h.count == h.capacity {
		// Buffer full; minSeq advances to the oldest entry, which after
		// the head increment is the slot that will be overwritten next.
		if oldest := h.entries[h.head]; oldest != nil {
			h.minSeq = oldest.seq
		}
	}
}

// GetFrames returns frames for sequences (afterSeq, toSeq], in sequence
// order. Returns nil if any sequence in the range is no longer available.
func (h *PatchHistory) GetFrames(afterSeq, toSeq uint64) [][]byte {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.count == 0 {
		return nil
	}
	if afterSeq+1 < h.minSeq || toSeq > h.maxSeq {
		return nil
	}

	seqToFrame := make(map[uint64][]byte, h.count)
	for i := 0; i < h.count; i++ {
		idx := (h.head - h.count + i + h.capacity) % h.capacity
		if entry := h.entries[idx]; entry != nil {
			seqToFrame[entry.seq] = entry.frame
		}
	}

	var frames [][]byte
	for seq := afterSeq + 1; seq <= toSeq; seq++ {
		frame, ok := seqToFrame[seq]
		if !ok {
			return nil
		}
		frames = append(frames, frame)
	}
	return frames
}

// CanRecover reports whether all sequences from lastSeq+1 to the newest
// frame are still buffered.
func (h *PatchHistory) CanRecover(lastSeq uint64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.count == 0 {
		return false
	}
	return lastSeq+1 >= h.minSeq && lastSeq < h.maxSeq
}

// MinSeq returns the minimum recoverable sequence.
func (h *PatchHistory) MinSeq() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.minSeq
}

// MaxSeq returns the maximum sequence in the buffer.
func (h *PatchHistory) MaxSeq() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.maxSeq
}

// Count returns the number of buffered frames.
func (h *PatchHistory) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Clear removes all entries.
func (h *PatchHistory) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := range h.entries {
		h.entries[i] = nil
	}
	h.head = 0
	h.count = 0
	h.minSeq = 0
	h.maxSeq = 0
}
