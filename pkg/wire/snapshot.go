package wire

// Snapshot carries the full tree as of a sequence number. It is the
// payload of a FrameSnapshot frame, sent on connect and as the resync
// fallback when requested patches have left the history buffer. A client
// that applies a snapshot discards its current tree and resumes patch
// application from Seq.
type Snapshot struct {
	Seq  uint64 // Sequence number the tree corresponds to
	Root *Node  // Full tree (may be nil for an empty document)
}

// NewSnapshot creates a snapshot at the given sequence number.
func NewSnapshot(seq uint64, root *Node) *Snapshot {
	return &Snapshot{Seq: seq, Root: root}
}

// EncodeSnapshot encodes a snapshot to bytes.
func EncodeSnapshot(s *Snapshot) []byte {
	e := NewEncoder()
	EncodeSnapshotTo(e, s)
	return e.Bytes()
}

// EncodeSnapshotTo encodes a snapshot using the provided encoder.
func EncodeSnapshotTo(e *Encoder, s *Snapshot) {
	e.WriteUvarint(s.Seq)
	EncodeNode(e, s.Root)
}

// DecodeSnapshot decodes a snapshot from bytes.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	d := NewDecoder(data)
	return DecodeSnapshotFrom(d)
}

// DecodeSnapshotFrom decodes a snapshot from a decoder.
func DecodeSnapshotFrom(d *Decoder) (*Snapshot, error) {
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}

	root, err := DecodeNode(d)
	if err != nil {
		return nil, err
	}

	return &Snapshot{Seq: seq, Root: root}, nil
}
