// Package wire implements the binary encoding for Weft snapshots and
// patch streams.
//
// The encoding is optimized for minimal bandwidth and fast encoding/decoding.
// It defines how a rendered tree travels to a client as a snapshot and how
// subsequent diffs travel as sequenced patch lists, typically over a
// WebSocket connection.
//
// # Design Goals
//
//   - Minimal size: Typical text patch < 10 bytes
//   - Fast encoding/decoding: No reflection, direct byte manipulation
//   - Reliable delivery: Sequence numbers, acknowledgments
//   - Reconnection: Resync capability after disconnect
//   - Hostile-input safe: Allocation, collection, and depth limits on decode
//
// # Wire Format
//
// All messages are framed with a 4-byte header:
//
//	┌─────────────┬──────────────┬───────────────────────────────┐
//	│ Frame Type  │ Flags        │ Payload Length                │
//	│ (1 byte)    │ (1 byte)     │ (2 bytes, big-endian)         │
//	└─────────────┴──────────────┴───────────────────────────────┘
//
// # Frame Types
//
//   - FrameSnapshot (0x01): Full tree, sent on connect and resync
//   - FramePatches (0x02): Sequenced patch list
//   - FrameControl (0x03): Control messages (ping, resync, close)
//   - FrameAck (0x04): Acknowledgment
//   - FrameError (0x05): Error message
//
// # Encoding
//
// The package uses several encoding strategies:
//
//   - Varint: Compact encoding for small integers (protobuf-style)
//   - ZigZag: Signed integers encoded as unsigned varints
//   - Length-prefixed: Strings and byte arrays prefixed with varint length
//   - Big-endian: Fixed-width integers (uint16, uint32, uint64)
//
// # Patches
//
// Patches mirror the recursive diff model: an Update carries an attribute
// delta plus patches for the target's children, and a Reorder carries the
// move set for one child level. Patch lists must be applied strictly in
// order; see the vdom package for the application contract.
//
// Example text patch encoding:
//
//	[Op: 0x04][Index: varint][Text: len-prefixed]
//	Total: ~8 bytes for setting "Hello"
//
// # Conversion
//
// FromVNode and FromPatches lower vdom values into their wire shapes:
// attribute values are stringified with vdom.AttrText, handler props are
// dropped, and component nodes (which the differ never invokes) become
// empty fragments.
//
//	snap := wire.NewSnapshot(1, wire.FromVNode(tree))
//	data := wire.EncodeSnapshot(snap)
//
//	pl := wire.NewPatchList(2, wire.FromPatches(vdom.Diff(prev, next)))
//	data = wire.EncodePatchList(pl)
//
// # Control Messages
//
//   - Ping/Pong: Heartbeat for connection health
//   - ResyncRequest: Client requests missed patches after reconnect
//   - Close: Graceful session termination
//
// A resync is answered with either a FramePatches replay or, when the
// requested range has left the history buffer, a fresh FrameSnapshot.
//
// # File Structure
//
// The package is organized as follows:
//
//   - varint.go: Varint encoding/decoding
//   - encoder.go: Binary encoder
//   - decoder.go: Binary decoder
//   - limits.go: Decode limits
//   - frame.go: Frame types and transport
//   - node.go: Node wire format
//   - patch.go: Patch wire format
//   - snapshot.go: Snapshot frames
//   - control.go: Control messages
//   - ack.go: Acknowledgment
//   - error.go: Error messages
package wire
