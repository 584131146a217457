// Package live streams tree patches to browsers over websockets.
//
// A Server holds one published tree. HTTP requests to / receive a rendered
// HTML snapshot of that tree; websocket connections to /live receive a
// binary snapshot frame followed by sequenced patch frames, one per
// Publish call:
//
//	srv := live.New(initialTree, nil)
//	srv.Use(middleware.Prometheus())
//	go srv.Run()
//
//	srv.Publish(ctx, nextTree) // diffs against the current tree, broadcasts
//
// Reliability is sequence-number based. Every patch frame carries a
// sequence number, clients acknowledge what they have applied, and a
// PatchHistory ring buffer retains recent frames so a client that detects
// a gap can request replay. When the gap is older than the buffer, the
// server answers with a fresh snapshot frame instead.
package live
