package live

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/weft-dev/weft/pkg/wire"
)

var (
	// ErrSessionClosed is returned when sending on a closed session.
	ErrSessionClosed = errors.New("live: session closed")

	// ErrSendQueueFull is returned when a session's outbound queue
	// overflows. The session is closed as too slow to keep up.
	ErrSendQueueFull = errors.New("live: send queue full")
)

// Session is one websocket client receiving the patch stream.
type Session struct {
	// ID is the unique session identifier.
	ID string

	conn   *websocket.Conn
	server *Server
	config *SessionConfig
	logger *slog.Logger

	send chan []byte
	done chan struct{}

	closeOnce sync.Once
	closed    atomic.Bool

	// ackSeq is the last sequence number the client acknowledged.
	ackSeq atomic.Uint64
}

func newSession(id string, conn *websocket.Conn, server *Server) *Session {
	config := server.config.Session
	return &Session{
		ID:     id,
		conn:   conn,
		server: server,
		config: config,
		logger: server.logger.With("session_id", id),
		send:   make(chan []byte, config.SendQueueSize),
		done:   make(chan struct{}),
	}
}

// generateSessionID returns a cryptographically random 128-bit hex ID.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("live: failed to generate session ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// AckSeq returns the last sequence number the client acknowledged.
func (s *Session) AckSeq() uint64 {
	return s.ackSeq.Load()
}

// IsClosed returns true if the session has been closed.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// Send enqueues a pre-encoded frame for delivery. It never blocks; a full
// queue closes the session and returns ErrSendQueueFull.
func (s *Session) Send(frame []byte) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	select {
	case s.send <- frame:
		return nil
	case <-s.done:
		return ErrSessionClosed
	default:
		s.logger.Warn("send queue full, closing session")
		s.Close(wire.CloseError, "send queue overflow")
		return ErrSendQueueFull
	}
}

// sendError reports a protocol violation to the client. Non-fatal: the
// session keeps reading, the client decides whether to resync.
func (s *Session) sendError(code wire.ErrorCode, message string) {
	em := wire.NewError(code, message)
	s.Send(wire.NewFrame(wire.FrameError, wire.EncodeErrorMessage(em)).Encode())
}

// readLoop reads frames from the client until the connection drops.
// It handles control frames (ping, resync, close) and acknowledgments.
func (s *Session) readLoop() {
	defer func() {
		s.Close(wire.CloseNormal, "")
		s.server.removeSession(s)
	}()

	s.conn.SetReadLimit(s.config.MaxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("unexpected close", "error", err)
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		frame, err := wire.DecodeFrame(msg)
		if err != nil {
			s.logger.Warn("bad frame", "error", err)
			s.sendError(wire.ErrInvalidFrame, "malformed frame")
			continue
		}

		switch frame.Type {
		case wire.FrameControl:
			if done := s.handleControl(frame.Payload); done {
				return
			}
		case wire.FrameAck:
			ack, err := wire.DecodeAck(frame.Payload)
			if err != nil {
				s.logger.Warn("bad ack frame", "error", err)
				s.sendError(wire.ErrInvalidFrame, "invalid ack payload")
				continue
			}
			s.ackSeq.Store(ack.LastSeq)
		default:
			s.logger.Warn("unexpected frame type", "type", frame.Type)
			s.sendError(wire.ErrInvalidFrame, "unexpected frame type")
		}
	}
}

// handleControl dispatches one control message. Returns true when the
// session should stop reading.
func (s *Session) handleControl(payload []byte) bool {
	ct, msg, err := wire.DecodeControl(payload)
	if err != nil {
		s.logger.Warn("bad control frame", "error", err)
		s.sendError(wire.ErrInvalidFrame, "invalid control payload")
		return false
	}

	switch ct {
	case wire.ControlPing:
		ping := msg.(*wire.PingPong)
		pt, pong := wire.NewPong(ping.Timestamp)
		s.Send(wire.NewFrame(wire.FrameControl, wire.EncodeControl(pt, pong)).Encode())
	case wire.ControlPong:
		// Heartbeat response; the read deadline reset is enough.
	case wire.ControlResyncRequest:
		rr := msg.(*wire.ResyncRequest)
		s.server.resync(s, rr.LastSeq)
	case wire.ControlClose:
		cm := msg.(*wire.CloseMessage)
		s.logger.Info("client close", "reason", cm.Reason, "message", cm.Message)
		return true
	}
	return false
}

// writeLoop drains the send queue and emits heartbeat pings.
func (s *Session) writeLoop() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case frame := <-s.send:
			if err := s.write(frame); err != nil {
				s.logger.Warn("write failed", "error", err)
				s.Close(wire.CloseError, "write failed")
				return
			}
		case <-ticker.C:
			ct, ping := wire.NewPing(uint64(time.Now().UnixMilli()))
			frame := wire.NewFrame(wire.FrameControl, wire.EncodeControl(ct, ping)).Encode()
			if err := s.write(frame); err != nil {
				s.logger.Warn("heartbeat failed", "error", err)
				s.Close(wire.CloseError, "heartbeat failed")
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *Session) write(frame []byte) error {
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	return s.conn.WriteMessage(websocket.BinaryMessage, frame)
}

// Close sends a close control frame (best effort) and tears down the
// connection. Safe to call multiple times.
func (s *Session) Close(reason wire.CloseReason, message string) {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.done)

		ct, cm := wire.NewClose(reason, message)
		frame := wire.NewFrame(wire.FrameControl, wire.EncodeControl(ct, cm)).Encode()
		s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
		s.conn.WriteMessage(websocket.BinaryMessage, frame)

		s.conn.Close()
		s.logger.Debug("session closed", "reason", reason)
	})
}
