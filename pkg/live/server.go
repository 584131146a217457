package live

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/weft-dev/weft/pkg/middleware"
	"github.com/weft-dev/weft/pkg/render"
	"github.com/weft-dev/weft/pkg/vdom"
	"github.com/weft-dev/weft/pkg/wire"
)

// Server publishes a single tree to any number of websocket clients.
//
// Each new connection receives a snapshot frame of the current tree. Every
// Publish call diffs the previous tree against the next one and broadcasts
// the resulting patch frame, stamped with a monotonically increasing
// sequence number. Recent frames are retained in a PatchHistory so a client
// that detects a gap can request replay instead of a full snapshot.
type Server struct {
	config   *Config
	logger   *slog.Logger
	upgrader websocket.Upgrader
	renderer *render.Renderer
	history  *PatchHistory

	// reconcile is the differ, possibly wrapped in middleware.
	reconcile middleware.ReconcileFunc
	mws       []middleware.Middleware

	mu       sync.RWMutex
	sessions map[string]*Session
	current  *vdom.VNode
	seq      uint64

	httpServer *http.Server
}

// New creates a Server publishing the given initial tree.
func New(root *vdom.VNode, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	} else {
		defaults := DefaultConfig()
		if config.Address == "" {
			config.Address = defaults.Address
		}
		if config.ReadBufferSize == 0 {
			config.ReadBufferSize = defaults.ReadBufferSize
		}
		if config.WriteBufferSize == 0 {
			config.WriteBufferSize = defaults.WriteBufferSize
		}
		if config.CheckOrigin == nil {
			config.CheckOrigin = defaults.CheckOrigin
		}
		if config.Session == nil {
			config.Session = defaults.Session
		}
		if config.Title == "" {
			config.Title = defaults.Title
		}
		if config.ClientScriptPath == "" {
			config.ClientScriptPath = defaults.ClientScriptPath
		}
		if config.ReadHeaderTimeout == 0 {
			config.ReadHeaderTimeout = defaults.ReadHeaderTimeout
		}
		if config.ShutdownTimeout == 0 {
			config.ShutdownTimeout = defaults.ShutdownTimeout
		}
	}

	logger := slog.Default().With("component", "live")

	return &Server{
		config:   config,
		logger:   logger,
		renderer: render.NewRenderer(render.RendererConfig{}),
		history:  NewPatchHistory(config.Session.MaxPatchHistory),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		reconcile: middleware.Reconciler(),
		sessions:  make(map[string]*Session),
		current:   root,
	}
}

// Use wraps the differ in the given middleware. Later middleware runs
// closer to the differ. Must be called before the first Publish.
func (s *Server) Use(mw middleware.Middleware) {
	s.mws = append(s.mws, mw)
	s.reconcile = middleware.Chain(middleware.Reconciler(), s.mws...)
}

// SetLogger sets the server logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger.With("component", "live")
}

// Config returns the server configuration.
func (s *Server) Config() *Config {
	return s.config
}

// History returns the patch history ring buffer.
func (s *Server) History() *PatchHistory {
	return s.history
}

// Seq returns the current sequence number.
func (s *Server) Seq() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}

// Current returns the most recently published tree.
func (s *Server) Current() *vdom.VNode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SessionCount returns the number of connected sessions.
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Publish diffs the current tree against next, broadcasts the resulting
// patch frame to all sessions, and makes next the current tree. A publish
// that produces no patches does not consume a sequence number.
func (s *Server) Publish(ctx context.Context, next *vdom.VNode) {
	s.mu.Lock()

	patches := s.reconcile(ctx, s.current, next)
	s.current = next
	if len(patches) == 0 {
		s.mu.Unlock()
		return
	}

	s.seq++
	seq := s.seq
	payload := wire.EncodePatchList(wire.NewPatchList(seq, wire.FromPatches(patches)))
	frame := wire.NewFrame(wire.FramePatches, payload).Encode()
	s.history.Add(seq, frame)

	targets := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		targets = append(targets, sess)
	}
	s.mu.Unlock()

	for _, sess := range targets {
		sess.Send(frame)
	}
	s.logger.Debug("published", "seq", seq, "patches", middleware.CountPatches(patches), "sessions", len(targets))
}

// Router returns the HTTP routes: the rendered page at /, the websocket
// patch stream at /live, the client script, and a health endpoint.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/live", s.handleLive)
	r.Get("/healthz", s.handleHealth)
	r.Get(s.config.ClientScriptPath, s.handleClientScript)
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	body := s.current
	s.mu.RUnlock()

	page := render.PageData{
		Body:         body,
		Title:        s.config.Title,
		SessionID:    generateSessionID(),
		ClientScript: s.config.ClientScriptPath,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderPage(w, page); err != nil {
		s.logger.Error("page render failed", "error", err)
	}
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	id := r.URL.Query().Get("session")
	if id == "" {
		id = generateSessionID()
	}

	sess := newSession(id, conn, s)

	s.mu.Lock()
	if old, ok := s.sessions[id]; ok {
		old.Close(wire.CloseSessionExpired, "superseded")
	}
	s.sessions[id] = sess
	snapshot := s.snapshotFrameLocked()
	s.mu.Unlock()

	sess.logger.Info("session connected")

	go sess.writeLoop()
	sess.Send(snapshot)
	sess.readLoop()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleClientScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(clientScript))
}

// snapshotFrameLocked encodes the current tree as a snapshot frame.
// Caller must hold s.mu.
func (s *Server) snapshotFrameLocked() []byte {
	payload := wire.EncodeSnapshot(wire.NewSnapshot(s.seq, wire.FromVNode(s.current)))
	return wire.NewFrame(wire.FrameSnapshot, payload).Encode()
}

// resync replays missed patch frames to the session, or falls back to a
// full snapshot when the history no longer covers the gap.
func (s *Server) resync(sess *Session, lastSeq uint64) {
	s.mu.RLock()
	seq := s.seq
	frames := s.history.GetFrames(lastSeq, seq)
	var snapshot []byte
	if frames == nil {
		snapshot = s.snapshotFrameLocked()
	}
	s.mu.RUnlock()

	if frames == nil {
		sess.logger.Info("resync via snapshot", "last_seq", lastSeq, "seq", seq)
		sess.Send(snapshot)
		return
	}

	sess.logger.Info("resync via replay", "last_seq", lastSeq, "frames", len(frames))
	for _, frame := range frames {
		if err := sess.Send(frame); err != nil {
			return
		}
	}
}

func (s *Server) removeSession(sess *Session) {
	s.mu.Lock()
	if current, ok := s.sessions[sess.ID]; ok && current == sess {
		delete(s.sessions, sess.ID)
	}
	s.mu.Unlock()
	sess.logger.Info("session disconnected")
}

// Run starts the HTTP server and blocks until a shutdown signal or a
// listener error.
func (s *Server) Run() error {
	if err := s.config.Validate(); err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Router(),
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-shutdown:
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes all sessions and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Close(wire.CloseServerShutdown, "server shutting down")
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}
