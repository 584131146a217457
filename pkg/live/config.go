package live

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// SessionConfig holds per-connection settings.
type SessionConfig struct {
	// ReadTimeout is the maximum time to wait for a client frame before
	// the connection is considered dead. Heartbeats reset this deadline.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time allowed for a single frame write.
	WriteTimeout time.Duration

	// HeartbeatInterval is how often the server pings the client.
	// Must be shorter than ReadTimeout or healthy connections will expire.
	HeartbeatInterval time.Duration

	// MaxMessageSize is the maximum inbound message size in bytes.
	MaxMessageSize int64

	// MaxPatchHistory is the number of patch frames retained for resync.
	// Clients that fall further behind receive a full snapshot instead.
	MaxPatchHistory int

	// SendQueueSize is the per-session outbound frame queue depth.
	// A session whose queue overflows is closed as too slow.
	SendQueueSize int
}

// DefaultSessionConfig returns a SessionConfig with sensible defaults.
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		MaxMessageSize:    64 * 1024,
		MaxPatchHistory:   100,
		SendQueueSize:     256,
	}
}

// Clone returns a deep copy of the SessionConfig.
func (c *SessionConfig) Clone() *SessionConfig {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// Config holds server settings.
type Config struct {
	// Address is the HTTP listen address.
	Address string

	// ReadBufferSize is the websocket read buffer size in bytes.
	ReadBufferSize int

	// WriteBufferSize is the websocket write buffer size in bytes.
	WriteBufferSize int

	// CheckOrigin validates the Origin header during websocket upgrade.
	// Defaults to SameOriginCheck.
	CheckOrigin func(r *http.Request) bool

	// Session holds per-connection settings.
	Session *SessionConfig

	// Title is the page title used for the initial HTML snapshot.
	Title string

	// ClientScriptPath is the URL path the patch-stream client is served
	// from and referenced by in the rendered page.
	ClientScriptPath string

	// ReadHeaderTimeout bounds reading of HTTP request headers.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":8080",
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		CheckOrigin:       SameOriginCheck,
		Session:           DefaultSessionConfig(),
		Title:             "Weft",
		ClientScriptPath:  "/_weft/client.js",
		ReadHeaderTimeout: 10 * time.Second,
		ShutdownTimeout:   30 * time.Second,
	}
}

// Clone returns a deep copy of the Config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Session = c.Session.Clone()
	return &clone
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Session != nil && c.Session.HeartbeatInterval >= c.Session.ReadTimeout {
		return fmt.Errorf("heartbeat interval (%v) must be less than read timeout (%v)",
			c.Session.HeartbeatInterval, c.Session.ReadTimeout)
	}
	return nil
}

// SameOriginCheck returns true if the request's Origin header matches the
// request Host. Requests without an Origin header (non-browser clients) are
// allowed.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return originURL.Host == r.Host
}
