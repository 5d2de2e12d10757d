// Package web hosts worm sessions over HTTP. The server runs each game and
// renders its frames; clients post touches and fetch PNG frames.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
)

// ErrTooManySessions is returned when the session limit is reached.
var ErrTooManySessions = errors.New("web: too many sessions")

// Config holds configuration for the HTTP host.
type Config struct {
	Settings    config.Settings
	FPS         int
	Seed        int64 // 0 picks a time based seed per session
	MaxSessions int

	// EndedTTL is how long a finished game stays readable before it is
	// dropped. Finished games also give way when the server is full.
	EndedTTL time.Duration

	Logger *log.Logger
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Settings:    config.DefaultSettings(),
		FPS:         60,
		MaxSessions: 64,
		EndedTTL:    5 * time.Minute,
	}
}

// Server owns the sessions and their frame tickers.
type Server struct {
	cfg    Config
	logger *log.Logger
	engine *gin.Engine

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	settings config.Settings
	sessions map[string]*Session
}

// NewServer creates a server. Call Close to stop every session.
func NewServer(cfg Config) *Server {
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultConfig().MaxSessions
	}
	if cfg.EndedTTL <= 0 {
		cfg.EndedTTL = DefaultConfig().EndedTTL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:      cfg,
		logger:   logger.WithPrefix("worm-web"),
		ctx:      ctx,
		cancel:   cancel,
		settings: cfg.Settings,
		sessions: make(map[string]*Session),
	}
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// SetSettings replaces the settings for sessions created afterwards.
func (s *Server) SetSettings(v config.Settings) {
	s.mu.Lock()
	s.settings = v
	s.mu.Unlock()
}

// Create starts a session for a window of the given page size.
func (s *Server) Create(width, height float64) (*Session, error) {
	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{
		WindowW:   width,
		WindowH:   height,
		FrameRate: s.cfg.FPS,
		Seed:      seed,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reapLocked(time.Now())
	if len(s.sessions) >= s.cfg.MaxSessions {
		return nil, ErrTooManySessions
	}

	sess := newSession(s.settings, rt, s.logger)
	ctx, cancel := context.WithCancel(s.ctx)
	sess.cancel = cancel
	s.sessions[sess.ID] = sess
	go sess.run(ctx, s.cfg.FPS)

	s.logger.Info("session created", "id", sess.ID, "seed", seed, "window", fmt.Sprintf("%gx%g", width, height))
	return sess, nil
}

// reapLocked drops finished games older than EndedTTL and, while the server
// is full, the finished game that ended first. Running games are never
// dropped. s.mu must be held.
func (s *Server) reapLocked(now time.Time) {
	var oldestID string
	var oldest time.Time
	for id, sess := range s.sessions {
		at, ok := sess.ended()
		if !ok {
			continue
		}
		if now.Sub(at) >= s.cfg.EndedTTL {
			s.dropLocked(id, "expired")
			continue
		}
		if oldestID == "" || at.Before(oldest) {
			oldestID, oldest = id, at
		}
	}
	if oldestID != "" && len(s.sessions) >= s.cfg.MaxSessions {
		s.dropLocked(oldestID, "evicted")
	}
}

// dropLocked forgets a session whose ticker has already exited.
func (s *Server) dropLocked(id, reason string) {
	sess := s.sessions[id]
	delete(s.sessions, id)
	sess.stop()
	s.logger.Debug("session dropped", "id", id, "reason", reason)
}

// Get returns a session by id.
func (s *Server) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete stops and forgets a session. It reports whether it existed.
func (s *Server) Delete(id string) bool {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return false
	}
	sess.stop()
	s.logger.Info("session deleted", "id", id)
	return true
}

// Len returns the number of sessions.
func (s *Server) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops every session ticker.
func (s *Server) Close() {
	s.cancel()

	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		<-sess.done
	}
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully and stops all sessions.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	defer s.Close()

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err, ok := <-errc:
		if ok {
			return fmt.Errorf("web: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	return nil
}
