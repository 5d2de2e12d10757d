package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-worm/internal/config"
)

// SSHServerConfig configures the SSH host.
type SSHServerConfig struct {
	Address string // host:port, e.g. ":23234"

	// HostKeyPath defaults to ~/.worm/host_key and is generated when missing.
	HostKeyPath string

	IdleTimeout time.Duration

	// Settings every visitor starts with until SetSettings replaces them.
	Settings config.Settings

	FPS    int
	Logger *log.Logger
}

// DefaultSSHServerConfig returns the config worm serve starts from.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Settings:    config.DefaultSettings(),
		FPS:         60,
	}
}

// SSHServer gives every SSH connection with a PTY its own worm session.
type SSHServer struct {
	cfg    SSHServerConfig
	server *ssh.Server
	logger *log.Logger
	active atomic.Int64

	mu       sync.RWMutex
	settings config.Settings
}

// NewSSHServer creates the server and its host key directory.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &SSHServer{
		cfg:      cfg,
		logger:   logger.WithPrefix("ssh"),
		settings: cfg.Settings,
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	// Middlewares run last to first: the logger wraps the PTY check, which
	// wraps the Bubble Tea program.
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newProgram),
			activeterm.Middleware(),
			s.logSessions,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return s, nil
}

func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".worm", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// Settings returns the settings new sessions start with.
func (s *SSHServer) Settings() config.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetSettings replaces the settings for sessions that connect afterwards.
// Connected visitors keep playing with theirs.
func (s *SSHServer) SetSettings(v config.Settings) {
	s.mu.Lock()
	s.settings = v
	s.mu.Unlock()
	s.logger.Info("settings reloaded", "active", s.active.Load())
}

// Active returns the number of connected sessions.
func (s *SSHServer) Active() int { return int(s.active.Load()) }

// newProgram builds the terminal host for one SSH session, sized to its PTY
// and rendering with the client's colour profile.
func (s *SSHServer) newProgram(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	m := NewModel(Options{
		Settings: s.Settings(),
		FPS:      s.cfg.FPS,
		Logger:   s.logger.With("user", sess.User()),
		Width:    pty.Window.Width,
		Height:   pty.Window.Height,
		Renderer: bubbletea.MakeRenderer(sess),
	})
	return m, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("session started", "user", sess.User(), "remote", remote, "active", s.active.Add(1))
		defer func() {
			s.logger.Info("session ended",
				"user", sess.User(),
				"remote", remote,
				"duration", time.Since(start).Round(time.Second),
				"active", s.active.Add(-1),
			)
		}()
		next(sess)
	}
}

// ListenAndServe serves until ctx is done or the process gets SIGINT or
// SIGTERM, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("listening", "address", s.cfg.Address)
	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.active.Load())
	return s.Shutdown()
}

// Shutdown stops accepting connections and waits up to ten seconds for the
// connected sessions.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string { return s.cfg.Address }
