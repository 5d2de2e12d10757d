package web

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-worm/internal/canvas"
	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/host"
	"github.com/vovakirdan/tui-worm/internal/worm"
)

// Session is one game driven by a server-side frame ticker. Every access to
// the game goes through mu, so frames and touches never interleave.
type Session struct {
	ID      string
	Created time.Time

	mu      sync.Mutex
	game    *worm.Game
	raster  *canvas.Raster
	frames  *host.FrameQueue
	touches *host.Touches

	cancel  context.CancelFunc
	done    chan struct{}
	endedAt time.Time // set once the game is over, guarded by mu
}

func newSession(settings config.Settings, rt core.RuntimeConfig, logger *log.Logger) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		Created: time.Now(),
		raster:  canvas.NewRaster(1, 1),
		frames:  host.NewFrameQueue(),
		touches: host.NewTouches(),
		done:    make(chan struct{}),
	}
	env := host.Env{Surface: s.raster, Frames: s.frames, Input: s.touches}
	s.game = worm.New(settings, env, rt, logger.With("session", s.ID))
	s.game.Start()
	return s
}

// run flushes frames at fps until the game ends or ctx is cancelled.
func (s *Session) run(ctx context.Context, fps int) {
	defer close(s.done)

	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			if !s.frame(t) {
				return
			}
		}
	}
}

// frame runs one display frame and reports whether the game still runs.
func (s *Session) frame(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames.Flush(float64(t.Sub(s.Created)) / float64(time.Millisecond))
	if !s.game.Running() {
		s.endedAt = t
		return false
	}
	return true
}

// ended returns when the game was won or lost, and false while it runs.
func (s *Session) ended() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.endedAt, !s.endedAt.IsZero()
}

func (s *Session) stop() {
	if s.cancel != nil {
		s.cancel()
	}
	<-s.done
}

// Snapshot returns the session state.
func (s *Session) Snapshot() worm.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// TouchStart forwards a touch start to the game.
func (s *Session) TouchStart(e core.TouchEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touches.Start(e)
}

// TouchEnd forwards a touch end to the game.
func (s *Session) TouchEnd(e core.TouchEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touches.End(e)
}

// WriteFrame encodes the last painted frame as PNG. A positive width
// downscales it, keeping the aspect ratio.
func (s *Session) WriteFrame(w io.Writer, width int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if width <= 0 || width >= s.raster.Width() {
		return s.raster.EncodePNG(w)
	}
	img := s.raster.Thumbnail(width, s.raster.Height())
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("web: cannot encode frame: %w", err)
	}
	return nil
}
