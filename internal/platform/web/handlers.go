package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/tui-worm/internal/core"
)

type createRequest struct {
	Width  float64 `json:"width" binding:"required,gt=0"`
	Height float64 `json:"height" binding:"required,gt=0"`
}

type touchPoint struct {
	Identifier int     `json:"identifier"`
	PageX      float64 `json:"pageX"`
	PageY      float64 `json:"pageY"`
}

type touchRequest struct {
	ChangedTouches []touchPoint `json:"changedTouches" binding:"required,min=1"`
}

func (r touchRequest) event() core.TouchEvent {
	e := core.TouchEvent{ChangedTouches: make([]core.TouchPoint, 0, len(r.ChangedTouches))}
	for _, p := range r.ChangedTouches {
		e.ChangedTouches = append(e.ChangedTouches, core.TouchPoint{ID: p.Identifier, PageX: p.PageX, PageY: p.PageY})
	}
	return e
}

type statusResponse struct {
	ID      string `json:"id"`
	State   string `json:"state"`
	Score   int    `json:"score"`
	Level   int    `json:"level"`
	Speed   int    `json:"speed"`
	Message string `json:"message,omitempty"`
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	sessions := r.Group("/sessions")
	sessions.POST("", s.handleCreate)
	sessions.GET("/:id", s.withSession(s.handleStatus))
	sessions.GET("/:id/frame.png", s.withSession(s.handleFrame))
	sessions.POST("/:id/touchstart", s.withSession(s.handleTouch((*Session).TouchStart)))
	sessions.POST("/:id/touchend", s.withSession(s.handleTouch((*Session).TouchEnd)))
	sessions.DELETE("/:id", s.handleDelete)
	return r
}

// requestLogger logs every request through the server logger.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// withSession resolves the :id parameter or answers 404.
func (s *Server) withSession(h func(*gin.Context, *Session)) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := s.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h(c, sess)
	}
}

func status(sess *Session) statusResponse {
	snap := sess.Snapshot()
	return statusResponse{
		ID:      sess.ID,
		State:   snap.State,
		Score:   snap.Score,
		Level:   snap.Level,
		Speed:   snap.Speed,
		Message: snap.Message,
	}
}

func (s *Server) handleCreate(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.Create(req.Width, req.Height)
	if errors.Is(err, ErrTooManySessions) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, status(sess))
}

func (s *Server) handleStatus(c *gin.Context, sess *Session) {
	c.JSON(http.StatusOK, status(sess))
}

func (s *Server) handleFrame(c *gin.Context, sess *Session) {
	width, err := strconv.Atoi(c.DefaultQuery("w", "0"))
	if err != nil || width < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "w must be a non-negative integer"})
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Cache-Control", "no-store")
	c.Status(http.StatusOK)
	if err := sess.WriteFrame(c.Writer, width); err != nil {
		s.logger.Warn("frame encoding failed", "id", sess.ID, "error", err)
	}
}

func (s *Server) handleTouch(deliver func(*Session, core.TouchEvent)) func(*gin.Context, *Session) {
	return func(c *gin.Context, sess *Session) {
		var req touchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		deliver(sess, req.event())
		c.JSON(http.StatusOK, status(sess))
	}
}

func (s *Server) handleDelete(c *gin.Context) {
	if !s.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
