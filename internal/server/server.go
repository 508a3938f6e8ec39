// Package server exposes the showcase page and its rate-limit status over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stahnma/gh-showcase/internal/widget"
)

// Server serves the page an Orchestrator maintains.
type Server struct {
	orch   *widget.Orchestrator
	title  string
	logger widget.Logger
}

// New creates a Server. The orchestrator is expected to be started.
func New(orch *widget.Orchestrator, title string, logger widget.Logger) *Server {
	return &Server{orch: orch, title: title, logger: logger}
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status    string `json:"status"`
	CanUseAPI bool   `json:"can_use_api"`
}

// ReloadResponse is returned by POST /api/reload.
type ReloadResponse struct {
	ID string `json:"id"`
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/", s.page)
	router.GET("/healthz", s.health)

	api := router.Group("/api")
	{
		api.GET("/ratelimit", s.rateLimit)
		api.GET("/page", s.snapshot)
		api.POST("/reload", s.reload)
	}
	return router
}

func (s *Server) page(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.orch.Document().Render(&buf, s.title); err != nil {
		s.logger.Printf("Error rendering page: %v", err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		CanUseAPI: s.orch.Gate().CanUseAPI(),
	})
}

func (s *Server) rateLimit(c *gin.Context) {
	c.JSON(http.StatusOK, s.orch.Gate().Status())
}

func (s *Server) snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, s.orch.Document().Snapshot())
}

func (s *Server) reload(c *gin.Context) {
	doc := s.orch.Reload()
	c.JSON(http.StatusAccepted, ReloadResponse{ID: doc.ID()})
}

// ListenAndServe serves on addr until ctx is done, then shuts down, giving
// outstanding requests shutdownTimeout to complete.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Printf("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Printf("Server exited")
	return nil
}
