// Package httpapi serves word search over HTTP with gin.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bastiangx/wordfind/internal/logger"
	"github.com/bastiangx/wordfind/internal/metrics"
	"github.com/bastiangx/wordfind/internal/request"
	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/bastiangx/wordfind/pkg/search"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const transport = "http"

// SearchResponse is the body of a successful search.
type SearchResponse struct {
	Query      string   `json:"query"`
	Matches    []string `json:"matches"`
	Count      int      `json:"count"`
	TotalWords int      `json:"totalWords"`
	SearchType string   `json:"searchType"`
}

// Server routes HTTP requests to a search engine.
type Server struct {
	engine *search.Engine
	live   *config.Live
	router *gin.Engine
	log    *log.Logger
}

// NewServer builds the router. Limits are read from live on every request
// so reloaded config applies without a restart.
func NewServer(engine *search.Engine, live *config.Live) *Server {
	metrics.Register()

	s := &Server{
		engine: engine,
		live:   live,
		router: gin.New(),
		log:    logger.New("http"),
	}
	s.router.Use(gin.Recovery())
	s.router.Use(s.requestLogger())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api")
	api.GET("/words/search", s.searchWords)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	s.log.Info("Server stopped")
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"totalWords": s.engine.TotalWords(),
	})
}

func (s *Server) searchWords(c *gin.Context) {
	params := request.Params{
		Query: c.Query("query"),
		Fuzzy: c.Query("fuzzy") == "true",
	}

	var err error
	if params.Limit, err = intParam(c, "limit"); err != nil {
		s.badRequest(c, err)
		return
	}
	if params.MaxDistance, err = intParam(c, "maxDistance"); err != nil {
		s.badRequest(c, err)
		return
	}

	resolved, err := request.Resolve(params, s.live.Load(), s.engine.Options().DefaultMaxDistance)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	out := s.engine.Query(resolved.Query, resolved.Limit, resolved.Fuzzy, resolved.MaxDistance)
	c.JSON(http.StatusOK, SearchResponse{
		Query:      resolved.Query,
		Matches:    out.Matches,
		Count:      out.Count,
		TotalWords: out.TotalWords,
		SearchType: out.Strategy.String(),
	})
}

// intParam reads an optional integer query parameter. Absent or empty
// values return nil.
func intParam(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return &n, nil
}

func (s *Server) badRequest(c *gin.Context, err error) {
	metrics.IncRequestError(transport)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start))
	}
}
