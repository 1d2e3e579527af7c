package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/josephtaylor/tensorians-sales/internal/adapter"
	"github.com/josephtaylor/tensorians-sales/internal/logger"
	"github.com/josephtaylor/tensorians-sales/internal/pipeline"
)

// Config holds the health server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StatsFunc supplies the current pipeline counters for /status
type StatsFunc func() pipeline.Stats

// Server exposes the liveness and status endpoints
type Server struct {
	config     Config
	service    string
	slugs      []string
	stats      StatsFunc
	clock      adapter.Clock
	startedAt  time.Time
	httpServer *http.Server
}

type statusResponse struct {
	Service       string         `json:"service"`
	StartedAt     string         `json:"started_at"`
	UptimeSeconds int64          `json:"uptime_seconds"`
	Slugs         []string       `json:"slugs"`
	Pipeline      pipeline.Stats `json:"pipeline"`
}

// New creates a new health server
func New(cfg Config, service string, slugs []string, stats StatsFunc, clock adapter.Clock) *Server {
	return &Server{
		config:    cfg,
		service:   service,
		slugs:     slugs,
		stats:     stats,
		clock:     clock,
		startedAt: clock.Now(),
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(Recovery())
	router.Use(Logger())

	router.GET("/healthz", s.handleHealthz)
	router.GET("/status", s.handleStatus)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting health server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down health server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse{
		Service:       s.service,
		StartedAt:     s.startedAt.UTC().Format(time.RFC3339),
		UptimeSeconds: int64(s.clock.Since(s.startedAt).Seconds()),
		Slugs:         s.slugs,
		Pipeline:      s.stats(),
	})
}
