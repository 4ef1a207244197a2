// Package api provides the fabric's HTTP surface: the read-only whiteboard
// subscriber endpoints (server-sent events and a full-duplex socket), the
// user-action ingress and the health endpoint.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thegaltinator/alfred-fabric/pkg/observability"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

// WhiteboardBus is the whiteboard contract the API needs: replay, live tail
// and the single ingress write path.
type WhiteboardBus interface {
	Append(ctx context.Context, userID, threadID string, values map[string]any) (string, error)
	Tail(ctx context.Context, userID, afterID string) ([]whiteboard.Event, string, error)
	ReadRange(ctx context.Context, userID, afterID string, count int64) ([]whiteboard.Event, error)
}

// HealthChecker reports one dependency's liveness for the health endpoint.
type HealthChecker func(ctx context.Context) error

// Server is the HTTP API server.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	bus        WhiteboardBus
	logger     *slog.Logger

	healthChecks map[string]HealthChecker
	workerStats  map[string]*observability.Metrics
}

// NewServer creates the API server and registers its routes.
func NewServer(bus WhiteboardBus, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:       router,
		bus:          bus,
		logger:       logger.With("component", "api"),
		healthChecks: make(map[string]HealthChecker),
		workerStats:  make(map[string]*observability.Metrics),
	}
	s.setupRoutes()
	return s
}

// AddHealthCheck registers a named dependency check for GET /health.
func (s *Server) AddHealthCheck(name string, check HealthChecker) {
	s.healthChecks[name] = check
}

// AddWorkerMetrics exposes a worker's counters under GET /health.
func (s *Server) AddWorkerMetrics(name string, m *observability.Metrics) {
	s.workerStats[name] = m
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/wb/stream", s.handleStream)
	s.router.GET("/wb/ws", s.handleWS)
	s.router.POST("/wb/user_action", s.handleUserAction)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until Shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("http server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := gin.H{}
	for name, check := range s.healthChecks {
		if err := check(ctx); err != nil {
			deps[name] = gin.H{"status": "unhealthy", "error": err.Error()}
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = gin.H{"status": "healthy"}
	}

	workers := gin.H{}
	for name, m := range s.workerStats {
		workers[name] = m.Snapshot()
	}

	body := gin.H{"dependencies": deps, "workers": workers}
	if status == http.StatusOK {
		body["status"] = "healthy"
	} else {
		body["status"] = "unhealthy"
	}
	c.JSON(status, body)
}
