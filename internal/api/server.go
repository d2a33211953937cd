// Package api provides the REST API for minidns. It exposes endpoints for
// DNS record management (create, list, resolve, delete), health checks,
// and statistics via a Gin-based HTTP server.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minidns-io/minidns/internal/api/handlers"
	"github.com/minidns-io/minidns/internal/api/middleware"
	"github.com/minidns-io/minidns/internal/config"
	"github.com/minidns-io/minidns/internal/engine"
)

// Server is the minidns REST API server.
//
// Security note: do not expose the API to untrusted networks without
// configuring an API key.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

func New(cfg *config.Config, eng *engine.Engine, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.SlogRequestLogger(logger))
	router.Use(middleware.CORS(cfg.API.CORSAllowOrigins))

	h := handlers.New(eng, logger)
	RegisterRoutes(router, h, cfg)
	MountLanding(router)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: router, httpServer: httpServer}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
