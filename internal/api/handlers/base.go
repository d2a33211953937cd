// Package handlers implements the REST API endpoint handlers for minidns.
//
// REST API Endpoints:
//
// DNS Records:
//   - POST   /api/v1/dns                      - Create an A or CNAME record
//   - GET    /api/v1/dns/:hostname/records    - List records at a hostname (no chasing)
//   - GET    /api/v1/dns/:hostname            - Resolve a hostname to IPv4 addresses
//   - DELETE /api/v1/dns/:hostname            - Delete an exact (hostname, type, value) record
//
// System:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats  - Server statistics (uptime, memory, goroutines, host info)
//
// Authentication:
//
// All /dns endpoints support optional API key authentication via the
// X-API-Key header when a key is configured. /health stays public so load
// balancers can probe it.
//
// @title MiniDNS Management API
// @version 1.0
// @description REST API for managing an authoritative A/CNAME record store with CNAME-chasing resolution.
//
// @contact.name MiniDNS Support
// @contact.url https://github.com/minidns-io/minidns
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"time"

	"github.com/minidns-io/minidns/internal/engine"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	engine    *engine.Engine
	logger    *slog.Logger
	startTime time.Time
}

// New creates a new Handler over the given engine.
func New(eng *engine.Engine, logger *slog.Logger) *Handler {
	return &Handler{
		engine:    eng,
		logger:    logger,
		startTime: time.Now(),
	}
}

// logError logs an error message if a logger is available.
func (h *Handler) logError(msg string, err error) {
	if h.logger != nil {
		h.logger.Error(msg, "err", err)
	}
}
