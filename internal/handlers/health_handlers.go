package handlers

import (
	"net/http"
	"time"

	"github.com/tinhat/dirtysecrets/internal/config"
	"github.com/tinhat/dirtysecrets/internal/constants"
	"github.com/tinhat/dirtysecrets/internal/utils"
)

// HealthHandler reports service and store health
type HealthHandler struct {
	db      HealthChecker
	cfg     *config.AppConfig
	started time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db HealthChecker, cfg *config.AppConfig) *HealthHandler {
	return &HealthHandler{
		db:      db,
		cfg:     cfg,
		started: time.Now(),
	}
}

// Health probes the database and reports overall service status
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":   "ok",
		"database": "ok",
		"uptime":   time.Since(h.started).String(),
	}

	if err := h.db.HealthCheck(r.Context()); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		utils.JSON(w, constants.StatusServiceUnavailable, status)
		return
	}

	utils.JSON(w, constants.StatusOK, status)
}

// Version reports the application name, version and environment
func (h *HealthHandler) Version(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, constants.StatusOK, map[string]interface{}{
		"name":        h.cfg.App.Name,
		"version":     h.cfg.App.Version,
		"environment": h.cfg.App.Environment,
	})
}
