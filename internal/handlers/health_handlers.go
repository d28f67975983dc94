package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

// HealthHandler serves the unauthenticated status endpoints
type HealthHandler struct {
	db          HealthCheckerInterface
	version     string
	environment string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db HealthCheckerInterface, version, environment string) *HealthHandler {
	return &HealthHandler{
		db:          db,
		version:     version,
		environment: environment,
	}
}

// Health reports whether the database is reachable
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.HealthCheck(r.Context()); err != nil {
		log.Error().Err(err).Msg("Health check failed")
		utils.ServiceUnavailable(w, "Service is not healthy")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": h.version,
	})
}

// Version reports the build version and environment
func (h *HealthHandler) Version(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"version":     h.version,
		"environment": h.environment,
	})
}
