package server

import (
	"context"

	"github.com/go-chi/chi/v5"
)

// ServerInterface defines the server lifecycle, so callers such as cmd can be
// tested against a fake.
type ServerInterface interface {
	// SetupRoutes configures the HTTP routes for the server
	SetupRoutes()

	// GetRouter returns the configured router for request handling
	GetRouter() chi.Router

	// Start begins listening for HTTP requests
	Start() error

	// Shutdown gracefully stops the server
	Shutdown(ctx context.Context) error

	// SetupMaintenanceTasks starts background maintenance
	SetupMaintenanceTasks()
}

var _ ServerInterface = (*Server)(nil)
