// Package handlers provides the HTTP handlers of the provisioning, theming and
// l10n endpoints. Handlers depend on the narrow interfaces below so tests can
// replace the app manager, catalog and branding with mocks.
package handlers

import (
	"context"
	"net/http"

	"github.com/yasinhessnawi1/sharecloud/internal/defaults"
	"github.com/yasinhessnawi1/sharecloud/internal/l10n"
	"github.com/yasinhessnawi1/sharecloud/internal/models"
)

// AppServiceInterface defines the app manager operations used by the apps handler.
type AppServiceInterface interface {
	// ListApps returns installed app ids, filtered by "enabled", "disabled" or "" for all
	ListApps(ctx context.Context, filter string) ([]string, error)

	// GetAppStatus describes one installed app
	GetAppStatus(ctx context.Context, appID string) (*models.AppStatus, error)

	// EnableApp enables an app for everyone
	EnableApp(ctx context.Context, appID string) error

	// EnableAppForGroups enables an app for members of the listed groups only
	EnableAppForGroups(ctx context.Context, appID string, groups []string) error

	// DisableApp disables an app
	DisableApp(ctx context.Context, appID string) error

	// GetEnabledAppsForUser returns the apps the user may use
	GetEnabledAppsForUser(ctx context.Context, user *models.User) ([]string, error)
}

// TranslationCatalogInterface defines the l10n catalog operations used by the l10n handler.
type TranslationCatalogInterface interface {
	ResolveLanguage(r *http.Request) string
	Table(app, lang string) (*l10n.Table, error)
}

// BrandingInterface is implemented by *defaults.Defaults.
type BrandingInterface interface {
	Snapshot() defaults.Branding
}

// OCSResponderInterface renders handler results as OCS envelopes.
// It is implemented by *appframework.OCSController.
type OCSResponderInterface interface {
	Respond(w http.ResponseWriter, r *http.Request, data interface{})
	RespondError(w http.ResponseWriter, r *http.Request, err error)
}

// HealthCheckerInterface reports whether the database is reachable.
type HealthCheckerInterface interface {
	HealthCheck(ctx context.Context) error
}
