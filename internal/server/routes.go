package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/yasinhessnawi1/sharecloud/internal/auth"
	"github.com/yasinhessnawi1/sharecloud/internal/constants"
	"github.com/yasinhessnawi1/sharecloud/internal/middleware"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

// SetupRoutes configures the routes for the application.
//
// The configured routes include:
// - Health check and version endpoints (unprotected)
// - The l10n scripts loaded by the web client (unprotected)
// - The OCS API: app provisioning, theming and l10n tables (bearer token)
//
// OCS routes answer errors inside the OCS envelope; the rest use the JSON error format.
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	// Base middleware
	r.Use(middleware.RequestID())
	r.Use(chimiddleware.RealIP)
	if s.Config.Logging.RequestLog {
		r.Use(middleware.RequestLogger())
	}
	r.Use(middleware.Recovery(nil))
	r.Use(middleware.SecurityHeaders())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.NotFound(w, "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.MethodNotAllowed(w)
	})

	// Health check and version routes (unprotected)
	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.NoCache)
		r.Get(constants.HealthPath, s.Handlers.HealthHandler.Health)
		r.Get(constants.VersionPath, s.Handlers.HealthHandler.Version)
	})

	// Translations for the web client, cached by ETag
	r.Get("/apps/{"+constants.ParamApp+"}/l10n/{"+constants.ParamLang+"}.js", s.Handlers.L10nHandler.GetScript)

	// OCS API
	r.Route(constants.OCSBasePath, func(r chi.Router) {
		// Preflight requests carry no credentials, so CORS runs before auth
		r.Use(s.OCS.CORS())
		r.Use(middleware.Recovery(s.OCS.RespondError))
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			s.OCS.RespondError(w, r, utils.NewNotFoundError("Endpoint", r.URL.Path))
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(s.OCS.RespondError, auth.NewJWTAuthProvider(s.JWTService)))

			r.Get("/cloud/user/apps", s.Handlers.AppsHandler.GetUserApps)
			r.Get("/cloud/theming", s.Handlers.ThemingHandler.GetTheming)
			r.Get("/cloud/l10n/{"+constants.ParamApp+"}", s.Handlers.L10nHandler.GetTable)

			// App administration
			r.Route("/cloud/apps", func(r chi.Router) {
				r.Use(auth.RequireGroup(s.Config.Apps.AdminGroup, s.OCS.RespondError))

				r.Get("/", s.Handlers.AppsHandler.ListApps)
				r.Get("/{"+constants.ParamAppID+"}", s.Handlers.AppsHandler.GetApp)
				r.Post("/{"+constants.ParamAppID+"}", s.Handlers.AppsHandler.EnableApp)
				r.Delete("/{"+constants.ParamAppID+"}", s.Handlers.AppsHandler.DisableApp)
			})
		})
	})

	s.router = r
}

// GetRouter returns the configured router.
func (s *Server) GetRouter() chi.Router {
	return s.router
}
