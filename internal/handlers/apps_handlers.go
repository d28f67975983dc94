package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yasinhessnawi1/sharecloud/internal/auth"
	"github.com/yasinhessnawi1/sharecloud/internal/constants"
	"github.com/yasinhessnawi1/sharecloud/internal/ocs"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

// EnableAppRequest is the optional body of an enable request.
// Without groups the app is enabled for everyone.
type EnableAppRequest struct {
	Groups []string `json:"groups" validate:"omitempty,max=64,dive,required,max=64"`
}

// AppsHandler handles the provisioning routes under /cloud/apps
type AppsHandler struct {
	appService AppServiceInterface
	ocs        OCSResponderInterface
}

// NewAppsHandler creates a new AppsHandler
func NewAppsHandler(appService AppServiceInterface, responder OCSResponderInterface) *AppsHandler {
	return &AppsHandler{
		appService: appService,
		ocs:        responder,
	}
}

// ListApps returns the installed apps, optionally filtered by ?filter=enabled|disabled
func (h *AppsHandler) ListApps(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get(constants.QueryParamFilter)

	apps, err := h.appService.ListApps(r.Context(), filter)
	if err != nil {
		h.ocs.RespondError(w, r, err)
		return
	}

	h.ocs.Respond(w, r, ocs.Data(map[string]interface{}{"apps": apps}))
}

// GetApp returns the installed and enabled state of one app
func (h *AppsHandler) GetApp(w http.ResponseWriter, r *http.Request) {
	appID, err := appIDParam(r)
	if err != nil {
		h.ocs.RespondError(w, r, err)
		return
	}

	status, err := h.appService.GetAppStatus(r.Context(), appID)
	if err != nil {
		h.ocs.RespondError(w, r, err)
		return
	}

	h.ocs.Respond(w, r, ocs.Data(status))
}

// EnableApp enables an app, for everyone or for the groups in the request body
func (h *AppsHandler) EnableApp(w http.ResponseWriter, r *http.Request) {
	appID, err := appIDParam(r)
	if err != nil {
		h.ocs.RespondError(w, r, err)
		return
	}

	var req EnableAppRequest
	if hasBody(r) {
		if err := utils.DecodeAndValidate(r, &req); err != nil {
			h.ocs.RespondError(w, r, err)
			return
		}
	}

	if len(req.Groups) > 0 {
		err = h.appService.EnableAppForGroups(r.Context(), appID, req.Groups)
	} else {
		err = h.appService.EnableApp(r.Context(), appID)
	}
	if err != nil {
		h.ocs.RespondError(w, r, err)
		return
	}

	h.ocs.Respond(w, r, ocs.Params{})
}

// DisableApp disables an app
func (h *AppsHandler) DisableApp(w http.ResponseWriter, r *http.Request) {
	appID, err := appIDParam(r)
	if err != nil {
		h.ocs.RespondError(w, r, err)
		return
	}

	if err := h.appService.DisableApp(r.Context(), appID); err != nil {
		h.ocs.RespondError(w, r, err)
		return
	}

	h.ocs.Respond(w, r, ocs.Params{})
}

// GetUserApps returns the apps enabled for the authenticated user
func (h *AppsHandler) GetUserApps(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.GetUser(r)
	if !ok {
		h.ocs.RespondError(w, r, utils.NewUnauthorizedError(""))
		return
	}

	apps, err := h.appService.GetEnabledAppsForUser(r.Context(), user)
	if err != nil {
		h.ocs.RespondError(w, r, err)
		return
	}

	h.ocs.Respond(w, r, ocs.Data(map[string]interface{}{"apps": apps}))
}

func appIDParam(r *http.Request) (string, error) {
	appID := chi.URLParam(r, constants.ParamAppID)
	if err := utils.ValidateAppID(appID); err != nil {
		return "", err
	}
	return appID, nil
}

// hasBody reports whether the client sent a request body
func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}
