package handlers

import (
	"net/http"

	"github.com/yasinhessnawi1/sharecloud/internal/ocs"
)

// ThemingHandler serves the instance branding
type ThemingHandler struct {
	branding BrandingInterface
	ocs      OCSResponderInterface
}

// NewThemingHandler creates a new ThemingHandler
func NewThemingHandler(branding BrandingInterface, responder OCSResponderInterface) *ThemingHandler {
	return &ThemingHandler{
		branding: branding,
		ocs:      responder,
	}
}

// GetTheming returns every branding value as OCS data
func (h *ThemingHandler) GetTheming(w http.ResponseWriter, r *http.Request) {
	h.ocs.Respond(w, r, ocs.Data(h.branding.Snapshot()))
}
