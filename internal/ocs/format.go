package ocs

import (
	"net/http"
	"strings"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
)

// NegotiateFormat picks the response format from the ?format query parameter,
// falling back to fallback. The returned value may be unsupported; Build reports that.
func NegotiateFormat(r *http.Request, fallback string) string {
	if format := strings.TrimSpace(r.URL.Query().Get(constants.QueryParamFormat)); format != "" {
		return strings.ToLower(format)
	}
	if fallback == "" {
		return constants.OCSDefaultFormat
	}
	return fallback
}
