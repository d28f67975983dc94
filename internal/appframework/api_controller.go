package appframework

import (
	"net/http"
	"strings"

	"github.com/rs/cors"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
)

// CORSPolicy describes which cross-origin requests an API controller accepts.
type CORSPolicy struct {
	// Methods is a comma separated list of HTTP verbs
	Methods string
	// AllowedHeaders is a comma separated list of request headers
	AllowedHeaders string
	// MaxAge is how long a preflight result may be cached, in seconds
	MaxAge int

	AllowedOrigins   []string
	AllowCredentials bool
}

// DefaultCORSPolicy returns the policy used when an API controller is created without one.
func DefaultCORSPolicy() CORSPolicy {
	return CORSPolicy{
		Methods:        constants.DefaultCORSMethods,
		AllowedHeaders: constants.DefaultCORSAllowedHeaders,
		MaxAge:         constants.DefaultCORSMaxAge,
	}
}

// ApiController is the base for controllers serving RESTful APIs to websites
// and web apps on other origins.
type ApiController struct {
	AppName string
	Policy  CORSPolicy

	cors *cors.Cors
}

// NewApiController creates an ApiController. Empty policy fields fall back to the defaults.
func NewApiController(appName string, policy CORSPolicy) *ApiController {
	defaults := DefaultCORSPolicy()
	if policy.Methods == "" {
		policy.Methods = defaults.Methods
	}
	if policy.AllowedHeaders == "" {
		policy.AllowedHeaders = defaults.AllowedHeaders
	}
	if policy.MaxAge == 0 {
		policy.MaxAge = defaults.MaxAge
	}

	return &ApiController{
		AppName: appName,
		Policy:  policy,
		cors: cors.New(cors.Options{
			AllowedOrigins:   policy.AllowedOrigins,
			AllowedMethods:   splitList(policy.Methods),
			AllowedHeaders:   splitList(policy.AllowedHeaders),
			MaxAge:           policy.MaxAge,
			AllowCredentials: policy.AllowCredentials,
		}),
	}
}

// CORS is the middleware answering preflight requests and decorating actual
// cross-origin responses.
func (c *ApiController) CORS() func(http.Handler) http.Handler {
	return c.cors.Handler
}

func splitList(list string) []string {
	parts := strings.Split(list, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
