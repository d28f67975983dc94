// Package constants provides shared constant values used throughout the application.
//
// The general_const.go file defines general-purpose constants related to routing
// and request parameters.
package constants

// Base Routes define the root URL paths for different parts of the API.
const (
	// OCSBasePath is the root path prefix for all OCS endpoints.
	OCSBasePath = "/ocs/v1.php"

	// HealthPath is the endpoint for health checks and system status.
	HealthPath = "/health"

	// VersionPath reports the build version.
	VersionPath = "/version"
)

// URL Parameters define path parameter names used in route definitions.
const (
	// ParamAppID is the URL parameter for app identifiers.
	ParamAppID = "appid"

	// ParamApp is the URL parameter naming the app whose l10n table is requested.
	ParamApp = "app"

	// ParamLang is the URL parameter for language codes.
	ParamLang = "lang"
)

// Query Parameters define common query string parameter names.
const (
	// QueryParamFormat selects the OCS serialization format.
	QueryParamFormat = "format"

	// QueryParamFilter selects enabled or disabled apps.
	QueryParamFilter = "filter"

	// QueryParamLang overrides Accept-Language.
	QueryParamLang = "lang"
)

// App list filters.
const (
	FilterEnabled  = "enabled"
	FilterDisabled = "disabled"
)

// Context keys shared between auth and logging.
const (
	UserIDContextKey    = "user_id"
	RequestIDContextKey = "request_id"
)
