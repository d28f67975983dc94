// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits used throughout the application.
// These constants provide fallback settings for configuration, the branding defaults
// and the OCS controller defaults.
package constants

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultDBDriver is the database driver used when none is configured.
	DefaultDBDriver = DriverMySQL

	// DefaultDBMaxConnections is the default maximum number of database connections.
	DefaultDBMaxConnections = 20

	// DefaultDBMinConnections is the default minimum number of idle database connections.
	DefaultDBMinConnections = 5

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"

	// DefaultJWTIssuer is the issuer claim expected on bearer tokens.
	DefaultJWTIssuer = "sharecloud"

	// BearerTokenPrefix is the prefix for Authorization header bearer tokens.
	BearerTokenPrefix = "Bearer "

	// DefaultLanguage is the language used when negotiation finds nothing better.
	DefaultLanguage = "en"
)

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// File Size Limits define the maximum allowed sizes for request bodies.
const (
	// MaxRequestBodySize is the maximum size in bytes for HTTP request bodies.
	MaxRequestBodySize = 1048576 // 1MB in bytes
)

// Branding defaults used by the theme provider when the configuration leaves a value empty.
const (
	DefaultThemeName             = "ShareCloud"
	DefaultThemeHTMLName         = "<b>Share</b>Cloud"
	DefaultThemeEntity           = "ShareCloud"
	DefaultThemeBaseURL          = "https://sharecloud.org"
	DefaultThemeSyncClientURL    = "https://sharecloud.org/sync-clients/"
	DefaultThemeIOSClientURL     = "https://itunes.apple.com/us/app/sharecloud/id543672169?mt=8"
	DefaultThemeAndroidClientURL = "https://play.google.com/store/apps/details?id=org.sharecloud.android"
	DefaultThemeDocBaseURL       = "https://doc.sharecloud.org"
	DefaultThemeSlogan           = "A safe home for all your data"
	DefaultThemeITunesAppID      = "543672169"
)

// OCS controller defaults define the CORS policy applied to API controllers.
const (
	// DefaultCORSMethods is the comma separated list of verbs allowed cross-origin.
	DefaultCORSMethods = "PUT, POST, GET, DELETE, PATCH"

	// DefaultCORSAllowedHeaders is the comma separated list of headers allowed cross-origin.
	DefaultCORSAllowedHeaders = "Authorization, Content-Type, Accept"
)

// Apps shipped with the server.
const (
	AppFiles           = "files"
	AppFilesSharing    = "files_sharing"
	AppProvisioningAPI = "provisioning_api"
)

// Identifier limits.
const (
	// MaxAppIDLength matches the width of the appconfig.appid column.
	MaxAppIDLength = 32
)
