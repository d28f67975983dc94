// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines constants related to error handling, user-facing
// messages and log categories. User-facing messages stay informative without
// revealing implementation details.
package constants

// User-Facing Error Messages define standardized messages shown to API clients.
const (
	// MsgAuthRequired indicates that authentication is required for the requested resource.
	MsgAuthRequired = "Authentication required"

	// MsgAccessDenied indicates insufficient permissions.
	MsgAccessDenied = "You don't have permission to access this resource"

	// MsgInternalServerError is a generic message for server errors.
	MsgInternalServerError = "An internal server error occurred"

	// MsgTokenExpired indicates the authentication token has expired.
	MsgTokenExpired = "Authentication token has expired"

	// MsgInvalidToken indicates the token is invalid or malformed.
	MsgInvalidToken = "Invalid token"

	// MsgRequestBodyTooLarge indicates the request exceeds the maximum allowed size.
	MsgRequestBodyTooLarge = "Request body too large"

	// MsgEmptyRequestBody indicates the request body is empty when content is required.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates the request body contains invalid JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgResourceNotFound indicates the requested resource does not exist.
	MsgResourceNotFound = "The requested resource could not be found"

	// MsgMethodNotAllowed indicates the HTTP method is not supported.
	MsgMethodNotAllowed = "This method is not allowed for this resource"

	// MsgAppNotInstalled indicates an app id that is not known to the instance.
	MsgAppNotInstalled = "App is not installed"

	// MsgAppCannotBeDisabled indicates an attempt to disable an always-enabled app.
	MsgAppCannotBeDisabled = "App can't be disabled"

	// MsgUnsupportedFormat indicates an OCS format other than json or xml.
	MsgUnsupportedFormat = "Unsupported response format"

	// MsgUnknownLanguage indicates an l10n table that does not exist.
	MsgUnknownLanguage = "No translation table for this app and language"
)

// Database Error Codes define specific error codes returned by the database.
const (
	// PGErrorDuplicateConstraint is the PostgreSQL error code for unique constraint violations.
	PGErrorDuplicateConstraint = "23505"

	// PGErrorForeignKeyConstraint is the PostgreSQL error code for foreign key violations.
	PGErrorForeignKeyConstraint = "23503"

	// PGErrorNotNullConstraint is the PostgreSQL error code for not-null violations.
	PGErrorNotNullConstraint = "23502"

	// MySQLErrorDuplicateEntry is the MySQL error number for duplicate entries.
	MySQLErrorDuplicateEntry = 1062
)

// Log Categories define the event names used in structured logs.
const (
	// LogCategoryApps marks app manager events.
	LogCategoryApps = "apps"

	// LogEventAppEnabled is logged when an app is enabled.
	LogEventAppEnabled = "app_enabled"

	// LogEventAppDisabled is logged when an app is disabled.
	LogEventAppDisabled = "app_disabled"

	// LogRedactedValue is the placeholder for redacted sensitive information.
	LogRedactedValue = "[REDACTED]"
)
