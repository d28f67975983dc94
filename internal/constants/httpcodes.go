// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines HTTP-related constants such as status codes,
// response codes, headers, and content types. These constants keep HTTP
// communication consistent across the plain JSON endpoints and the OCS API.
package constants

// HTTP Status Codes define the standard HTTP response status codes used in the application.
const (
	// StatusOK indicates that the request has succeeded.
	StatusOK = 200

	// StatusNoContent indicates success with no response body.
	StatusNoContent = 204

	// StatusNotModified indicates the cached representation is still valid.
	StatusNotModified = 304

	// StatusBadRequest indicates the server cannot process the request due to client error.
	StatusBadRequest = 400

	// StatusUnauthorized indicates authentication is required and has failed or not been provided.
	StatusUnauthorized = 401

	// StatusForbidden indicates the server understood the request but refuses to authorize it.
	StatusForbidden = 403

	// StatusNotFound indicates the requested resource could not be found.
	StatusNotFound = 404

	// StatusMethodNotAllowed indicates the request method is not supported for the resource.
	StatusMethodNotAllowed = 405

	// StatusConflict indicates the request conflicts with the current state of the server.
	StatusConflict = 409

	// StatusInternalServerError indicates an unexpected condition was encountered.
	StatusInternalServerError = 500

	// StatusServiceUnavailable indicates a dependency such as the database is down.
	StatusServiceUnavailable = 503
)

// API Response Status define the success indicators and codes for the JSON envelope.
const (
	// ResponseSuccess indicates a successful API operation.
	ResponseSuccess = true

	// ResponseFailure indicates a failed API operation.
	ResponseFailure = false

	// CodeBadRequest is the error code for malformed requests.
	CodeBadRequest = "bad_request"

	// CodeUnauthorized is the error code for authentication failures.
	CodeUnauthorized = "unauthorized"

	// CodeForbidden is the error code for authorization failures.
	CodeForbidden = "forbidden"

	// CodeNotFound is the error code for resources that do not exist.
	CodeNotFound = "not_found"

	// CodeMethodNotAllowed is the error code for unsupported HTTP methods.
	CodeMethodNotAllowed = "method_not_allowed"

	// CodeConflict is the error code for resource conflicts.
	CodeConflict = "conflict"

	// CodeInternalError is the error code for server-side errors.
	CodeInternalError = "internal_error"

	// CodeValidationError is the error code for input validation failures.
	CodeValidationError = "validation_error"

	// CodeTokenExpired is the error code for expired authentication tokens.
	CodeTokenExpired = "token_expired"

	// CodeTokenInvalid is the error code for invalid authentication tokens.
	CodeTokenInvalid = "token_invalid"

	// CodeDuplicateResource is the error code for attempts to create duplicate resources.
	CodeDuplicateResource = "duplicate_resource"

	// CodeServiceUnavailable is the error code for failed health checks.
	CodeServiceUnavailable = "service_unavailable"

	// CodeOperationFailed is the error code for requests that could not be carried out.
	CodeOperationFailed = "operation_failed"

	// CodeUnsupportedFormat is the error code for unknown response formats.
	CodeUnsupportedFormat = "unsupported_format"
)

// HTTP Headers define the standard and custom HTTP header names used in the application.
const (
	// HeaderContentType specifies the media type of the resource.
	HeaderContentType = "Content-Type"

	// HeaderContentLength specifies the size of the response body in bytes.
	HeaderContentLength = "Content-Length"

	// HeaderContentDisposition tells the client how to present the response body.
	HeaderContentDisposition = "Content-Disposition"

	// HeaderCacheControl directs caching mechanisms in requests and responses.
	HeaderCacheControl = "Cache-Control"

	// HeaderETag carries the validator of the current representation.
	HeaderETag = "ETag"

	// HeaderIfNoneMatch carries the validators the client already holds.
	HeaderIfNoneMatch = "If-None-Match"

	// HeaderAuthorization contains credentials for authenticating a client.
	HeaderAuthorization = "Authorization"

	// HeaderAccept lists the media types the client can handle.
	HeaderAccept = "Accept"

	// HeaderAcceptLanguage lists the languages the client prefers.
	HeaderAcceptLanguage = "Accept-Language"

	// HeaderXRequestID is a unique identifier for tracking requests.
	HeaderXRequestID = "X-Request-ID"

	// HeaderOCSAPIRequest marks requests issued by OCS clients.
	HeaderOCSAPIRequest = "OCS-APIRequest"

	// HeaderXContentTypeOptions prevents MIME type sniffing.
	HeaderXContentTypeOptions = "X-Content-Type-Options"

	// HeaderXFrameOptions controls whether a page can be displayed in frames.
	HeaderXFrameOptions = "X-Frame-Options"

	// HeaderXXSSProtection enables cross-site scripting filters in browsers.
	HeaderXXSSProtection = "X-XSS-Protection"

	// HeaderReferrerPolicy controls how much referrer information is included with requests.
	HeaderReferrerPolicy = "Referrer-Policy"

	// HeaderContentSecurityPolicy restricts which resources can be loaded.
	HeaderContentSecurityPolicy = "Content-Security-Policy"
)

// Content Types define the MIME types for different response formats.
const (
	// ContentTypeJSON is the MIME type for JSON data.
	ContentTypeJSON = "application/json"

	// ContentTypeJSONUTF8 is the MIME type for OCS JSON bodies.
	ContentTypeJSONUTF8 = "application/json; charset=utf-8"

	// ContentTypeXMLUTF8 is the MIME type for OCS XML bodies.
	ContentTypeXMLUTF8 = "text/xml; charset=UTF-8"

	// ContentTypeJavaScript is the MIME type for l10n scripts.
	ContentTypeJavaScript = "application/javascript"

	// ContentTypeOctetStream is the MIME type for arbitrary binary data.
	ContentTypeOctetStream = "application/octet-stream"
)

// Security Header Values define the values for security-related HTTP headers.
const (
	// FrameOptionsDeny prevents the page from being displayed in a frame.
	FrameOptionsDeny = "DENY"

	// XSSProtectionModeBlock enables XSS filtering and blocks the page if an attack is detected.
	XSSProtectionModeBlock = "1; mode=block"

	// ContentTypeOptionsNoSniff prevents browsers from MIME-sniffing a response.
	ContentTypeOptionsNoSniff = "nosniff"

	// ReferrerPolicyStrictOrigin sends the origin only when the protocol security level stays the same.
	ReferrerPolicyStrictOrigin = "strict-origin-when-cross-origin"

	// CSPDefaultSrc restricts resource loading to the same origin.
	CSPDefaultSrc = "default-src 'self'"

	// CacheControlRevalidate lets clients cache but forces ETag revalidation.
	CacheControlRevalidate = "private, max-age=0, must-revalidate"
)
