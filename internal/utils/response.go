// Package utils provides utility functions and helpers for the application.
// This file implements the plain JSON response format used by the endpoints
// that live outside the OCS API (health, version and framework errors).
// OCS endpoints render through the ocs package instead.
package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
)

// Response represents a standardized API response.
type Response struct {
	Success bool        `json:"success"`         // Whether the request was successful
	Data    interface{} `json:"data,omitempty"`  // The response data (omitted for error responses)
	Error   *ErrorInfo  `json:"error,omitempty"` // Error information (omitted for successful responses)
}

// ErrorInfo represents error information in the response.
type ErrorInfo struct {
	Code    string            `json:"code"`              // A machine-readable error code
	Message string            `json:"message"`           // A human-readable error message
	Details map[string]string `json:"details,omitempty"` // Additional details about the error (e.g., validation errors)
}

// JSON sends a JSON response with the given status code and data.
// The success flag follows the status code.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	response := Response{
		Success: statusCode >= 200 && statusCode < 300,
		Data:    data,
	}

	SendJSON(w, statusCode, response)
}

// Error sends an error response with the given status code and error information.
func Error(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	response := Response{
		Success: constants.ResponseFailure,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	}

	SendJSON(w, statusCode, response)
}

// ErrorCode returns the machine-readable code for an AppError
func ErrorCode(err *AppError) string {
	switch {
	case errors.Is(err.Err, ErrNotFound):
		return constants.CodeNotFound
	case errors.Is(err.Err, ErrBadRequest):
		return constants.CodeBadRequest
	case errors.Is(err.Err, ErrUnauthorized):
		return constants.CodeUnauthorized
	case errors.Is(err.Err, ErrForbidden):
		return constants.CodeForbidden
	case errors.Is(err.Err, ErrValidation):
		return constants.CodeValidationError
	case errors.Is(err.Err, ErrDuplicate):
		return constants.CodeDuplicateResource
	case errors.Is(err.Err, ErrExpiredToken):
		return constants.CodeTokenExpired
	case errors.Is(err.Err, ErrInvalidToken):
		return constants.CodeTokenInvalid
	case errors.Is(err.Err, ErrOperationFailed):
		return constants.CodeOperationFailed
	case errors.Is(err.Err, ErrUnsupportedFormat):
		return constants.CodeUnsupportedFormat
	}
	return constants.CodeInternalError
}

// ErrorFromAppError sends an error response based on an AppError.
// Developer info is never sent to the client.
func ErrorFromAppError(w http.ResponseWriter, err *AppError) {
	var details map[string]string
	if err.Field != "" {
		details = map[string]string{
			err.Field: err.Message,
		}
	}

	Error(w, err.StatusCode, ErrorCode(err), err.Message, details)
}

// SendJSON marshals data and writes it with the JSON content type.
func SendJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		if _, err := w.Write([]byte(`{"success":false,"error":{"code":"internal_error","message":"Failed to generate response"}}`)); err != nil {
			log.Error().Err(err).Msg("Failed to write error response")
		}
		return
	}

	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if _, err := w.Write(jsonData); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// Unauthorized sends a 401 Unauthorized response, falling back to a default message.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgAuthRequired
	}
	Error(w, constants.StatusUnauthorized, constants.CodeUnauthorized, message, nil)
}

// NotFound sends a 404 Not Found response, falling back to a default message.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgResourceNotFound
	}
	Error(w, constants.StatusNotFound, constants.CodeNotFound, message, nil)
}

// MethodNotAllowed sends a 405 Method Not Allowed response.
func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, constants.StatusMethodNotAllowed, constants.CodeMethodNotAllowed, constants.MsgMethodNotAllowed, nil)
}

// InternalServerError logs err and sends a generic 500 response.
func InternalServerError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("Internal server error")
	Error(w, constants.StatusInternalServerError, constants.CodeInternalError, constants.MsgInternalServerError, nil)
}

// ServiceUnavailable sends a 503 response, used by failing health checks.
func ServiceUnavailable(w http.ResponseWriter, message string) {
	Error(w, constants.StatusServiceUnavailable, constants.CodeServiceUnavailable, message, nil)
}
