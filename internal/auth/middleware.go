// Package auth attaches the caller's identity to requests. Tokens are issued
// elsewhere; this package verifies them and exposes the user to handlers.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
	"github.com/yasinhessnawi1/sharecloud/internal/models"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

// ContextKey is a custom type for context keys to prevent collisions.
type ContextKey string

// Context keys for storing authenticated user information and request metadata.
const (
	// UserContextKey is the context key for storing the authenticated user.
	UserContextKey ContextKey = constants.UserIDContextKey

	// RequestIDContextKey is the context key for storing the unique request ID.
	RequestIDContextKey ContextKey = constants.RequestIDContextKey
)

// AuthProvider defines methods for different authentication mechanisms.
type AuthProvider interface {
	// Authenticate checks the request and returns the user if the credentials are valid.
	Authenticate(r *http.Request) (*models.User, error)
}

// ErrorWriter renders an authentication or authorization failure.
// OCS routes pass a writer that answers with an OCS envelope.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// JWTAuthProvider implements JWT-based authentication.
type JWTAuthProvider struct {
	jwtService JWTValidator
}

// NewJWTAuthProvider creates a new JWTAuthProvider with the specified JWT validator.
func NewJWTAuthProvider(jwtService JWTValidator) *JWTAuthProvider {
	return &JWTAuthProvider{
		jwtService: jwtService,
	}
}

// Authenticate extracts the bearer token from the Authorization header and validates it.
func (p *JWTAuthProvider) Authenticate(r *http.Request) (*models.User, error) {
	authHeader := r.Header.Get(constants.HeaderAuthorization)
	if authHeader == "" {
		return nil, utils.ErrUnauthorized
	}

	if !strings.HasPrefix(authHeader, constants.BearerTokenPrefix) {
		return nil, utils.ErrUnauthorized
	}

	token := strings.TrimPrefix(authHeader, constants.BearerTokenPrefix)

	claims, err := p.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	return claims.User(), nil
}

// WriteError is the default ErrorWriter, answering with the plain JSON error format.
func WriteError(w http.ResponseWriter, _ *http.Request, err error) {
	var appErr *utils.AppError
	switch {
	case errors.As(err, &appErr):
		utils.ErrorFromAppError(w, appErr)
	case errors.Is(err, utils.ErrForbidden):
		utils.ErrorFromAppError(w, utils.NewForbiddenError(""))
	default:
		utils.Unauthorized(w, constants.MsgAuthRequired)
	}
}

// AuthMiddleware wraps an HTTP handler with authentication.
// Each provider is tried in turn and the request proceeds once one succeeds.
func AuthMiddleware(next http.Handler, onError ErrorWriter, providers ...AuthProvider) http.Handler {
	if onError == nil {
		onError = WriteError
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := GetRequestID(r)

		var lastErr error = utils.ErrUnauthorized
		for _, provider := range providers {
			user, err := provider.Authenticate(r)
			if err == nil {
				log.Debug().
					Str("user_id", user.ID).
					Str("request_id", requestID).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("User authenticated")

				next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
				return
			}
			lastErr = err
		}

		log.Info().
			Err(lastErr).
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Authentication failed")

		onError(w, r, lastErr)
	})
}

// RequireAuth is a middleware that requires authentication.
func RequireAuth(onError ErrorWriter, providers ...AuthProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return AuthMiddleware(next, onError, providers...)
	}
}

// RequireGroup only lets members of group through. It must run after RequireAuth.
func RequireGroup(group string, onError ErrorWriter) func(http.Handler) http.Handler {
	if onError == nil {
		onError = WriteError
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r)
			if !ok {
				onError(w, r, utils.NewUnauthorizedError(""))
				return
			}
			if !user.InGroup(group) {
				log.Info().
					Str("user_id", user.ID).
					Str("group", group).
					Str("path", r.URL.Path).
					Msg("Group membership required")
				onError(w, r, utils.NewForbiddenError(""))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// UserFromContext returns the user stored in ctx, if any.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	return user, ok && user != nil
}

// GetUser extracts the authenticated user from the request context.
func GetUser(r *http.Request) (*models.User, bool) {
	return UserFromContext(r.Context())
}

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, requestID)
}

// GetRequestID extracts the request ID from the request context.
func GetRequestID(r *http.Request) (string, bool) {
	requestID, ok := r.Context().Value(RequestIDContextKey).(string)
	return requestID, ok
}
