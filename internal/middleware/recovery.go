// Package middleware provides the HTTP middleware shared by every route:
// panic recovery, request ids, request logging and security headers.
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/sharecloud/internal/auth"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

// Recovery is a middleware that recovers from panics and hands a 500 error to onError.
// A nil onError writes the plain JSON error envelope.
func Recovery(onError auth.ErrorWriter) func(http.Handler) http.Handler {
	if onError == nil {
		onError = auth.WriteError
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					// http.ErrAbortHandler is the sanctioned way to abort a response
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					requestID, _ := auth.GetRequestID(r)
					log.Error().
						Str("request_id", requestID).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("Panic recovered in request handler")
					utils.LogPanic(rec, debug.Stack())

					onError(w, r, utils.NewInternalServerError(fmt.Errorf("panic: %v", rec)))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
