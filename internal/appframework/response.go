// Package appframework provides the controller bases and HTTP responses apps
// build their endpoints on.
package appframework

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
)

// Response carries the status, headers and cache validator of an HTTP response.
// Concrete responses embed it and add a body.
type Response struct {
	status  int
	headers http.Header
	etag    string
}

// NewResponse creates a Response with status 200 and no headers.
func NewResponse() *Response {
	return &Response{
		status:  http.StatusOK,
		headers: make(http.Header),
	}
}

// AddHeader sets a header, replacing earlier values, and returns the response for chaining.
func (r *Response) AddHeader(name, value string) *Response {
	if r.headers == nil {
		r.headers = make(http.Header)
	}
	r.headers.Set(name, value)
	return r
}

// Headers returns the headers set so far.
func (r *Response) Headers() http.Header {
	if r.headers == nil {
		r.headers = make(http.Header)
	}
	return r.headers
}

// SetStatus sets the HTTP status code.
func (r *Response) SetStatus(status int) *Response {
	r.status = status
	return r
}

// Status returns the HTTP status code.
func (r *Response) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// SetETag sets the entity tag without quotes.
func (r *Response) SetETag(etag string) *Response {
	r.etag = etag
	return r
}

// ETag returns the entity tag without quotes.
func (r *Response) ETag() string {
	return r.etag
}

// NotModified reports whether the client already holds the current representation.
func (r *Response) NotModified(req *http.Request) bool {
	if r.etag == "" || req == nil {
		return false
	}
	for _, candidate := range strings.Split(req.Header.Get(constants.HeaderIfNoneMatch), ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == `"`+r.etag+`"` || candidate == "*" {
			return true
		}
	}
	return false
}

// Render writes the headers, the status and body. A request holding the
// current ETag gets 304 Not Modified without a body.
func (r *Response) Render(w http.ResponseWriter, req *http.Request, body []byte) {
	for name, values := range r.Headers() {
		for _, value := range values {
			w.Header().Add(name, value)
		}
	}
	if r.etag != "" {
		w.Header().Set(constants.HeaderETag, `"`+r.etag+`"`)
	}

	if r.NotModified(req) {
		w.Header().Del(constants.HeaderContentLength)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.WriteHeader(r.Status())
	if len(body) == 0 {
		return
	}
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("Failed to write response body")
	}
}
