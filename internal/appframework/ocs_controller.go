package appframework

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
	"github.com/yasinhessnawi1/sharecloud/internal/ocs"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

// Responder turns handler data into a renderable OCS response.
type Responder func(data interface{}) (*ocs.Response, error)

// OCSController is the base for controllers answering with OCS envelopes.
// Errors are reported inside the envelope with HTTP status 200.
type OCSController struct {
	*ApiController

	defaultFormat string

	mu         sync.RWMutex
	responders map[string]Responder
}

// NewOCSController creates an OCSController with json and xml responders registered.
func NewOCSController(appName string, policy CORSPolicy, defaultFormat string) *OCSController {
	if !ocs.ValidFormat(defaultFormat) {
		defaultFormat = constants.OCSDefaultFormat
	}

	c := &OCSController{
		ApiController: NewApiController(appName, policy),
		defaultFormat: defaultFormat,
		responders:    make(map[string]Responder),
	}
	c.RegisterResponder(constants.OCSFormatJSON, func(data interface{}) (*ocs.Response, error) {
		return ocs.Build(constants.OCSFormatJSON, data)
	})
	c.RegisterResponder(constants.OCSFormatXML, func(data interface{}) (*ocs.Response, error) {
		return ocs.Build(constants.OCSFormatXML, data)
	})
	return c
}

// RegisterResponder registers fn for format, replacing an earlier responder.
func (c *OCSController) RegisterResponder(format string, fn Responder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responders[strings.ToLower(format)] = fn
}

// BuildResponse runs the responder registered for format.
func (c *OCSController) BuildResponse(format string, data interface{}) (*ocs.Response, error) {
	c.mu.RLock()
	fn, ok := c.responders[strings.ToLower(format)]
	c.mu.RUnlock()

	if !ok {
		return nil, utils.NewUnsupportedFormatError(format)
	}
	return fn(data)
}

// DefaultFormat returns the format used when the request does not ask for one.
func (c *OCSController) DefaultFormat() string {
	return c.defaultFormat
}

// Respond negotiates the format for r and renders data.
// An unsupported format is reported in the default format.
func (c *OCSController) Respond(w http.ResponseWriter, r *http.Request, data interface{}) {
	format := ocs.NegotiateFormat(r, c.defaultFormat)

	resp, err := c.BuildResponse(format, data)
	if errors.Is(err, utils.ErrUnsupportedFormat) {
		log.Debug().Str("format", format).Str("path", r.URL.Path).Msg("Unsupported OCS format requested")
		format = c.defaultFormat
		resp, err = c.BuildResponse(format, ocs.Failure(err))
	}
	if err != nil {
		utils.InternalServerError(w, err)
		return
	}

	if err := resp.Render(w); err != nil {
		utils.InternalServerError(w, err)
	}
}

// RespondError renders err as an OCS failure. It satisfies auth.ErrorWriter.
func (c *OCSController) RespondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case utils.OCSStatusCode(err) == constants.OCSStatusServerError:
		utils.LogError(err, map[string]interface{}{
			"app":    c.AppName,
			"method": r.Method,
			"path":   r.URL.Path,
		})
	case utils.IsValidationError(err):
		// The envelope hides the HTTP status, keep it in the debug log
		log.Debug().
			Err(err).
			Str("app", c.AppName).
			Str("path", r.URL.Path).
			Int("status", utils.StatusCode(err)).
			Msg("Rejected OCS request input")
	}
	c.Respond(w, r, ocs.Failure(err))
}
