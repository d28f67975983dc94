// Package ocs builds and renders Open Collaboration Services envelopes.
//
// Handlers hand over either a parameter map or a *DataResponse wrapping one.
// The parameters are merged over Defaults and the result is rendered as JSON
// or XML.
package ocs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

// Params is the flat parameter map an envelope is built from.
type Params map[string]interface{}

// Envelope is the typed form of the OCS parameters.
type Envelope struct {
	Status       string
	StatusCode   int
	Message      string
	Data         interface{}
	Tag          string
	TagAttribute string
	Dimension    string
	ItemsCount   string
	ItemsPerPage string
}

// DataResponse wraps the parameters a handler wants rendered together with the
// HTTP status and extra headers.
type DataResponse struct {
	Data    interface{}
	Status  int
	Headers http.Header
}

// NewDataResponse creates a DataResponse with status 200 when status is zero.
func NewDataResponse(data interface{}, status int) *DataResponse {
	if status == 0 {
		status = http.StatusOK
	}
	return &DataResponse{
		Data:    data,
		Status:  status,
		Headers: make(http.Header),
	}
}

// AddHeader sets a response header and returns the response for chaining.
func (d *DataResponse) AddHeader(name, value string) *DataResponse {
	if d.Headers == nil {
		d.Headers = make(http.Header)
	}
	d.Headers.Set(name, value)
	return d
}

// Response is a built envelope ready to be rendered.
type Response struct {
	Format   string
	Envelope Envelope
	// Params is the merged parameter map, including keys the envelope ignores
	Params  Params
	Status  int
	Headers http.Header
}

// Defaults returns a fresh copy of the default envelope parameters.
func Defaults() Params {
	return Params{
		constants.OCSKeyStatus:       constants.OCSStatusMessageOK,
		constants.OCSKeyStatusCode:   constants.OCSStatusOK,
		constants.OCSKeyMessage:      constants.OCSStatusMessageOK,
		constants.OCSKeyData:         []interface{}{},
		constants.OCSKeyTag:          "",
		constants.OCSKeyTagAttribute: "",
		constants.OCSKeyDimension:    constants.OCSDimensionDynamic,
		constants.OCSKeyItemsCount:   "",
		constants.OCSKeyItemsPerPage: "",
	}
}

// Data wraps a payload in the parameter map expected by Build.
func Data(payload interface{}) Params {
	return Params{constants.OCSKeyData: payload}
}

// Failure returns the parameters describing err. The message is the user facing
// message of the error, never developer details.
func Failure(err error) Params {
	appErr := utils.ParseError(err)
	return Params{
		constants.OCSKeyStatus:     constants.OCSStatusMessageFailed,
		constants.OCSKeyStatusCode: utils.OCSStatusCode(err),
		constants.OCSKeyMessage:    appErr.Message,
	}
}

// ValidFormat reports whether format can be rendered.
func ValidFormat(format string) bool {
	return format == constants.OCSFormatJSON || format == constants.OCSFormatXML
}

// Build unwraps input and merges it over the defaults.
// Every input key replaces the default of the same name, unknown keys included.
func Build(format string, input interface{}) (*Response, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if !ValidFormat(format) {
		return nil, utils.NewUnsupportedFormatError(format)
	}

	resp := &Response{
		Format:  format,
		Status:  http.StatusOK,
		Headers: make(http.Header),
	}

	switch d := input.(type) {
	case *DataResponse:
		if d != nil {
			input = d.Data
			if d.Status != 0 {
				resp.Status = d.Status
			}
			for name, values := range d.Headers {
				resp.Headers[name] = append([]string(nil), values...)
			}
		} else {
			input = nil
		}
	case DataResponse:
		return Build(format, &d)
	}

	overrides, err := toParams(input)
	if err != nil {
		return nil, err
	}

	params := Defaults()
	for key, value := range overrides {
		params[key] = value
	}

	envelope, err := envelopeFromParams(params)
	if err != nil {
		return nil, err
	}

	resp.Params = params
	resp.Envelope = envelope
	return resp, nil
}

// toParams accepts the map shapes handlers produce
func toParams(input interface{}) (Params, error) {
	switch v := input.(type) {
	case nil:
		return nil, nil
	case Params:
		return v, nil
	case map[string]interface{}:
		return Params(v), nil
	case map[string]string:
		params := make(Params, len(v))
		for key, value := range v {
			params[key] = value
		}
		return params, nil
	default:
		return nil, fmt.Errorf("ocs: cannot build envelope from %T", input)
	}
}

func envelopeFromParams(params Params) (Envelope, error) {
	statusCode, err := toInt(params[constants.OCSKeyStatusCode])
	if err != nil {
		return Envelope{}, fmt.Errorf("ocs: invalid %s: %w", constants.OCSKeyStatusCode, err)
	}

	return Envelope{
		Status:       toString(params[constants.OCSKeyStatus]),
		StatusCode:   statusCode,
		Message:      toString(params[constants.OCSKeyMessage]),
		Data:         params[constants.OCSKeyData],
		Tag:          toString(params[constants.OCSKeyTag]),
		TagAttribute: toString(params[constants.OCSKeyTagAttribute]),
		Dimension:    toString(params[constants.OCSKeyDimension]),
		ItemsCount:   toString(params[constants.OCSKeyItemsCount]),
		ItemsPerPage: toString(params[constants.OCSKeyItemsPerPage]),
	}, nil
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		if s {
			return "1"
		}
		return ""
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
