package ocs

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"regexp"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
)

// Names used for list items when the envelope does not set a tag.
const (
	defaultItemElement   = "element"
	detailsAttributeName = "details"
)

var xmlNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

type jsonMeta struct {
	Status       string `json:"status"`
	StatusCode   int    `json:"statuscode"`
	Message      string `json:"message"`
	TotalItems   string `json:"totalitems"`
	ItemsPerPage string `json:"itemsperpage"`
}

type jsonBody struct {
	OCS struct {
		Meta jsonMeta    `json:"meta"`
		Data interface{} `json:"data"`
	} `json:"ocs"`
}

// ContentType returns the media type of the rendered body.
func (r *Response) ContentType() string {
	if r.Format == constants.OCSFormatJSON {
		return constants.ContentTypeJSONUTF8
	}
	return constants.ContentTypeXMLUTF8
}

// Body serializes the envelope.
func (r *Response) Body() ([]byte, error) {
	if r.Format == constants.OCSFormatJSON {
		return r.renderJSON()
	}
	return r.renderXML()
}

// Render writes the envelope with its headers and status.
func (r *Response) Render(w http.ResponseWriter) error {
	body, err := r.Body()
	if err != nil {
		return fmt.Errorf("failed to render OCS response: %w", err)
	}

	for name, values := range r.Headers {
		for _, value := range values {
			w.Header().Add(name, value)
		}
	}
	w.Header().Set(constants.HeaderContentType, r.ContentType())

	status := r.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("Failed to write OCS response")
	}
	return nil
}

func (r *Response) renderJSON() ([]byte, error) {
	var body jsonBody
	body.OCS.Meta = jsonMeta{
		Status:       r.Envelope.Status,
		StatusCode:   r.Envelope.StatusCode,
		Message:      r.Envelope.Message,
		TotalItems:   r.Envelope.ItemsCount,
		ItemsPerPage: r.Envelope.ItemsPerPage,
	}
	body.OCS.Data = r.Envelope.Data
	if body.OCS.Data == nil {
		body.OCS.Data = []interface{}{}
	}
	return json.Marshal(body)
}

func (r *Response) renderXML() ([]byte, error) {
	data, err := normalize(r.Envelope.Data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0"?>` + "\n")

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	w := &xmlWriter{enc: enc}
	w.start("ocs")
	w.start("meta")
	w.text("status", r.Envelope.Status)
	w.text("statuscode", fmt.Sprint(r.Envelope.StatusCode))
	w.text("message", r.Envelope.Message)
	if r.Envelope.ItemsCount != "" {
		w.text("totalitems", r.Envelope.ItemsCount)
	}
	if r.Envelope.ItemsPerPage != "" {
		w.text("itemsperpage", r.Envelope.ItemsPerPage)
	}
	w.end("meta")

	switch r.Envelope.Dimension {
	case "0":
		w.text("data", scalarText(data))
	case "1":
		w.start("data")
		w.flat(data)
		w.end("data")
	case "2":
		w.start("data")
		w.entries(data, r.itemName(), r.Envelope.TagAttribute)
		w.end("data")
	default:
		w.start("data")
		w.dynamic(data, r.itemName())
		w.end("data")
	}

	w.end("ocs")
	if w.err == nil {
		w.err = enc.Flush()
	}
	if w.err != nil {
		return nil, w.err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func (r *Response) itemName() string {
	if r.Envelope.Tag != "" {
		return r.Envelope.Tag
	}
	return defaultItemElement
}

// normalize turns arbitrary payloads (structs, typed slices) into maps, slices and scalars
func normalize(v interface{}) (interface{}, error) {
	switch v.(type) {
	case nil, string, bool, int, int64, float64:
		return v, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode OCS data: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out interface{}
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode OCS data: %w", err)
	}
	return out, nil
}

// xmlWriter wraps the encoder and keeps the first error
type xmlWriter struct {
	enc *xml.Encoder
	err error
}

func (w *xmlWriter) token(t xml.Token) {
	if w.err == nil {
		w.err = w.enc.EncodeToken(t)
	}
}

func (w *xmlWriter) start(name string, attrs ...xml.Attr) {
	w.token(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (w *xmlWriter) end(name string) {
	w.token(xml.EndElement{Name: xml.Name{Local: name}})
}

func (w *xmlWriter) text(name, value string) {
	w.start(name)
	if value != "" {
		w.token(xml.CharData(value))
	}
	w.end(name)
}

// dynamic writes maps as child elements and list items under itemName
func (w *xmlWriter) dynamic(v interface{}, itemName string) {
	switch d := v.(type) {
	case map[string]interface{}:
		for _, key := range sortedKeys(d) {
			w.value(elementName(key, itemName), d[key], itemName)
		}
	case []interface{}:
		for _, item := range d {
			w.value(itemName, item, itemName)
		}
	default:
		if text := scalarText(d); text != "" {
			w.token(xml.CharData(text))
		}
	}
}

func (w *xmlWriter) value(name string, v interface{}, itemName string) {
	switch v.(type) {
	case map[string]interface{}, []interface{}:
		w.start(name)
		w.dynamic(v, itemName)
		w.end(name)
	default:
		w.text(name, scalarText(v))
	}
}

// flat writes one element per map key
func (w *xmlWriter) flat(v interface{}) {
	d, ok := v.(map[string]interface{})
	if !ok {
		w.dynamic(v, defaultItemElement)
		return
	}
	for _, key := range sortedKeys(d) {
		w.text(elementName(key, defaultItemElement), scalarText(d[key]))
	}
}

// entries writes one itemName element per entry, tagged with the details attribute
func (w *xmlWriter) entries(v interface{}, itemName, tagAttribute string) {
	var items []interface{}
	switch d := v.(type) {
	case []interface{}:
		items = d
	case map[string]interface{}:
		for _, key := range sortedKeys(d) {
			items = append(items, d[key])
		}
	default:
		return
	}

	var attrs []xml.Attr
	if tagAttribute != "" {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: detailsAttributeName}, Value: tagAttribute})
	}

	for _, item := range items {
		w.start(itemName, attrs...)
		if entry, ok := item.(map[string]interface{}); ok {
			for _, key := range sortedKeys(entry) {
				if nested, ok := entry[key].(map[string]interface{}); ok {
					for _, k := range sortedKeys(nested) {
						w.text(elementName(k, itemName), scalarText(nested[k]))
					}
					continue
				}
				w.text(elementName(key, itemName), scalarText(entry[key]))
			}
		} else {
			w.token(xml.CharData(scalarText(item)))
		}
		w.end(itemName)
	}
}

func scalarText(v interface{}) string {
	switch s := v.(type) {
	case map[string]interface{}, []interface{}:
		return ""
	default:
		return toString(s)
	}
}

// elementName falls back to fallback for keys that are not valid element names
func elementName(key, fallback string) string {
	if xmlNamePattern.MatchString(key) {
		return key
	}
	return fallback
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
