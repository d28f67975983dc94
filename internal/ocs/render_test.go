package ocs_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasinhessnawi1/sharecloud/internal/ocs"
)

func build(t *testing.T, format string, input interface{}) *ocs.Response {
	t.Helper()
	resp, err := ocs.Build(format, input)
	require.NoError(t, err)
	return resp
}

func TestRender_JSON(t *testing.T) {
	resp := build(t, "json", ocs.Data(map[string]interface{}{"apps": []string{"files", "gallery"}}))

	rr := httptest.NewRecorder()
	require.NoError(t, resp.Render(rr))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{
		"ocs": map[string]interface{}{
			"meta": map[string]interface{}{
				"status":       "OK",
				"statuscode":   float64(100),
				"message":      "OK",
				"totalitems":   "",
				"itemsperpage": "",
			},
			"data": map[string]interface{}{
				"apps": []interface{}{"files", "gallery"},
			},
		},
	}, body)
}

func TestRender_JSONEmptyData(t *testing.T) {
	resp := build(t, "json", map[string]interface{}{"data": nil})

	body, err := resp.Body()
	require.NoError(t, err)
	assert.Contains(t, string(body), `"data":[]`)
}

func TestRender_XMLDynamic(t *testing.T) {
	resp := build(t, "xml", ocs.Data(map[string]interface{}{
		"apps":  []string{"files", "gallery"},
		"count": 2,
	}))

	rr := httptest.NewRecorder()
	require.NoError(t, resp.Render(rr))

	assert.Equal(t, "text/xml; charset=UTF-8", rr.Header().Get("Content-Type"))

	expected := `<?xml version="1.0"?>
<ocs>
  <meta>
    <status>OK</status>
    <statuscode>100</statuscode>
    <message>OK</message>
  </meta>
  <data>
    <apps>
      <element>files</element>
      <element>gallery</element>
    </apps>
    <count>2</count>
  </data>
</ocs>
`
	assert.Equal(t, expected, rr.Body.String())
}

func TestRender_XMLMetaPaging(t *testing.T) {
	resp := build(t, "xml", map[string]interface{}{"itemscount": 40, "itemsperpage": 10})

	body, err := resp.Body()
	require.NoError(t, err)
	assert.Contains(t, string(body), "<totalitems>40</totalitems>")
	assert.Contains(t, string(body), "<itemsperpage>10</itemsperpage>")
}

func TestRender_XMLCustomTag(t *testing.T) {
	resp := build(t, "xml", map[string]interface{}{
		"tag":  "app",
		"data": []interface{}{"files", map[string]interface{}{"id": "gallery", "0": "numeric"}},
	})

	body, err := resp.Body()
	require.NoError(t, err)
	out := string(body)
	assert.Contains(t, out, "<app>files</app>")
	assert.Contains(t, out, "<id>gallery</id>")
	// Keys that are not element names fall back to the item name
	assert.Contains(t, out, "<app>numeric</app>")
}

func TestRender_XMLDimensions(t *testing.T) {
	resp := build(t, "xml", map[string]interface{}{"dimension": "0", "data": "plain"})
	body, err := resp.Body()
	require.NoError(t, err)
	assert.Contains(t, string(body), "<data>plain</data>")

	resp = build(t, "xml", map[string]interface{}{"dimension": "1", "data": map[string]interface{}{"name": "ShareCloud"}})
	body, err = resp.Body()
	require.NoError(t, err)
	assert.Contains(t, string(body), "<name>ShareCloud</name>")

	resp = build(t, "xml", map[string]interface{}{
		"dimension":    "2",
		"tag":          "app",
		"tagattribute": "apps",
		"data": []interface{}{
			map[string]interface{}{"id": "files", "meta": map[string]interface{}{"enabled": true}},
		},
	})
	body, err = resp.Body()
	require.NoError(t, err)
	out := string(body)
	assert.Contains(t, out, `<app details="apps">`)
	assert.Contains(t, out, "<id>files</id>")
	assert.Contains(t, out, "<enabled>1</enabled>")
}

func TestRender_XMLStructData(t *testing.T) {
	type status struct {
		ID      string `json:"id"`
		Enabled bool   `json:"enabled"`
	}

	resp := build(t, "xml", ocs.Data(status{ID: "files", Enabled: true}))
	body, err := resp.Body()
	require.NoError(t, err)

	assert.Contains(t, string(body), "<id>files</id>")
	assert.Contains(t, string(body), "<enabled>1</enabled>")
}

func TestRender_XMLEscapesText(t *testing.T) {
	resp := build(t, "xml", map[string]interface{}{"message": `<b>"quoted" & more</b>`})
	body, err := resp.Body()
	require.NoError(t, err)

	assert.NotContains(t, string(body), "<b>")
	assert.True(t, strings.Contains(string(body), "&lt;b&gt;"))
}

func TestRender_StatusAndHeaders(t *testing.T) {
	holder := ocs.NewDataResponse(ocs.Data("x"), http.StatusAccepted).AddHeader("X-Trace", "abc")
	resp := build(t, "json", holder)

	rr := httptest.NewRecorder()
	require.NoError(t, resp.Render(rr))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "abc", rr.Header().Get("X-Trace"))
}

func TestRender_UnencodableData(t *testing.T) {
	resp := build(t, "json", ocs.Data(make(chan int)))

	rr := httptest.NewRecorder()
	assert.Error(t, resp.Render(rr))
	assert.Empty(t, rr.Body.String())
}

func TestNegotiateFormat(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/ocs/v1.php/cloud/apps?format=JSON", nil)
	assert.Equal(t, "json", ocs.NegotiateFormat(r, "xml"))

	r = httptest.NewRequest(http.MethodGet, "/ocs/v1.php/cloud/apps", nil)
	assert.Equal(t, "json", ocs.NegotiateFormat(r, "json"))
	assert.Equal(t, "xml", ocs.NegotiateFormat(r, ""))

	r = httptest.NewRequest(http.MethodGet, "/ocs/v1.php/cloud/apps?format=yaml", nil)
	assert.Equal(t, "yaml", ocs.NegotiateFormat(r, "xml"))
	assert.False(t, ocs.ValidFormat("yaml"))
}
