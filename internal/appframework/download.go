package appframework

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
)

var quotedStringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// DownloadResponse prompts the client to save the body as a file.
type DownloadResponse struct {
	*Response

	content []byte
}

// NewDownloadResponse creates a download of filename with the given content type.
func NewDownloadResponse(filename, contentType string) *DownloadResponse {
	resp := &DownloadResponse{
		Response: NewResponse(),
	}
	resp.AddHeader(constants.HeaderContentDisposition, ContentDisposition(filename))
	resp.AddHeader(constants.HeaderContentType, contentType)
	return resp
}

// ContentDisposition returns the attachment header value for filename.
// Quotes and backslashes are escaped so the name stays one quoted-string.
func ContentDisposition(filename string) string {
	return `attachment; filename="` + quotedStringEscaper.Replace(filename) + `"`
}

// SetContent sets the body of the download.
func (d *DownloadResponse) SetContent(content []byte) *DownloadResponse {
	d.content = content
	d.AddHeader(constants.HeaderContentLength, strconv.Itoa(len(content)))
	return d
}

// ServeHTTP renders the download for req.
func (d *DownloadResponse) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	d.Render(w, req, d.content)
}
