package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yasinhessnawi1/sharecloud/internal/appframework"
	"github.com/yasinhessnawi1/sharecloud/internal/constants"
	"github.com/yasinhessnawi1/sharecloud/internal/ocs"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

// L10nHandler serves translation tables
type L10nHandler struct {
	catalog TranslationCatalogInterface
	ocs     OCSResponderInterface
}

// NewL10nHandler creates a new L10nHandler
func NewL10nHandler(catalog TranslationCatalogInterface, responder OCSResponderInterface) *L10nHandler {
	return &L10nHandler{
		catalog: catalog,
		ocs:     responder,
	}
}

// GetTable returns the table of an app in the negotiated language as OCS data
func (h *L10nHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	app := chi.URLParam(r, constants.ParamApp)
	if err := utils.ValidateAppID(app); err != nil {
		h.ocs.RespondError(w, r, err)
		return
	}

	lang := h.catalog.ResolveLanguage(r)
	table, err := h.catalog.Table(app, lang)
	if err != nil {
		h.ocs.RespondError(w, r, err)
		return
	}

	h.ocs.Respond(w, r, ocs.Data(map[string]interface{}{
		"app":          table.App,
		"language":     table.Language,
		"pluralForm":   table.PluralForms,
		"translations": table.Entries(),
	}))
}

// GetScript serves the table as the script registering it with the web client.
// Clients revalidate with the ETag instead of downloading the table again.
func (h *L10nHandler) GetScript(w http.ResponseWriter, r *http.Request) {
	app := chi.URLParam(r, constants.ParamApp)
	if err := utils.ValidateAppID(app); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	table, err := h.catalog.Table(app, chi.URLParam(r, constants.ParamLang))
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	download := appframework.NewDownloadResponse(table.ScriptName(), constants.ContentTypeJavaScript)
	download.SetETag(table.ETag())
	download.AddHeader(constants.HeaderCacheControl, constants.CacheControlRevalidate)
	download.SetContent(table.Script())
	download.ServeHTTP(w, r)
}
