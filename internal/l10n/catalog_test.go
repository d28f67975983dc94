package l10n_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasinhessnawi1/sharecloud/internal/l10n"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

func loadEmbedded(t *testing.T) *l10n.Catalog {
	t.Helper()
	catalog, err := l10n.Load()
	require.NoError(t, err)
	return catalog
}

func TestLoad_FilesSharingIndonesian(t *testing.T) {
	catalog := loadEmbedded(t)

	assert.Contains(t, catalog.Apps(), "files_sharing")
	assert.Equal(t, []string{"id"}, catalog.Languages("files_sharing"))

	table, err := catalog.Table("files_sharing", "id")
	require.NoError(t, err)

	assert.Equal(t, "files_sharing", table.App)
	assert.Equal(t, "id", table.Language)
	assert.Equal(t, "nplurals=1; plural=0;", table.PluralForms)
	assert.Equal(t, 57, table.Len())

	entries := table.Entries()
	assert.Equal(t, "Dibagikan dengan Anda", entries["Shared with you"])
	assert.Equal(t, "Maaf, tautan ini tampaknya tidak berfungsi lagi.", entries["Sorry, this link doesn’t seem to work anymore."])
	assert.Equal(t, "Sebuah berkas atau folder telah <strong>dibagikan</strong>", entries["A file or folder has been <strong>shared</strong>"])
}

func TestCatalog_Translate(t *testing.T) {
	catalog := loadEmbedded(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []interface{}
		want string
	}{
		{"plain", "id", "Cancel", nil, "Batal"},
		{"sequential placeholder", "id", "Download %s", []interface{}{"laporan.pdf"}, "Unduh laporan.pdf"},
		{"positional placeholders", "id", "You shared %1$s with %2$s", []interface{}{"foto.jpg", "budi"}, "Anda membagikan foto.jpg dengan budi"},
		{"reordered placeholders", "id", "%2$s shared %1$s with you", []interface{}{"foto.jpg", "budi"}, "budi membagikan foto.jpg dengan Anda"},
		{"brace placeholders are left for the client", "id", "Remote share", nil, "Berbagi remote"},
		{"missing key falls back", "id", "Unknown string", nil, "Unknown string"},
		{"missing key still formats", "id", "Hello %s", []interface{}{"ana"}, "Hello ana"},
		{"unknown language falls back", "fr", "Cancel", nil, "Cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Translate("files_sharing", tt.lang, tt.key, tt.args...))
		})
	}

	assert.Equal(t, "Cancel", catalog.Translate("calendar", "id", "Cancel"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "a b", l10n.Format("%s %s", "a", "b"))
	assert.Equal(t, "b a", l10n.Format("%2$s %1$s", "a", "b"))
	assert.Equal(t, "a %s", l10n.Format("%s %s", "a"))
	assert.Equal(t, "%3$s", l10n.Format("%3$s", "a"))
	assert.Equal(t, "%s", l10n.Format("%s"))
	assert.Equal(t, "7 items", l10n.Format("%s items", 7))
}

func TestCatalog_TableNotFound(t *testing.T) {
	catalog := loadEmbedded(t)

	_, err := catalog.Table("files_sharing", "fr")
	assert.True(t, utils.IsNotFoundError(err))

	_, err = catalog.Table("calendar", "id")
	assert.True(t, utils.IsNotFoundError(err))
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"notes/de.yaml": {Data: []byte("translations:\n  Save: Speichern\n  Note: Notiz\n")},
		"notes/id.yaml": {Data: []byte("app: notes\nlanguage: id\nplural_forms: \"nplurals=1; plural=0;\"\ntranslations:\n  Save: Simpan\n")},
	}

	catalog, err := l10n.LoadFS(fsys)
	require.NoError(t, err)

	assert.Equal(t, []string{"notes"}, catalog.Apps())
	assert.Equal(t, []string{"de", "id"}, catalog.Languages("notes"))
	assert.Equal(t, "Speichern", catalog.Translate("notes", "de", "Save"))

	// Missing header fields come from the file path
	table, err := catalog.Table("notes", "de")
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Contains(t, table.Entries(), "Note")
	assert.Empty(t, table.PluralForms)
}

func TestLoadFS_Errors(t *testing.T) {
	tests := map[string]fstest.MapFS{
		"malformed yaml":     {"notes/de.yaml": {Data: []byte("translations: [unclosed")}},
		"list translations":  {"notes/de.yaml": {Data: []byte("translations:\n  - Save\n")}},
		"invalid language":   {"notes/not a tag.yaml": {Data: []byte("translations:\n  Save: x\n")}},
		"duplicate key":      {"notes/de.yaml": {Data: []byte("translations:\n  Save: a\n  Save: b\n")}},
	}

	for name, fsys := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := l10n.LoadFS(fsys)
			assert.Error(t, err)
		})
	}
}

func TestResolveLanguage(t *testing.T) {
	catalog := loadEmbedded(t)

	tests := []struct {
		name   string
		query  string
		accept string
		want   string
	}{
		{"query parameter", "?lang=id", "", "id"},
		{"query parameter with region", "?lang=id-ID", "", "id"},
		{"accept language", "", "id-ID,id;q=0.9,en;q=0.8", "id"},
		{"accept language prefers english", "", "en-US,en;q=0.9,id;q=0.5", "en"},
		{"unsupported query falls through to header", "?lang=xx-invalid-", "id", "id"},
		{"unsupported language", "", "fr-FR", "en"},
		{"nothing requested", "", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/apps/files_sharing/l10n"+tt.query, nil)
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			assert.Equal(t, tt.want, catalog.ResolveLanguage(r))
		})
	}

	assert.Equal(t, "en", catalog.ResolveLanguage(nil))
}

func TestMatchLanguage(t *testing.T) {
	catalog := loadEmbedded(t)

	lang, ok := catalog.MatchLanguage("id")
	assert.True(t, ok)
	assert.Equal(t, "id", lang)

	_, ok = catalog.MatchLanguage("")
	assert.False(t, ok)

	lang, ok = catalog.MatchLanguage("en-US")
	assert.True(t, ok)
	assert.Equal(t, "en", lang)
}

func TestTable_Script(t *testing.T) {
	catalog := loadEmbedded(t)
	table, err := catalog.Table("files_sharing", "id")
	require.NoError(t, err)

	script := string(table.Script())

	assert.True(t, strings.HasPrefix(script, "OC.L10N.register(\n    \"files_sharing\",\n    {\n"))
	assert.Contains(t, script, `    "Cancel" : "Batal",`+"\n")
	assert.Contains(t, script, `"A file or folder has been <strong>shared</strong>" : "Sebuah berkas atau folder telah <strong>dibagikan</strong>"`)
	assert.Contains(t, script, `"Allow users on this server to receive shares from other servers" : "Izinkan para pengguna di server ini untuk menerima berbagi ke server lainnya."`+"\n},\n")
	assert.True(t, strings.HasSuffix(script, "},\n\"nplurals=1; plural=0;\");\n"))
	assert.Equal(t, "id.js", table.ScriptName())

	assert.Len(t, table.ETag(), 32)
}

func TestTable_ETagChangesWithContent(t *testing.T) {
	a, err := l10n.LoadFS(fstest.MapFS{"notes/de.yaml": {Data: []byte("translations:\n  Save: Speichern\n")}})
	require.NoError(t, err)
	b, err := l10n.LoadFS(fstest.MapFS{"notes/de.yaml": {Data: []byte("translations:\n  Save: Sichern\n")}})
	require.NoError(t, err)

	ta, _ := a.Table("notes", "de")
	tb, _ := b.Table("notes", "de")
	assert.NotEqual(t, ta.ETag(), tb.ETag())
}
