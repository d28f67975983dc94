// Package l10n serves the translation tables shipped with the apps.
//
// Tables are YAML files embedded under locales/<app>/<language>.yaml and are
// read once at startup. They never change at runtime.
package l10n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

//go:embed locales
var localeFS embed.FS

// localeRoot is the directory inside localeFS holding the app directories
const localeRoot = "locales"

var placeholderPattern = regexp.MustCompile(`%(?:(\d+)\$)?s`)

// tableFile is the on-disk layout of a translation table
type tableFile struct {
	App          string    `yaml:"app"`
	Language     string    `yaml:"language"`
	PluralForms  string    `yaml:"plural_forms"`
	Translations yaml.Node `yaml:"translations"`
}

// Table is the translation table of one app in one language.
type Table struct {
	App         string
	Language    string
	PluralForms string

	keys    []string
	entries map[string]string
	script  []byte
	etag    string
}

// Len returns the number of translated strings.
func (t *Table) Len() int {
	return len(t.keys)
}

// Entries returns a copy of the translations keyed by source string.
func (t *Table) Entries() map[string]string {
	entries := make(map[string]string, len(t.entries))
	for k, v := range t.entries {
		entries[k] = v
	}
	return entries
}

// Lookup returns the translation of key, if any.
func (t *Table) Lookup(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.entries[key]
	return v, ok
}

// Translate returns the translation of key with args substituted. Keys
// without a translation are returned as they are, with args substituted.
func (t *Table) Translate(key string, args ...interface{}) string {
	text, ok := t.Lookup(key)
	if !ok {
		text = key
	}
	return Format(text, args...)
}

// Format substitutes "%s" placeholders in order and "%N$s" placeholders by position.
// Placeholders without a matching argument are left untouched.
func Format(text string, args ...interface{}) string {
	if len(args) == 0 {
		return text
	}

	next := 0
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		idx := next
		if sub := placeholderPattern.FindStringSubmatch(match); sub[1] != "" {
			n, err := strconv.Atoi(sub[1])
			if err != nil || n < 1 {
				return match
			}
			idx = n - 1
		} else {
			next++
		}
		if idx >= len(args) {
			return match
		}
		return fmt.Sprint(args[idx])
	})
}

// Catalog holds every table, keyed by app and language.
type Catalog struct {
	tables    map[string]map[string]*Table
	supported []language.Tag
	matcher   language.Matcher
}

// Load reads the tables embedded in the binary.
func Load() (*Catalog, error) {
	sub, err := fs.Sub(localeFS, localeRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded locales: %w", err)
	}
	return LoadFS(sub)
}

// LoadFS reads <app>/<language>.yaml tables from fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{tables: make(map[string]map[string]*Table)}

	files, err := fs.Glob(fsys, "*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}

	for _, name := range files {
		table, err := loadTable(fsys, name)
		if err != nil {
			return nil, err
		}
		if c.tables[table.App] == nil {
			c.tables[table.App] = make(map[string]*Table)
		}
		c.tables[table.App][table.Language] = table

		log.Debug().
			Str("app", table.App).
			Str("language", table.Language).
			Int("entries", table.Len()).
			Msg("Loaded translation table")
	}

	c.buildMatcher()
	return c, nil
}

func loadTable(fsys fs.FS, name string) (*Table, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	// The directory and file name win over missing header fields
	if file.App == "" {
		file.App = path.Dir(name)
	}
	if file.Language == "" {
		file.Language = strings.TrimSuffix(path.Base(name), ".yaml")
	}
	if _, err := language.Parse(file.Language); err != nil {
		return nil, fmt.Errorf("invalid language %q in %s: %w", file.Language, name, err)
	}

	table := &Table{
		App:         file.App,
		Language:    file.Language,
		PluralForms: file.PluralForms,
		entries:     make(map[string]string),
	}

	node := &file.Translations
	if node.Kind != 0 && node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("translations in %s must be a mapping", name)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1].Value
		if _, dup := table.entries[key]; dup {
			return nil, fmt.Errorf("duplicate translation %q in %s", key, name)
		}
		table.keys = append(table.keys, key)
		table.entries[key] = value
	}

	if err := table.render(); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return table, nil
}

func (c *Catalog) buildMatcher() {
	seen := map[string]bool{constants.DefaultLanguage: true}
	langs := []string{}
	for _, byLang := range c.tables {
		for lang := range byLang {
			if !seen[lang] {
				seen[lang] = true
				langs = append(langs, lang)
			}
		}
	}
	sort.Strings(langs)

	// The source language comes first so it is the fallback
	c.supported = []language.Tag{language.Make(constants.DefaultLanguage)}
	for _, lang := range langs {
		c.supported = append(c.supported, language.Make(lang))
	}
	c.matcher = language.NewMatcher(c.supported)
}

// Apps returns the apps that ship translations, sorted.
func (c *Catalog) Apps() []string {
	apps := make([]string, 0, len(c.tables))
	for app := range c.tables {
		apps = append(apps, app)
	}
	sort.Strings(apps)
	return apps
}

// Languages returns the languages app is translated into, sorted.
func (c *Catalog) Languages(app string) []string {
	langs := make([]string, 0, len(c.tables[app]))
	for lang := range c.tables[app] {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Table returns the table of app in lang.
func (c *Catalog) Table(app, lang string) (*Table, error) {
	table, ok := c.tables[app][lang]
	if !ok {
		return nil, utils.NewNotFoundError("Translation table", app+"/"+lang)
	}
	return table, nil
}

// Translate translates key for app in lang. Unknown apps, languages and keys
// fall back to key itself.
func (c *Catalog) Translate(app, lang, key string, args ...interface{}) string {
	table := c.tables[app][lang]
	return table.Translate(key, args...)
}
