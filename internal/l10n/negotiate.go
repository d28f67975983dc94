package l10n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
)

// MatchLanguage maps a requested language onto a supported one.
func (c *Catalog) MatchLanguage(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	return c.match(tag)
}

// ResolveLanguage determines the language for r: the lang query parameter
// first, then Accept-Language, then the source language.
func (c *Catalog) ResolveLanguage(r *http.Request) string {
	if r == nil {
		return constants.DefaultLanguage
	}

	if value := strings.TrimSpace(r.URL.Query().Get(constants.QueryParamLang)); value != "" {
		if lang, ok := c.MatchLanguage(value); ok {
			return lang
		}
	}

	if accept := strings.TrimSpace(r.Header.Get(constants.HeaderAcceptLanguage)); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			if lang, ok := c.match(tags...); ok {
				return lang
			}
		}
	}

	return constants.DefaultLanguage
}

func (c *Catalog) match(tags ...language.Tag) (string, bool) {
	if len(tags) == 0 || c.matcher == nil {
		return "", false
	}
	_, index, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	base, _ := c.supported[index].Base()
	return base.String(), true
}
