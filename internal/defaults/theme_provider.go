package defaults

import (
	"fmt"
	"html"

	"github.com/yasinhessnawi1/sharecloud/internal/config"
)

// ThemeProvider serves branding from the theme configuration section.
type ThemeProvider struct {
	theme config.ThemeSettings
}

// NewThemeProvider creates a provider. Empty settings fall back to the built-in
// branding; a nil theme uses the built-in branding throughout.
func NewThemeProvider(theme *config.ThemeSettings) *ThemeProvider {
	var settings config.ThemeSettings
	if theme != nil {
		settings = *theme
	}
	return &ThemeProvider{theme: settings.WithDefaults()}
}

// BaseURL returns the public address of the instance
func (p *ThemeProvider) BaseURL() string { return p.theme.BaseURL }

// SyncClientURL returns the desktop client download page
func (p *ThemeProvider) SyncClientURL() string { return p.theme.SyncClientURL }

// IOSClientURL returns the iOS client store page
func (p *ThemeProvider) IOSClientURL() string { return p.theme.IOSClientURL }

// AndroidClientURL returns the Android client store page
func (p *ThemeProvider) AndroidClientURL() string { return p.theme.AndroidClientURL }

// DocBaseURL returns the documentation root
func (p *ThemeProvider) DocBaseURL() string { return p.theme.DocBaseURL }

// Name returns the product name
func (p *ThemeProvider) Name() string { return p.theme.Name }

// HTMLName returns the product name for HTML contexts
func (p *ThemeProvider) HTMLName() string { return p.theme.HTMLName }

// Entity returns the organisation behind the product
func (p *ThemeProvider) Entity() string { return p.theme.Entity }

// Slogan returns the product slogan
func (p *ThemeProvider) Slogan() string { return p.theme.Slogan }

// LogoClaim returns the text shown next to the logo
func (p *ThemeProvider) LogoClaim() string { return p.theme.LogoClaim }

// ITunesAppID returns the App Store id of the iOS client
func (p *ThemeProvider) ITunesAppID() string { return p.theme.ITunesAppID }

// ShortFooter links the entity to the base URL, followed by the slogan if one is set.
func (p *ThemeProvider) ShortFooter() string {
	footer := fmt.Sprintf(`<a href="%s" target="_blank" rel="noreferrer">%s</a>`,
		html.EscapeString(p.BaseURL()), html.EscapeString(p.Entity()))
	if slogan := p.Slogan(); slogan != "" {
		footer += " – " + html.EscapeString(slogan)
	}
	return footer
}

// LongFooter wraps the short footer in a paragraph.
func (p *ThemeProvider) LongFooter() string {
	return "<p>" + p.ShortFooter() + "</p>"
}
