// Package defaults exposes the instance branding: product name, entity, client
// download links and the footers shown on public pages.
//
// Defaults is the accessor the rest of the server uses. It forwards every getter
// to a Provider so themes can replace any value without touching callers.
package defaults

// Provider supplies branding values.
type Provider interface {
	BaseURL() string
	SyncClientURL() string
	IOSClientURL() string
	AndroidClientURL() string
	DocBaseURL() string
	Name() string
	HTMLName() string
	Entity() string
	Slogan() string
	LogoClaim() string
	ShortFooter() string
	LongFooter() string
	ITunesAppID() string
}

// Defaults forwards every branding getter to its delegate
type Defaults struct {
	delegate Provider
}

// New creates the accessor. A nil delegate falls back to the built-in theme.
func New(delegate Provider) *Defaults {
	if delegate == nil {
		delegate = NewThemeProvider(nil)
	}
	return &Defaults{delegate: delegate}
}

// BaseURL returns the public URL of the product site
func (d *Defaults) BaseURL() string { return d.delegate.BaseURL() }

// SyncClientURL returns the download page of the desktop sync client
func (d *Defaults) SyncClientURL() string { return d.delegate.SyncClientURL() }

// IOSClientURL returns the App Store link of the iOS client
func (d *Defaults) IOSClientURL() string { return d.delegate.IOSClientURL() }

// AndroidClientURL returns the store link of the Android client
func (d *Defaults) AndroidClientURL() string { return d.delegate.AndroidClientURL() }

// DocBaseURL returns the documentation root
func (d *Defaults) DocBaseURL() string { return d.delegate.DocBaseURL() }

// Name returns the product name
func (d *Defaults) Name() string { return d.delegate.Name() }

// HTMLName returns the product name with markup
func (d *Defaults) HTMLName() string { return d.delegate.HTMLName() }

// Entity returns the organisation behind the instance
func (d *Defaults) Entity() string { return d.delegate.Entity() }

// Slogan returns the product slogan
func (d *Defaults) Slogan() string { return d.delegate.Slogan() }

// LogoClaim returns the text shown next to the logo
func (d *Defaults) LogoClaim() string { return d.delegate.LogoClaim() }

// ShortFooter returns the one-line footer
func (d *Defaults) ShortFooter() string { return d.delegate.ShortFooter() }

// LongFooter returns the footer used on larger pages
func (d *Defaults) LongFooter() string { return d.delegate.LongFooter() }

// ITunesAppID returns the App Store id of the iOS client
func (d *Defaults) ITunesAppID() string { return d.delegate.ITunesAppID() }

// Branding is a snapshot of every value, as served by the theming endpoint.
type Branding struct {
	Name             string `json:"name"`
	HTMLName         string `json:"htmlname"`
	Entity           string `json:"entity"`
	BaseURL          string `json:"url"`
	DocBaseURL       string `json:"docurl"`
	SyncClientURL    string `json:"syncclienturl"`
	IOSClientURL     string `json:"iosclienturl"`
	AndroidClientURL string `json:"androidclienturl"`
	ITunesAppID      string `json:"itunesappid"`
	Slogan           string `json:"slogan"`
	LogoClaim        string `json:"logoclaim"`
	ShortFooter      string `json:"shortfooter"`
	LongFooter       string `json:"longfooter"`
}

// Snapshot reads every value through the delegate
func (d *Defaults) Snapshot() Branding {
	return Branding{
		Name:             d.Name(),
		HTMLName:         d.HTMLName(),
		Entity:           d.Entity(),
		BaseURL:          d.BaseURL(),
		DocBaseURL:       d.DocBaseURL(),
		SyncClientURL:    d.SyncClientURL(),
		IOSClientURL:     d.IOSClientURL(),
		AndroidClientURL: d.AndroidClientURL(),
		ITunesAppID:      d.ITunesAppID(),
		Slogan:           d.Slogan(),
		LogoClaim:        d.LogoClaim(),
		ShortFooter:      d.ShortFooter(),
		LongFooter:       d.LongFooter(),
	}
}
