package policydoc

import "net/url"

// Defaults for the reference listing.
const (
	DefaultBaseURL      = "https://www.hdfclife.com"
	DefaultListingURL   = "https://www.hdfclife.com/policy-documents"
	DefaultDownloadDir  = "HDFC_Policy_Documents"
	DefaultDataFile     = "policy_data.csv"
	DefaultMaxPolicies  = 5
	DefaultLinkSelector = "a.docName"
	DefaultTitleClass   = "accordion-title"
)

// Config describes a single scrape run. It is passed by value and never
// modified after construction.
type Config struct {
	// BaseURL is the origin that relative document links resolve against.
	BaseURL string

	// ListingURL is the page listing the policy documents.
	ListingURL string

	// DownloadDir receives the downloaded PDFs.
	DownloadDir string

	// DataFile is the path of the CSV table.
	DataFile string

	// MaxPolicies caps the number of extracted policies.
	MaxPolicies int

	// LinkSelector is the CSS selector matching document links.
	LinkSelector string

	// TitleClass marks container elements that act as section headings.
	TitleClass string
}

// DefaultConfig returns the configuration of the reference run.
func DefaultConfig() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		ListingURL:   DefaultListingURL,
		DownloadDir:  DefaultDownloadDir,
		DataFile:     DefaultDataFile,
		MaxPolicies:  DefaultMaxPolicies,
		LinkSelector: DefaultLinkSelector,
		TitleClass:   DefaultTitleClass,
	}
}

// Validate returns an error if the configuration cannot drive a run.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "invalid base URL %q", c.BaseURL)
	}
	if c.ListingURL == "" {
		return Errorf(EINVALID, "listing URL required")
	}
	if c.DownloadDir == "" {
		return Errorf(EINVALID, "download directory required")
	}
	if c.DataFile == "" {
		return Errorf(EINVALID, "data file required")
	}
	if c.MaxPolicies <= 0 {
		return Errorf(EINVALID, "max policies must be positive, got %d", c.MaxPolicies)
	}
	if c.LinkSelector == "" {
		return Errorf(EINVALID, "link selector required")
	}
	return nil
}
