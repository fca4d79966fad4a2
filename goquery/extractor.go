// Package goquery extracts policy metadata from listing pages using goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/policydoc"
)

// Ensure Extractor implements policydoc.PolicyExtractor at compile time.
var _ policydoc.PolicyExtractor = (*Extractor)(nil)

// Extractor finds document links on a listing page and turns each into a
// policydoc.Policy.
type Extractor struct {
	cfg policydoc.Config
}

// NewExtractor creates an Extractor. Only BaseURL, MaxPolicies,
// LinkSelector and TitleClass are read from cfg.
func NewExtractor(cfg policydoc.Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract parses raw HTML and returns at most MaxPolicies policies in
// document order.
func (e *Extractor) Extract(html string) ([]*policydoc.Policy, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, policydoc.Errorf(policydoc.EINVALID, "failed to parse HTML: %v", err)
	}
	return e.ExtractDocument(doc)
}

// ExtractDocument is like Extract but works on an already parsed document.
func (e *Extractor) ExtractDocument(doc *goquery.Document) ([]*policydoc.Policy, error) {
	base, err := url.Parse(e.cfg.BaseURL)
	if err != nil {
		return nil, policydoc.Errorf(policydoc.EINVALID, "invalid base URL: %v", err)
	}

	titles := newTitleFinder(doc, e.cfg.TitleClass)

	var policies []*policydoc.Policy
	doc.Find(e.cfg.LinkSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(policies) >= e.cfg.MaxPolicies {
			return false
		}

		href, exists := sel.Attr("href")
		if !exists || strings.TrimSpace(href) == "" {
			return true
		}

		sourceURL, ok := resolveURL(base, href)
		if !ok {
			return true
		}

		name := collapseSpace(sel.Text())
		policies = append(policies, &policydoc.Policy{
			Name:      name,
			UIN:       policydoc.FindUIN(name, sourceURL),
			Type:      titles.Find(sel.Nodes[0]),
			SourceURL: sourceURL,
		})
		return true
	})

	return policies, nil
}

// resolveURL returns href unchanged when it is already absolute and
// resolves it against base otherwise.
func resolveURL(base *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	if ref.IsAbs() {
		return href, true
	}
	return base.ResolveReference(ref).String(), true
}

// collapseSpace trims s and replaces internal runs of whitespace with a
// single space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
