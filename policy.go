package policydoc

import (
	"context"
	"regexp"
)

// Sentinel values for fields that cannot be determined from the page.
const (
	NotAvailable = "N/A"
	UnknownType  = "Unknown"
)

// UINPattern matches a Unique Identification Number such as 101N146V08.
var UINPattern = regexp.MustCompile(`[0-9]{3}[A-Z][0-9]{3}[A-Z][0-9]{2}`)

// Policy represents a policy document discovered on the listing page.
type Policy struct {
	Name      string `json:"name"`
	UIN       string `json:"uin"`
	Type      string `json:"type"`
	SourceURL string `json:"sourceUrl"`
}

// Validate returns an error if the policy contains invalid fields.
func (p *Policy) Validate() error {
	if p.Type == "" {
		return Errorf(EINVALID, "policy type required")
	}
	if p.UIN != NotAvailable && UINPattern.FindString(p.UIN) != p.UIN {
		return Errorf(EINVALID, "malformed UIN %q", p.UIN)
	}
	return nil
}

// FindUIN returns the first UIN found in any of the given strings, searched
// in order. Returns NotAvailable if none contains a match.
func FindUIN(candidates ...string) string {
	for _, s := range candidates {
		if uin := UINPattern.FindString(s); uin != "" {
			return uin
		}
	}
	return NotAvailable
}

// PolicyExtractor extracts policies from a listing page.
type PolicyExtractor interface {
	// Extract parses raw HTML and returns policies in document order,
	// capped at the configured maximum.
	Extract(html string) ([]*Policy, error)
}

// PolicyWriter persists extracted policies as a table.
type PolicyWriter interface {
	// WritePolicies writes a header row followed by one row per policy,
	// replacing any existing table.
	WritePolicies(ctx context.Context, policies []*Policy) error
}
