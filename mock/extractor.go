package mock

import "github.com/fwojciec/policydoc"

var _ policydoc.PolicyExtractor = (*PolicyExtractor)(nil)

// PolicyExtractor is a mock implementation of policydoc.PolicyExtractor.
type PolicyExtractor struct {
	ExtractFn func(html string) ([]*policydoc.Policy, error)
}

func (e *PolicyExtractor) Extract(html string) ([]*policydoc.Policy, error) {
	return e.ExtractFn(html)
}
