package mock

import "github.com/fwojciec/fale"

var _ fale.Rewriter = (*Rewriter)(nil)

// Rewriter is a mock implementation of fale.Rewriter.
type Rewriter struct {
	RewriteFn func(doc *fale.FetchedDocument, originalURL string) (*fale.Result, error)
}

func (r *Rewriter) Rewrite(doc *fale.FetchedDocument, originalURL string) (*fale.Result, error) {
	return r.RewriteFn(doc, originalURL)
}
