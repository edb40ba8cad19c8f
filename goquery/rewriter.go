package goquery

import "github.com/fwojciec/fale"

// Ensure Rewriter implements fale.Rewriter at compile time.
var _ fale.Rewriter = (*Rewriter)(nil)

// Rewriter composes a Transformer with Extract.
type Rewriter struct {
	transformer *Transformer
}

// NewRewriter creates a Rewriter using t, or a default Transformer when t is nil.
func NewRewriter(t *Transformer) *Rewriter {
	if t == nil {
		t = NewTransformer()
	}
	return &Rewriter{transformer: t}
}

// Rewrite transforms doc and extracts its title and body content.
func (r *Rewriter) Rewrite(doc *fale.FetchedDocument, originalURL string) (*fale.Result, error) {
	d, err := r.transformer.Transform(doc)
	if err != nil {
		return nil, err
	}
	return Extract(d, originalURL)
}
