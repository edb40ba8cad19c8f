// Package goquery implements fale.Rewriter on top of goquery and the
// golang.org/x/net/html node tree.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fale"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// opaque lists elements whose children are raw text rather than rendered
// content. Their text is never rewritten.
var opaque = map[atom.Atom]bool{
	atom.Script:    true,
	atom.Style:     true,
	atom.Noscript:  true,
	atom.Noembed:   true,
	atom.Noframes:  true,
	atom.Iframe:    true,
	atom.Xmp:       true,
	atom.Plaintext: true,
}

// Transformer parses HTML and applies a fale.Substitution to every text
// node that is rendered as content. Attribute values, comments and the
// bodies of opaque elements such as <script> and <style> are left as is.
type Transformer struct {
	sub fale.Substitution
}

// TransformerOption configures a Transformer.
type TransformerOption func(*Transformer)

// WithSubstitution sets the word pair to rewrite.
// Defaults to fale.DefaultSubstitution.
func WithSubstitution(s fale.Substitution) TransformerOption {
	return func(t *Transformer) {
		t.sub = s
	}
}

// NewTransformer creates a new Transformer.
func NewTransformer(opts ...TransformerOption) *Transformer {
	t := &Transformer{sub: fale.DefaultSubstitution}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Substitution returns the word pair applied by t.
func (t *Transformer) Substitution() fale.Substitution {
	return t.sub
}

// Transform parses doc.Body and rewrites its text in place.
// Malformed markup is repaired by the parser, never rejected.
func (t *Transformer) Transform(doc *fale.FetchedDocument) (*goquery.Document, error) {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Body))
	if err != nil {
		return nil, fale.Errorf(fale.EINTERNAL, "failed to parse HTML: %v", err)
	}
	if u, err := url.Parse(doc.URL); err == nil && doc.URL != "" {
		d.Url = u
	}

	for _, n := range d.Nodes {
		t.walk(n)
	}
	return d, nil
}

// walk rewrites text nodes under n in document order.
func (t *Transformer) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		n.Data = t.sub.Apply(n.Data)
		return
	case html.ElementNode:
		if opaque[n.DataAtom] {
			return
		}
	case html.CommentNode, html.DoctypeNode:
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		t.walk(c)
	}
}
