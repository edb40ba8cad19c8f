package fale

import "context"

// Rewriter parses a fetched document, applies a Substitution to its visible
// text and projects the result.
type Rewriter interface {
	// Rewrite never fails on malformed markup; parsers are expected to be
	// tolerant. A missing title or empty body yields empty fields.
	Rewrite(doc *FetchedDocument, originalURL string) (*Result, error)
}

// Service runs the whole fetch and rewrite pipeline for one URL.
// Implementations hold no mutable state and are safe for concurrent use.
type Service interface {
	// Fetch returns EINVALID for malformed URLs without touching the network
	// and EFETCH when the document cannot be retrieved. No partial result is
	// returned alongside an error.
	Fetch(ctx context.Context, url string) (*Result, error)
}
