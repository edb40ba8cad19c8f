package fale

import (
	"net/url"
	"strings"
)

// FetchedDocument is the raw text of a remote document.
type FetchedDocument struct {
	// URL is the effective URL the body was read from, after redirects.
	URL string

	// Body is the response body as text.
	Body string
}

// Result is the rewritten form of a fetched document.
type Result struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	OriginalURL string `json:"originalUrl"`
}

// ValidateURL returns an EINVALID error unless rawURL is an absolute
// http or https URL with a host.
func ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return Errorf(EINVALID, "URL is required")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALID, "invalid URL %q", rawURL)
	}
	if !u.IsAbs() {
		return Errorf(EINVALID, "invalid URL %q: must be absolute", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "invalid URL %q: unsupported scheme %q", rawURL, u.Scheme)
	}
	if u.Hostname() == "" {
		return Errorf(EINVALID, "invalid URL %q: missing host", rawURL)
	}
	return nil
}
