package fale

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be a rewritten body fragment (e.g., Result.Content).
	Convert(html string) (string, error)
}
