package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fale"
)

// Extract projects a transformed document into a fale.Result.
//
// Title is the text of the first <title> element, or empty when there is
// none. Content is the serialized inner HTML of <body>.
func Extract(doc *goquery.Document, originalURL string) (*fale.Result, error) {
	title := doc.Find("title").First().Text()

	content, err := doc.Find("body").First().Html()
	if err != nil {
		return nil, fale.Errorf(fale.EINTERNAL, "failed to render content: %v", err)
	}

	return &fale.Result{
		Title:       title,
		Content:     content,
		OriginalURL: originalURL,
	}, nil
}
