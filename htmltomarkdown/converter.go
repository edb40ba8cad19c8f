// Package htmltomarkdown renders the rewritten body content of a fale.Result
// as Markdown for `fale fetch --markdown`.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/fale"
)

// Ensure Converter implements fale.Converter at compile time.
var _ fale.Converter = (*Converter)(nil)

// Converter turns rewritten body HTML into CommonMark with GitHub-style
// tables. Links keep their original targets, so a page about Fale still
// points at yale.edu.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a Converter with the base, CommonMark and table plugins.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders body content as Markdown. Content of a page with an empty
// body converts to an empty string rather than an error.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", fale.Errorf(fale.EINTERNAL, "failed to convert HTML to Markdown: %v", err)
	}

	return result, nil
}
