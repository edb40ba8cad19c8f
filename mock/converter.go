package mock

import "github.com/fwojciec/fale"

var _ fale.Converter = (*Converter)(nil)

// Converter is a mock implementation of fale.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
