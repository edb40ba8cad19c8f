package fale_test

import (
	"testing"

	"github.com/fwojciec/fale"
	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	t.Parallel()

	t.Run("accepts absolute http and https URLs", func(t *testing.T) {
		t.Parallel()

		for _, u := range []string{
			"https://example.com/",
			"http://example.com",
			"https://www.yale.edu/about?x=1#top",
			"HTTPS://EXAMPLE.COM/path",
			"http://127.0.0.1:8080/page",
		} {
			assert.NoError(t, fale.ValidateURL(u), u)
		}
	})

	t.Run("rejects malformed URLs with EINVALID", func(t *testing.T) {
		t.Parallel()

		for _, u := range []string{
			"not-a-valid-url",
			"/relative/path",
			"example.com",
			"ftp://example.com/file",
			"javascript:alert(1)",
			"http://",
			"http://[::1",
			"https:///path-only",
		} {
			err := fale.ValidateURL(u)
			assert.Equal(t, fale.EINVALID, fale.ErrorCode(err), u)
		}
	})

	t.Run("rejects empty URL as required", func(t *testing.T) {
		t.Parallel()

		for _, u := range []string{"", "   "} {
			err := fale.ValidateURL(u)
			assert.Equal(t, fale.EINVALID, fale.ErrorCode(err))
			assert.Equal(t, "URL is required", fale.ErrorMessage(err))
		}
	})
}
