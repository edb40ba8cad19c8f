package fale

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultSubstitution is the word pair the service rewrites by default.
var DefaultSubstitution = Substitution{Find: "yale", Replace: "fale"}

// Substitution describes a case-preserving word replacement.
//
// Matching is case-insensitive and substring based: Find does not need to
// stand on a word boundary. Each match is replaced by Replace rendered in the
// case pattern of the matched text:
//
//   - an all-uppercase match yields an all-uppercase replacement;
//   - an all-lowercase match yields an all-lowercase replacement;
//   - anything else yields the replacement with only its first letter uppercase.
type Substitution struct {
	Find    string
	Replace string
}

// Apply returns text with every occurrence of s.Find replaced.
// Matches never overlap and replaced text is not scanned again. Bytes
// outside the matches, including invalid UTF-8, are copied unchanged.
func (s Substitution) Apply(text string) string {
	if s.Find == "" || text == "" {
		return text
	}

	n := utf8.RuneCountInString(s.Find)

	var b strings.Builder
	last := 0
	for i := 0; i < len(text); {
		j := advance(text, i, n)
		if j < 0 {
			break
		}
		if !strings.EqualFold(text[i:j], s.Find) {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
			continue
		}
		if last == 0 {
			b.Grow(len(text))
		}
		b.WriteString(text[last:i])
		b.WriteString(s.render(text[i:j]))
		i = j
		last = j
	}

	// No match: return the input without copying.
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// advance returns the byte offset n runes past i, or -1 if text ends first.
func advance(text string, i, n int) int {
	for ; n > 0; n-- {
		if i >= len(text) {
			return -1
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return i
}

// render returns s.Replace cased after match.
func (s Substitution) render(match string) string {
	switch {
	case match == strings.ToUpper(match):
		return strings.ToUpper(s.Replace)
	case match == strings.ToLower(match):
		return strings.ToLower(s.Replace)
	default:
		return capitalize(s.Replace)
	}
}

// capitalize uppercases the first rune of s and lowercases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return strings.ToLower(s)
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
