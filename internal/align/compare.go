package align

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Comparer maps words to comparison keys. Italic brackets never count as a
// difference; case, diacritics and punctuation are ignored per flags.
//
// A Comparer is not safe for concurrent use.
type Comparer struct {
	t transform.Transformer
}

// NewComparer builds a Comparer for the given insensitivity flags.
func NewComparer(ignoreCase, ignoreDiacritics, ignorePunctuation bool) *Comparer {
	chain := []transform.Transformer{
		runes.Remove(runes.Predicate(func(r rune) bool { return r == '[' || r == ']' })),
	}
	if ignoreDiacritics {
		chain = append(chain, norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	}
	if ignorePunctuation {
		chain = append(chain, runes.Remove(runes.In(unicode.P)))
	}
	if ignoreCase {
		chain = append(chain, cases.Fold())
	}
	return &Comparer{t: transform.Chain(chain...)}
}

// Key returns the comparison key of word.
func (c *Comparer) Key(word string) string {
	key, _, err := transform.String(c.t, word)
	if err != nil {
		return word
	}
	return key
}

// Equal reports whether two words are equivalent.
func (c *Comparer) Equal(a, b string) bool {
	return c.Key(a) == c.Key(b)
}
