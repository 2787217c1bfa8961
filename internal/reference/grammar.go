package reference

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// citationGrammar is the part of a citation after the book name, with
// whitespace removed and dots already turned into colons.
// Examples: "3", "3:16", "3:16-18", "23:13-14;15", "3:16-4:2", "5b", "1:5,7-".
//
//nolint:govet // participle grammar tags are not standard struct tags
type citationGrammar struct {
	Ranges []*rangeGrammar `@@ ( ( ";" | "," ) @@ )*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type rangeGrammar struct {
	Start *pointGrammar `@@`
	Tail  *tailGrammar  `@@?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type tailGrammar struct {
	Dash bool          `@"-"`
	End  *pointGrammar `@@?`
}

// pointGrammar is either "n[letter]" or "chapter:verse[letter]"; which one
// the leading number means depends on context.
//
//nolint:govet // participle grammar tags are not standard struct tags
type pointGrammar struct {
	First    int           `@Int`
	FirstSub string        `@Letter?`
	Verse    *verseGrammar `@@?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type verseGrammar struct {
	Colon  bool   `@":"`
	Number int    `@Int`
	Sub    string `@Letter?`
}

var citationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Letter", Pattern: `[a-z]`},
	{Name: "Punct", Pattern: `[:;,\-]`},
})

var citationParser = participle.MustBuild[citationGrammar](
	participle.Lexer(citationLexer),
)

// parseCitation parses the chapter/verse part of a citation.
func parseCitation(s string) (*citationGrammar, error) {
	return citationParser.ParseString("", s)
}

// label renders the point's leading number with its letter suffix.
func (p *pointGrammar) label() string {
	return strconv.Itoa(p.First) + p.FirstSub
}

// label renders the verse part with its letter suffix.
func (v *verseGrammar) label() string {
	return strconv.Itoa(v.Number) + v.Sub
}
