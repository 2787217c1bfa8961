package reference

import (
	"strings"
	"unicode"
)

// Book is a canonical book of the Bible with the aliases accepted in
// citations.
type Book struct {
	Name     string
	Abbrev   string
	Chapters int
	aliases  []string
}

// SingleChapter reports whether the book has exactly one chapter.
func (b Book) SingleChapter() bool {
	return b.Chapters == 1
}

// canon lists the books in canonical order. Aliases of numbered books are
// given without the ordinal; ordinal forms ("1", "i", "first", "1st") are
// generated when the index is built.
var canon = []Book{
	// Old Testament
	{"Genesis", "Gen", 50, []string{"gen", "ge", "gn"}},
	{"Exodus", "Exod", 40, []string{"exod", "exo", "ex"}},
	{"Leviticus", "Lev", 27, []string{"lev", "le", "lv"}},
	{"Numbers", "Num", 36, []string{"num", "nu", "nm", "nb"}},
	{"Deuteronomy", "Deut", 34, []string{"deut", "de", "dt"}},
	{"Joshua", "Josh", 24, []string{"josh", "jos", "jsh"}},
	{"Judges", "Judg", 21, []string{"judg", "jdg", "jg", "jdgs"}},
	{"Ruth", "Ruth", 4, []string{"rth", "ru"}},
	{"1 Samuel", "1 Sam", 31, []string{"samuel", "sam", "sa", "sm"}},
	{"2 Samuel", "2 Sam", 24, []string{"samuel", "sam", "sa", "sm"}},
	{"1 Kings", "1 Kgs", 22, []string{"kings", "kgs", "ki", "kin"}},
	{"2 Kings", "2 Kgs", 25, []string{"kings", "kgs", "ki", "kin"}},
	{"1 Chronicles", "1 Chr", 29, []string{"chronicles", "chron", "chr", "ch"}},
	{"2 Chronicles", "2 Chr", 36, []string{"chronicles", "chron", "chr", "ch"}},
	{"Ezra", "Ezra", 10, []string{"ezr", "ez"}},
	{"Nehemiah", "Neh", 13, []string{"neh", "ne"}},
	{"Esther", "Esth", 10, []string{"esth", "est", "es"}},
	{"Job", "Job", 42, []string{"jb"}},
	{"Psalms", "Ps", 150, []string{"psalm", "ps", "psa", "pss", "psm", "pslm"}},
	{"Proverbs", "Prov", 31, []string{"prov", "pro", "prv", "pr"}},
	{"Ecclesiastes", "Eccl", 12, []string{"eccl", "eccles", "ecc", "ec", "qoheleth"}},
	{"Song of Solomon", "Song", 8, []string{"songofsongs", "song", "sos", "canticles", "cant", "ss"}},
	{"Isaiah", "Isa", 66, []string{"isa", "is"}},
	{"Jeremiah", "Jer", 52, []string{"jer", "je", "jr"}},
	{"Lamentations", "Lam", 5, []string{"lam", "la"}},
	{"Ezekiel", "Ezek", 48, []string{"ezek", "eze", "ezk"}},
	{"Daniel", "Dan", 12, []string{"dan", "da", "dn"}},
	{"Hosea", "Hos", 14, []string{"hos", "ho"}},
	{"Joel", "Joel", 3, []string{"jl"}},
	{"Amos", "Amos", 9, []string{"am"}},
	{"Obadiah", "Obad", 1, []string{"obad", "ob"}},
	{"Jonah", "Jonah", 4, []string{"jon", "jnh"}},
	{"Micah", "Mic", 7, []string{"mic", "mc"}},
	{"Nahum", "Nah", 3, []string{"nah", "na"}},
	{"Habakkuk", "Hab", 3, []string{"hab", "hb"}},
	{"Zephaniah", "Zeph", 3, []string{"zeph", "zep", "zp"}},
	{"Haggai", "Hag", 2, []string{"hag", "hg"}},
	{"Zechariah", "Zech", 14, []string{"zech", "zec", "zc"}},
	{"Malachi", "Mal", 4, []string{"mal", "ml"}},
	// Deuterocanon
	{"Tobit", "Tob", 14, []string{"tob", "tb"}},
	{"Judith", "Jdt", 16, []string{"jdt", "jdth"}},
	{"1 Maccabees", "1 Macc", 16, []string{"maccabees", "macc", "mac", "ma"}},
	{"2 Maccabees", "2 Macc", 15, []string{"maccabees", "macc", "mac", "ma"}},
	{"Wisdom of Solomon", "Wis", 19, []string{"wisdom", "wis", "ws"}},
	{"Sirach", "Sir", 51, []string{"sir", "ecclesiasticus", "ecclus"}},
	{"Baruch", "Bar", 6, []string{"bar"}},
	// New Testament
	{"Matthew", "Matt", 28, []string{"matt", "mat", "mt"}},
	{"Mark", "Mark", 16, []string{"mrk", "mar", "mk", "mr"}},
	{"Luke", "Luke", 24, []string{"luk", "lk"}},
	{"John", "John", 21, []string{"jhn", "jn", "joh"}},
	{"Acts", "Acts", 28, []string{"act", "ac"}},
	{"Romans", "Rom", 16, []string{"rom", "ro", "rm"}},
	{"1 Corinthians", "1 Cor", 16, []string{"corinthians", "cor", "co"}},
	{"2 Corinthians", "2 Cor", 13, []string{"corinthians", "cor", "co"}},
	{"Galatians", "Gal", 6, []string{"gal", "ga"}},
	{"Ephesians", "Eph", 6, []string{"eph", "ephes"}},
	{"Philippians", "Phil", 4, []string{"phil", "php", "pp"}},
	{"Colossians", "Col", 4, []string{"col", "co"}},
	{"1 Thessalonians", "1 Thess", 5, []string{"thessalonians", "thess", "thes", "th"}},
	{"2 Thessalonians", "2 Thess", 3, []string{"thessalonians", "thess", "thes", "th"}},
	{"1 Timothy", "1 Tim", 6, []string{"timothy", "tim", "ti", "tm"}},
	{"2 Timothy", "2 Tim", 4, []string{"timothy", "tim", "ti", "tm"}},
	{"Titus", "Titus", 3, []string{"tit", "ti"}},
	{"Philemon", "Phlm", 1, []string{"phlm", "philem", "phm", "pm"}},
	{"Hebrews", "Heb", 13, []string{"heb"}},
	{"James", "Jas", 5, []string{"jas", "jm"}},
	{"1 Peter", "1 Pet", 5, []string{"peter", "pet", "pe", "pt"}},
	{"2 Peter", "2 Pet", 3, []string{"peter", "pet", "pe", "pt"}},
	{"1 John", "1 John", 5, []string{"john", "jhn", "jn", "jo"}},
	{"2 John", "2 John", 1, []string{"john", "jhn", "jn", "jo"}},
	{"3 John", "3 John", 1, []string{"john", "jhn", "jn", "jo"}},
	{"Jude", "Jude", 1, []string{"jud", "jd"}},
	{"Revelation", "Rev", 22, []string{"rev", "re", "rv", "revelations", "apocalypse"}},
}

var ordinals = map[string][]string{
	"1": {"1", "i", "first", "1st"},
	"2": {"2", "ii", "second", "2nd"},
	"3": {"3", "iii", "third", "3rd"},
	"4": {"4", "iv", "fourth", "4th"},
}

// index maps alias keys to positions in canon. It is built once at init and
// only read afterwards.
var index = buildIndex(canon)

func buildIndex(books []Book) map[string]int {
	idx := make(map[string]int, len(books)*8)

	// Canonical names and explicit aliases win over generated ordinal forms,
	// so "isa" stays Isaiah rather than "I Sa(muel)".
	for i, b := range books {
		register(idx, aliasKey(b.Name), i)
		register(idx, aliasKey(b.Abbrev), i)
		if ordinalOf(b.Name) == "" {
			for _, a := range b.aliases {
				register(idx, aliasKey(a), i)
			}
		}
	}
	for i, b := range books {
		n := ordinalOf(b.Name)
		if n == "" {
			continue
		}
		for _, o := range ordinals[n] {
			for _, a := range b.aliases {
				register(idx, o+aliasKey(a), i)
			}
		}
	}
	return idx
}

func register(idx map[string]int, key string, i int) {
	if key == "" {
		return
	}
	if _, taken := idx[key]; !taken {
		idx[key] = i
	}
}

// ordinalOf returns the leading digit of numbered book names ("1 John").
func ordinalOf(name string) string {
	if len(name) > 2 && name[1] == ' ' && name[0] >= '1' && name[0] <= '4' {
		return name[:1]
	}
	return ""
}

// aliasKey lowercases s and drops everything but letters and digits, so
// aliases compare case- and punctuation-insensitively.
func aliasKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LookupBook finds a book by name or alias.
func LookupBook(name string) (Book, bool) {
	i, ok := index[aliasKey(name)]
	if !ok {
		return Book{}, false
	}
	return canon[i], true
}

// Books returns the canonical book list in order.
func Books() []Book {
	out := make([]Book, len(canon))
	copy(out, canon)
	return out
}
