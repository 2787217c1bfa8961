// Package reference resolves free-text scripture citations ("Jn 3.16",
// "Matthew 23:13-14", "Jude 5") into canonical passage references, and
// encodes their display form as URL path segments.
package reference

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/heartmarshall/interlinear/internal/domain"
)

// Resolve parses a citation. defaultChapter is used when the citation names
// only a book; a negative value means chapter 1. Text that does not name a
// known book, or whose chapter/verse part cannot be parsed, yields the zero
// PassageReference.
func Resolve(text string, defaultChapter int) domain.PassageReference {
	s := domain.NormalizeCitation(text)
	if s == "" {
		return domain.PassageReference{}
	}

	bookPart, rest := splitBook(s)
	book, ok := LookupBook(bookPart)
	if !ok {
		return domain.PassageReference{}
	}

	rest = strings.ReplaceAll(rest, " ", "")
	rest = strings.ReplaceAll(rest, ".", ":")
	rest = strings.TrimRight(rest, ":;,")

	if rest == "" {
		chapter := defaultChapter
		if chapter < 0 {
			chapter = 1
		}
		return domain.ChapterPassage(domain.ChapterReference{
			Book:    book.Name,
			Chapter: clampChapter(book, chapter),
		})
	}

	g, err := parseCitation(rest)
	if err != nil || len(g.Ranges) == 0 {
		return domain.PassageReference{}
	}

	return build(book, g, strings.Contains(rest, ":"))
}

// splitBook splits a normalized citation at the first digit that follows a
// letter, so leading ordinals stay with the book name ("1 john 3:16").
func splitBook(s string) (book, rest string) {
	seenLetter := false
	for i, r := range s {
		if unicode.IsLetter(r) {
			seenLetter = true
			continue
		}
		if seenLetter && unicode.IsDigit(r) {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func build(book Book, g *citationGrammar, colon bool) domain.PassageReference {
	chapter := 0
	var tokens, parts []string

	for i, rg := range g.Ranges {
		start := rg.Start
		var startVerse string

		if i == 0 {
			switch {
			case start.Verse != nil:
				chapter = start.First
				startVerse = start.Verse.label()
			case book.SingleChapter() && start.First != 0:
				chapter = 1
				startVerse = start.label()
			default:
				// Chapter-only, or a chapter range such as "3-4".
				chapter = start.First
			}
		} else {
			if start.Verse != nil {
				if start.First != chapter {
					continue
				}
				startVerse = start.Verse.label()
			} else {
				startVerse = start.label()
			}
		}

		if startVerse == "" {
			continue
		}

		tokens = append(tokens, startVerse)
		piece := startVerse

		if rg.Tail != nil {
			end := rg.Tail.End
			switch {
			case end == nil:
				tokens = append(tokens, "-")
				piece += "-"
			case end.Verse != nil && end.First > chapter:
				// Runs into a later chapter: open to the end of this one.
				tokens = append(tokens, "-")
				piece += "-" + strconv.Itoa(end.First) + ":" + end.Verse.label()
			case end.Verse != nil && end.First == chapter:
				tokens = append(tokens, "-", end.Verse.label())
				piece += "-" + end.Verse.label()
			case end.Verse == nil:
				tokens = append(tokens, "-", end.label())
				piece += "-" + end.label()
			}
		}

		parts = append(parts, piece)
	}

	// "Jude 1" means the chapter, not verse 1 of it.
	if book.SingleChapter() && !colon && len(tokens) == 1 && tokens[0] == "1" {
		tokens, parts = nil, nil
	}

	ref := domain.ChapterReference{Book: book.Name, Chapter: clampChapter(book, chapter)}
	display := ref.String()
	if len(parts) > 0 {
		display += ":" + strings.Join(parts, ",")
	}

	return domain.PassageReference{
		ChapterReference:  ref,
		Display:           display,
		HighlightedVerses: tokens,
	}
}

func clampChapter(book Book, chapter int) int {
	if book.Chapters > 0 && chapter > book.Chapters {
		return book.Chapters
	}
	return chapter
}
