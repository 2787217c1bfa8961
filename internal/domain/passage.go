package domain

import "strconv"

// ChapterReference addresses a single chapter of a book. Chapter 0 is the
// book introduction.
type ChapterReference struct {
	Book    string
	Chapter int
}

// IsValid reports whether the reference names a book.
func (r ChapterReference) IsValid() bool {
	return r.Book != ""
}

// String returns "Book Chapter", or an empty string for an invalid reference.
func (r ChapterReference) String() string {
	if !r.IsValid() {
		return ""
	}
	return r.Book + " " + strconv.Itoa(r.Chapter)
}

// PassageReference is a resolved citation: the chapter to render, the
// canonical display form and the verses to highlight.
//
// HighlightedVerses holds verse tokens: literal verse numbers ("16", "24b")
// or the range sentinel "-", which joins the token before it to the token
// after it. A trailing "-" leaves the range open to the end of the chapter.
type PassageReference struct {
	ChapterReference
	Display           string
	HighlightedVerses []string
}

// IsValid reports whether the passage resolved to a chapter.
func (p PassageReference) IsValid() bool {
	return p.ChapterReference.IsValid()
}

// ChapterPassage returns a chapter-only passage for ref with no highlights.
func ChapterPassage(ref ChapterReference) PassageReference {
	if !ref.IsValid() {
		return PassageReference{}
	}
	return PassageReference{ChapterReference: ref, Display: ref.String()}
}

// Chapter is the raw text of one chapter in one translation as returned by a
// content provider. Text holds one verse per line, each line starting with a
// verse label followed by a space.
type Chapter struct {
	ChapterReference
	Text            string
	Translation     string
	Previous        ChapterReference
	Next            ChapterReference
	SupportsItalics bool
	Copyright       string
}

// Book lists the chapters a translation provides for one book.
type Book struct {
	Name     string
	Chapters []ChapterReference
}

// Translation is catalog metadata for a translation.
type Translation struct {
	Code      string
	Name      string
	Language  string
	Dialect   string
	Year      string
	Copyright string
	Provider  string
}

// Suggestions are settings changes recommended after a render.
type Suggestions struct {
	IgnoreCase        bool
	IgnoreDiacritics  bool
	IgnorePunctuation bool
	// NavigateTo is set when the render produced nothing and another chapter
	// is likely to have content.
	NavigateTo *PassageReference
}

// Any reports whether at least one suggestion is present.
func (s Suggestions) Any() bool {
	return s.IgnoreCase || s.IgnoreDiacritics || s.IgnorePunctuation || s.NavigateTo != nil
}

// RenderedPassage is the result of a render request.
type RenderedPassage struct {
	Content     string
	Previous    PassageReference
	Next        PassageReference
	Suggestions Suggestions
}
