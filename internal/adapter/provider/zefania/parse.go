// Package zefania reads Bibles in the Zefania XML format and serves them as
// a read-only content provider.
package zefania

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/heartmarshall/interlinear/internal/domain"
	"github.com/heartmarshall/interlinear/internal/reference"
)

// ProviderName is recorded as the provider of every translation read here.
const ProviderName = "zefania"

var (
	exprInformation = xpath.MustCompile("/XMLBIBLE/INFORMATION")
	exprBooks       = xpath.MustCompile("/XMLBIBLE/BIBLEBOOK")
	exprChapters    = xpath.MustCompile("CHAPTER")
	exprVerses      = xpath.MustCompile("VERS")
)

// deuterocanon is skipped when numbering books, since Zefania numbers
// 1-66 follow the Protestant canon.
var deuterocanon = map[string]bool{
	"Tobit": true, "Judith": true, "1 Maccabees": true, "2 Maccabees": true,
	"Wisdom of Solomon": true, "Sirach": true, "Baruch": true,
}

var numbered = func() []string {
	var out []string
	for _, b := range reference.Books() {
		if !deuterocanon[b.Name] {
			out = append(out, b.Name)
		}
	}
	return out
}()

// Bible is one parsed Zefania file.
type Bible struct {
	Translation domain.Translation
	books       []domain.Book
	chapters    map[domain.ChapterReference]*domain.Chapter
}

// Parse reads a Zefania document. code overrides the identifier found in the
// file; one of the two must be present.
func Parse(r io.Reader, code string) (*Bible, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("zefania.Parse: %w", err)
	}

	root := xmlquery.FindOne(doc, "/XMLBIBLE")
	if root == nil {
		return nil, fmt.Errorf("zefania.Parse: no XMLBIBLE element: %w", domain.ErrValidation)
	}

	tr := information(root, xmlquery.QuerySelector(doc, exprInformation))
	if code != "" {
		tr.Code = code
	}
	if tr.Code == "" {
		return nil, fmt.Errorf("zefania.Parse: translation code: %w", domain.ErrValidation)
	}

	b := &Bible{
		Translation: tr,
		chapters:    make(map[domain.ChapterReference]*domain.Chapter),
	}

	italics := false
	var order []*domain.Chapter
	for _, bookNode := range xmlquery.QuerySelectorAll(doc, exprBooks) {
		name, ok := bookName(bookNode)
		if !ok {
			continue
		}
		book := domain.Book{Name: name}
		for _, chNode := range xmlquery.QuerySelectorAll(bookNode, exprChapters) {
			n, err := strconv.Atoi(strings.TrimSpace(chNode.SelectAttr("cnumber")))
			if err != nil || n < 0 {
				continue
			}
			text, hasItalics := chapterText(chNode)
			italics = italics || hasItalics

			ref := domain.ChapterReference{Book: name, Chapter: n}
			if _, dup := b.chapters[ref]; dup {
				continue
			}
			ch := &domain.Chapter{
				ChapterReference: ref,
				Text:             text,
				Translation:      tr.Code,
			}
			b.chapters[ref] = ch
			book.Chapters = append(book.Chapters, ref)
			order = append(order, ch)
		}
		if len(book.Chapters) > 0 {
			b.books = append(b.books, book)
		}
	}

	for i, ch := range order {
		ch.SupportsItalics = italics
		if i > 0 {
			ch.Previous = order[i-1].ChapterReference
		}
		if i < len(order)-1 {
			ch.Next = order[i+1].ChapterReference
		}
	}
	return b, nil
}

func information(root, info *xmlquery.Node) domain.Translation {
	tr := domain.Translation{
		Name:     strings.TrimSpace(root.SelectAttr("biblename")),
		Provider: ProviderName,
	}
	if info == nil {
		return tr
	}
	field := func(name string) string {
		if n := xmlquery.FindOne(info, name); n != nil {
			return strings.TrimSpace(n.InnerText())
		}
		return ""
	}
	if title := field("title"); title != "" {
		tr.Name = title
	}
	tr.Code = field("identifier")
	tr.Language = strings.ToLower(field("language"))
	tr.Copyright = field("rights")
	if date := field("date"); len(date) >= 4 {
		tr.Year = date[:4]
	}
	return tr
}

// bookName maps a BIBLEBOOK to its canonical name, by number first and by
// name for books outside the numbered canon.
func bookName(n *xmlquery.Node) (string, bool) {
	if num, err := strconv.Atoi(strings.TrimSpace(n.SelectAttr("bnumber"))); err == nil && num >= 1 && num <= len(numbered) {
		return numbered[num-1], true
	}
	if b, ok := reference.LookupBook(n.SelectAttr("bname")); ok {
		return b.Name, true
	}
	return "", false
}

// chapterText renders the verses of a CHAPTER as "number text" lines.
func chapterText(ch *xmlquery.Node) (string, bool) {
	var (
		lines   []string
		italics bool
	)
	for _, v := range xmlquery.QuerySelectorAll(ch, exprVerses) {
		var sb strings.Builder
		if writeInline(&sb, v) {
			italics = true
		}
		text := strings.Join(strings.Fields(sb.String()), " ")
		if text == "" {
			continue
		}
		if num := strings.TrimSpace(v.SelectAttr("vnumber")); num != "" {
			text = num + " " + text
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n"), italics
}

// writeInline appends the text of n's children. Notes are dropped and italic
// STYLE runs are wrapped in square brackets.
func writeInline(sb *strings.Builder, n *xmlquery.Node) bool {
	italics := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.TextNode, xmlquery.CharDataNode:
			sb.WriteString(c.Data)
		case xmlquery.ElementNode:
			switch strings.ToUpper(c.Data) {
			case "NOTE":
			case "BR":
				sb.WriteByte(' ')
			case "STYLE":
				if strings.EqualFold(c.SelectAttr("fs"), "italic") {
					sb.WriteByte('[')
					writeInline(sb, c)
					sb.WriteByte(']')
					italics = true
					continue
				}
				italics = writeInline(sb, c) || italics
			default:
				italics = writeInline(sb, c) || italics
			}
		}
	}
	return italics
}

// GetChapter returns a chapter of this Bible.
func (b *Bible) GetChapter(translation, book string, chapter int) (*domain.Chapter, error) {
	if translation != b.Translation.Code {
		return nil, fmt.Errorf("translation %s: %w", translation, domain.ErrNotFound)
	}
	ch, ok := b.chapters[domain.ChapterReference{Book: book, Chapter: chapter}]
	if !ok {
		return nil, fmt.Errorf("chapter %s %d: %w", book, chapter, domain.ErrNotFound)
	}
	out := *ch
	return &out, nil
}

// Books returns the books in file order.
func (b *Bible) Books(includeChapters bool) []domain.Book {
	out := make([]domain.Book, len(b.books))
	for i, book := range b.books {
		out[i] = domain.Book{Name: book.Name}
		if includeChapters {
			out[i].Chapters = append([]domain.ChapterReference(nil), book.Chapters...)
		}
	}
	return out
}
