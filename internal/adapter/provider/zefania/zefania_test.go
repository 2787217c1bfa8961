package zefania_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/interlinear/internal/adapter/provider/zefania"
	"github.com/heartmarshall/interlinear/internal/domain"
)

const kjv = `<?xml version="1.0" encoding="utf-8"?>
<XMLBIBLE biblename="King James Version">
  <INFORMATION>
    <title>King James Version</title>
    <identifier>KJV</identifier>
    <language>ENG</language>
    <rights>Public Domain</rights>
    <date>1611-01-01</date>
  </INFORMATION>
  <BIBLEBOOK bnumber="1" bname="Genesis">
    <CHAPTER cnumber="1">
      <VERS vnumber="1">In the beginning God created the heaven and the earth.</VERS>
      <VERS vnumber="2">And the earth was without form, and void; and darkness <STYLE fs="italic">was</STYLE> upon the face of the deep.<NOTE>Or, the spirit</NOTE></VERS>
    </CHAPTER>
    <CHAPTER cnumber="2">
      <VERS vnumber="1">Thus the heavens and the earth were finished.</VERS>
    </CHAPTER>
  </BIBLEBOOK>
  <BIBLEBOOK bnumber="65" bname="Jude">
    <CHAPTER cnumber="1">
      <VERS vnumber="1">Jude, the servant of Jesus Christ,</VERS>
    </CHAPTER>
  </BIBLEBOOK>
</XMLBIBLE>`

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParse_Metadata(t *testing.T) {
	t.Parallel()

	b, err := zefania.Parse(strings.NewReader(kjv), "")
	require.NoError(t, err)

	assert.Equal(t, domain.Translation{
		Code:      "KJV",
		Name:      "King James Version",
		Language:  "eng",
		Year:      "1611",
		Copyright: "Public Domain",
		Provider:  zefania.ProviderName,
	}, b.Translation)
}

func TestParse_ChaptersAndNeighbours(t *testing.T) {
	t.Parallel()

	b, err := zefania.Parse(strings.NewReader(kjv), "AV")
	require.NoError(t, err)

	ch, err := b.GetChapter("AV", "Genesis", 1)
	require.NoError(t, err)
	assert.Equal(t,
		"1 In the beginning God created the heaven and the earth.\n"+
			"2 And the earth was without form, and void; and darkness [was] upon the face of the deep.",
		ch.Text)
	assert.True(t, ch.SupportsItalics)
	assert.False(t, ch.Previous.IsValid())
	assert.Equal(t, domain.ChapterReference{Book: "Genesis", Chapter: 2}, ch.Next)

	jude, err := b.GetChapter("AV", "Jude", 1)
	require.NoError(t, err)
	assert.Equal(t, domain.ChapterReference{Book: "Genesis", Chapter: 2}, jude.Previous)
	assert.False(t, jude.Next.IsValid())

	_, err = b.GetChapter("AV", "Exodus", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	books := b.Books(true)
	require.Len(t, books, 2)
	assert.Len(t, books[0].Chapters, 2)
	assert.Empty(t, b.Books(false)[0].Chapters)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "not zefania", doc: `<?xml version="1.0"?><osis/>`},
		{name: "no code", doc: `<?xml version="1.0"?><XMLBIBLE biblename="x"></XMLBIBLE>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := zefania.Parse(strings.NewReader(tt.doc), "")
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestProvider_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "KJV.xml"), []byte(kjv), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "WEB.xml"), []byte(strings.ReplaceAll(kjv, "King James", "World English")), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	p, err := zefania.Open(context.Background(), discard(), dir)
	require.NoError(t, err)
	ctx := context.Background()

	trs, err := p.GetTranslations(ctx)
	require.NoError(t, err)
	require.Len(t, trs, 2)
	assert.Equal(t, "KJV", trs[0].Code)
	assert.Equal(t, "World English Version", trs[1].Name)

	ch, err := p.GetChapter(ctx, "WEB", "Genesis", 2)
	require.NoError(t, err)
	assert.Equal(t, "WEB", ch.Translation)

	_, err = p.GetChapter(ctx, "ESV", "Genesis", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = p.GetBooks(ctx, "ESV", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProvider_InvalidFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "BAD.xml"), []byte(`<?xml version="1.0"?><osis/>`), 0o600))

	_, err := zefania.Open(context.Background(), discard(), dir)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProvider_PingEmptyDirectory(t *testing.T) {
	t.Parallel()

	p, err := zefania.Open(context.Background(), discard(), t.TempDir())
	require.NoError(t, err)
	assert.ErrorIs(t, p.Ping(context.Background()), domain.ErrNotFound)
}

func TestFromBibles(t *testing.T) {
	t.Parallel()

	b, err := zefania.Parse(strings.NewReader(kjv), "KJV")
	require.NoError(t, err)

	p := zefania.FromBibles(discard(), b)
	require.NoError(t, p.Ping(context.Background()))

	ch, err := p.GetChapter(context.Background(), "KJV", "Genesis", 2)
	require.NoError(t, err)
	assert.Equal(t, "Genesis", ch.Book)

	trs, err := p.GetTranslations(context.Background())
	require.NoError(t, err)
	require.Len(t, trs, 1)
	assert.Equal(t, "KJV", trs[0].Code)
}
