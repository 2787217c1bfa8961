// Package align lines up two renderings of the same verse word by word and
// reports where they diverge.
package align

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/interlinear/internal/verse"
)

// Options controls word equivalence and italics handling.
type Options struct {
	IgnoreCase        bool
	IgnoreDiacritics  bool
	IgnorePunctuation bool
	// RenderItalics keeps "[...]" italic markup; otherwise brackets are
	// removed before alignment.
	RenderItalics bool
	// SupportsItalics is false when either chapter does not use "[...]" for
	// italics, in which case brackets are literal and removed.
	SupportsItalics bool
}

// Segment is a run of the aligned verse. Common segments hold words both
// lines share; divergent segments hold one divergent phrase.
type Segment struct {
	Primary   string
	Secondary string
	Divergent bool
	// Index is the position of the first primary word of the segment in the
	// primary line. For additions it is the position of Neighbour.
	Index int
	// Neighbour is the primary word next to an addition: the word before it,
	// or the word after it at the start of the line (NeighbourFollows).
	Neighbour        string
	NeighbourFollows bool
}

// IsAddition reports whether the segment has words only in the secondary line.
func (s Segment) IsAddition() bool { return s.Divergent && s.Primary == "" }

// IsOmission reports whether the segment has words only in the primary line.
func (s Segment) IsOmission() bool { return s.Divergent && s.Secondary == "" }

// Result is an aligned verse.
type Result struct {
	Number1 string
	Number2 string
	// SingleSided is set when either line is empty; Segments then holds one
	// segment with both bodies and no alignment was attempted.
	SingleSided bool
	Reverse     bool
	Segments    []Segment

	WordCount1       int
	WordCount2       int
	WordsInCommon    int
	DivergentPhrases int

	keys1 []string
}

// Occurrence returns which occurrence (1-based) of its phrase in the primary
// line the segment is. For additions the neighbouring word is counted.
func (r Result) Occurrence(seg Segment) int {
	phrase := r.phraseKeys(seg)
	if len(phrase) == 0 {
		return 1
	}
	n := 0
	for j := 0; j <= seg.Index && j+len(phrase) <= len(r.keys1); j++ {
		if equalKeys(r.keys1[j:j+len(phrase)], phrase) {
			n++
		}
	}
	return max(n, 1)
}

// Repeated reports whether the segment's phrase occurs more than once in the
// primary line.
func (r Result) Repeated(seg Segment) bool {
	phrase := r.phraseKeys(seg)
	if len(phrase) == 0 {
		return false
	}
	n := 0
	for j := 0; j+len(phrase) <= len(r.keys1); j++ {
		if equalKeys(r.keys1[j:j+len(phrase)], phrase) {
			n++
			if n > 1 {
				return true
			}
		}
	}
	return false
}

func (r Result) phraseKeys(seg Segment) []string {
	n := len(strings.Fields(seg.Primary))
	if seg.IsAddition() && seg.Neighbour != "" {
		n = 1
	}
	if n == 0 || seg.Index < 0 || seg.Index+n > len(r.keys1) {
		return nil
	}
	return r.keys1[seg.Index : seg.Index+n]
}

func equalKeys(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Aligner aligns verse pairs under one set of options. It is not safe for
// concurrent use; build one per request.
type Aligner struct {
	opts Options
	cmp  *Comparer
}

// New returns an Aligner for opts.
func New(opts Options) *Aligner {
	return &Aligner{
		opts: opts,
		cmp:  NewComparer(opts.IgnoreCase, opts.IgnoreDiacritics, opts.IgnorePunctuation),
	}
}

// Align aligns two verse lines, each optionally starting with a verse label.
func Align(line1, line2 string, opts Options, reverse bool) Result {
	return New(opts).Align(line1, line2, reverse)
}

// Best runs both scans and returns the better one.
func Best(line1, line2 string, opts Options) Result {
	return New(opts).Best(line1, line2)
}

// Align aligns two verse lines, each optionally starting with a verse label.
// An invalid label is treated as absent.
func (a *Aligner) Align(line1, line2 string, reverse bool) Result {
	n1, body1 := verse.StripLabel(line1)
	n2, body2 := verse.StripLabel(line2)
	return a.AlignLines(verse.Line{Number: n1, Text: body1}, verse.Line{Number: n2, Text: body2}, reverse)
}

// Best aligns both ways and keeps the scan with more words in common, then
// the one with fewer divergent phrases, then the forward scan.
func (a *Aligner) Best(line1, line2 string) Result {
	n1, body1 := verse.StripLabel(line1)
	n2, body2 := verse.StripLabel(line2)
	return a.BestLines(verse.Line{Number: n1, Text: body1}, verse.Line{Number: n2, Text: body2})
}

// BestLines is Best for lines already split by verse.Split.
func (a *Aligner) BestLines(l1, l2 verse.Line) Result {
	fwd := a.AlignLines(l1, l2, false)
	rev := a.AlignLines(l1, l2, true)
	if better(rev, fwd) {
		return rev
	}
	return fwd
}

func better(x, y Result) bool {
	if x.WordsInCommon != y.WordsInCommon {
		return x.WordsInCommon > y.WordsInCommon
	}
	return x.DivergentPhrases < y.DivergentPhrases
}

// AlignLines aligns two lines already split by verse.Split. A verse number
// present on both sides counts as a shared word.
func (a *Aligner) AlignLines(l1, l2 verse.Line, reverse bool) Result {
	body1 := Italics(l1.Text, a.opts)
	body2 := Italics(l2.Text, a.opts)
	f1 := strings.Fields(body1)
	f2 := strings.Fields(body2)

	res := Result{
		Number1:    l1.Number,
		Number2:    l2.Number,
		Reverse:    reverse,
		WordCount1: len(f1),
		WordCount2: len(f2),
		keys1:      make([]string, len(f1)),
	}
	for i, w := range f1 {
		res.keys1[i] = a.cmp.Key(w)
	}
	if l1.Number != "" {
		res.WordCount1++
	}
	if l2.Number != "" {
		res.WordCount2++
	}
	if l1.Number != "" && l1.Number == l2.Number {
		res.WordsInCommon++
	}

	if len(f1) == 0 || len(f2) == 0 {
		res.SingleSided = true
		res.Segments = []Segment{{Primary: strings.Join(f1, " "), Secondary: strings.Join(f2, " ")}}
		return res
	}

	s := scan{
		a:        a.words(res.keys1, f1, reverse),
		b:        a.words(nil, f2, reverse),
		reverse:  reverse,
		inserted: make(map[int]bool),
	}
	s.run()

	res.WordsInCommon += s.common
	res.DivergentPhrases = s.phrases
	res.Segments = s.segs.Slice()
	locate(res.Segments, f1)
	return res
}

var italicGap = regexp.MustCompile(`\]\s+\[`)

var stripBrackets = strings.NewReplacer("[", "", "]", "")

// Italics prepares "[...]" italic markup: runs separated only by whitespace
// are merged, and brackets are removed when italics are not rendered.
func Italics(s string, opts Options) string {
	if !opts.RenderItalics || !opts.SupportsItalics {
		return stripBrackets.Replace(s)
	}
	return italicGap.ReplaceAllString(s, " ")
}

func (a *Aligner) words(keys, fields []string, reverse bool) []word {
	out := make([]word, len(fields))
	for i, f := range fields {
		var k string
		if keys != nil {
			k = keys[i]
		} else {
			k = a.cmp.Key(f)
		}
		j := i
		if reverse {
			j = len(fields) - 1 - i
		}
		out[j] = word{text: f, key: k}
	}
	return out
}

// locate fills Index and Neighbour in line order.
func locate(segs []Segment, primary []string) {
	pos := 0
	for i := range segs {
		seg := &segs[i]
		if seg.Primary != "" {
			seg.Index = pos
			pos += len(strings.Fields(seg.Primary))
			continue
		}
		if len(primary) == 0 {
			continue
		}
		seg.Index = max(pos-1, 0)
		seg.Neighbour = primary[seg.Index]
		seg.NeighbourFollows = pos == 0
	}
}

type word struct {
	text        string
	key         string
	placeholder bool
}

// matches reports word equivalence. Placeholders never match.
func (w word) matches(o word) bool {
	return !w.placeholder && !o.placeholder && w.key == o.key
}

var placeholder = word{placeholder: true}

type scan struct {
	a, b    []word
	reverse bool
	// inserted records indices where placeholders were already inserted, so
	// each index is realigned at most once.
	inserted map[int]bool

	common1, common2 deque[string]
	pend1, pend2     deque[string]
	segs             deque[Segment]

	common  int
	phrases int
}

func (s *scan) run() {
	for i := 0; i < max(len(s.a), len(s.b)); {
		w1, w2 := at(s.a, i), at(s.b, i)

		if w1.matches(w2) {
			s.flushDivergent()
			s.common1.Push(w1.text, s.reverse)
			s.common2.Push(w2.text, s.reverse)
			s.common++
			i++
			continue
		}

		if !s.inserted[i] {
			if k, l, ok := s.resync(i); ok && k != l {
				s.inserted[i] = true
				if k < l {
					s.a = insertPlaceholders(s.a, i, l-k)
				} else {
					s.b = insertPlaceholders(s.b, i, k-l)
				}
				continue
			}
		}

		s.flushCommon()
		if !w1.placeholder {
			s.pend1.Push(w1.text, s.reverse)
		}
		if !w2.placeholder {
			s.pend2.Push(w2.text, s.reverse)
		}
		i++
	}
	s.flushDivergent()
	s.flushCommon()
}

// resync finds where the lines meet again after index i. It compares the
// nearest match by primary index with the nearest by secondary index and
// keeps the smaller gap, then the earlier point, then the primary-side one.
func (s *scan) resync(i int) (k, l int, ok bool) {
	kL, lL, okL := nearest(s.a, s.b, i)
	lR, kR, okR := nearest(s.b, s.a, i)
	switch {
	case !okL && !okR:
		return 0, 0, false
	case !okR:
		return kL, lL, true
	case !okL:
		return kR, lR, true
	}
	gapL, gapR := abs(kL-lL), abs(kR-lR)
	if gapR < gapL || (gapR == gapL && kR+lR < kL+lL) {
		return kR, lR, true
	}
	return kL, lL, true
}

// nearest returns the first index p in x (from i on) that matches any word of
// y from i on, with the first such index q in y.
func nearest(x, y []word, i int) (p, q int, ok bool) {
	for p = i; p < len(x); p++ {
		if x[p].placeholder {
			continue
		}
		for q = i; q < len(y); q++ {
			if x[p].matches(y[q]) {
				return p, q, true
			}
		}
	}
	return 0, 0, false
}

func (s *scan) flushCommon() {
	if s.common1.Len() == 0 {
		return
	}
	s.segs.Push(Segment{
		Primary:   join(&s.common1),
		Secondary: join(&s.common2),
	}, s.reverse)
}

func (s *scan) flushDivergent() {
	if s.pend1.Len() == 0 && s.pend2.Len() == 0 {
		return
	}
	s.segs.Push(Segment{
		Primary:   join(&s.pend1),
		Secondary: join(&s.pend2),
		Divergent: true,
	}, s.reverse)
	s.phrases++
}

func join(d *deque[string]) string {
	out := strings.Join(d.Slice(), " ")
	d.Reset()
	return out
}

func at(ws []word, i int) word {
	if i < len(ws) {
		return ws[i]
	}
	return placeholder
}

func insertPlaceholders(ws []word, i, n int) []word {
	i = min(i, len(ws))
	out := make([]word, 0, len(ws)+n)
	out = append(out, ws[:i]...)
	for range n {
		out = append(out, placeholder)
	}
	return append(out, ws[i:]...)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
