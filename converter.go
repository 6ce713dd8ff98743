package pinyin

import (
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/pinyin/dict"
	"github.com/npillmayer/pinyin/han"
	"github.com/npillmayer/pinyin/tone"
	"github.com/npillmayer/pinyin/trie"
)

// Converter resolves the pinyin readings of Chinese text. It holds a
// character table, a word table and a trie of the words for segmentation.
//
// Create with New.
type Converter struct {
	chars     *dict.Characters
	words     *dict.Words
	trie      *trie.Trie
	isChinese func(rune) bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithClassifier replaces the predicate telling Chinese code-points from
// others. The default is han.IsChinese.
func WithClassifier(isChinese func(rune) bool) Option {
	return func(conv *Converter) {
		if isChinese != nil {
			conv.isChinese = isChinese
		}
	}
}

// New creates a Converter from a character table and a word table. Either
// table may be nil.
func New(chars *dict.Characters, words *dict.Words, opts ...Option) *Converter {
	conv := &Converter{
		chars:     chars,
		words:     words,
		trie:      trie.New(words.Keys()...),
		isChinese: han.IsChinese,
	}
	for _, opt := range opts {
		opt(conv)
	}
	tracer().Debugf("pinyin: converter with %d characters and %d words",
		chars.Len(), conv.trie.Size())
	return conv
}

// ConvertCharacter returns the distinct readings of c in notation f, most
// common first. For characters without readings it returns nil.
func (conv *Converter) ConvertCharacter(c rune, f Format) []string {
	s, ok := conv.chars.Lookup(c)
	if !ok {
		return nil
	}
	syllables := tone.Convert(s, f)
	if len(syllables) < 2 {
		return syllables
	}
	set := linkedhashset.New()
	for _, syll := range syllables {
		set.Add(syll)
	}
	if set.Size() == len(syllables) {
		return syllables
	}
	distinct := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		distinct = append(distinct, v.(string))
	}
	return distinct
}

// IsMultiPinyin returns true if c has more than one distinct reading with
// tone marks.
func (conv *Converter) IsMultiPinyin(c rune) bool {
	return len(conv.ConvertCharacter(c, ToneMark)) > 1
}

// ConvertStatement converts a statement to pinyin in notation f. The
// readings of the syllables of a word are joined by separator; segments
// follow each other without a separator. Text which is not Chinese, or
// without known readings, is copied verbatim.
func (conv *Converter) ConvertStatement(s, separator string, f Format) string {
	segments := conv.trie.Segment(s)
	if len(segments) == 0 {
		return ""
	}
	buf := borrowBuffer()
	for _, seg := range segments {
		for i, piece := range conv.pieces(seg, f) {
			if i > 0 {
				buf.WriteString(separator)
			}
			buf.WriteString(piece)
		}
	}
	out := buf.String() // copies
	releaseBuffer(buf)
	return out
}

// ConvertToSlice converts a statement to pinyin in notation f and returns
// the pieces of all segments in order. For Chinese text there is one piece
// per code-point.
func (conv *Converter) ConvertToSlice(s string, f Format) []string {
	segments := conv.trie.Segment(s)
	if len(segments) == 0 {
		return nil
	}
	pieces := make([]string, 0, len(segments))
	for _, seg := range segments {
		pieces = append(pieces, conv.pieces(seg, f)...)
	}
	return pieces
}

// pieces resolves a single segment.
func (conv *Converter) pieces(seg trie.Segment, f Format) []string {
	if seg.Matched {
		if s, ok := conv.words.Lookup(seg.Text); ok {
			if syllables := tone.Convert(s, f); len(syllables) > 0 {
				return syllables
			}
		}
		tracer().Debugf("pinyin: no reading for word %q", seg.Text)
		return []string{seg.Text}
	}
	r, _ := utf8.DecodeRuneInString(seg.Text)
	if r == utf8.RuneError || !conv.isChinese(r) {
		return []string{seg.Text}
	}
	if candidates := conv.ConvertCharacter(r, f); len(candidates) > 0 {
		return candidates[:1]
	}
	return []string{seg.Text}
}

// Words returns the word table of the converter.
func (conv *Converter) Words() *dict.Words {
	return conv.words
}
