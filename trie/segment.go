package trie

import (
	"unicode/utf8"
)

// Segment is a piece of text produced by Trie.Segment. Matched is true if Text
// is a word of the trie; otherwise Text is a single rune.
type Segment struct {
	Text    string
	Matched bool
}

// LongestMatch returns the length in bytes of the longest word of the trie
// which is a prefix of s. It returns 0 if no word of the trie starts s.
func (trie *Trie) LongestMatch(s string) int {
	it := trie.Iterator()
	longest := 0
	for pos := 0; pos < len(s); {
		r, w := utf8.DecodeRuneInString(s[pos:])
		if !it.Next(r) {
			break
		}
		pos += w
		if it.Terminal() && it.Depth() >= MinWordLength {
			longest = pos
		}
	}
	return longest
}

// Segment splits statement into segments, from left to right. At each position
// the longest word of the trie starting there becomes a matched segment. If
// no word starts at a position, the rune there becomes an unmatched segment
// of its own.
//
// Concatenating the segments' texts reproduces the statement. An empty statement
// results in no segments. Invalid UTF-8 bytes end up as single-byte unmatched
// segments.
func (trie *Trie) Segment(statement string) []Segment {
	if statement == "" {
		return nil
	}
	segments := make([]Segment, 0, utf8.RuneCountInString(statement))
	for pos := 0; pos < len(statement); {
		if l := trie.LongestMatch(statement[pos:]); l > 0 {
			tracer().Debugf("trie: matched word %q at %d", statement[pos:pos+l], pos)
			segments = append(segments, Segment{Text: statement[pos : pos+l], Matched: true})
			pos += l
			continue
		}
		_, w := utf8.DecodeRuneInString(statement[pos:])
		segments = append(segments, Segment{Text: statement[pos : pos+w]})
		pos += w
	}
	return segments
}
