package tone

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// unmarked holds the plain vowels; v stands for ü.
const unmarked = "aeiouv"

// marked holds the toned vowels, vowel-major and tone-minor: all 4 tones of
// 'a', then all 4 tones of 'e', and so on. The vowel at index i is
// unmarked[i/4] with tone i%4+1.
var marked = []rune("āáǎàēéěèīíǐìōóǒòūúǔùǖǘǚǜ")

// ErrUnknownMarkedVowel flags a syllable containing a non-Latin rune which is not
// one of the 24 toned vowels. Dictionaries are validated on load, so this
// signals broken static data.
var ErrUnknownMarkedVowel = errors.New("rune is not a toned pinyin vowel")

// ErrInvalidSyllable is returned by Validate.
var ErrInvalidSyllable = errors.New("invalid pinyin syllable")

// noToneReplacer strips all tone marks and replaces ü by v.
var noToneReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(marked)+2)
	for i, r := range marked {
		pairs = append(pairs, string(r), unmarked[i/4:i/4+1])
	}
	pairs = append(pairs, "ü", "v")
	return strings.NewReplacer(pairs...)
}()

// markedIndex returns the position of r in the table of toned vowels, or -1.
func markedIndex(r rune) int {
	for i, m := range marked {
		if m == r {
			return i
		}
	}
	return -1
}

// Convert formats a comma-separated list of syllables in Mark notation.
func Convert(syllables string, f Format) []string {
	switch f {
	case Mark:
		return ToToneMark(syllables)
	case Number:
		parts := split(syllables)
		for i := len(parts) - 1; i >= 0; i-- {
			parts[i] = ToToneNumber(parts[i])
		}
		return parts
	case None:
		return ToNoTone(syllables)
	}
	tracer().Errorf("cannot convert to pinyin format %v", f)
	return nil
}

// ToToneMark splits a comma-separated list of syllables. Syllables are
// already in Mark notation and remain unchanged, apart from being
// normalized to NFC.
func ToToneMark(syllables string) []string {
	return split(norm.NFC.String(syllables))
}

// ToToneNumber converts a single syllable to Number notation:
//
//	"zhǎng" => "zhang3"
//	"ma"    => "ma5"
//	"lǜ"    => "lv4"
//
// The syllable is normalized to NFC, then scanned from the end for a rune
// outside a…z. If the syllable contains more than one toned vowel, the
// rightmost one decides.
//
// ToToneNumber panics if it finds a rune outside a…z which is not a toned
// vowel. Syllables which passed Validate never do this.
func ToToneNumber(syllable string) string {
	s := strings.ReplaceAll(norm.NFC.String(syllable), "ü", "v")
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		if r >= 'a' && r <= 'z' {
			continue
		}
		inx := markedIndex(r)
		if inx < 0 {
			panic(fmt.Errorf("%w: %#U in %q", ErrUnknownMarkedVowel, r, syllable))
		}
		vowel := unmarked[inx/4 : inx/4+1]
		return strings.ReplaceAll(s, string(r), vowel) + strconv.Itoa(inx%4+1)
	}
	return s + "5" // neutral tone
}

// ToNoTone strips the tone marks from a comma-separated list of syllables
// and splits it:
//
//	"nǚ,ér" => [nv er]
func ToNoTone(syllables string) []string {
	return split(noToneReplacer.Replace(norm.NFC.String(syllables)))
}

// Tone returns the tone 1…5 of a syllable in Mark notation, or 0 if the syllable
// is not valid.
func Tone(syllable string) int {
	if Validate(syllable) != nil {
		return 0
	}
	runes := []rune(syllable)
	for i := len(runes) - 1; i >= 0; i-- {
		if inx := markedIndex(runes[i]); inx >= 0 {
			return inx%4 + 1
		}
	}
	return 5
}

// Validate checks that a syllable in Mark notation consists of lowercase Latin
// letters and ü only, with at most one toned vowel.
func Validate(syllable string) error {
	if syllable == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSyllable)
	}
	toned := 0
	for _, r := range syllable {
		switch {
		case r >= 'a' && r <= 'z', r == 'ü':
		case markedIndex(r) >= 0:
			toned++
		default:
			return fmt.Errorf("%w: %q contains %#U", ErrInvalidSyllable, syllable, r)
		}
	}
	if toned > 1 {
		return fmt.Errorf("%w: %q has %d tone marks", ErrInvalidSyllable, syllable, toned)
	}
	return nil
}

// split cuts a list of syllables at commas. Trailing empty fields are dropped,
// so an empty list or a list of separators only yields no syllables at all.
func split(syllables string) []string {
	parts := strings.Split(syllables, Separator)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return nil
	}
	return parts
}
