package dict

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/pinyin/tone"
)

// MinWordLength is the minimum number of characters of a word.
const MinWordLength = 2

// Words maps words of two or more Chinese characters to their reading,
// one syllable per character.
type Words struct {
	readings map[string]string // comma-joined
}

// NewWords creates a word table from raw readings. Entries are left out if
// the word is shorter than MinWordLength, if the value is NoData, if a
// syllable is invalid, or if the number of syllables does not match the
// number of characters.
func NewWords(raw map[string]string) *Words {
	words := &Words{readings: make(map[string]string, len(raw))}
	for w, v := range raw {
		if ok := words.add(w, v); !ok {
			tracer().Infof("dict: skipping word %q = %q", w, v)
		}
	}
	tracer().Debugf("dict: %d words", len(words.readings))
	return words
}

func (words *Words) add(w, v string) bool {
	n := utf8.RuneCountInString(w)
	if n < MinWordLength {
		return false
	}
	syllables, ok := wordReadings(v)
	if !ok || len(syllables) != n {
		return false
	}
	words.readings[w] = strings.Join(syllables, tone.Separator)
	return true
}

// Lookup returns the comma-joined reading of a word.
func (words *Words) Lookup(w string) (string, bool) {
	if words == nil {
		return "", false
	}
	s, ok := words.readings[w]
	return s, ok
}

// Keys returns all the words of the table, sorted.
func (words *Words) Keys() []string {
	if words == nil {
		return nil
	}
	keys := make([]string, 0, len(words.readings))
	for w := range words.readings {
		keys = append(keys, w)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of words.
func (words *Words) Len() int {
	if words == nil {
		return 0
	}
	return len(words.readings)
}

// Merge creates a new table from words, overlayed by others. For words
// present in more than one table, the last table wins.
func (words *Words) Merge(others ...*Words) *Words {
	merged := &Words{readings: make(map[string]string, words.Len())}
	for _, t := range append([]*Words{words}, others...) {
		if t == nil {
			continue
		}
		for w, s := range t.readings {
			merged.readings[w] = s
		}
	}
	return merged
}
