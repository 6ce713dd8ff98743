package dict

import (
	"strings"

	"github.com/npillmayer/pinyin/tone"
)

// Characters maps Chinese characters to their candidate readings.
// The first candidate is the most common one.
type Characters struct {
	readings map[rune]string // comma-joined, deduplicated
}

// NewCharacters creates a character table from raw readings, i.e. from
// comma-separated lists of syllables with tone marks. Entries with value
// NoData, and entries with no valid syllable, are left out.
func NewCharacters(raw map[rune]string) *Characters {
	chars := &Characters{readings: make(map[rune]string, len(raw))}
	skipped, dropped := 0, 0
	for r, v := range raw {
		syllables, n := normalizeReadings(v)
		dropped += n
		if len(syllables) == 0 {
			skipped++
			continue
		}
		chars.readings[r] = strings.Join(syllables, tone.Separator)
	}
	tracer().Debugf("dict: %d characters, %d entries without readings, %d invalid readings dropped",
		len(chars.readings), skipped, dropped)
	return chars
}

// Lookup returns the comma-joined readings of a character.
func (chars *Characters) Lookup(r rune) (string, bool) {
	if chars == nil {
		return "", false
	}
	s, ok := chars.readings[r]
	return s, ok
}

// Candidates returns the readings of a character, most common first.
// It returns nil for unknown characters.
func (chars *Characters) Candidates(r rune) []string {
	s, ok := chars.Lookup(r)
	if !ok {
		return nil
	}
	return strings.Split(s, tone.Separator)
}

// Len returns the number of characters with readings.
func (chars *Characters) Len() int {
	if chars == nil {
		return 0
	}
	return len(chars.readings)
}

// Merge creates a new table from chars, overlayed by others. For characters
// present in more than one table, the last table wins.
func (chars *Characters) Merge(others ...*Characters) *Characters {
	merged := &Characters{readings: make(map[rune]string, chars.Len())}
	for _, c := range append([]*Characters{chars}, others...) {
		if c == nil {
			continue
		}
		for r, s := range c.readings {
			merged.readings[r] = s
		}
	}
	return merged
}
