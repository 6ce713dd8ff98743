package dict

import (
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/pinyin/tone"
	"golang.org/x/text/unicode/norm"
)

// NoData is a raw reading value marking an entry without pronunciation data.
const NoData = "null"

// normalizeReadings cleans up a raw comma-separated list of readings: the list
// is normalized to NFC, invalid syllables are dropped and duplicates removed,
// keeping the first occurrence. It returns the cleaned list and the number of
// syllables dropped.
func normalizeReadings(raw string) ([]string, int) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == NoData {
		return nil, 0
	}
	raw = norm.NFC.String(raw)
	set := linkedhashset.New()
	dropped := 0
	for _, s := range strings.Split(raw, tone.Separator) {
		s = strings.TrimSpace(s)
		if err := tone.Validate(s); err != nil {
			tracer().Infof("dict: dropping reading: %v", err)
			dropped++
			continue
		}
		set.Add(s)
	}
	if set.Empty() {
		return nil, dropped
	}
	syllables := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		syllables = append(syllables, v.(string))
	}
	return syllables, dropped
}

// wordReadings cleans up the readings of a word. Other than for characters,
// duplicate syllables are legal (e.g., 可口可乐 → kě,kǒu,kě,lè) and no syllable
// may be invalid.
func wordReadings(raw string) ([]string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == NoData {
		return nil, false
	}
	raw = norm.NFC.String(raw)
	syllables := strings.Split(raw, tone.Separator)
	for i, s := range syllables {
		s = strings.TrimSpace(s)
		if err := tone.Validate(s); err != nil {
			tracer().Infof("dict: invalid word reading: %v", err)
			return nil, false
		}
		syllables[i] = s
	}
	return syllables, true
}
