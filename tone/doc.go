/*
Package tone converts pinyin syllables between tone notations.

Pinyin marks the tone of a syllable with a diacritic on one of its vowels.
Three notations are supported:

	Mark    dui4 is written "duì"   (tone mark embedded in the vowel)
	Number  "dui4"                  (tone as a trailing digit 1…5)
	None    "dui"                   (tone stripped)

The neutral tone carries no diacritic and is written with digit 5 in
Number notation. The letter ü is written as v in Number and None notation.

Input to the converters is a comma-separated list of syllables in Mark
notation, as found in pronunciation dictionaries:

	tone.Convert("mā,ma,duì", tone.Number)  // => [ma1 ma5 dui4]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tone

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pinyin.tone'.
func tracer() tracing.Trace {
	return tracing.Select("pinyin.tone")
}
