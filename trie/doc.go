/*
Package trie implements a prefix tree of words for dictionary-based segmenting
of Chinese text.

Chinese characters may have more than one reading, and which one applies
depends on the word a character is part of. Words are not separated by spaces,
so a text has to be cut into known words first. The trie holds all the words
known to have a reading of their own and finds, at every position of a text,
the longest of them starting there.

	words := trie.New("银行", "行长", "银行家")
	for _, seg := range words.Segment("银行家说") {
	    fmt.Printf("%s %v\n", seg.Text, seg.Matched)
	}

will print

	银行家 true
	说 false

Segmenting is greedy and never backtracks: at each position the longest known
word wins, even if a shorter one would allow a better split afterwards.

The trie is suitable for write-once-read-many-times situations. It is built
once with New and is read-only afterwards, therefore safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pinyin.trie'.
func tracer() tracing.Trace {
	return tracing.Select("pinyin.trie")
}
