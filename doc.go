/*
Package pinyin converts Chinese text to Hanyu Pinyin.

Description

Chinese characters frequently have more than one reading. For example,
行 is read "xíng" when it means "to walk", but "háng" in 银行 (bank). The
correct reading of a character often can only be determined from the word
it is part of. Package pinyin therefore splits a statement into words known
from a word dictionary first, using a greedy longest-match strategy, and
resolves all remaining characters one by one from a character dictionary.

	pinyin.ToPinyin("中国人民银行", " ")   // => "zhōng guó rén mín yín háng"

Readings may be output in one of three notations (see package tone):
with tone marks ("háng"), with tone numbers ("hang2"), or without tones
("hang").

Dictionaries

A Converter is constructed from a character table and a word table, both
from package dict. Clients may use their own tables, or overlay user tables
on the default ones:

	chars := dict.DefaultCharacters()
	words := dict.DefaultWords().Merge(mywords)
	conv := pinyin.New(chars, words)

The default tables and the default converter are created on first use and
are immutable afterwards. A Converter is safe for concurrent use.

Segments

Segmentation of statements is done by package trie. Text which is not part
of a known word is split into single code-points. Chinese code-points are
replaced by their most common reading, everything else is copied verbatim.
Readings within a word are joined with a separator, whereas segments are
concatenated without one:

	conv.ConvertStatement("银行和", "-", pinyin.ToneNumber)  // => "yin2-hang2he2"

Clients wanting one reading per syllable should use ConvertToSlice.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package pinyin

import (
	"github.com/npillmayer/pinyin/tone"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pinyin'.
func tracer() tracing.Trace {
	return tracing.Select("pinyin")
}

// Format is the notation of pinyin output.
type Format = tone.Format

// Output notations.
const (
	ToneMark   = tone.Mark   // "zhōng"
	ToneNumber = tone.Number // "zhong1"
	NoTone     = tone.None   // "zhong"
)
