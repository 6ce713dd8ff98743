/*
Package dict holds the pronunciation dictionaries for Chinese characters and
words.

Two tables are provided:

	Characters   character → candidate readings, e.g. 行 → "xíng,háng,hàng,héng"
	Words        word      → one reading per character, e.g. 银行 → "yín,háng"

Readings are comma-separated pinyin syllables with tone marks. They are
normalized to Unicode NFC and validated when a table is created; syllables
which do not consist of lowercase Latin letters with at most one tone mark
are dropped. Tables are immutable after creation and safe for concurrent
use.

Default tables are built lazily, once per process: DefaultCharacters uses the
character table of github.com/mozillazg/go-pinyin, DefaultWords uses a word
list embedded into this package. Clients may read tables from text files
(see ReadCharacters and ReadWords) and overlay them with Merge.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pinyin.dict'.
func tracer() tracing.Trace {
	return tracing.Select("pinyin.dict")
}
