/*
Package han classifies code-points as Chinese characters.

A Chinese character is a code-point of the Unicode Han script. As Go's
Unicode tables lag behind the current Unicode version, code-points of
the CJK ideograph blocks are counted as Chinese characters even if they are
unassigned in Go's version of the tables (compare UAX#11, which does the
same for width classification).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package han

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// UAX#11:
//  - The unassigned code points in the following blocks default to "W":
//         CJK Unified Ideographs Extension A: U+3400..U+4DBF
//         CJK Unified Ideographs:             U+4E00..U+9FFF
//         CJK Compatibility Ideographs:       U+F900..U+FAFF
//  - All undesignated code points in Planes 2 and 3, whether inside or
//      outside of allocated blocks, default to "W":
//         Plane 2:                            U+20000..U+2FFFD
//         Plane 3:                            U+30000..U+3FFFD
var _CJK_Ideographs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x3400, 0x4dbf, 1},
		{0x4e00, 0x9fff, 1},
		{0xf900, 0xfaff, 1},
	},
	R32: []unicode.Range32{
		{0x20000, 0x2fffd, 1},
		{0x30000, 0x3fffd, 1},
	},
}

// Table is the range table of Chinese characters.
var Table = rangetable.Merge(unicode.Han, _CJK_Ideographs)

// IsChinese is a predicate: is r a Chinese character?
//
// Latin letters, digits, punctuation (including CJK punctuation such as '。')
// and whitespace are not Chinese characters.
func IsChinese(r rune) bool {
	if r < 0x2e80 { // fast path: below CJK Radicals Supplement
		return false
	}
	return unicode.Is(Table, r)
}
