package pinyin

import (
	"sync"

	"github.com/npillmayer/pinyin/dict"
)

var (
	defaultOnce sync.Once
	defaultConv *Converter
)

// Default returns a Converter over the default dictionaries. It is created
// on the first call.
func Default() *Converter {
	defaultOnce.Do(func() {
		defaultConv = New(dict.DefaultCharacters(), dict.DefaultWords())
	})
	return defaultConv
}

// ConvertCharacter returns the readings of c from the default dictionaries.
func ConvertCharacter(c rune, f Format) []string {
	return Default().ConvertCharacter(c, f)
}

// ConvertStatement converts a statement using the default dictionaries.
func ConvertStatement(s, separator string, f Format) string {
	return Default().ConvertStatement(s, separator, f)
}

// IsMultiPinyin checks the default dictionaries for characters with more
// than one reading.
func IsMultiPinyin(c rune) bool {
	return Default().IsMultiPinyin(c)
}

// ToPinyin converts a statement to pinyin with tone marks.
func ToPinyin(s, separator string) string {
	return ConvertStatement(s, separator, ToneMark)
}
