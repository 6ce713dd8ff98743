package dict

import (
	_ "embed"
	"strings"
	"sync"

	gopinyin "github.com/mozillazg/go-pinyin"
)

//go:embed data/words.txt
var wordsData string

var (
	defaultCharsOnce sync.Once
	defaultChars     *Characters
	defaultWordsOnce sync.Once
	defaultWords     *Words
)

// DefaultCharacters returns the default character table. It is created on the
// first call (concurrency-safe).
func DefaultCharacters() *Characters {
	defaultCharsOnce.Do(func() {
		raw := make(map[rune]string, len(gopinyin.PinyinDict))
		for cp, readings := range gopinyin.PinyinDict {
			raw[rune(cp)] = readings
		}
		defaultChars = NewCharacters(raw)
		tracer().Infof("dict: loaded %d default characters", defaultChars.Len())
	})
	return defaultChars
}

// DefaultWords returns the default word table. It is created on the first
// call (concurrency-safe).
func DefaultWords() *Words {
	defaultWordsOnce.Do(func() {
		words, err := ReadWords(strings.NewReader(wordsData))
		if err != nil {
			panic("dict: embedded word list is corrupt: " + err.Error())
		}
		defaultWords = words
		tracer().Infof("dict: loaded %d default words", defaultWords.Len())
	})
	return defaultWords
}
