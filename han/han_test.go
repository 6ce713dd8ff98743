package han

import (
	"testing"
)

func TestIsChinese(t *testing.T) {
	chinese := []rune{
		'中', '国', '〇', '银', '龘',
		0x3400,  // CJK UNIFIED IDEOGRAPH-3400, Extension A
		0x20000, // CJK UNIFIED IDEOGRAPH-20000, Extension B
		0x2fffd, // undesignated in plane 2
	}
	for _, r := range chinese {
		if !IsChinese(r) {
			t.Errorf("expected %#U to be a Chinese character", r)
		}
	}
	other := []rune{
		'a', 'Z', '1', ' ', '\n', '!',
		'。', '，', '、', '「', // CJK punctuation
		'あ', 'カ', '한', // kana and hangul
		0xff41, // FULLWIDTH LATIN SMALL LETTER A
		0x1f600,
	}
	for _, r := range other {
		if IsChinese(r) {
			t.Errorf("expected %#U not to be a Chinese character", r)
		}
	}
}
