package pinyin_test

import (
	"fmt"

	"github.com/npillmayer/pinyin"
	"github.com/npillmayer/pinyin/dict"
)

func ExampleToPinyin() {
	fmt.Println(pinyin.ToPinyin("中国人民银行", " "))
	// Output: zhōng guó rén mín yín háng
}

func ExampleConverter_ConvertStatement() {
	chars := dict.NewCharacters(map[rune]string{
		'银': "yín",
		'行': "xíng,háng",
		'好': "hǎo,hào",
	})
	words := dict.NewWords(map[string]string{
		"银行": "yín,háng",
	})
	conv := pinyin.New(chars, words)
	fmt.Println(conv.ConvertStatement("银行好!", "-", pinyin.ToneMark))
	fmt.Println(conv.ConvertStatement("行", "-", pinyin.ToneNumber))
	fmt.Println(conv.ConvertToSlice("银行好!", pinyin.NoTone))
	// Output:
	// yín-hánghǎo!
	// xing2
	// [yin hang hao !]
}
