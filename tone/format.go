package tone

import (
	"errors"
	"fmt"
	"strings"
)

// Format is a pinyin notation. There are exactly three of them.
type Format int8

// Pinyin notations
const (
	Mark   Format = iota // tone mark embedded in the vowel, e.g. "zhōng"
	Number               // tone as trailing digit, e.g. "zhong1"
	None                 // no tone, e.g. "zhong"
)

// Separator separates syllables in dictionary entries.
const Separator = ","

// ErrUnknownFormat is returned by ParseFormat for unrecognized names.
var ErrUnknownFormat = errors.New("unknown pinyin format")

func (f Format) String() string {
	switch f {
	case Mark:
		return "mark"
	case Number:
		return "number"
	case None:
		return "none"
	}
	return fmt.Sprintf("Format(%d)", int8(f))
}

// ParseFormat finds a Format from its name. Names are matched
// case-insensitively; besides the names returned by Format.String
// a few common aliases are accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mark", "tonemark", "tone-mark", "tone":
		return Mark, nil
	case "number", "tonenumber", "tone-number", "digit", "numeric":
		return Number, nil
	case "none", "notone", "no-tone", "plain":
		return None, nil
	}
	return Mark, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
