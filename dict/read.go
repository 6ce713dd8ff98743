package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/pinyin/tone"
)

// ErrSyntax flags a malformed line of a dictionary file.
var ErrSyntax = errors.New("dictionary syntax error")

// ReadCharacters reads a character table from a text source. Every line holds
// one entry in the form
//
//	中=zhōng,zhòng
//	U+4E2D=zhōng,zhòng
//
// i.e. a character, given either literally or as a hexadecimal code-point,
// and a comma-separated list of readings. Blank lines are ignored, as is
// everything following a '#'.
func ReadCharacters(r io.Reader) (*Characters, error) {
	raw := make(map[rune]string)
	err := readPairs(r, func(lineno int, key, value string) error {
		ch, err := parseCharacter(key)
		if err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrSyntax, lineno, err)
		}
		raw[ch] = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewCharacters(raw), nil
}

// ReadWords reads a word table from a text source. Every line holds one entry
// in the form
//
//	银行=yín,háng
//
// Blank lines are ignored, as is everything following a '#'.
func ReadWords(r io.Reader) (*Words, error) {
	raw := make(map[string]string)
	err := readPairs(r, func(lineno int, key, value string) error {
		raw[key] = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewWords(raw), nil
}

// readPairs scans lines of the form key=value and calls f for each of them.
func readPairs(r io.Reader, f func(lineno int, key, value string) error) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("%w: line %d: missing '='", ErrSyntax, lineno)
		}
		key, value := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if key == "" {
			return fmt.Errorf("%w: line %d: empty key", ErrSyntax, lineno)
		}
		if err := f(lineno, key, value); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("dict: reading dictionary failed at line %d: %v", lineno, err)
		return err
	}
	return nil
}

func parseCharacter(key string) (rune, error) {
	if strings.HasPrefix(key, "U+") || strings.HasPrefix(key, "0x") {
		n, err := strconv.ParseUint(key[2:], 16, 32)
		if err != nil || n > utf8.MaxRune {
			return 0, fmt.Errorf("invalid code-point %q", key)
		}
		return rune(n), nil
	}
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || size != len(key) {
		return 0, fmt.Errorf("key %q is not a single character", key)
	}
	return r, nil
}

// Unihan fields carrying Mandarin readings.
const (
	unihanMandarin    = "kMandarin"
	unihanHanyuPinyin = "kHanyuPinyin"
)

// ReadUnihan reads a character table from the Unihan database file
// Unihan_Readings.txt. Lines have the form
//
//	U+4E2D	kMandarin	zhōng
//	U+4E2D	kHanyuPinyin	10011.010:zhōng,zhòng
//
// Readings from field kMandarin come first, followed by the readings from
// field kHanyuPinyin. All other fields are ignored.
func ReadUnihan(r io.Reader) (*Characters, error) {
	mandarin := make(map[rune][]string)
	hanyu := make(map[rune][]string)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: expected 3 fields", ErrSyntax, lineno)
		}
		if fields[1] != unihanMandarin && fields[1] != unihanHanyuPinyin {
			continue
		}
		ch, err := parseCharacter(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineno, err)
		}
		for _, v := range strings.Fields(fields[2]) {
			if fields[1] == unihanMandarin {
				mandarin[ch] = append(mandarin[ch], v)
				continue
			}
			// location:reading,reading,…
			if i := strings.IndexByte(v, ':'); i >= 0 {
				v = v[i+1:]
			}
			hanyu[ch] = append(hanyu[ch], strings.Split(v, tone.Separator)...)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("dict: reading Unihan data failed at line %d: %v", lineno, err)
		return nil, err
	}
	raw := make(map[rune]string, len(mandarin))
	for ch, readings := range mandarin {
		raw[ch] = strings.Join(append(readings, hanyu[ch]...), tone.Separator)
	}
	for ch, readings := range hanyu {
		if _, ok := mandarin[ch]; !ok {
			raw[ch] = strings.Join(readings, tone.Separator)
		}
	}
	return NewCharacters(raw), nil
}
