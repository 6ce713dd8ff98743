package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/pinyin/dict"
	"github.com/npillmayer/pinyin/tone"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(args)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"marks", []string{"中国人民银行"}, "zhōng guó rén mín yín háng\n"},
		{"numbers", []string{"-f", "number", "-s", "-", "银行家"}, "yin2-hang2-jia1\n"},
		{"none", []string{"--format", "none", "重庆"}, "chong qing\n"},
		{"split", []string{"--split", "-s", ",", "-f", "number", "重庆。"}, "chong2,qing4,。\n"},
		{"joined args", []string{"重庆", "OK"}, "chóng qìng OK\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("pinyin %v = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestConvertStdin(t *testing.T) {
	got, err := run(t, "重庆\n长大\n", "--split")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "chóng qìng\nzhǎng dà\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("PINYIN_FORMAT", "none")
	got, err := run(t, "", "中国")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "zhong guo\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	// flags take precedence
	got, _ = run(t, "", "-f", "number", "中国")
	if want := "zhong1 guo2\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCharCommand(t *testing.T) {
	got, err := run(t, "", "char", "行国")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}
	if !strings.HasPrefix(lines[0], "行\t") || !strings.HasSuffix(lines[0], " *") {
		t.Errorf("expected 行 to be marked, got %q", lines[0])
	}
	if lines[1] != "国\tguó" {
		t.Errorf("got %q, want %q", lines[1], "国\tguó")
	}
}

func TestWordsCommand(t *testing.T) {
	got, err := run(t, "", "words", "-f", "number", "-s", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "银行\tyin2hang2\n") {
		t.Errorf("expected 银行 in word list, got %q", got)
	}
	if n := strings.Count(got, "\n"); n != dict.DefaultWords().Len() {
		t.Errorf("expected %d words, got %d", dict.DefaultWords().Len(), n)
	}
}

func TestUserDictionaries(t *testing.T) {
	dir := t.TempDir()
	words := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(words, []byte("# user words\n长行=cháng,xíng\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chars := filepath.Join(dir, "chars.txt")
	if err := os.WriteFile(chars, []byte("U+3007=líng\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := run(t, "", "--words", words, "--chars", chars, "-s", "-", "长行〇")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "cháng-xínglíng\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnihan(t *testing.T) {
	unihan := filepath.Join(t.TempDir(), "Unihan_Readings.txt")
	data := "U+3007\tkMandarin\tlíng\nU+3007\tkDefinition\tzero\n"
	if err := os.WriteFile(unihan, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := run(t, "", "--unihan", unihan, "-f", "number", "〇")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "ling2\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.txt")
	if err := os.WriteFile(broken, []byte("银行 yín,háng\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name   string
		args   []string
		target error
		want   int
	}{
		{"unknown format", []string{"-f", "latin", "中"}, tone.ErrUnknownFormat, ExitUsage},
		{"missing file", []string{"--words", filepath.Join(dir, "none.txt"), "中"}, os.ErrNotExist, ExitUsage},
		{"syntax error", []string{"--words", broken, "中"}, dict.ErrSyntax, ExitUsage},
		{"trace level", []string{"--trace", "verbose", "中"}, ErrTraceLevel, ExitUsage},
		{"unknown flag", []string{"--color", "中"}, nil, ExitUsage},
		{"char without args", []string{"char"}, nil, ExitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			if err == nil {
				t.Fatalf("expected error for %v", tt.args)
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
			if got := exitCode(err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", err, got, tt.want)
			}
		})
	}
	if got := exitCode(errors.New("disk on fire")); got != ExitGeneral {
		t.Errorf("exitCode = %d, want %d", got, ExitGeneral)
	}
}
