package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/npillmayer/pinyin"
)

// newRootCmd creates the root command, reading from in if no text
// arguments are given.
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pinyin [text...]",
		Short: "Convert Chinese text to Hanyu Pinyin",
		Long: `Convert Chinese text to Hanyu Pinyin.

Words known from the word dictionary are converted as a whole, all other
Chinese characters are converted to their most common reading. Text which
is not Chinese is copied. Without arguments, text is read line by line
from standard input.

Settings can also be given as environment variables, e.g. PINYIN_FORMAT.`,
		Example: `  pinyin 中国人民银行
  pinyin -f number -s - 银行家
  echo 重庆 | pinyin --split`,
		Version: version,
		Args:    cobra.ArbitraryArgs,
		// Silence Cobra's default error/usage printing; we handle it ourselves.
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, s, err := setup(cmd)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				fmt.Fprintln(out, convert(conv, strings.Join(args, " "), s))
				return nil
			}
			return convertLines(conv, in, out, s)
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringP(ConfigKeyFormat, "f", "mark", "output notation: mark, number or none")
	flags.StringP(ConfigKeySeparator, "s", " ", "separator between the syllables of a word")
	flags.Bool(ConfigKeySplit, false, "separate all syllables")
	flags.String(ConfigKeyWords, "", "file with additional words")
	flags.String(ConfigKeyChars, "", "file with additional characters")
	flags.String(ConfigKeyUnihan, "", "Unihan_Readings.txt file with additional characters")
	flags.String(ConfigKeyTrace, "", "trace level: error, info or debug")

	cmd.AddCommand(charCmd(out))
	cmd.AddCommand(wordsCmd(out))
	return cmd
}

func convert(conv *pinyin.Converter, text string, s settings) string {
	if s.split {
		return strings.Join(conv.ConvertToSlice(text, s.format), s.separator)
	}
	return conv.ConvertStatement(text, s.separator, s.format)
}

func convertLines(conv *pinyin.Converter, in io.Reader, out io.Writer, s settings) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fmt.Fprintln(out, convert(conv, scanner.Text(), s))
	}
	return scanner.Err()
}

// charCmd creates the "char" subcommand.
func charCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "char <text>...",
		Short: "List the readings of characters",
		Long: `List all readings of each character, most common first.

Characters with more than one reading are marked with '*'.`,
		Example: `  pinyin char 行
  pinyin char -f number 银行`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, s, err := setup(cmd)
			if err != nil {
				return err
			}
			for _, c := range strings.Join(args, "") {
				candidates := conv.ConvertCharacter(c, s.format)
				if len(candidates) == 0 {
					continue
				}
				line := string(c) + "\t" + strings.Join(candidates, " ")
				if conv.IsMultiPinyin(c) {
					line += " *"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

// wordsCmd creates the "words" subcommand.
func wordsCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "List the known words",
		Long: `List the words of the word dictionary with their readings,
including words from a file given with --words.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, s, err := setup(cmd)
			if err != nil {
				return err
			}
			for _, w := range conv.Words().Keys() {
				fmt.Fprintln(out, w+"\t"+strings.Join(conv.ConvertToSlice(w, s.format), s.separator))
			}
			return nil
		},
	}
}

// setup loads configuration and dictionaries for subcommands.
func setup(cmd *cobra.Command) (*pinyin.Converter, settings, error) {
	conf, err := loadConfig(cmd.Flags())
	if err != nil {
		return nil, settings{}, err
	}
	if err := setupTracing(conf); err != nil {
		return nil, settings{}, err
	}
	s, err := loadSettings(conf)
	if err != nil {
		return nil, s, err
	}
	conv, err := loadConverter(conf)
	return conv, s, err
}
