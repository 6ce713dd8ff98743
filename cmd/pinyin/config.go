package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/pflag"

	"github.com/npillmayer/pinyin"
	"github.com/npillmayer/pinyin/dict"
	"github.com/npillmayer/pinyin/tone"
)

// Environment variables override defaults, flags override environment
// variables. PINYIN_FORMAT=number sets key "format".
const envPrefix = "PINYIN_"

// Configuration keys. Keys are separated by '/', as tracer names contain
// dots.
const (
	ConfigKeyFormat    = "format"
	ConfigKeySeparator = "separator"
	ConfigKeySplit     = "split"
	ConfigKeyWords     = "words"
	ConfigKeyChars     = "chars"
	ConfigKeyUnihan    = "unihan"
	ConfigKeyTrace     = "trace"
	configKeyLevels    = "tracelevel"
)

// tracerKeys lists the tracers of the pinyin packages.
var tracerKeys = []string{
	"root", "pinyin", "pinyin.tone", "pinyin.trie", "pinyin.dict",
}

// ErrTraceLevel flags an unknown trace level.
var ErrTraceLevel = errors.New("unknown trace level")

// loadConfig collects configuration from the environment and from flags.
func loadConfig(flags *pflag.FlagSet) (*koanfadapter.KConf, error) {
	k := koanf.New("/")
	if err := k.Load(env.Provider(envPrefix, "/", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	if err := k.Load(posflag.Provider(flags, "/", k), nil); err != nil {
		return nil, fmt.Errorf("loading flags: %w", err)
	}
	return koanfadapter.New(k, "", nil), nil
}

// setupTracing installs logrus tracers for all packages, using the trace
// level from conf.
func setupTracing(conf *koanfadapter.KConf) error {
	level := conf.GetString(ConfigKeyTrace)
	if level == "" {
		level = "Error"
	}
	switch strings.ToLower(level) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("%w: %q", ErrTraceLevel, level)
	}
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	conf.Set("tracing.adapter", "logrus")
	for _, key := range tracerKeys {
		conf.Set(configKeyLevels+"/"+key, level)
	}
	if err := trace2go.ConfigureRoot(conf, configKeyLevels, trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// settings are the options of a conversion run.
type settings struct {
	format    tone.Format
	separator string
	split     bool
}

func loadSettings(conf *koanfadapter.KConf) (settings, error) {
	s := settings{
		separator: conf.GetString(ConfigKeySeparator),
		split:     conf.GetBool(ConfigKeySplit),
	}
	f, err := tone.ParseFormat(conf.GetString(ConfigKeyFormat))
	if err != nil {
		return s, err
	}
	s.format = f
	return s, nil
}

// loadConverter returns the default converter, or a converter over the
// default dictionaries overlayed with user dictionaries. Character tables
// from --chars take precedence over tables from --unihan.
func loadConverter(conf *koanfadapter.KConf) (*pinyin.Converter, error) {
	charsFile, wordsFile := conf.GetString(ConfigKeyChars), conf.GetString(ConfigKeyWords)
	unihanFile := conf.GetString(ConfigKeyUnihan)
	if charsFile == "" && wordsFile == "" && unihanFile == "" {
		return pinyin.Default(), nil
	}
	chars, words := dict.DefaultCharacters(), dict.DefaultWords()
	var err error
	if unihanFile != "" {
		if chars, err = mergeCharacters(chars, unihanFile, dict.ReadUnihan); err != nil {
			return nil, err
		}
	}
	if charsFile != "" {
		if chars, err = mergeCharacters(chars, charsFile, dict.ReadCharacters); err != nil {
			return nil, err
		}
	}
	if wordsFile != "" {
		if words, err = mergeWords(words, wordsFile); err != nil {
			return nil, err
		}
	}
	return pinyin.New(chars, words), nil
}

func mergeCharacters(chars *dict.Characters, path string,
	read func(io.Reader) (*dict.Characters, error)) (*dict.Characters, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	user, err := read(f)
	if err != nil {
		tracer().Errorf("cannot read character table %s: %v", path, err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("%d characters from %s", user.Len(), path)
	return chars.Merge(user), nil
}

func mergeWords(words *dict.Words, path string) (*dict.Words, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	user, err := dict.ReadWords(f)
	if err != nil {
		tracer().Errorf("cannot read word table %s: %v", path, err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("%d words from %s", user.Len(), path)
	return words.Merge(user), nil
}

// tracer traces with key 'pinyin'.
func tracer() tracing.Trace {
	return tracing.Select("pinyin")
}
