package tokenizers

import (
	"bytes"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/gomlx/go-thainlp/corpus"
	"github.com/gomlx/go-thainlp/tokenizers/api"
	"github.com/gomlx/go-thainlp/tokenizers/tcc"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables read by LoadConfig, e.g. THAINLP_ENGINE.
const EnvPrefix = "THAINLP"

// Config is the serializable configuration of a Tokenizer.
//
// Values are resolved in order: DefaultConfig, then the YAML file, then THAINLP_* environment
// variables.
type Config struct {
	// Engine is an engine name accepted by api.ParseEngine: "newmm", "newmm-safe", "longest", "mm".
	Engine string `yaml:"engine" env:"ENGINE"`

	// SafeMode bounds the newmm work on long ambiguous spans.
	SafeMode bool `yaml:"safe_mode" env:"SAFE_MODE"`

	// MaxEdges is the safe mode budget; 0 uses the default.
	MaxEdges int `yaml:"max_edges" env:"MAX_EDGES"`

	// ClusterRules is "improved" or "legacy".
	ClusterRules string `yaml:"cluster_rules" env:"CLUSTER_RULES"`

	// Dictionary is the path to a word list; empty uses the embedded default list.
	Dictionary string `yaml:"dictionary" env:"DICTIONARY"`

	// DictionaryColumn is the column read from Parquet word lists.
	DictionaryColumn string `yaml:"dictionary_column" env:"DICTIONARY_COLUMN"`

	// Words are added to the dictionary.
	Words []string `yaml:"words" env:"-"`

	KeepWhitespace       bool `yaml:"keep_whitespace" env:"KEEP_WHITESPACE"`
	JoinFormattedNumbers bool `yaml:"join_formatted_numbers" env:"JOIN_FORMATTED_NUMBERS"`
	MergeUnknown         bool `yaml:"merge_unknown" env:"MERGE_UNKNOWN"`
}

// DefaultConfig returns the configuration matching New without options.
func DefaultConfig() *Config {
	return &Config{
		Engine:               api.EngineNewMM.String(),
		ClusterRules:         tcc.RulesImproved.String(),
		DictionaryColumn:     corpus.DefaultColumn,
		KeepWhitespace:       true,
		JoinFormattedNumbers: true,
	}
}

// ParseConfig parses a YAML configuration over DefaultConfig. Unknown fields are an error.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to parse tokenizer configuration")
	}
	return cfg, nil
}

// LoadConfig reads the YAML configuration at path, if path is not empty, and applies the THAINLP_*
// environment variables.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read tokenizer configuration %s", path)
		}
		cfg, err = ParseConfig(data)
		if err != nil {
			return nil, errors.WithMessagef(err, "configuration %s", path)
		}
	}
	if err := cfg.ApplyEnv(EnvPrefix); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides the fields of cfg with the non-empty environment variables prefix_<FIELD>, where
// <FIELD> is the env tag of the field.
func (cfg *Config) ApplyEnv(prefix string) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := range v.NumField() {
		tag := t.Field(i).Tag.Get("env")
		if tag == "" || tag == "-" {
			continue
		}
		key := prefix + "_" + tag
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		if err := setField(v.Field(i), value); err != nil {
			return errors.WithMessagef(err, "environment variable %s", key)
		}
	}
	return nil
}

func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "invalid boolean %q", value)
		}
		field.SetBool(b)
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "invalid integer %q", value)
		}
		field.SetInt(int64(n))
	default:
		return errors.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}

// Options converts the configuration to Tokenizer options, validating the engine and ruleset names.
func (cfg *Config) Options() ([]Option, error) {
	spec, err := api.ParseEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}
	rules, err := tcc.ParseRuleset(cfg.ClusterRules)
	if err != nil {
		return nil, err
	}
	opts := []Option{
		WithEngine(spec.Engine),
		WithSafeMode(spec.SafeMode || cfg.SafeMode),
		WithClusterRules(rules),
		WithKeepWhitespace(cfg.KeepWhitespace),
		WithJoinFormattedNumbers(cfg.JoinFormattedNumbers),
		WithMergeUnknown(cfg.MergeUnknown),
	}
	if cfg.MaxEdges > 0 {
		opts = append(opts, WithMaxEdges(cfg.MaxEdges))
	}
	if cfg.Dictionary != "" {
		opts = append(opts, WithDictionary(cfg.Dictionary))
	}
	if cfg.DictionaryColumn != "" {
		opts = append(opts, WithParquetColumn(cfg.DictionaryColumn))
	}
	if len(cfg.Words) > 0 {
		opts = append(opts, WithWords(cfg.Words...))
	}
	return opts, nil
}

// NewFromConfig creates a Tokenizer from a configuration.
func NewFromConfig(cfg *Config) (*Tokenizer, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, errors.WithMessage(err, "invalid tokenizer configuration")
	}
	return New(opts...)
}
