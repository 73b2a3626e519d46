package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shabbyrobe/go-radix"
	"gopkg.in/yaml.v2"
)

// TypeNames lists the integer types the radix command can convert between,
// in the order they are shown in help text.
var TypeNames = []string{"i8", "i16", "i32", "i64", "int", "u8", "u16", "u32", "u64", "uint"}

// Config holds the defaults for the radix command. Flags given on the command
// line take precedence over every field.
type Config struct {
	Type  string      `yaml:"type"`
	From  int         `yaml:"from"`
	To    int         `yaml:"to"`
	Style StyleConfig `yaml:"style"`
}

// StyleConfig mirrors radix.Style.
type StyleConfig struct {
	PadTo      int  `yaml:"padTo"`
	PadToEvery int  `yaml:"padToEvery"`
	SplitEvery int  `yaml:"splitEvery"`
	Prefix     bool `yaml:"prefix"`
	Lowercase  bool `yaml:"lowercase"`
}

// Default returns the configuration used when no file or environment
// overrides are present: decimal int input rendered as unprefixed hex.
func Default() *Config {
	return &Config{
		Type: "int",
		From: 10,
		To:   16,
	}
}

// Load is LoadUnvalidated followed by Validate.
func Load(filename string) (*Config, error) {
	cfg, err := LoadUnvalidated(filename)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// LoadUnvalidated builds a Config from the defaults, the YAML file at
// filename (skipped if filename is empty) and then RADIX_* environment
// variables. Callers that layer more overrides on top must call Validate
// themselves.
func LoadUnvalidated(filename string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		if err := loadFromFile(cfg, filename); err != nil {
			return nil, fmt.Errorf("config: failed to load %s: %w", filename, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func loadFromFile(cfg *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides replaces fields with values from the environment. Values
// that do not parse are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RADIX_TYPE"); v != "" {
		cfg.Type = v
	}
	envInt("RADIX_FROM", &cfg.From)
	envInt("RADIX_TO", &cfg.To)
	envInt("RADIX_PAD", &cfg.Style.PadTo)
	envInt("RADIX_PAD_EVERY", &cfg.Style.PadToEvery)
	envInt("RADIX_SPLIT", &cfg.Style.SplitEvery)
	envBool("RADIX_PREFIX", &cfg.Style.Prefix)
	envBool("RADIX_LOWER", &cfg.Style.Lowercase)
}

func envInt(key string, into *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*into = n
		}
	}
}

func envBool(key string, into *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*into = b
		}
	}
}

// Validate checks that the bases are usable, the type is known and the
// widths are not negative.
func (cfg *Config) Validate() error {
	if !contains(TypeNames, cfg.Type) {
		return fmt.Errorf("invalid type %q, must be one of: %v", cfg.Type, TypeNames)
	}
	if !radix.ValidBase(cfg.From) {
		return fmt.Errorf("invalid input base %d, must be %d-%d", cfg.From, radix.MinBase, radix.MaxBase)
	}
	if !radix.ValidBase(cfg.To) {
		return fmt.Errorf("invalid output base %d, must be %d-%d", cfg.To, radix.MinBase, radix.MaxBase)
	}
	if cfg.Style.PadTo < 0 || cfg.Style.PadToEvery < 0 || cfg.Style.SplitEvery < 0 {
		return fmt.Errorf("invalid style: padTo=%d, padToEvery=%d, splitEvery=%d (must not be negative)",
			cfg.Style.PadTo, cfg.Style.PadToEvery, cfg.Style.SplitEvery)
	}
	return nil
}

// RadixStyle converts the style section to a radix.Style.
func (cfg *Config) RadixStyle() radix.Style {
	return radix.Style{
		PadTo:      cfg.Style.PadTo,
		PadToEvery: cfg.Style.PadToEvery,
		SplitEvery: cfg.Style.SplitEvery,
		Prefix:     cfg.Style.Prefix,
		Lowercase:  cfg.Style.Lowercase,
	}
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
