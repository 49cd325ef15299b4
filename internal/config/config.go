// Package config loads bibleref settings from defaults, a YAML file, and the
// environment (optionally seeded from .env files).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/coolbeans/bibleref/internal/logging"
	"github.com/coolbeans/bibleref/pkg/books"
	"github.com/coolbeans/bibleref/pkg/extract"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "BIBLEREF_"

// Supported values of Config.Language. An empty language picks the pattern
// set from the version.
const (
	LanguageEnglish = "english"
	LanguageSpanish = "spanish"
)

// Config holds the CLI settings.
type Config struct {
	Version     string            `yaml:"version"`
	DefaultBook string            `yaml:"default_book"`
	Language    string            `yaml:"language,omitempty"`
	Systems     []books.SystemRef `yaml:"systems"`
	SystemsDir  string            `yaml:"systems_dir,omitempty"`
	Database    string            `yaml:"database,omitempty"`
	Concurrency int               `yaml:"concurrency"`
	CacheTTL    time.Duration     `yaml:"cache_ttl"`
	LogLevel    string            `yaml:"log_level"`
	LogFormat   string            `yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:     "nlt",
		DefaultBook: extract.DefaultBook,
		Systems:     books.DefaultSystemRefs(),
		Concurrency: 4,
		CacheTTL:    10 * time.Minute,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables already set. Missing files are skipped. With no
// paths, ".env" in the working directory is tried.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from BIBLEREF_* variables found by lookup
// (normally os.LookupEnv). BIBLEREF_SYSTEMS is a comma-separated list of
// system[:separator] items.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	str("VERSION", &c.Version)
	str("DEFAULT_BOOK", &c.DefaultBook)
	str("LANGUAGE", &c.Language)
	str("SYSTEMS_DIR", &c.SystemsDir)
	str("DATABASE", &c.Database)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)

	if v, ok := lookup(EnvPrefix + "CONCURRENCY"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sCONCURRENCY: %w", EnvPrefix, err)
		}
		c.Concurrency = n
	}
	if v, ok := lookup(EnvPrefix + "CACHE_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sCACHE_TTL: %w", EnvPrefix, err)
		}
		c.CacheTTL = d
	}
	if v, ok := lookup(EnvPrefix + "SYSTEMS"); ok && v != "" {
		c.Systems = ParseSystems(v)
	}
	return nil
}

// ParseSystems parses "full-name:space,team-abbr:nbsp" into system refs. A
// missing separator means a plain space.
func ParseSystems(s string) []books.SystemRef {
	var refs []books.SystemRef
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		system, sep, _ := strings.Cut(item, ":")
		refs = append(refs, books.SystemRef{System: system, Separator: sep})
	}
	return refs
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var problems []string

	if c.Version == "" {
		problems = append(problems, "version is required")
	}
	if c.DefaultBook == "" {
		problems = append(problems, "default_book is required")
	}
	switch strings.ToLower(c.Language) {
	case "", LanguageEnglish, LanguageSpanish:
	default:
		problems = append(problems, fmt.Sprintf("unknown language %q", c.Language))
	}
	if len(c.Systems) == 0 {
		problems = append(problems, "at least one naming system is required")
	}
	for i, ref := range c.Systems {
		if ref.System == "" {
			problems = append(problems, fmt.Sprintf("systems[%d]: system is required", i))
		}
		if _, err := books.ParseSeparator(ref.Separator); err != nil {
			problems = append(problems, fmt.Sprintf("systems[%d]: %v", i, err))
		}
	}
	if c.Concurrency < 1 {
		problems = append(problems, fmt.Sprintf("concurrency must be at least 1, got %d", c.Concurrency))
	}
	if c.CacheTTL < 0 {
		problems = append(problems, fmt.Sprintf("cache_ttl must not be negative, got %s", c.CacheTTL))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Patterns returns the tokenizer pattern set for the configured language,
// falling back to the one associated with the version.
func (c *Config) Patterns() *extract.Patterns {
	switch strings.ToLower(c.Language) {
	case LanguageEnglish:
		return extract.EnglishPatterns()
	case LanguageSpanish:
		return extract.SpanishPatterns()
	}
	return extract.PatternsForVersion(c.Version)
}

// Logging returns the parsed log level and format. Call Validate first;
// unparseable values fall back to info and text.
func (c *Config) Logging() (logging.Level, logging.Format) {
	level, _ := logging.ParseLevel(c.LogLevel)
	format, _ := logging.ParseFormat(c.LogFormat)
	return level, format
}
