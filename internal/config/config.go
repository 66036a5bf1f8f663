// Package config provides configuration loading for the llmc CLI.
//
// Configuration is loaded from a YAML file and overridden by LLMC_-prefixed
// environment variables. All fields map to compression options:
//
//	level: 3
//	normalize: true
//	markdown: false
//	locale: fr
//	preserve_patterns:
//	  - 'JIRA-\d+'
//	preserve_words:
//	  - kubernetes
//	buffer_size: 4096
//	chunk_size: 8192
package config

import (
	"fmt"
	"os"
	"strings"

	compressor "github.com/avatsaev/llm-text-compressor"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "LLMC_"

// Config holds the complete llmc configuration.
type Config struct {
	Level            int      `koanf:"level"`
	Normalize        bool     `koanf:"normalize"`
	Markdown         bool     `koanf:"markdown"`
	Locale           string   `koanf:"locale"`
	PreservePatterns []string `koanf:"preserve_patterns"`
	PreserveWords    []string `koanf:"preserve_words"`
	BufferSize       int      `koanf:"buffer_size"`
	ChunkSize        int      `koanf:"chunk_size"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Level:      2,
		Normalize:  true,
		BufferSize: 4096,
		ChunkSize:  8192,
	}
}

// Load reads configuration with the following precedence, highest first:
//
//  1. LLMC_-prefixed environment variables (LLMC_LEVEL, LLMC_LOCALE, ...)
//  2. YAML config file at path, if path is non-empty
//  3. Defaults from Default
//
// A missing file at path is an error; pass "" to skip file loading.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	// LLMC_PRESERVE_WORDS maps to preserve_words and so on. Everything is a
	// flat key, so the transform is just strip-prefix and lowercase.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	// Unmarshal over the defaults so absent keys keep their default values.
	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Options converts the configuration into compressor options.
func (c *Config) Options() []compressor.Option {
	opts := []compressor.Option{
		compressor.WithLevel(c.Level),
		compressor.WithBufferSize(c.BufferSize),
		compressor.WithChunkSize(c.ChunkSize),
	}
	if !c.Normalize {
		opts = append(opts, compressor.WithoutNormalization())
	}
	if c.Markdown {
		opts = append(opts, compressor.WithMarkdown())
	}
	if c.Locale != "" {
		opts = append(opts, compressor.WithLocale(c.Locale))
	}
	for _, p := range c.PreservePatterns {
		opts = append(opts, compressor.WithPreservePattern(p))
	}
	if len(c.PreserveWords) > 0 {
		opts = append(opts, compressor.WithPreserveWords(c.PreserveWords...))
	}
	return opts
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Level < 1 || c.Level > 4 {
		return fmt.Errorf("level must be between 1 and 4, got %d", c.Level)
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer_size must be positive, got %d", c.BufferSize)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	}
	return nil
}
