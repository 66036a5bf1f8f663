package compressor

import (
	"fmt"
	"regexp"
)

// Option configures a compression call or a Stream.
type Option func(*config)

// customPattern is either a raw pattern source (compiled and validated when
// the call resolves its options) or an already-compiled expression.
type customPattern struct {
	src string
	re  *regexp.Regexp
}

type config struct {
	level         int
	normalize     bool
	markdown      bool
	locale        string
	custom        []customPattern
	preserveWords map[string]struct{}
	bufferSize    int
	chunkSize     int

	// patterns holds the compiled form of custom, in declaration order.
	// Populated by resolveConfig.
	patterns []*regexp.Regexp
}

func defaultConfig() config {
	return config{
		level:      2,
		normalize:  true,
		bufferSize: 4096,
		chunkSize:  8192,
	}
}

// WithLevel sets the compression aggressiveness (1=light, 2=medium, 3=heavy,
// 4=maximum with sentence pruning). Default: 2.
func WithLevel(level int) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithoutNormalization disables whitespace normalization.
func WithoutNormalization() Option {
	return func(c *config) {
		c.normalize = false
	}
}

// WithMarkdown enables markdown-aware compression: headings, list markers,
// blockquote prefixes, horizontal rules and link URLs are kept verbatim while
// the surrounding text is compressed.
func WithMarkdown() Option {
	return func(c *config) {
		c.markdown = true
	}
}

// WithLocale preserves stop words for the given language code (fr, es, de,
// pt, it). Unknown codes are ignored.
func WithLocale(code string) Option {
	return func(c *config) {
		c.locale = code
	}
}

// WithPreserveWords adds words that must never be compressed, merged with the
// built-in stop-word set. Matching is done on the lower-cased token.
func WithPreserveWords(words ...string) Option {
	return func(c *config) {
		if c.preserveWords == nil {
			c.preserveWords = make(map[string]struct{}, len(words))
		}
		for _, w := range words {
			c.preserveWords[w] = struct{}{}
		}
	}
}

// WithPreservePattern adds a custom regular expression (Go syntax) whose
// matches are preserved verbatim. The source is compiled when the call
// resolves its options; an invalid pattern fails the whole call with
// ErrInvalidPattern before any text is processed.
func WithPreservePattern(src string) Option {
	return func(c *config) {
		c.custom = append(c.custom, customPattern{src: src})
	}
}

// WithCompiledPattern adds an already-compiled custom preserve pattern.
func WithCompiledPattern(re *regexp.Regexp) Option {
	return func(c *config) {
		if re != nil {
			c.custom = append(c.custom, customPattern{re: re})
		}
	}
}

// WithBufferSize sets the Stream buffer threshold in bytes (default: 4096).
// The buffer may temporarily exceed it when no word boundary is in reach.
func WithBufferSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// WithChunkSize sets the read size used by CompressFile (default: 8192).
// CompressFile also adopts it as the stream buffer threshold.
func WithChunkSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// resolveConfig applies options, validates the level, compiles custom
// patterns and merges locale stop words into the preserve-word set. All
// input validation happens here, before any text is touched.
func resolveConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.level < 1 || cfg.level > 4 {
		return cfg, fmt.Errorf("%w: got %d", ErrInvalidLevel, cfg.level)
	}

	if len(cfg.custom) > 0 {
		cfg.patterns = make([]*regexp.Regexp, 0, len(cfg.custom))
		for _, p := range cfg.custom {
			if p.re != nil {
				cfg.patterns = append(cfg.patterns, p.re)
				continue
			}
			re, err := regexp.Compile(p.src)
			if err != nil {
				return cfg, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, p.src, err)
			}
			cfg.patterns = append(cfg.patterns, re)
		}
	}

	if locale, ok := vocab.localeStopWords[cfg.locale]; ok {
		if cfg.preserveWords == nil {
			cfg.preserveWords = make(map[string]struct{}, len(locale))
		}
		for w := range locale {
			cfg.preserveWords[w] = struct{}{}
		}
	}

	return cfg, nil
}
