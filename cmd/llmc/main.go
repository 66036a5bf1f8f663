// Package main implements the llmc CLI for compressing text destined for
// LLM context windows.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	compressor "github.com/avatsaev/llm-text-compressor"
	"github.com/avatsaev/llm-text-compressor/internal/config"
)

var version = "dev"

var (
	flagConfig      string
	flagLevel       int
	flagMarkdown    bool
	flagLocale      string
	flagPatterns    []string
	flagWords       []string
	flagNoNormalize bool
	flagStream      bool
	flagBufferSize  int
	flagStats       bool
	flagJSON        bool
	flagOutput      string
	flagVerbose     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "llmc [file]",
	Short: "Compress text for LLM context windows",
	Long: `llmc reduces the character count of natural-language text while keeping
URLs, emails, identifiers, code blocks and structured data intact, so the
result stays useful as LLM input.

Examples:
  # Compress a file at the default level
  llmc notes.txt

  # Compress stdin aggressively
  cat transcript.txt | llmc --level 3

  # Markdown-aware compression with stats
  llmc --markdown --stats README.md

  # Stream a large file with bounded memory
  llmc --stream big-corpus.txt`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runCompress,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "YAML config file")
	rootCmd.Flags().IntVarP(&flagLevel, "level", "l", 2, "compression level (1-4)")
	rootCmd.Flags().BoolVarP(&flagMarkdown, "markdown", "m", false, "markdown-aware compression")
	rootCmd.Flags().StringVar(&flagLocale, "locale", "", "preserve stop words for a locale (fr, es, de, pt, it)")
	rootCmd.Flags().StringArrayVarP(&flagPatterns, "pattern", "p", nil, "custom preserve regex (repeatable)")
	rootCmd.Flags().StringSliceVarP(&flagWords, "preserve", "w", nil, "words to preserve verbatim")
	rootCmd.Flags().BoolVar(&flagNoNormalize, "no-normalize", false, "skip whitespace normalization")
	rootCmd.Flags().BoolVar(&flagStream, "stream", false, "stream the input with bounded memory")
	rootCmd.Flags().IntVar(&flagBufferSize, "buffer-size", 0, "stream buffer threshold in bytes")
	rootCmd.Flags().BoolVarP(&flagStats, "stats", "s", false, "print compression statistics to stderr")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "with --stats, emit the full result as JSON on stdout")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write output to file instead of stdout")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging to stderr")
}

// buildOptions merges the config file, environment and flags. Flags win when
// explicitly set.
func buildOptions(cmd *cobra.Command) ([]compressor.Option, *config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("level") {
		cfg.Level = flagLevel
	}
	if flags.Changed("markdown") {
		cfg.Markdown = flagMarkdown
	}
	if flags.Changed("locale") {
		cfg.Locale = flagLocale
	}
	if flags.Changed("no-normalize") {
		cfg.Normalize = !flagNoNormalize
	}
	if flags.Changed("buffer-size") {
		cfg.BufferSize = flagBufferSize
	}
	cfg.PreservePatterns = append(cfg.PreservePatterns, flagPatterns...)
	cfg.PreserveWords = append(cfg.PreserveWords, flagWords...)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg.Options(), cfg, nil
}

func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	logcfg := zap.NewDevelopmentConfig()
	logger, err := logcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func runCompress(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	opts, cfg, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	out := os.Stdout
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if flagStream {
		return runStream(args, opts, out, logger)
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}
	logger.Debug("input read",
		zap.Int("bytes", len(text)),
		zap.Int("level", cfg.Level),
		zap.Bool("markdown", cfg.Markdown))

	if flagStats {
		res, err := compressor.CompressWithStats(text, opts...)
		if err != nil {
			return err
		}
		return writeStats(res, out)
	}

	compressed, err := compressor.Compress(text, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, compressed)
	return nil
}

// runStream compresses either a file (chunked reads) or stdin without ever
// holding the whole input in memory.
func runStream(args []string, opts []compressor.Option, out io.Writer, logger *zap.Logger) error {
	if len(args) == 1 && args[0] != "-" {
		pieces, err := compressor.CompressFile(args[0], opts...)
		if err != nil {
			return err
		}
		for piece := range pieces {
			fmt.Fprint(out, piece)
		}
		fmt.Fprintln(out)
		return nil
	}

	s, err := compressor.NewStream(opts...)
	if err != nil {
		return err
	}
	buf := make([]byte, 8192)
	for {
		n, readErr := os.Stdin.Read(buf)
		if n > 0 {
			if piece := s.Write(string(buf[:n])); piece != "" {
				fmt.Fprint(out, piece)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("failed to read from stdin: %w", readErr)
		}
	}
	if piece := s.Flush(); piece != "" {
		fmt.Fprint(out, piece)
	}
	fmt.Fprintln(out)
	logger.Debug("stream finished")
	return nil
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(data), nil
}

// writeStats prints the compressed text plus statistics. With --json the
// whole result, spans included, is emitted as a single JSON document.
func writeStats(res *compressor.Result, out io.Writer) error {
	if flagJSON {
		data, err := sonic.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, res.Text)
	fmt.Fprintf(os.Stderr, "original:   %d chars\n", res.OriginalLength)
	fmt.Fprintf(os.Stderr, "compressed: %d chars\n", res.CompressedLength)
	fmt.Fprintf(os.Stderr, "ratio:      %.3f\n", res.Ratio)
	fmt.Fprintf(os.Stderr, "savings:    %.1f%%\n", res.SavingsPct)
	fmt.Fprintf(os.Stderr, "spans:      %d preserved\n", len(res.PreservedSpans))
	return nil
}
