// Package main implements llmc-bench, a corpus benchmark for the compression
// library. It reports character and estimated-token savings plus timings per
// level, as a styled table or a JSON document.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/avatsaev/llm-text-compressor/internal/bench"
)

var (
	flagCorpus     string
	flagLevels     []int
	flagIterations int
	flagLocale     string
	flagJSON       bool
	flagPerFile    bool
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	savedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "llmc-bench",
	Short: "Benchmark text compression over a corpus",
	Long: `llmc-bench compresses every .txt and .md file in a corpus directory at
each requested level and reports size reduction and timing.

Examples:
  # Benchmark the default corpus at all levels
  llmc-bench --corpus testdata/corpus

  # Levels 2 and 3 only, 10 timing iterations, JSON report
  llmc-bench --corpus docs/ --levels 2,3 --iterations 10 --json`,
	RunE: runBench,
}

func init() {
	rootCmd.Flags().StringVar(&flagCorpus, "corpus", "testdata/corpus", "directory containing .txt and .md files")
	rootCmd.Flags().IntSliceVar(&flagLevels, "levels", []int{1, 2, 3, 4}, "compression levels to evaluate")
	rootCmd.Flags().IntVar(&flagIterations, "iterations", 5, "timing iterations per file and level")
	rootCmd.Flags().StringVar(&flagLocale, "locale", "", "locale stop words to preserve")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "emit the report as JSON")
	rootCmd.Flags().BoolVar(&flagPerFile, "per-file", false, "print a table per corpus file")
}

func runBench(cmd *cobra.Command, args []string) error {
	samples, err := bench.LoadCorpus(flagCorpus)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	if len(samples) == 0 {
		return fmt.Errorf("no .txt or .md files in %s", flagCorpus)
	}

	cfg := bench.Config{
		Levels:     flagLevels,
		Iterations: flagIterations,
		Locale:     flagLocale,
	}

	report, err := bench.Sweep(samples, flagCorpus, cfg)
	if err != nil {
		return err
	}

	if flagJSON {
		data, err := sonic.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Corpus: %s (%d files)", flagCorpus, len(samples))))
	fmt.Println()

	if flagPerFile {
		for _, fr := range report.Files {
			fmt.Println(dimStyle.Render(fr.Path))
			printTable(fr.Levels)
			fmt.Println()
		}
	}

	fmt.Println(headerStyle.Render("Summary"))
	printTable(report.Summary)
	return nil
}

func printTable(rows []bench.LevelResult) {
	header := fmt.Sprintf("%-6s %-10s %-10s %-8s %-9s %-10s %-10s",
		"Level", "Orig", "Comp", "Ratio", "Saved", "Tokens", "Mean")
	fmt.Println(headerStyle.Render(header))
	fmt.Println(dimStyle.Render(strings.Repeat("-", len(header))))

	for _, r := range rows {
		tokens := strconv.Itoa(r.OriginalTokens) + ">" + strconv.Itoa(r.CompressedTokens)
		fmt.Printf("%-6d %-10d %-10d %-8.3f %s %-10s %-10s\n",
			r.Level, r.OriginalChars, r.CompressedChars, r.Ratio,
			savedStyle.Render(fmt.Sprintf("%-9s", fmt.Sprintf("%.1f%%", r.SavingsPct))),
			tokens, r.MeanTime.Round(time.Microsecond).String())
	}
}
