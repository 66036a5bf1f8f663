package bench

import (
	"fmt"
	"sort"
	"time"

	compressor "github.com/avatsaev/llm-text-compressor"
)

// Config holds evaluation parameters.
type Config struct {
	Levels     []int
	Iterations int
	Locale     string
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Levels:     []int{1, 2, 3, 4},
		Iterations: 5,
	}
}

// LevelResult holds measurements for one sample at one compression level.
type LevelResult struct {
	Level            int           `json:"level"`
	OriginalChars    int           `json:"original_chars"`
	CompressedChars  int           `json:"compressed_chars"`
	Ratio            float64       `json:"ratio"`
	SavingsPct       float64       `json:"savings_pct"`
	OriginalTokens   int           `json:"original_tokens_est"`
	CompressedTokens int           `json:"compressed_tokens_est"`
	MeanTime         time.Duration `json:"mean_time_ns"`
	MedianTime       time.Duration `json:"median_time_ns"`
	MinTime          time.Duration `json:"min_time_ns"`
	MaxTime          time.Duration `json:"max_time_ns"`
}

// estimateTokens approximates LLM token count at four characters per token.
func estimateTokens(chars int) int {
	return chars / 4
}

// EvaluateSample compresses one sample at one level cfg.Iterations times and
// aggregates size and timing measurements.
func EvaluateSample(sample *Sample, level int, cfg Config) (LevelResult, error) {
	opts := []compressor.Option{compressor.WithLevel(level)}
	if sample.Markdown {
		opts = append(opts, compressor.WithMarkdown())
	}
	if cfg.Locale != "" {
		opts = append(opts, compressor.WithLocale(cfg.Locale))
	}

	iterations := cfg.Iterations
	if iterations < 1 {
		iterations = 1
	}

	var res *compressor.Result
	times := make([]time.Duration, 0, iterations)
	for i := 0; i < iterations; i++ {
		start := time.Now()
		r, err := compressor.CompressWithStats(sample.Text, opts...)
		if err != nil {
			return LevelResult{}, fmt.Errorf("compress %s level %d: %w", sample.ID, level, err)
		}
		times = append(times, time.Since(start))
		res = r
	}

	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	var total time.Duration
	for _, t := range times {
		total += t
	}

	return LevelResult{
		Level:            level,
		OriginalChars:    res.OriginalLength,
		CompressedChars:  res.CompressedLength,
		Ratio:            res.Ratio,
		SavingsPct:       res.SavingsPct,
		OriginalTokens:   estimateTokens(res.OriginalLength),
		CompressedTokens: estimateTokens(res.CompressedLength),
		MeanTime:         total / time.Duration(len(times)),
		MedianTime:       times[len(times)/2],
		MinTime:          times[0],
		MaxTime:          times[len(times)-1],
	}, nil
}
