package bench

import (
	"sort"
	"time"
)

// FileResult holds per-level results for one corpus file.
type FileResult struct {
	ID     string        `json:"id"`
	Path   string        `json:"path"`
	Levels []LevelResult `json:"levels"`
}

// Report aggregates a full corpus run.
type Report struct {
	Corpus  string        `json:"corpus"`
	Files   []FileResult  `json:"files"`
	Summary []LevelResult `json:"summary"`
}

// Sweep evaluates every sample at every configured level and returns a
// report with per-file and corpus-wide aggregates. Summary rows are sorted
// by level ascending.
func Sweep(samples []*Sample, dir string, cfg Config) (*Report, error) {
	report := &Report{Corpus: dir}

	totals := make(map[int]*LevelResult)
	counts := make(map[int]int)

	for _, sample := range samples {
		fr := FileResult{ID: sample.ID, Path: sample.Path}
		for _, level := range cfg.Levels {
			lr, err := EvaluateSample(sample, level, cfg)
			if err != nil {
				return nil, err
			}
			fr.Levels = append(fr.Levels, lr)

			agg, ok := totals[level]
			if !ok {
				agg = &LevelResult{Level: level}
				totals[level] = agg
			}
			agg.OriginalChars += lr.OriginalChars
			agg.CompressedChars += lr.CompressedChars
			agg.MeanTime += lr.MeanTime
			counts[level]++
		}
		report.Files = append(report.Files, fr)
	}

	for level, agg := range totals {
		if agg.OriginalChars > 0 {
			agg.Ratio = float64(agg.CompressedChars) / float64(agg.OriginalChars)
		} else {
			agg.Ratio = 1.0
		}
		agg.SavingsPct = (1.0 - agg.Ratio) * 100.0
		agg.OriginalTokens = estimateTokens(agg.OriginalChars)
		agg.CompressedTokens = estimateTokens(agg.CompressedChars)
		if n := counts[level]; n > 0 {
			agg.MeanTime /= time.Duration(n)
		}
		report.Summary = append(report.Summary, *agg)
	}

	sort.Slice(report.Summary, func(i, j int) bool {
		return report.Summary[i].Level < report.Summary[j].Level
	})

	return report, nil
}
