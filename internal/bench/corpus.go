// Package bench provides benchmarking utilities for text compression.
package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sample is one corpus document to compress.
type Sample struct {
	ID       string // filename without extension
	Path     string
	Markdown bool // true for .md files
	Text     string
}

// LoadSample reads a single corpus file. Files with an .md extension are
// flagged for markdown-aware compression.
func LoadSample(path string) (*Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)

	return &Sample{
		ID:       strings.TrimSuffix(base, ext),
		Path:     path,
		Markdown: ext == ".md",
		Text:     string(data),
	}, nil
}

// LoadCorpus loads all .txt and .md files from a directory.
func LoadCorpus(dir string) ([]*Sample, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var samples []*Sample
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".txt" && ext != ".md" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		sample, err := LoadSample(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		samples = append(samples, sample)
	}

	return samples, nil
}
