package compressor

import "strings"

// Compress removes letters from text to make it smaller but still
// understandable by an LLM. Emails, URLs, phone numbers, IDs, UUIDs, code,
// JSON, XML and proper nouns are left intact. Text enclosed in
// [COMPRESSOR_OFF]...[/COMPRESSOR_OFF] markers passes through verbatim with
// the markers stripped.
//
// Compress is pure and deterministic: identical input and options always
// produce identical output. It returns ErrInvalidLevel or ErrInvalidPattern
// before touching any text; no other input fails.
func Compress(text string, opts ...Option) (string, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return "", err
	}

	work, level := applyPruning(text, cfg.level)
	return runPipeline(work, level, cfg, nil), nil
}

// CompressWithStats performs the same computation as Compress and returns
// the full statistics, including every preserved span in output-text byte
// coordinates.
func CompressWithStats(text string, opts ...Option) (*Result, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}

	work, level := applyPruning(text, cfg.level)

	// Level 4 measures against the pruned text: pruning is a semantic edit,
	// not a compression artifact.
	originalLength := len(work)

	var collected []outSpan
	compressed := runPipeline(work, level, cfg, &collected)

	ratio := 1.0
	if originalLength > 0 {
		ratio = float64(len(compressed)) / float64(originalLength)
	}

	spans := make([]PreservedSpan, len(collected))
	for i, s := range collected {
		spans[i] = PreservedSpan{
			Start: s.start,
			End:   s.end,
			Text:  compressed[s.start:s.end],
			Kind:  s.kind,
		}
	}

	return &Result{
		Text:             compressed,
		OriginalLength:   originalLength,
		CompressedLength: len(compressed),
		Ratio:            ratio,
		SavingsPct:       (1 - ratio) * 100,
		Level:            cfg.level,
		PreservedSpans:   spans,
	}, nil
}

// applyPruning runs the level-4 sentence pruner and maps level 4 to an
// effective level 3 for the word-transform stages.
func applyPruning(text string, level int) (string, int) {
	if level == 4 {
		return pruneSentences(text), 3
	}
	return text, level
}

// runPipeline executes normalization, opt-out region handling and routing
// for text whose pruning (if any) has already been applied. level is the
// effective word-transform level.
func runPipeline(text string, level int, cfg config, collect *[]outSpan) string {
	if cfg.normalize {
		text = normalizeOutsideOffRegions(text)
	}

	route := func(segment string, col *[]outSpan) string {
		if cfg.markdown {
			return compressMarkdown(segment, level, col, cfg.patterns, cfg.preserveWords)
		}
		return compressWithPatterns(segment, level, col, cfg.patterns, cfg.preserveWords)
	}

	regions := vocab.offRegion.FindAllStringSubmatchIndex(text, -1)
	if len(regions) == 0 {
		return route(text, collect)
	}

	var b strings.Builder
	b.Grow(len(text))
	prevEnd := 0
	offset := 0

	emit := func(segment string) {
		var segSpans []outSpan
		var col *[]outSpan
		if collect != nil {
			col = &segSpans
		}
		compressed := route(segment, col)
		b.WriteString(compressed)
		if collect != nil {
			for _, s := range segSpans {
				*collect = append(*collect, outSpan{offset + s.start, offset + s.end, s.kind})
			}
		}
		offset += len(compressed)
	}

	for _, m := range regions {
		if m[0] > prevEnd {
			emit(text[prevEnd:m[0]])
		}

		// The tags are dropped; the enclosed content is reinserted untouched.
		content := text[m[2]:m[3]]
		b.WriteString(content)
		if collect != nil {
			*collect = append(*collect, outSpan{offset, offset + len(content), SpanCompressorOff})
		}
		offset += len(content)
		prevEnd = m[1]
	}

	if prevEnd < len(text) {
		emit(text[prevEnd:])
	}

	return b.String()
}

// normalizeOutsideOffRegions normalizes whitespace everywhere except inside
// [COMPRESSOR_OFF] regions, which are kept byte-identical (tags included) so
// the later extraction pass sees them unchanged. An opening tag without a
// matching closer is deliberately not recognized: it flows through as
// ordinary text and gets compressed like any other.
func normalizeOutsideOffRegions(text string) string {
	regions := vocab.offRegion.FindAllStringIndex(text, -1)
	if len(regions) == 0 {
		return normalizeWhitespace(text)
	}

	var b strings.Builder
	b.Grow(len(text))
	prev := 0

	for _, m := range regions {
		if m[0] > prev {
			b.WriteString(normalizeWhitespace(text[prev:m[0]]))
		}
		b.WriteString(text[m[0]:m[1]])
		prev = m[1]
	}
	if prev < len(text) {
		b.WriteString(normalizeWhitespace(text[prev:]))
	}

	return b.String()
}
