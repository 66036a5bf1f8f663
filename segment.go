package compressor

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// outSpan is a preserved span in compressed-output byte coordinates,
// accumulated while segments are reassembled.
type outSpan struct {
	start, end int
	kind       SpanKind
}

// isWordRune reports whether a rune belongs to a word token: ASCII letters,
// the Latin-1 accented block, and the apostrophe (contractions).
func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 0x00C0 && r <= 0x00FF:
		return true
	case r == '\'':
		return true
	}
	return false
}

// compressSegment compresses a plain-text segment with no preserved spans
// inside: alternating runs of word and non-word runes, with word runs fed
// through compressWord and everything else copied verbatim.
func compressSegment(segment string, level int, preserve map[string]struct{}) string {
	var b strings.Builder
	b.Grow(len(segment))

	for i := 0; i < len(segment); {
		r, size := utf8.DecodeRuneInString(segment[i:])
		word := isWordRune(r)
		j := i + size
		for j < len(segment) {
			r2, size2 := utf8.DecodeRuneInString(segment[j:])
			if isWordRune(r2) != word {
				break
			}
			j += size2
		}
		if word {
			b.WriteString(compressWord(segment[i:j], level, preserve))
		} else {
			b.WriteString(segment[i:j])
		}
		i = j
	}

	return b.String()
}

// compressWithPatterns compresses text while keeping detected spans (URLs,
// emails, structured data, custom patterns) intact. Preserved spans are
// reported in output coordinates through collect when it is non-nil.
func compressWithPatterns(text string, level int, collect *[]outSpan, custom []*regexp.Regexp, preserve map[string]struct{}) string {
	merged := detectSpans(text, custom)
	if len(merged) == 0 {
		return compressSegment(text, level, preserve)
	}

	var b strings.Builder
	b.Grow(len(text))
	prevEnd := 0
	offset := 0

	for _, sp := range merged {
		if sp.start > prevEnd {
			compressed := compressSegment(text[prevEnd:sp.start], level, preserve)
			b.WriteString(compressed)
			offset += len(compressed)
		}

		preserved := text[sp.start:sp.end]
		b.WriteString(preserved)
		if collect != nil {
			*collect = append(*collect, outSpan{offset, offset + len(preserved), sp.kind})
		}
		offset += len(preserved)
		prevEnd = sp.end
	}

	if prevEnd < len(text) {
		b.WriteString(compressSegment(text[prevEnd:], level, preserve))
	}

	return b.String()
}
