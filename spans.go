package compressor

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// span is a candidate preserved region, in input-text byte coordinates.
// Detection works on an arena of these records; merging never mutates the
// underlying text.
type span struct {
	start, end int
	kind       SpanKind
}

// jsonValueOpeners are the characters a JSON value may start with: a string,
// a nested object/array, a number, or the true/false/null literals.
const jsonValueOpeners = `"{[0123456789-tfn`

// findBalancedEnd scans for the closing character matching an already-seen
// opener, starting just after it. String literals and escapes are honored
// for JSON-style structures. Returns the index just past the closer, or -1.
func findBalancedEnd(text string, start int, open, closer byte) int {
	count := 1
	i := start
	inString := false
	escape := false

	for i < len(text) && count > 0 {
		ch := text[i]

		if ch == '"' && !escape && (open == '{' || open == '[') {
			inString = !inString
		} else if ch == '\\' && inString {
			escape = !escape
			i++
			continue
		}

		if !inString {
			switch ch {
			case open:
				count++
			case closer:
				count--
			}
		}

		escape = false
		i++
	}

	if count == 0 {
		return i
	}
	return -1
}

// findJSONBlock tries to read a JSON object or array starting at start.
// Plain prose like "[word]" is rejected by requiring the next non-space
// character to be a valid JSON value opener.
func findJSONBlock(text string, start int) (int, int, bool) {
	if start >= len(text) {
		return 0, 0, false
	}

	open := text[start]
	if open != '{' && open != '[' {
		return 0, 0, false
	}

	if start+1 < len(text) {
		stop := start + 10
		if stop > len(text) {
			stop = len(text)
		}
		next := strings.TrimLeftFunc(text[start+1:stop], unicode.IsSpace)
		if next != "" && !strings.ContainsAny(next[:1], jsonValueOpeners) {
			return 0, 0, false
		}
	}

	closer := byte('}')
	if open == '[' {
		closer = ']'
	}
	end := findBalancedEnd(text, start+1, open, closer)
	if end < 0 {
		return 0, 0, false
	}
	return start, end, true
}

// findXMLBlock tries to read an XML/HTML element starting at start: an
// opening tag through the matching closing tag by tag name, or a
// self-closing tag.
func findXMLBlock(text string, start int) (int, int, bool) {
	if start >= len(text) || text[start] != '<' {
		return 0, 0, false
	}

	m := vocab.xmlOpenTag.FindStringSubmatch(text[start:])
	if m == nil {
		return 0, 0, false
	}

	tagName := m[1]
	tagEnd := start + len(m[0])

	if strings.HasSuffix(strings.TrimRightFunc(text[start:tagEnd], unicode.IsSpace), "/>") {
		return start, tagEnd, true
	}

	closeTag := "</" + tagName + ">"
	pos := strings.Index(text[tagEnd:], closeTag)
	if pos < 0 {
		return 0, 0, false
	}
	return start, tagEnd + pos + len(closeTag), true
}

// structuredDataSpans finds fenced code, inline code, JSON and XML regions.
// Candidates are sorted by start and overlaps dropped, earlier span wins.
func structuredDataSpans(text string) []span {
	var spans []span

	for _, loc := range vocab.fencedCode.FindAllStringIndex(text, -1) {
		spans = append(spans, span{loc[0], loc[1], SpanFencedCode})
	}
	for _, loc := range vocab.inlineCode.FindAllStringIndex(text, -1) {
		spans = append(spans, span{loc[0], loc[1], SpanInlineCode})
	}

	for i := 0; i < len(text); {
		if text[i] == '{' || text[i] == '[' {
			if s, e, ok := findJSONBlock(text, i); ok {
				spans = append(spans, span{s, e, SpanJSON})
				i = e
				continue
			}
		}
		i++
	}

	for i := 0; i < len(text); {
		if text[i] == '<' {
			if s, e, ok := findXMLBlock(text, i); ok {
				spans = append(spans, span{s, e, SpanXML})
				i = e
				continue
			}
		}
		i++
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	return dropOverlaps(spans)
}

// dropOverlaps walks candidates sorted by start and discards any span that
// overlaps an already-accepted one. The earlier-starting span wins outright;
// the loser is dropped entirely, never truncated.
func dropOverlaps(spans []span) []span {
	merged := make([]span, 0, len(spans))
	for _, sp := range spans {
		overlaps := false
		for _, acc := range merged {
			if sp.end > acc.start && sp.start < acc.end {
				overlaps = true
				break
			}
		}
		if !overlaps {
			merged = append(merged, sp)
		}
	}
	return merged
}

// detectSpans merges the three span sources into one non-overlapping sorted
// list. Candidate order before the stable sort encodes tie priority:
// structured data first, then custom patterns, then built-in patterns, so a
// custom pattern beats a built-in one starting at the same offset.
func detectSpans(text string, custom []*regexp.Regexp) []span {
	all := structuredDataSpans(text)

	for _, re := range custom {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			all = append(all, span{loc[0], loc[1], SpanCustomPattern})
		}
	}
	for _, loc := range vocab.preservePatterns.FindAllStringIndex(text, -1) {
		all = append(all, span{loc[0], loc[1], SpanPreserve})
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].start < all[j].start })
	return dropOverlaps(all)
}
