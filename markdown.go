package compressor

import (
	"regexp"
	"strings"
)

// compressMarkdown compresses text line by line, keeping markdown syntax
// markers verbatim and routing only the line content through the segment
// compressor. Horizontal rules are the single line kind preserved whole and
// the only markdown construct reported as a span.
func compressMarkdown(text string, level int, collect *[]outSpan, custom []*regexp.Regexp, preserve map[string]struct{}) string {
	offset := 0
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for idx, line := range lines {
		sep := 0
		if idx < len(lines)-1 {
			sep = 1 // the newline that will rejoin this line
		}

		if vocab.mdHR.MatchString(line) {
			out = append(out, line)
			if collect != nil {
				*collect = append(*collect, outSpan{offset, offset + len(line), SpanMarkdownHR})
			}
			offset += len(line) + sep
			continue
		}

		if m := vocab.mdHeading.FindStringSubmatch(line); m != nil {
			compressed := m[1] + compressWithPatterns(line[len(m[1]):], level, nil, custom, preserve)
			out = append(out, compressed)
			offset += len(compressed) + sep
			continue
		}

		if m := vocab.mdList.FindStringSubmatch(line); m != nil {
			compressed := m[1] + compressWithPatterns(line[len(m[1]):], level, nil, custom, preserve)
			out = append(out, compressed)
			offset += len(compressed) + sep
			continue
		}

		if m := vocab.mdBlockquote.FindStringSubmatch(line); m != nil {
			compressed := m[1] + compressWithPatterns(line[len(m[1]):], level, nil, custom, preserve)
			out = append(out, compressed)
			offset += len(compressed) + sep
			continue
		}

		compressed := compressInlineLinks(line, level, custom, preserve)
		out = append(out, compressed)
		offset += len(compressed) + sep
	}

	return strings.Join(out, "\n")
}

// compressInlineLinks handles [text](url) and ![alt](url) on an otherwise
// plain line: the link text is compressed, the URL kept verbatim regardless
// of content, and everything between links goes through the standard
// span-detection path.
func compressInlineLinks(line string, level int, custom []*regexp.Regexp, preserve map[string]struct{}) string {
	matches := vocab.mdLink.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return compressWithPatterns(line, level, nil, custom, preserve)
	}

	var b strings.Builder
	pos := 0

	for _, loc := range matches {
		if loc[0] > pos {
			b.WriteString(compressWithPatterns(line[pos:loc[0]], level, nil, custom, preserve))
		}

		isImage := strings.HasPrefix(line[loc[0]:loc[1]], "!")
		linkText := compressWithPatterns(line[loc[2]:loc[3]], level, nil, custom, preserve)
		url := line[loc[4]:loc[5]]

		if isImage {
			b.WriteString("![")
		} else {
			b.WriteString("[")
		}
		b.WriteString(linkText)
		b.WriteString("](")
		b.WriteString(url)
		b.WriteString(")")

		pos = loc[1]
	}

	if pos < len(line) {
		b.WriteString(compressWithPatterns(line[pos:], level, nil, custom, preserve))
	}

	return b.String()
}
