package compressor

import (
	"strings"
	"unicode"
)

// normalizeWhitespace cleans up whitespace without touching content:
//
//   - trailing whitespace stripped per line
//   - interior runs of spaces/tabs collapsed to one space, leading
//     indentation kept verbatim
//   - runs of 3+ blank lines collapsed to exactly 2
//   - leading and trailing blank lines removed from the whole text
//
// Pure function; callers disable it via WithoutNormalization.
func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))
	blanks := 0

	for _, line := range lines {
		stripped := strings.TrimRightFunc(line, unicode.IsSpace)
		if stripped == "" {
			blanks++
			if blanks <= 2 {
				result = append(result, "")
			}
			continue
		}
		blanks = 0
		leading := line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]
		content := vocab.spaceTabRuns.ReplaceAllString(stripped[len(leading):], " ")
		result = append(result, leading+content)
	}

	for len(result) > 0 && result[0] == "" {
		result = result[1:]
	}
	for len(result) > 0 && result[len(result)-1] == "" {
		result = result[:len(result)-1]
	}

	return strings.Join(result, "\n")
}
