package compressor

import "strings"

// pruneSentences is the level-4 pre-pass: filler phrases are replaced by a
// single space (nine category patterns, fixed order), space runs collapsed,
// then consecutive duplicate lines dropped. Comparison for deduplication is
// case-insensitive on trimmed content; blank lines are always kept and do
// not reset the previous-line reference.
func pruneSentences(text string) string {
	for _, re := range vocab.fillerPhrases {
		text = re.ReplaceAllString(text, " ")
	}
	text = vocab.spaceRuns.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	deduped := make([]string, 0, len(lines))
	prev := ""

	for _, line := range lines {
		normalized := strings.ToLower(strings.TrimSpace(line))
		switch {
		case normalized == "":
			deduped = append(deduped, line)
		case normalized != prev:
			deduped = append(deduped, line)
			prev = normalized
		}
	}

	return strings.Join(deduped, "\n")
}
