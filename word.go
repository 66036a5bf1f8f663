package compressor

import (
	"strings"
	"unicode"
)

// specialChars inside a token mean it is not a plain word (paths, tags,
// handles) and must pass through untouched.
const specialChars = "@:/_.#{}[]()"

// removeDoubleLetters collapses runs of identical letters, compared
// case-insensitively: "letter" -> "leter". Words of length <= 2 are left
// alone.
func removeDoubleLetters(word []rune) []rune {
	if len(word) <= 2 {
		return word
	}
	out := make([]rune, 1, len(word))
	out[0] = word[0]
	for _, r := range word[1:] {
		if unicode.ToLower(r) != unicode.ToLower(out[len(out)-1]) {
			out = append(out, r)
		}
	}
	return out
}

// removeInteriorVowels drops vowels between the first and last character.
// A vowel is kept whenever dropping it would leave a run of 4+ consecutive
// consonants; keeping one resets the run. This is a readability guard, not
// a correctness requirement.
func removeInteriorVowels(word []rune) []rune {
	if len(word) <= 3 {
		return word
	}

	first, middle, last := word[0], word[1:len(word)-1], word[len(word)-1]

	out := make([]rune, 0, len(word))
	out = append(out, first)
	streak := 0
	if !isVowel(first) && !isVowel(unicode.ToLower(first)) {
		streak = 1
	}

	for _, r := range middle {
		if isVowel(r) || isVowel(unicode.ToLower(r)) {
			if streak >= 3 {
				out = append(out, r)
				streak = 0
			}
		} else {
			out = append(out, r)
			streak++
		}
	}

	return append(out, last)
}

// aggressiveTrim truncates long words to a recognizable prefix plus the
// original final character: "undrstandng" -> "undrsg".
func aggressiveTrim(word []rune) []rune {
	if len(word) > 6 {
		return append(word[:5:5], word[len(word)-1])
	}
	return word
}

// isProperNoun reports whether a word looks like a name: leading capital,
// remainder not all-caps.
func isProperNoun(word []rune) bool {
	if len(word) <= 1 || !unicode.IsUpper(word[0]) {
		return false
	}
	return !isAllUpper(word) && !isAllUpper(word[1:])
}

// isAllUpper mirrors the "acronym" test: at least one cased rune, and every
// cased rune upper-case.
func isAllUpper(word []rune) bool {
	hasUpper := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// compressWord applies the level-specific transforms to one alphabetic
// token. The guards run first; any that fires returns the token unchanged.
func compressWord(word string, level int, preserve map[string]struct{}) string {
	runes := []rune(word)
	if len(runes) <= 3 {
		return word
	}

	lower := strings.ToLower(word)
	if _, ok := vocab.stopWords[lower]; ok {
		return word
	}
	if _, ok := preserve[lower]; ok {
		return word
	}

	if strings.ContainsAny(word, specialChars) {
		return word
	}
	if isAllUpper(runes) {
		return word
	}
	if isProperNoun(runes) {
		return word
	}

	result := removeDoubleLetters(runes)
	if level == 1 {
		return string(result)
	}

	result = removeInteriorVowels(result)
	if level == 2 {
		return string(result)
	}

	return string(aggressiveTrim(result))
}
