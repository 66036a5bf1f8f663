package compressor

import (
	"regexp"
	"strings"
)

// vocabulary holds every compiled pattern and word table the engine needs.
// It is built exactly once, at package init, and never mutated afterwards,
// which makes it safe for unrestricted concurrent reads.
type vocabulary struct {
	stopWords       map[string]struct{}
	localeStopWords map[string]map[string]struct{}
	vowels          map[rune]struct{}

	fillerPhrases []*regexp.Regexp
	spaceRuns     *regexp.Regexp
	spaceTabRuns  *regexp.Regexp

	offRegion *regexp.Regexp

	fencedCode       *regexp.Regexp
	inlineCode       *regexp.Regexp
	xmlOpenTag       *regexp.Regexp
	preservePatterns *regexp.Regexp

	mdLink       *regexp.Regexp
	mdHeading    *regexp.Regexp
	mdList       *regexp.Regexp
	mdBlockquote *regexp.Regexp
	mdHR         *regexp.Regexp
}

var vocab = newVocabulary()

// Words short enough to matter for readability that are never compressed,
// plus a handful of literals (true, null, def, return) that commonly appear
// in prose about code.
var builtinStopWords = []string{
	"i", "a", "an", "the", "is", "am", "are", "was", "were", "be",
	"to", "of", "in", "on", "at", "by", "or", "and", "not", "no",
	"if", "it", "he", "she", "we", "do", "did", "has", "had", "can",
	"but", "for", "nor", "so", "yet", "all", "its", "my", "me",
	"up", "as", "go", "us", "ok", "yes", "true", "false", "null",
	"none", "def", "class", "return", "import", "from",
}

// Per-locale stop words kept intact so compressed text stays readable in
// that language.
var localeStopWords = map[string][]string{
	"fr": {
		"le", "la", "les", "un", "une", "des",
		"de", "du", "et", "ou", "mais", "donc",
		"à", "au", "aux", "en", "dans", "sur",
		"pour", "par", "avec", "sans", "est", "sont",
		"il", "elle", "je", "tu", "nous", "vous",
	},
	"es": {
		"el", "la", "los", "las", "un", "una", "unos", "unas",
		"de", "del", "y", "o", "pero", "porque",
		"en", "con", "sin", "por", "para", "a", "al",
		"es", "son", "está", "están",
		"yo", "tú", "él", "ella", "nosotros", "vosotros",
	},
	"de": {
		"der", "die", "das", "den", "dem", "des",
		"ein", "eine", "einer", "einem", "einen",
		"und", "oder", "aber", "doch",
		"in", "im", "am", "an", "auf", "aus", "bei",
		"mit", "von", "zu", "nach", "für",
		"ist", "sind", "war", "waren",
	},
	"pt": {
		"o", "a", "os", "as", "um", "uma", "uns", "umas",
		"de", "do", "da", "dos", "das",
		"e", "ou", "mas", "porque",
		"em", "no", "na", "com", "por", "para",
		"é", "são", "está", "estão",
	},
	"it": {
		"il", "lo", "la", "i", "gli", "le",
		"un", "uno", "una",
		"di", "del", "della", "dei", "degli", "delle",
		"e", "o", "ma", "perché",
		"in", "nel", "con", "per", "da", "su",
		"è", "sono",
	},
}

// Vowels including Latin accented forms, both cases.
const vowelRunes = "aeiouAEIOU" +
	"àáâãäåæèéêëìíîïðòóôõöøùúûüýÿ" +
	"ÀÁÂÃÄÅÆÈÉÊËÌÍÎÏÐÒÓÔÕÖØÙÚÛÜÝŸ"

// Filler-phrase categories removed at level 4, applied in this order.
var fillerPhraseSources = []string{
	`(?i)\b(you know|I mean|sort of|kind of|basically|actually|literally)\b`,
	`(?i)\b(I think|I believe|in my opinion|it seems)\b`,
	`(?i)\b(to be honest|honestly|frankly)\b`,
	`(?i)\b(just|really|very|quite|pretty)\s+`,
	`(?i)\b(as you can see|as mentioned|as stated)\b`,
	`(?i)\b(for example|such as|e\.g\.|i\.e\.)\s*,?\s*`,
	`(?i)\b(in other words|that is to say)\b`,
	`(?i)\b(at the end of the day|at this point in time)\b`,
	`(?i)\b(needless to say|it goes without saying)\b`,
}

// Built-in patterns whose matches must never be compressed. Order matters:
// the regexp engine tries alternatives left to right, so longer and more
// specific patterns come first.
var builtinPreserveSources = []string{
	// URLs (http/https/ftp, or www.)
	`https?://[^\s]+`,
	`ftp://[^\s]+`,
	`www\.[^\s]+`,
	// Email addresses
	`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`,
	// Phone numbers: international (+1-555-123-4567) and common formats
	`\+?\d[\d\-.\s()]{6,}\d`,
	// UUIDs (8-4-4-4-12 hex)
	`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
	// Hex IDs (>= 8 hex digits)
	`\b[0-9a-fA-F]{8,}\b`,
	// Alphanumeric IDs mixing digits and letters (e.g. "ABC123", "usr_42x9")
	`\b[A-Za-z0-9_\-]*\d[A-Za-z0-9_\-]*[A-Za-z][A-Za-z0-9_\-]*\b`,
	`\b[A-Za-z0-9_\-]*[A-Za-z][A-Za-z0-9_\-]*\d[A-Za-z0-9_\-]*\b`,
}

func newVocabulary() *vocabulary {
	v := &vocabulary{
		stopWords:       make(map[string]struct{}, len(builtinStopWords)),
		localeStopWords: make(map[string]map[string]struct{}, len(localeStopWords)),
		vowels:          make(map[rune]struct{}, len(vowelRunes)),
	}

	for _, w := range builtinStopWords {
		v.stopWords[w] = struct{}{}
	}
	for code, words := range localeStopWords {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		v.localeStopWords[code] = set
	}
	for _, r := range vowelRunes {
		v.vowels[r] = struct{}{}
	}

	v.fillerPhrases = make([]*regexp.Regexp, len(fillerPhraseSources))
	for i, src := range fillerPhraseSources {
		v.fillerPhrases[i] = regexp.MustCompile(src)
	}
	v.spaceRuns = regexp.MustCompile(` {2,}`)
	v.spaceTabRuns = regexp.MustCompile(`[ \t]+`)

	v.offRegion = regexp.MustCompile(`(?s)\[COMPRESSOR_OFF\](.*?)\[/COMPRESSOR_OFF\]`)

	v.fencedCode = regexp.MustCompile("(?s)```\\w*\n.*?```")
	v.inlineCode = regexp.MustCompile("`[^`\n]+`")
	v.xmlOpenTag = regexp.MustCompile(`^<([a-zA-Z][a-zA-Z0-9]*)[^>]*>`)

	v.preservePatterns = regexp.MustCompile(strings.Join(builtinPreserveSources, "|"))

	v.mdLink = regexp.MustCompile(`!?\[([^\]]*)\]\(([^)]+)\)`)
	v.mdHeading = regexp.MustCompile(`^(#{1,6}\s+)`)
	v.mdList = regexp.MustCompile(`^(\s*[-*+]\s+|\s*\d+\.\s+)`)
	v.mdBlockquote = regexp.MustCompile(`^(>\s*)`)
	v.mdHR = regexp.MustCompile(`^(-{3,}|_{3,}|\*{3,})\s*$`)

	return v
}

func isVowel(r rune) bool {
	_, ok := vocab.vowels[r]
	return ok
}
